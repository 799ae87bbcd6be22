package dto

// GenerateDescriptionRequest entrada de POST /tools/generate-description.
type GenerateDescriptionRequest struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category" validate:"required"`
	Features       string `json:"features" validate:"required"`
	TargetAudience string `json:"targetAudience" validate:"required"`
	Tone           string `json:"tone" validate:"required"`
}

// VideoIdeaRequest entrada de POST /tools/generate-things-videos.
type VideoIdeaRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GeneratedTextResponse salida de las herramientas de texto.
type GeneratedTextResponse struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

// QRRequest entrada de POST /tools/qr_generator. Size en píxeles (por defecto 256).
type QRRequest struct {
	Content string `json:"content" validate:"required,max=2048"`
	Size    int    `json:"size" validate:"omitempty,min=64,max=2048"`
}

// SpeechRequest entrada de POST /tools/text_x_voz.
type SpeechRequest struct {
	Text         string `json:"text" validate:"required,max=5000"`
	LanguageCode string `json:"language_code"`
	Gender       string `json:"gender" validate:"omitempty,oneof=MALE FEMALE NEUTRAL male female neutral"`
}
