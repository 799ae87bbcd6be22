package ports

import "context"

// BackgroundRemover quita el fondo de una imagen y devuelve un PNG.
type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, image []byte, filename string) ([]byte, error)
}

// QRGenerator codifica content en un PNG cuadrado de size píxeles.
type QRGenerator interface {
	GenerateQR(content string, size int) ([]byte, error)
}

// SpeechSynthesizer convierte texto en audio MP3.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, languageCode, gender string) ([]byte, error)
}
