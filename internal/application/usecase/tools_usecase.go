package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/application/validation"
	"github.com/bapesu/bapesu-api/internal/domain"
)

const (
	toolTimeout        = 30 * time.Second
	defaultQRSize      = 256
	defaultSpeechLang  = "es-ES"
	defaultSpeechVoice = "NEUTRAL"
	statusSuccess      = "success"
)

// ErrToolUnavailable el adaptador externo no está configurado (falta API key).
var ErrToolUnavailable = errors.New("herramienta no configurada")

// ToolsUseCase herramientas de IA y multimedia.
// Cada llamada externa se ejecuta con un timeout para no bloquear el servidor.
type ToolsUseCase struct {
	descriptions ports.TextGenerator
	videos       ports.TextGenerator
	background   ports.BackgroundRemover
	qr           ports.QRGenerator
	speech       ports.SpeechSynthesizer
}

// NewToolsUseCase construye el caso de uso. Cualquier adaptador puede ser nil;
// la herramienta correspondiente responde ErrToolUnavailable.
func NewToolsUseCase(
	descriptions, videos ports.TextGenerator,
	background ports.BackgroundRemover,
	qr ports.QRGenerator,
	speech ports.SpeechSynthesizer,
) *ToolsUseCase {
	return &ToolsUseCase{
		descriptions: descriptions,
		videos:       videos,
		background:   background,
		qr:           qr,
		speech:       speech,
	}
}

// GenerateDescription redacta una descripción de marketing de 60 a 100 palabras.
func (uc *ToolsUseCase) GenerateDescription(ctx context.Context, in dto.GenerateDescriptionRequest) (*dto.GeneratedTextResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if uc.descriptions == nil {
		return nil, ErrToolUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	text, err := uc.descriptions.GenerateText(ctx, ports.TextRequest{
		System:      "Eres un experto en marketing y copywriting.",
		Prompt:      descriptionPrompt(in),
		Temperature: 0.7,
		MaxTokens:   200,
	})
	if err != nil {
		return nil, fmt.Errorf("generar descripción: %w", err)
	}
	return &dto.GeneratedTextResponse{Description: strings.TrimSpace(text), Status: statusSuccess}, nil
}

func descriptionPrompt(in dto.GenerateDescriptionRequest) string {
	var b strings.Builder
	b.WriteString("Genera una descripción atractiva y persuasiva para un producto con las siguientes características:\n")
	fmt.Fprintf(&b, "- Nombre: %s\n", in.Name)
	fmt.Fprintf(&b, "- Categoría: %s\n", in.Category)
	fmt.Fprintf(&b, "- Características principales: %s\n", in.Features)
	fmt.Fprintf(&b, "- Público objetivo: %s\n", in.TargetAudience)
	fmt.Fprintf(&b, "- Tono deseado: %s\n\n", in.Tone)
	b.WriteString("La descripción debe tener entre 60 y 100 palabras, destacar los beneficios principales ")
	b.WriteString("y estar escrita en español.")
	return b.String()
}

// GenerateVideoIdea propone una idea de video para el tema indicado.
func (uc *ToolsUseCase) GenerateVideoIdea(ctx context.Context, in dto.VideoIdeaRequest) (*dto.GeneratedTextResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if uc.videos == nil {
		return nil, ErrToolUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	text, err := uc.videos.GenerateText(ctx, ports.TextRequest{
		Prompt:    "Eres un filmmaker profesional, Genera una idea de video para un video sobre: " + in.Prompt,
		MaxTokens: 400,
	})
	if err != nil {
		return nil, fmt.Errorf("generar idea de video: %w", err)
	}
	return &dto.GeneratedTextResponse{Description: strings.TrimSpace(text), Status: statusSuccess}, nil
}

// RemoveBackground devuelve la imagen en PNG sin fondo.
func (uc *ToolsUseCase) RemoveBackground(ctx context.Context, image []byte, filename string) ([]byte, error) {
	if len(image) == 0 {
		return nil, domain.NewValidationError("No se proporcionó ninguna imagen", "image")
	}
	if uc.background == nil {
		return nil, ErrToolUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	out, err := uc.background.RemoveBackground(ctx, image, filename)
	if err != nil {
		return nil, fmt.Errorf("quitar fondo: %w", err)
	}
	return out, nil
}

// GenerateQR codifica el contenido como PNG (256 px por defecto).
func (uc *ToolsUseCase) GenerateQR(in dto.QRRequest) ([]byte, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if uc.qr == nil {
		return nil, ErrToolUnavailable
	}
	size := in.Size
	if size == 0 {
		size = defaultQRSize
	}
	out, err := uc.qr.GenerateQR(in.Content, size)
	if err != nil {
		return nil, fmt.Errorf("generar QR: %w", err)
	}
	return out, nil
}

// TextToSpeech sintetiza el texto en MP3.
func (uc *ToolsUseCase) TextToSpeech(ctx context.Context, in dto.SpeechRequest) ([]byte, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if uc.speech == nil {
		return nil, ErrToolUnavailable
	}
	lang := in.LanguageCode
	if lang == "" {
		lang = defaultSpeechLang
	}
	gender := strings.ToUpper(in.Gender)
	if gender == "" {
		gender = defaultSpeechVoice
	}
	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	out, err := uc.speech.Synthesize(ctx, in.Text, lang, gender)
	if err != nil {
		return nil, fmt.Errorf("texto a voz: %w", err)
	}
	return out, nil
}
