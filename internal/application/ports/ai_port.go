package ports

import "context"

// TextRequest petición a un modelo de lenguaje.
type TextRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// TextGenerator define el puerto de salida para los modelos de lenguaje.
// Cualquier adaptador (DeepSeek, Anthropic, Gemini, mock) implementa esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}
