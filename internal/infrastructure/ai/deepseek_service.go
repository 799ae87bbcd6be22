package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bapesu/bapesu-api/internal/application/ports"
)

var _ ports.TextGenerator = (*DeepSeekService)(nil)

// DeepSeekService adaptador de chat completions compatible con OpenAI (DeepSeek).
type DeepSeekService struct {
	apiKey      string
	url         string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// NewDeepSeekService construye el adaptador. temperature y maxTokens se usan
// cuando la petición no los fija.
func NewDeepSeekService(apiKey, url, model string, temperature float64, maxTokens int) *DeepSeekService {
	return &DeepSeekService{
		apiKey:      apiKey,
		url:         url,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateText devuelve el contenido del primer choice.
func (s *DeepSeekService) GenerateText(ctx context.Context, in ports.TextRequest) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: DEEPSEEK_API_KEY no configurado")
	}

	req := chatRequest{
		Model:       s.model,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	}
	if in.Temperature > 0 {
		req.Temperature = in.Temperature
	}
	if in.MaxTokens > 0 {
		req.MaxTokens = in.MaxTokens
	}
	if in.System != "" {
		req.Messages = append(req.Messages, chatMessage{Role: "system", Content: in.System})
	}
	req.Messages = append(req.Messages, chatMessage{Role: "user", Content: in.Prompt})

	status, raw, err := postJSON(ctx, s.httpClient, s.url, map[string]string{
		"Authorization": "Bearer " + s.apiKey,
	}, req)
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if status != http.StatusOK {
		if jsonErr := json.Unmarshal(raw, &resp); jsonErr == nil && resp.Error != nil {
			return "", fmt.Errorf("AI: DeepSeek error (%s): %s", resp.Error.Type, resp.Error.Message)
		}
		return "", fmt.Errorf("AI: DeepSeek HTTP %d", status)
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta DeepSeek: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("AI: DeepSeek devolvió respuesta vacía")
	}
	return resp.Choices[0].Message.Content, nil
}
