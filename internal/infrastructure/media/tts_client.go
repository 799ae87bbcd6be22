package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bapesu/bapesu-api/internal/application/ports"
)

var _ ports.SpeechSynthesizer = (*GoogleTTSClient)(nil)

const googleTTSURL = "https://texttospeech.googleapis.com/v1/text:synthesize?key="

// GoogleTTSClient adaptador de Google Cloud Text-to-Speech (REST con API key).
type GoogleTTSClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// NewGoogleTTSClient construye el adaptador.
func NewGoogleTTSClient(apiKey string) *GoogleTTSClient {
	return &GoogleTTSClient{
		apiKey:     apiKey,
		url:        googleTTSURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithURL cambia el prefijo del endpoint; la key se concatena al final.
func (c *GoogleTTSClient) WithURL(url string) *GoogleTTSClient {
	c.url = url
	return c
}

type ttsRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		SSMLGender   string `json:"ssmlGender"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

type ttsResponse struct {
	AudioContent string `json:"audioContent"`
	Error        *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Synthesize devuelve el audio MP3 decodificado.
func (c *GoogleTTSClient) Synthesize(ctx context.Context, text, languageCode, gender string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("media: GOOGLE_TTS_API_KEY no configurado")
	}

	var in ttsRequest
	in.Input.Text = text
	in.Voice.LanguageCode = languageCode
	in.Voice.SSMLGender = gender
	in.AudioConfig.AudioEncoding = "MP3"

	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("media: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("media: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media: llamada a Text-to-Speech fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageResponse))
	if err != nil {
		return nil, fmt.Errorf("media: leer respuesta: %w", err)
	}

	var out ttsResponse
	if resp.StatusCode != http.StatusOK {
		if jsonErr := json.Unmarshal(raw, &out); jsonErr == nil && out.Error != nil {
			return nil, fmt.Errorf("media: Text-to-Speech error %d: %s", out.Error.Code, out.Error.Message)
		}
		return nil, fmt.Errorf("media: Text-to-Speech HTTP %d", resp.StatusCode)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("media: deserializar respuesta: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(out.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("media: audio base64 inválido: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("media: Text-to-Speech devolvió audio vacío")
	}
	return audio, nil
}
