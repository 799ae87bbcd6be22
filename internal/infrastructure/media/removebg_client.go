package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bapesu/bapesu-api/internal/application/ports"
)

var _ ports.BackgroundRemover = (*RemoveBGClient)(nil)

const (
	removeBGURL      = "https://api.remove.bg/v1.0/removebg"
	maxImageResponse = 20 << 20
)

// RemoveBGClient adaptador de la API de remove.bg.
type RemoveBGClient struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// NewRemoveBGClient construye el adaptador.
func NewRemoveBGClient(apiKey string) *RemoveBGClient {
	return &RemoveBGClient{
		apiKey:     apiKey,
		url:        removeBGURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithURL cambia el endpoint (tests).
func (c *RemoveBGClient) WithURL(url string) *RemoveBGClient {
	c.url = url
	return c
}

// RemoveBackground sube la imagen como multipart y devuelve el PNG resultante.
func (c *RemoveBGClient) RemoveBackground(ctx context.Context, image []byte, filename string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("media: REMOVE_BG_API_KEY no configurado")
	}
	if filename == "" {
		filename = "image.png"
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image_file", filename)
	if err != nil {
		return nil, fmt.Errorf("media: crear multipart: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("media: escribir imagen: %w", err)
	}
	_ = w.WriteField("size", "auto")
	_ = w.WriteField("format", "png")
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("media: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &body)
	if err != nil {
		return nil, fmt.Errorf("media: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media: llamada a remove.bg fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxImageResponse))
	if err != nil {
		return nil, fmt.Errorf("media: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media: remove.bg HTTP %d: %s", resp.StatusCode, truncate(raw, 256))
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}
