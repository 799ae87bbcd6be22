package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepSeekService_GenerateText(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Texto generado"}}]}`))
	}))
	defer srv.Close()

	svc := NewDeepSeekService("key", srv.URL, "deepseek-chat", 0.7, 200)
	out, err := svc.GenerateText(context.Background(), ports.TextRequest{System: "sys", Prompt: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "Texto generado", out)
	assert.Equal(t, "deepseek-chat", got.Model)
	assert.Equal(t, 200, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "hola", got.Messages[1].Content)
}

func TestDeepSeekService_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
	}))
	defer srv.Close()

	_, err := NewDeepSeekService("key", srv.URL, "m", 0.7, 10).GenerateText(context.Background(), ports.TextRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestDeepSeekService_MissingKey(t *testing.T) {
	_, err := NewDeepSeekService("", "http://unused", "m", 0.7, 10).GenerateText(context.Background(), ports.TextRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEEPSEEK_API_KEY")
}

func TestAnthropicService_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sys", req.System)
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"Hola desde Claude"}]}`))
	}))
	defer srv.Close()

	svc := NewAnthropicService("key", "claude").WithURL(srv.URL)
	out, err := svc.GenerateText(context.Background(), ports.TextRequest{System: "sys", Prompt: "p", MaxTokens: 50})
	require.NoError(t, err)
	assert.Equal(t, "Hola desde Claude", out)
}

func TestGeminiService_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Idea "},{"text":"de video"}]}}]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("key", "gemini-2.0-flash").WithBaseURL(srv.URL + "/models/%s:generateContent?key=%s")
	out, err := svc.GenerateText(context.Background(), ports.TextRequest{Prompt: "p", MaxTokens: 400})
	require.NoError(t, err)
	assert.Equal(t, "Idea de video", out)
}

func TestGeminiService_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := NewGeminiService("key", "m").WithBaseURL(srv.URL + "/%s?key=%s")
	_, err := svc.GenerateText(context.Background(), ports.TextRequest{Prompt: "p"})
	require.Error(t, err)
}
