package media

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveBGClient_RemoveBackground(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("X-Api-Key"))
		f, hdr, err := r.FormFile("image_file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "foto.jpg", hdr.Filename)
		assert.Equal(t, []byte("jpeg-bytes"), data)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	out, err := NewRemoveBGClient("key").WithURL(srv.URL).RemoveBackground(context.Background(), []byte("jpeg-bytes"), "foto.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), out)
}

func TestRemoveBGClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"errors":[{"title":"Insufficient credits"}]}`))
	}))
	defer srv.Close()

	_, err := NewRemoveBGClient("key").WithURL(srv.URL).RemoveBackground(context.Background(), []byte("x"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}

func TestGoogleTTSClient_Synthesize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.URL.Query().Get("key"))
		var req ttsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hola", req.Input.Text)
		assert.Equal(t, "es-ES", req.Voice.LanguageCode)
		assert.Equal(t, "FEMALE", req.Voice.SSMLGender)
		assert.Equal(t, "MP3", req.AudioConfig.AudioEncoding)
		_ = json.NewEncoder(w).Encode(map[string]string{"audioContent": base64.StdEncoding.EncodeToString([]byte("mp3"))})
	}))
	defer srv.Close()

	out, err := NewGoogleTTSClient("key").WithURL(srv.URL+"/?key=").Synthesize(context.Background(), "hola", "es-ES", "FEMALE")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), out)
}

func TestGoogleTTSClient_MissingKey(t *testing.T) {
	_, err := NewGoogleTTSClient("").Synthesize(context.Background(), "hola", "es-ES", "NEUTRAL")
	require.Error(t, err)
}
