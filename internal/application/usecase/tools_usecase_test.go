package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/domain"
)

func TestGenerateDescription_BuildsPrompt(t *testing.T) {
	gen := &textGenStub{reply: "  Un jabón que cuida tu piel.  "}
	uc := NewToolsUseCase(gen, nil, nil, nil, nil)

	out, err := uc.GenerateDescription(context.Background(), dto.GenerateDescriptionRequest{
		Name: "Jabón de avena", Category: "Cuidado corporal", Features: "natural, hipoalergénico",
		TargetAudience: "piel sensible", Tone: "cercano",
	})
	require.NoError(t, err)
	assert.Equal(t, "Un jabón que cuida tu piel.", out.Description)
	assert.Equal(t, "success", out.Status)

	assert.Equal(t, "Eres un experto en marketing y copywriting.", gen.got.System)
	assert.Equal(t, 200, gen.got.MaxTokens)
	assert.InDelta(t, 0.7, gen.got.Temperature, 1e-9)
	assert.Contains(t, gen.got.Prompt, "- Nombre: Jabón de avena")
	assert.Contains(t, gen.got.Prompt, "- Público objetivo: piel sensible")
	assert.Contains(t, gen.got.Prompt, "entre 60 y 100 palabras")
	require.False(t, gen.deadline.IsZero())
	assert.WithinDuration(t, time.Now().Add(toolTimeout), gen.deadline, 5*time.Second)
}

func TestGenerateDescription_MissingFields(t *testing.T) {
	uc := NewToolsUseCase(&textGenStub{}, nil, nil, nil, nil)

	_, err := uc.GenerateDescription(context.Background(), dto.GenerateDescriptionRequest{Name: "Vela"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []string{"category", "features", "targetAudience", "tone"}, ve.Fields)
}

func TestGenerateVideoIdea(t *testing.T) {
	gen := &textGenStub{reply: "Toma cenital del producto"}
	uc := NewToolsUseCase(nil, gen, nil, nil, nil)

	out, err := uc.GenerateVideoIdea(context.Background(), dto.VideoIdeaRequest{Prompt: "velas aromáticas"})
	require.NoError(t, err)
	assert.Equal(t, "Toma cenital del producto", out.Description)
	assert.Equal(t, "Eres un filmmaker profesional, Genera una idea de video para un video sobre: velas aromáticas", gen.got.Prompt)
}

func TestTools_CallerDeadlineIsHonored(t *testing.T) {
	gen := &textGenStub{block: true}
	uc := NewToolsUseCase(nil, gen, nil, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := uc.GenerateVideoIdea(ctx, dto.VideoIdeaRequest{Prompt: "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTools_Unavailable(t *testing.T) {
	uc := NewToolsUseCase(nil, nil, nil, nil, nil)
	ctx := context.Background()

	_, err := uc.GenerateDescription(ctx, dto.GenerateDescriptionRequest{Name: "a", Category: "b", Features: "c", TargetAudience: "d", Tone: "e"})
	assert.ErrorIs(t, err, ErrToolUnavailable)
	_, err = uc.GenerateVideoIdea(ctx, dto.VideoIdeaRequest{Prompt: "a"})
	assert.ErrorIs(t, err, ErrToolUnavailable)
	_, err = uc.RemoveBackground(ctx, []byte{1}, "a.png")
	assert.ErrorIs(t, err, ErrToolUnavailable)
	_, err = uc.GenerateQR(dto.QRRequest{Content: "hola"})
	assert.ErrorIs(t, err, ErrToolUnavailable)
	_, err = uc.TextToSpeech(ctx, dto.SpeechRequest{Text: "hola"})
	assert.ErrorIs(t, err, ErrToolUnavailable)
}

func TestRemoveBackground_EmptyImage(t *testing.T) {
	uc := NewToolsUseCase(nil, nil, nil, nil, nil)

	_, err := uc.RemoveBackground(context.Background(), nil, "")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"image"}, ve.Fields)
}

func TestGenerateQR_DefaultSize(t *testing.T) {
	q := &qrStub{}
	uc := NewToolsUseCase(nil, nil, nil, q, nil)

	_, err := uc.GenerateQR(dto.QRRequest{Content: "https://bapesu.vercel.app"})
	require.NoError(t, err)
	assert.Equal(t, 256, q.size)

	_, err = uc.GenerateQR(dto.QRRequest{Content: "x", Size: 10})
	assert.True(t, domain.IsValidation(err))
}

func TestTextToSpeech_Defaults(t *testing.T) {
	sp := &speechStub{}
	uc := NewToolsUseCase(nil, nil, nil, nil, sp)

	_, err := uc.TextToSpeech(context.Background(), dto.SpeechRequest{Text: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, "es-ES", sp.lang)
	assert.Equal(t, "NEUTRAL", sp.gender)

	_, err = uc.TextToSpeech(context.Background(), dto.SpeechRequest{Text: "Hola", LanguageCode: "es-CO", Gender: "female"})
	require.NoError(t, err)
	assert.Equal(t, "es-CO", sp.lang)
	assert.Equal(t, "FEMALE", sp.gender)
}
