package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateQR(t *testing.T) {
	out, err := NewGenerator().GenerateQR("https://bapesu.vercel.app/products/42", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGenerator_TooSmall(t *testing.T) {
	_, err := NewGenerator().GenerateQR("https://bapesu.vercel.app/"+string(bytes.Repeat([]byte("x"), 500)), 10)
	assert.Error(t, err)
}
