package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := map[string]string{
		"Cuidado Facial":         "cuidado-facial",
		"  Jabones Artesanales ": "jabones-artesanales",
		"Ñandú & Café":           "nandu-cafe",
		"Aceites -- Esenciales!": "aceites-esenciales",
		"":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Make(in), "entrada %q", in)
	}
}
