package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "secreto-de-pruebas")
	t.Setenv("CORS_ORIGINS", " https://bapesu.vercel.app , http://localhost:3000 ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://bapesu.vercel.app", "http://localhost:3000"}, cfg.CORS.Origins)
}

func TestLoad_RejectsWildcardOrigin(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "secreto-de-pruebas")

	for _, origins := range []string{"*", "https://bapesu.vercel.app,*"} {
		t.Setenv("CORS_ORIGINS", origins)
		_, err := Load()
		require.Error(t, err, origins)
		assert.Contains(t, err.Error(), "CORS_ORIGINS")
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("SUPABASE_JWT_SECRET", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_JWT_SECRET")
}
