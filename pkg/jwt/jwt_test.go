package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-de-pruebas"

func TestExtractBearer(t *testing.T) {
	tok, err := ExtractBearer("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ExtractBearer("")
	assert.ErrorIs(t, err, ErrMissingToken)

	for _, h := range []string{"Bearer", "Bearer ", "Bearer   ", "bearer"} {
		_, err = ExtractBearer(h)
		assert.ErrorIs(t, err, ErrMissingToken, "header %q", h)
	}

	_, err = ExtractBearer("abc.def.ghi")
	assert.ErrorIs(t, err, ErrMalformedToken)

	tok, err = ExtractBearer("Bearer  abc.def.ghi ")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "ana@bapesu.co", "authenticated", "tests", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ana@bapesu.co", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "", "", "tests", time.Hour)
	require.NoError(t, err)

	_, err = Parse("otro-secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	tok, err := Generate(testSecret, "user-1", "", "", "tests", time.Minute)
	require.NoError(t, err)

	future := func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = Parse(testSecret, tok, gojwt.WithTimeFunc(future))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParse_WrongAudience(t *testing.T) {
	claims := Claims{RegisteredClaims: gojwt.RegisteredClaims{
		Subject:   "user-1",
		Audience:  gojwt.ClaimStrings{"anon"},
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{RegisteredClaims: gojwt.RegisteredClaims{
		Audience:  gojwt.ClaimStrings{Audience},
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Parse(testSecret, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
