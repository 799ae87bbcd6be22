package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience es la audiencia que Supabase Auth coloca en los access tokens.
const Audience = "authenticated"

var (
	ErrMissingToken   = errors.New("token no proporcionado")
	ErrMalformedToken = errors.New("token inválido")
	ErrInvalidToken   = errors.New("token inválido")
	ErrTokenExpired   = errors.New("token expirado")
)

// Claims incluye los claims estándar JWT más los campos que emite Supabase.
// Role es el rol de Postgres del token ("authenticated"), no el rol de negocio del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ExtractBearer obtiene el token de un header "Authorization: Bearer <token>".
// El esquema sin token ("Bearer", "Bearer ") cuenta como token no proporcionado;
// los servidores HTTP suelen recortar el espacio final del valor.
func ExtractBearer(header string) (string, error) {
	header = strings.TrimLeft(header, " ")
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found {
		if strings.EqualFold(strings.TrimSpace(scheme), "Bearer") {
			return "", ErrMissingToken
		}
		return "", ErrMalformedToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Generate genera un token HS256 con audiencia "authenticated".
func Generate(secret, subject, email, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, audiencia y expiración y devuelve los claims.
// opts se agregan a las opciones del parser (p. ej. jwt.WithTimeFunc en tests).
func Parse(secret, tokenString string, opts ...jwt.ParserOption) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	parserOpts := append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
	}, opts...)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
