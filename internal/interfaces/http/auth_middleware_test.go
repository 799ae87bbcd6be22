package http_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/bapesu/bapesu-api/internal/interfaces/http"
	"github.com/bapesu/bapesu-api/pkg/logger"
	pkgjwt "github.com/bapesu/bapesu-api/pkg/jwt"
)

// buildGateApp app mínima: RequireAuthenticated (+ RequireAdmin opcional) y un handler
// que devuelve la identidad cargada.
func buildGateApp(users apphttp.UserLookup) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(logger.Nop(), false)})
	handlers := []fiber.Handler{apphttp.RequireAuthenticated(testJWTSecret)}
	if users != nil {
		handlers = append(handlers, apphttp.RequireAdmin(users))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		id, _ := apphttp.GetIdentity(c)
		out := fiber.Map{"user_id": apphttp.GetUserID(c), "email": id.Email}
		if u := apphttp.GetAdmin(c); u != nil {
			out["admin"] = u.Email
		}
		return c.JSON(out)
	})
	app.Add(fiber.MethodGet, "/protected", handlers...)
	app.Add(fiber.MethodOptions, "/protected", handlers...)
	return app
}

func TestRequireAuthenticated_Mensajes(t *testing.T) {
	expired, err := pkgjwt.Generate(testJWTSecret, testUserID, "a@b.co", "authenticated", testIssuer, -time.Minute)
	require.NoError(t, err)
	otherSecret, err := pkgjwt.Generate("otro-secret", testUserID, "a@b.co", "authenticated", testIssuer, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		msg    string
	}{
		{"sin header", "", "Token no proporcionado"},
		{"solo el esquema", "Bearer", "Token no proporcionado"},
		{"esquema con espacio final", "Bearer ", "Token no proporcionado"},
		{"sin esquema", "abc.def.ghi", "Token inválido"},
		{"token corrupto", "Bearer token.invalido.aqui", "Token inválido"},
		{"firma con otro secreto", "Bearer " + otherSecret, "Token inválido"},
		{"token expirado", "Bearer " + expired, "Token expirado"},
	}
	app := buildGateApp(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := do(t, app, http.MethodGet, "/protected", tc.header, "")
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.msg, body["error"])
			assert.Equal(t, tc.msg, body["message"])
		})
	}
}

func TestRequireAuthenticated_CargaIdentidad(t *testing.T) {
	app := buildGateApp(nil)
	resp, body := do(t, app, http.MethodGet, "/protected", bearer(t, testUserID), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "x@bapesu.co", body["email"])
}

func TestRequireAuthenticated_OptionsPasaSinToken(t *testing.T) {
	app := buildGateApp(newUserLookup())
	resp, _ := do(t, app, http.MethodOptions, "/protected", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin pasa y queda cargado", func(t *testing.T) {
		resp, body := do(t, buildGateApp(newUserLookup()), http.MethodGet, "/protected", bearer(t, testAdminID), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "admin@bapesu.co", body["admin"])
	})

	t.Run("cliente recibe 403", func(t *testing.T) {
		resp, body := do(t, buildGateApp(newUserLookup()), http.MethodGet, "/protected", bearer(t, testUserID), "")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Acceso denegado", body["error"])
		assert.Equal(t, "Acceso denegado", body["message"])
	})

	t.Run("usuario inexistente recibe 404", func(t *testing.T) {
		resp, body := do(t, buildGateApp(newUserLookup()), http.MethodGet, "/protected",
			bearer(t, "00000000-0000-0000-0000-0000000000ff"), "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Usuario no encontrado", body["message"])
	})

	t.Run("error de consulta recibe 500", func(t *testing.T) {
		users := &userLookupStub{err: errors.New("conexión rechazada")}
		resp, body := do(t, buildGateApp(users), http.MethodGet, "/protected", bearer(t, testAdminID), "")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Error interno del servidor", body["error"])
		assert.Equal(t, "Error interno del servidor", body["message"])
	})

	t.Run("token sin subject recibe 401", func(t *testing.T) {
		resp, body := do(t, buildGateApp(newUserLookup()), http.MethodGet, "/protected", bearer(t, ""), "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "ID de usuario no encontrado en el token", body["error"])
	})

	t.Run("la autenticación se evalúa antes que el rol", func(t *testing.T) {
		users := &userLookupStub{err: errors.New("no debería consultarse")}
		resp, body := do(t, buildGateApp(users), http.MethodGet, "/protected", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Token no proporcionado", body["error"])
	})
}
