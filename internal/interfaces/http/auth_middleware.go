package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bapesu/bapesu-api/internal/application/usecase"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/pkg/jwt"
)

// Locals keys para la identidad y el administrador cargado.
const (
	LocalIdentity = "identity"
	LocalAdmin    = "admin_user"
)

// Identity datos del token verificado.
type Identity struct {
	Subject string
	Email   string
	Role    string
}

// UserLookup carga el perfil del usuario autenticado (RequireAdmin).
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// RequireAuthenticated valida el Bearer Token y deja la Identity en c.Locals.
// Las peticiones OPTIONS (preflight CORS) pasan sin validar.
func RequireAuthenticated(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		token, err := jwt.ExtractBearer(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return unauthorized(c, tokenMessage(err))
		}
		claims, err := jwt.Parse(secret, token)
		if err != nil {
			return unauthorized(c, tokenMessage(err))
		}
		c.Locals(LocalIdentity, Identity{Subject: claims.Subject, Email: claims.Email, Role: claims.Role})
		return c.Next()
	}
}

// RequireAdmin exige un usuario con rol admin. Debe ir después de RequireAuthenticated.
func RequireAdmin(users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		id := GetUserID(c)
		if id == "" {
			return unauthorized(c, "ID de usuario no encontrado en el token")
		}
		u, err := users.GetByID(c.UserContext(), id)
		if err != nil {
			return err
		}
		if u == nil {
			return fail(c, fiber.StatusNotFound, "Usuario no encontrado")
		}
		if u.Role != entity.RoleAdmin {
			return fail(c, fiber.StatusForbidden, "Acceso denegado")
		}
		c.Locals(LocalAdmin, u)
		return c.Next()
	}
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrMissingToken):
		return "Token no proporcionado"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token expirado"
	default:
		return "Token inválido"
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusUnauthorized, msg)
}

// GetIdentity devuelve la identidad del token (después de RequireAuthenticated).
func GetIdentity(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(Identity)
	return id, ok
}

// GetUserID devuelve el subject del token o "".
func GetUserID(c *fiber.Ctx) string {
	id, _ := GetIdentity(c)
	return id.Subject
}

// GetAdmin devuelve el administrador cargado por RequireAdmin.
func GetAdmin(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalAdmin).(*entity.User)
	return u
}

func actorFrom(c *fiber.Ctx) usecase.Actor {
	id, _ := GetIdentity(c)
	a := usecase.Actor{ID: id.Subject, Email: id.Email}
	if u := GetAdmin(c); u != nil {
		a.Name = u.FullName()
	}
	return a
}
