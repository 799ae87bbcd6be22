package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/pkg/logger"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

func respondOK(c *fiber.Ctx, data any, message ...string) error {
	out := dto.APIResponse{Success: true, Data: data}
	if len(message) > 0 {
		out.Message = message[0]
	}
	return c.JSON(out)
}

func respondCreated(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.APIResponse{Success: true, Data: data, Message: message})
}

func respondList[T any](c *fiber.Ctx, res *dto.ListResult[T]) error {
	return c.JSON(dto.APIResponse{Success: true, Data: res.Items, Pagination: res.Pagination})
}

func respondMessage(c *fiber.Ctx, message string) error {
	return c.JSON(dto.APIResponse{Success: true, Message: message})
}

// fail responde con el texto en error y en message; los clientes leen cualquiera de los dos.
func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.APIResponse{Success: false, Error: msg, Message: msg})
}

// NewErrorHandler traduce los errores devueltos por los handlers al sobre JSON.
// Con exposeInternal el mensaje de los 500 se envía al cliente (solo desarrollo).
func NewErrorHandler(log *logger.Logger, exposeInternal bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return respondError(c, log, exposeInternal, err)
	}
}

func respondError(c *fiber.Ctx, log *logger.Logger, exposeInternal bool, err error) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.APIResponse{Success: false, Error: ve.Message, Message: ve.Message, Fields: ve.Fields})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fail(c, fe.Code, fe.Message)
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Recurso no encontrado")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "No autorizado")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "Acceso denegado")
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrNotEligible):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrToolUnavailable):
		return fail(c, fiber.StatusServiceUnavailable, "Servicio no disponible")
	}

	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	msg := "Error interno del servidor"
	if exposeInternal {
		msg = err.Error()
	}
	return fail(c, fiber.StatusInternalServerError, msg)
}

// parsePage lee page y per_page (por defecto 1 y 10; per_page entre 1 y 100).
func parsePage(c *fiber.Ctx) (int, int, error) {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil || page < 1 {
		return 0, 0, domain.NewValidationError("El parámetro page debe ser un entero mayor o igual a 1", "page")
	}
	perPage, err := queryInt(c, "per_page", defaultPerPage)
	if err != nil || perPage < 1 || perPage > maxPerPage {
		return 0, 0, domain.NewValidationError("El parámetro per_page debe estar entre 1 y 100", "per_page")
	}
	return page, perPage, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError("ID inválido", param)
	}
	return id, nil
}

func parseUUID(c *fiber.Ctx, param string) (string, error) {
	raw := c.Params(param)
	if _, err := uuid.Parse(raw); err != nil {
		return "", domain.NewValidationError("ID inválido", param)
	}
	return raw, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewValidationError("Cuerpo de la petición inválido")
	}
	return nil
}
