package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
)

// UserHandler administración de usuarios y perfil propio.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Router       /api/v1/user/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	id, _ := GetIdentity(c)
	out, err := h.uc.Profile(c.UserContext(), id.Subject, id.Email)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios (admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        per_page  query  int     false  "Tamaño"  default(10)
// @Param        status    query  string  false  "Activo | Inactivo"
// @Param        role      query  string  false  "customer | admin | vendor"
// @Param        search    query  string  false  "Nombre o email"
// @Success      200  {object}  dto.APIResponse{data=[]dto.UserResponse}
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page, perPage, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), dto.UserFilterRequest{
		Status: c.Query("status"),
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}, page, perPage)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

// GetByID godoc
// @Summary      Obtener usuario (admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Create godoc
// @Summary      Crear usuario (admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Usuario"
// @Success      201  {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return err
	}
	return respondCreated(c, out, "Usuario creado exitosamente")
}

// Update godoc
// @Summary      Actualizar usuario (admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID (UUID)"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.APIResponse{data=dto.UserResponse}
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateUserRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Usuario actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar usuario y su cuenta de acceso (admin)
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), id); err != nil {
		return err
	}
	return respondMessage(c, "Usuario eliminado exitosamente")
}

// Activate godoc
// @Summary      Activar usuario (admin)
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse{data=dto.UserResponse}
// @Router       /api/v1/users/{id}/activate [patch]
func (h *UserHandler) Activate(c *fiber.Ctx) error {
	return h.setActive(c, true, "Usuario activado exitosamente")
}

// Deactivate godoc
// @Summary      Desactivar usuario (admin)
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse{data=dto.UserResponse}
// @Router       /api/v1/users/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	return h.setActive(c, false, "Usuario desactivado exitosamente")
}

func (h *UserHandler) setActive(c *fiber.Ctx, active bool, msg string) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.SetActive(c.UserContext(), actorFrom(c), id, active)
	if err != nil {
		return err
	}
	return respondOK(c, out, msg)
}

// Stats godoc
// @Summary      Estadísticas de usuarios (admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.UserStatsResponse}
// @Router       /api/v1/users/stats [get]
func (h *UserHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Recent godoc
// @Summary      Últimos usuarios registrados (admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad"  default(5)
// @Success      200  {object}  dto.APIResponse{data=[]dto.UserResponse}
// @Router       /api/v1/users/recent [get]
func (h *UserHandler) Recent(c *fiber.Ctx) error {
	out, err := h.uc.Recent(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}
