package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Param        page              query  int     false  "Página"  default(1)
// @Param        per_page          query  int     false  "Tamaño"  default(10)
// @Param        search            query  string  false  "Nombre o descripción"
// @Param        status            query  string  false  "active | inactive | featured"
// @Param        include_inactive  query  bool    false  "Incluir inactivas"
// @Success      200  {object}  dto.APIResponse{data=[]dto.CategoryResponse}
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page, perPage, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), dto.CategoryFilterRequest{
		Search:          c.Query("search"),
		Status:          c.Query("status"),
		IncludeInactive: c.QueryBool("include_inactive", false),
	}, page, perPage)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

// Featured godoc
// @Summary      Categorías destacadas
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.CategoryResponse}
// @Router       /api/v1/categories/featured [get]
func (h *CategoryHandler) Featured(c *fiber.Ctx) error {
	out, err := h.uc.Featured(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// GetBySlug godoc
// @Summary      Obtener categoría activa por slug
// @Tags         categories
// @Produce      json
// @Param        slug  path  string  true  "Slug"
// @Success      200  {object}  dto.APIResponse{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/slug/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.APIResponse{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
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
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos"
// @Success      201  {object}  dto.APIResponse{data=dto.CategoryResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return err
	}
	return respondCreated(c, out, "Categoría creada exitosamente")
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.APIResponse{data=dto.CategoryResponse}
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Categoría actualizada exitosamente")
}

// Delete godoc
// @Summary      Desactivar categoría sin productos
// @Tags         categories
// @Security     Bearer
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.APIResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), id); err != nil {
		return err
	}
	return respondMessage(c, "Categoría eliminada exitosamente")
}

// Stats godoc
// @Summary      Estadísticas de categorías
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.CategoryStatsResponse}
// @Router       /api/v1/categories/stats [get]
func (h *CategoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, out)
}
