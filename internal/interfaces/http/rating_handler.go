package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
	"github.com/bapesu/bapesu-api/internal/domain"
)

// RatingHandler reseñas de productos.
type RatingHandler struct {
	uc *usecase.RatingUseCase
}

// NewRatingHandler construye el handler.
func NewRatingHandler(uc *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

// ListForProduct godoc
// @Summary      Reseñas aprobadas de un producto
// @Tags         ratings
// @Produce      json
// @Param        id        path   int  true   "ID del producto"
// @Param        page      query  int  false  "Página"  default(1)
// @Param        per_page  query  int  false  "Tamaño"  default(10)
// @Success      200  {object}  dto.APIResponse{data=[]dto.RatingResponse}
// @Router       /api/v1/products/{id}/ratings [get]
func (h *RatingHandler) ListForProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	page, perPage, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListForProduct(c.UserContext(), id, page, perPage)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

// ProductStats godoc
// @Summary      Promedio y distribución de calificaciones
// @Tags         ratings
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.APIResponse{data=dto.RatingStatsResponse}
// @Router       /api/v1/products/{id}/ratings/stats [get]
func (h *RatingHandler) ProductStats(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.ProductStats(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// CanRate godoc
// @Summary      ¿Puede el usuario calificar el producto de este pedido?
// @Tags         ratings
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  int     true  "ID del producto"
// @Param        order_id    query  string  true  "ID del pedido"
// @Success      200  {object}  dto.APIResponse{data=dto.CanRateResponse}
// @Router       /api/v1/product-ratings/can-rate [get]
func (h *RatingHandler) CanRate(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil || productID < 1 {
		return domain.NewValidationError("product_id y order_id son requeridos", "product_id")
	}
	orderID := c.Query("order_id")
	if _, err := uuid.Parse(orderID); err != nil {
		return domain.NewValidationError("product_id y order_id son requeridos", "order_id")
	}
	ok, err := h.uc.CanUserRate(c.UserContext(), GetUserID(c), productID, orderID)
	if err != nil {
		return err
	}
	return respondOK(c, dto.CanRateResponse{CanRate: ok})
}

// Create godoc
// @Summary      Calificar un producto recibido
// @Tags         ratings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRatingRequest  true  "Reseña"
// @Success      201  {object}  dto.APIResponse{data=dto.RatingResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/product-ratings [post]
func (h *RatingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRatingRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return err
	}
	return respondCreated(c, out, "Calificación creada exitosamente")
}

// Update godoc
// @Summary      Editar una reseña propia
// @Tags         ratings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID (UUID)"
// @Param        body  body  dto.UpdateRatingRequest  true  "Cambios"
// @Success      200  {object}  dto.APIResponse{data=dto.RatingResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/product-ratings/{id} [put]
func (h *RatingHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateRatingRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Calificación actualizada exitosamente")
}

// Delete godoc
// @Summary      Eliminar una reseña propia
// @Tags         ratings
// @Security     Bearer
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/v1/product-ratings/{id} [delete]
func (h *RatingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), id); err != nil {
		return err
	}
	return respondMessage(c, "Calificación eliminada exitosamente")
}

// ListMine godoc
// @Summary      Reseñas del usuario autenticado
// @Tags         ratings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.RatingResponse}
// @Router       /api/v1/user/ratings [get]
func (h *RatingHandler) ListMine(c *fiber.Ctx) error {
	page, perPage, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListForUser(c.UserContext(), GetUserID(c), page, perPage)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

// ListPending godoc
// @Summary      Reseñas pendientes de aprobación (admin)
// @Tags         admin-ratings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.RatingResponse}
// @Router       /api/v1/admin/ratings/pending [get]
func (h *RatingHandler) ListPending(c *fiber.Ctx) error {
	page, perPage, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListPending(c.UserContext(), page, perPage)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

// Approve godoc
// @Summary      Aprobar reseña (admin)
// @Tags         admin-ratings
// @Security     Bearer
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse{data=dto.RatingResponse}
// @Router       /api/v1/admin/ratings/{id}/approve [patch]
func (h *RatingHandler) Approve(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Approve(c.UserContext(), actorFrom(c), id)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Calificación aprobada exitosamente")
}

// Reject godoc
// @Summary      Rechazar reseña con motivo (admin)
// @Tags         admin-ratings
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                   true  "ID (UUID)"
// @Param        body  body  dto.RejectRatingRequest  true  "Motivo"
// @Success      200  {object}  dto.APIResponse{data=dto.RatingResponse}
// @Router       /api/v1/admin/ratings/{id}/reject [patch]
func (h *RatingHandler) Reject(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	var in dto.RejectRatingRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Reject(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Calificación rechazada exitosamente")
}
