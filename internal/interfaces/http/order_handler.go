package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
)

// OrderHandler pedidos del cliente y su administración.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Inserta cabecera e items en una sola transacción. Lista todos los campos faltantes.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Pedido"
// @Success      201  {object}  dto.APIResponse{data=dto.OrderResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return err
	}
	return respondCreated(c, out, "Pedido creado exitosamente")
}

// ListMine godoc
// @Summary      Pedidos del usuario autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        page      query  int  false  "Página"  default(1)
// @Param        per_page  query  int  false  "Tamaño"  default(10)
// @Success      200  {object}  dto.APIResponse{data=[]dto.OrderResponse}
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
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

// GetMine godoc
// @Summary      Detalle de un pedido propio
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse{data=dto.OrderResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetMine(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.GetForUser(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Receipt godoc
// @Summary      Comprobante PDF de un pedido propio
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	pdf, err := h.uc.Receipt(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido-`+id+`.pdf"`)
	return c.Send(pdf)
}

// ListAll godoc
// @Summary      Todos los pedidos (admin)
// @Tags         admin-orders
// @Security     Bearer
// @Produce      json
// @Param        page      query  int     false  "Página"  default(1)
// @Param        per_page  query  int     false  "Tamaño"  default(10)
// @Param        status    query  string  false  "Estado"
// @Success      200  {object}  dto.APIResponse{data=[]dto.OrderResponse}
// @Router       /api/v1/admin/orders [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	page, perPage, err := parsePage(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListAll(c.UserContext(), c.Query("status"), page, perPage)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

// Get godoc
// @Summary      Detalle de cualquier pedido (admin)
// @Tags         admin-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse{data=dto.OrderResponse}
// @Router       /api/v1/admin/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido (admin)
// @Tags         admin-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID (UUID)"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Estado"
// @Success      200  {object}  dto.APIResponse{data=dto.OrderResponse}
// @Router       /api/v1/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateOrderStatusRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Estado del pedido actualizado exitosamente")
}

// Update godoc
// @Summary      Actualizar pedido (admin)
// @Tags         admin-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID (UUID)"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos permitidos"
// @Success      200  {object}  dto.APIResponse{data=dto.OrderResponse}
// @Router       /api/v1/admin/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateOrderRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Pedido actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar pedido y sus items (admin)
// @Tags         admin-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID (UUID)"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/v1/admin/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), actorFrom(c), id); err != nil {
		return err
	}
	return respondMessage(c, "Pedido eliminado exitosamente")
}

// Stats godoc
// @Summary      Estadísticas de pedidos (admin)
// @Tags         admin-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.OrderStatsResponse}
// @Router       /api/v1/admin/orders/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, out)
}
