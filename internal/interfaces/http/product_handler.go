package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/usecase"
	"github.com/bapesu/bapesu-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        page       query  int     false  "Página"  default(1)
// @Param        per_page   query  int     false  "Tamaño"  default(10)
// @Param        category   query  string  false  "Categoría"
// @Param        status     query  string  false  "Activo | Inactivo | Sin Stock"
// @Param        search     query  string  false  "Nombre, descripción o SKU"
// @Param        min_price  query  number  false  "Precio mínimo"
// @Param        max_price  query  number  false  "Precio máximo"
// @Param        featured   query  bool    false  "Solo destacados"
// @Param        in_stock   query  bool    false  "Solo con stock"
// @Success      200  {object}  dto.APIResponse{data=[]dto.ProductResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page, perPage, err := parsePage(c)
	if err != nil {
		return err
	}
	f := dto.ProductFilterRequest{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		InStock:  c.QueryBool("in_stock", false),
	}
	if f.MinPrice, err = queryDecimal(c, "min_price"); err != nil {
		return err
	}
	if f.MaxPrice, err = queryDecimal(c, "max_price"); err != nil {
		return err
	}
	if raw := c.Query("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.NewValidationError("El parámetro featured debe ser true o false", "featured")
		}
		f.Featured = &v
	}
	out, err := h.uc.List(c.UserContext(), f, page, perPage)
	if err != nil {
		return err
	}
	return respondList(c, out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.APIResponse{data=dto.ProductResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
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

// Search godoc
// @Summary      Búsqueda rápida de productos
// @Tags         products
// @Produce      json
// @Param        q      query  string  true   "Término"
// @Param        limit  query  int     false  "Máximo de resultados"  default(10)
// @Success      200  {object}  dto.APIResponse{data=[]dto.ProductResponse}
// @Router       /api/v1/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		term = c.Query("search")
	}
	if term == "" {
		return domain.NewValidationError("El parámetro q es requerido", "q")
	}
	out, err := h.uc.Search(c.UserContext(), term, c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Categories godoc
// @Summary      Categorías usadas por productos activos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]string}
// @Router       /api/v1/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.APIResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return err
	}
	return respondCreated(c, out, "Producto creado exitosamente")
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.APIResponse{data=dto.ProductResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateProductRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Producto actualizado exitosamente")
}

// Delete godoc
// @Summary      Desactivar producto (soft delete)
// @Tags         products
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.SoftDelete(c.UserContext(), actorFrom(c), id); err != nil {
		return err
	}
	return respondMessage(c, "Producto eliminado exitosamente")
}

// HardDelete godoc
// @Summary      Eliminar producto definitivamente
// @Tags         products
// @Security     Bearer
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id}/hard-delete [delete]
func (h *ProductHandler) HardDelete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.HardDelete(c.UserContext(), actorFrom(c), id); err != nil {
		return err
	}
	return respondMessage(c, "Producto eliminado permanentemente")
}

// UpdateStock godoc
// @Summary      Actualizar stock
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del producto"
// @Param        body  body  dto.UpdateStockRequest  true  "Nuevo stock"
// @Success      200   {object}  dto.APIResponse{data=dto.ProductResponse}
// @Router       /api/v1/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.UpdateStockRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	out, err := h.uc.UpdateStock(c.UserContext(), actorFrom(c), id, in)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Stock actualizado exitosamente")
}

// Stats godoc
// @Summary      Estadísticas de productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.ProductStatsResponse}
// @Router       /api/v1/products/stats [get]
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.NewValidationError("El parámetro "+key+" debe ser numérico", key)
	}
	return &d, nil
}
