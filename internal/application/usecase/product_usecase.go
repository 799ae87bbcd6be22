package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/application/validation"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	activity ports.ActivityRecorder
}

// NewProductUseCase construye el caso de uso. activity puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, activity ports.ActivityRecorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, activity: recorderOrNop(activity)}
}

// List productos activos filtrados y paginados.
func (uc *ProductUseCase) List(ctx context.Context, f dto.ProductFilterRequest, page, perPage int) (*dto.ListResult[dto.ProductResponse], error) {
	filter := repository.ProductFilter{
		Category: ignoreAll(f.Category),
		Status:   ignoreAll(f.Status),
		Search:   strings.TrimSpace(f.Search),
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
		Featured: f.Featured,
		InStock:  f.InStock,
	}
	list, total, err := uc.repo.List(ctx, filter, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.ProductResponse]{
		Items:      toProductResponses(list),
		Pagination: dto.NewPagination(page, perPage, total),
	}, nil
}

// GetByID obtiene un producto por ID, incluso si está inactivo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Create crea un producto. Estado por defecto Activo; SKU PRD-XXXXXXXX si no se envía.
func (uc *ProductUseCase) Create(ctx context.Context, actor Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.NewValidationError("El precio no puede ser negativo", "price")
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return nil, domain.NewValidationError("El stock no puede ser negativo", "stock")
	}
	status := entity.ProductActive
	if in.Status != "" {
		status = entity.ProductStatus(in.Status)
		if !status.Valid() {
			return nil, invalidProductStatus()
		}
	}
	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = generateSKU()
	}
	discount := decimal.Zero
	if in.DiscountPercentage != nil {
		discount = *in.DiscountPercentage
	}

	p := &entity.Product{
		Name:               strings.TrimSpace(in.Name),
		Description:        in.Description,
		Category:           strings.TrimSpace(in.Category),
		SKU:                sku,
		Barcode:            in.Barcode,
		ImageURL:           in.ImageURL,
		Price:              *in.Price,
		CostPrice:          toNullDecimal(in.CostPrice),
		DiscountPercentage: discount,
		Weight:             toNullDecimal(in.Weight),
		Stock:              stock,
		Status:             status,
		IsFeatured:         in.IsFeatured,
		Dimensions:         in.Dimensions,
		Tags:               in.Tags,
		Specifications:     in.Specifications,
		SupplierInfo:       in.SupplierInfo,
		InventoryAlerts:    in.InventoryAlerts,
		SEOData:            in.SEOData,
		CreatedBy:          actor.ID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("Ya existe un producto con ese SKU", "sku")
		}
		return nil, err
	}
	uc.activity.Record(ctx, activity(entity.ActivityProductCreated, actor, strconv.FormatInt(p.ID, 10), p.Name, nil))
	return toProductResponse(p), nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *ProductUseCase) Update(ctx context.Context, actor Actor, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.SKU != nil {
		p.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.NewValidationError("El precio no puede ser negativo", "price")
		}
		p.Price = *in.Price
	}
	if in.CostPrice != nil {
		p.CostPrice = toNullDecimal(in.CostPrice)
	}
	if in.DiscountPercentage != nil {
		p.DiscountPercentage = *in.DiscountPercentage
	}
	if in.Weight != nil {
		p.Weight = toNullDecimal(in.Weight)
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.NewValidationError("El stock no puede ser negativo", "stock")
		}
		p.Stock = *in.Stock
	}
	if in.Status != nil {
		st := entity.ProductStatus(*in.Status)
		if !st.Valid() {
			return nil, invalidProductStatus()
		}
		p.Status = st
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if dto.Present(in.Dimensions) {
		p.Dimensions = in.Dimensions
	}
	if dto.Present(in.Tags) {
		p.Tags = in.Tags
	}
	if dto.Present(in.Specifications) {
		p.Specifications = in.Specifications
	}
	if dto.Present(in.SupplierInfo) {
		p.SupplierInfo = in.SupplierInfo
	}
	if dto.Present(in.InventoryAlerts) {
		p.InventoryAlerts = in.InventoryAlerts
	}
	if dto.Present(in.SEOData) {
		p.SEOData = in.SEOData
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("Ya existe un producto con ese SKU", "sku")
		}
		return nil, err
	}
	uc.activity.Record(ctx, activity(entity.ActivityProductUpdated, actor, strconv.FormatInt(p.ID, 10), p.Name, nil))
	return toProductResponse(p), nil
}

// SoftDelete marca el producto como Inactivo; sigue disponible por ID.
func (uc *ProductUseCase) SoftDelete(ctx context.Context, actor Actor, id int64) error {
	ok, err := uc.repo.SetStatus(ctx, id, entity.ProductInactive)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.activity.Record(ctx, activity(entity.ActivityProductDeleted, actor, strconv.FormatInt(id, 10), "",
		map[string]any{"soft": true}))
	return nil
}

// HardDelete elimina el producto definitivamente.
func (uc *ProductUseCase) HardDelete(ctx context.Context, actor Actor, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	uc.activity.Record(ctx, activity(entity.ActivityProductDeleted, actor, strconv.FormatInt(id, 10), "",
		map[string]any{"soft": false}))
	return nil
}

// UpdateStock fija el stock. No cambia el estado: "Sin Stock" se asigna manualmente.
func (uc *ProductUseCase) UpdateStock(ctx context.Context, actor Actor, id int64, in dto.UpdateStockRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if *in.Stock < 0 {
		return nil, domain.NewValidationError("El stock no puede ser negativo", "stock")
	}
	ok, err := uc.repo.UpdateStock(ctx, id, *in.Stock)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.activity.Record(ctx, activity(entity.ActivityProductUpdated, actor, strconv.FormatInt(id, 10), "",
		map[string]any{"stock": *in.Stock}))
	return uc.GetByID(ctx, id)
}

// Stats agregados de productos activos.
func (uc *ProductUseCase) Stats(ctx context.Context) (*dto.ProductStatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductStatsResponse{
		TotalProducts:    s.Total,
		ActiveProducts:   s.Active,
		OutOfStock:       s.OutOfStock,
		FeaturedProducts: s.Featured,
		AveragePrice:     s.AveragePrice.Round(2),
		TotalStock:       s.TotalStock,
		LowStockProducts: s.LowStock,
	}, nil
}

// Categories nombres de categoría en uso por productos activos.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.repo.DistinctCategories(ctx)
}

// Search búsqueda rápida; limit fuera de rango usa 10.
func (uc *ProductUseCase) Search(ctx context.Context, term string, limit int) ([]dto.ProductResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("Término de búsqueda requerido", "q")
	}
	if limit < 1 || limit > maxSearchLimit {
		limit = defaultSearchLimit
	}
	list, err := uc.repo.Search(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func invalidProductStatus() error {
	return domain.NewValidationError("Estado inválido. Estados válidos: Activo, Inactivo, Sin Stock", "status")
}

func generateSKU() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "PRD-" + strings.ToUpper(id[:8])
}

// ignoreAll trata "all" (valor del selector del frontend) como filtro vacío.
func ignoreAll(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return s
}
