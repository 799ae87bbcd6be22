package repository

import (
	"context"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter filtros conjuntivos del listado de productos. Campos vacíos/nil no filtran.
type ProductFilter struct {
	Category string
	Status   string
	Search   string // name, description, sku (ILIKE)
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Featured *bool
	InStock  bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los listados solo devuelven productos activos.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	List(ctx context.Context, f ProductFilter, page Page) ([]*entity.Product, int, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)
	SetStatus(ctx context.Context, id int64, status entity.ProductStatus) (bool, error)
	UpdateStock(ctx context.Context, id int64, stock int) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context) (*entity.ProductStats, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}
