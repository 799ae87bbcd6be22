package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus ciclo de vida comercial del producto.
type ProductStatus string

const (
	ProductActive     ProductStatus = "Activo"
	ProductInactive   ProductStatus = "Inactivo"
	ProductOutOfStock ProductStatus = "Sin Stock"
)

// Valid indica si s es uno de los estados conocidos.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductInactive, ProductOutOfStock:
		return true
	}
	return false
}

// LowStockThreshold stock a partir del cual un producto cuenta como "stock bajo" (0 < stock <= 5).
const LowStockThreshold = 5

// Product producto del catálogo. Category es el nombre de la categoría, no una FK.
// IsActive lo deriva la base de datos de Status (columna generada).
type Product struct {
	ID                 int64
	Name               string
	Description        string
	Category           string
	SKU                string
	Barcode            string
	ImageURL           string
	Price              decimal.Decimal
	CostPrice          decimal.NullDecimal
	DiscountPercentage decimal.Decimal
	Weight             decimal.NullDecimal
	Stock              int
	Status             ProductStatus
	IsActive           bool
	IsFeatured         bool
	Dimensions         json.RawMessage
	Tags               json.RawMessage
	Specifications     json.RawMessage
	SupplierInfo       json.RawMessage
	InventoryAlerts    json.RawMessage
	SEOData            json.RawMessage
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProductStats agregados sobre productos activos.
type ProductStats struct {
	Total        int
	Active       int
	OutOfStock   int
	Featured     int
	AveragePrice decimal.Decimal
	TotalStock   int64
	LowStock     int
}
