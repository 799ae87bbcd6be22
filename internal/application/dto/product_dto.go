package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name               string           `json:"name" validate:"required,max=200"`
	Description        string           `json:"description"`
	Category           string           `json:"category" validate:"required,max=100"`
	SKU                string           `json:"sku" validate:"max=100"`
	Barcode            string           `json:"barcode"`
	ImageURL           string           `json:"image_url" validate:"omitempty,url"`
	Price              *decimal.Decimal `json:"price" validate:"required"`
	CostPrice          *decimal.Decimal `json:"cost_price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	Weight             *decimal.Decimal `json:"weight"`
	Stock              *int             `json:"stock"`
	Status             string           `json:"status"`
	IsFeatured         bool             `json:"is_featured"`
	Dimensions         json.RawMessage  `json:"dimensions" swaggertype:"object"`
	Tags               json.RawMessage  `json:"tags" swaggertype:"array,string"`
	Specifications     json.RawMessage  `json:"specifications" swaggertype:"object"`
	SupplierInfo       json.RawMessage  `json:"supplier_info" swaggertype:"object"`
	InventoryAlerts    json.RawMessage  `json:"inventory_alerts" swaggertype:"object"`
	SEOData            json.RawMessage  `json:"seo_data" swaggertype:"object"`
}

// UpdateProductRequest actualización parcial: solo se aplican los campos presentes.
// Un campo enviado como null cuenta como ausente y conserva su valor actual;
// para vaciar un texto envíe "" y para un objeto JSON envíe {} o [].
type UpdateProductRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description        *string          `json:"description"`
	Category           *string          `json:"category" validate:"omitempty,min=1,max=100"`
	SKU                *string          `json:"sku" validate:"omitempty,max=100"`
	Barcode            *string          `json:"barcode"`
	ImageURL           *string          `json:"image_url"`
	Price              *decimal.Decimal `json:"price"`
	CostPrice          *decimal.Decimal `json:"cost_price"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage"`
	Weight             *decimal.Decimal `json:"weight"`
	Stock              *int             `json:"stock"`
	Status             *string          `json:"status"`
	IsFeatured         *bool            `json:"is_featured"`
	Dimensions         json.RawMessage  `json:"dimensions" swaggertype:"object"`
	Tags               json.RawMessage  `json:"tags" swaggertype:"array,string"`
	Specifications     json.RawMessage  `json:"specifications" swaggertype:"object"`
	SupplierInfo       json.RawMessage  `json:"supplier_info" swaggertype:"object"`
	InventoryAlerts    json.RawMessage  `json:"inventory_alerts" swaggertype:"object"`
	SEOData            json.RawMessage  `json:"seo_data" swaggertype:"object"`
}

// UpdateStockRequest entrada de PATCH /products/:id/stock.
type UpdateStockRequest struct {
	Stock *int `json:"stock" validate:"required"`
}

// ProductFilterRequest filtros de GET /products (query string).
type ProductFilterRequest struct {
	Category string
	Status   string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Featured *bool
	InStock  bool
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Category           string           `json:"category"`
	SKU                string           `json:"sku"`
	Barcode            string           `json:"barcode,omitempty"`
	ImageURL           string           `json:"image_url"`
	Price              decimal.Decimal  `json:"price"`
	CostPrice          *decimal.Decimal `json:"cost_price"`
	DiscountPercentage decimal.Decimal  `json:"discount_percentage"`
	Weight             *decimal.Decimal `json:"weight"`
	Stock              int              `json:"stock"`
	Status             string           `json:"status"`
	IsActive           bool             `json:"is_active"`
	IsFeatured         bool             `json:"is_featured"`
	Dimensions         json.RawMessage  `json:"dimensions,omitempty" swaggertype:"object"`
	Tags               json.RawMessage  `json:"tags,omitempty" swaggertype:"array,string"`
	Specifications     json.RawMessage  `json:"specifications,omitempty" swaggertype:"object"`
	SupplierInfo       json.RawMessage  `json:"supplier_info,omitempty" swaggertype:"object"`
	InventoryAlerts    json.RawMessage  `json:"inventory_alerts,omitempty" swaggertype:"object"`
	SEOData            json.RawMessage  `json:"seo_data,omitempty" swaggertype:"object"`
	CreatedBy          string           `json:"created_by,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ProductStatsResponse agregados de GET /products/stats.
type ProductStatsResponse struct {
	TotalProducts    int             `json:"total_products"`
	ActiveProducts   int             `json:"active_products"`
	OutOfStock       int             `json:"out_of_stock"`
	FeaturedProducts int             `json:"featured_products"`
	AveragePrice     decimal.Decimal `json:"average_price"`
	TotalStock       int64           `json:"total_stock"`
	LowStockProducts int             `json:"low_stock_products"`
}
