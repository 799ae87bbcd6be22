package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea del carrito al hacer checkout.
type OrderItemRequest struct {
	ProductID *int64           `json:"product_id"`
	Name      string           `json:"name" validate:"required"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest entrada de POST /orders. El user_id sale del token.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required"`
	CustomerEmail   string             `json:"customer_email" validate:"required,email"`
	CustomerPhone   string             `json:"customer_phone" validate:"required"`
	ShippingAddress string             `json:"shipping_address" validate:"required"`
	ShippingCity    string             `json:"shipping_city" validate:"required"`
	ShippingState   string             `json:"shipping_state" validate:"required"`
	ShippingZipCode string             `json:"shipping_zip_code"`
	ShippingCountry string             `json:"shipping_country"`
	Subtotal        *decimal.Decimal   `json:"subtotal" validate:"required"`
	ShippingCost    *decimal.Decimal   `json:"shipping_cost" validate:"required"`
	TotalAmount     *decimal.Decimal   `json:"total_amount" validate:"required"`
	PaymentMethod   string             `json:"payment_method" validate:"required"`
	ShippingMethod  string             `json:"shipping_method" validate:"required"`
	Comments        string             `json:"comments"`
	WhatsappSent    *bool              `json:"whatsapp_sent"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest entrada de PATCH /admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderRequest campos que un administrador puede modificar en un pedido.
type UpdateOrderRequest struct {
	Status          *string `json:"status"`
	CustomerName    *string `json:"customer_name" validate:"omitempty,min=1"`
	CustomerEmail   *string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone   *string `json:"customer_phone" validate:"omitempty,min=1"`
	ShippingAddress *string `json:"shipping_address" validate:"omitempty,min=1"`
	ShippingCity    *string `json:"shipping_city" validate:"omitempty,min=1"`
	ShippingState   *string `json:"shipping_state" validate:"omitempty,min=1"`
	ShippingZipCode *string `json:"shipping_zip_code"`
	Comments        *string `json:"comments"`
	TrackingNumber  *string `json:"tracking_number"`
	TrackingURL     *string `json:"tracking_url" validate:"omitempty,url"`
}

// Empty indica que no vino ningún campo actualizable.
func (r UpdateOrderRequest) Empty() bool {
	return r.Status == nil && r.CustomerName == nil && r.CustomerEmail == nil && r.CustomerPhone == nil &&
		r.ShippingAddress == nil && r.ShippingCity == nil && r.ShippingState == nil &&
		r.ShippingZipCode == nil && r.Comments == nil && r.TrackingNumber == nil && r.TrackingURL == nil
}

// OrderItemResponse línea de pedido.
type OrderItemResponse struct {
	ID           int64           `json:"id"`
	OrderID      string          `json:"order_id"`
	ProductID    *int64          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderResponse pedido; Items solo se incluye en consultas individuales.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone"`
	ShippingAddress string              `json:"shipping_address"`
	ShippingCity    string              `json:"shipping_city"`
	ShippingState   string              `json:"shipping_state"`
	ShippingZipCode string              `json:"shipping_zip_code"`
	ShippingCountry string              `json:"shipping_country"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	ShippingCost    decimal.Decimal     `json:"shipping_cost"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method"`
	ShippingMethod  string              `json:"shipping_method"`
	Status          string              `json:"status"`
	Comments        string              `json:"comments"`
	WhatsappSent    bool                `json:"whatsapp_sent"`
	TrackingNumber  string              `json:"tracking_number"`
	TrackingURL     string              `json:"tracking_url"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

// OrderStatsResponse agregados de GET /admin/orders/stats.
type OrderStatsResponse struct {
	TotalOrders  int             `json:"total_orders"`
	StatusCounts map[string]int  `json:"status_counts"`
	TotalSales   decimal.Decimal `json:"total_sales"`
}
