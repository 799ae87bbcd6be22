package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de un pedido.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses todos los estados en orden de avance.
var OrderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled,
}

// Valid indica si s es un estado de pedido válido.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DefaultShippingCountry país de envío cuando no se especifica.
const DefaultShippingCountry = "Colombia"

// Order cabecera de pedido. Items se llena al consultar un pedido individual.
type Order struct {
	ID              string
	UserID          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	ShippingCity    string
	ShippingState   string
	ShippingZipCode string
	ShippingCountry string
	Subtotal        decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalAmount     decimal.Decimal
	PaymentMethod   string
	ShippingMethod  string
	Status          OrderStatus
	Comments        string
	WhatsappSent    bool
	TrackingNumber  string
	TrackingURL     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItem
}

// OrderItem línea de pedido con snapshot de nombre y precio del producto.
type OrderItem struct {
	ID           int64
	OrderID      string
	ProductID    *int64
	ProductName  string
	ProductPrice decimal.Decimal
	Quantity     int
	TotalPrice   decimal.Decimal
	CreatedAt    time.Time
}

// LineTotal precio unitario por cantidad.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderStats agregados de pedidos. TotalSales suma solo pedidos entregados.
type OrderStats struct {
	Total        int
	StatusCounts map[string]int
	TotalSales   decimal.Decimal
}
