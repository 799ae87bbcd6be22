package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

func TestReceiptGenerator_RenderOrderReceipt(t *testing.T) {
	price := decimal.NewFromInt(25000)
	o := &entity.Order{
		ID:              "3f2a9c1e-8b7d-4e6f-a1b2-c3d4e5f6a7b8",
		CustomerName:    "Ana Pérez",
		CustomerEmail:   "ana@example.com",
		ShippingAddress: "Calle 10 # 20-30",
		ShippingCity:    "Medellín",
		ShippingState:   "Antioquia",
		ShippingCountry: entity.DefaultShippingCountry,
		Subtotal:        decimal.NewFromInt(50000),
		ShippingCost:    decimal.NewFromInt(8000),
		TotalAmount:     decimal.NewFromInt(58000),
		PaymentMethod:   "contraentrega",
		ShippingMethod:  "estándar",
		Status:          entity.OrderDelivered,
		CreatedAt:       time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{ProductName: "Bolso tejido", ProductPrice: price, Quantity: 2, TotalPrice: entity.LineTotal(price, 2)},
		},
	}

	out, err := NewReceiptGenerator("Bapesu").RenderOrderReceipt(o)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestReceiptGenerator_Format(t *testing.T) {
	g := NewReceiptGenerator("Bapesu")
	assert.Equal(t, "$1.250.000", g.format(decimal.NewFromInt(1250000)))
	assert.Equal(t, "$0", g.format(decimal.Zero))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "3F2A9C1E", shortID("3f2a9c1e-8b7d"))
	assert.Equal(t, "Entregado", statusLabel(entity.OrderDelivered))
	assert.Equal(t, "otro", statusLabel(entity.OrderStatus("otro")))
	assert.Equal(t, []string{"a", "c"}, nonBlank("a", " ", "c"))
}
