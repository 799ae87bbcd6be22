package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DailyMetrics foto diaria de indicadores del dashboard (una fila por fecha).
type DailyMetrics struct {
	Date             time.Time
	TotalOrders      int
	TotalRevenue     decimal.Decimal
	PendingOrders    int
	NewUsers         int
	ActiveProducts   int
	LowStockProducts int
	UpdatedAt        time.Time
}

// Activity registro de auditoría de una acción administrativa.
type Activity struct {
	ID           int64
	ActivityType string
	EntityID     string
	EntityName   string
	UserID       string
	UserName     string
	Metadata     json.RawMessage
	CreatedAt    time.Time
}

// Tipos de actividad registrados por los casos de uso.
const (
	ActivityProductCreated  = "product_created"
	ActivityProductUpdated  = "product_updated"
	ActivityProductDeleted  = "product_deleted"
	ActivityCategoryCreated = "category_created"
	ActivityCategoryUpdated = "category_updated"
	ActivityCategoryDeleted = "category_deleted"
	ActivityOrderCreated    = "order_created"
	ActivityOrderStatus     = "order_status_changed"
	ActivityOrderDeleted    = "order_deleted"
	ActivityUserCreated     = "user_created"
	ActivityUserUpdated     = "user_updated"
	ActivityUserDeleted     = "user_deleted"
	ActivityRatingModerated = "rating_moderated"
	ActivityMetricsComputed = "daily_metrics_calculated"
)
