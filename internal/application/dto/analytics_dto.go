package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DailyMetricsResponse fila diaria del dashboard.
type DailyMetricsResponse struct {
	Date             string          `json:"date"`
	TotalOrders      int             `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	PendingOrders    int             `json:"pending_orders"`
	NewUsers         int             `json:"new_users"`
	ActiveProducts   int             `json:"active_products"`
	LowStockProducts int             `json:"low_stock_products"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// DashboardResponse métricas de los últimos N días más totales del periodo.
type DashboardResponse struct {
	Days         int                    `json:"days"`
	Metrics      []DailyMetricsResponse `json:"metrics"`
	TotalOrders  int                    `json:"total_orders"`
	TotalRevenue decimal.Decimal        `json:"total_revenue"`
	NewUsers     int                    `json:"new_users"`
}

// ActivityResponse entrada de la bitácora.
type ActivityResponse struct {
	ID           int64           `json:"id"`
	ActivityType string          `json:"activity_type"`
	EntityID     string          `json:"entity_id,omitempty"`
	EntityName   string          `json:"entity_name,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	UserName     string          `json:"user_name,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
	CreatedAt    time.Time       `json:"created_at"`
}
