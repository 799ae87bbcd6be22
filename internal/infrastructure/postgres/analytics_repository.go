package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo métricas diarias del dashboard y bitácora system_activity.
type AnalyticsRepo struct {
	db Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db Querier) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// ComputeDailyMetrics agrega pedidos, ingresos (excluye cancelados), usuarios nuevos e
// inventario del día y hace upsert en dashboard_metrics.
func (r *AnalyticsRepo) ComputeDailyMetrics(ctx context.Context, day time.Time) (*entity.DailyMetrics, error) {
	const query = `
	WITH o AS (
	    SELECT
	        COUNT(*)                                                        AS total_orders,
	        COALESCE(SUM(total_amount) FILTER (WHERE status <> 'cancelled'), 0) AS total_revenue,
	        COUNT(*) FILTER (WHERE status = 'pending')                      AS pending_orders
	    FROM orders
	    WHERE created_at >= $1::date AND created_at < $1::date + 1
	), u AS (
	    SELECT COUNT(*) AS new_users
	    FROM users
	    WHERE created_at >= $1::date AND created_at < $1::date + 1
	), p AS (
	    SELECT
	        COUNT(*)                                        AS active_products,
	        COUNT(*) FILTER (WHERE stock > 0 AND stock <= $2) AS low_stock_products
	    FROM products
	    WHERE is_active = true
	)
	INSERT INTO dashboard_metrics AS d (
	    date, total_orders, total_revenue, pending_orders, new_users, active_products, low_stock_products, updated_at)
	SELECT $1::date, o.total_orders, o.total_revenue, o.pending_orders, u.new_users,
	       p.active_products, p.low_stock_products, now()
	FROM o, u, p
	ON CONFLICT (date) DO UPDATE SET
	    total_orders       = EXCLUDED.total_orders,
	    total_revenue      = EXCLUDED.total_revenue,
	    pending_orders     = EXCLUDED.pending_orders,
	    new_users          = EXCLUDED.new_users,
	    active_products    = EXCLUDED.active_products,
	    low_stock_products = EXCLUDED.low_stock_products,
	    updated_at         = now()
	RETURNING date, total_orders, total_revenue, pending_orders, new_users, active_products, low_stock_products, updated_at`

	var m entity.DailyMetrics
	err := r.db.QueryRow(ctx, query, day.Format(time.DateOnly), entity.LowStockThreshold).Scan(
		&m.Date, &m.TotalOrders, &m.TotalRevenue, &m.PendingOrders, &m.NewUsers,
		&m.ActiveProducts, &m.LowStockProducts, &m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.ComputeDailyMetrics: %w", err)
	}
	return &m, nil
}

// MetricsBetween filas de dashboard_metrics en [from, to], más recientes primero.
func (r *AnalyticsRepo) MetricsBetween(ctx context.Context, from, to time.Time) ([]*entity.DailyMetrics, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date, total_orders, total_revenue, pending_orders, new_users, active_products, low_stock_products, updated_at
		FROM dashboard_metrics
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date DESC`, from.Format(time.DateOnly), to.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("analytics.MetricsBetween: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.DailyMetrics, 0)
	for rows.Next() {
		var m entity.DailyMetrics
		if err := rows.Scan(&m.Date, &m.TotalOrders, &m.TotalRevenue, &m.PendingOrders, &m.NewUsers,
			&m.ActiveProducts, &m.LowStockProducts, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("analytics.MetricsBetween scan: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// LogActivity inserta una fila en system_activity.
func (r *AnalyticsRepo) LogActivity(ctx context.Context, a *entity.Activity) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO system_activity (activity_type, entity_id, entity_name, user_id, user_name, metadata)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, '')::uuid, NULLIF($5, ''), $6)
		RETURNING id, created_at`,
		a.ActivityType, a.EntityID, a.EntityName, a.UserID, a.UserName, a.Metadata,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("analytics.LogActivity: %w", err)
	}
	return nil
}

// RecentActivity últimas actividades registradas.
func (r *AnalyticsRepo) RecentActivity(ctx context.Context, limit int) ([]*entity.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, activity_type, COALESCE(entity_id, ''), COALESCE(entity_name, ''),
		       COALESCE(user_id::text, ''), COALESCE(user_name, ''), metadata, created_at
		FROM system_activity
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecentActivity: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Activity, 0)
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.ActivityType, &a.EntityID, &a.EntityName,
			&a.UserID, &a.UserName, &a.Metadata, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("analytics.RecentActivity scan: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
