package repository

import (
	"context"
	"time"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

// AnalyticsRepository métricas diarias y bitácora de actividad.
type AnalyticsRepository interface {
	// ComputeDailyMetrics calcula y guarda (upsert) la foto del día.
	ComputeDailyMetrics(ctx context.Context, day time.Time) (*entity.DailyMetrics, error)
	MetricsBetween(ctx context.Context, from, to time.Time) ([]*entity.DailyMetrics, error)
	LogActivity(ctx context.Context, a *entity.Activity) error
	RecentActivity(ctx context.Context, limit int) ([]*entity.Activity, error)
}
