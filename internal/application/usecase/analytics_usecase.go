package usecase

import (
	"context"
	"time"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/bapesu/bapesu-api/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	defaultDashboardDays = 30
	maxDashboardDays     = 365
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

// AnalyticsUseCase métricas diarias del dashboard y bitácora de actividad.
// También implementa ports.ActivityRecorder para el resto de casos de uso.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository, log *logger.Logger) *AnalyticsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AnalyticsUseCase{repo: repo, log: log, now: time.Now}
}

// Record guarda una entrada de auditoría. Los errores solo se registran en el log.
func (uc *AnalyticsUseCase) Record(ctx context.Context, a entity.Activity) {
	if err := uc.repo.LogActivity(ctx, &a); err != nil {
		uc.log.Warn().Err(err).Str("activity_type", a.ActivityType).Str("entity_id", a.EntityID).
			Msg("no se pudo registrar la actividad")
	}
}

// RefreshDailyMetrics recalcula la foto del día indicado (hoy si day es cero).
func (uc *AnalyticsUseCase) RefreshDailyMetrics(ctx context.Context, actor Actor, day time.Time) (*dto.DailyMetricsResponse, error) {
	if day.IsZero() {
		day = uc.now()
	}
	m, err := uc.repo.ComputeDailyMetrics(ctx, truncateDay(day))
	if err != nil {
		return nil, err
	}
	uc.Record(ctx, activity(entity.ActivityMetricsComputed, actor, m.Date.Format(time.DateOnly), "", nil))
	out := toDailyMetricsResponse(m)
	return &out, nil
}

// Dashboard métricas de los últimos days días. Si no hay ninguna fila se calcula la de hoy.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context, days int) (*dto.DashboardResponse, error) {
	if days < 1 || days > maxDashboardDays {
		days = defaultDashboardDays
	}
	to := truncateDay(uc.now())
	from := to.AddDate(0, 0, -(days - 1))

	list, err := uc.repo.MetricsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		m, err := uc.repo.ComputeDailyMetrics(ctx, to)
		if err != nil {
			return nil, err
		}
		list = []*entity.DailyMetrics{m}
	}

	out := &dto.DashboardResponse{
		Days:         days,
		Metrics:      make([]dto.DailyMetricsResponse, 0, len(list)),
		TotalRevenue: decimal.Zero,
	}
	for _, m := range list {
		out.Metrics = append(out.Metrics, toDailyMetricsResponse(m))
		out.TotalOrders += m.TotalOrders
		out.TotalRevenue = out.TotalRevenue.Add(m.TotalRevenue)
		out.NewUsers += m.NewUsers
	}
	return out, nil
}

// RecentActivity últimas entradas de la bitácora (10 por defecto).
func (uc *AnalyticsUseCase) RecentActivity(ctx context.Context, limit int) ([]dto.ActivityResponse, error) {
	if limit < 1 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}
	list, err := uc.repo.RecentActivity(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toActivityResponses(list), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
