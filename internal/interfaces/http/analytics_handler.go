package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bapesu/bapesu-api/internal/application/usecase"
	"github.com/bapesu/bapesu-api/internal/domain"
)

// AnalyticsHandler dashboard y bitácora (admin).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Métricas diarias de los últimos N días
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días"  default(30)
// @Success      200  {object}  dto.APIResponse{data=dto.DashboardResponse}
// @Router       /api/v1/admin/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext(), c.QueryInt("days", 0))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// Activity godoc
// @Summary      Actividad reciente
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Cantidad"  default(10)
// @Success      200  {object}  dto.APIResponse{data=[]dto.ActivityResponse}
// @Router       /api/v1/admin/analytics/activity [get]
func (h *AnalyticsHandler) Activity(c *fiber.Ctx) error {
	out, err := h.uc.RecentActivity(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return respondOK(c, out)
}

// RefreshMetrics godoc
// @Summary      Recalcular métricas de un día (hoy por defecto)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha YYYY-MM-DD"
// @Success      200  {object}  dto.APIResponse{data=dto.DailyMetricsResponse}
// @Router       /api/v1/admin/analytics/refresh-metrics [post]
func (h *AnalyticsHandler) RefreshMetrics(c *fiber.Ctx) error {
	var day time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return domain.NewValidationError("Fecha inválida, formato YYYY-MM-DD", "date")
		}
		day = d
	}
	out, err := h.uc.RefreshDailyMetrics(c.UserContext(), actorFrom(c), day)
	if err != nil {
		return err
	}
	return respondOK(c, out, "Métricas actualizadas exitosamente")
}
