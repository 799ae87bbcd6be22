package ports

import (
	"context"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

// ActivityRecorder registra acciones administrativas. Un fallo nunca aborta la operación que se audita.
type ActivityRecorder interface {
	Record(ctx context.Context, a entity.Activity)
}
