package usecase

import (
	"context"
	"encoding/json"

	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

// Actor usuario autenticado que ejecuta una operación (para auditoría).
type Actor struct {
	ID    string
	Email string
	Name  string
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, entity.Activity) {}

func recorderOrNop(r ports.ActivityRecorder) ports.ActivityRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func activity(kind string, actor Actor, entityID, entityName string, meta map[string]any) entity.Activity {
	a := entity.Activity{
		ActivityType: kind,
		EntityID:     entityID,
		EntityName:   entityName,
		UserID:       actor.ID,
		UserName:     actor.Name,
	}
	if actor.Name == "" {
		a.UserName = actor.Email
	}
	if len(meta) > 0 {
		if raw, err := json.Marshal(meta); err == nil {
			a.Metadata = raw
		}
	}
	return a
}
