package repository

import (
	"context"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

// UserFilter filtros del listado de usuarios. Active nil no filtra.
type UserFilter struct {
	Active *bool
	Role   string
	Search string // first_name, last_name, email
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	SetActive(ctx context.Context, id string, active bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, f UserFilter, page Page) ([]*entity.User, int, error)
	Recent(ctx context.Context, limit int) ([]*entity.User, error)
	Stats(ctx context.Context) (*entity.UserStats, error)
}
