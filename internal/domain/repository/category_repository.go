package repository

import (
	"context"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

// CategoryFilter filtros del listado. Status: "active", "inactive", "featured" o vacío.
type CategoryFilter struct {
	Search          string
	Status          string
	IncludeInactive bool
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	List(ctx context.Context, f CategoryFilter, page Page) ([]*entity.Category, int, error)
	Featured(ctx context.Context) ([]*entity.Category, error)
	// SoftDeleteUnused desactiva la categoría solo si ningún producto usa su nombre.
	// Devuelve domain.ErrNotFound o domain.ErrConflict cuando no aplica.
	SoftDeleteUnused(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*entity.CategoryStats, error)
}
