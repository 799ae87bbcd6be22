package repository

import (
	"context"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

// RatingRepository define el puerto de persistencia para ProductRating.
type RatingRepository interface {
	CanUserRate(ctx context.Context, userID string, productID int64, orderID string) (bool, error)
	// CreateIfEligible inserta solo si el predicado de elegibilidad se cumple.
	// Devuelve domain.ErrNotEligible o domain.ErrDuplicate cuando no aplica.
	CreateIfEligible(ctx context.Context, r *entity.ProductRating) error
	GetByID(ctx context.Context, id string) (*entity.ProductRating, error)
	ListApprovedByProduct(ctx context.Context, productID int64, page Page) ([]*entity.ProductRating, int, error)
	ListByUser(ctx context.Context, userID string, page Page) ([]*entity.ProductRating, int, error)
	ListPending(ctx context.Context, page Page) ([]*entity.ProductRating, int, error)
	ProductStats(ctx context.Context, productID int64) (*entity.RatingStats, error)
	Update(ctx context.Context, r *entity.ProductRating) error
	Delete(ctx context.Context, id string) (bool, error)
	Moderate(ctx context.Context, id string, approved bool, flagReason string) (bool, error)
}
