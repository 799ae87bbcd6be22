package repository

import (
	"context"

	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos.
type OrderFilter struct {
	UserID string
	Status string
}

// OrderRepository define el puerto de persistencia para Order y sus OrderItem.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	AddItem(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Items(ctx context.Context, orderID string) ([]entity.OrderItem, error)
	List(ctx context.Context, f OrderFilter, page Page) ([]*entity.Order, int, error)
	Update(ctx context.Context, o *entity.Order) error
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*entity.OrderStats, error)
}

// OrderTxRunner ejecuta fn con un OrderRepository atado a una transacción.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders OrderRepository) error) error
}
