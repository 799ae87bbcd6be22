package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `
	id::text, user_id::text, customer_name, customer_email, customer_phone, shipping_address,
	shipping_city, shipping_state, COALESCE(shipping_zip_code, ''), shipping_country, subtotal,
	shipping_cost, total_amount, payment_method, shipping_method, status, COALESCE(comments, ''),
	whatsapp_sent, COALESCE(tracking_number, ''), COALESCE(tracking_url, ''), created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	db Querier
}

// NewOrderRepository construye el adaptador; acepta pool o transacción.
func NewOrderRepository(db Querier) *OrderRepo {
	return &OrderRepo{db: db}
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.ShippingAddress,
		&o.ShippingCity, &o.ShippingState, &o.ShippingZipCode, &o.ShippingCountry, &o.Subtotal,
		&o.ShippingCost, &o.TotalAmount, &o.PaymentMethod, &o.ShippingMethod, &o.Status, &o.Comments,
		&o.WhatsappSent, &o.TrackingNumber, &o.TrackingURL, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserta la cabecera del pedido y completa ID y timestamps.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (
			user_id, customer_name, customer_email, customer_phone, shipping_address, shipping_city,
			shipping_state, shipping_zip_code, shipping_country, subtotal, shipping_cost, total_amount,
			payment_method, shipping_method, status, comments, whatsapp_sent)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15, NULLIF($16, ''), $17)
		RETURNING id::text, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.ShippingAddress, o.ShippingCity,
		o.ShippingState, o.ShippingZipCode, o.ShippingCountry, o.Subtotal, o.ShippingCost, o.TotalAmount,
		o.PaymentMethod, o.ShippingMethod, o.Status, o.Comments, o.WhatsappSent,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// AddItem inserta una línea de pedido.
func (r *OrderRepo) AddItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, product_name, product_price, quantity, total_price)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.db.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.ProductName, item.ProductPrice, item.Quantity, item.TotalPrice,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera del pedido (sin items). nil, nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1::uuid`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	return o, nil
}

// Items líneas del pedido en orden de inserción.
func (r *OrderRepo) Items(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id::text, product_id, product_name, product_price, quantity, total_price, created_at
		FROM order_items WHERE order_id = $1::uuid ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	items := make([]entity.OrderItem, 0)
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductPrice,
			&it.Quantity, &it.TotalPrice, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func orderWhere(f repository.OrderFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.UserID != "" {
		w.add("user_id = ?::uuid", f.UserID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	return w
}

// List pedidos más recientes primero, filtrados por usuario y/o estado.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter, page repository.Page) ([]*entity.Order, int, error) {
	w := orderWhere(f)
	where := w.sql()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where +
		` ORDER BY created_at DESC LIMIT ` + w.next(page.Size) + ` OFFSET ` + w.next(page.Offset())
	rows, err := r.db.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, total, rows.Err()
}

// Update reescribe los campos que un administrador puede modificar.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE orders SET
			status = $2, customer_name = $3, customer_email = $4, customer_phone = $5,
			shipping_address = $6, shipping_city = $7, shipping_state = $8,
			shipping_zip_code = NULLIF($9, ''), comments = NULLIF($10, ''),
			tracking_number = NULLIF($11, ''), tracking_url = NULLIF($12, ''), updated_at = now()
		WHERE id = $1::uuid
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		o.ID, o.Status, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.ShippingAddress, o.ShippingCity, o.ShippingState,
		o.ShippingZipCode, o.Comments,
		o.TrackingNumber, o.TrackingURL,
	).Scan(&o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado. false si el pedido no existe.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = $2, updated_at = now() WHERE id = $1::uuid`, id, status)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina el pedido; order_items cae por ON DELETE CASCADE.
func (r *OrderRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1::uuid`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Stats total, conteo por estado y ventas de pedidos entregados.
func (r *OrderRepo) Stats(ctx context.Context) (*entity.OrderStats, error) {
	s := &entity.OrderStats{StatusCounts: make(map[string]int), TotalSales: decimal.Zero}
	for _, st := range entity.OrderStatuses {
		s.StatusCounts[string(st)] = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
			sum    decimal.Decimal
		)
		if err := rows.Scan(&status, &count, &sum); err != nil {
			return nil, fmt.Errorf("scan order stats: %w", err)
		}
		s.StatusCounts[status] = count
		s.Total += count
		if status == string(entity.OrderDelivered) {
			s.TotalSales = sum
		}
	}
	return s, rows.Err()
}
