package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

const ratingColumns = `
	r.id::text, r.product_id, r.user_id::text, r.order_id::text, r.rating, COALESCE(r.comment, ''),
	r.is_approved, r.is_flagged, COALESCE(r.flag_reason, ''), r.created_at, r.updated_at,
	COALESCE(u.first_name, ''), COALESCE(u.last_name, '')`

const ratingFrom = ` FROM product_ratings r LEFT JOIN users u ON u.id = r.user_id`

// RatingRepo implementación del puerto RatingRepository sobre PostgreSQL.
type RatingRepo struct {
	db Querier
}

// NewRatingRepository construye el adaptador de persistencia para calificaciones.
func NewRatingRepository(db Querier) *RatingRepo {
	return &RatingRepo{db: db}
}

func scanRating(row pgx.Row) (*entity.ProductRating, error) {
	var r entity.ProductRating
	err := row.Scan(
		&r.ID, &r.ProductID, &r.UserID, &r.OrderID, &r.Rating, &r.Comment,
		&r.IsApproved, &r.IsFlagged, &r.FlagReason, &r.CreatedAt, &r.UpdatedAt,
		&r.ReviewerFirstName, &r.ReviewerLastName,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CanUserRate delega en la función can_user_rate_product de la base de datos.
func (r *RatingRepo) CanUserRate(ctx context.Context, userID string, productID int64, orderID string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, `SELECT can_user_rate_product($1::uuid, $2, $3::uuid)`, userID, productID, orderID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("can user rate product: %w", err)
	}
	return ok, nil
}

// CreateIfEligible inserta condicionado al predicado de elegibilidad en la misma sentencia.
// El índice único (user_id, product_id, order_id) resuelve la carrera entre dos inserciones.
func (r *RatingRepo) CreateIfEligible(ctx context.Context, rt *entity.ProductRating) error {
	query := `
		INSERT INTO product_ratings (product_id, user_id, order_id, rating, comment, is_approved, is_flagged)
		SELECT $1, $2::uuid, $3::uuid, $4, NULLIF($5, ''), $6, $7
		WHERE can_user_rate_product($2::uuid, $1, $3::uuid)
		RETURNING id::text, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		rt.ProductID, rt.UserID, rt.OrderID, rt.Rating, rt.Comment, rt.IsApproved, rt.IsFlagged,
	).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotEligible
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product rating: %w", err)
	}
	return nil
}

// GetByID obtiene una calificación. nil, nil si no existe.
func (r *RatingRepo) GetByID(ctx context.Context, id string) (*entity.ProductRating, error) {
	rt, err := scanRating(r.db.QueryRow(ctx, `SELECT `+ratingColumns+ratingFrom+` WHERE r.id = $1::uuid`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product rating: %w", err)
	}
	return rt, nil
}

func (r *RatingRepo) listPaged(ctx context.Context, w *whereBuilder, page repository.Page) ([]*entity.ProductRating, int, error) {
	where := w.sql()
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM product_ratings r`+where, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count product ratings: %w", err)
	}
	query := `SELECT ` + ratingColumns + ratingFrom + where +
		` ORDER BY r.created_at DESC LIMIT ` + w.next(page.Size) + ` OFFSET ` + w.next(page.Offset())
	list, err := r.queryRatings(ctx, query, w.args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListApprovedByProduct reseñas aprobadas de un producto, con nombre del autor.
func (r *RatingRepo) ListApprovedByProduct(ctx context.Context, productID int64, page repository.Page) ([]*entity.ProductRating, int, error) {
	w := &whereBuilder{}
	w.add("r.product_id = ?", productID)
	w.add("r.is_approved = true")
	return r.listPaged(ctx, w, page)
}

// ListPending reseñas no aprobadas (moderación).
func (r *RatingRepo) ListPending(ctx context.Context, page repository.Page) ([]*entity.ProductRating, int, error) {
	w := &whereBuilder{}
	w.add("r.is_approved = false")
	return r.listPaged(ctx, w, page)
}

// ListByUser reseñas de un usuario, más recientes primero.
func (r *RatingRepo) ListByUser(ctx context.Context, userID string, page repository.Page) ([]*entity.ProductRating, int, error) {
	w := &whereBuilder{}
	w.add("r.user_id = ?::uuid", userID)
	return r.listPaged(ctx, w, page)
}

func (r *RatingRepo) queryRatings(ctx context.Context, query string, args ...any) ([]*entity.ProductRating, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list product ratings: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductRating, 0)
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product rating: %w", err)
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

// ProductStats promedio (2 decimales), total y distribución "1".."5" de reseñas aprobadas.
func (r *RatingRepo) ProductStats(ctx context.Context, productID int64) (*entity.RatingStats, error) {
	s := &entity.RatingStats{Distribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}}
	rows, err := r.db.Query(ctx, `
		SELECT rating, COUNT(*) FROM product_ratings
		WHERE product_id = $1 AND is_approved = true
		GROUP BY rating`, productID)
	if err != nil {
		return nil, fmt.Errorf("product rating stats: %w", err)
	}
	defer rows.Close()
	sum := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("scan rating stats: %w", err)
		}
		s.Distribution[strconv.Itoa(rating)] = count
		s.Total += count
		sum += rating * count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if s.Total > 0 {
		s.Average = float64(int(float64(sum)/float64(s.Total)*100+0.5)) / 100
	}
	return s, nil
}

// Update cambia puntuación y comentario.
func (r *RatingRepo) Update(ctx context.Context, rt *entity.ProductRating) error {
	err := r.db.QueryRow(ctx, `
		UPDATE product_ratings SET rating = $2, comment = NULLIF($3, ''), updated_at = now()
		WHERE id = $1::uuid
		RETURNING updated_at`, rt.ID, rt.Rating, rt.Comment).Scan(&rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product rating: %w", err)
	}
	return nil
}

// Delete elimina la reseña.
func (r *RatingRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM product_ratings WHERE id = $1::uuid`, id)
	if err != nil {
		return false, fmt.Errorf("delete product rating: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Moderate aprueba (approved=true) o rechaza marcando la reseña con el motivo.
func (r *RatingRepo) Moderate(ctx context.Context, id string, approved bool, flagReason string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE product_ratings
		SET is_approved = $2, is_flagged = NOT $2, flag_reason = NULLIF($3, ''), updated_at = now()
		WHERE id = $1::uuid`, id, approved, flagReason)
	if err != nil {
		return false, fmt.Errorf("moderate product rating: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
