package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `
	id, name, slug, COALESCE(description, ''), color, COALESCE(icon, ''), is_active, is_featured,
	sort_order, parent_id, COALESCE(created_by::text, ''), created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	db Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(db Querier) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.Icon, &c.IsActive, &c.IsFeatured,
		&c.SortOrder, &c.ParentID, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una categoría. Nombre o slug repetido -> domain.ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (name, slug, description, color, icon, is_active, is_featured, sort_order, parent_id, created_by)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, '')::uuid)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		c.Name, c.Slug, c.Description, c.Color, c.Icon, c.IsActive, c.IsFeatured, c.SortOrder, c.ParentID, c.CreatedBy,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) getOne(ctx context.Context, where string, arg any) (*entity.Category, error) {
	c, err := scanCategory(r.db.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetBySlug obtiene una categoría activa por slug.
func (r *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return r.getOne(ctx, "slug = $1 AND is_active = true", slug)
}

// GetByName obtiene una categoría por nombre exacto.
func (r *CategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return r.getOne(ctx, "name = $1", name)
}

// Update reescribe los campos editables.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories SET
			name = $2, slug = $3, description = NULLIF($4, ''), color = $5, icon = NULLIF($6, ''),
			is_active = $7, is_featured = $8, sort_order = $9, parent_id = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.Color, c.Icon, c.IsActive, c.IsFeatured, c.SortOrder, c.ParentID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func categoryWhere(f repository.CategoryFilter) *whereBuilder {
	w := &whereBuilder{}
	w.addSearch(f.Search, "name", "description")
	switch f.Status {
	case "active":
		w.add("is_active = true")
	case "inactive":
		w.add("is_active = false")
	case "featured":
		w.add("is_featured = true")
		w.add("is_active = true")
	default:
		if !f.IncludeInactive {
			w.add("is_active = true")
		}
	}
	return w
}

// List ordenado por sort_order y nombre.
func (r *CategoryRepo) List(ctx context.Context, f repository.CategoryFilter, page repository.Page) ([]*entity.Category, int, error) {
	w := categoryWhere(f)
	where := w.sql()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	query := `SELECT ` + categoryColumns + ` FROM categories` + where +
		` ORDER BY sort_order, name LIMIT ` + w.next(page.Size) + ` OFFSET ` + w.next(page.Offset())
	list, err := r.queryCategories(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	return list, total, nil
}

// Featured categorías destacadas y activas.
func (r *CategoryRepo) Featured(ctx context.Context) ([]*entity.Category, error) {
	list, err := r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE is_featured = true AND is_active = true ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("featured categories: %w", err)
	}
	return list, nil
}

func (r *CategoryRepo) queryCategories(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SoftDeleteUnused desactiva la categoría en una sola sentencia condicionada a que
// ningún producto use su nombre. Si no afecta filas distingue inexistente de en uso.
func (r *CategoryRepo) SoftDeleteUnused(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories c SET is_active = false, updated_at = now()
		WHERE c.id = $1
		  AND NOT EXISTS (SELECT 1 FROM products p WHERE p.category = c.name)`, id)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

// Stats total, destacadas y con/sin productos activos asociados por nombre.
func (r *CategoryRepo) Stats(ctx context.Context) (*entity.CategoryStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE c.is_featured),
			COUNT(*) FILTER (WHERE EXISTS (
				SELECT 1 FROM products p WHERE p.category = c.name AND p.is_active = true))
		FROM categories c
		WHERE c.is_active = true`
	var s entity.CategoryStats
	if err := r.db.QueryRow(ctx, query).Scan(&s.Total, &s.Featured, &s.WithProducts); err != nil {
		return nil, fmt.Errorf("category stats: %w", err)
	}
	s.WithoutProducts = s.Total - s.WithProducts
	return &s, nil
}
