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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `
	id, name, COALESCE(description, ''), category, COALESCE(sku, ''), COALESCE(barcode, ''),
	COALESCE(image_url, ''), price, cost_price, discount_percentage, weight, stock, status,
	is_active, is_featured, dimensions, tags, specifications, supplier_info, inventory_alerts,
	seo_data, COALESCE(created_by::text, ''), created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador; acepta pool o transacción.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Category, &p.SKU, &p.Barcode,
		&p.ImageURL, &p.Price, &p.CostPrice, &p.DiscountPercentage, &p.Weight, &p.Stock, &p.Status,
		&p.IsActive, &p.IsFeatured, &p.Dimensions, &p.Tags, &p.Specifications, &p.SupplierInfo, &p.InventoryAlerts,
		&p.SEOData, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto y completa ID, IsActive y timestamps.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (
			name, description, category, sku, barcode, image_url, price, cost_price,
			discount_percentage, weight, stock, status, is_featured, dimensions, tags,
			specifications, supplier_info, inventory_alerts, seo_data, created_by)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NULLIF($20, '')::uuid)
		RETURNING id, is_active, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		p.Name, p.Description, p.Category, p.SKU, p.Barcode, p.ImageURL, p.Price, p.CostPrice,
		p.DiscountPercentage, p.Weight, p.Stock, p.Status, p.IsFeatured, p.Dimensions, p.Tags,
		p.Specifications, p.SupplierInfo, p.InventoryAlerts, p.SEOData, p.CreatedBy,
	).Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no). nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// Update reescribe los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET
			name = $2, description = NULLIF($3, ''), category = $4, sku = NULLIF($5, ''),
			barcode = NULLIF($6, ''), image_url = NULLIF($7, ''), price = $8, cost_price = $9,
			discount_percentage = $10, weight = $11, stock = $12, status = $13, is_featured = $14,
			dimensions = $15, tags = $16, specifications = $17, supplier_info = $18,
			inventory_alerts = $19, seo_data = $20, updated_at = now()
		WHERE id = $1
		RETURNING is_active, updated_at`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.Name, p.Description, p.Category, p.SKU,
		p.Barcode, p.ImageURL, p.Price, p.CostPrice,
		p.DiscountPercentage, p.Weight, p.Stock, p.Status, p.IsFeatured,
		p.Dimensions, p.Tags, p.Specifications, p.SupplierInfo,
		p.InventoryAlerts, p.SEOData,
	).Scan(&p.IsActive, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func productWhere(f repository.ProductFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("is_active = true")
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	w.addSearch(f.Search, "name", "description", "sku")
	if f.MinPrice != nil {
		w.add("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.add("price <= ?", *f.MaxPrice)
	}
	if f.Featured != nil {
		w.add("is_featured = ?", *f.Featured)
	}
	if f.InStock {
		w.add("stock > 0")
	}
	return w
}

// List devuelve la página pedida y el total de productos activos que cumplen el filtro.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter, page repository.Page) ([]*entity.Product, int, error) {
	w := productWhere(f)
	where := w.sql()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products` + where +
		` ORDER BY created_at DESC, id DESC LIMIT ` + w.next(page.Size) + ` OFFSET ` + w.next(page.Offset())
	list, err := r.queryProducts(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return list, total, nil
}

// Search búsqueda rápida por nombre, descripción o SKU sobre productos activos.
func (r *ProductRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	w := &whereBuilder{}
	w.add("is_active = true")
	w.addSearch(term, "name", "description", "sku")
	query := `SELECT ` + productColumns + ` FROM products` + w.sql() + ` ORDER BY name LIMIT ` + w.next(limit)
	list, err := r.queryProducts(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return list, nil
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SetStatus cambia el estado (soft delete = Inactivo). false si el producto no existe.
func (r *ProductRepo) SetStatus(ctx context.Context, id int64, status entity.ProductStatus) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE products SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("set product status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStock fija el stock. El CHECK de la tabla rechaza negativos.
func (r *ProductRepo) UpdateStock(ctx context.Context, id int64, stock int) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return false, fmt.Errorf("update product stock: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina físicamente el producto.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Stats agregados sobre productos activos en una sola pasada.
func (r *ProductRepo) Stats(ctx context.Context) (*entity.ProductStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Activo'),
			COUNT(*) FILTER (WHERE status = 'Sin Stock'),
			COUNT(*) FILTER (WHERE is_featured),
			COALESCE(ROUND(AVG(price), 2), 0),
			COALESCE(SUM(stock), 0),
			COUNT(*) FILTER (WHERE stock > 0 AND stock <= $1)
		FROM products
		WHERE is_active = true`
	var s entity.ProductStats
	err := r.db.QueryRow(ctx, query, entity.LowStockThreshold).Scan(
		&s.Total, &s.Active, &s.OutOfStock, &s.Featured, &s.AveragePrice, &s.TotalStock, &s.LowStock,
	)
	if err != nil {
		return nil, fmt.Errorf("product stats: %w", err)
	}
	return &s, nil
}

// DistinctCategories nombres de categoría usados por productos activos.
func (r *ProductRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM products WHERE is_active = true ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
