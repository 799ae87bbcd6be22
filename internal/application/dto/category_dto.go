package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"max=120"`
	Description string `json:"description"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"is_active"`
	IsFeatured  bool   `json:"is_featured"`
	SortOrder   int    `json:"sort_order"`
	ParentID    *int64 `json:"parent_id"`
}

// UpdateCategoryRequest actualización parcial de categoría; null cuenta como ausente.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,max=120"`
	Description *string `json:"description"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  *bool   `json:"is_featured"`
	SortOrder   *int    `json:"sort_order"`
	ParentID    *int64  `json:"parent_id"`
}

// CategoryFilterRequest filtros de GET /categories.
type CategoryFilterRequest struct {
	Search          string
	Status          string
	IncludeInactive bool
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
	SortOrder   int       `json:"sort_order"`
	ParentID    *int64    `json:"parent_id"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryStatsResponse agregados de GET /categories/stats.
type CategoryStatsResponse struct {
	TotalCategories           int `json:"total_categories"`
	FeaturedCategories        int `json:"featured_categories"`
	CategoriesWithProducts    int `json:"categories_with_products"`
	CategoriesWithoutProducts int `json:"categories_without_products"`
}
