package entity

import "time"

// DefaultCategoryColor color asignado cuando no se envía uno.
const DefaultCategoryColor = "#3B82F6"

// Category categoría de productos (jerárquica opcional vía ParentID).
// Los productos la referencian por Name.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Color       string
	Icon        string
	IsActive    bool
	IsFeatured  bool
	SortOrder   int
	ParentID    *int64
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryStats agregados de categorías.
type CategoryStats struct {
	Total           int
	Featured        int
	WithProducts    int
	WithoutProducts int
}
