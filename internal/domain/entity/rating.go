package entity

import "time"

// ProductRating reseña de un producto comprado. Única por (UserID, ProductID, OrderID).
type ProductRating struct {
	ID         string
	ProductID  int64
	UserID     string
	OrderID    string
	Rating     int
	Comment    string
	IsApproved bool
	IsFlagged  bool
	FlagReason string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Datos del autor (join con users), solo en listados públicos.
	ReviewerFirstName string
	ReviewerLastName  string
}

// RatingStats promedio y distribución de calificaciones aprobadas de un producto.
type RatingStats struct {
	Average      float64
	Total        int
	Distribution map[string]int
}
