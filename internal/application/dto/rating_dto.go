package dto

import "time"

// CreateRatingRequest entrada de POST /product-ratings.
type CreateRatingRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	OrderID   string `json:"order_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

// UpdateRatingRequest entrada de PUT /product-ratings/:id.
type UpdateRatingRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// RejectRatingRequest motivo del rechazo.
type RejectRatingRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ReviewerResponse autor visible de la reseña.
type ReviewerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RatingResponse salida de una reseña.
type RatingResponse struct {
	ID         string            `json:"id"`
	ProductID  int64             `json:"product_id"`
	UserID     string            `json:"user_id"`
	OrderID    string            `json:"order_id"`
	Rating     int               `json:"rating"`
	Comment    string            `json:"comment"`
	IsApproved bool              `json:"is_approved"`
	IsFlagged  bool              `json:"is_flagged"`
	FlagReason string            `json:"flag_reason,omitempty"`
	Reviewer   *ReviewerResponse `json:"users,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// RatingStatsResponse estadísticas de calificaciones de un producto.
type RatingStatsResponse struct {
	AverageRating      float64        `json:"average_rating"`
	TotalRatings       int            `json:"total_ratings"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

// CanRateResponse resultado de GET /product-ratings/can-rate.
type CanRateResponse struct {
	CanRate bool `json:"can_rate"`
}
