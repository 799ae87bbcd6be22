package dto

import "time"

// CreateUserRequest entrada para crear un perfil. ID es el del proveedor de identidad;
// si viene vacío se genera uno.
type CreateUserRequest struct {
	ID        string `json:"id" validate:"omitempty,uuid"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
	Role      string `json:"role" validate:"required"`
	IsActive  *bool  `json:"is_active"`
	Phone     string `json:"phone" validate:"max=30"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// UpdateUserRequest actualización parcial de usuario; null cuenta como ausente.
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	AvatarURL *string `json:"avatar_url"`
}

// UserFilterRequest filtros de GET /users. Status: "Activo" | "Inactivo".
type UserFilterRequest struct {
	Status string
	Role   string
	Search string
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserStatsResponse agregados de GET /users/stats.
type UserStatsResponse struct {
	TotalUsers    int            `json:"total_users"`
	ActiveUsers   int            `json:"active_users"`
	InactiveUsers int            `json:"inactive_users"`
	RoleCounts    map[string]int `json:"role_counts"`
}

// ProfileResponse salida de GET /user/profile.
type ProfileResponse struct {
	UserID  string        `json:"user_id"`
	Email   string        `json:"email"`
	Message string        `json:"message"`
	Profile *UserResponse `json:"profile,omitempty"`
}
