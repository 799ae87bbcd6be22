package entity

import "time"

// Roles válidos para User.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
)

// ValidRole indica si r es un rol de negocio conocido.
func ValidRole(r string) bool {
	return r == RoleCustomer || r == RoleAdmin || r == RoleVendor
}

// User perfil de usuario. El ID coincide con el del proveedor de identidad (Supabase Auth).
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Role      string
	IsActive  bool
	Phone     string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre y apellido separados por espacio.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserStats conteos de usuarios.
type UserStats struct {
	Total      int
	Active     int
	Inactive   int
	RoleCounts map[string]int
}
