package ports

import "context"

// IdentityProvider operaciones administrativas sobre las cuentas del proveedor de identidad.
type IdentityProvider interface {
	UpdateEmail(ctx context.Context, userID, email string) error
	DeleteUser(ctx context.Context, userID string) error
}
