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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `
	id::text, email, first_name, last_name, role, is_active, COALESCE(phone, ''),
	COALESCE(avatar_url, ''), created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.Phone,
		&u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario. Email repetido -> domain.ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, email, first_name, last_name, role, is_active, phone, avatar_url)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		u.ID, u.Email, u.FirstName, u.LastName, u.Role, u.IsActive, u.Phone, u.AvatarURL,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. nil, nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1::uuid`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET
			email = $2, first_name = $3, last_name = $4, role = $5, is_active = $6,
			phone = NULLIF($7, ''), avatar_url = NULLIF($8, ''), updated_at = now()
		WHERE id = $1::uuid
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		u.ID, u.Email, u.FirstName, u.LastName, u.Role, u.IsActive, u.Phone, u.AvatarURL,
	).Scan(&u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// SetActive activa o desactiva. false si el usuario no existe.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1::uuid`, id, active)
	if err != nil {
		return false, fmt.Errorf("set user active: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina el perfil.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1::uuid`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func userWhere(f repository.UserFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.Active != nil {
		w.add("is_active = ?", *f.Active)
	}
	if f.Role != "" {
		w.add("role = ?", f.Role)
	}
	w.addSearch(f.Search, "first_name", "last_name", "email")
	return w
}

// List usuarios más recientes primero con filtros de estado, rol y búsqueda.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter, page repository.Page) ([]*entity.User, int, error) {
	w := userWhere(f)
	where := w.sql()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	query := `SELECT ` + userColumns + ` FROM users` + where +
		` ORDER BY created_at DESC LIMIT ` + w.next(page.Size) + ` OFFSET ` + w.next(page.Offset())
	list, err := r.queryUsers(ctx, query, w.args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Recent últimos usuarios registrados.
func (r *UserRepo) Recent(ctx context.Context, limit int) ([]*entity.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1`, limit)
}

func (r *UserRepo) queryUsers(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Stats totales, activos/inactivos y conteo por rol.
func (r *UserRepo) Stats(ctx context.Context) (*entity.UserStats, error) {
	s := &entity.UserStats{RoleCounts: map[string]int{
		entity.RoleCustomer: 0, entity.RoleAdmin: 0, entity.RoleVendor: 0,
	}}
	rows, err := r.db.Query(ctx, `SELECT role, is_active, COUNT(*) FROM users GROUP BY role, is_active`)
	if err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			role   string
			active bool
			count  int
		)
		if err := rows.Scan(&role, &active, &count); err != nil {
			return nil, fmt.Errorf("scan user stats: %w", err)
		}
		s.Total += count
		s.RoleCounts[role] += count
		if active {
			s.Active += count
		} else {
			s.Inactive += count
		}
	}
	return s, rows.Err()
}
