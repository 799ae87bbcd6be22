package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/application/validation"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/bapesu/bapesu-api/pkg/logger"
	"github.com/google/uuid"
)

const (
	defaultRecentUsers = 5
	maxRecentUsers     = 50
)

// UserUseCase administración de perfiles de usuario.
// Los cambios de email y las eliminaciones se propagan al proveedor de identidad;
// si la propagación falla solo se registra en el log.
type UserUseCase struct {
	repo     repository.UserRepository
	identity ports.IdentityProvider
	activity ports.ActivityRecorder
	log      *logger.Logger
}

// NewUserUseCase construye el caso de uso. identity y activity pueden ser nil.
func NewUserUseCase(repo repository.UserRepository, identity ports.IdentityProvider, activity ports.ActivityRecorder, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{repo: repo, identity: identity, activity: recorderOrNop(activity), log: log}
}

// List usuarios filtrados por estado (Activo/Inactivo), rol y búsqueda.
func (uc *UserUseCase) List(ctx context.Context, f dto.UserFilterRequest, page, perPage int) (*dto.ListResult[dto.UserResponse], error) {
	filter := repository.UserFilter{Role: ignoreAll(f.Role), Search: strings.TrimSpace(f.Search)}
	switch ignoreAll(f.Status) {
	case "":
	case "Activo":
		active := true
		filter.Active = &active
	case "Inactivo":
		active := false
		filter.Active = &active
	default:
		return nil, domain.NewValidationError("Estado inválido. Valores válidos: Activo, Inactivo", "status")
	}
	list, total, err := uc.repo.List(ctx, filter, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.UserResponse]{Items: toUserResponses(list), Pagination: dto.NewPagination(page, perPage, total)}, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(u), nil
}

// Create crea un perfil (email y rol obligatorios).
func (uc *UserUseCase) Create(ctx context.Context, actor Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !entity.ValidRole(in.Role) {
		return nil, invalidRole()
	}
	u := &entity.User{
		ID:        in.ID,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      in.Role,
		IsActive:  true,
		Phone:     in.Phone,
		AvatarURL: in.AvatarURL,
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("Ya existe un usuario con ese email", "email")
		}
		return nil, err
	}
	uc.activity.Record(ctx, activity(entity.ActivityUserCreated, actor, u.ID, u.Email, map[string]any{"role": u.Role}))
	return toUserResponse(u), nil
}

// Update aplica los campos presentes y sincroniza el email con el proveedor de identidad.
func (uc *UserUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		in.Email = &email
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	emailChanged := false
	if in.Email != nil {
		emailChanged = *in.Email != u.Email
		u.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, invalidRole()
		}
		u.Role = *in.Role
	}
	setString(&u.FirstName, in.FirstName)
	setString(&u.LastName, in.LastName)
	setString(&u.Phone, in.Phone)
	setString(&u.AvatarURL, in.AvatarURL)
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("Ya existe un usuario con ese email", "email")
		}
		return nil, err
	}
	if emailChanged && uc.identity != nil {
		if err := uc.identity.UpdateEmail(ctx, u.ID, u.Email); err != nil {
			uc.log.Warn().Err(err).Str("user_id", u.ID).Msg("no se pudo actualizar el email en el proveedor de identidad")
		}
	}
	uc.activity.Record(ctx, activity(entity.ActivityUserUpdated, actor, u.ID, u.Email, nil))
	return toUserResponse(u), nil
}

// Delete elimina el perfil y la cuenta del proveedor de identidad.
func (uc *UserUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	if uc.identity != nil {
		if err := uc.identity.DeleteUser(ctx, id); err != nil {
			uc.log.Warn().Err(err).Str("user_id", id).Msg("no se pudo eliminar el usuario del proveedor de identidad")
		}
	}
	uc.activity.Record(ctx, activity(entity.ActivityUserDeleted, actor, id, "", nil))
	return nil
}

// SetActive activa o desactiva la cuenta.
func (uc *UserUseCase) SetActive(ctx context.Context, actor Actor, id string, active bool) (*dto.UserResponse, error) {
	ok, err := uc.repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.activity.Record(ctx, activity(entity.ActivityUserUpdated, actor, id, "", map[string]any{"is_active": active}))
	return uc.GetByID(ctx, id)
}

// Stats totales por estado y rol.
func (uc *UserUseCase) Stats(ctx context.Context) (*dto.UserStatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.UserStatsResponse{
		TotalUsers:    s.Total,
		ActiveUsers:   s.Active,
		InactiveUsers: s.Inactive,
		RoleCounts:    s.RoleCounts,
	}, nil
}

// Recent últimos usuarios registrados (5 por defecto).
func (uc *UserUseCase) Recent(ctx context.Context, limit int) ([]dto.UserResponse, error) {
	if limit < 1 || limit > maxRecentUsers {
		limit = defaultRecentUsers
	}
	list, err := uc.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// Profile datos del usuario autenticado; el perfil puede no existir aún.
func (uc *UserUseCase) Profile(ctx context.Context, userID, email string) (*dto.ProfileResponse, error) {
	u, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		UserID:  userID,
		Email:   email,
		Message: "Perfil de usuario obtenido exitosamente",
		Profile: toUserResponse(u),
	}, nil
}

func invalidRole() error {
	return domain.NewValidationError("Rol inválido. Roles válidos: customer, admin, vendor", "role")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
