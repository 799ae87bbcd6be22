package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
)

const testUserID = "2b6f0cf1-3f7e-4d8a-9a51-0f6a3c1d2e4b"

func seededUser() *entity.User {
	return &entity.User{ID: testUserID, Email: "ana@example.com", FirstName: "Ana", Role: entity.RoleCustomer, IsActive: true}
}

func TestUserCreate(t *testing.T) {
	repo := newUserRepoFake()
	rec := &recorderSpy{}
	uc := NewUserUseCase(repo, &identitySpy{}, rec, nil)

	out, err := uc.Create(context.Background(), Actor{ID: "admin"}, dto.CreateUserRequest{Email: " Luis@Example.COM ", Role: entity.RoleVendor})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "luis@example.com", out.Email)
	assert.True(t, out.IsActive)
	assert.Equal(t, []string{entity.ActivityUserCreated}, rec.types())

	_, err = uc.Create(context.Background(), Actor{ID: "admin"}, dto.CreateUserRequest{Email: "luis@example.com", Role: entity.RoleCustomer})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Ya existe un usuario con ese email", ve.Message)

	_, err = uc.Create(context.Background(), Actor{ID: "admin"}, dto.CreateUserRequest{Email: "otro@example.com", Role: "superuser"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"role"}, ve.Fields)
}

func TestUserUpdate_PropagatesEmailChange(t *testing.T) {
	repo := newUserRepoFake(seededUser())
	idp := &identitySpy{}
	uc := NewUserUseCase(repo, idp, nil, nil)

	email := "  ANA.NUEVA@example.com "
	out, err := uc.Update(context.Background(), Actor{ID: "admin"}, testUserID, dto.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "ana.nueva@example.com", out.Email)
	assert.Equal(t, "ana.nueva@example.com", idp.emails[testUserID])
	assert.Equal(t, "Ana", out.FirstName)
}

func TestUserUpdate_SameEmailSkipsIdentity(t *testing.T) {
	repo := newUserRepoFake(seededUser())
	idp := &identitySpy{}
	uc := NewUserUseCase(repo, idp, nil, nil)

	email, name := "ana@example.com", "Ana María"
	_, err := uc.Update(context.Background(), Actor{ID: "admin"}, testUserID, dto.UpdateUserRequest{Email: &email, FirstName: &name})
	require.NoError(t, err)
	assert.Empty(t, idp.emails)
}

func TestUserUpdate_IdentityFailureIsNotFatal(t *testing.T) {
	repo := newUserRepoFake(seededUser())
	uc := NewUserUseCase(repo, &identitySpy{err: errBoom}, nil, nil)

	email := "otra@example.com"
	out, err := uc.Update(context.Background(), Actor{ID: "admin"}, testUserID, dto.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "otra@example.com", out.Email)
	assert.Equal(t, "otra@example.com", repo.byID[testUserID].Email)
}

func TestUserDelete(t *testing.T) {
	repo := newUserRepoFake(seededUser())
	idp := &identitySpy{}
	uc := NewUserUseCase(repo, idp, nil, nil)

	require.NoError(t, uc.Delete(context.Background(), Actor{ID: "admin"}, testUserID))
	assert.Equal(t, []string{testUserID}, idp.deleted)
	assert.ErrorIs(t, uc.Delete(context.Background(), Actor{ID: "admin"}, testUserID), domain.ErrNotFound)
}

func TestUserList_RejectsUnknownStatus(t *testing.T) {
	uc := NewUserUseCase(newUserRepoFake(), nil, nil, nil)

	_, err := uc.List(context.Background(), dto.UserFilterRequest{Status: "Suspendido"}, 1, 10)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"status"}, ve.Fields)
}

func TestUserProfile(t *testing.T) {
	uc := NewUserUseCase(newUserRepoFake(seededUser()), nil, nil, nil)

	out, err := uc.Profile(context.Background(), testUserID, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Perfil de usuario obtenido exitosamente", out.Message)
	require.NotNil(t, out.Profile)
	assert.Equal(t, entity.RoleCustomer, out.Profile.Role)

	out, err = uc.Profile(context.Background(), "sin-perfil", "x@example.com")
	require.NoError(t, err)
	assert.Nil(t, out.Profile)
	assert.Equal(t, "sin-perfil", out.UserID)
}
