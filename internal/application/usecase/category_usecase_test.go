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

func TestCategoryCreate_DefaultsSlugAndColor(t *testing.T) {
	repo := newCategoryRepoFake()
	rec := &recorderSpy{}
	uc := NewCategoryUseCase(repo, rec)

	out, err := uc.Create(context.Background(), Actor{ID: "admin"}, dto.CreateCategoryRequest{Name: "  Cuidado Facial "})
	require.NoError(t, err)
	assert.Equal(t, "Cuidado Facial", out.Name)
	assert.Equal(t, "cuidado-facial", out.Slug)
	assert.Equal(t, entity.DefaultCategoryColor, out.Color)
	assert.True(t, out.IsActive)
	assert.Equal(t, []string{entity.ActivityCategoryCreated}, rec.types())
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	repo := newCategoryRepoFake()
	uc := NewCategoryUseCase(repo, nil)
	_, err := uc.Create(context.Background(), Actor{}, dto.CreateCategoryRequest{Name: "Jabones"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), Actor{}, dto.CreateCategoryRequest{Name: "Jabones", Slug: "otro-slug"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Ya existe una categoría con ese nombre", ve.Message)
	assert.Equal(t, []string{"name"}, ve.Fields)
}

func TestCategoryCreate_DuplicateSlug(t *testing.T) {
	repo := newCategoryRepoFake()
	uc := NewCategoryUseCase(repo, nil)
	_, err := uc.Create(context.Background(), Actor{}, dto.CreateCategoryRequest{Name: "Jabones", Slug: "jabones"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), Actor{}, dto.CreateCategoryRequest{Name: "Jabones finos", Slug: "Jabones"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"slug"}, ve.Fields)
}

func TestCategoryUpdate(t *testing.T) {
	repo := newCategoryRepoFake()
	uc := NewCategoryUseCase(repo, nil)
	created, err := uc.Create(context.Background(), Actor{}, dto.CreateCategoryRequest{Name: "Aceites"})
	require.NoError(t, err)

	t.Run("slug vacío se regenera", func(t *testing.T) {
		name, empty := "Aceites Esenciales", ""
		out, err := uc.Update(context.Background(), Actor{}, created.ID, dto.UpdateCategoryRequest{Name: &name, Slug: &empty})
		require.NoError(t, err)
		assert.Equal(t, "aceites-esenciales", out.Slug)
	})
	t.Run("no puede ser su propio padre", func(t *testing.T) {
		self := created.ID
		_, err := uc.Update(context.Background(), Actor{}, created.ID, dto.UpdateCategoryRequest{ParentID: &self})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"parent_id"}, ve.Fields)
	})
	t.Run("inexistente", func(t *testing.T) {
		_, err := uc.Update(context.Background(), Actor{}, 999, dto.UpdateCategoryRequest{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCategoryDelete(t *testing.T) {
	repo := newCategoryRepoFake()
	uc := NewCategoryUseCase(repo, nil)
	used, err := uc.Create(context.Background(), Actor{}, dto.CreateCategoryRequest{Name: "Velas"})
	require.NoError(t, err)
	free, err := uc.Create(context.Background(), Actor{}, dto.CreateCategoryRequest{Name: "Sales"})
	require.NoError(t, err)
	repo.inUse[used.ID] = true

	err = uc.Delete(context.Background(), Actor{}, used.ID)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "No se puede eliminar la categoría porque tiene productos asociados", ve.Message)

	require.NoError(t, uc.Delete(context.Background(), Actor{}, free.ID))
	assert.False(t, repo.byID[free.ID].IsActive)
	assert.ErrorIs(t, uc.Delete(context.Background(), Actor{}, free.ID), domain.ErrNotFound)
}
