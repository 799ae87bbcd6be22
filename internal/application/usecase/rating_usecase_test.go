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

const testOrderID = "6f1c2a7e-8a3b-4b5c-9d2e-1f0a9b8c7d6e"

func TestRatingCreate(t *testing.T) {
	t.Run("aprobada por defecto", func(t *testing.T) {
		repo := newRatingRepoFake()
		uc := NewRatingUseCase(repo, nil)

		out, err := uc.Create(context.Background(), "u-1", dto.CreateRatingRequest{ProductID: 3, OrderID: testOrderID, Rating: 5, Comment: "Excelente"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
		assert.True(t, out.IsApproved)
		assert.False(t, out.IsFlagged)
		assert.Equal(t, "u-1", out.UserID)
	})

	t.Run("sin pedido entregado", func(t *testing.T) {
		repo := newRatingRepoFake()
		repo.eligible = false
		uc := NewRatingUseCase(repo, nil)

		_, err := uc.Create(context.Background(), "u-1", dto.CreateRatingRequest{ProductID: 3, OrderID: testOrderID, Rating: 4})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "No puedes calificar este producto. Debes haber recibido el producto en esta orden", ve.Message)
		assert.Empty(t, repo.byID)
	})

	t.Run("segunda reseña del mismo pedido", func(t *testing.T) {
		repo := newRatingRepoFake()
		uc := NewRatingUseCase(repo, nil)
		in := dto.CreateRatingRequest{ProductID: 3, OrderID: testOrderID, Rating: 4}
		_, err := uc.Create(context.Background(), "u-1", in)
		require.NoError(t, err)

		_, err = uc.Create(context.Background(), "u-1", in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Ya has calificado este producto para esta orden", ve.Message)
		assert.Len(t, repo.byID, 1)
	})

	t.Run("elegibilidad perdida entre la consulta y la inserción", func(t *testing.T) {
		repo := newRatingRepoFake()
		repo.createErr = domain.ErrNotEligible
		uc := NewRatingUseCase(repo, nil)

		_, err := uc.Create(context.Background(), "u-1", dto.CreateRatingRequest{ProductID: 3, OrderID: testOrderID, Rating: 4})
		assert.Equal(t, errNotEligible, err)
	})

	t.Run("puntuación fuera de rango", func(t *testing.T) {
		uc := NewRatingUseCase(newRatingRepoFake(), nil)
		_, err := uc.Create(context.Background(), "u-1", dto.CreateRatingRequest{ProductID: 3, OrderID: testOrderID, Rating: 6})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"rating"}, ve.Fields)
	})
}

func TestRatingUpdateAndDelete_OnlyAuthor(t *testing.T) {
	repo := newRatingRepoFake()
	repo.byID["r-1"] = &entity.ProductRating{ID: "r-1", ProductID: 3, UserID: "autor", OrderID: testOrderID, Rating: 3, Comment: "ok"}
	uc := NewRatingUseCase(repo, nil)

	_, err := uc.Update(context.Background(), "otro", "r-1", dto.UpdateRatingRequest{Rating: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(context.Background(), "otro", "r-1"), domain.ErrForbidden)

	comment := "mejor de lo esperado"
	out, err := uc.Update(context.Background(), "autor", "r-1", dto.UpdateRatingRequest{Rating: 5, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Rating)
	assert.Equal(t, comment, out.Comment)

	require.NoError(t, uc.Delete(context.Background(), "autor", "r-1"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "autor", "r-1"), domain.ErrNotFound)
}

func TestRatingModeration(t *testing.T) {
	repo := newRatingRepoFake()
	repo.byID["r-1"] = &entity.ProductRating{ID: "r-1", UserID: "autor", Rating: 2, IsApproved: true}
	rec := &recorderSpy{}
	uc := NewRatingUseCase(repo, rec)

	_, err := uc.Reject(context.Background(), Actor{ID: "admin"}, "r-1", dto.RejectRatingRequest{})
	require.Error(t, err)

	out, err := uc.Reject(context.Background(), Actor{ID: "admin"}, "r-1", dto.RejectRatingRequest{Reason: "lenguaje ofensivo"})
	require.NoError(t, err)
	assert.False(t, out.IsApproved)
	assert.True(t, out.IsFlagged)
	assert.Equal(t, "lenguaje ofensivo", out.FlagReason)

	out, err = uc.Approve(context.Background(), Actor{ID: "admin"}, "r-1")
	require.NoError(t, err)
	assert.True(t, out.IsApproved)
	assert.False(t, out.IsFlagged)
	assert.Empty(t, out.FlagReason)

	_, err = uc.Approve(context.Background(), Actor{ID: "admin"}, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{entity.ActivityRatingModerated, entity.ActivityRatingModerated}, rec.types())
}
