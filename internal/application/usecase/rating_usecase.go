package usecase

import (
	"context"
	"errors"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/application/validation"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
)

var (
	errNotEligible = domain.NewValidationError(
		"No puedes calificar este producto. Debes haber recibido el producto en esta orden")
	errAlreadyRated = domain.NewValidationError("Ya has calificado este producto para esta orden")
)

// RatingUseCase reseñas de productos y su moderación.
type RatingUseCase struct {
	repo     repository.RatingRepository
	activity ports.ActivityRecorder
}

// NewRatingUseCase construye el caso de uso. activity puede ser nil.
func NewRatingUseCase(repo repository.RatingRepository, activity ports.ActivityRecorder) *RatingUseCase {
	return &RatingUseCase{repo: repo, activity: recorderOrNop(activity)}
}

// CanUserRate consulta el predicado de elegibilidad de la base de datos.
func (uc *RatingUseCase) CanUserRate(ctx context.Context, userID string, productID int64, orderID string) (bool, error) {
	return uc.repo.CanUserRate(ctx, userID, productID, orderID)
}

// Create valida elegibilidad y registra la reseña (aprobada por defecto).
// La inserción es condicional, así que una carrera entre dos peticiones no produce duplicados.
func (uc *RatingUseCase) Create(ctx context.Context, userID string, in dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	ok, err := uc.repo.CanUserRate(ctx, userID, in.ProductID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errNotEligible
	}

	r := &entity.ProductRating{
		ProductID:  in.ProductID,
		UserID:     userID,
		OrderID:    in.OrderID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		IsApproved: true,
	}
	if err := uc.repo.CreateIfEligible(ctx, r); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return nil, errAlreadyRated
		case errors.Is(err, domain.ErrNotEligible):
			return nil, errNotEligible
		}
		return nil, err
	}
	return toRatingResponse(r), nil
}

// ListForProduct reseñas aprobadas del producto.
func (uc *RatingUseCase) ListForProduct(ctx context.Context, productID int64, page, perPage int) (*dto.ListResult[dto.RatingResponse], error) {
	list, total, err := uc.repo.ListApprovedByProduct(ctx, productID, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.RatingResponse]{Items: toRatingResponses(list), Pagination: dto.NewPagination(page, perPage, total)}, nil
}

// ProductStats promedio, total y distribución de calificaciones.
func (uc *RatingUseCase) ProductStats(ctx context.Context, productID int64) (*dto.RatingStatsResponse, error) {
	s, err := uc.repo.ProductStats(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &dto.RatingStatsResponse{
		AverageRating:      s.Average,
		TotalRatings:       s.Total,
		RatingDistribution: s.Distribution,
	}, nil
}

// ListForUser reseñas escritas por el usuario.
func (uc *RatingUseCase) ListForUser(ctx context.Context, userID string, page, perPage int) (*dto.ListResult[dto.RatingResponse], error) {
	list, total, err := uc.repo.ListByUser(ctx, userID, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.RatingResponse]{Items: toRatingResponses(list), Pagination: dto.NewPagination(page, perPage, total)}, nil
}

// Update permite al autor cambiar puntuación y comentario.
func (uc *RatingUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	r, err := uc.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	r.Rating = in.Rating
	if in.Comment != nil {
		r.Comment = *in.Comment
	}
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return toRatingResponse(r), nil
}

// Delete permite al autor eliminar su reseña.
func (uc *RatingUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.owned(ctx, userID, id); err != nil {
		return err
	}
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *RatingUseCase) owned(ctx context.Context, userID, id string) (*entity.ProductRating, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if r.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

// ListPending reseñas sin aprobar.
func (uc *RatingUseCase) ListPending(ctx context.Context, page, perPage int) (*dto.ListResult[dto.RatingResponse], error) {
	list, total, err := uc.repo.ListPending(ctx, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.RatingResponse]{Items: toRatingResponses(list), Pagination: dto.NewPagination(page, perPage, total)}, nil
}

// Approve publica la reseña y limpia cualquier marca previa.
func (uc *RatingUseCase) Approve(ctx context.Context, actor Actor, id string) (*dto.RatingResponse, error) {
	return uc.moderate(ctx, actor, id, true, "")
}

// Reject oculta la reseña y la marca con el motivo.
func (uc *RatingUseCase) Reject(ctx context.Context, actor Actor, id string, in dto.RejectRatingRequest) (*dto.RatingResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return uc.moderate(ctx, actor, id, false, in.Reason)
}

func (uc *RatingUseCase) moderate(ctx context.Context, actor Actor, id string, approved bool, reason string) (*dto.RatingResponse, error) {
	ok, err := uc.repo.Moderate(ctx, id, approved, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	uc.activity.Record(ctx, activity(entity.ActivityRatingModerated, actor, id, "",
		map[string]any{"approved": approved, "reason": reason}))
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return toRatingResponse(r), nil
}
