package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bapesu/bapesu-api/internal/application/dto"
	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/bapesu/bapesu-api/internal/application/validation"
	"github.com/bapesu/bapesu-api/internal/domain"
	"github.com/bapesu/bapesu-api/internal/domain/entity"
	"github.com/bapesu/bapesu-api/internal/domain/repository"
	"github.com/bapesu/bapesu-api/pkg/slug"
)

// CategoryUseCase casos de uso de categorías.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	activity ports.ActivityRecorder
}

// NewCategoryUseCase construye el caso de uso. activity puede ser nil.
func NewCategoryUseCase(repo repository.CategoryRepository, activity ports.ActivityRecorder) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, activity: recorderOrNop(activity)}
}

// List categorías ordenadas por sort_order y nombre.
func (uc *CategoryUseCase) List(ctx context.Context, f dto.CategoryFilterRequest, page, perPage int) (*dto.ListResult[dto.CategoryResponse], error) {
	status := ignoreAll(f.Status)
	switch status {
	case "", "active", "inactive", "featured":
	default:
		return nil, domain.NewValidationError("Estado inválido. Valores válidos: active, inactive, featured", "status")
	}
	filter := repository.CategoryFilter{
		Search:          strings.TrimSpace(f.Search),
		Status:          status,
		IncludeInactive: f.IncludeInactive,
	}
	list, total, err := uc.repo.List(ctx, filter, repository.Page{Number: page, Size: perPage})
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.CategoryResponse]{
		Items:      toCategoryResponses(list),
		Pagination: dto.NewPagination(page, perPage, total),
	}, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

// GetBySlug obtiene una categoría activa por slug.
func (uc *CategoryUseCase) GetBySlug(ctx context.Context, s string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(c), nil
}

// Featured categorías destacadas activas.
func (uc *CategoryUseCase) Featured(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.Featured(ctx)
	if err != nil {
		return nil, err
	}
	return toCategoryResponses(list), nil
}

// Create crea una categoría. La unicidad del nombre la garantiza el índice único.
func (uc *CategoryUseCase) Create(ctx context.Context, actor Actor, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("Campos requeridos faltantes", "name")
	}
	c := &entity.Category{
		Name:        name,
		Slug:        categorySlug(in.Slug, name),
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		IsActive:    true,
		IsFeatured:  in.IsFeatured,
		SortOrder:   in.SortOrder,
		ParentID:    in.ParentID,
		CreatedBy:   actor.ID,
	}
	if c.Color == "" {
		c.Color = entity.DefaultCategoryColor
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, uc.duplicateError(ctx, err, c.Name, 0)
	}
	uc.activity.Record(ctx, activity(entity.ActivityCategoryCreated, actor, strconv.FormatInt(c.ID, 10), c.Name, nil))
	return toCategoryResponse(c), nil
}

// Update aplica los campos presentes. Un slug vacío se regenera desde el nombre.
func (uc *CategoryUseCase) Update(ctx context.Context, actor Actor, id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Slug != nil {
		c.Slug = categorySlug(*in.Slug, c.Name)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Color != nil {
		c.Color = *in.Color
	}
	if in.Icon != nil {
		c.Icon = *in.Icon
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		c.IsFeatured = *in.IsFeatured
	}
	if in.SortOrder != nil {
		c.SortOrder = *in.SortOrder
	}
	if in.ParentID != nil {
		if *in.ParentID == c.ID {
			return nil, domain.NewValidationError("Una categoría no puede ser su propia categoría padre", "parent_id")
		}
		c.ParentID = in.ParentID
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, uc.duplicateError(ctx, err, c.Name, c.ID)
	}
	uc.activity.Record(ctx, activity(entity.ActivityCategoryUpdated, actor, strconv.FormatInt(c.ID, 10), c.Name, nil))
	return toCategoryResponse(c), nil
}

// Delete desactiva la categoría si ningún producto la usa.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor Actor, id int64) error {
	err := uc.repo.SoftDeleteUnused(ctx, id)
	switch {
	case errors.Is(err, domain.ErrConflict):
		return domain.NewValidationError("No se puede eliminar la categoría porque tiene productos asociados")
	case err != nil:
		return err
	}
	uc.activity.Record(ctx, activity(entity.ActivityCategoryDeleted, actor, strconv.FormatInt(id, 10), "", nil))
	return nil
}

// Stats total, destacadas y con/sin productos.
func (uc *CategoryUseCase) Stats(ctx context.Context) (*dto.CategoryStatsResponse, error) {
	s, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryStatsResponse{
		TotalCategories:           s.Total,
		FeaturedCategories:        s.Featured,
		CategoriesWithProducts:    s.WithProducts,
		CategoriesWithoutProducts: s.WithoutProducts,
	}, nil
}

// duplicateError traduce ErrDuplicate al campo en conflicto (nombre o slug).
func (uc *CategoryUseCase) duplicateError(ctx context.Context, err error, name string, selfID int64) error {
	if !errors.Is(err, domain.ErrDuplicate) {
		return err
	}
	if existing, lookupErr := uc.repo.GetByName(ctx, name); lookupErr == nil && existing != nil && existing.ID != selfID {
		return domain.NewValidationError("Ya existe una categoría con ese nombre", "name")
	}
	return domain.NewValidationError("Ya existe una categoría con ese slug", "slug")
}

func categorySlug(requested, name string) string {
	if s := slug.Make(requested); s != "" {
		return s
	}
	return slug.Make(name)
}
