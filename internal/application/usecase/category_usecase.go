package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
	"github.com/ecolosur/catalogo-api/pkg/slug"
)

// CategoryUseCase casos de uso CRUD para categorías (vista admin).
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	cache CatalogCache
}

// NewCategoryUseCase construye el caso de uso. cache puede ser nil.
func NewCategoryUseCase(repo repository.CategoryRepository, cache CatalogCache) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, cache: cache}
}

// Create crea una categoría. Slug derivado del nombre si viene vacío.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	categorySlug := in.Slug
	if categorySlug == "" {
		categorySlug = slug.Make(in.Name)
	}
	if existing, _ := uc.repo.GetBySlug(categorySlug); existing != nil {
		return nil, domain.ErrDuplicate
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now().UTC()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        categorySlug,
		Description: in.Description,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update actualiza una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Slug != nil && *in.Slug != category.Slug {
		if existing, _ := uc.repo.GetBySlug(*in.Slug); existing != nil {
			return nil, domain.ErrDuplicate
		}
		category.Slug = *in.Slug
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toCategoryResponse(category), nil
}

// List lista todas las categorías (vista admin, incluye inactivas).
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(false)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *CategoryUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
