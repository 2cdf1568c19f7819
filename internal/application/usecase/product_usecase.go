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

// ProductUseCase casos de uso CRUD para productos (vista admin).
// Quantity no se toca aquí: el stock se maneja vía el motor de inventario.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
	cache        CatalogCache
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
	cache CatalogCache,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, unitRepo: unitRepo, cache: cache}
}

// Create crea un producto con stock cero. Slug derivado del nombre si viene vacío.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.UnitID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if category == nil || unit == nil {
		return nil, domain.ErrNotFound
	}

	productSlug := in.Slug
	if productSlug == "" {
		productSlug = slug.Make(in.Name)
	}
	if existing, _ := uc.repo.GetBySlug(productSlug); existing != nil {
		return nil, domain.ErrDuplicate
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        productSlug,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Quantity:    0,
		IsActive:    isActive,
		CategoryID:  in.CategoryID,
		UnitID:      in.UnitID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No permite modificar Quantity (solo ventas/movimientos).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Slug != nil && *in.Slug != product.Slug {
		if existing, _ := uc.repo.GetBySlug(*in.Slug); existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.Slug = *in.Slug
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = in.Price.Round(2)
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if in.CategoryID != nil {
		if category, _ := uc.categoryRepo.GetByID(*in.CategoryID); category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		if unit, _ := uc.unitRepo.GetByID(*in.UnitID); unit == nil {
			return nil, domain.ErrNotFound
		}
		product.UnitID = *in.UnitID
	}
	product.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(product), nil
}

// List lista productos (vista admin, incluye inactivos).
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(repository.ProductFilter{}, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *ProductUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		IsActive:    p.IsActive,
		CategoryID:  p.CategoryID,
		UnitID:      p.UnitID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
