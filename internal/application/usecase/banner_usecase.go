package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// BannerUseCase casos de uso CRUD para banners del carrusel (vista admin).
type BannerUseCase struct {
	repo  repository.BannerRepository
	cache CatalogCache
}

// NewBannerUseCase construye el caso de uso. cache puede ser nil.
func NewBannerUseCase(repo repository.BannerRepository, cache CatalogCache) *BannerUseCase {
	return &BannerUseCase{repo: repo, cache: cache}
}

// Create crea un banner del carrusel.
func (uc *BannerUseCase) Create(ctx context.Context, in dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	if in.Title == "" || in.ImageURL == "" {
		return nil, domain.ErrInvalidInput
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now().UTC()
	banner := &entity.CarouselBanner{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Link:        in.Link,
		Position:    in.Position,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(banner); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toBannerResponse(banner), nil
}

// Update actualiza un banner.
func (uc *BannerUseCase) Update(ctx context.Context, id string, in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	banner, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		banner.Title = *in.Title
	}
	if in.Description != nil {
		banner.Description = *in.Description
	}
	if in.ImageURL != nil {
		banner.ImageURL = *in.ImageURL
	}
	if in.Link != nil {
		banner.Link = *in.Link
	}
	if in.Position != nil {
		banner.Position = *in.Position
	}
	if in.IsActive != nil {
		banner.IsActive = *in.IsActive
	}
	banner.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(banner); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toBannerResponse(banner), nil
}

// List lista todos los banners ordenados por posición (vista admin).
func (uc *BannerUseCase) List() ([]dto.BannerResponse, error) {
	list, err := uc.repo.List(false)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BannerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBannerResponse(b))
	}
	return items, nil
}

// Delete elimina un banner por ID.
func (uc *BannerUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *BannerUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
}

func toBannerResponse(b *entity.CarouselBanner) *dto.BannerResponse {
	if b == nil {
		return nil
	}
	return &dto.BannerResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		Link:        b.Link,
		Position:    b.Position,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
