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

// ImageUseCase casos de uso para imágenes de producto (vista admin).
// Las imágenes viven en un CDN externo; aquí solo se registran URLs.
type ImageUseCase struct {
	repo        repository.ProductImageRepository
	productRepo repository.ProductRepository
	cache       CatalogCache
}

// NewImageUseCase construye el caso de uso. cache puede ser nil.
func NewImageUseCase(repo repository.ProductImageRepository, productRepo repository.ProductRepository, cache CatalogCache) *ImageUseCase {
	return &ImageUseCase{repo: repo, productRepo: productRepo, cache: cache}
}

// Add asocia una imagen a un producto existente.
func (uc *ImageUseCase) Add(ctx context.Context, productID string, in dto.AddImageRequest) (*dto.ImageResponse, error) {
	if in.ImageURL == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	image := &entity.ProductImage{
		ID:        uuid.New().String(),
		ProductID: productID,
		ImageURL:  in.ImageURL,
		AltText:   in.AltText,
		Tag:       in.Tag,
		IsPrimary: in.IsPrimary,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(image); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toImageResponse(image), nil
}

// ListByProduct lista imágenes de un producto (primaria primero).
func (uc *ImageUseCase) ListByProduct(productID string) ([]dto.ImageResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ImageResponse, 0, len(list))
	for _, img := range list {
		items = append(items, *toImageResponse(img))
	}
	return items, nil
}

// Delete elimina una imagen por ID.
func (uc *ImageUseCase) Delete(ctx context.Context, id string) error {
	image, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *ImageUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
}

func toImageResponse(img *entity.ProductImage) *dto.ImageResponse {
	if img == nil {
		return nil
	}
	return &dto.ImageResponse{
		ID:        img.ID,
		ProductID: img.ProductID,
		ImageURL:  img.ImageURL,
		AltText:   img.AltText,
		Tag:       img.Tag,
		IsPrimary: img.IsPrimary,
		CreatedAt: img.CreatedAt,
	}
}
