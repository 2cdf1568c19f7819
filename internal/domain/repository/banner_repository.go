package repository

import "github.com/ecolosur/catalogo-api/internal/domain/entity"

// BannerRepository define el puerto de persistencia para CarouselBanner (DIP).
type BannerRepository interface {
	Create(banner *entity.CarouselBanner) error
	GetByID(id string) (*entity.CarouselBanner, error)
	Update(banner *entity.CarouselBanner) error
	// List lista banners ordenados por position; activeOnly filtra inactivos.
	List(activeOnly bool) ([]*entity.CarouselBanner, error)
	Delete(id string) error
}
