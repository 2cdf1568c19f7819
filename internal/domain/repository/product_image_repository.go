package repository

import "github.com/ecolosur/catalogo-api/internal/domain/entity"

// ProductImageRepository define el puerto de persistencia para ProductImage (DIP).
type ProductImageRepository interface {
	Create(image *entity.ProductImage) error
	GetByID(id string) (*entity.ProductImage, error)
	// ListByProduct lista imágenes ordenadas por is_primary DESC, created_at.
	ListByProduct(productID string) ([]*entity.ProductImage, error)
	Delete(id string) error
}
