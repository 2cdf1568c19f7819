package repository

import "github.com/ecolosur/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List lista categorías ordenadas por nombre; activeOnly filtra inactivas.
	List(activeOnly bool) ([]*entity.Category, error)
	Delete(id string) error
}
