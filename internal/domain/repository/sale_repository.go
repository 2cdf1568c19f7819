package repository

import (
	"time"

	"github.com/ecolosur/catalogo-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
}
