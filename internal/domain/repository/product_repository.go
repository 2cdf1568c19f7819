package repository

import "github.com/ecolosur/catalogo-api/internal/domain/entity"

// ProductFilter filtros del listado público de productos.
type ProductFilter struct {
	CategorySlug string // vacío = todas las categorías
	Search       string // busca en name y description (ILIKE)
	InStockOnly  bool   // solo productos con quantity > 0
	ActiveOnly   bool   // solo productos activos (catálogo público)
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Quantity solo se modifica vía UpdateQuantity dentro del motor de inventario.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int64) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
