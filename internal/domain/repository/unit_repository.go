package repository

import "github.com/ecolosur/catalogo-api/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit (DIP).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	GetByName(name string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	List() ([]*entity.Unit, error)
	Delete(id string) error
}
