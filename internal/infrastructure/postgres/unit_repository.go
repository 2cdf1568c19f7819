package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para unidades de venta.
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una nueva unidad.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `INSERT INTO units (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, unit.ID, unit.Name, unit.CreatedAt, unit.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID. Devuelve nil si no existe.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at, updated_at FROM units WHERE id = $1`, id))
}

// GetByName obtiene una unidad por nombre. Devuelve nil si no existe.
func (r *UnitRepo) GetByName(name string) (*entity.Unit, error) {
	return r.scanOne(r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at, updated_at FROM units WHERE name = $1`, name))
}

// Update actualiza una unidad existente.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units SET name = $2, updated_at = $3 WHERE id = $1`,
		unit.ID, unit.Name, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// List lista todas las unidades ordenadas por nombre.
func (r *UnitRepo) List() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at, updated_at FROM units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina una unidad por ID. Con productos asociados devuelve ErrInUse.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

func (r *UnitRepo) scanOne(row pgx.Row) (*entity.Unit, error) {
	var u entity.Unit
	if err := row.Scan(&u.ID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}
