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

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del puerto InventoryMovementRepository
// sobre PostgreSQL. La tabla es append-only y sku tiene constraint UNIQUE.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador de persistencia para movimientos.
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento. Si el SKU ya existe (carrera entre
// transacciones concurrentes) devuelve ErrDuplicate para que el caso de uso
// reintente la transacción completa.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, sku, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.SKU, movement.ProductID, movement.Quantity, movement.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetBySKU obtiene un movimiento por SKU. Devuelve nil si no existe.
func (r *InventoryMovementRepo) GetBySKU(sku string) (*entity.InventoryMovement, error) {
	query := `
		SELECT id, sku, product_id, quantity, created_at
		FROM inventory_movements WHERE sku = $1`
	var m entity.InventoryMovement
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&m.ID, &m.SKU, &m.ProductID, &m.Quantity, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// LastSKU devuelve el SKU más alto de la secuencia, o "" si no hay movimientos.
// Ordena por longitud y luego lexicográficamente para que P1000 gane a P999.
func (r *InventoryMovementRepo) LastSKU() (string, error) {
	var sku string
	err := r.q.QueryRow(context.Background(),
		`SELECT sku FROM inventory_movements ORDER BY length(sku) DESC, sku DESC LIMIT 1`,
	).Scan(&sku)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last sku: %w", err)
	}
	return sku, nil
}

// ListByProduct lista movimientos de un producto, del más reciente al más antiguo.
func (r *InventoryMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, sku, product_id, quantity, created_at
		FROM inventory_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, productID, limit, offset)
}

// List lista todos los movimientos, del más reciente al más antiguo.
func (r *InventoryMovementRepo) List(limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT id, sku, product_id, quantity, created_at
		FROM inventory_movements
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *InventoryMovementRepo) list(query string, args ...any) ([]*entity.InventoryMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.SKU, &m.ProductID, &m.Quantity, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
