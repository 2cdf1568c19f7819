package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, slug, description, price, quantity, is_active, category_id, unit_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Quantity inicia en 0: el stock entra por movimientos.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, slug, description, price, quantity, is_active, category_id, unit_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Slug, product.Description, product.Price,
		product.Quantity, product.IsActive, product.CategoryID, product.UnitID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySlug obtiene un producto por slug. Devuelve nil si no existe.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, slug))
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Serializa ventas y movimientos concurrentes sobre el mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza los campos de catálogo de un producto. No toca quantity:
// el stock se modifica solo vía UpdateQuantity desde el motor de inventario.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, slug = $3, description = $4, price = $5, is_active = $6, category_id = $7, unit_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Slug, product.Description, product.Price,
		product.IsActive, product.CategoryID, product.UnitID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity fija el stock actual del producto.
func (r *ProductRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List lista productos según el filtro, con paginación, ordenados por última actualización.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT p.id, p.name, p.slug, p.description, p.price, p.quantity, p.is_active, p.category_id, p.unit_id, p.created_at, p.updated_at FROM products p`)
	var args []any
	var conds []string

	if filter.CategorySlug != "" {
		sb.WriteString(` JOIN categories c ON c.id = p.category_id`)
		args = append(args, filter.CategorySlug)
		conds = append(conds, "c.slug = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		conds = append(conds, "(p.name ILIKE $"+n+" OR p.description ILIKE $"+n+")")
	}
	if filter.InStockOnly {
		conds = append(conds, "p.quantity > 0")
	}
	if filter.ActiveOnly {
		conds = append(conds, "p.is_active")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	args = append(args, limit)
	sb.WriteString(" ORDER BY p.updated_at DESC LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, offset)
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Un producto con ventas o movimientos
// registrados no se puede borrar (las FKs lo protegen); devuelve ErrInUse
// para que el caller lo desactive en su lugar.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Quantity,
		&p.IsActive, &p.CategoryID, &p.UnitID, &p.CreatedAt, &p.UpdatedAt,
	)
}
