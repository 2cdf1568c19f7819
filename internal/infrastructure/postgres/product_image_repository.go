package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

var _ repository.ProductImageRepository = (*ProductImageRepo)(nil)

// ProductImageRepo implementación del puerto ProductImageRepository sobre PostgreSQL.
type ProductImageRepo struct {
	q Querier
}

// NewProductImageRepository construye el adaptador de persistencia para imágenes de producto.
func NewProductImageRepository(q Querier) *ProductImageRepo {
	return &ProductImageRepo{q: q}
}

// Create persiste una nueva imagen de producto.
func (r *ProductImageRepo) Create(image *entity.ProductImage) error {
	query := `
		INSERT INTO product_images (id, product_id, image_url, alt_text, tag, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		image.ID, image.ProductID, image.ImageURL, image.AltText, image.Tag,
		image.IsPrimary, image.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product image: %w", err)
	}
	return nil
}

// GetByID obtiene una imagen por ID. Devuelve nil si no existe.
func (r *ProductImageRepo) GetByID(id string) (*entity.ProductImage, error) {
	query := `
		SELECT id, product_id, image_url, alt_text, tag, is_primary, created_at
		FROM product_images WHERE id = $1`
	var img entity.ProductImage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.Tag, &img.IsPrimary, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product image: %w", err)
	}
	return &img, nil
}

// ListByProduct lista las imágenes de un producto, la primaria primero.
func (r *ProductImageRepo) ListByProduct(productID string) ([]*entity.ProductImage, error) {
	query := `
		SELECT id, product_id, image_url, alt_text, tag, is_primary, created_at
		FROM product_images WHERE product_id = $1
		ORDER BY is_primary DESC, created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductImage
	for rows.Next() {
		var img entity.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.Tag, &img.IsPrimary, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		list = append(list, &img)
	}
	return list, rows.Err()
}

// Delete elimina una imagen por ID.
func (r *ProductImageRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product image: %w", err)
	}
	return nil
}
