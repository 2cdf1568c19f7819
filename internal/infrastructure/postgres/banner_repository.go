package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

const bannerColumns = `id, title, description, image_url, link, position, is_active, created_at, updated_at`

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador de persistencia para banners del carrusel.
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

// Create persiste un nuevo banner.
func (r *BannerRepo) Create(banner *entity.CarouselBanner) error {
	query := `
		INSERT INTO carousel_banners (id, title, description, image_url, link, position, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		banner.ID, banner.Title, banner.Description, banner.ImageURL, banner.Link,
		banner.Position, banner.IsActive, banner.CreatedAt, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID obtiene un banner por ID. Devuelve nil si no existe.
func (r *BannerRepo) GetByID(id string) (*entity.CarouselBanner, error) {
	query := `SELECT ` + bannerColumns + ` FROM carousel_banners WHERE id = $1`
	var b entity.CarouselBanner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.ImageURL, &b.Link, &b.Position,
		&b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

// Update actualiza un banner existente.
func (r *BannerRepo) Update(banner *entity.CarouselBanner) error {
	query := `
		UPDATE carousel_banners SET title = $2, description = $3, image_url = $4, link = $5, position = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		banner.ID, banner.Title, banner.Description, banner.ImageURL, banner.Link,
		banner.Position, banner.IsActive, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

// List lista banners ordenados por posición.
func (r *BannerRepo) List(activeOnly bool) ([]*entity.CarouselBanner, error) {
	query := `SELECT ` + bannerColumns + ` FROM carousel_banners`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY position, created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	var list []*entity.CarouselBanner
	for rows.Next() {
		var b entity.CarouselBanner
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.ImageURL, &b.Link, &b.Position, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina un banner por ID.
func (r *BannerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM carousel_banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}
