package dto

import "time"

// CreateBannerRequest entrada para crear un banner del carrusel.
type CreateBannerRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
	Position    int    `json:"position"`
	IsActive    *bool  `json:"is_active,omitempty"` // default: true
}

// UpdateBannerRequest entrada para actualizar un banner.
type UpdateBannerRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Link        *string `json:"link"`
	Position    *int    `json:"position"`
	IsActive    *bool   `json:"is_active"`
}

// BannerResponse salida de un banner (vista admin).
type BannerResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Link        string    `json:"link"`
	Position    int       `json:"position"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
