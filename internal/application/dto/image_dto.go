package dto

import "time"

// AddImageRequest entrada para asociar una imagen a un producto.
// La imagen ya debe estar subida al CDN; aquí solo se registra la URL.
type AddImageRequest struct {
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	Tag       string `json:"tag"` // front / back / side / etc.
	IsPrimary bool   `json:"is_primary"`
}

// ImageResponse salida de una imagen (vista admin).
type ImageResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	AltText   string    `json:"alt_text"`
	Tag       string    `json:"tag"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}
