package entity

import "time"

// ProductImage representa una imagen asociada a un producto.
// El listado ordena por IsPrimary DESC y luego por fecha de creación.
type ProductImage struct {
	ID        string
	ProductID string
	ImageURL  string
	AltText   string
	Tag       string // front / back / side / etc.
	IsPrimary bool
	CreatedAt time.Time
}
