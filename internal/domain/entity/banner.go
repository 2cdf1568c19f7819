package entity

import "time"

// CarouselBanner representa un banner promocional del carrusel de la tienda.
type CarouselBanner struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Link        string
	Position    int // orden de aparición en el carrusel
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
