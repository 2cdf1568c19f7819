package dto

import "github.com/shopspring/decimal"

// DTOs del catálogo público (storefront). Vistas de solo lectura: exponen
// disponibilidad pero nunca precios de costo ni datos administrativos.

// CatalogCategoryResponse categoría en el catálogo público.
type CatalogCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// CatalogUnitResponse unidad de venta en el catálogo público.
type CatalogUnitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CatalogImageResponse imagen en el catálogo público.
type CatalogImageResponse struct {
	ID        string `json:"id"`
	Tag       string `json:"tag"`
	IsPrimary bool   `json:"is_primary"`
	AltText   string `json:"alt_text"`
	ImageURL  string `json:"image_url"`
}

// CatalogProductResponse producto en el listado público.
type CatalogProductResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Slug         string                   `json:"slug"`
	Price        decimal.Decimal          `json:"price"`
	Unit         *CatalogUnitResponse     `json:"unit"`
	Category     *CatalogCategoryResponse `json:"category"`
	PrimaryImage *CatalogImageResponse    `json:"primary_image"`
	InStock      bool                     `json:"in_stock"`
	Availability int64                    `json:"availability"`
}

// CatalogProductDetailResponse detalle público: listado + descripción e imágenes.
type CatalogProductDetailResponse struct {
	CatalogProductResponse
	Description string                 `json:"description"`
	Images      []CatalogImageResponse `json:"images"`
}

// CatalogProductListResponse listado público paginado.
type CatalogProductListResponse struct {
	Items []CatalogProductResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// CatalogBannerResponse banner del carrusel en el catálogo público.
type CatalogBannerResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
	Position    int    `json:"position"`
}
