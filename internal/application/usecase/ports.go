package usecase

import "context"

// CatalogCache puerto del caché cache-aside del catálogo público.
// Get devuelve (false, nil) en cache miss; Invalidate borra todas las entradas
// del catálogo. Se llama tras cualquier escritura que lo afecte: el CRUD
// admin y los commits del motor de stock (ventas y movimientos), porque el
// catálogo publica in_stock y availability.
// Una implementación nil desactiva el caché.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context) error
}
