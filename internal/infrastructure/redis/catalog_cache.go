package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ecolosur/catalogo-api/internal/application/usecase"
)

var _ usecase.CatalogCache = (*CatalogCache)(nil)

// CatalogCache caché del catálogo público sobre Redis (cache-aside).
// Las entradas se serializan como JSON con TTL fijo; una escritura admin
// invalida todo el prefijo catalog: en vez de actualizar entradas en sitio.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache construye el caché con el cliente Redis y TTL por entrada.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// Get lee una entrada. Devuelve (false, nil) en miss.
func (c *CatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("leer caché: %w", err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("deserializar caché: %w", err)
	}
	return true, nil
}

// Set escribe una entrada con el TTL configurado.
func (c *CatalogCache) Set(ctx context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar caché: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("escribir caché: %w", err)
	}
	return nil
}

// Invalidate elimina todas las entradas del catálogo (prefijo catalog:).
// Usa SCAN para iterar y UNLINK para borrar sin bloquear el servidor.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "catalog:*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("escanear caché: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("invalidar caché: %w", err)
		}
	}
	return nil
}
