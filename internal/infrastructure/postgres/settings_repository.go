package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La tabla tiene CHECK (id = 1): nunca puede existir más de una fila.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia para la configuración del negocio.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la configuración del negocio, o nil si aún no se ha configurado.
func (r *SettingsRepo) Get() (*entity.BusinessSettings, error) {
	query := `
		SELECT id, store_name, contact_email, phone, address, currency, updated_at
		FROM business_settings WHERE id = $1`
	var s entity.BusinessSettings
	err := r.q.QueryRow(context.Background(), query, entity.SettingsID).Scan(
		&s.ID, &s.StoreName, &s.ContactEmail, &s.Phone, &s.Address, &s.Currency, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la fila única de configuración.
func (r *SettingsRepo) Upsert(settings *entity.BusinessSettings) error {
	query := `
		INSERT INTO business_settings (id, store_name, contact_email, phone, address, currency, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			contact_email = EXCLUDED.contact_email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			currency = EXCLUDED.currency,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.StoreName, settings.ContactEmail, settings.Phone,
		settings.Address, settings.Currency, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
