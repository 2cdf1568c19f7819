package repository

import "github.com/ecolosur/catalogo-api/internal/domain/entity"

// SettingsRepository define el puerto para la fila única de configuración.
// Get devuelve nil si aún no se ha configurado el negocio.
type SettingsRepository interface {
	Get() (*entity.BusinessSettings, error)
	Upsert(settings *entity.BusinessSettings) error
}
