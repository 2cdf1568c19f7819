package entity

import "time"

// SettingsID es el ID fijo de la fila única de configuración del negocio.
// La tabla tiene CHECK (id = 1); el upsert usa ON CONFLICT (id).
const SettingsID = 1

// BusinessSettings configuración del negocio (fila única).
type BusinessSettings struct {
	ID           int
	StoreName    string
	ContactEmail string
	Phone        string
	Address      string
	Currency     string // código ISO 4217, ej: NIO
	UpdatedAt    time.Time
}
