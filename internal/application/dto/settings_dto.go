package dto

import "time"

// UpsertSettingsRequest entrada para crear o actualizar la configuración del negocio.
type UpsertSettingsRequest struct {
	StoreName    string `json:"store_name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Currency     string `json:"currency"`
}

// SettingsResponse salida de la configuración del negocio.
type SettingsResponse struct {
	StoreName    string    `json:"store_name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Currency     string    `json:"currency"`
	UpdatedAt    time.Time `json:"updated_at"`
}
