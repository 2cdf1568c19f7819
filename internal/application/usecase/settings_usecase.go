package usecase

import (
	"time"

	"github.com/ecolosur/catalogo-api/internal/application/dto"
	"github.com/ecolosur/catalogo-api/internal/domain"
	"github.com/ecolosur/catalogo-api/internal/domain/entity"
	"github.com/ecolosur/catalogo-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la fila única de configuración
// del negocio. No hay Create ni Delete: la fila se materializa con el primer
// upsert y el constraint de la tabla impide que exista más de una.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración actual del negocio.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingsResponse(settings), nil
}

// Upsert crea o reemplaza la configuración del negocio.
func (uc *SettingsUseCase) Upsert(in dto.UpsertSettingsRequest) (*dto.SettingsResponse, error) {
	if in.StoreName == "" {
		return nil, domain.ErrInvalidInput
	}
	currency := in.Currency
	if currency == "" {
		currency = "NIO"
	}
	settings := &entity.BusinessSettings{
		ID:           entity.SettingsID,
		StoreName:    in.StoreName,
		ContactEmail: in.ContactEmail,
		Phone:        in.Phone,
		Address:      in.Address,
		Currency:     currency,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.BusinessSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		StoreName:    s.StoreName,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		Address:      s.Address,
		Currency:     s.Currency,
		UpdatedAt:    s.UpdatedAt,
	}
}
