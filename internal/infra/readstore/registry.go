package readstore

import (
	"context"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra/db"
	"booking-registry/internal/infra/repository"
)

type RegistryReadStore struct {
	settings *repository.SettingsRepository
}

func NewRegistryReadStore(db db.DBTX) *RegistryReadStore {
	return &RegistryReadStore{settings: repository.NewSettingsRepository(db)}
}

func (r *RegistryReadStore) GetSettings(ctx context.Context) (booking.Settings, error) {
	return r.settings.Get(ctx)
}
