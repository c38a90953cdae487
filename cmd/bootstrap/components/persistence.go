package components

import (
	"context"
	"log/slog"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra/db"
	"booking-registry/internal/infra/memory"
	"booking-registry/internal/infra/readstore"
	"booking-registry/internal/infra/repository"
	"booking-registry/internal/infra/uow"
	"booking-registry/internal/pkg/config"
	"booking-registry/internal/usecase/queries"
	"booking-registry/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is the write side and both read stores of one storage driver.
type Persistence struct {
	fx.Out

	UnitOfWork shared.UnitOfWork
	Bookings   queries.BookingReadStore
	Registry   queries.RegistryReadStore
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, initial booking.Settings) (Persistence, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		slog.Warn("using in-memory store; bookings are lost on restart")
		store := memory.NewStore(initial)
		return Persistence{UnitOfWork: store, Bookings: store, Registry: store}, nil
	}

	pool, err := OpenDB(lc, cfg)
	if err != nil {
		return Persistence{}, err
	}
	if err := repository.NewSettingsRepository(pool).EnsureSeeded(context.Background(), initial); err != nil {
		return Persistence{}, err
	}
	return Persistence{
		UnitOfWork: uow.NewPostgresUoW(pool),
		Bookings:   readstore.NewBookingReadStore(pool),
		Registry:   readstore.NewRegistryReadStore(pool),
	}, nil
}

// OpenDB connects the pool, applies migrations when enabled and closes the pool on stop.
func OpenDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	if cfg.DB.Migrate {
		if err := db.Migrate(context.Background(), pool); err != nil {
			return nil, err
		}
		slog.Info("database migrations applied")
	}

	return pool, nil
}
