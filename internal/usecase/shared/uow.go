package shared

import (
	"context"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations. Locks taken through the Tx are held until it ends.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Settings() SettingsRepository
	Events() EventRepository
	Idempotency() IdempotencyRepository
	// OnRollback registers a compensation that runs if this attempt does not commit.
	OnRollback(fn func(ctx context.Context))
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (booking.ID, error)
	// GetForUpdate loads the booking and holds its lock for the rest of the transaction.
	GetForUpdate(ctx context.Context, id booking.ID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type SettingsRepository interface {
	// Get returns a consistent snapshot of the registry settings.
	Get(ctx context.Context) (booking.Settings, error)
	GetForUpdate(ctx context.Context) (booking.Settings, error)
	Save(ctx context.Context, s booking.Settings) error
}

type EventRepository interface {
	Append(ctx context.Context, e booking.Event) error
}

type IdempotencyRepository interface {
	Find(ctx context.Context, key uuid.UUID, owner account.Account) (*IdempotencyRecord, error)
	Insert(ctx context.Context, rec IdempotencyRecord) error
	DeleteExpired(ctx context.Context, key uuid.UUID, owner account.Account, now time.Time) error
}
