package commands

import (
	"context"
	"log/slog"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/pkg/clock"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/pkg/metrics"
	"booking-registry/internal/usecase/shared"
)

//go:generate mockgen -source=registry.go -destination=../../../tests/mock/commands/registry_mock.go -package=commandsmock

// RegistryCommands are the owner-only configuration changes.
type RegistryCommands interface {
	SetTaxPercentage(ctx context.Context, actor account.Account, pct int) (booking.Settings, error)
	SetRoomPrices(ctx context.Context, actor account.Account, prices booking.RoomPrices) (booking.Settings, error)
}

type registryUseCaseImpl struct {
	uow        shared.UnitOfWork
	principals Principals
	clock      clock.Clock
}

func NewRegistryCommands(uow shared.UnitOfWork, principals Principals, clk clock.Clock) RegistryCommands {
	return &registryUseCaseImpl{uow: uow, principals: principals, clock: clk}
}

func (uc *registryUseCaseImpl) SetTaxPercentage(ctx context.Context, actor account.Account, pct int) (booking.Settings, error) {
	if err := uc.principals.Ownership.Authorize(actor); err != nil {
		metrics.Booking().RecordOperation("set_tax", err)
		return booking.Settings{}, err
	}
	tax, err := booking.NewTaxPercentage(pct)
	if err != nil {
		return booking.Settings{}, err
	}

	updated, err := uc.update(ctx, func(current booking.Settings) (booking.Settings, booking.Event) {
		now := uc.clock.Now()
		next := current.WithTaxPercentage(tax, now)
		return next, booking.NewTaxChangedEvent(next, actor, now)
	})
	metrics.Booking().RecordOperation("set_tax", err)
	if err != nil {
		return booking.Settings{}, err
	}
	slog.InfoContext(ctx, "tax percentage updated", "tax_percentage", pct, "version", updated.Version())
	return updated, nil
}

func (uc *registryUseCaseImpl) SetRoomPrices(ctx context.Context, actor account.Account, prices booking.RoomPrices) (booking.Settings, error) {
	if err := uc.principals.Ownership.Authorize(actor); err != nil {
		metrics.Booking().RecordOperation("set_room_prices", err)
		return booking.Settings{}, err
	}

	updated, err := uc.update(ctx, func(current booking.Settings) (booking.Settings, booking.Event) {
		now := uc.clock.Now()
		next := current.WithRoomPrices(prices, now)
		return next, booking.NewRoomPricesChangedEvent(next, actor, now)
	})
	metrics.Booking().RecordOperation("set_room_prices", err)
	if err != nil {
		return booking.Settings{}, err
	}
	slog.InfoContext(ctx, "room prices updated",
		"standard", prices.Standard.String(),
		"deluxe", prices.Deluxe.String(),
		"suite", prices.Suite.String(),
		"version", updated.Version())
	return updated, nil
}

func (uc *registryUseCaseImpl) update(
	ctx context.Context,
	mutate func(current booking.Settings) (booking.Settings, booking.Event),
) (booking.Settings, error) {
	var updated booking.Settings
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Settings().GetForUpdate(ctx)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		next, event := mutate(current)
		if err := tx.Settings().Save(ctx, next); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Events().Append(ctx, event); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = next
		return nil
	})
	return updated, err
}
