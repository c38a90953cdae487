package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/pkg/clock"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/pkg/metrics"
	"booking-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type CreateBookingInput struct {
	CustomerLabel string    `json:"customerLabel"`
	ScheduledDate time.Time `json:"scheduledDate"`
	RoomType      int       `json:"roomType"`
}

type CreateBookingResult struct {
	BookingID  booking.ID
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor account.Account, in CreateBookingInput, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, actor account.Account, id booking.ID) error
	PayForBooking(ctx context.Context, actor account.Account, id booking.ID) error
	CancelBooking(ctx context.Context, actor account.Account, id booking.ID) error
	Refund(ctx context.Context, actor account.Account, id booking.ID) error
	ModifyRefundableStatus(ctx context.Context, actor account.Account, id booking.ID) (bool, error)
}

// Principals are the fixed accounts of a registry deployment.
type Principals struct {
	Ownership booking.Ownership
	Escrow    account.Account
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	ledger     shared.TokenLedger
	principals Principals
	clock      clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, ledger shared.TokenLedger, principals Principals, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		ledger:     ledger,
		principals: principals,
		clock:      clk,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	actor account.Account,
	in CreateBookingInput,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	roomType, err := booking.NewRoomType(in.RoomType)
	if err != nil {
		return nil, err
	}
	if _, err = booking.NewCustomerLabel(in.CustomerLabel); err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(in)

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		now := uc.clock.Now()

		if idempotencyKey != nil {
			replayed, ierr := uc.replayIdempotent(ctx, tx, *idempotencyKey, actor, requestHash, now)
			if ierr != nil {
				return ierr
			}
			if replayed != nil {
				result = replayed
				return nil
			}
		}

		settings, serr := tx.Settings().Get(ctx)
		if serr != nil {
			return errs.Mark(serr, errs.ErrDatabaseOperationFailed)
		}

		b, derr := booking.NewBooking(actor, in.CustomerLabel, in.ScheduledDate, roomType, settings, now)
		if derr != nil {
			return derr
		}

		id, cerr := tx.Bookings().Create(ctx, b)
		if cerr != nil {
			return errs.Mark(cerr, errs.ErrDatabaseOperationFailed)
		}
		if aerr := b.AssignID(id); aerr != nil {
			return aerr
		}

		if eerr := tx.Events().Append(ctx, booking.NewCreatedEvent(b, now)); eerr != nil {
			return errs.Mark(eerr, errs.ErrDatabaseOperationFailed)
		}

		if idempotencyKey != nil {
			ierr := tx.Idempotency().Insert(ctx, shared.IdempotencyRecord{
				Key:             *idempotencyKey,
				Owner:           actor,
				Endpoint:        shared.IdempotencyEndpointCreateBooking,
				RequestHash:     requestHash,
				ResultBookingID: id,
				CreatedAt:       now,
				ExpiresAt:       now.Add(shared.IdempotencyTTL),
			})
			if ierr != nil {
				if infra.IsKind(ierr, infra.KindDuplicateKey) {
					return errs.Mark(ierr, errs.ErrIdempotencyInProgress)
				}
				return errs.Mark(ierr, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &CreateBookingResult{BookingID: id}
		return nil
	})
	metrics.Booking().RecordOperation("create", err)
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		slog.InfoContext(ctx, "booking created",
			"booking_id", result.BookingID,
			"customer", actor.String(),
			"room_type", roomType.String())
	}
	return result, nil
}

func (uc *bookingUseCaseImpl) replayIdempotent(
	ctx context.Context,
	tx shared.Tx,
	key uuid.UUID,
	actor account.Account,
	requestHash string,
	now time.Time,
) (*CreateBookingResult, error) {
	existing, err := tx.Idempotency().Find(ctx, key, actor)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if existing.Expired(now) {
		if derr := tx.Idempotency().DeleteExpired(ctx, key, actor, now); derr != nil {
			return nil, errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil, nil
	}
	if existing.Endpoint != shared.IdempotencyEndpointCreateBooking || existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}
	return &CreateBookingResult{BookingID: existing.ResultBookingID, IsReplayed: true}, nil
}

func (uc *bookingUseCaseImpl) ConfirmBooking(ctx context.Context, actor account.Account, id booking.ID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := b.Confirm(actor, now); err != nil {
			return err
		}
		return persist(ctx, tx, b, booking.NewConfirmedEvent(b, actor, now))
	})
	metrics.Booking().RecordOperation("confirm", err)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "booking confirmed", "booking_id", id, "customer", actor.String())
	return nil
}

func (uc *bookingUseCaseImpl) PayForBooking(ctx context.Context, actor account.Account, id booking.ID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		total, err := b.PreparePayment(now)
		if err != nil {
			return err
		}

		escrow := uc.principals.Escrow
		if err := uc.callLedger("transfer_from", func() error {
			return uc.ledger.TransferFrom(ctx, escrow, actor, escrow, total)
		}); err != nil {
			slog.WarnContext(ctx, "payment transfer rejected",
				"booking_id", id, "payer", actor.String(), "amount", total.String(), "error", err.Error())
			return errs.Mark(errs.Wrap(err, "collect payment"), booking.ErrPaymentTransferFailed)
		}
		tx.OnRollback(func(ctx context.Context) {
			if cerr := uc.callLedger("transfer", func() error {
				return uc.ledger.Transfer(ctx, escrow, actor, total)
			}); cerr != nil {
				slog.ErrorContext(ctx, "payment compensation failed",
					"booking_id", id, "payer", actor.String(), "amount", total.String(), "error", cerr.Error())
			}
		})

		if err := b.MarkPaid(actor, total, now); err != nil {
			return err
		}
		return persist(ctx, tx, b, booking.NewPaidEvent(b, now))
	})
	metrics.Booking().RecordOperation("pay", err)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "booking paid", "booking_id", id, "payer", actor.String())
	return nil
}

// CancelBooking is permissionless; the payment window alone decides.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, actor account.Account, id booking.ID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if err := b.Cancel(now); err != nil {
			return err
		}
		return persist(ctx, tx, b, booking.NewCancelledEvent(b, actor, now))
	})
	metrics.Booking().RecordOperation("cancel", err)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "booking cancelled", "booking_id", id, "actor", actor.String())
	return nil
}

func (uc *bookingUseCaseImpl) Refund(ctx context.Context, actor account.Account, id booking.ID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		amount, err := b.PrepareRefund(actor, now)
		if err != nil {
			return err
		}

		escrow := uc.principals.Escrow
		payer := b.Payer()
		if err := uc.callLedger("transfer", func() error {
			return uc.ledger.Transfer(ctx, escrow, payer, amount)
		}); err != nil {
			slog.WarnContext(ctx, "refund transfer rejected",
				"booking_id", id, "payer", payer.String(), "amount", amount.String(), "error", err.Error())
			return errs.Mark(errs.Wrap(err, "return payment"), booking.ErrRefundTransferFailed)
		}
		tx.OnRollback(func(ctx context.Context) {
			// Best effort: needs the payer's allowance to still cover the amount.
			if cerr := uc.callLedger("transfer_from", func() error {
				return uc.ledger.TransferFrom(ctx, escrow, payer, escrow, amount)
			}); cerr != nil {
				slog.ErrorContext(ctx, "refund compensation failed",
					"booking_id", id, "payer", payer.String(), "amount", amount.String(), "error", cerr.Error())
			}
		})

		if err := b.MarkRefunded(now); err != nil {
			return err
		}
		return persist(ctx, tx, b, booking.NewRefundedEvent(b, now))
	})
	metrics.Booking().RecordOperation("refund", err)
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "booking refunded", "booking_id", id, "payer", actor.String())
	return nil
}

func (uc *bookingUseCaseImpl) ModifyRefundableStatus(ctx context.Context, actor account.Account, id booking.ID) (bool, error) {
	if err := uc.principals.Ownership.Authorize(actor); err != nil {
		metrics.Booking().RecordOperation("modify_refundable", err)
		return false, err
	}

	var refundable bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := loadForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		refundable = b.ToggleRefundable(now)
		return persist(ctx, tx, b, booking.NewRefundableChangedEvent(b, actor, now))
	})
	metrics.Booking().RecordOperation("modify_refundable", err)
	if err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "booking refundable status changed", "booking_id", id, "refundable", refundable)
	return refundable, nil
}

func (uc *bookingUseCaseImpl) callLedger(call string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.Booking().ObserveLedgerCall(call, err, time.Since(start))
	return err
}

func loadForUpdate(ctx context.Context, tx shared.Tx, id booking.ID) (*booking.Booking, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, booking.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b, nil
}

func persist(ctx context.Context, tx shared.Tx, b *booking.Booking, event booking.Event) error {
	if err := tx.Bookings().Update(ctx, b); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Events().Append(ctx, event); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func calculateRequestHash(in CreateBookingInput) string {
	in.ScheduledDate = in.ScheduledDate.UTC()
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
