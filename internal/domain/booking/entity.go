package booking

import (
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/pkg/errs"
)

type Booking struct {
	id            ID
	customer      account.Account
	customerLabel CustomerLabel
	baseAmount    token.Amount
	taxPercentage TaxPercentage
	scheduledDate time.Time
	roomType      RoomType
	status        Status
	payer         account.Account
	amountPaid    token.Amount
	refundable    bool
	confirmedAt   *time.Time
	paidAt        *time.Time
	cancelledAt   *time.Time
	refundedAt    *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking snapshots the base price and tax rate from settings. The id is assigned once stored.
func NewBooking(customer account.Account, label string, scheduledDate time.Time, roomType RoomType, settings Settings, now time.Time) (*Booking, error) {
	if customer.IsZero() {
		return nil, ErrInvalidCustomer
	}
	customerLabel, err := NewCustomerLabel(label)
	if err != nil {
		return nil, err
	}
	base, err := settings.RoomPrices().PriceFor(roomType)
	if err != nil {
		return nil, err
	}

	return &Booking{
		customer:      customer,
		customerLabel: customerLabel,
		baseAmount:    base,
		taxPercentage: settings.TaxPercentage(),
		scheduledDate: scheduledDate.UTC(),
		roomType:      roomType,
		status:        StatusPending,
		refundable:    false,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            ID
	Customer      account.Account
	CustomerLabel string
	BaseAmount    token.Amount
	TaxPercentage int
	ScheduledDate time.Time
	RoomType      RoomType
	Status        Status
	Payer         account.Account
	AmountPaid    token.Amount
	Refundable    bool
	ConfirmedAt   *time.Time
	PaidAt        *time.Time
	CancelledAt   *time.Time
	RefundedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ReconstructBooking rebuilds a stored booking without re-running creation rules.
func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:            p.ID,
		customer:      p.Customer,
		customerLabel: CustomerLabel{text: p.CustomerLabel},
		baseAmount:    p.BaseAmount,
		taxPercentage: TaxPercentage{value: uint32(p.TaxPercentage)},
		scheduledDate: p.ScheduledDate,
		roomType:      p.RoomType,
		status:        p.Status,
		payer:         p.Payer,
		amountPaid:    p.AmountPaid,
		refundable:    p.Refundable,
		confirmedAt:   p.ConfirmedAt,
		paidAt:        p.PaidAt,
		cancelledAt:   p.CancelledAt,
		refundedAt:    p.RefundedAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (b *Booking) ID() ID                       { return b.id }
func (b *Booking) Customer() account.Account    { return b.customer }
func (b *Booking) CustomerLabel() CustomerLabel { return b.customerLabel }
func (b *Booking) BaseAmount() token.Amount     { return b.baseAmount }
func (b *Booking) TaxPercentage() TaxPercentage { return b.taxPercentage }
func (b *Booking) ScheduledDate() time.Time     { return b.scheduledDate }
func (b *Booking) RoomType() RoomType           { return b.roomType }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) Payer() account.Account       { return b.payer }
func (b *Booking) AmountPaid() token.Amount     { return b.amountPaid }
func (b *Booking) Refundable() bool             { return b.refundable }
func (b *Booking) ConfirmedAt() *time.Time      { return b.confirmedAt }
func (b *Booking) PaidAt() *time.Time           { return b.paidAt }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) RefundedAt() *time.Time       { return b.refundedAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

func (b *Booking) TotalAmount() (token.Amount, error) {
	return CalculateTotalAmount(b.baseAmount, b.taxPercentage)
}

func (b *Booking) AssignID(id ID) error {
	if b.id != 0 {
		return ErrIDAlreadyAssigned
	}
	b.id = id
	return nil
}

// PaymentDeadline is confirmedAt + PaymentWindow. It is unset until the booking is confirmed.
func (b *Booking) PaymentDeadline() (time.Time, bool) {
	if b.confirmedAt == nil {
		return time.Time{}, false
	}
	return b.confirmedAt.Add(PaymentWindow), true
}

// CancellableAt is the first instant cancelBooking succeeds.
// Unconfirmed bookings are anchored on their creation time.
func (b *Booking) CancellableAt() time.Time {
	if deadline, ok := b.PaymentDeadline(); ok {
		return deadline
	}
	return b.createdAt.Add(PaymentWindow)
}

// RefundableAt is paidAt + RefundWindow. It is unset until the booking is paid.
func (b *Booking) RefundableAt() (time.Time, bool) {
	if b.paidAt == nil {
		return time.Time{}, false
	}
	return b.paidAt.Add(RefundWindow), true
}

func (b *Booking) Confirm(caller account.Account, now time.Time) error {
	if !caller.Equal(b.customer) {
		return ErrNotCustomer
	}
	if err := b.transitionTo(StatusConfirmed, StatusPending); err != nil {
		return err
	}
	b.confirmedAt = &now
	b.updatedAt = now
	return nil
}

// PreparePayment validates that the booking can be paid at now and returns the amount due.
// The booking is not modified; call MarkPaid once the transfer has been confirmed.
func (b *Booking) PreparePayment(now time.Time) (token.Amount, error) {
	if b.status != StatusConfirmed {
		return token.Amount{}, errs.Wrapf(ErrInvalidState, "cannot pay booking %d in status %s", b.id, b.status)
	}
	deadline, _ := b.PaymentDeadline()
	if !now.Before(deadline) {
		return token.Amount{}, errs.Wrapf(ErrDeadlinePassed, "payment deadline was %s", deadline.Format(time.RFC3339))
	}
	return b.TotalAmount()
}

func (b *Booking) MarkPaid(payer account.Account, amount token.Amount, now time.Time) error {
	if payer.IsZero() {
		return errs.Wrap(ErrInvalidState, "payer required")
	}
	if err := b.transitionTo(StatusPaid, StatusConfirmed); err != nil {
		return err
	}
	b.payer = payer
	b.amountPaid = amount
	b.paidAt = &now
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return errs.Wrapf(ErrInvalidState, "cannot cancel booking %d in status %s", b.id, b.status)
	}
	if now.Before(b.CancellableAt()) {
		return errs.Wrapf(ErrInvalidState, "payment window open until %s", b.CancellableAt().Format(time.RFC3339))
	}
	if err := b.transitionTo(StatusCancelled, b.status); err != nil {
		return err
	}
	b.cancelledAt = &now
	b.updatedAt = now
	return nil
}

// PrepareRefund validates the refund preconditions for caller and returns the amount to return.
func (b *Booking) PrepareRefund(caller account.Account, now time.Time) (token.Amount, error) {
	if b.status != StatusPaid {
		return token.Amount{}, errs.Wrapf(ErrInvalidState, "cannot refund booking %d in status %s", b.id, b.status)
	}
	if !caller.Equal(b.payer) {
		return token.Amount{}, ErrNotPayer
	}
	if !b.refundable {
		return token.Amount{}, ErrNotRefundable
	}
	refundableAt, _ := b.RefundableAt()
	if now.Before(refundableAt) {
		return token.Amount{}, errs.Wrapf(ErrRefundWindowNotElapsed, "refund allowed from %s", refundableAt.Format(time.RFC3339))
	}
	return b.amountPaid, nil
}

func (b *Booking) MarkRefunded(now time.Time) error {
	if err := b.transitionTo(StatusRefunded, StatusPaid); err != nil {
		return err
	}
	b.refundedAt = &now
	b.updatedAt = now
	return nil
}

// ToggleRefundable flips the refundable flag and returns the new value.
func (b *Booking) ToggleRefundable(now time.Time) bool {
	b.refundable = !b.refundable
	b.updatedAt = now
	return b.refundable
}

func (b *Booking) transitionTo(next, expected Status) error {
	if b.status != expected || !b.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidState, "booking %d: %s -> %s", b.id, b.status, next)
	}
	b.status = next
	return nil
}
