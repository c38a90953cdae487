package queries

import (
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"

	"github.com/google/uuid"
)

// BookingCoreView is the pricing facet of a booking.
type BookingCoreView struct {
	ID            booking.ID
	CustomerLabel string
	BaseAmount    token.Amount
	TaxPercentage int
	TotalAmount   token.Amount
	ScheduledDate time.Time
}

// BookingDetailsView is the lifecycle facet of a booking.
type BookingDetailsView struct {
	ID              booking.ID
	RoomType        booking.RoomType
	Status          booking.Status
	Payer           account.Account
	Refundable      bool
	ConfirmedAt     *time.Time
	PaidAt          *time.Time
	PaymentDeadline *time.Time
	RefundableAt    *time.Time
}

// BookingView is the full read model of a booking.
type BookingView struct {
	ID              booking.ID
	Customer        account.Account
	CustomerLabel   string
	BaseAmount      token.Amount
	TaxPercentage   int
	TotalAmount     token.Amount
	AmountPaid      token.Amount
	ScheduledDate   time.Time
	RoomType        booking.RoomType
	Status          booking.Status
	Payer           account.Account
	Refundable      bool
	ConfirmedAt     *time.Time
	PaidAt          *time.Time
	CancelledAt     *time.Time
	RefundedAt      *time.Time
	PaymentDeadline *time.Time
	CancellableAt   time.Time
	RefundableAt    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type EventView struct {
	ID         uuid.UUID
	Type       string
	BookingID  booking.ID
	Actor      account.Account
	Attributes map[string]string
	OccurredAt time.Time
}

type RoomPricesView struct {
	Standard token.Amount
	Deluxe   token.Amount
	Suite    token.Amount
}

type SettingsView struct {
	Owner         account.Account
	EscrowAccount account.Account
	TaxPercentage int
	RoomPrices    RoomPricesView
	Version       int64
	UpdatedAt     time.Time
}

type BalanceView struct {
	Account account.Account
	Balance token.Amount
}

type AllowanceView struct {
	Owner     account.Account
	Spender   account.Account
	Allowance token.Amount
}

func NewBookingView(b *booking.Booking) (*BookingView, error) {
	total, err := b.TotalAmount()
	if err != nil {
		return nil, err
	}
	v := &BookingView{
		ID:            b.ID(),
		Customer:      b.Customer(),
		CustomerLabel: b.CustomerLabel().String(),
		BaseAmount:    b.BaseAmount(),
		TaxPercentage: b.TaxPercentage().Int(),
		TotalAmount:   total,
		AmountPaid:    b.AmountPaid(),
		ScheduledDate: b.ScheduledDate(),
		RoomType:      b.RoomType(),
		Status:        b.Status(),
		Payer:         b.Payer(),
		Refundable:    b.Refundable(),
		ConfirmedAt:   b.ConfirmedAt(),
		PaidAt:        b.PaidAt(),
		CancelledAt:   b.CancelledAt(),
		RefundedAt:    b.RefundedAt(),
		CancellableAt: b.CancellableAt(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	if deadline, ok := b.PaymentDeadline(); ok {
		v.PaymentDeadline = &deadline
	}
	if refundableAt, ok := b.RefundableAt(); ok {
		v.RefundableAt = &refundableAt
	}
	return v, nil
}

func (v *BookingView) Core() *BookingCoreView {
	return &BookingCoreView{
		ID:            v.ID,
		CustomerLabel: v.CustomerLabel,
		BaseAmount:    v.BaseAmount,
		TaxPercentage: v.TaxPercentage,
		TotalAmount:   v.TotalAmount,
		ScheduledDate: v.ScheduledDate,
	}
}

func (v *BookingView) Details() *BookingDetailsView {
	return &BookingDetailsView{
		ID:              v.ID,
		RoomType:        v.RoomType,
		Status:          v.Status,
		Payer:           v.Payer,
		Refundable:      v.Refundable,
		ConfirmedAt:     v.ConfirmedAt,
		PaidAt:          v.PaidAt,
		PaymentDeadline: v.PaymentDeadline,
		RefundableAt:    v.RefundableAt,
	}
}

func NewEventView(e booking.Event) *EventView {
	return &EventView{
		ID:         e.ID,
		Type:       string(e.Type),
		BookingID:  e.BookingID,
		Actor:      e.Actor,
		Attributes: e.Attributes,
		OccurredAt: e.OccurredAt,
	}
}

func NewRoomPricesView(p booking.RoomPrices) RoomPricesView {
	return RoomPricesView{Standard: p.Standard, Deluxe: p.Deluxe, Suite: p.Suite}
}
