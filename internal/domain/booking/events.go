package booking

import (
	"strconv"
	"time"

	"booking-registry/internal/domain/account"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated           EventType = "booking.created"
	EventConfirmed         EventType = "booking.confirmed"
	EventPaid              EventType = "booking.paid"
	EventCancelled         EventType = "booking.cancelled"
	EventRefunded          EventType = "booking.refunded"
	EventRefundableChanged EventType = "booking.refundable_changed"
	EventTaxChanged        EventType = "registry.tax_changed"
	EventRoomPricesChanged EventType = "registry.room_prices_changed"
)

// Event is an observable record of a state change. Registry-level events carry BookingID 0.
type Event struct {
	ID         uuid.UUID
	Type       EventType
	BookingID  ID
	Actor      account.Account
	Attributes map[string]string
	OccurredAt time.Time
}

func newEvent(t EventType, id ID, actor account.Account, attrs map[string]string, now time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		BookingID:  id,
		Actor:      actor,
		Attributes: attrs,
		OccurredAt: now,
	}
}

func NewCreatedEvent(b *Booking, now time.Time) Event {
	return newEvent(EventCreated, b.id, b.customer, map[string]string{
		"roomType":      b.roomType.String(),
		"baseAmount":    b.baseAmount.String(),
		"taxPercentage": strconv.Itoa(b.taxPercentage.Int()),
	}, now)
}

func NewConfirmedEvent(b *Booking, actor account.Account, now time.Time) Event {
	deadline, _ := b.PaymentDeadline()
	return newEvent(EventConfirmed, b.id, actor, map[string]string{
		"paymentDeadline": deadline.Format(time.RFC3339),
	}, now)
}

func NewPaidEvent(b *Booking, now time.Time) Event {
	return newEvent(EventPaid, b.id, b.payer, map[string]string{
		"payer":  b.payer.String(),
		"amount": b.amountPaid.String(),
	}, now)
}

func NewCancelledEvent(b *Booking, actor account.Account, now time.Time) Event {
	return newEvent(EventCancelled, b.id, actor, nil, now)
}

func NewRefundedEvent(b *Booking, now time.Time) Event {
	return newEvent(EventRefunded, b.id, b.payer, map[string]string{
		"payer":  b.payer.String(),
		"amount": b.amountPaid.String(),
	}, now)
}

func NewRefundableChangedEvent(b *Booking, actor account.Account, now time.Time) Event {
	return newEvent(EventRefundableChanged, b.id, actor, map[string]string{
		"refundable": strconv.FormatBool(b.refundable),
	}, now)
}

func NewTaxChangedEvent(s Settings, actor account.Account, now time.Time) Event {
	return newEvent(EventTaxChanged, 0, actor, map[string]string{
		"taxPercentage": strconv.Itoa(s.taxPercentage.Int()),
		"version":       strconv.FormatInt(s.version, 10),
	}, now)
}

func NewRoomPricesChangedEvent(s Settings, actor account.Account, now time.Time) Event {
	return newEvent(EventRoomPricesChanged, 0, actor, map[string]string{
		"standard": s.roomPrices.Standard.String(),
		"deluxe":   s.roomPrices.Deluxe.String(),
		"suite":    s.roomPrices.Suite.String(),
		"version":  strconv.FormatInt(s.version, 10),
	}, now)
}
