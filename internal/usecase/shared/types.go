package shared

import (
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	IdempotencyEndpointCreateBooking = "create_booking"
	IdempotencyTTL                   = 24 * time.Hour
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	Owner           account.Account
	Endpoint        string
	RequestHash     string
	ResultBookingID booking.ID
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

func (r IdempotencyRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
