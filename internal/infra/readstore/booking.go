package readstore

import (
	"context"
	"encoding/json"
	"fmt"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/infra/db"
	"booking-registry/internal/infra/repository"
	"booking-registry/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	b, err := repository.ScanBooking(r.db.QueryRow(ctx, repository.SelectBookingByID, int64(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("booking %d not found", id), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return b, nil
}

func (r *BookingReadStore) ListEvents(ctx context.Context, id booking.ID) ([]booking.Event, error) {
	const q = `SELECT id, type, booking_id, actor, attributes, occurred_at
		FROM booking_events WHERE booking_id = $1 ORDER BY seq`

	rows, err := r.db.Query(ctx, q, int64(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking events", err)
	}
	defer rows.Close()

	var events []booking.Event
	for rows.Next() {
		var (
			eventID    uuid.UUID
			eventType  string
			bookingID  int64
			actor      pgtype.Text
			attributes []byte
			occurredAt pgtype.Timestamptz
		)
		if err := rows.Scan(&eventID, &eventType, &bookingID, &actor, &attributes, &occurredAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking event", err)
		}
		actorAccount, err := pgconv.AccountFromPgtype(actor)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid event actor", err, infra.KindDBFailure)
		}
		var attrs map[string]string
		if err := json.Unmarshal(attributes, &attrs); err != nil {
			return nil, infra.WrapRepoErr("invalid event attributes", err, infra.KindDBFailure)
		}
		events = append(events, booking.Event{
			ID:         eventID,
			Type:       booking.EventType(eventType),
			BookingID:  booking.ID(bookingID),
			Actor:      actorAccount,
			Attributes: attrs,
			OccurredAt: pgconv.TimeFromPgtype(occurredAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking events", err)
	}
	return events, nil
}
