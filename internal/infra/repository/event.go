package repository

import (
	"context"
	"encoding/json"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/infra/db"
	"booking-registry/internal/pkg/pgconv"
)

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(db db.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Append(ctx context.Context, e booking.Event) error {
	const q = `INSERT INTO booking_events (id, type, booking_id, actor, attributes, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	attrs := e.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	payload, err := json.Marshal(attrs)
	if err != nil {
		return infra.WrapRepoErr("failed to encode event attributes", err, infra.KindDBFailure)
	}

	_, err = r.db.Exec(ctx, q,
		e.ID,
		string(e.Type),
		int64(e.BookingID),
		pgconv.AccountToPgtype(e.Actor),
		payload,
		pgconv.TimeToPgtype(e.OccurredAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}
