package queries

import (
	"context"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/pkg/errs"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

type BookingReadStore interface {
	FindByID(ctx context.Context, id booking.ID) (*booking.Booking, error)
	ListEvents(ctx context.Context, id booking.ID) ([]booking.Event, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id booking.ID) (*BookingView, error)
	GetCore(ctx context.Context, id booking.ID) (*BookingCoreView, error)
	GetDetails(ctx context.Context, id booking.ID) (*BookingDetailsView, error)
	ListEvents(ctx context.Context, id booking.ID) ([]*EventView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id booking.ID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, booking.ErrNotFound)
		}
		return nil, err
	}
	return NewBookingView(b)
}

func (q *bookingQueriesImpl) GetCore(ctx context.Context, id booking.ID) (*BookingCoreView, error) {
	v, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return v.Core(), nil
}

func (q *bookingQueriesImpl) GetDetails(ctx context.Context, id booking.ID) (*BookingDetailsView, error) {
	v, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return v.Details(), nil
}

func (q *bookingQueriesImpl) ListEvents(ctx context.Context, id booking.ID) ([]*EventView, error) {
	if _, err := q.GetByID(ctx, id); err != nil {
		return nil, err
	}
	events, err := q.repo.ListEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	views := make([]*EventView, 0, len(events))
	for _, e := range events {
		views = append(views, NewEventView(e))
	}
	return views, nil
}
