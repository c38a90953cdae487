package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

const settingsLockKey = "settings"

// Store keeps registry state in process memory. It implements shared.UnitOfWork and
// the query read stores, so the service runs without a database.
type Store struct {
	mu          sync.RWMutex
	nextID      booking.ID
	bookings    map[booking.ID]booking.ReconstructParams
	settings    booking.Settings
	events      []booking.Event
	idempotency map[string]shared.IdempotencyRecord

	locks *lockSet
}

func NewStore(settings booking.Settings) *Store {
	return &Store{
		nextID:      1,
		bookings:    make(map[booking.ID]booking.ReconstructParams),
		settings:    settings,
		idempotency: make(map[string]shared.IdempotencyRecord),
		locks:       newLockSet(),
	}
}

// Within runs fn against staged state. Staged writes become visible atomically when fn
// returns nil; otherwise they are dropped and rollback hooks run.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := newMemTx(s)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		tx.Run(ctx)
		return err
	}
	tx.commit()
	return nil
}

func (s *Store) FindByID(_ context.Context, id booking.ID) (*booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.bookings[id]
	if !ok {
		return nil, infra.NotFound(fmt.Sprintf("booking %d not found", id))
	}
	return booking.ReconstructBooking(p), nil
}

func (s *Store) ListEvents(_ context.Context, id booking.ID) ([]booking.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []booking.Event
	for _, e := range s.events {
		if e.BookingID == id {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out, nil
}

func (s *Store) GetSettings(_ context.Context) (booking.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// Events returns every recorded event in append order.
func (s *Store) Events() []booking.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]booking.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) allocateID() booking.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	return id
}

func idempotencyKey(key uuid.UUID, owner account.Account) string {
	return key.String() + "/" + owner.String()
}
