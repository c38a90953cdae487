package memory

import (
	"context"
	"fmt"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	shared.RollbackHooks

	store *Store
	held  map[string]struct{}

	bookings        map[booking.ID]booking.ReconstructParams
	settings        *booking.Settings
	events          []booking.Event
	idempotency     map[string]shared.IdempotencyRecord
	idempotencyDrop map[string]struct{}
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:           s,
		held:            make(map[string]struct{}),
		bookings:        make(map[booking.ID]booking.ReconstructParams),
		idempotency:     make(map[string]shared.IdempotencyRecord),
		idempotencyDrop: make(map[string]struct{}),
	}
}

func (t *memTx) Bookings() shared.BookingRepository        { return bookingRepo{t} }
func (t *memTx) Settings() shared.SettingsRepository       { return settingsRepo{t} }
func (t *memTx) Events() shared.EventRepository            { return eventRepo{t} }
func (t *memTx) Idempotency() shared.IdempotencyRepository { return idempotencyRepo{t} }

// lock is reentrant within one transaction.
func (t *memTx) lock(key string) {
	if _, ok := t.held[key]; ok {
		return
	}
	t.store.locks.acquire(key)
	t.held[key] = struct{}{}
}

func (t *memTx) releaseLocks() {
	for key := range t.held {
		t.store.locks.release(key)
		delete(t.held, key)
	}
}

func (t *memTx) commit() {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, p := range t.bookings {
		s.bookings[id] = p
	}
	if t.settings != nil {
		s.settings = *t.settings
	}
	s.events = append(s.events, t.events...)
	for key := range t.idempotencyDrop {
		delete(s.idempotency, key)
	}
	for key, rec := range t.idempotency {
		s.idempotency[key] = rec
	}
}

type bookingRepo struct{ tx *memTx }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) (booking.ID, error) {
	id := r.tx.store.allocateID()
	p := snapshot(b)
	p.ID = id
	r.tx.lock(bookingLockKey(id))
	r.tx.bookings[id] = p
	return id, nil
}

func (r bookingRepo) GetForUpdate(_ context.Context, id booking.ID) (*booking.Booking, error) {
	r.tx.lock(bookingLockKey(id))
	if p, ok := r.tx.bookings[id]; ok {
		return booking.ReconstructBooking(p), nil
	}

	r.tx.store.mu.RLock()
	p, ok := r.tx.store.bookings[id]
	r.tx.store.mu.RUnlock()
	if !ok {
		return nil, infra.NotFound(fmt.Sprintf("booking %d not found", id))
	}
	return booking.ReconstructBooking(p), nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	key := bookingLockKey(b.ID())
	if _, ok := r.tx.held[key]; !ok {
		return infra.WrapRepoErr(fmt.Sprintf("booking %d updated without lock", b.ID()), nil, infra.KindDBFailure)
	}
	r.tx.bookings[b.ID()] = snapshot(b)
	return nil
}

type settingsRepo struct{ tx *memTx }

func (r settingsRepo) Get(ctx context.Context) (booking.Settings, error) {
	if r.tx.settings != nil {
		return *r.tx.settings, nil
	}
	return r.tx.store.GetSettings(ctx)
}

func (r settingsRepo) GetForUpdate(ctx context.Context) (booking.Settings, error) {
	r.tx.lock(settingsLockKey)
	return r.Get(ctx)
}

func (r settingsRepo) Save(_ context.Context, s booking.Settings) error {
	if _, ok := r.tx.held[settingsLockKey]; !ok {
		return infra.WrapRepoErr("settings saved without lock", nil, infra.KindDBFailure)
	}
	r.tx.settings = &s
	return nil
}

type eventRepo struct{ tx *memTx }

func (r eventRepo) Append(_ context.Context, e booking.Event) error {
	r.tx.events = append(r.tx.events, e)
	return nil
}

type idempotencyRepo struct{ tx *memTx }

// Find locks the key so concurrent requests with the same key serialize.
func (r idempotencyRepo) Find(_ context.Context, key uuid.UUID, owner account.Account) (*shared.IdempotencyRecord, error) {
	k := idempotencyKey(key, owner)
	r.tx.lock("idempotency/" + k)

	if rec, ok := r.tx.idempotency[k]; ok {
		return &rec, nil
	}
	if _, dropped := r.tx.idempotencyDrop[k]; dropped {
		return nil, infra.NotFound("idempotency key not found")
	}

	r.tx.store.mu.RLock()
	rec, ok := r.tx.store.idempotency[k]
	r.tx.store.mu.RUnlock()
	if !ok {
		return nil, infra.NotFound("idempotency key not found")
	}
	return &rec, nil
}

func (r idempotencyRepo) Insert(ctx context.Context, rec shared.IdempotencyRecord) error {
	existing, err := r.Find(ctx, rec.Key, rec.Owner)
	if err == nil && existing != nil {
		return infra.WrapRepoErr("idempotency key already exists", nil, infra.KindDuplicateKey)
	}
	k := idempotencyKey(rec.Key, rec.Owner)
	delete(r.tx.idempotencyDrop, k)
	r.tx.idempotency[k] = rec
	return nil
}

func (r idempotencyRepo) DeleteExpired(_ context.Context, key uuid.UUID, owner account.Account, now time.Time) error {
	k := idempotencyKey(key, owner)
	r.tx.lock("idempotency/" + k)

	if rec, ok := r.tx.idempotency[k]; ok && rec.Expired(now) {
		delete(r.tx.idempotency, k)
	}
	r.tx.store.mu.RLock()
	rec, ok := r.tx.store.idempotency[k]
	r.tx.store.mu.RUnlock()
	if ok && rec.Expired(now) {
		r.tx.idempotencyDrop[k] = struct{}{}
	}
	return nil
}

func bookingLockKey(id booking.ID) string {
	return "booking/" + id.String()
}

func snapshot(b *booking.Booking) booking.ReconstructParams {
	return booking.ReconstructParams{
		ID:            b.ID(),
		Customer:      b.Customer(),
		CustomerLabel: b.CustomerLabel().String(),
		BaseAmount:    b.BaseAmount(),
		TaxPercentage: b.TaxPercentage().Int(),
		ScheduledDate: b.ScheduledDate(),
		RoomType:      b.RoomType(),
		Status:        b.Status(),
		Payer:         b.Payer(),
		AmountPaid:    b.AmountPaid(),
		Refundable:    b.Refundable(),
		ConfirmedAt:   b.ConfirmedAt(),
		PaidAt:        b.PaidAt(),
		CancelledAt:   b.CancelledAt(),
		RefundedAt:    b.RefundedAt(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}
