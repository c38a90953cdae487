//go:build unit

package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/usecase/shared"
	"booking-registry/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSet_EntriesAreDroppedOnRelease(t *testing.T) {
	l := newLockSet()

	l.acquire("a")
	l.acquire("b")
	assert.Equal(t, 2, l.size())

	l.release("a")
	assert.Equal(t, 1, l.size())
	l.release("b")
	assert.Equal(t, 0, l.size())

	// releasing an unknown key is a no-op
	l.release("c")
	assert.Equal(t, 0, l.size())
}

func TestLockSet_WaiterKeepsEntryAlive(t *testing.T) {
	l := newLockSet()
	l.acquire("k")

	acquired := make(chan struct{})
	go func() {
		l.acquire("k")
		close(acquired)
	}()

	require.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.locks["k"].refs == 2
	}, time.Second, time.Millisecond)

	l.release("k")
	<-acquired
	assert.Equal(t, 1, l.size())

	l.release("k")
	assert.Equal(t, 0, l.size())
}

func TestStore_LocksDoNotAccumulate(t *testing.T) {
	s := NewStore(builder.TestSettings(builder.BaseTime))
	ctx := context.Background()

	t.Run("unknown booking ids", func(t *testing.T) {
		for id := booking.ID(1000); id < 2000; id++ {
			_ = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				_, err := tx.Bookings().GetForUpdate(ctx, id)
				return err
			})
		}
		assert.Equal(t, 0, s.locks.size())
	})

	t.Run("fresh idempotency keys", func(t *testing.T) {
		for range 1000 {
			key := uuid.New()
			_ = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.Idempotency().DeleteExpired(ctx, key, builder.Alice, builder.BaseTime); err != nil {
					return err
				}
				_, err := tx.Idempotency().Find(ctx, key, builder.Alice)
				return err
			})
		}
		assert.Equal(t, 0, s.locks.size())
	})

	t.Run("contended booking", func(t *testing.T) {
		var id booking.ID
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			id, err = tx.Bookings().Create(ctx, builder.NewBookingBuilder().MustBuildDomain())
			return err
		}))

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					_, err := tx.Bookings().GetForUpdate(ctx, id)
					return err
				})
			}()
		}
		wg.Wait()
		assert.Equal(t, 0, s.locks.size())
	})
}
