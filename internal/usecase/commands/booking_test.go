//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/infra/ledger"
	"booking-registry/internal/infra/memory"
	"booking-registry/internal/pkg/clock"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/usecase/commands"
	"booking-registry/internal/usecase/shared"
	"booking-registry/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	ledger   *ledger.MemoryLedger
	clock    *clock.MockClock
	commands commands.BookingCommands
	registry commands.RegistryCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewMockClock(builder.BaseTime)
	s.store = memory.NewStore(builder.TestSettings(builder.BaseTime))
	s.ledger = ledger.NewMemoryLedger()

	principals := commands.Principals{
		Ownership: booking.NewOwnership(builder.Owner),
		Escrow:    builder.Escrow,
	}
	s.commands = commands.NewBookingCommands(s.store, s.ledger, principals, s.clock)
	s.registry = commands.NewRegistryCommands(s.store, principals, s.clock)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// ================================================================================
// helpers
// ================================================================================

func (s *BookingCommandsTestSuite) fund(holder account.Account, amount token.Amount) {
	s.Require().NoError(s.ledger.Mint(holder, amount))
	s.ledger.Approve(holder, builder.Escrow, amount)
}

func (s *BookingCommandsTestSuite) create(customer account.Account) booking.ID {
	in := builder.NewBookingBuilder().BuildInput()
	res, err := s.commands.CreateBooking(s.ctx, customer, in, nil)
	s.Require().NoError(err)
	return res.BookingID
}

func (s *BookingCommandsTestSuite) confirmed(customer account.Account) booking.ID {
	id := s.create(customer)
	s.Require().NoError(s.commands.ConfirmBooking(s.ctx, customer, id))
	return id
}

func (s *BookingCommandsTestSuite) paid(customer, payer account.Account) booking.ID {
	id := s.confirmed(customer)
	s.fund(payer, builder.StandardTotal)
	s.Require().NoError(s.commands.PayForBooking(s.ctx, payer, id))
	return id
}

func (s *BookingCommandsTestSuite) load(id booking.ID) *booking.Booking {
	b, err := s.store.FindByID(s.ctx, id)
	s.Require().NoError(err)
	return b
}

func (s *BookingCommandsTestSuite) balance(holder account.Account) string {
	b, err := s.ledger.BalanceOf(s.ctx, holder)
	s.Require().NoError(err)
	return b.String()
}

func (s *BookingCommandsTestSuite) assertErrIs(err, target error) {
	s.T().Helper()
	s.Require().Error(err)
	s.True(errs.Is(err, target), "expected %v, got %v", target, err)
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("success: pending with snapshotted price and tax", func() {
		res, err := s.commands.CreateBooking(s.ctx, builder.Alice, builder.NewBookingBuilder().BuildInput(), nil)
		s.Require().NoError(err)
		s.False(res.IsReplayed)

		b := s.load(res.BookingID)
		s.Equal(booking.StatusPending, b.Status())
		s.True(b.Customer().Equal(builder.Alice))
		s.True(b.BaseAmount().Equal(builder.StandardPrice))
		s.Equal(builder.TestTaxPercentage, b.TaxPercentage().Int())
		s.False(b.Refundable())
		s.Equal(builder.BaseTime, b.CreatedAt())
	})

	s.Run("ids increase and are never reused", func() {
		first := s.create(builder.Alice)
		second := s.create(builder.Bob)
		s.Greater(int64(second), int64(first))
	})

	s.Run("failure: invalid room type", func() {
		in := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomType = 3 }).BuildInput()
		_, err := s.commands.CreateBooking(s.ctx, builder.Alice, in, nil)
		s.assertErrIs(err, booking.ErrInvalidRoomType)
	})

	s.Run("failure: blank label", func() {
		in := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.CustomerLabel = " " }).BuildInput()
		_, err := s.commands.CreateBooking(s.ctx, builder.Alice, in, nil)
		s.assertErrIs(err, booking.ErrInvalidCustomerLabel)
	})

	s.Run("emits created event", func() {
		id := s.create(builder.Alice)
		events, err := s.store.ListEvents(s.ctx, id)
		s.Require().NoError(err)
		s.Require().Len(events, 1)
		s.Equal(booking.EventCreated, events[0].Type)
		s.Equal("Standard", events[0].Attributes["roomType"])
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Idempotency() {
	key := uuid.New()
	in := builder.NewBookingBuilder().BuildInput()

	first, err := s.commands.CreateBooking(s.ctx, builder.Alice, in, &key)
	s.Require().NoError(err)
	s.False(first.IsReplayed)

	s.Run("same key and payload replays", func() {
		again, err := s.commands.CreateBooking(s.ctx, builder.Alice, in, &key)
		s.Require().NoError(err)
		s.True(again.IsReplayed)
		s.Equal(first.BookingID, again.BookingID)
	})

	s.Run("same key with different payload is rejected", func() {
		other := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomType = 2 }).BuildInput()
		_, err := s.commands.CreateBooking(s.ctx, builder.Alice, other, &key)
		s.assertErrIs(err, errs.ErrIdempotencyKeyReused)
	})

	s.Run("keys are scoped per caller", func() {
		res, err := s.commands.CreateBooking(s.ctx, builder.Bob, in, &key)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.NotEqual(first.BookingID, res.BookingID)
	})

	s.Run("expired key creates a new booking", func() {
		s.clock.Add(shared.IdempotencyTTL)
		res, err := s.commands.CreateBooking(s.ctx, builder.Alice, in, &key)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
		s.NotEqual(first.BookingID, res.BookingID)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ConcurrentSameKey() {
	key := uuid.New()
	in := builder.NewBookingBuilder().BuildInput()

	const n = 8
	ids := make([]booking.ID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.commands.CreateBooking(s.ctx, builder.Alice, in, &key)
			if err == nil {
				ids[i] = res.BookingID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		s.Equal(ids[0], id)
	}
	s.NotZero(ids[0])
}

// ================================================================================
// ConfirmBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestConfirmBooking() {
	s.Run("success", func() {
		id := s.create(builder.Alice)
		s.clock.Add(time.Hour)

		s.Require().NoError(s.commands.ConfirmBooking(s.ctx, builder.Alice, id))

		b := s.load(id)
		s.Equal(booking.StatusConfirmed, b.Status())
		s.Equal(s.clock.Now(), *b.ConfirmedAt())
	})

	s.Run("failure: unknown id", func() {
		s.assertErrIs(s.commands.ConfirmBooking(s.ctx, builder.Alice, 999), booking.ErrNotFound)
	})

	s.Run("failure: caller is not the customer", func() {
		id := s.create(builder.Alice)
		s.assertErrIs(s.commands.ConfirmBooking(s.ctx, builder.Bob, id), booking.ErrNotCustomer)
		s.Equal(booking.StatusPending, s.load(id).Status())
	})

	s.Run("failure: already confirmed", func() {
		id := s.confirmed(builder.Alice)
		s.assertErrIs(s.commands.ConfirmBooking(s.ctx, builder.Alice, id), booking.ErrInvalidState)
	})

	s.Run("not-customer is checked before state", func() {
		id := s.confirmed(builder.Alice)
		s.assertErrIs(s.commands.ConfirmBooking(s.ctx, builder.Bob, id), booking.ErrNotCustomer)
	})
}

// ================================================================================
// PayForBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestPayForBooking() {
	s.Run("success: moves total into escrow", func() {
		id := s.confirmed(builder.Alice)
		s.fund(builder.Bob, builder.StandardTotal)
		s.clock.Add(time.Hour)

		s.Require().NoError(s.commands.PayForBooking(s.ctx, builder.Bob, id))

		b := s.load(id)
		s.Equal(booking.StatusPaid, b.Status())
		s.True(b.Payer().Equal(builder.Bob))
		s.True(b.AmountPaid().Equal(builder.StandardTotal))
		s.Equal(s.clock.Now(), *b.PaidAt())
		s.Equal("0", s.balance(builder.Bob))
		s.Equal(builder.StandardTotal.String(), s.balance(builder.Escrow))
	})

	s.Run("boundary: one second before the deadline succeeds", func() {
		s.clock.Set(builder.BaseTime)
		id := s.confirmed(builder.Alice)
		s.fund(builder.Alice, builder.StandardTotal)
		s.clock.Add(booking.PaymentWindow - time.Second)

		s.Require().NoError(s.commands.PayForBooking(s.ctx, builder.Alice, id))
	})

	s.Run("boundary: exactly at the deadline fails", func() {
		s.clock.Set(builder.BaseTime)
		id := s.confirmed(builder.Alice)
		s.fund(builder.Alice, builder.StandardTotal)
		s.clock.Add(booking.PaymentWindow)

		s.assertErrIs(s.commands.PayForBooking(s.ctx, builder.Alice, id), booking.ErrDeadlinePassed)
		s.Equal(booking.StatusConfirmed, s.load(id).Status())
	})

	s.Run("failure: pending booking", func() {
		id := s.create(builder.Alice)
		s.assertErrIs(s.commands.PayForBooking(s.ctx, builder.Alice, id), booking.ErrInvalidState)
	})

	s.Run("failure: unknown id", func() {
		s.assertErrIs(s.commands.PayForBooking(s.ctx, builder.Alice, 999), booking.ErrNotFound)
	})

	s.Run("failure: insufficient allowance leaves booking confirmed", func() {
		s.clock.Set(builder.BaseTime)
		id := s.confirmed(builder.Alice)
		s.Require().NoError(s.ledger.Mint(builder.Carol, builder.StandardTotal))

		err := s.commands.PayForBooking(s.ctx, builder.Carol, id)

		s.assertErrIs(err, booking.ErrPaymentTransferFailed)
		s.True(errs.Is(err, shared.ErrInsufficientAuthorization))
		b := s.load(id)
		s.Equal(booking.StatusConfirmed, b.Status())
		s.True(b.Payer().IsZero())
		s.Equal(builder.StandardTotal.String(), s.balance(builder.Carol))
	})

	s.Run("failure: already paid", func() {
		s.clock.Set(builder.BaseTime)
		id := s.paid(builder.Alice, builder.Alice)
		s.fund(builder.Bob, builder.StandardTotal)
		s.assertErrIs(s.commands.PayForBooking(s.ctx, builder.Bob, id), booking.ErrInvalidState)
		s.True(s.load(id).Payer().Equal(builder.Alice))
	})
}

func (s *BookingCommandsTestSuite) TestPayForBooking_UsesTaxSnapshot() {
	id := s.confirmed(builder.Alice)
	_, err := s.registry.SetTaxPercentage(s.ctx, builder.Owner, 50)
	s.Require().NoError(err)
	s.fund(builder.Alice, token.MustParseAmount("10000000000000000000"))

	s.Require().NoError(s.commands.PayForBooking(s.ctx, builder.Alice, id))

	s.True(s.load(id).AmountPaid().Equal(builder.StandardTotal))
}

func (s *BookingCommandsTestSuite) TestPayForBooking_ConcurrentPayers() {
	id := s.confirmed(builder.Alice)
	payers := []account.Account{builder.Alice, builder.Bob, builder.Carol}
	for _, p := range payers {
		s.fund(p, builder.StandardTotal)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for _, p := range payers {
		wg.Add(1)
		go func(p account.Account) {
			defer wg.Done()
			if err := s.commands.PayForBooking(s.ctx, p, id); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(p)
	}
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(builder.StandardTotal.String(), s.balance(builder.Escrow))
}

// ================================================================================
// CancelBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCancelBooking() {
	s.Run("confirmed booking before window elapses", func() {
		s.clock.Set(builder.BaseTime)
		id := s.confirmed(builder.Alice)
		s.clock.Add(booking.PaymentWindow - time.Second)
		s.assertErrIs(s.commands.CancelBooking(s.ctx, builder.Bob, id), booking.ErrInvalidState)
	})

	s.Run("confirmed booking at window end, by any caller", func() {
		s.clock.Set(builder.BaseTime)
		id := s.confirmed(builder.Alice)
		s.clock.Add(booking.PaymentWindow)

		s.Require().NoError(s.commands.CancelBooking(s.ctx, builder.Carol, id))

		b := s.load(id)
		s.Equal(booking.StatusCancelled, b.Status())
		s.Equal(s.clock.Now(), *b.CancelledAt())
	})

	s.Run("pending booking anchors on creation", func() {
		s.clock.Set(builder.BaseTime)
		id := s.create(builder.Alice)
		s.clock.Add(booking.PaymentWindow)
		s.Require().NoError(s.commands.CancelBooking(s.ctx, builder.Alice, id))
	})

	s.Run("paid booking cannot be cancelled", func() {
		s.clock.Set(builder.BaseTime)
		id := s.paid(builder.Alice, builder.Alice)
		s.clock.Add(30 * 24 * time.Hour)
		s.assertErrIs(s.commands.CancelBooking(s.ctx, builder.Alice, id), booking.ErrInvalidState)
	})

	s.Run("cancelled booking cannot be paid or cancelled again", func() {
		s.clock.Set(builder.BaseTime)
		id := s.confirmed(builder.Alice)
		s.clock.Add(booking.PaymentWindow)
		s.Require().NoError(s.commands.CancelBooking(s.ctx, builder.Alice, id))

		s.assertErrIs(s.commands.CancelBooking(s.ctx, builder.Alice, id), booking.ErrInvalidState)
		s.assertErrIs(s.commands.PayForBooking(s.ctx, builder.Alice, id), booking.ErrInvalidState)
	})

	s.Run("unknown id", func() {
		s.assertErrIs(s.commands.CancelBooking(s.ctx, builder.Alice, 999), booking.ErrNotFound)
	})
}

// ================================================================================
// Refund
// ================================================================================

func (s *BookingCommandsTestSuite) TestRefund() {
	s.Run("success after window with refundable flag", func() {
		s.clock.Set(builder.BaseTime)
		id := s.paid(builder.Alice, builder.Bob)
		_, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Owner, id)
		s.Require().NoError(err)
		s.clock.Add(booking.RefundWindow)

		s.Require().NoError(s.commands.Refund(s.ctx, builder.Bob, id))

		s.Equal(booking.StatusRefunded, s.load(id).Status())
		s.Equal(builder.StandardTotal.String(), s.balance(builder.Bob))
		s.Equal("0", s.balance(builder.Escrow))
	})

	s.Run("check order", func() {
		s.clock.Set(builder.BaseTime)
		confirmedID := s.confirmed(builder.Alice)
		s.assertErrIs(s.commands.Refund(s.ctx, builder.Alice, confirmedID), booking.ErrInvalidState)

		id := s.paid(builder.Alice, builder.Bob)
		s.assertErrIs(s.commands.Refund(s.ctx, builder.Alice, id), booking.ErrNotPayer)
		s.assertErrIs(s.commands.Refund(s.ctx, builder.Bob, id), booking.ErrNotRefundable)

		_, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Owner, id)
		s.Require().NoError(err)
		s.clock.Add(booking.RefundWindow - time.Second)
		s.assertErrIs(s.commands.Refund(s.ctx, builder.Bob, id), booking.ErrRefundWindowNotElapsed)

		s.assertErrIs(s.commands.Refund(s.ctx, builder.Bob, 999), booking.ErrNotFound)
	})

	s.Run("ledger failure keeps booking paid", func() {
		s.clock.Set(builder.BaseTime)
		id := s.paid(builder.Alice, builder.Bob)
		_, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Owner, id)
		s.Require().NoError(err)
		s.clock.Add(booking.RefundWindow)
		// drain escrow so the refund transfer fails
		escrowBalance, err := s.ledger.BalanceOf(s.ctx, builder.Escrow)
		s.Require().NoError(err)
		s.Require().NoError(s.ledger.Transfer(s.ctx, builder.Escrow, builder.Carol, escrowBalance))

		err = s.commands.Refund(s.ctx, builder.Bob, id)

		s.assertErrIs(err, booking.ErrRefundTransferFailed)
		s.Equal(booking.StatusPaid, s.load(id).Status())
	})

	s.Run("refunded booking cannot be refunded twice", func() {
		s.clock.Set(builder.BaseTime)
		id := s.paid(builder.Alice, builder.Bob)
		_, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Owner, id)
		s.Require().NoError(err)
		s.clock.Add(booking.RefundWindow)
		s.Require().NoError(s.commands.Refund(s.ctx, builder.Bob, id))

		s.assertErrIs(s.commands.Refund(s.ctx, builder.Bob, id), booking.ErrInvalidState)
	})
}

// ================================================================================
// ModifyRefundableStatus
// ================================================================================

func (s *BookingCommandsTestSuite) TestModifyRefundableStatus() {
	id := s.create(builder.Alice)

	s.Run("owner toggles", func() {
		on, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Owner, id)
		s.Require().NoError(err)
		s.True(on)
		s.True(s.load(id).Refundable())

		off, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Owner, id)
		s.Require().NoError(err)
		s.False(off)
	})

	s.Run("non-owner rejected before lookup", func() {
		_, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Alice, 999)
		s.assertErrIs(err, booking.ErrNotOwner)
	})

	s.Run("unknown id", func() {
		_, err := s.commands.ModifyRefundableStatus(s.ctx, builder.Owner, 999)
		s.assertErrIs(err, booking.ErrNotFound)
	})
}

// ================================================================================
// Scenarios
// ================================================================================

func (s *BookingCommandsTestSuite) TestScenario_PayWithinWindow() {
	id := s.create(builder.Alice)
	s.Require().NoError(s.commands.ConfirmBooking(s.ctx, builder.Alice, id))
	s.fund(builder.Bob, builder.StandardTotal)
	s.clock.Add(12 * time.Hour)

	s.Require().NoError(s.commands.PayForBooking(s.ctx, builder.Bob, id))

	b := s.load(id)
	s.Equal(booking.StatusPaid, b.Status())
	s.True(b.Payer().Equal(builder.Bob))
}

func (s *BookingCommandsTestSuite) TestScenario_PayAfterWindow() {
	id := s.create(builder.Alice)
	s.Require().NoError(s.commands.ConfirmBooking(s.ctx, builder.Alice, id))
	s.fund(builder.Bob, builder.StandardTotal)
	s.clock.Add(booking.PaymentWindow + time.Second)

	s.assertErrIs(s.commands.PayForBooking(s.ctx, builder.Bob, id), booking.ErrDeadlinePassed)
	s.Equal(builder.StandardTotal.String(), s.balance(builder.Bob))
}
