//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/pkg/errs"
	"booking-registry/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.ID(0), actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, actual.Customer().Equal(builder.Alice))
		assert.Equal(t, "Alice", actual.CustomerLabel().String())
		assert.True(t, actual.BaseAmount().Equal(builder.StandardPrice))
		assert.Equal(t, builder.TestTaxPercentage, actual.TaxPercentage().Int())
		assert.False(t, actual.Refundable())
		assert.True(t, actual.Payer().IsZero())
		assert.True(t, actual.AmountPaid().IsZero())
		assert.Nil(t, actual.ConfirmedAt())
		assert.Equal(t, builder.BaseTime, actual.CreatedAt())

		total, err := actual.TotalAmount()
		require.NoError(t, err)
		assert.True(t, total.Equal(builder.StandardTotal), "got %s", total)
	})

	t.Run("room type selects base price", func(t *testing.T) {
		for rt, want := range map[int]string{0: "500000000000000000", 1: "600000000000000000", 2: "700000000000000000"} {
			actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomType = rt }).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, want, actual.BaseAmount().String())
		}
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "room type above range",
				mutate: func(b *builder.BookingBuilder) { b.RoomType = 3 },
				errIs:  booking.ErrInvalidRoomType,
			},
			{
				name:   "room type wraps as uint8",
				mutate: func(b *builder.BookingBuilder) { b.RoomType = 256 },
				errIs:  booking.ErrInvalidRoomType,
			},
			{
				name:   "negative room type",
				mutate: func(b *builder.BookingBuilder) { b.RoomType = -1 },
				errIs:  booking.ErrInvalidRoomType,
			},
			{
				name:   "blank label",
				mutate: func(b *builder.BookingBuilder) { b.CustomerLabel = "   " },
				errIs:  booking.ErrInvalidCustomerLabel,
			},
			{
				name:   "label at maximum length",
				mutate: withLabel(strings.Repeat("a", booking.MaxCustomerLabelLength)),
			},
			{
				name:   "label too long",
				mutate: withLabel(strings.Repeat("a", booking.MaxCustomerLabelLength+1)),
				errIs:  booking.ErrInvalidCustomerLabel,
			},
			{
				name:   "zero customer",
				mutate: func(b *builder.BookingBuilder) { b.Customer = account.Account{} },
				errIs:  booking.ErrInvalidCustomer,
			},
		})
	})
}

func withLabel(label string) func(*builder.BookingBuilder) {
	return func(b *builder.BookingBuilder) { b.CustomerLabel = label }
}

func TestBooking_Lifecycle(t *testing.T) {
	created := builder.BaseTime

	t.Run("confirm", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)

		assert.True(t, errs.Is(b.Confirm(builder.Bob, created), booking.ErrNotCustomer))
		require.NoError(t, b.Confirm(builder.Alice, created.Add(time.Minute)))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		deadline, ok := b.PaymentDeadline()
		require.True(t, ok)
		assert.Equal(t, created.Add(time.Minute).Add(booking.PaymentWindow), deadline)

		assert.True(t, errs.Is(b.Confirm(builder.Alice, created), booking.ErrInvalidState))
	})

	t.Run("payment deadline is exclusive", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		require.NoError(t, b.Confirm(builder.Alice, created))

		_, err := b.PreparePayment(created.Add(booking.PaymentWindow))
		assert.True(t, errs.Is(err, booking.ErrDeadlinePassed))

		total, err := b.PreparePayment(created.Add(booking.PaymentWindow - time.Second))
		require.NoError(t, err)
		assert.True(t, total.Equal(builder.StandardTotal))
	})

	t.Run("pending booking cannot be paid", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		_, err := b.PreparePayment(created)
		assert.True(t, errs.Is(err, booking.ErrInvalidState))
	})

	t.Run("pay then refund", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		require.NoError(t, b.Confirm(builder.Alice, created))
		paidAt := created.Add(time.Hour)
		require.NoError(t, b.MarkPaid(builder.Bob, builder.StandardTotal, paidAt))
		assert.Equal(t, booking.StatusPaid, b.Status())
		assert.True(t, b.Payer().Equal(builder.Bob))

		_, err := b.PrepareRefund(builder.Bob, paidAt.Add(booking.RefundWindow))
		assert.True(t, errs.Is(err, booking.ErrNotRefundable))

		assert.True(t, b.ToggleRefundable(paidAt))

		_, err = b.PrepareRefund(builder.Alice, paidAt.Add(booking.RefundWindow))
		assert.True(t, errs.Is(err, booking.ErrNotPayer))

		_, err = b.PrepareRefund(builder.Bob, paidAt.Add(booking.RefundWindow-time.Second))
		assert.True(t, errs.Is(err, booking.ErrRefundWindowNotElapsed))

		amount, err := b.PrepareRefund(builder.Bob, paidAt.Add(booking.RefundWindow))
		require.NoError(t, err)
		assert.True(t, amount.Equal(builder.StandardTotal))

		require.NoError(t, b.MarkRefunded(paidAt.Add(booking.RefundWindow)))
		assert.Equal(t, booking.StatusRefunded, b.Status())
		assert.True(t, b.Status().IsTerminal())
		assert.True(t, b.Refundable())
	})

	t.Run("cancel after payment window", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		require.NoError(t, b.Confirm(builder.Alice, created))

		assert.True(t, errs.Is(b.Cancel(created.Add(booking.PaymentWindow-time.Second)), booking.ErrInvalidState))
		require.NoError(t, b.Cancel(created.Add(booking.PaymentWindow)))
		assert.Equal(t, booking.StatusCancelled, b.Status())

		_, err := b.PreparePayment(created)
		assert.True(t, errs.Is(err, booking.ErrInvalidState))
	})

	t.Run("pay and cancel windows meet at the deadline", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		require.NoError(t, b.Confirm(builder.Alice, created))
		deadline, ok := b.PaymentDeadline()
		require.True(t, ok)
		assert.Equal(t, deadline, b.CancellableAt())

		_, err := b.PreparePayment(deadline.Add(-time.Nanosecond))
		require.NoError(t, err)
		assert.True(t, errs.Is(b.Cancel(deadline.Add(-time.Nanosecond)), booking.ErrInvalidState))

		_, err = b.PreparePayment(deadline)
		assert.True(t, errs.Is(err, booking.ErrDeadlinePassed))
		require.NoError(t, b.Cancel(deadline))
	})

	t.Run("pending booking cancels from creation anchor", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		assert.Equal(t, created.Add(booking.PaymentWindow), b.CancellableAt())
		require.NoError(t, b.Cancel(created.Add(booking.PaymentWindow)))
	})

	t.Run("paid booking cannot be cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		require.NoError(t, b.Confirm(builder.Alice, created))
		require.NoError(t, b.MarkPaid(builder.Alice, builder.StandardTotal, created))
		assert.True(t, errs.Is(b.Cancel(created.Add(30*24*time.Hour)), booking.ErrInvalidState))
	})

	t.Run("toggle flips", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(1)
		assert.True(t, b.ToggleRefundable(created))
		assert.False(t, b.ToggleRefundable(created))
	})

	t.Run("id assigned once", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored(7)
		assert.Equal(t, booking.ID(7), b.ID())
		assert.True(t, errs.Is(b.AssignID(8), booking.ErrIDAlreadyAssigned))
	})
}

func TestStatus_Transitions(t *testing.T) {
	assert.True(t, booking.StatusPending.CanTransitionTo(booking.StatusConfirmed))
	assert.True(t, booking.StatusPending.CanTransitionTo(booking.StatusCancelled))
	assert.False(t, booking.StatusPending.CanTransitionTo(booking.StatusPaid))
	assert.True(t, booking.StatusConfirmed.CanTransitionTo(booking.StatusPaid))
	assert.False(t, booking.StatusPaid.CanTransitionTo(booking.StatusCancelled))
	assert.True(t, booking.StatusCancelled.IsTerminal())
	assert.False(t, booking.Status("archived").IsValid())
}

func TestParseID(t *testing.T) {
	id, err := booking.ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, booking.ID(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		_, err := booking.ParseID(raw)
		assert.True(t, errs.Is(err, booking.ErrNotFound), raw)
	}
}
