//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/infra"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/usecase/queries"
	"booking-registry/internal/usecase/shared"
	"booking-registry/tests/common/builder"
	queriesmock "booking-registry/tests/mock/queries"
	sharedmock "booking-registry/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	q := queries.NewBookingQueries(store)
	ctx := context.Background()

	confirmedAt := builder.BaseTime.Add(time.Hour)
	stored := booking.ReconstructBooking(booking.ReconstructParams{
		ID:            12,
		Customer:      builder.Alice,
		CustomerLabel: "Alice",
		BaseAmount:    builder.StandardPrice,
		TaxPercentage: builder.TestTaxPercentage,
		ScheduledDate: builder.BaseTime.AddDate(0, 1, 0),
		RoomType:      booking.RoomStandard,
		Status:        booking.StatusConfirmed,
		ConfirmedAt:   &confirmedAt,
		CreatedAt:     builder.BaseTime,
		UpdatedAt:     confirmedAt,
	})

	t.Run("derives total and deadlines", func(t *testing.T) {
		store.EXPECT().FindByID(ctx, booking.ID(12)).Return(stored, nil)

		got, err := q.GetByID(ctx, 12)
		require.NoError(t, err)

		deadline := confirmedAt.Add(booking.PaymentWindow)
		want := &queries.BookingView{
			ID:              12,
			Customer:        builder.Alice,
			CustomerLabel:   "Alice",
			BaseAmount:      builder.StandardPrice,
			TaxPercentage:   builder.TestTaxPercentage,
			TotalAmount:     builder.StandardTotal,
			ScheduledDate:   builder.BaseTime.AddDate(0, 1, 0),
			RoomType:        booking.RoomStandard,
			Status:          booking.StatusConfirmed,
			ConfirmedAt:     &confirmedAt,
			PaymentDeadline: &deadline,
			CancellableAt:   deadline,
			CreatedAt:       builder.BaseTime,
			UpdatedAt:       confirmedAt,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("BookingView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("facets share the view", func(t *testing.T) {
		store.EXPECT().FindByID(ctx, booking.ID(12)).Return(stored, nil).Times(2)

		core, err := q.GetCore(ctx, 12)
		require.NoError(t, err)
		assert.True(t, core.TotalAmount.Equal(builder.StandardTotal))

		details, err := q.GetDetails(ctx, 12)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, details.Status)
		assert.Nil(t, details.RefundableAt)
	})

	t.Run("missing booking maps to not found", func(t *testing.T) {
		store.EXPECT().FindByID(ctx, booking.ID(99)).Return(nil, infra.NotFound("booking 99"))

		_, err := q.GetByID(ctx, 99)
		assert.True(t, errs.Is(err, booking.ErrNotFound))
	})

	t.Run("storage failure is passed through", func(t *testing.T) {
		boom := errors.New("connection reset")
		store.EXPECT().FindByID(ctx, booking.ID(5)).Return(nil, boom)

		_, err := q.GetByID(ctx, 5)
		assert.ErrorIs(t, err, boom)
		assert.False(t, errs.Is(err, booking.ErrNotFound))
	})
}

func TestBookingQueries_ListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	q := queries.NewBookingQueries(store)
	ctx := context.Background()

	stored := builder.NewBookingBuilder().BuildStored(3)
	created := booking.NewCreatedEvent(stored, builder.BaseTime)

	t.Run("returns events in stored order", func(t *testing.T) {
		gomock.InOrder(
			store.EXPECT().FindByID(ctx, booking.ID(3)).Return(stored, nil),
			store.EXPECT().ListEvents(ctx, booking.ID(3)).Return([]booking.Event{created}, nil),
		)

		got, err := q.ListEvents(ctx, 3)
		require.NoError(t, err)
		want := []*queries.EventView{queries.NewEventView(created)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("events mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown booking is not found rather than empty", func(t *testing.T) {
		store.EXPECT().FindByID(ctx, booking.ID(4)).Return(nil, infra.NotFound("booking 4"))

		_, err := q.ListEvents(ctx, 4)
		assert.True(t, errs.Is(err, booking.ErrNotFound))
	})
}

func TestRegistryQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockRegistryReadStore(ctrl)
	q := queries.NewRegistryQueries(store, builder.Owner, builder.Escrow)
	ctx := context.Background()
	settings := builder.TestSettings(builder.BaseTime)

	t.Run("settings view names the principals", func(t *testing.T) {
		store.EXPECT().GetSettings(ctx).Return(settings, nil)

		got, err := q.GetSettings(ctx)
		require.NoError(t, err)
		want := &queries.SettingsView{
			Owner:         builder.Owner,
			EscrowAccount: builder.Escrow,
			TaxPercentage: builder.TestTaxPercentage,
			RoomPrices:    queries.NewRoomPricesView(builder.TestRoomPrices()),
			Version:       settings.Version(),
			UpdatedAt:     builder.BaseTime,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("SettingsView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("tax and prices", func(t *testing.T) {
		store.EXPECT().GetSettings(ctx).Return(settings, nil).Times(2)

		pct, err := q.GetTaxPercentage(ctx)
		require.NoError(t, err)
		assert.Equal(t, builder.TestTaxPercentage, pct)

		prices, err := q.GetRoomPrices(ctx)
		require.NoError(t, err)
		assert.True(t, prices.Deluxe.Equal(builder.DeluxePrice))
	})

	t.Run("total amount", func(t *testing.T) {
		tests := []struct {
			name  string
			base  token.Amount
			pct   int
			want  token.Amount
			errIs error
		}{
			{name: "ten percent", base: builder.StandardPrice, pct: 10, want: builder.StandardTotal},
			{name: "zero tax", base: token.NewAmount(999), pct: 0, want: token.NewAmount(999)},
			{name: "truncates", base: token.NewAmount(99), pct: 5, want: token.NewAmount(103)},
			{name: "rate above 100 is quoted", base: token.NewAmount(100), pct: 250, want: token.NewAmount(350)},
			{name: "negative rate", base: token.NewAmount(1), pct: -1, errIs: booking.ErrInvalidTaxPercentage},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := q.CalculateTotalAmount(tt.base, tt.pct)
				if tt.errIs != nil {
					assert.True(t, errs.Is(err, tt.errIs))
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want.String(), got.String())
			})
		}
	})
}

func TestLedgerQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := sharedmock.NewMockTokenLedger(ctrl)
	q := queries.NewLedgerQueries(l, builder.Escrow)
	ctx := context.Background()

	t.Run("allowance is read against the escrow account", func(t *testing.T) {
		l.EXPECT().Allowance(ctx, builder.Bob, builder.Escrow).Return(token.NewAmount(7), nil)

		got, err := q.EscrowAllowance(ctx, builder.Bob)
		require.NoError(t, err)
		want := &queries.AllowanceView{Owner: builder.Bob, Spender: builder.Escrow, Allowance: token.NewAmount(7)}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("AllowanceView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unreachable ledger", func(t *testing.T) {
		l.EXPECT().BalanceOf(ctx, builder.Bob).Return(token.Amount{}, errs.Wrap(shared.ErrLedgerUnavailable, "timeout"))

		_, err := q.Balance(ctx, builder.Bob)
		assert.True(t, errs.Is(err, shared.ErrLedgerUnavailable))
	})
}
