//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/handler/httperr"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", booking.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errs.Wrapf(booking.ErrNotFound, "booking %d", 9), http.StatusNotFound},
		{"not customer", booking.ErrNotCustomer, http.StatusForbidden},
		{"not owner", booking.ErrNotOwner, http.StatusForbidden},
		{"not payer", booking.ErrNotPayer, http.StatusForbidden},
		{"payment rejected", errs.Mark(shared.ErrInsufficientFunds, booking.ErrPaymentTransferFailed), http.StatusPaymentRequired},
		{"payment with ledger down", errs.Mark(shared.ErrLedgerUnavailable, booking.ErrPaymentTransferFailed), http.StatusServiceUnavailable},
		{"invalid state", booking.ErrInvalidState, http.StatusConflict},
		{"deadline passed", booking.ErrDeadlinePassed, http.StatusConflict},
		{"refund window", booking.ErrRefundWindowNotElapsed, http.StatusConflict},
		{"not refundable", booking.ErrNotRefundable, http.StatusConflict},
		{"refund transfer", booking.ErrRefundTransferFailed, http.StatusConflict},
		{"key reused", errs.ErrIdempotencyKeyReused, http.StatusConflict},
		{"key in progress", errs.ErrIdempotencyInProgress, http.StatusConflict},
		{"room type", booking.ErrInvalidRoomType, http.StatusBadRequest},
		{"tax", booking.ErrInvalidTaxPercentage, http.StatusBadRequest},
		{"label", booking.ErrInvalidCustomerLabel, http.StatusBadRequest},
		{"account", account.ErrInvalidAccount, http.StatusBadRequest},
		{"amount", token.ErrInvalidAmount, http.StatusBadRequest},
		{"overflow", token.ErrAmountOverflow, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := httperr.StatusFor(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, msg)
		})
	}
}
