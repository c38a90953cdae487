package httperr

import (
	"net/http"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target  error
	status  int
	message string
}

// Order matters: a failed payment caused by an unreachable ledger carries both marks.
var mappings = []mapping{
	{booking.ErrNotFound, http.StatusNotFound, "Booking not found"},

	{booking.ErrNotCustomer, http.StatusForbidden, "Caller is not the customer"},
	{booking.ErrNotOwner, http.StatusForbidden, "Caller is not the owner"},
	{booking.ErrNotPayer, http.StatusForbidden, "Caller is not the payer"},

	{shared.ErrLedgerUnavailable, http.StatusServiceUnavailable, "Token ledger unavailable"},
	{booking.ErrPaymentTransferFailed, http.StatusPaymentRequired, "Payment transfer failed"},

	{booking.ErrInvalidState, http.StatusConflict, "Operation not allowed in current status"},
	{booking.ErrDeadlinePassed, http.StatusConflict, "Payment deadline passed"},
	{booking.ErrRefundWindowNotElapsed, http.StatusConflict, "Refund window not elapsed"},
	{booking.ErrNotRefundable, http.StatusConflict, "Booking is not refundable"},
	{booking.ErrRefundTransferFailed, http.StatusConflict, "Refund transfer failed"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "Idempotency key reused with a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request with this idempotency key is in progress"},

	{booking.ErrInvalidRoomType, http.StatusBadRequest, "Invalid room type"},
	{booking.ErrInvalidTaxPercentage, http.StatusBadRequest, "Tax percentage must be between 0 and 100"},
	{booking.ErrInvalidCustomerLabel, http.StatusBadRequest, "Invalid customer label"},
	{account.ErrInvalidAccount, http.StatusBadRequest, "Invalid account"},
	{token.ErrInvalidAmount, http.StatusBadRequest, "Invalid amount"},
	{token.ErrAmountOverflow, http.StatusBadRequest, "Amount out of range"},
}

// StatusFor maps a use case error onto an HTTP status and a public message.
func StatusFor(err error) (int, string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal error"
}

// Abort responds with the status StatusFor assigns to err.
func Abort(c *gin.Context, err error) {
	status, msg := StatusFor(err)
	AbortWithError(c, status, err, msg, nil)
}
