package booking

import "booking-registry/internal/pkg/errs"

var (
	ErrNotFound               = errs.New("booking not found")
	ErrInvalidState           = errs.New("operation not allowed in current booking status")
	ErrNotCustomer            = errs.New("not customer")
	ErrNotOwner               = errs.New("not owner")
	ErrNotPayer               = errs.New("not payer")
	ErrInvalidRoomType        = errs.New("invalid room type")
	ErrDeadlinePassed         = errs.New("deadline passed")
	ErrRefundWindowNotElapsed = errs.New("refund window not elapsed")
	ErrNotRefundable          = errs.New("not refundable")
	ErrPaymentTransferFailed  = errs.New("payment transfer failed")
	ErrRefundTransferFailed   = errs.New("refund transfer failed")

	ErrInvalidTaxPercentage = errs.New("tax percentage out of range")
	ErrInvalidCustomerLabel = errs.New("invalid customer label")
	ErrInvalidCustomer      = errs.New("customer account required")
	ErrIDAlreadyAssigned    = errs.New("booking id already assigned")
)
