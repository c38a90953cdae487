package response

import (
	"time"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/usecase/queries"
)

type CreateBookingResponse struct {
	ID       int64 `json:"id"`
	Replayed bool  `json:"replayed"`
}

type BookingResponse struct {
	ID              int64      `json:"id"`
	Customer        string     `json:"customer"`
	CustomerLabel   string     `json:"customerLabel"`
	BaseAmount      string     `json:"baseAmount"`
	TaxPercentage   int        `json:"taxPercentage"`
	TotalAmount     string     `json:"totalAmount"`
	AmountPaid      string     `json:"amountPaid"`
	ScheduledDate   time.Time  `json:"scheduledDate"`
	RoomType        string     `json:"roomType"`
	Status          string     `json:"status"`
	Payer           string     `json:"payer,omitempty"`
	Refundable      bool       `json:"refundable"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`
	RefundedAt      *time.Time `json:"refundedAt,omitempty"`
	PaymentDeadline *time.Time `json:"paymentDeadline,omitempty"`
	CancellableAt   time.Time  `json:"cancellableAt"`
	RefundableAt    *time.Time `json:"refundableAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type BookingCoreResponse struct {
	ID            int64     `json:"id"`
	CustomerLabel string    `json:"customerLabel"`
	BaseAmount    string    `json:"baseAmount"`
	TaxPercentage int       `json:"taxPercentage"`
	TotalAmount   string    `json:"totalAmount"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

type BookingDetailsResponse struct {
	ID              int64      `json:"id"`
	RoomType        string     `json:"roomType"`
	Status          string     `json:"status"`
	Payer           string     `json:"payer,omitempty"`
	Refundable      bool       `json:"refundable"`
	ConfirmedAt     *time.Time `json:"confirmedAt,omitempty"`
	PaidAt          *time.Time `json:"paidAt,omitempty"`
	PaymentDeadline *time.Time `json:"paymentDeadline,omitempty"`
	RefundableAt    *time.Time `json:"refundableAt,omitempty"`
}

type EventResponse struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	BookingID  int64             `json:"bookingId"`
	Actor      string            `json:"actor"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

type RefundableResponse struct {
	ID         int64 `json:"id"`
	Refundable bool  `json:"refundable"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingCoreView(v *queries.BookingCoreView) (*BookingCoreResponse, error) {
	var res BookingCoreResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingDetailsView(v *queries.BookingDetailsView) (*BookingDetailsResponse, error) {
	var res BookingDetailsResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	res := make([]*EventResponse, len(views))
	for i, v := range views {
		res[i] = &EventResponse{
			ID:         v.ID.String(),
			Type:       v.Type,
			BookingID:  int64(v.BookingID),
			Actor:      v.Actor.String(),
			Attributes: v.Attributes,
			OccurredAt: v.OccurredAt,
		}
	}
	return res
}

func NewCreateBookingResponse(id booking.ID, replayed bool) CreateBookingResponse {
	return CreateBookingResponse{ID: int64(id), Replayed: replayed}
}
