package request

import (
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
)

type SetTaxPercentageRequest struct {
	TaxPercentage *int `json:"taxPercentage" binding:"required"`
}

// Prices are decimal strings in the token's smallest unit.
type SetRoomPricesRequest struct {
	Standard string `json:"standard" binding:"required,numeric"`
	Deluxe   string `json:"deluxe" binding:"required,numeric"`
	Suite    string `json:"suite" binding:"required,numeric"`
}

func (r SetRoomPricesRequest) ToDomain() (booking.RoomPrices, error) {
	standard, err := token.ParseAmount(r.Standard)
	if err != nil {
		return booking.RoomPrices{}, err
	}
	deluxe, err := token.ParseAmount(r.Deluxe)
	if err != nil {
		return booking.RoomPrices{}, err
	}
	suite, err := token.ParseAmount(r.Suite)
	if err != nil {
		return booking.RoomPrices{}, err
	}
	return booking.RoomPrices{Standard: standard, Deluxe: deluxe, Suite: suite}, nil
}

type TotalAmountQuery struct {
	BaseAmount    string `form:"baseAmount" binding:"required,numeric"`
	TaxPercentage *int   `form:"taxPercentage" binding:"required"`
}
