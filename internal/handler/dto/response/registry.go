package response

import (
	"time"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/usecase/queries"
)

type RoomPricesResponse struct {
	Standard string `json:"standard"`
	Deluxe   string `json:"deluxe"`
	Suite    string `json:"suite"`
}

type TaxPercentageResponse struct {
	TaxPercentage int `json:"taxPercentage"`
}

type SettingsResponse struct {
	Owner         string             `json:"owner"`
	EscrowAccount string             `json:"escrowAccount"`
	TaxPercentage int                `json:"taxPercentage"`
	RoomPrices    RoomPricesResponse `json:"roomPrices"`
	Version       int64              `json:"version"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

type TotalAmountResponse struct {
	BaseAmount    string `json:"baseAmount"`
	TaxPercentage int    `json:"taxPercentage"`
	TotalAmount   string `json:"totalAmount"`
}

func FromRoomPricesView(v *queries.RoomPricesView) (*RoomPricesResponse, error) {
	var res RoomPricesResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRoomPrices(p booking.RoomPrices) (*RoomPricesResponse, error) {
	v := queries.NewRoomPricesView(p)
	return FromRoomPricesView(&v)
}

func FromSettingsView(v *queries.SettingsView) (*SettingsResponse, error) {
	prices, err := FromRoomPricesView(&v.RoomPrices)
	if err != nil {
		return nil, err
	}
	return &SettingsResponse{
		Owner:         v.Owner.String(),
		EscrowAccount: v.EscrowAccount.String(),
		TaxPercentage: v.TaxPercentage,
		RoomPrices:    *prices,
		Version:       v.Version,
		UpdatedAt:     v.UpdatedAt,
	}, nil
}
