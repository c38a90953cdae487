package request

import (
	"time"

	"booking-registry/internal/usecase/commands"
)

type CreateBookingRequest struct {
	CustomerLabel string    `json:"customerLabel" binding:"required,max=128"`
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	// pointer so that Standard (0) passes the required check
	RoomType *int `json:"roomType" binding:"required"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		CustomerLabel: r.CustomerLabel,
		ScheduledDate: r.ScheduledDate,
		RoomType:      *r.RoomType,
	}
}
