//go:build unit || e2e

package builder

import (
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	reqdto "booking-registry/internal/handler/dto/request"
	"booking-registry/internal/usecase/commands"
	"booking-registry/internal/usecase/queries"
)

// Prices and tax of config.NewTestConfig.
var (
	StandardPrice = token.MustParseAmount("500000000000000000")
	DeluxePrice   = token.MustParseAmount("600000000000000000")
	SuitePrice    = token.MustParseAmount("700000000000000000")
	// StandardTotal is StandardPrice plus 10% tax.
	StandardTotal = token.MustParseAmount("550000000000000000")
)

const TestTaxPercentage = 10

var BaseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestRoomPrices() booking.RoomPrices {
	return booking.RoomPrices{Standard: StandardPrice, Deluxe: DeluxePrice, Suite: SuitePrice}
}

func TestSettings(now time.Time) booking.Settings {
	tax, _ := booking.NewTaxPercentage(TestTaxPercentage)
	return booking.NewSettings(tax, TestRoomPrices(), now)
}

type BookingBuilder struct {
	Customer      account.Account
	CustomerLabel string
	ScheduledDate time.Time
	RoomType      int
	Settings      booking.Settings
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Customer:      Alice,
		CustomerLabel: "Alice",
		ScheduledDate: BaseTime.AddDate(0, 1, 0),
		RoomType:      int(booking.RoomStandard),
		Settings:      TestSettings(BaseTime),
		Now:           BaseTime,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	rt, err := booking.NewRoomType(b.RoomType)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.Customer, b.CustomerLabel, b.ScheduledDate, rt, b.Settings, b.Now)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

// BuildStored returns a booking that already carries id.
func (b *BookingBuilder) BuildStored(id booking.ID) *booking.Booking {
	bk := b.MustBuildDomain()
	if err := bk.AssignID(id); err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		CustomerLabel: b.CustomerLabel,
		ScheduledDate: b.ScheduledDate,
		RoomType:      b.RoomType,
	}
}

func (b *BookingBuilder) BuildRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerLabel: b.CustomerLabel,
		ScheduledDate: b.ScheduledDate,
		RoomType:      &b.RoomType,
	}
}

// BuildView returns the read model of a stored booking with id.
func (b *BookingBuilder) BuildView(id booking.ID) *queries.BookingView {
	v, err := queries.NewBookingView(b.BuildStored(id))
	if err != nil {
		panic(err)
	}
	return v
}
