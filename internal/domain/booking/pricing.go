package booking

import (
	"time"

	"booking-registry/internal/domain/token"
)

const (
	PaymentWindow = 24 * time.Hour
	RefundWindow  = 7 * 24 * time.Hour
)

type RoomPrices struct {
	Standard token.Amount
	Deluxe   token.Amount
	Suite    token.Amount
}

func (p RoomPrices) PriceFor(rt RoomType) (token.Amount, error) {
	switch rt {
	case RoomStandard:
		return p.Standard, nil
	case RoomDeluxe:
		return p.Deluxe, nil
	case RoomSuite:
		return p.Suite, nil
	default:
		return token.Amount{}, ErrInvalidRoomType
	}
}

// CalculateTotalAmount returns base + base*pct/100 in the token's smallest unit, truncating the remainder.
func CalculateTotalAmount(base token.Amount, pct TaxPercentage) (token.Amount, error) {
	return TotalForRate(base, uint64(pct.Value()))
}

// TotalForRate is CalculateTotalAmount for any non-negative rate. The stored tax
// percentage is capped; a quoted rate is not.
func TotalForRate(base token.Amount, pct uint64) (token.Amount, error) {
	tax, err := base.MulDiv(pct, 100)
	if err != nil {
		return token.Amount{}, err
	}
	return base.Add(tax)
}

// Settings is the registry-wide pricing configuration. Values are immutable; changes produce a new version.
type Settings struct {
	taxPercentage TaxPercentage
	roomPrices    RoomPrices
	version       int64
	updatedAt     time.Time
}

func NewSettings(tax TaxPercentage, prices RoomPrices, now time.Time) Settings {
	return Settings{
		taxPercentage: tax,
		roomPrices:    prices,
		version:       1,
		updatedAt:     now,
	}
}

func ReconstructSettings(tax TaxPercentage, prices RoomPrices, version int64, updatedAt time.Time) Settings {
	return Settings{
		taxPercentage: tax,
		roomPrices:    prices,
		version:       version,
		updatedAt:     updatedAt,
	}
}

func (s Settings) TaxPercentage() TaxPercentage { return s.taxPercentage }
func (s Settings) RoomPrices() RoomPrices       { return s.roomPrices }
func (s Settings) Version() int64               { return s.version }
func (s Settings) UpdatedAt() time.Time         { return s.updatedAt }

func (s Settings) WithTaxPercentage(tax TaxPercentage, now time.Time) Settings {
	s.taxPercentage = tax
	s.version++
	s.updatedAt = now
	return s
}

func (s Settings) WithRoomPrices(prices RoomPrices, now time.Time) Settings {
	s.roomPrices = prices
	s.version++
	s.updatedAt = now
	return s
}
