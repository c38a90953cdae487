package response

import (
	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"

	"github.com/jinzhu/copier"
)

// copyOption renders domain value types as their wire strings.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: token.Amount{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(token.Amount).String(), nil
			},
		},
		{
			SrcType: account.Account{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				a := src.(account.Account)
				if a.IsZero() {
					return "", nil
				}
				return a.String(), nil
			},
		},
		{
			SrcType: booking.RoomType(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(booking.RoomType).String(), nil
			},
		},
		{
			SrcType: booking.Status(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return string(src.(booking.Status)), nil
			},
		},
		{
			SrcType: booking.ID(0),
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return int64(src.(booking.ID)), nil
			},
		},
	},
}

func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copyOption)
}
