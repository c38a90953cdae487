package token

import (
	"encoding/json"
	"math/big"
	"strings"

	"booking-registry/internal/pkg/errs"

	"github.com/holiman/uint256"
)

var (
	ErrInvalidAmount   = errs.New("invalid token amount")
	ErrAmountOverflow  = errs.New("token amount overflow")
	ErrAmountUnderflow = errs.New("token amount underflow")
)

// Amount is a non-negative quantity of the ledger token in its smallest unit.
type Amount struct {
	v uint256.Int
}

func Zero() Amount { return Amount{} }

func NewAmount(u uint64) Amount {
	var a Amount
	a.v.SetUint64(u)
	return a
}

// ParseAmount reads a base-10 integer string.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, errs.Wrap(ErrInvalidAmount, "empty amount")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, errs.Wrapf(ErrInvalidAmount, "%q", s)
	}
	return Amount{v: *v}, nil
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func FromBig(b *big.Int) (Amount, error) {
	if b == nil || b.Sign() < 0 {
		return Amount{}, ErrInvalidAmount
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{v: *v}, nil
}

func (a Amount) Add(b Amount) (Amount, error) {
	var out Amount
	if _, overflow := out.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, ErrAmountOverflow
	}
	return out, nil
}

func (a Amount) Sub(b Amount) (Amount, error) {
	var out Amount
	if _, underflow := out.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, ErrAmountUnderflow
	}
	return out, nil
}

// MulDiv returns a*num/den, truncated. The product is checked for overflow before dividing.
func (a Amount) MulDiv(num, den uint64) (Amount, error) {
	if den == 0 {
		return Amount{}, errs.Wrap(ErrInvalidAmount, "division by zero")
	}
	var out Amount
	n := uint256.NewInt(num)
	if _, overflow := out.v.MulOverflow(&a.v, n); overflow {
		return Amount{}, ErrAmountOverflow
	}
	out.v.Div(&out.v, uint256.NewInt(den))
	return out, nil
}

func (a Amount) Cmp(b Amount) int    { return a.v.Cmp(&b.v) }
func (a Amount) Equal(b Amount) bool { return a.v.Eq(&b.v) }
func (a Amount) IsZero() bool        { return a.v.IsZero() }
func (a Amount) String() string      { return a.v.Dec() }
func (a Amount) Big() *big.Int       { return a.v.ToBig() }

// MarshalJSON encodes the amount as a decimal string so 18-decimal values survive JSON number handling.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	parsed, err := ParseAmount(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
