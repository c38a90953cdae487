package booking

import (
	"strings"
	"unicode/utf8"

	"booking-registry/internal/pkg/errs"
)

const (
	MaxCustomerLabelLength = 128
	MaxTaxPercentage       = 100
)

type CustomerLabel struct {
	text string
}

func NewCustomerLabel(s string) (CustomerLabel, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return CustomerLabel{}, errs.Wrap(ErrInvalidCustomerLabel, "empty")
	}
	if utf8.RuneCountInString(t) > MaxCustomerLabelLength {
		return CustomerLabel{}, errs.Wrap(ErrInvalidCustomerLabel, "too long")
	}
	return CustomerLabel{text: t}, nil
}

func (c CustomerLabel) String() string { return c.text }

type TaxPercentage struct {
	value uint32
}

func NewTaxPercentage(v int) (TaxPercentage, error) {
	if v < 0 || v > MaxTaxPercentage {
		return TaxPercentage{}, errs.Wrapf(ErrInvalidTaxPercentage, "%d", v)
	}
	return TaxPercentage{value: uint32(v)}, nil
}

func (t TaxPercentage) Value() uint32 { return t.value }
func (t TaxPercentage) Int() int      { return int(t.value) }
