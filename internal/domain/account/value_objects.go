package account

import (
	"booking-registry/internal/pkg/errs"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAccount = errs.New("invalid account address")

// Account is a ledger principal. The zero value means "unset".
type Account struct {
	addr common.Address
}

func Parse(s string) (Account, error) {
	if !common.IsHexAddress(s) {
		return Account{}, errs.Wrapf(ErrInvalidAccount, "%q", s)
	}
	a := Account{addr: common.HexToAddress(s)}
	if a.IsZero() {
		return Account{}, errs.Wrap(ErrInvalidAccount, "zero address")
	}
	return a, nil
}

func MustParse(s string) Account {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func FromAddress(addr common.Address) Account {
	return Account{addr: addr}
}

func (a Account) Address() common.Address { return a.addr }
func (a Account) IsZero() bool            { return a.addr == (common.Address{}) }
func (a Account) Equal(o Account) bool    { return a.addr == o.addr }

// String returns the EIP-55 checksummed form, or "" for the zero account.
func (a Account) String() string {
	if a.IsZero() {
		return ""
	}
	return a.addr.Hex()
}

func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Account) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Account{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
