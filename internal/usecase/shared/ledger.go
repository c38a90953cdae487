package shared

import (
	"context"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/pkg/errs"
)

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/shared/ledger_mock.go -package=sharedmock

var (
	ErrInsufficientFunds         = errs.New("insufficient funds")
	ErrInsufficientAuthorization = errs.New("insufficient authorization")
	ErrLedgerUnavailable         = errs.New("token ledger unavailable")
)

// TokenLedger is the external fungible-token ledger. Transfers are synchronous and fail fast.
type TokenLedger interface {
	// TransferFrom moves amount from `from` to `to` using the allowance `from` granted to spender.
	TransferFrom(ctx context.Context, spender, from, to account.Account, amount token.Amount) error
	// Transfer moves amount out of `from`'s own balance.
	Transfer(ctx context.Context, from, to account.Account, amount token.Amount) error
	BalanceOf(ctx context.Context, holder account.Account) (token.Amount, error)
	Allowance(ctx context.Context, owner, spender account.Account) (token.Amount, error)
}
