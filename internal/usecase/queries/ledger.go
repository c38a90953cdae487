package queries

import (
	"context"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/usecase/shared"
)

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/queries/ledger_mock.go -package=queriesmock

// LedgerQueries exposes read-only ledger state so payers can check their authorization before paying.
type LedgerQueries interface {
	Balance(ctx context.Context, holder account.Account) (*BalanceView, error)
	EscrowAllowance(ctx context.Context, owner account.Account) (*AllowanceView, error)
}

type ledgerQueriesImpl struct {
	ledger shared.TokenLedger
	escrow account.Account
}

func NewLedgerQueries(ledger shared.TokenLedger, escrow account.Account) LedgerQueries {
	return &ledgerQueriesImpl{ledger: ledger, escrow: escrow}
}

func (q *ledgerQueriesImpl) Balance(ctx context.Context, holder account.Account) (*BalanceView, error) {
	balance, err := q.ledger.BalanceOf(ctx, holder)
	if err != nil {
		return nil, err
	}
	return &BalanceView{Account: holder, Balance: balance}, nil
}

func (q *ledgerQueriesImpl) EscrowAllowance(ctx context.Context, owner account.Account) (*AllowanceView, error) {
	allowance, err := q.ledger.Allowance(ctx, owner, q.escrow)
	if err != nil {
		return nil, err
	}
	return &AllowanceView{Owner: owner, Spender: q.escrow, Allowance: allowance}, nil
}
