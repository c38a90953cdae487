package ledger

import (
	"context"
	"sync"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/usecase/shared"
)

type allowanceKey struct {
	owner   account.Account
	spender account.Account
}

// MemoryLedger is an in-process token ledger with ERC-20 style balances and allowances.
type MemoryLedger struct {
	mu         sync.Mutex
	balances   map[account.Account]token.Amount
	allowances map[allowanceKey]token.Amount
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		balances:   make(map[account.Account]token.Amount),
		allowances: make(map[allowanceKey]token.Amount),
	}
}

// Mint credits holder out of thin air.
func (l *MemoryLedger) Mint(holder account.Account, amount token.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	next, err := l.balances[holder].Add(amount)
	if err != nil {
		return err
	}
	l.balances[holder] = next
	return nil
}

// Approve replaces the allowance owner grants to spender.
func (l *MemoryLedger) Approve(owner, spender account.Account, amount token.Amount) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allowances[allowanceKey{owner: owner, spender: spender}] = amount
}

func (l *MemoryLedger) TransferFrom(ctx context.Context, spender, from, to account.Account, amount token.Amount) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, shared.ErrLedgerUnavailable)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	key := allowanceKey{owner: from, spender: spender}
	remaining, err := l.allowances[key].Sub(amount)
	if err != nil {
		return errs.Wrapf(shared.ErrInsufficientAuthorization,
			"allowance %s < %s", l.allowances[key].String(), amount.String())
	}
	if err := l.move(from, to, amount); err != nil {
		return err
	}
	l.allowances[key] = remaining
	return nil
}

func (l *MemoryLedger) Transfer(ctx context.Context, from, to account.Account, amount token.Amount) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, shared.ErrLedgerUnavailable)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.move(from, to, amount)
}

func (l *MemoryLedger) BalanceOf(_ context.Context, holder account.Account) (token.Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[holder], nil
}

func (l *MemoryLedger) Allowance(_ context.Context, owner, spender account.Account) (token.Amount, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[allowanceKey{owner: owner, spender: spender}], nil
}

// move must be called with mu held.
func (l *MemoryLedger) move(from, to account.Account, amount token.Amount) error {
	debited, err := l.balances[from].Sub(amount)
	if err != nil {
		return errs.Wrapf(shared.ErrInsufficientFunds,
			"balance %s < %s", l.balances[from].String(), amount.String())
	}
	if from.Equal(to) {
		return nil
	}
	credited, err := l.balances[to].Add(amount)
	if err != nil {
		return err
	}
	l.balances[from] = debited
	l.balances[to] = credited
	return nil
}

// Seed mints each account:amount pair and approves spender for the same amount.
func (l *MemoryLedger) Seed(seeds map[string]string, spender account.Account) error {
	for raw, rawAmount := range seeds {
		holder, err := account.Parse(raw)
		if err != nil {
			return errs.Wrapf(err, "seed account %q", raw)
		}
		amount, err := token.ParseAmount(rawAmount)
		if err != nil {
			return errs.Wrapf(err, "seed amount for %s", raw)
		}
		if err := l.Mint(holder, amount); err != nil {
			return errs.Wrapf(err, "seed %s", raw)
		}
		l.Approve(holder, spender, amount)
	}
	return nil
}
