package booking

import "booking-registry/internal/domain/account"

// Ownership guards the owner-only registry operations.
type Ownership struct {
	owner account.Account
}

func NewOwnership(owner account.Account) Ownership {
	return Ownership{owner: owner}
}

func (o Ownership) Owner() account.Account { return o.owner }

func (o Ownership) Authorize(caller account.Account) error {
	if o.owner.IsZero() || !caller.Equal(o.owner) {
		return ErrNotOwner
	}
	return nil
}
