package queries

import (
	"context"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/pkg/errs"
)

//go:generate mockgen -source=registry.go -destination=../../../tests/mock/queries/registry_mock.go -package=queriesmock

type RegistryReadStore interface {
	GetSettings(ctx context.Context) (booking.Settings, error)
}

type RegistryQueries interface {
	GetSettings(ctx context.Context) (*SettingsView, error)
	GetTaxPercentage(ctx context.Context) (int, error)
	GetRoomPrices(ctx context.Context) (*RoomPricesView, error)
	CalculateTotalAmount(base token.Amount, pct int) (token.Amount, error)
}

type registryQueriesImpl struct {
	repo   RegistryReadStore
	owner  account.Account
	escrow account.Account
}

func NewRegistryQueries(repo RegistryReadStore, owner, escrow account.Account) RegistryQueries {
	return &registryQueriesImpl{repo: repo, owner: owner, escrow: escrow}
}

func (q *registryQueriesImpl) GetSettings(ctx context.Context) (*SettingsView, error) {
	s, err := q.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return &SettingsView{
		Owner:         q.owner,
		EscrowAccount: q.escrow,
		TaxPercentage: s.TaxPercentage().Int(),
		RoomPrices:    NewRoomPricesView(s.RoomPrices()),
		Version:       s.Version(),
		UpdatedAt:     s.UpdatedAt(),
	}, nil
}

func (q *registryQueriesImpl) GetTaxPercentage(ctx context.Context) (int, error) {
	s, err := q.repo.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	return s.TaxPercentage().Int(), nil
}

func (q *registryQueriesImpl) GetRoomPrices(ctx context.Context) (*RoomPricesView, error) {
	s, err := q.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	v := NewRoomPricesView(s.RoomPrices())
	return &v, nil
}

func (q *registryQueriesImpl) CalculateTotalAmount(base token.Amount, pct int) (token.Amount, error) {
	if pct < 0 {
		return token.Amount{}, errs.Wrapf(booking.ErrInvalidTaxPercentage, "%d", pct)
	}
	return booking.TotalForRate(base, uint64(pct))
}
