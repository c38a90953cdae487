package bootstrap

import (
	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/pkg/clock"
	"booking-registry/internal/pkg/config"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/usecase/commands"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPrincipals,
		NewInitialSettings,
	),
)

// NewPrincipals reads the owner and escrow accounts fixed at deployment.
func NewPrincipals(cfg config.Config) (commands.Principals, error) {
	owner, err := account.Parse(cfg.Registry.Owner)
	if err != nil {
		return commands.Principals{}, errs.Wrap(err, "REGISTRY_OWNER")
	}
	escrow, err := account.Parse(cfg.Registry.EscrowAccount)
	if err != nil {
		return commands.Principals{}, errs.Wrap(err, "REGISTRY_ESCROW_ACCOUNT")
	}
	return commands.Principals{
		Ownership: booking.NewOwnership(owner),
		Escrow:    escrow,
	}, nil
}

// NewInitialSettings builds the settings a fresh store starts from.
// A Postgres store that already holds settings keeps its own.
func NewInitialSettings(cfg config.Config) (booking.Settings, error) {
	tax, err := booking.NewTaxPercentage(cfg.Registry.TaxPercentage)
	if err != nil {
		return booking.Settings{}, errs.Wrap(err, "REGISTRY_TAX_PERCENTAGE")
	}
	var prices booking.RoomPrices
	for _, p := range []struct {
		env string
		raw string
		dst *token.Amount
	}{
		{"REGISTRY_PRICE_STANDARD", cfg.Registry.PriceStandard, &prices.Standard},
		{"REGISTRY_PRICE_DELUXE", cfg.Registry.PriceDeluxe, &prices.Deluxe},
		{"REGISTRY_PRICE_SUITE", cfg.Registry.PriceSuite, &prices.Suite},
	} {
		amount, err := token.ParseAmount(p.raw)
		if err != nil {
			return booking.Settings{}, errs.Wrap(err, p.env)
		}
		*p.dst = amount
	}
	return booking.NewSettings(tax, prices, clock.NewRealClock().Now()), nil
}
