package components

import (
	"booking-registry/internal/pkg/clock"
	"booking-registry/internal/usecase"
	"booking-registry/internal/usecase/commands"
	"booking-registry/internal/usecase/queries"
	"booking-registry/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewRegistryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		func(store queries.RegistryReadStore, principals commands.Principals) queries.RegistryQueries {
			return queries.NewRegistryQueries(store, principals.Ownership.Owner(), principals.Escrow)
		},
		func(ledger shared.TokenLedger, principals commands.Principals) queries.LedgerQueries {
			return queries.NewLedgerQueries(ledger, principals.Escrow)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
