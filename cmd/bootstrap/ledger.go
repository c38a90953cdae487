package bootstrap

import (
	"log/slog"

	"booking-registry/internal/infra/ledger"
	"booking-registry/internal/pkg/config"
	"booking-registry/internal/usecase/commands"
	"booking-registry/internal/usecase/shared"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewTokenLedger,
	),
)

func NewTokenLedger(cfg config.Config, principals commands.Principals) (shared.TokenLedger, error) {
	switch cfg.Ledger.Driver {
	case config.LedgerDriverRPC:
		slog.Info("using RPC token ledger", "url", cfg.Ledger.RPCURL)
		return ledger.NewRPCClient(cfg.Ledger.RPCURL, cfg.Ledger.Token, cfg.Ledger.Timeout), nil
	default:
		l := ledger.NewMemoryLedger()
		if err := l.Seed(cfg.Ledger.SeedBalances, principals.Escrow); err != nil {
			return nil, err
		}
		slog.Warn("using in-memory token ledger; balances are lost on restart", "seeded_accounts", len(cfg.Ledger.SeedBalances))
		return l, nil
	}
}
