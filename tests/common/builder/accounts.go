//go:build unit || e2e

package builder

import (
	"booking-registry/internal/domain/account"
	"booking-registry/internal/pkg/config"
)

// Well-known accounts used across tests.
var (
	Owner  = account.MustParse(config.TestOwnerAccount)
	Escrow = account.MustParse(config.TestEscrowAccount)
	Alice  = account.MustParse("0xa11ce00000000000000000000000000000000001")
	Bob    = account.MustParse("0xb0b0000000000000000000000000000000000002")
	Carol  = account.MustParse("0xca201000000000000000000000000000000000c3")
)
