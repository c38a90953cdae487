// Command issuetoken mints a bearer token for a ledger account, for development and manual testing.
//
//	JWT_SECRET=... go run ./cmd/issuetoken -account 0x...
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"booking-registry/internal/domain/account"
	resdto "booking-registry/internal/handler/dto/response"
	"booking-registry/internal/pkg/config"
	"booking-registry/internal/pkg/jwt"
	"booking-registry/internal/usecase"

	"github.com/kelseyhightower/envconfig"
)

func main() {
	holder := flag.String("account", "", "hex address of the account the token identifies")
	flag.Parse()

	if err := run(*holder); err != nil {
		fmt.Fprintln(os.Stderr, "issuetoken:", err)
		os.Exit(1)
	}
}

func run(raw string) error {
	// only the JWT section is needed, so the full LoadConfig validation is skipped
	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	duration, err := cfg.TokenDuration()
	if err != nil {
		return err
	}

	holder, err := account.Parse(raw)
	if err != nil {
		return err
	}

	auth := usecase.NewAuthUseCase(jwt.NewService(cfg.Secret, cfg.Issuer, duration))
	issued, err := auth.IssueToken(holder)
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(resdto.TokenResponse{
		AccessToken: issued.Token,
		Account:     issued.Account.String(),
		ExpiresAt:   issued.ExpiresAt,
	})
}
