//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/pkg/config"
	"booking-registry/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, holder account.Account) string {
	t.Helper()
	duration, err := h.cfg.TokenDuration()
	require.NoError(t, err)
	return h.sign(t, holder, duration)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, holder account.Account) string {
	t.Helper()
	token := h.sign(t, holder, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	return token
}

// CreateForeignToken signs with another secret, so validation must reject it.
func (h *JWTHelper) CreateForeignToken(t *testing.T, holder account.Account) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", h.cfg.Issuer, time.Hour)
	token, _, err := service.GenerateToken(holder.Address())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) sign(t *testing.T, holder account.Account, d time.Duration) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, d)
	token, _, err := service.GenerateToken(holder.Address())
	require.NoError(t, err)
	return token
}
