//go:build unit

package jwt

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var holder = common.HexToAddress("0xa000000000000000000000000000000000000001")

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", "booking-registry-test", time.Hour)
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	token, expiresAt, err := svc.GenerateToken(holder)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, holder.Hex(), claims.Account)
	assert.Equal(t, holder.Hex(), claims.Subject)
}

func TestService_ValidateToken_Failures(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewService("secret", "booking-registry-test", time.Hour)
	issuer.now = func() time.Time { return fixed }
	token, _, err := issuer.GenerateToken(holder)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     func() *Service
		token   string
		wantErr error
	}{
		{
			name: "expired",
			svc: func() *Service {
				s := NewService("secret", "booking-registry-test", time.Hour)
				s.now = func() time.Time { return fixed.Add(2 * time.Hour) }
				return s
			},
			token:   token,
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong secret",
			svc: func() *Service {
				s := NewService("other", "booking-registry-test", time.Hour)
				s.now = func() time.Time { return fixed }
				return s
			},
			token:   token,
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			svc: func() *Service {
				s := NewService("secret", "someone-else", time.Hour)
				s.now = func() time.Time { return fixed }
				return s
			},
			token:   token,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "garbage",
			svc:     func() *Service { return NewService("secret", "booking-registry-test", time.Hour) },
			token:   "not.a.token",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc().ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
