//go:build unit

package pgconv

import (
	"math/big"
	"testing"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/token"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountFromNumeric(t *testing.T) {
	tests := []struct {
		name    string
		in      pgtype.Numeric
		want    string
		wantErr bool
	}{
		{name: "plain integer", in: pgtype.Numeric{Int: big.NewInt(550), Valid: true}, want: "550"},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(55), Exp: 16, Valid: true}, want: "550000000000000000"},
		{name: "integral negative exponent", in: pgtype.Numeric{Int: big.NewInt(5500), Exp: -2, Valid: true}, want: "55"},
		{name: "fractional value", in: pgtype.Numeric{Int: big.NewInt(5501), Exp: -2, Valid: true}, wantErr: true},
		{name: "null is zero", in: pgtype.Numeric{}, want: "0"},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
		{name: "negative", in: pgtype.Numeric{Int: big.NewInt(-1), Valid: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AmountFromNumeric(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAmountNumericRoundTrip(t *testing.T) {
	a := token.MustParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	got, err := AmountFromNumeric(AmountToNumeric(a))
	require.NoError(t, err)
	assert.True(t, a.Equal(got))
}

func TestAccountPgtype(t *testing.T) {
	assert.False(t, AccountToPgtype(account.Account{}).Valid)

	a := account.MustParse("0x1000000000000000000000000000000000000001")
	got, err := AccountFromPgtype(AccountToPgtype(a))
	require.NoError(t, err)
	assert.True(t, a.Equal(got))

	_, err = AccountFromPgtype(pgtype.Text{String: "nope", Valid: true})
	assert.ErrorIs(t, err, ErrInvalidAccountValue)
}
