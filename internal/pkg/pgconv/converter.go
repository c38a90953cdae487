package pgconv

import (
	"database/sql"
	"errors"
	"math/big"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/token"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidNumericValue = errors.New("invalid numeric value in pgtype.Numeric")
	ErrInvalidAccountValue = errors.New("invalid account value in pgtype.Text")
)

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time.UTC()
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time.UTC()
	return &t
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimePtrToPgtype(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{Valid: false}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func AmountToNumeric(a token.Amount) pgtype.Numeric {
	return pgtype.Numeric{Int: a.Big(), Exp: 0, Valid: true}
}

// AmountFromNumeric accepts any exponent as long as the value is integral.
func AmountFromNumeric(pn pgtype.Numeric) (token.Amount, error) {
	if !pn.Valid {
		return token.Zero(), nil
	}
	if pn.NaN || pn.InfinityModifier != pgtype.Finite || pn.Int == nil {
		return token.Amount{}, ErrInvalidNumericValue
	}

	v := new(big.Int).Set(pn.Int)
	switch {
	case pn.Exp > 0:
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(pn.Exp)), nil))
	case pn.Exp < 0:
		q, r := new(big.Int).QuoRem(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-pn.Exp)), nil), new(big.Int))
		if r.Sign() != 0 {
			return token.Amount{}, ErrInvalidNumericValue
		}
		v = q
	}
	return token.FromBig(v)
}

// AccountToPgtype stores the zero account as NULL.
func AccountToPgtype(a account.Account) pgtype.Text {
	if a.IsZero() {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: a.String(), Valid: true}
}

func AccountFromPgtype(pt pgtype.Text) (account.Account, error) {
	if !pt.Valid || pt.String == "" {
		return account.Account{}, nil
	}
	a, err := account.Parse(pt.String)
	if err != nil {
		return account.Account{}, ErrInvalidAccountValue
	}
	return a, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
