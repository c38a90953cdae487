package repository

import (
	"context"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/infra/db"
	"booking-registry/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const selectSettings = `SELECT tax_percentage, price_standard, price_deluxe, price_suite, version, updated_at
	FROM registry_settings WHERE id = 1`

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(db db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) Get(ctx context.Context) (booking.Settings, error) {
	s, err := ScanSettings(r.db.QueryRow(ctx, selectSettings))
	if err != nil {
		return booking.Settings{}, wrapSettingsErr(err)
	}
	return s, nil
}

func (r *SettingsRepository) GetForUpdate(ctx context.Context) (booking.Settings, error) {
	s, err := ScanSettings(r.db.QueryRow(ctx, selectSettings+` FOR UPDATE`))
	if err != nil {
		return booking.Settings{}, wrapSettingsErr(err)
	}
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s booking.Settings) error {
	const q = `UPDATE registry_settings SET
		tax_percentage = $1, price_standard = $2, price_deluxe = $3, price_suite = $4,
		version = $5, updated_at = $6
		WHERE id = 1`

	prices := s.RoomPrices()
	_, err := r.db.Exec(ctx, q,
		s.TaxPercentage().Int(),
		pgconv.AmountToNumeric(prices.Standard),
		pgconv.AmountToNumeric(prices.Deluxe),
		pgconv.AmountToNumeric(prices.Suite),
		s.Version(),
		pgconv.TimeToPgtype(s.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save registry settings", err)
	}
	return nil
}

// EnsureSeeded writes the deployment settings unless a row already exists.
func (r *SettingsRepository) EnsureSeeded(ctx context.Context, s booking.Settings) error {
	const q = `INSERT INTO registry_settings
		(id, tax_percentage, price_standard, price_deluxe, price_suite, version, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	prices := s.RoomPrices()
	_, err := r.db.Exec(ctx, q,
		s.TaxPercentage().Int(),
		pgconv.AmountToNumeric(prices.Standard),
		pgconv.AmountToNumeric(prices.Deluxe),
		pgconv.AmountToNumeric(prices.Suite),
		s.Version(),
		pgconv.TimeToPgtype(s.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to seed registry settings", err)
	}
	return nil
}

func ScanSettings(row pgx.Row) (booking.Settings, error) {
	var (
		tax                     int32
		standard, deluxe, suite pgtype.Numeric
		version                 int64
		updatedAt               pgtype.Timestamptz
	)
	if err := row.Scan(&tax, &standard, &deluxe, &suite, &version, &updatedAt); err != nil {
		return booking.Settings{}, err
	}

	taxPercentage, err := booking.NewTaxPercentage(int(tax))
	if err != nil {
		return booking.Settings{}, err
	}
	var prices booking.RoomPrices
	if prices.Standard, err = pgconv.AmountFromNumeric(standard); err != nil {
		return booking.Settings{}, err
	}
	if prices.Deluxe, err = pgconv.AmountFromNumeric(deluxe); err != nil {
		return booking.Settings{}, err
	}
	if prices.Suite, err = pgconv.AmountFromNumeric(suite); err != nil {
		return booking.Settings{}, err
	}
	return booking.ReconstructSettings(taxPercentage, prices, version, pgconv.TimeFromPgtype(updatedAt)), nil
}

func wrapSettingsErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("registry settings not seeded", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load registry settings", err)
}
