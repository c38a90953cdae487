package repository

import (
	"context"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/infra/db"
	"booking-registry/internal/pkg/pgconv"
	"booking-registry/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// Find locks the key row so a concurrent request with the same key waits for this transaction.
func (r *IdempotencyRepository) Find(ctx context.Context, key uuid.UUID, owner account.Account) (*shared.IdempotencyRecord, error) {
	const q = `SELECT endpoint, request_hash, result_booking_id, created_at, expires_at
		FROM idempotency_keys WHERE key = $1 AND owner = $2 FOR UPDATE`

	var (
		rec       = shared.IdempotencyRecord{Key: key, Owner: owner}
		bookingID int64
		createdAt pgtype.Timestamptz
		expiresAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, key, owner.String()).
		Scan(&rec.Endpoint, &rec.RequestHash, &bookingID, &createdAt, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	rec.ResultBookingID = booking.ID(bookingID)
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rec.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return &rec, nil
}

// Insert reports KindDuplicateKey when another transaction committed the key first.
func (r *IdempotencyRepository) Insert(ctx context.Context, rec shared.IdempotencyRecord) error {
	const q = `INSERT INTO idempotency_keys
		(key, owner, endpoint, request_hash, result_booking_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		rec.Key,
		rec.Owner.String(),
		rec.Endpoint,
		rec.RequestHash,
		int64(rec.ResultBookingID),
		pgconv.TimeToPgtype(rec.CreatedAt),
		pgconv.TimeToPgtype(rec.ExpiresAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, key uuid.UUID, owner account.Account, now time.Time) error {
	const q = `DELETE FROM idempotency_keys WHERE key = $1 AND owner = $2 AND expires_at <= $3`

	if _, err := r.db.Exec(ctx, q, key, owner.String(), pgconv.TimeToPgtype(now)); err != nil {
		return infra.WrapRepoErr("failed to delete expired idempotency key", err)
	}
	return nil
}
