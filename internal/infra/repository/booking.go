package repository

import (
	"context"
	"fmt"

	"booking-registry/internal/domain/booking"
	"booking-registry/internal/infra"
	"booking-registry/internal/infra/db"
	"booking-registry/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, customer, customer_label, base_amount, tax_percentage, scheduled_date, room_type,
	status, payer, amount_paid, refundable, confirmed_at, paid_at, cancelled_at, refunded_at,
	created_at, updated_at`

// SelectBookingByID is shared with the read side.
const SelectBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (booking.ID, error) {
	const q = `INSERT INTO bookings (customer, customer_label, base_amount, tax_percentage, scheduled_date,
		room_type, status, payer, amount_paid, refundable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		b.Customer().String(),
		b.CustomerLabel().String(),
		pgconv.AmountToNumeric(b.BaseAmount()),
		b.TaxPercentage().Int(),
		pgconv.TimeToPgtype(b.ScheduledDate()),
		int16(b.RoomType()),
		string(b.Status()),
		pgconv.AccountToPgtype(b.Payer()),
		pgconv.AmountToNumeric(b.AmountPaid()),
		b.Refundable(),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return booking.ID(id), nil
}

// GetForUpdate takes a row lock held until the surrounding transaction ends.
func (r *BookingRepository) GetForUpdate(ctx context.Context, id booking.ID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, int64(id))
	b, err := ScanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("booking %d not found", id), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const q = `UPDATE bookings SET
		status = $2, payer = $3, amount_paid = $4, refundable = $5,
		confirmed_at = $6, paid_at = $7, cancelled_at = $8, refunded_at = $9, updated_at = $10
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		int64(b.ID()),
		string(b.Status()),
		pgconv.AccountToPgtype(b.Payer()),
		pgconv.AmountToNumeric(b.AmountPaid()),
		b.Refundable(),
		pgconv.TimePtrToPgtype(b.ConfirmedAt()),
		pgconv.TimePtrToPgtype(b.PaidAt()),
		pgconv.TimePtrToPgtype(b.CancelledAt()),
		pgconv.TimePtrToPgtype(b.RefundedAt()),
		pgconv.TimeToPgtype(b.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(fmt.Sprintf("booking %d not found", b.ID()), nil, infra.KindNotFound)
	}
	return nil
}

// ScanBooking reads one row selected with bookingColumns.
func ScanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id            int64
		customer      pgtype.Text
		label         string
		baseAmount    pgtype.Numeric
		taxPercentage int32
		scheduledDate pgtype.Timestamptz
		roomType      int16
		status        string
		payer         pgtype.Text
		amountPaid    pgtype.Numeric
		refundable    bool
		confirmedAt   pgtype.Timestamptz
		paidAt        pgtype.Timestamptz
		cancelledAt   pgtype.Timestamptz
		refundedAt    pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	if err := row.Scan(&id, &customer, &label, &baseAmount, &taxPercentage, &scheduledDate, &roomType,
		&status, &payer, &amountPaid, &refundable, &confirmedAt, &paidAt, &cancelledAt, &refundedAt,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	customerAccount, err := pgconv.AccountFromPgtype(customer)
	if err != nil {
		return nil, err
	}
	payerAccount, err := pgconv.AccountFromPgtype(payer)
	if err != nil {
		return nil, err
	}
	base, err := pgconv.AmountFromNumeric(baseAmount)
	if err != nil {
		return nil, err
	}
	paid, err := pgconv.AmountFromNumeric(amountPaid)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            booking.ID(id),
		Customer:      customerAccount,
		CustomerLabel: label,
		BaseAmount:    base,
		TaxPercentage: int(taxPercentage),
		ScheduledDate: pgconv.TimeFromPgtype(scheduledDate),
		RoomType:      booking.RoomType(roomType),
		Status:        booking.Status(status),
		Payer:         payerAccount,
		AmountPaid:    paid,
		Refundable:    refundable,
		ConfirmedAt:   pgconv.TimePtrFromPgtype(confirmedAt),
		PaidAt:        pgconv.TimePtrFromPgtype(paidAt),
		CancelledAt:   pgconv.TimePtrFromPgtype(cancelledAt),
		RefundedAt:    pgconv.TimePtrFromPgtype(refundedAt),
		CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:     pgconv.TimeFromPgtype(updatedAt),
	}), nil
}
