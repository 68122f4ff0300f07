package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RentalRepository owns the rentals table. Status-changing writes go through
// the named transition methods only; every transition re-states its expected
// source status in the WHERE clause so a concurrent transition loses cleanly
// instead of overwriting a terminal state.
type RentalRepository struct {
	pool *pgxpool.Pool
}

func NewRentalRepository(pool *pgxpool.Pool) *RentalRepository {
	return &RentalRepository{pool: pool}
}

const rentalColumns = `
	r.id, r.car_id, r.client_id, r.issuer_id,
	r.start_at, r.end_at, r.actual_return_at, r.total_cost_cents,
	r.status, r.notes, r.created_at`

const rentalViewSelect = `
SELECT
	r.id, r.car_id, c.license_plate, c.status, c.hourly_rate_cents,
	r.client_id, cl.name,
	r.issuer_id, u.name,
	r.start_at, r.end_at, r.actual_return_at, r.total_cost_cents,
	r.status, r.notes, r.created_at
FROM rentals r
JOIN cars c ON c.id = r.car_id
JOIN clients cl ON cl.id = r.client_id
LEFT JOIN users u ON u.id = r.issuer_id`

func (r *RentalRepository) Create(ctx context.Context, ren *rental.Rental) error {
	var notes *string
	if !ren.Notes().IsEmpty() {
		s := ren.Notes().String()
		notes = &s
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO rentals (id, car_id, client_id, issuer_id, start_at, end_at, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ren.ID(), ren.CarID(), ren.ClientID(), pgconv.UUIDPtrToPgtype(ren.IssuerID()),
		ren.Period().Start(), ren.Period().End(), ren.Status().String(),
		pgconv.StringPtrToPgtype(notes), ren.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rental", err)
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+rentalColumns+` FROM rentals r WHERE r.id = $1`, id)

	ren, err := scanRental(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}
	return ren, nil
}

// UpdateEnd persists an extension. The status guard keeps terminal rentals
// immutable even if another writer finished the rental in between.
func (r *RentalRepository) UpdateEnd(ctx context.Context, id uuid.UUID, newEnd time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rentals SET end_at = $2
		WHERE id = $1 AND status IN ('AWAITING', 'ACTIVE')`,
		id, newEnd,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to extend rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental is not extendable", nil, infra.KindConflict)
	}
	return nil
}

// Complete applies the terminal settlement write: actual return, total cost
// and COMPLETED status in one statement, only from a non-terminal state.
func (r *RentalRepository) Complete(ctx context.Context, ren *rental.Rental) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rentals
		SET status = $2, actual_return_at = $3, total_cost_cents = $4
		WHERE id = $1 AND status IN ('AWAITING', 'ACTIVE')`,
		ren.ID(), ren.Status().String(),
		pgconv.TimePtrToPgtype(ren.ActualReturnAt()),
		pgconv.Int64PtrToPgtype(ren.TotalCostCents()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental is not in a completable state", nil, infra.KindConflict)
	}
	return nil
}

func (r *RentalRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rentals SET status = 'CANCELLED'
		WHERE id = $1 AND status = 'AWAITING'`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental is not awaiting", nil, infra.KindConflict)
	}
	return nil
}

// Delete is the administrative hard delete, permitted at any lifecycle
// state. Distinct from the cancellation transition.
func (r *RentalRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete rental", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindOverlapping returns non-cancelled rentals for the car whose half-open
// [start, end) interval intersects the given one.
func (r *RentalRepository) FindOverlapping(ctx context.Context, carID uuid.UUID, start, end time.Time) ([]*rental.Rental, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+rentalColumns+`
		FROM rentals r
		WHERE r.car_id = $1
		  AND r.status <> 'CANCELLED'
		  AND tstzrange(r.start_at, r.end_at, '[)') && tstzrange($2, $3, '[)')
		ORDER BY r.start_at`,
		carID, start, end,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping rentals", err)
	}
	defer rows.Close()

	var result []*rental.Rental
	for rows.Next() {
		ren, scanErr := scanRental(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping rental", scanErr)
		}
		result = append(result, ren)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlapping rentals", err)
	}
	return result, nil
}

func (r *RentalRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row := r.pool.QueryRow(ctx, rentalViewSelect+` WHERE r.id = $1`, id)

	view, err := scanRentalView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental view by ID", err)
	}
	return view, nil
}

func (r *RentalRepository) FindViewsByFilter(ctx context.Context, filter queries.RentalFilter) ([]*queries.RentalView, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CarID != nil {
		conds = append(conds, "r.car_id = "+arg(*filter.CarID))
	}
	if filter.ClientID != nil {
		conds = append(conds, "r.client_id = "+arg(*filter.ClientID))
	}
	if filter.IssuerID != nil {
		conds = append(conds, "r.issuer_id = "+arg(*filter.IssuerID))
	}
	if filter.Status != nil {
		conds = append(conds, "r.status = "+arg(*filter.Status))
	}
	if len(filter.TimeRange) == 2 {
		from := arg(filter.TimeRange[0])
		to := arg(filter.TimeRange[1])
		conds = append(conds, fmt.Sprintf(
			"(r.start_at BETWEEN %[1]s AND %[2]s OR r.end_at BETWEEN %[1]s AND %[2]s)", from, to))
	}

	query := rentalViewSelect
	if len(conds) > 0 {
		query += "\nWHERE " + strings.Join(conds, " AND ")
	}
	query += "\nORDER BY r.created_at DESC, r.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rentals by filter", err)
	}
	defer rows.Close()

	var result []*queries.RentalView
	for rows.Next() {
		view, scanErr := scanRentalView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan rental view", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rental views", err)
	}
	return result, nil
}

func scanRental(row pgx.Row) (*rental.Rental, error) {
	var (
		id, carID, clientID uuid.UUID
		issuerID            pgtype.UUID
		startAt, endAt      pgtype.Timestamptz
		actualReturnAt      pgtype.Timestamptz
		totalCostCents      pgtype.Int8
		status              string
		notes               pgtype.Text
		createdAt           pgtype.Timestamptz
	)

	if err := row.Scan(
		&id, &carID, &clientID, &issuerID,
		&startAt, &endAt, &actualReturnAt, &totalCostCents,
		&status, &notes, &createdAt,
	); err != nil {
		return nil, err
	}

	period, err := rental.NewPeriod(pgconv.TimeFromPgtype(startAt), pgconv.TimeFromPgtype(endAt))
	if err != nil {
		return nil, err
	}

	var noteValue string
	if n := pgconv.StringPtrFromPgtype(notes); n != nil {
		noteValue = *n
	}
	rentalNotes, err := rental.NewNotes(noteValue)
	if err != nil {
		return nil, err
	}

	return rental.ReconstructRental(
		id, carID, clientID,
		pgconv.UUIDPtrFromPgtype(issuerID),
		period,
		pgconv.TimePtrFromPgtype(actualReturnAt),
		pgconv.Int64PtrFromPgtype(totalCostCents),
		rental.Status(status),
		rentalNotes,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func scanRentalView(row pgx.Row) (*queries.RentalView, error) {
	var (
		view           queries.RentalView
		issuerID       pgtype.UUID
		issuerName     pgtype.Text
		actualReturnAt pgtype.Timestamptz
		totalCostCents pgtype.Int8
		notes          pgtype.Text
		startAt, endAt pgtype.Timestamptz
		createdAt      pgtype.Timestamptz
	)

	if err := row.Scan(
		&view.ID, &view.CarID, &view.CarLicensePlate, &view.CarStatus, &view.CarHourlyRateCents,
		&view.ClientID, &view.ClientName,
		&issuerID, &issuerName,
		&startAt, &endAt, &actualReturnAt, &totalCostCents,
		&view.Status, &notes, &createdAt,
	); err != nil {
		return nil, err
	}

	view.IssuerID = pgconv.UUIDPtrFromPgtype(issuerID)
	view.IssuerName = pgconv.StringPtrFromPgtype(issuerName)
	view.StartAt = pgconv.TimeFromPgtype(startAt)
	view.EndAt = pgconv.TimeFromPgtype(endAt)
	view.ActualReturnAt = pgconv.TimePtrFromPgtype(actualReturnAt)
	view.TotalCostCents = pgconv.Int64PtrFromPgtype(totalCostCents)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
