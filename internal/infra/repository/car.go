package repository

import (
	"context"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository struct {
	pool *pgxpool.Pool
}

func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

func (r *CarRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check car existence", err)
	}
	return exists, nil
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.CarSnapshot, error) {
	var snap queries.CarSnapshot
	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT id, license_plate, hourly_rate_cents, status, changed_at
		FROM cars WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.LicensePlate, &snap.HourlyRateCents, &status, &snap.ChangedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	snap.Status = car.Status(status)
	return &snap, nil
}

// UpdateStatus is the advisory status write; callers must tolerate failure.
func (r *CarRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status car.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE cars SET status = $2, changed_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindStatusDrift returns cars whose stored status disagrees with the status
// derived from live rentals (RENTED while an active rental exists, AVAILABLE
// otherwise). NOT_AVAILABLE and MAINTENANCE are operator-owned and excluded.
func (r *CarRepository) FindStatusDrift(ctx context.Context) (map[uuid.UUID]car.Status, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id,
		       CASE WHEN EXISTS (
		           SELECT 1 FROM rentals r
		           WHERE r.car_id = c.id AND r.status = 'ACTIVE'
		       ) THEN 'RENTED' ELSE 'AVAILABLE' END AS derived
		FROM cars c
		WHERE c.status IN ('AVAILABLE', 'RENTED')
		  AND c.status <> CASE WHEN EXISTS (
		          SELECT 1 FROM rentals r
		          WHERE r.car_id = c.id AND r.status = 'ACTIVE'
		      ) THEN 'RENTED' ELSE 'AVAILABLE' END`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query car status drift", err)
	}
	defer rows.Close()

	drift := make(map[uuid.UUID]car.Status)
	for rows.Next() {
		var id uuid.UUID
		var derived string
		if err := rows.Scan(&id, &derived); err != nil {
			return nil, infra.WrapRepoErr("failed to scan car status drift", err)
		}
		drift[id] = car.Status(derived)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read car status drift", err)
	}
	return drift, nil
}
