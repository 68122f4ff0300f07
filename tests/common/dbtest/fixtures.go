//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"car-rental-api/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Fixed fixture IDs so e2e tests can reference the seeded rows directly.
var (
	CarEconomyID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	CarPremiumID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	ClientAliceID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	ClientBobID   = uuid.MustParse("44444444-4444-4444-4444-444444444444")

	StaffUserID = uuid.MustParse("55555555-5555-5555-5555-555555555555")
)

const (
	StaffEmail    = "staff@example.com"
	StaffPassword = "password123"
)

// SeedReferenceData inserts the cars, clients and the staff user the e2e
// tests build rentals against.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	staffHash, err := password.Hash(StaffPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name) VALUES
		    ($1, $2, $3, 'Staff User')
		ON CONFLICT (email) DO NOTHING;
	`, StaffUserID, StaffEmail, staffHash)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO clients (id, name, email, phone) VALUES
		    ($1, 'Alice Example', 'alice@example.com', '+1-555-0101'),
		    ($2, 'Bob Example', 'bob@example.com', '+1-555-0102')
		ON CONFLICT (id) DO NOTHING;
	`, ClientAliceID, ClientBobID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO cars (id, license_plate, vin, hourly_rate_cents, status) VALUES
		    ($1, 'ECO-0001', '1HGBH41JXMN100001', 500, 'AVAILABLE'),
		    ($2, 'PRM-0002', '1HGBH41JXMN100002', 1000, 'AVAILABLE')
		ON CONFLICT (license_plate) DO NOTHING;
	`, CarEconomyID, CarPremiumID)
	return err
}

// CreateTestCar inserts an extra car and returns its ID.
func CreateTestCar(t *testing.T, db DBLike, plate string, rateCents int64) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO cars (id, license_plate, hourly_rate_cents, status) VALUES ($1, $2, $3, 'AVAILABLE') ON CONFLICT (license_plate) DO NOTHING",
		carID, plate, rateCents)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM cars WHERE license_plate = $1", plate).Scan(&carID)
	}
	return carID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds the reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
