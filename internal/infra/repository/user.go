package repository

import (
	"context"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/pgconv"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.UserSnapshot, error) {
	var snap queries.UserSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, name FROM users WHERE email = $1`, email,
	).Scan(&snap.ID, &snap.Email, &snap.PasswordHash, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snap, nil
}
