package usecase

import (
	"context"
	"errors"

	"car-rental-api/internal/infra"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrAuthenticationFailed = errors.New("invalid email or password")

// UserIdentityStore is the credential lookup port for issuer logins.
type UserIdentityStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.UserSnapshot, error)
}

type LoginResult struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Token  string
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	users  UserIdentityStore
	tokens *jwt.Service
}

func NewAuthUseCase(users UserIdentityStore, tokens *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{users: users, tokens: tokens}
}

// Login verifies the issuer's credentials and mints a session token. Unknown
// email and wrong password collapse into the same error so the endpoint
// never confirms which accounts exist.
func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.Verify(user.PasswordHash, plainPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}, nil
}
