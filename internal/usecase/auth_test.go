//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/pkg/password"
	"car-rental-api/internal/usecase"
	"car-rental-api/internal/usecase/queries"
	usecasemock "car-rental-api/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	users *usecasemock.MockUserIdentityStore
	auth  usecase.AuthUseCase

	tokens *jwt.Service
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = usecasemock.NewMockUserIdentityStore(s.ctrl)
	s.tokens = jwt.NewService("test-secret", time.Hour)
	s.auth = usecase.NewAuthUseCase(s.users, s.tokens)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) snapshot(email, plain string) *queries.UserSnapshot {
	hash, err := password.Hash(plain)
	s.Require().NoError(err)
	return &queries.UserSnapshot{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         "Desk Agent",
	}
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	s.Run("success returns a token the validator accepts", func() {
		s.SetupTest()
		user := s.snapshot("agent@example.com", "s3cret-pass")
		s.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		result, err := s.auth.Login(context.Background(), user.Email, "s3cret-pass")
		s.Require().NoError(err)
		s.Equal(user.ID, result.UserID)
		s.Equal(user.Name, result.Name)
		s.Equal(user.Email, result.Email)

		claims, err := s.tokens.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(user.ID, claims.UserID)
		s.Equal(user.Email, claims.Email)
	})

	s.Run("unknown email fails without revealing the account is missing", func() {
		s.SetupTest()
		s.users.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, notFoundErr())

		_, err := s.auth.Login(context.Background(), "nobody@example.com", "whatever")
		s.ErrorIs(err, usecase.ErrAuthenticationFailed)
	})

	s.Run("wrong password fails with the same error", func() {
		s.SetupTest()
		user := s.snapshot("agent@example.com", "s3cret-pass")
		s.users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := s.auth.Login(context.Background(), user.Email, "wrong-pass")
		s.ErrorIs(err, usecase.ErrAuthenticationFailed)
	})
}
