package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"pokereview/internal/adapter/database/repository"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/model/request"
	"pokereview/internal/core/port"
	"pokereview/internal/core/service"
	"pokereview/pkg/auth"
	"pokereview/pkg/config"
	"pokereview/pkg/test"
)

type AuthServiceTestSuite struct {
	suite.Suite
	svc  port.AuthService
	repo port.UserRepository
	jwt  *auth.JWT
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := test.InitTestDB()

	s.repo = repository.NewUserRepository(db)
	s.jwt = auth.NewJWT(config.TokenConfig{
		Issuer:   "pokereview-test",
		Audience: "pokereview-clients",
		Secret:   "test-secret",
	})
	s.svc = service.NewAuthService(s.repo, s.jwt)
}

func TestAuthServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	req := &request.SignUpRequest{
		Username: "ash",
		Email:    "ash@example.com",
		Password: "password123",
	}

	token, err := s.svc.Register(context.Background(), req)

	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), token)

	claims, err := s.jwt.Verify(token)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "ash@example.com", claims["email"])
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmailConflict() {
	req := &request.SignUpRequest{
		Username: "ash",
		Email:    "ash@example.com",
		Password: "password123",
	}

	_, err := s.svc.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	_, err = s.svc.Register(context.Background(), req)

	assert.True(s.T(), errors.Is(err, domain.ErrConflict))
}

func (s *AuthServiceTestSuite) TestRegister_NormalizesEmail() {
	req := &request.SignUpRequest{
		Username: "ash",
		Email:    "  Ash@Example.COM ",
		Password: "password123",
	}

	_, err := s.svc.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	user, err := s.repo.GetByEmail(context.Background(), "ash@example.com")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "ash@example.com", user.Email)

	// The normalized form collides with any cased/padded variant.
	_, err = s.svc.Register(context.Background(), &request.SignUpRequest{
		Username: "ash2",
		Email:    "ASH@example.com",
		Password: "password123",
	})

	assert.True(s.T(), errors.Is(err, domain.ErrConflict))
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Username: "ash",
		Email:    "ash@example.com",
		Password: "password123",
	})
	assert.NoError(s.T(), err)

	token, err := s.svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ash@example.com",
		Password: "password123",
	})

	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), token)
}

func (s *AuthServiceTestSuite) TestLogin_FailureModesAreIndistinguishable() {
	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Username: "ash",
		Email:    "ash@example.com",
		Password: "password123",
	})
	assert.NoError(s.T(), err)

	_, unknownEmailErr := s.svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	_, wrongPasswordErr := s.svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ash@example.com",
		Password: "wrongpassword",
	})

	assert.Error(s.T(), unknownEmailErr)
	assert.Error(s.T(), wrongPasswordErr)

	// Byte-identical: the caller cannot probe which accounts exist.
	assert.Equal(s.T(), unknownEmailErr.Error(), wrongPasswordErr.Error())
	assert.True(s.T(), errors.Is(unknownEmailErr, domain.ErrInvalidCredentials))
	assert.True(s.T(), errors.Is(wrongPasswordErr, domain.ErrInvalidCredentials))
}

func (s *AuthServiceTestSuite) TestLogin_AcceptsUnnormalizedEmail() {
	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Username: "ash",
		Email:    "ash@example.com",
		Password: "password123",
	})
	assert.NoError(s.T(), err)

	token, err := s.svc.Login(context.Background(), &request.LoginRequest{
		Email:    " ASH@example.com ",
		Password: "password123",
	})

	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), token)
}
