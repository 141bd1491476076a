package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/model/request"
	"pokereview/internal/core/port"
	"pokereview/internal/core/util"
)

type AuthService struct {
	repo   port.UserRepository
	issuer port.TokenIssuer
}

func NewAuthService(repo port.UserRepository, issuer port.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

// Register creates a user and returns a signed token for it. Emails are
// normalized before any lookup so "User@X.com " and "user@x.com" are the
// same account.
func (as *AuthService) Register(ctx context.Context, req *request.SignUpRequest) (string, error) {
	email := domain.NormalizeEmail(req.Email)

	oldUser, err := as.repo.GetByEmail(ctx, email)

	if err == nil && oldUser.Email != "" {
		return "", fmt.Errorf("email %s: %w", email, domain.ErrConflict)
	}

	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return "", fmt.Errorf("error creating encrypted password")
	}

	now := time.Now()

	user, err := as.repo.Create(ctx, domain.User{
		Username:          req.Username,
		Email:             email,
		EncryptedPassword: string(encrypted),
		CreatedAt:         now,
		UpdatedAt:         now,
	})

	if err != nil {
		return "", err
	}

	return as.issuer.Issue(user.ID, user.Email)
}

// Login returns the same ErrInvalidCredentials whether the email is
// unknown or the password is wrong, so the response never reveals which
// accounts exist. The distinction is only logged.
func (as *AuthService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	user, err := as.repo.GetByEmail(ctx, domain.NormalizeEmail(req.Email))

	if err != nil {
		slog.Error("Auth#Login", "get_by_email", err)
		return "", domain.ErrInvalidCredentials
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		slog.Error("Auth#Login", "compare_password", err)
		return "", domain.ErrInvalidCredentials
	}

	return as.issuer.Issue(user.ID, user.Email)
}
