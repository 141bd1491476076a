package port

import (
	"context"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/model/request"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

// TokenIssuer builds a signed bearer token for an authenticated user.
type TokenIssuer interface {
	Issue(userID int, email string) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, req *request.SignUpRequest) (string, error)
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
}
