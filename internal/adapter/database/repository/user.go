package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"pokereview/internal/adapter/database"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (ur *UserRepository) GetByID(ctx context.Context, id int) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("id", "username", "email", "encrypted_password", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var data domain.User

	err = ur.db.QueryRowContext(ctx, stmt, args...).Scan(
		&data.ID,
		&data.Username,
		&data.Email,
		&data.EncryptedPassword,
		&data.CreatedAt,
		&data.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting user by id", "error", err)
		return domain.User{}, err
	}

	return data, nil
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := ur.db.QueryBuilder.Select("id", "username", "email", "encrypted_password", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"email": domain.NormalizeEmail(email)}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var data domain.User

	err = ur.db.QueryRowContext(ctx, stmt, args...).Scan(
		&data.ID,
		&data.Username,
		&data.Email,
		&data.EncryptedPassword,
		&data.CreatedAt,
		&data.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting user by email", "error", err)
		return domain.User{}, err
	}

	return data, nil
}

// Create relies on the unique constraint over users.email; a violation
// maps to ErrConflict so two concurrent registrations cannot both
// succeed regardless of any pre-check.
func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	user.Email = domain.NormalizeEmail(user.Email)

	query := ur.db.QueryBuilder.Insert("users").
		Columns("username", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.Username, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	err = ur.db.QueryRowContext(ctx, stmt, args...).Scan(&user.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("email %s: %w", user.Email, domain.ErrConflict)
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return user, nil
}
