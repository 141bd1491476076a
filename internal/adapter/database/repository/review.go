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
	tel "pokereview/internal/core/telemetry"
)

type ReviewRepository struct {
	db    *database.DB
	probe port.Telemetry
}

func NewReviewRepository(db *database.DB, probe port.Telemetry) port.ReviewRepository {
	if probe == nil {
		probe = tel.NewNoOpProbe()
	}

	return &ReviewRepository{db: db, probe: probe}
}

func (rr *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	query := rr.db.QueryBuilder.Select("id", "title", "text", "rating", "pokemon_id", "reviewer_id").
		From("reviews").
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := rr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing reviews", "error", err)
		return nil, err
	}

	defer rows.Close()

	return scanReviewRows(rows)
}

func (rr *ReviewRepository) Get(ctx context.Context, id int) (domain.Review, error) {
	query := rr.db.QueryBuilder.Select("id", "title", "text", "rating", "pokemon_id", "reviewer_id").
		From("reviews").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Review{}, err
	}

	var review domain.Review

	err = rr.db.QueryRowContext(ctx, stmt, args...).Scan(
		&review.ID,
		&review.Title,
		&review.Text,
		&review.Rating,
		&review.PokemonID,
		&review.ReviewerID,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Review{}, fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting review", "error", err)
		return domain.Review{}, err
	}

	return review, nil
}

func (rr *ReviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, rr.db, "reviews", id)
}

func (rr *ReviewRepository) Create(ctx context.Context, review *domain.Review) (domain.SaveResult, error) {
	ctx, span := rr.probe.StartRepositorySpan(ctx, "create", "reviews", nil)
	defer span.End()

	query := rr.db.QueryBuilder.Insert("reviews").
		Columns("title", "text", "rating", "pokemon_id", "reviewer_id").
		Values(review.Title, review.Text, review.Rating, review.PokemonID, review.ReviewerID).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	if err := rr.db.QueryRowContext(ctx, stmt, args...).Scan(&review.ID); err != nil {
		slog.Error("Error creating review", "error", err)
		return domain.SaveNoChange, err
	}

	rr.probe.RecordBusinessEvent(ctx, "review.created", "reviews", review.ID)

	return domain.SaveCreated, nil
}

func (rr *ReviewRepository) Update(ctx context.Context, review domain.Review) (domain.SaveResult, error) {
	query := rr.db.QueryBuilder.Update("reviews").
		SetMap(map[string]interface{}{
			"title":  review.Title,
			"text":   review.Text,
			"rating": review.Rating,
		}).
		Where(sq.Eq{"id": review.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := rr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating review", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveUpdated, nil
}

func (rr *ReviewRepository) Delete(ctx context.Context, id int) (domain.SaveResult, error) {
	query := rr.db.QueryBuilder.Delete("reviews").
		Where(sq.Eq{"id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := rr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting review", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveDeleted, nil
}

func (rr *ReviewRepository) ReviewsOfPokemon(ctx context.Context, pokemonID int) ([]domain.Review, error) {
	query := rr.db.QueryBuilder.Select("id", "title", "text", "rating", "pokemon_id", "reviewer_id").
		From("reviews").
		Where(sq.Eq{"pokemon_id": pokemonID}).
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := rr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing reviews of pokemon", "error", err)
		return nil, err
	}

	defer rows.Close()

	return scanReviewRows(rows)
}
