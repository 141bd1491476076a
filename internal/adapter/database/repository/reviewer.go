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

type ReviewerRepository struct {
	db    *database.DB
	probe port.Telemetry
}

func NewReviewerRepository(db *database.DB, probe port.Telemetry) port.ReviewerRepository {
	if probe == nil {
		probe = tel.NewNoOpProbe()
	}

	return &ReviewerRepository{db: db, probe: probe}
}

func (rr *ReviewerRepository) List(ctx context.Context) ([]domain.Reviewer, error) {
	query := rr.db.QueryBuilder.Select("id", "first_name", "last_name").
		From("reviewers").
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := rr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing reviewers", "error", err)
		return nil, err
	}

	defer rows.Close()

	data := []domain.Reviewer{}

	for rows.Next() {
		var reviewer domain.Reviewer

		if err := rows.Scan(&reviewer.ID, &reviewer.FirstName, &reviewer.LastName); err != nil {
			return nil, err
		}

		data = append(data, reviewer)
	}

	return data, rows.Err()
}

func (rr *ReviewerRepository) Get(ctx context.Context, id int) (domain.Reviewer, error) {
	query := rr.db.QueryBuilder.Select("id", "first_name", "last_name").
		From("reviewers").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Reviewer{}, err
	}

	var reviewer domain.Reviewer

	err = rr.db.QueryRowContext(ctx, stmt, args...).Scan(&reviewer.ID, &reviewer.FirstName, &reviewer.LastName)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Reviewer{}, fmt.Errorf("reviewer %d: %w", id, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting reviewer", "error", err)
		return domain.Reviewer{}, err
	}

	return reviewer, nil
}

func (rr *ReviewerRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, rr.db, "reviewers", id)
}

func (rr *ReviewerRepository) Create(ctx context.Context, reviewer *domain.Reviewer) (domain.SaveResult, error) {
	ctx, span := rr.probe.StartRepositorySpan(ctx, "create", "reviewers", nil)
	defer span.End()

	query := rr.db.QueryBuilder.Insert("reviewers").
		Columns("first_name", "last_name").
		Values(reviewer.FirstName, reviewer.LastName).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	if err := rr.db.QueryRowContext(ctx, stmt, args...).Scan(&reviewer.ID); err != nil {
		slog.Error("Error creating reviewer", "error", err)
		return domain.SaveNoChange, err
	}

	return domain.SaveCreated, nil
}

func (rr *ReviewerRepository) Update(ctx context.Context, reviewer domain.Reviewer) (domain.SaveResult, error) {
	query := rr.db.QueryBuilder.Update("reviewers").
		SetMap(map[string]interface{}{
			"first_name": reviewer.FirstName,
			"last_name":  reviewer.LastName,
		}).
		Where(sq.Eq{"id": reviewer.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := rr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating reviewer", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveUpdated, nil
}

func (rr *ReviewerRepository) Delete(ctx context.Context, id int) (domain.SaveResult, error) {
	query := rr.db.QueryBuilder.Delete("reviewers").
		Where(sq.Eq{"id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := rr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting reviewer", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveDeleted, nil
}

func (rr *ReviewerRepository) ReviewsByReviewer(ctx context.Context, reviewerID int) ([]domain.Review, error) {
	query := rr.db.QueryBuilder.Select("id", "title", "text", "rating", "pokemon_id", "reviewer_id").
		From("reviews").
		Where(sq.Eq{"reviewer_id": reviewerID}).
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := rr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing reviews by reviewer", "error", err)
		return nil, err
	}

	defer rows.Close()

	return scanReviewRows(rows)
}
