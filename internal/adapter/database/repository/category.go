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

type CategoryRepository struct {
	db    *database.DB
	probe port.Telemetry
}

func NewCategoryRepository(db *database.DB, probe port.Telemetry) port.CategoryRepository {
	if probe == nil {
		probe = tel.NewNoOpProbe()
	}

	return &CategoryRepository{db: db, probe: probe}
}

func (cr *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := cr.db.QueryBuilder.Select("id", "name").
		From("categories").
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := cr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing categories", "error", err)
		return nil, err
	}

	defer rows.Close()

	data := []domain.Category{}

	for rows.Next() {
		var category domain.Category

		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}

		data = append(data, category)
	}

	return data, rows.Err()
}

func (cr *CategoryRepository) Get(ctx context.Context, id int) (domain.Category, error) {
	query := cr.db.QueryBuilder.Select("id", "name").
		From("categories").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Category{}, err
	}

	var category domain.Category

	err = cr.db.QueryRowContext(ctx, stmt, args...).Scan(&category.ID, &category.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting category", "error", err)
		return domain.Category{}, err
	}

	return category, nil
}

func (cr *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, cr.db, "categories", id)
}

func (cr *CategoryRepository) Create(ctx context.Context, category *domain.Category) (domain.SaveResult, error) {
	ctx, span := cr.probe.StartRepositorySpan(ctx, "create", "categories", nil)
	defer span.End()

	query := cr.db.QueryBuilder.Insert("categories").
		Columns("name").
		Values(category.Name).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	if err := cr.db.QueryRowContext(ctx, stmt, args...).Scan(&category.ID); err != nil {
		slog.Error("Error creating category", "error", err)
		return domain.SaveNoChange, err
	}

	cr.probe.RecordBusinessEvent(ctx, "category.created", "categories", category.ID)

	return domain.SaveCreated, nil
}

func (cr *CategoryRepository) Update(ctx context.Context, category domain.Category) (domain.SaveResult, error) {
	query := cr.db.QueryBuilder.Update("categories").
		Set("name", category.Name).
		Where(sq.Eq{"id": category.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := cr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating category", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveUpdated, nil
}

func (cr *CategoryRepository) Delete(ctx context.Context, id int) (domain.SaveResult, error) {
	query := cr.db.QueryBuilder.Delete("categories").
		Where(sq.Eq{"id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := cr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting category", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveDeleted, nil
}

func (cr *CategoryRepository) PokemonByCategory(ctx context.Context, categoryID int) ([]domain.Pokemon, error) {
	query := cr.db.QueryBuilder.Select("p.id", "p.name", "p.birth_date").
		From("pokemon p").
		Join("pokemon_categories pc ON pc.pokemon_id = p.id").
		Where(sq.Eq{"pc.category_id": categoryID}).
		OrderBy("p.id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := cr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing pokemon by category", "error", err)
		return nil, err
	}

	defer rows.Close()

	return scanPokemonRows(rows)
}
