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

type CountryRepository struct {
	db    *database.DB
	probe port.Telemetry
}

func NewCountryRepository(db *database.DB, probe port.Telemetry) port.CountryRepository {
	if probe == nil {
		probe = tel.NewNoOpProbe()
	}

	return &CountryRepository{db: db, probe: probe}
}

func (cr *CountryRepository) List(ctx context.Context) ([]domain.Country, error) {
	query := cr.db.QueryBuilder.Select("id", "name").
		From("countries").
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := cr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing countries", "error", err)
		return nil, err
	}

	defer rows.Close()

	data := []domain.Country{}

	for rows.Next() {
		var country domain.Country

		if err := rows.Scan(&country.ID, &country.Name); err != nil {
			return nil, err
		}

		data = append(data, country)
	}

	return data, rows.Err()
}

func (cr *CountryRepository) Get(ctx context.Context, id int) (domain.Country, error) {
	query := cr.db.QueryBuilder.Select("id", "name").
		From("countries").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Country{}, err
	}

	var country domain.Country

	err = cr.db.QueryRowContext(ctx, stmt, args...).Scan(&country.ID, &country.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Country{}, fmt.Errorf("country %d: %w", id, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting country", "error", err)
		return domain.Country{}, err
	}

	return country, nil
}

func (cr *CountryRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, cr.db, "countries", id)
}

func (cr *CountryRepository) Create(ctx context.Context, country *domain.Country) (domain.SaveResult, error) {
	ctx, span := cr.probe.StartRepositorySpan(ctx, "create", "countries", nil)
	defer span.End()

	query := cr.db.QueryBuilder.Insert("countries").
		Columns("name").
		Values(country.Name).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	if err := cr.db.QueryRowContext(ctx, stmt, args...).Scan(&country.ID); err != nil {
		slog.Error("Error creating country", "error", err)
		return domain.SaveNoChange, err
	}

	return domain.SaveCreated, nil
}

func (cr *CountryRepository) Update(ctx context.Context, country domain.Country) (domain.SaveResult, error) {
	query := cr.db.QueryBuilder.Update("countries").
		Set("name", country.Name).
		Where(sq.Eq{"id": country.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := cr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating country", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveUpdated, nil
}

func (cr *CountryRepository) Delete(ctx context.Context, id int) (domain.SaveResult, error) {
	query := cr.db.QueryBuilder.Delete("countries").
		Where(sq.Eq{"id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := cr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting country", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveDeleted, nil
}

func (cr *CountryRepository) CountryByOwner(ctx context.Context, ownerID int) (domain.Country, error) {
	query := cr.db.QueryBuilder.Select("c.id", "c.name").
		From("countries c").
		Join("owners o ON o.country_id = c.id").
		Where(sq.Eq{"o.id": ownerID}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Country{}, err
	}

	var country domain.Country

	err = cr.db.QueryRowContext(ctx, stmt, args...).Scan(&country.ID, &country.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Country{}, fmt.Errorf("country of owner %d: %w", ownerID, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting country by owner", "error", err)
		return domain.Country{}, err
	}

	return country, nil
}
