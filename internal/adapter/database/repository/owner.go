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

type OwnerRepository struct {
	db    *database.DB
	probe port.Telemetry
}

func NewOwnerRepository(db *database.DB, probe port.Telemetry) port.OwnerRepository {
	if probe == nil {
		probe = tel.NewNoOpProbe()
	}

	return &OwnerRepository{db: db, probe: probe}
}

func (or *OwnerRepository) List(ctx context.Context) ([]domain.Owner, error) {
	query := or.db.QueryBuilder.Select("id", "first_name", "last_name", "gym", "country_id").
		From("owners").
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := or.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing owners", "error", err)
		return nil, err
	}

	defer rows.Close()

	data := []domain.Owner{}

	for rows.Next() {
		var owner domain.Owner

		err := rows.Scan(&owner.ID, &owner.FirstName, &owner.LastName, &owner.Gym, &owner.CountryID)

		if err != nil {
			return nil, err
		}

		data = append(data, owner)
	}

	return data, rows.Err()
}

func (or *OwnerRepository) Get(ctx context.Context, id int) (domain.Owner, error) {
	query := or.db.QueryBuilder.Select("id", "first_name", "last_name", "gym", "country_id").
		From("owners").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Owner{}, err
	}

	var owner domain.Owner

	err = or.db.QueryRowContext(ctx, stmt, args...).Scan(
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.Gym,
		&owner.CountryID,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Owner{}, fmt.Errorf("owner %d: %w", id, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting owner", "error", err)
		return domain.Owner{}, err
	}

	return owner, nil
}

func (or *OwnerRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, or.db, "owners", id)
}

func (or *OwnerRepository) Create(ctx context.Context, owner *domain.Owner) (domain.SaveResult, error) {
	ctx, span := or.probe.StartRepositorySpan(ctx, "create", "owners", nil)
	defer span.End()

	query := or.db.QueryBuilder.Insert("owners").
		Columns("first_name", "last_name", "gym", "country_id").
		Values(owner.FirstName, owner.LastName, owner.Gym, owner.CountryID).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	if err := or.db.QueryRowContext(ctx, stmt, args...).Scan(&owner.ID); err != nil {
		slog.Error("Error creating owner", "error", err)
		return domain.SaveNoChange, err
	}

	return domain.SaveCreated, nil
}

func (or *OwnerRepository) Update(ctx context.Context, owner domain.Owner) (domain.SaveResult, error) {
	query := or.db.QueryBuilder.Update("owners").
		SetMap(map[string]interface{}{
			"first_name": owner.FirstName,
			"last_name":  owner.LastName,
			"gym":        owner.Gym,
			"country_id": owner.CountryID,
		}).
		Where(sq.Eq{"id": owner.ID})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := or.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating owner", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveUpdated, nil
}

func (or *OwnerRepository) Delete(ctx context.Context, id int) (domain.SaveResult, error) {
	query := or.db.QueryBuilder.Delete("owners").
		Where(sq.Eq{"id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.SaveNoChange, err
	}

	res, err := or.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting owner", "error", err)
		return domain.SaveNoChange, err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.SaveNoChange, nil
	}

	return domain.SaveDeleted, nil
}

func (or *OwnerRepository) PokemonByOwner(ctx context.Context, ownerID int) ([]domain.Pokemon, error) {
	query := or.db.QueryBuilder.Select("p.id", "p.name", "p.birth_date").
		From("pokemon p").
		Join("pokemon_owners po ON po.pokemon_id = p.id").
		Where(sq.Eq{"po.owner_id": ownerID}).
		OrderBy("p.id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := or.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing pokemon by owner", "error", err)
		return nil, err
	}

	defer rows.Close()

	return scanPokemonRows(rows)
}
