package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"

	"pokereview/internal/adapter/database"
	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
	tel "pokereview/internal/core/telemetry"
)

type PokemonRepository struct {
	db    *database.DB
	probe port.Telemetry
}

func NewPokemonRepository(db *database.DB, probe port.Telemetry) port.PokemonRepository {
	if probe == nil {
		probe = tel.NewNoOpProbe()
	}

	return &PokemonRepository{db: db, probe: probe}
}

func (pr *PokemonRepository) List(ctx context.Context) ([]domain.Pokemon, error) {
	query := pr.db.QueryBuilder.Select("id", "name", "birth_date").
		From("pokemon").
		OrderBy("id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := pr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing pokemon", "error", err)
		return nil, err
	}

	defer rows.Close()

	return scanPokemonRows(rows)
}

func (pr *PokemonRepository) Get(ctx context.Context, id int) (domain.Pokemon, error) {
	query := pr.db.QueryBuilder.Select("id", "name", "birth_date").
		From("pokemon").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Pokemon{}, err
	}

	var pokemon domain.Pokemon
	var birthDate sql.NullTime

	err = pr.db.QueryRowContext(ctx, stmt, args...).Scan(&pokemon.ID, &pokemon.Name, &birthDate)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Pokemon{}, fmt.Errorf("pokemon %d: %w", id, domain.ErrNotFound)
	}

	if err != nil {
		slog.Error("Error getting pokemon", "error", err)
		return domain.Pokemon{}, err
	}

	if birthDate.Valid {
		pokemon.BirthDate = birthDate.Time
	}

	return pokemon, nil
}

func (pr *PokemonRepository) Exists(ctx context.Context, id int) (bool, error) {
	return exists(ctx, pr.db, "pokemon", id)
}

// Create inserts the pokemon row and its owner/category join rows in
// one transaction, so a half-linked pokemon never becomes visible.
func (pr *PokemonRepository) Create(ctx context.Context, ownerID, categoryID int, pokemon *domain.Pokemon) (domain.SaveResult, error) {
	ctx, span := pr.probe.StartRepositorySpan(ctx, "create", "pokemon", nil)
	defer span.End()

	start := time.Now()

	err := pr.db.WithTx(ctx, func(tx *sql.Tx) error {
		insert := pr.db.QueryBuilder.Insert("pokemon").
			Columns("name", "birth_date").
			Values(pokemon.Name, pokemon.BirthDate).
			Suffix("RETURNING id")

		stmt, args, err := insert.ToSql()

		if err != nil {
			return err
		}

		if err := tx.QueryRowContext(ctx, stmt, args...).Scan(&pokemon.ID); err != nil {
			return err
		}

		if err := pr.insertJoins(ctx, tx, pokemon.ID, ownerID, categoryID); err != nil {
			return err
		}

		return nil
	})

	pr.probe.RecordRepositoryOperation(ctx, "create", "pokemon", time.Since(start), err)

	if err != nil {
		slog.Error("Error creating pokemon", "error", err)
		return domain.SaveNoChange, err
	}

	return domain.SaveCreated, nil
}

// Update replaces the pokemon row and relinks owner/category in one
// transaction.
func (pr *PokemonRepository) Update(ctx context.Context, ownerID, categoryID int, pokemon domain.Pokemon) (domain.SaveResult, error) {
	err := pr.db.WithTx(ctx, func(tx *sql.Tx) error {
		update := pr.db.QueryBuilder.Update("pokemon").
			SetMap(map[string]interface{}{
				"name":       pokemon.Name,
				"birth_date": pokemon.BirthDate,
			}).
			Where(sq.Eq{"id": pokemon.ID})

		stmt, args, err := update.ToSql()

		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, stmt, args...)

		if err != nil {
			return err
		}

		if affected, _ := res.RowsAffected(); affected == 0 {
			return domain.ErrNoChange
		}

		if err := pr.deleteJoins(ctx, tx, pokemon.ID); err != nil {
			return err
		}

		return pr.insertJoins(ctx, tx, pokemon.ID, ownerID, categoryID)
	})

	if errors.Is(err, domain.ErrNoChange) {
		return domain.SaveNoChange, nil
	}

	if err != nil {
		slog.Error("Error updating pokemon", "error", err)
		return domain.SaveNoChange, err
	}

	return domain.SaveUpdated, nil
}

// Delete removes dependent reviews and join rows together with the
// pokemon row. One transaction: a failure anywhere leaves the pokemon
// and every review intact.
func (pr *PokemonRepository) Delete(ctx context.Context, id int) (domain.SaveResult, error) {
	ctx, span := pr.probe.StartRepositorySpan(ctx, "delete", "pokemon", nil)
	defer span.End()

	err := pr.db.WithTx(ctx, func(tx *sql.Tx) error {
		deletes := []sq.DeleteBuilder{
			pr.db.QueryBuilder.Delete("reviews").Where(sq.Eq{"pokemon_id": id}),
			pr.db.QueryBuilder.Delete("pokemon_categories").Where(sq.Eq{"pokemon_id": id}),
			pr.db.QueryBuilder.Delete("pokemon_owners").Where(sq.Eq{"pokemon_id": id}),
		}

		for _, del := range deletes {
			stmt, args, err := del.ToSql()

			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
				return err
			}
		}

		stmt, args, err := pr.db.QueryBuilder.Delete("pokemon").Where(sq.Eq{"id": id}).ToSql()

		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, stmt, args...)

		if err != nil {
			return err
		}

		if affected, _ := res.RowsAffected(); affected == 0 {
			return domain.ErrNoChange
		}

		return nil
	})

	if errors.Is(err, domain.ErrNoChange) {
		return domain.SaveNoChange, nil
	}

	if err != nil {
		slog.Error("Error deleting pokemon", "error", err)
		return domain.SaveNoChange, err
	}

	pr.probe.RecordBusinessEvent(ctx, "pokemon.deleted", "pokemon", id)

	return domain.SaveDeleted, nil
}

// Rating returns the average review rating, 0 when unreviewed.
func (pr *PokemonRepository) Rating(ctx context.Context, id int) (float64, error) {
	query := pr.db.QueryBuilder.Select("COALESCE(AVG(rating), 0)").
		From("reviews").
		Where(sq.Eq{"pokemon_id": id})

	stmt, args, err := query.ToSql()

	if err != nil {
		return 0, err
	}

	var rating float64

	if err := pr.db.QueryRowContext(ctx, stmt, args...).Scan(&rating); err != nil {
		slog.Error("Error getting pokemon rating", "error", err)
		return 0, err
	}

	return rating, nil
}

func (pr *PokemonRepository) insertJoins(ctx context.Context, tx *sql.Tx, pokemonID, ownerID, categoryID int) error {
	ownerJoin := pr.db.QueryBuilder.Insert("pokemon_owners").
		Columns("pokemon_id", "owner_id").
		Values(pokemonID, ownerID)

	stmt, args, err := ownerJoin.ToSql()

	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return err
	}

	categoryJoin := pr.db.QueryBuilder.Insert("pokemon_categories").
		Columns("pokemon_id", "category_id").
		Values(pokemonID, categoryID)

	stmt, args, err = categoryJoin.ToSql()

	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, stmt, args...)

	return err
}

func (pr *PokemonRepository) deleteJoins(ctx context.Context, tx *sql.Tx, pokemonID int) error {
	for _, table := range []string{"pokemon_owners", "pokemon_categories"} {
		stmt, args, err := pr.db.QueryBuilder.Delete(table).Where(sq.Eq{"pokemon_id": pokemonID}).ToSql()

		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return err
		}
	}

	return nil
}
