package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"pokereview/internal/adapter/database"
	"pokereview/internal/core/domain"
)

func exists(ctx context.Context, db *database.DB, table string, id int) (bool, error) {
	query := db.QueryBuilder.Select("1").
		From(table).
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return false, err
	}

	var one int
	err = db.QueryRowContext(ctx, stmt, args...).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func scanPokemonRows(rows *sql.Rows) ([]domain.Pokemon, error) {
	data := []domain.Pokemon{}

	for rows.Next() {
		var pokemon domain.Pokemon
		var birthDate sql.NullTime

		if err := rows.Scan(&pokemon.ID, &pokemon.Name, &birthDate); err != nil {
			return nil, err
		}

		if birthDate.Valid {
			pokemon.BirthDate = birthDate.Time
		}

		data = append(data, pokemon)
	}

	return data, rows.Err()
}

func scanReviewRows(rows *sql.Rows) ([]domain.Review, error) {
	data := []domain.Review{}

	for rows.Next() {
		var review domain.Review

		err := rows.Scan(
			&review.ID,
			&review.Title,
			&review.Text,
			&review.Rating,
			&review.PokemonID,
			&review.ReviewerID,
		)

		if err != nil {
			return nil, err
		}

		data = append(data, review)
	}

	return data, rows.Err()
}
