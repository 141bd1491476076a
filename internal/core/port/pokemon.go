package port

import (
	"context"

	"pokereview/internal/core/domain"
)

type PokemonRepository interface {
	List(ctx context.Context) ([]domain.Pokemon, error)
	Get(ctx context.Context, id int) (domain.Pokemon, error)
	Exists(ctx context.Context, id int) (bool, error)
	// Create inserts the pokemon row and its owner/category join rows in
	// one transaction.
	Create(ctx context.Context, ownerID, categoryID int, pokemon *domain.Pokemon) (domain.SaveResult, error)
	Update(ctx context.Context, ownerID, categoryID int, pokemon domain.Pokemon) (domain.SaveResult, error)
	// Delete removes dependent reviews and join rows together with the
	// pokemon row in one transaction, so a failure leaves everything
	// intact.
	Delete(ctx context.Context, id int) (domain.SaveResult, error)
	Rating(ctx context.Context, id int) (float64, error)
}

type PokemonService interface {
	List(ctx context.Context) ([]domain.Pokemon, error)
	Get(ctx context.Context, id int) (domain.Pokemon, error)
	Rating(ctx context.Context, id int) (float64, error)
	ReviewsOfPokemon(ctx context.Context, pokemonID int) ([]domain.Review, error)
	Create(ctx context.Context, ownerID, categoryID int, pokemon domain.Pokemon) error
	Update(ctx context.Context, ownerID, categoryID int, pokemon domain.Pokemon) error
	Delete(ctx context.Context, id int) error
}
