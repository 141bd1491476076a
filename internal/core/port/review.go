package port

import (
	"context"

	"pokereview/internal/core/domain"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Get(ctx context.Context, id int) (domain.Review, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, review *domain.Review) (domain.SaveResult, error)
	Update(ctx context.Context, review domain.Review) (domain.SaveResult, error)
	Delete(ctx context.Context, id int) (domain.SaveResult, error)
	ReviewsOfPokemon(ctx context.Context, pokemonID int) ([]domain.Review, error)
}

type ReviewService interface {
	List(ctx context.Context) ([]domain.Review, error)
	Get(ctx context.Context, id int) (domain.Review, error)
	Create(ctx context.Context, reviewerID, pokemonID int, review domain.Review) error
	Update(ctx context.Context, review domain.Review) error
	Delete(ctx context.Context, id int) error
}
