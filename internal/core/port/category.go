package port

import (
	"context"

	"pokereview/internal/core/domain"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (domain.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, category *domain.Category) (domain.SaveResult, error)
	Update(ctx context.Context, category domain.Category) (domain.SaveResult, error)
	Delete(ctx context.Context, id int) (domain.SaveResult, error)
	PokemonByCategory(ctx context.Context, categoryID int) ([]domain.Pokemon, error)
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int) (domain.Category, error)
	PokemonByCategory(ctx context.Context, categoryID int) ([]domain.Pokemon, error)
	Create(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, category domain.Category) error
	Delete(ctx context.Context, id int) error
}
