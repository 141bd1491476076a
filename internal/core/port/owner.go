package port

import (
	"context"

	"pokereview/internal/core/domain"
)

type OwnerRepository interface {
	List(ctx context.Context) ([]domain.Owner, error)
	Get(ctx context.Context, id int) (domain.Owner, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, owner *domain.Owner) (domain.SaveResult, error)
	Update(ctx context.Context, owner domain.Owner) (domain.SaveResult, error)
	Delete(ctx context.Context, id int) (domain.SaveResult, error)
	PokemonByOwner(ctx context.Context, ownerID int) ([]domain.Pokemon, error)
}

type OwnerService interface {
	List(ctx context.Context) ([]domain.Owner, error)
	Get(ctx context.Context, id int) (domain.Owner, error)
	PokemonByOwner(ctx context.Context, ownerID int) ([]domain.Pokemon, error)
	CountryByOwner(ctx context.Context, ownerID int) (domain.Country, error)
	Create(ctx context.Context, countryID int, owner domain.Owner) error
	Update(ctx context.Context, countryID int, owner domain.Owner) error
	Delete(ctx context.Context, id int) error
}
