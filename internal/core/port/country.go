package port

import (
	"context"

	"pokereview/internal/core/domain"
)

type CountryRepository interface {
	List(ctx context.Context) ([]domain.Country, error)
	Get(ctx context.Context, id int) (domain.Country, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, country *domain.Country) (domain.SaveResult, error)
	Update(ctx context.Context, country domain.Country) (domain.SaveResult, error)
	Delete(ctx context.Context, id int) (domain.SaveResult, error)
	CountryByOwner(ctx context.Context, ownerID int) (domain.Country, error)
}

type CountryService interface {
	List(ctx context.Context) ([]domain.Country, error)
	Get(ctx context.Context, id int) (domain.Country, error)
	CountryByOwner(ctx context.Context, ownerID int) (domain.Country, error)
	Create(ctx context.Context, country domain.Country) error
	Update(ctx context.Context, country domain.Country) error
	Delete(ctx context.Context, id int) error
}
