package service

import (
	"context"
	"fmt"
	"strings"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
)

type OwnerService struct {
	repo      port.OwnerRepository
	countries port.CountryRepository
}

func NewOwnerService(repo port.OwnerRepository, countries port.CountryRepository) *OwnerService {
	return &OwnerService{repo: repo, countries: countries}
}

func (os *OwnerService) List(ctx context.Context) ([]domain.Owner, error) {
	return os.repo.List(ctx)
}

func (os *OwnerService) Get(ctx context.Context, id int) (domain.Owner, error) {
	return os.repo.Get(ctx, id)
}

func (os *OwnerService) PokemonByOwner(ctx context.Context, ownerID int) ([]domain.Pokemon, error) {
	if err := os.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	return os.repo.PokemonByOwner(ctx, ownerID)
}

func (os *OwnerService) CountryByOwner(ctx context.Context, ownerID int) (domain.Country, error) {
	if err := os.requireOwner(ctx, ownerID); err != nil {
		return domain.Country{}, err
	}

	return os.countries.CountryByOwner(ctx, ownerID)
}

func (os *OwnerService) Create(ctx context.Context, countryID int, owner domain.Owner) error {
	if err := os.checkDuplicateFirstName(ctx, owner.FirstName, 0); err != nil {
		return err
	}

	found, err := os.countries.Exists(ctx, countryID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("country %d: %w", countryID, domain.ErrNotFound)
	}

	owner.CountryID = countryID

	result, err := os.repo.Create(ctx, &owner)

	if err != nil {
		return err
	}

	if result != domain.SaveCreated {
		return domain.ErrNoChange
	}

	return nil
}

func (os *OwnerService) Update(ctx context.Context, countryID int, owner domain.Owner) error {
	if err := os.requireOwner(ctx, owner.ID); err != nil {
		return err
	}

	if err := os.checkDuplicateFirstName(ctx, owner.FirstName, owner.ID); err != nil {
		return err
	}

	found, err := os.countries.Exists(ctx, countryID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("country %d: %w", countryID, domain.ErrNotFound)
	}

	owner.CountryID = countryID

	result, err := os.repo.Update(ctx, owner)

	if err != nil {
		return err
	}

	if result != domain.SaveUpdated {
		return domain.ErrNoChange
	}

	return nil
}

func (os *OwnerService) Delete(ctx context.Context, id int) error {
	if err := os.requireOwner(ctx, id); err != nil {
		return err
	}

	result, err := os.repo.Delete(ctx, id)

	if err != nil {
		return err
	}

	if result != domain.SaveDeleted {
		return domain.ErrNoChange
	}

	return nil
}

// checkDuplicateFirstName compares trimmed first names case-insensitively,
// skipping the row being updated.
func (os *OwnerService) checkDuplicateFirstName(ctx context.Context, firstName string, selfID int) error {
	owners, err := os.repo.List(ctx)

	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(firstName)

	for _, existing := range owners {
		if existing.ID == selfID {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(existing.FirstName), trimmed) {
			return fmt.Errorf("owner %s: %w", trimmed, domain.ErrConflict)
		}
	}

	return nil
}

func (os *OwnerService) requireOwner(ctx context.Context, id int) error {
	found, err := os.repo.Exists(ctx, id)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("owner %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
