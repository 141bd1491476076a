package service

import (
	"context"
	"fmt"
	"strings"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
)

type CountryService struct {
	repo port.CountryRepository
}

func NewCountryService(repo port.CountryRepository) *CountryService {
	return &CountryService{repo}
}

func (cs *CountryService) List(ctx context.Context) ([]domain.Country, error) {
	return cs.repo.List(ctx)
}

func (cs *CountryService) Get(ctx context.Context, id int) (domain.Country, error) {
	return cs.repo.Get(ctx, id)
}

func (cs *CountryService) CountryByOwner(ctx context.Context, ownerID int) (domain.Country, error) {
	return cs.repo.CountryByOwner(ctx, ownerID)
}

func (cs *CountryService) Create(ctx context.Context, country domain.Country) error {
	if err := cs.checkDuplicateName(ctx, country.Name, 0); err != nil {
		return err
	}

	result, err := cs.repo.Create(ctx, &country)

	if err != nil {
		return err
	}

	if result != domain.SaveCreated {
		return domain.ErrNoChange
	}

	return nil
}

func (cs *CountryService) Update(ctx context.Context, country domain.Country) error {
	found, err := cs.repo.Exists(ctx, country.ID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("country %d: %w", country.ID, domain.ErrNotFound)
	}

	if err := cs.checkDuplicateName(ctx, country.Name, country.ID); err != nil {
		return err
	}

	result, err := cs.repo.Update(ctx, country)

	if err != nil {
		return err
	}

	if result != domain.SaveUpdated {
		return domain.ErrNoChange
	}

	return nil
}

func (cs *CountryService) Delete(ctx context.Context, id int) error {
	found, err := cs.repo.Exists(ctx, id)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("country %d: %w", id, domain.ErrNotFound)
	}

	result, err := cs.repo.Delete(ctx, id)

	if err != nil {
		return err
	}

	if result != domain.SaveDeleted {
		return domain.ErrNoChange
	}

	return nil
}

func (cs *CountryService) checkDuplicateName(ctx context.Context, name string, selfID int) error {
	countries, err := cs.repo.List(ctx)

	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(name)

	for _, existing := range countries {
		if existing.ID == selfID {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(existing.Name), trimmed) {
			return fmt.Errorf("country %s: %w", trimmed, domain.ErrConflict)
		}
	}

	return nil
}
