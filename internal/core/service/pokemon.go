package service

import (
	"context"
	"fmt"
	"strings"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
)

type PokemonService struct {
	repo       port.PokemonRepository
	owners     port.OwnerRepository
	categories port.CategoryRepository
	reviews    port.ReviewRepository
}

func NewPokemonService(
	repo port.PokemonRepository,
	owners port.OwnerRepository,
	categories port.CategoryRepository,
	reviews port.ReviewRepository,
) *PokemonService {
	return &PokemonService{
		repo:       repo,
		owners:     owners,
		categories: categories,
		reviews:    reviews,
	}
}

func (ps *PokemonService) List(ctx context.Context) ([]domain.Pokemon, error) {
	return ps.repo.List(ctx)
}

func (ps *PokemonService) Get(ctx context.Context, id int) (domain.Pokemon, error) {
	return ps.repo.Get(ctx, id)
}

func (ps *PokemonService) Rating(ctx context.Context, id int) (float64, error) {
	if err := ps.requirePokemon(ctx, id); err != nil {
		return 0, err
	}

	return ps.repo.Rating(ctx, id)
}

func (ps *PokemonService) ReviewsOfPokemon(ctx context.Context, pokemonID int) ([]domain.Review, error) {
	if err := ps.requirePokemon(ctx, pokemonID); err != nil {
		return nil, err
	}

	return ps.reviews.ReviewsOfPokemon(ctx, pokemonID)
}

func (ps *PokemonService) Create(ctx context.Context, ownerID, categoryID int, pokemon domain.Pokemon) error {
	if err := ps.requireRelations(ctx, ownerID, categoryID); err != nil {
		return err
	}

	if err := ps.checkDuplicateName(ctx, pokemon.Name, 0); err != nil {
		return err
	}

	result, err := ps.repo.Create(ctx, ownerID, categoryID, &pokemon)

	if err != nil {
		return err
	}

	if result != domain.SaveCreated {
		return domain.ErrNoChange
	}

	return nil
}

func (ps *PokemonService) Update(ctx context.Context, ownerID, categoryID int, pokemon domain.Pokemon) error {
	if err := ps.requirePokemon(ctx, pokemon.ID); err != nil {
		return err
	}

	if err := ps.requireRelations(ctx, ownerID, categoryID); err != nil {
		return err
	}

	if err := ps.checkDuplicateName(ctx, pokemon.Name, pokemon.ID); err != nil {
		return err
	}

	result, err := ps.repo.Update(ctx, ownerID, categoryID, pokemon)

	if err != nil {
		return err
	}

	if result != domain.SaveUpdated {
		return domain.ErrNoChange
	}

	return nil
}

// Delete removes the pokemon together with its reviews, all or nothing.
func (ps *PokemonService) Delete(ctx context.Context, id int) error {
	if err := ps.requirePokemon(ctx, id); err != nil {
		return err
	}

	result, err := ps.repo.Delete(ctx, id)

	if err != nil {
		return err
	}

	if result != domain.SaveDeleted {
		return domain.ErrNoChange
	}

	return nil
}

func (ps *PokemonService) requirePokemon(ctx context.Context, id int) error {
	found, err := ps.repo.Exists(ctx, id)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("pokemon %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (ps *PokemonService) requireRelations(ctx context.Context, ownerID, categoryID int) error {
	found, err := ps.owners.Exists(ctx, ownerID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("owner %d: %w", ownerID, domain.ErrNotFound)
	}

	found, err = ps.categories.Exists(ctx, categoryID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}

	return nil
}

func (ps *PokemonService) checkDuplicateName(ctx context.Context, name string, selfID int) error {
	pokemon, err := ps.repo.List(ctx)

	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(name)

	for _, existing := range pokemon {
		if existing.ID == selfID {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(existing.Name), trimmed) {
			return fmt.Errorf("pokemon %s: %w", trimmed, domain.ErrConflict)
		}
	}

	return nil
}
