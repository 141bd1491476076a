package service

import (
	"context"
	"fmt"
	"strings"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
)

type CategoryService struct {
	repo port.CategoryRepository
}

func NewCategoryService(repo port.CategoryRepository) *CategoryService {
	return &CategoryService{repo}
}

func (cs *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return cs.repo.List(ctx)
}

func (cs *CategoryService) Get(ctx context.Context, id int) (domain.Category, error) {
	return cs.repo.Get(ctx, id)
}

func (cs *CategoryService) PokemonByCategory(ctx context.Context, categoryID int) ([]domain.Pokemon, error) {
	found, err := cs.repo.Exists(ctx, categoryID)

	if err != nil {
		return nil, err
	}

	if !found {
		return nil, fmt.Errorf("category %d: %w", categoryID, domain.ErrNotFound)
	}

	return cs.repo.PokemonByCategory(ctx, categoryID)
}

func (cs *CategoryService) Create(ctx context.Context, category domain.Category) error {
	if err := cs.checkDuplicateName(ctx, category.Name, 0); err != nil {
		return err
	}

	result, err := cs.repo.Create(ctx, &category)

	if err != nil {
		return err
	}

	if result != domain.SaveCreated {
		return domain.ErrNoChange
	}

	return nil
}

func (cs *CategoryService) Update(ctx context.Context, category domain.Category) error {
	found, err := cs.repo.Exists(ctx, category.ID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("category %d: %w", category.ID, domain.ErrNotFound)
	}

	if err := cs.checkDuplicateName(ctx, category.Name, category.ID); err != nil {
		return err
	}

	result, err := cs.repo.Update(ctx, category)

	if err != nil {
		return err
	}

	if result != domain.SaveUpdated {
		return domain.ErrNoChange
	}

	return nil
}

func (cs *CategoryService) Delete(ctx context.Context, id int) error {
	found, err := cs.repo.Exists(ctx, id)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
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

// checkDuplicateName compares trimmed names case-insensitively, skipping
// the row being updated.
func (cs *CategoryService) checkDuplicateName(ctx context.Context, name string, selfID int) error {
	categories, err := cs.repo.List(ctx)

	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(name)

	for _, existing := range categories {
		if existing.ID == selfID {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(existing.Name), trimmed) {
			return fmt.Errorf("category %s: %w", trimmed, domain.ErrConflict)
		}
	}

	return nil
}
