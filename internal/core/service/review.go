package service

import (
	"context"
	"fmt"
	"strings"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
)

type ReviewService struct {
	repo      port.ReviewRepository
	reviewers port.ReviewerRepository
	pokemon   port.PokemonRepository
}

func NewReviewService(
	repo port.ReviewRepository,
	reviewers port.ReviewerRepository,
	pokemon port.PokemonRepository,
) *ReviewService {
	return &ReviewService{
		repo:      repo,
		reviewers: reviewers,
		pokemon:   pokemon,
	}
}

func (rs *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return rs.repo.List(ctx)
}

func (rs *ReviewService) Get(ctx context.Context, id int) (domain.Review, error) {
	return rs.repo.Get(ctx, id)
}

func (rs *ReviewService) Create(ctx context.Context, reviewerID, pokemonID int, review domain.Review) error {
	if err := rs.checkDuplicateTitle(ctx, review.Title); err != nil {
		return err
	}

	found, err := rs.reviewers.Exists(ctx, reviewerID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("reviewer %d: %w", reviewerID, domain.ErrNotFound)
	}

	found, err = rs.pokemon.Exists(ctx, pokemonID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("pokemon %d: %w", pokemonID, domain.ErrNotFound)
	}

	review.ReviewerID = reviewerID
	review.PokemonID = pokemonID

	result, err := rs.repo.Create(ctx, &review)

	if err != nil {
		return err
	}

	if result != domain.SaveCreated {
		return domain.ErrNoChange
	}

	return nil
}

// Update rewrites title, text and rating. Title duplicates are only
// rejected at creation.
func (rs *ReviewService) Update(ctx context.Context, review domain.Review) error {
	found, err := rs.repo.Exists(ctx, review.ID)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("review %d: %w", review.ID, domain.ErrNotFound)
	}

	result, err := rs.repo.Update(ctx, review)

	if err != nil {
		return err
	}

	if result != domain.SaveUpdated {
		return domain.ErrNoChange
	}

	return nil
}

// checkDuplicateTitle compares trimmed titles case-insensitively.
func (rs *ReviewService) checkDuplicateTitle(ctx context.Context, title string) error {
	reviews, err := rs.repo.List(ctx)

	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(title)

	for _, existing := range reviews {
		if strings.EqualFold(strings.TrimSpace(existing.Title), trimmed) {
			return fmt.Errorf("review %s: %w", trimmed, domain.ErrConflict)
		}
	}

	return nil
}

func (rs *ReviewService) Delete(ctx context.Context, id int) error {
	found, err := rs.repo.Exists(ctx, id)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("review %d: %w", id, domain.ErrNotFound)
	}

	result, err := rs.repo.Delete(ctx, id)

	if err != nil {
		return err
	}

	if result != domain.SaveDeleted {
		return domain.ErrNoChange
	}

	return nil
}
