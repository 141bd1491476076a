package service

import (
	"context"
	"fmt"
	"strings"

	"pokereview/internal/core/domain"
	"pokereview/internal/core/port"
)

type ReviewerService struct {
	repo port.ReviewerRepository
}

func NewReviewerService(repo port.ReviewerRepository) *ReviewerService {
	return &ReviewerService{repo}
}

func (rs *ReviewerService) List(ctx context.Context) ([]domain.Reviewer, error) {
	return rs.repo.List(ctx)
}

func (rs *ReviewerService) Get(ctx context.Context, id int) (domain.Reviewer, error) {
	return rs.repo.Get(ctx, id)
}

func (rs *ReviewerService) ReviewsByReviewer(ctx context.Context, reviewerID int) ([]domain.Review, error) {
	if err := rs.requireReviewer(ctx, reviewerID); err != nil {
		return nil, err
	}

	return rs.repo.ReviewsByReviewer(ctx, reviewerID)
}

func (rs *ReviewerService) Create(ctx context.Context, reviewer domain.Reviewer) error {
	if err := rs.checkDuplicateLastName(ctx, reviewer.LastName, 0); err != nil {
		return err
	}

	result, err := rs.repo.Create(ctx, &reviewer)

	if err != nil {
		return err
	}

	if result != domain.SaveCreated {
		return domain.ErrNoChange
	}

	return nil
}

func (rs *ReviewerService) Update(ctx context.Context, reviewer domain.Reviewer) error {
	if err := rs.requireReviewer(ctx, reviewer.ID); err != nil {
		return err
	}

	if err := rs.checkDuplicateLastName(ctx, reviewer.LastName, reviewer.ID); err != nil {
		return err
	}

	result, err := rs.repo.Update(ctx, reviewer)

	if err != nil {
		return err
	}

	if result != domain.SaveUpdated {
		return domain.ErrNoChange
	}

	return nil
}

func (rs *ReviewerService) Delete(ctx context.Context, id int) error {
	if err := rs.requireReviewer(ctx, id); err != nil {
		return err
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

// checkDuplicateLastName compares trimmed last names case-insensitively,
// skipping the row being updated.
func (rs *ReviewerService) checkDuplicateLastName(ctx context.Context, lastName string, selfID int) error {
	reviewers, err := rs.repo.List(ctx)

	if err != nil {
		return err
	}

	trimmed := strings.TrimSpace(lastName)

	for _, existing := range reviewers {
		if existing.ID == selfID {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(existing.LastName), trimmed) {
			return fmt.Errorf("reviewer %s: %w", trimmed, domain.ErrConflict)
		}
	}

	return nil
}

func (rs *ReviewerService) requireReviewer(ctx context.Context, id int) error {
	found, err := rs.repo.Exists(ctx, id)

	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("reviewer %d: %w", id, domain.ErrNotFound)
	}

	return nil
}
