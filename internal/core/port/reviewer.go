package port

import (
	"context"

	"pokereview/internal/core/domain"
)

type ReviewerRepository interface {
	List(ctx context.Context) ([]domain.Reviewer, error)
	Get(ctx context.Context, id int) (domain.Reviewer, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, reviewer *domain.Reviewer) (domain.SaveResult, error)
	Update(ctx context.Context, reviewer domain.Reviewer) (domain.SaveResult, error)
	Delete(ctx context.Context, id int) (domain.SaveResult, error)
	ReviewsByReviewer(ctx context.Context, reviewerID int) ([]domain.Review, error)
}

type ReviewerService interface {
	List(ctx context.Context) ([]domain.Reviewer, error)
	Get(ctx context.Context, id int) (domain.Reviewer, error)
	ReviewsByReviewer(ctx context.Context, reviewerID int) ([]domain.Review, error)
	Create(ctx context.Context, reviewer domain.Reviewer) error
	Update(ctx context.Context, reviewer domain.Reviewer) error
	Delete(ctx context.Context, id int) error
}
