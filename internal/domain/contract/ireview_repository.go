package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// ReviewFilterOptions carries the optional review list filters.
type ReviewFilterOptions struct {
	InstituteID *string
	UserID      *string
	Approved    *bool
	Flagged     *bool
	Page        int
	Limit       int
}

// IReviewRepository persists reviews.
type IReviewRepository interface {
	CreateReview(ctx context.Context, review *entity.Review) error
	GetReviewByID(ctx context.Context, id string) (*entity.Review, error)
	// GetReviewByUserAndInstitute enforces lookup for the one-review-per-user-
	// per-institute invariant.
	GetReviewByUserAndInstitute(ctx context.Context, userID, instituteID string) (*entity.Review, error)
	// ListApprovedByInstitute returns every approved review for the institute;
	// this is the aggregator's source set.
	ListApprovedByInstitute(ctx context.Context, instituteID string) ([]entity.Review, error)
	ListReviews(ctx context.Context, opts *ReviewFilterOptions) ([]entity.Review, int64, error)
	UpdateReview(ctx context.Context, id string, updates map[string]interface{}) (*entity.Review, error)
	DeleteReview(ctx context.Context, id string) error
	CountReviews(ctx context.Context) (int64, error)
	CountPendingApproval(ctx context.Context) (int64, error)
}
