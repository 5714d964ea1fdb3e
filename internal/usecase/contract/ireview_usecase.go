package contract

import (
	"context"

	domaincontract "github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// CreateReviewInput is the payload for creating a review.
type CreateReviewInput struct {
	InstituteID string
	Rating      int
	Comment     string
}

// UpdateReviewInput carries the editable review fields. Nil fields are left
// untouched.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewStats is the public aggregate over approved reviews.
type ReviewStats struct {
	TotalApproved int64   `json:"totalApproved"`
	AverageRating float64 `json:"averageRating"`
	Pending       int64   `json:"pending,omitempty"`
}

// IReviewUseCase covers review CRUD, moderation and the rating aggregation
// that keeps institute stats in sync.
type IReviewUseCase interface {
	// CreateReview returns the stored review and whether it still requires
	// moderation (true for every non-admin creator).
	CreateReview(ctx context.Context, actor *entity.Actor, in CreateReviewInput) (*entity.Review, bool, error)
	GetReview(ctx context.Context, id string) (*entity.Review, error)
	ListReviews(ctx context.Context, opts *domaincontract.ReviewFilterOptions) ([]entity.Review, int64, error)
	UpdateReview(ctx context.Context, actor *entity.Actor, id string, in UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, actor *entity.Actor, id string) error
	FlagReview(ctx context.Context, actor *entity.Actor, id string, flagged bool, reason string) (*entity.Review, error)
	ApproveReview(ctx context.Context, actor *entity.Actor, id string, approved bool) (*entity.Review, error)
	GetReviewStats(ctx context.Context, instituteID string) (*ReviewStats, error)
	// RecalculateInstituteRating recomputes the mean over approved reviews
	// and overwrites the institute's denormalized stats.
	RecalculateInstituteRating(ctx context.Context, instituteID string) (float64, int, error)
}
