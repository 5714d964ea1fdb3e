package mocks

import (
	"context"
	"time"

	domaincontract "github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// MockReviewUsecase is a mock implementation of the IReviewUseCase interface
type MockReviewUsecase struct {
	// Control mock behavior
	ShouldFailCreate    bool
	DuplicateReview     bool
	ReviewNotFound      bool
	ShouldFailForbidden bool
	ShouldFailList      bool

	// Return values
	MockReview       entity.Review
	MockStats        usecasecontract.ReviewStats
	RequiresApproval bool
}

var _ usecasecontract.IReviewUseCase = (*MockReviewUsecase)(nil)

func NewMockReviewUsecase() *MockReviewUsecase {
	return &MockReviewUsecase{
		MockReview: entity.Review{
			ID:          "mock-review-id",
			UserID:      "mock-user-id",
			InstituteID: "mock-institute-id",
			Rating:      4,
			Comment:     "Solid teaching staff",
			Approved:    false,
			CreatedAt:   time.Now(),
		},
		MockStats: usecasecontract.ReviewStats{
			TotalApproved: 2,
			AverageRating: 4.0,
		},
		RequiresApproval: true,
	}
}

func (m *MockReviewUsecase) CreateReview(ctx context.Context, actor *entity.Actor, in usecasecontract.CreateReviewInput) (*entity.Review, bool, error) {
	if m.DuplicateReview {
		return nil, false, usecase.ErrDuplicateReview
	}
	if m.ShouldFailCreate {
		return nil, false, usecase.ErrInvalidInput
	}
	review := m.MockReview
	review.UserID = actor.ID
	review.InstituteID = in.InstituteID
	review.Rating = in.Rating
	review.Comment = in.Comment
	review.Approved = !m.RequiresApproval
	return &review, m.RequiresApproval, nil
}

func (m *MockReviewUsecase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	if m.ReviewNotFound {
		return nil, domaincontract.ErrNotFound
	}
	review := m.MockReview
	review.ID = id
	return &review, nil
}

func (m *MockReviewUsecase) ListReviews(ctx context.Context, opts *domaincontract.ReviewFilterOptions) ([]entity.Review, int64, error) {
	if m.ShouldFailList {
		return nil, 0, context.DeadlineExceeded
	}
	return []entity.Review{m.MockReview}, 1, nil
}

func (m *MockReviewUsecase) UpdateReview(ctx context.Context, actor *entity.Actor, id string, in usecasecontract.UpdateReviewInput) (*entity.Review, error) {
	if m.ReviewNotFound {
		return nil, domaincontract.ErrNotFound
	}
	if m.ShouldFailForbidden {
		return nil, usecase.ErrForbidden
	}
	review := m.MockReview
	review.ID = id
	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.Comment != nil {
		review.Comment = *in.Comment
	}
	return &review, nil
}

func (m *MockReviewUsecase) DeleteReview(ctx context.Context, actor *entity.Actor, id string) error {
	if m.ReviewNotFound {
		return domaincontract.ErrNotFound
	}
	if m.ShouldFailForbidden {
		return usecase.ErrForbidden
	}
	return nil
}

func (m *MockReviewUsecase) FlagReview(ctx context.Context, actor *entity.Actor, id string, flagged bool, reason string) (*entity.Review, error) {
	if m.ReviewNotFound {
		return nil, domaincontract.ErrNotFound
	}
	review := m.MockReview
	review.ID = id
	review.Flagged = flagged
	if flagged {
		review.Approved = false
		review.FlagReason = reason
	} else {
		review.FlagReason = ""
	}
	return &review, nil
}

func (m *MockReviewUsecase) ApproveReview(ctx context.Context, actor *entity.Actor, id string, approved bool) (*entity.Review, error) {
	if m.ReviewNotFound {
		return nil, domaincontract.ErrNotFound
	}
	review := m.MockReview
	review.ID = id
	review.Approved = approved
	if approved {
		review.Flagged = false
		review.FlagReason = ""
	}
	return &review, nil
}

func (m *MockReviewUsecase) GetReviewStats(ctx context.Context, instituteID string) (*usecasecontract.ReviewStats, error) {
	stats := m.MockStats
	return &stats, nil
}

func (m *MockReviewUsecase) RecalculateInstituteRating(ctx context.Context, instituteID string) (float64, int, error) {
	return m.MockStats.AverageRating, int(m.MockStats.TotalApproved), nil
}
