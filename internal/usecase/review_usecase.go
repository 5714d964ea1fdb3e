package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// ReviewUsecase handles review CRUD, moderation and the rating aggregation
// that keeps institute stats in sync with the approved review set.
type ReviewUsecase struct {
	reviewRepo    contract.IReviewRepository
	instituteRepo contract.IInstituteRepository
	userRepo      contract.IUserRepository
	uuidGen       contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.IReviewUseCase = (*ReviewUsecase)(nil)

// NewReviewUsecase creates and returns a new ReviewUsecase instance.
func NewReviewUsecase(
	reviewRepo contract.IReviewRepository,
	instituteRepo contract.IInstituteRepository,
	userRepo contract.IUserRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:    reviewRepo,
		instituteRepo: instituteRepo,
		userRepo:      userRepo,
		uuidGen:       uuidGen,
		logger:        logger,
	}
}

// CreateReview stores a new review. Reviews created by admins are approved
// immediately and fold into the institute rating; everyone else's review
// waits for moderation. The second return value reports whether moderation
// is still required.
func (u *ReviewUsecase) CreateReview(ctx context.Context, actor *entity.Actor, in usecasecontract.CreateReviewInput) (*entity.Review, bool, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, false, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}
	if _, err := u.instituteRepo.GetInstituteByID(ctx, in.InstituteID); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, false, fmt.Errorf("%w: institute", contract.ErrNotFound)
		}
		return nil, false, err
	}

	// One review per user per institute.
	if existing, err := u.reviewRepo.GetReviewByUserAndInstitute(ctx, actor.ID, in.InstituteID); err == nil && existing != nil {
		return nil, false, ErrDuplicateReview
	}

	autoApproved := actor.IsAdmin()
	review := &entity.Review{
		ID:          u.uuidGen.NewUUID(),
		UserID:      actor.ID,
		InstituteID: in.InstituteID,
		Rating:      in.Rating,
		Comment:     in.Comment,
		Approved:    autoApproved,
	}
	if autoApproved {
		review.Approval = &entity.ReviewAudit{By: actor.ID, At: time.Now()}
	}

	if err := u.reviewRepo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, false, ErrDuplicateReview
		}
		return nil, false, err
	}

	if autoApproved {
		u.recalculate(ctx, in.InstituteID)
	}
	return review, !autoApproved, nil
}

func (u *ReviewUsecase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	return u.reviewRepo.GetReviewByID(ctx, id)
}

func (u *ReviewUsecase) ListReviews(ctx context.Context, opts *contract.ReviewFilterOptions) ([]entity.Review, int64, error) {
	return u.reviewRepo.ListReviews(ctx, opts)
}

// UpdateReview edits rating/comment. Only the owning user or an admin may
// edit; a rating change retriggers the aggregate recompute.
func (u *ReviewUsecase) UpdateReview(ctx context.Context, actor *entity.Actor, id string, in usecasecontract.UpdateReviewInput) (*entity.Review, error) {
	review, err := u.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{}
	ratingChanged := false
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
		}
		if *in.Rating != review.Rating {
			ratingChanged = true
		}
		updates["rating"] = *in.Rating
	}
	if in.Comment != nil {
		updates["comment"] = *in.Comment
	}
	if len(updates) == 0 {
		return review, nil
	}

	updated, err := u.reviewRepo.UpdateReview(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if ratingChanged {
		u.recalculate(ctx, review.InstituteID)
	}
	return updated, nil
}

// DeleteReview removes a review (owner or admin) and retriggers the
// aggregate recompute.
func (u *ReviewUsecase) DeleteReview(ctx context.Context, actor *entity.Actor, id string) error {
	review, err := u.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if review.UserID != actor.ID && !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := u.reviewRepo.DeleteReview(ctx, id); err != nil {
		return err
	}
	u.recalculate(ctx, review.InstituteID)
	return nil
}

// FlagReview marks a review for moderation. Flagging always forces
// approved=false; unflagging clears the flag but does not restore approval.
func (u *ReviewUsecase) FlagReview(ctx context.Context, actor *entity.Actor, id string, flagged bool, reason string) (*entity.Review, error) {
	review, err := u.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"flagged": flagged}
	if flagged {
		updates["approved"] = false
		updates["flag_reason"] = reason
		updates["flag"] = &entity.ReviewAudit{By: actor.ID, At: time.Now()}
	} else {
		updates["flag_reason"] = ""
		updates["flag"] = nil
	}

	updated, err := u.reviewRepo.UpdateReview(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	u.recalculate(ctx, review.InstituteID)
	return updated, nil
}

// ApproveReview sets the approved bit. Approving always forces flagged=false
// and clears any flag reason.
func (u *ReviewUsecase) ApproveReview(ctx context.Context, actor *entity.Actor, id string, approved bool) (*entity.Review, error) {
	review, err := u.reviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"approved": approved}
	if approved {
		updates["flagged"] = false
		updates["flag_reason"] = ""
		updates["flag"] = nil
		updates["approval"] = &entity.ReviewAudit{By: actor.ID, At: time.Now()}
	} else {
		updates["approval"] = nil
	}

	updated, err := u.reviewRepo.UpdateReview(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	u.recalculate(ctx, review.InstituteID)
	return updated, nil
}

// GetReviewStats returns the public aggregate. With an institute id it
// reports that institute's approved set; without one it reports platform
// totals.
func (u *ReviewUsecase) GetReviewStats(ctx context.Context, instituteID string) (*usecasecontract.ReviewStats, error) {
	if instituteID != "" {
		reviews, err := u.reviewRepo.ListApprovedByInstitute(ctx, instituteID)
		if err != nil {
			return nil, err
		}
		rating, count := aggregateRating(reviews)
		return &usecasecontract.ReviewStats{
			TotalApproved: int64(count),
			AverageRating: rating,
		}, nil
	}

	total, err := u.reviewRepo.CountReviews(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.reviewRepo.CountPendingApproval(ctx)
	if err != nil {
		return nil, err
	}
	return &usecasecontract.ReviewStats{TotalApproved: total - pending, Pending: pending}, nil
}

// RecalculateInstituteRating recomputes the arithmetic mean over the
// institute's approved reviews and unconditionally overwrites the
// denormalized stats. An empty approved set yields rating 0, count 0.
func (u *ReviewUsecase) RecalculateInstituteRating(ctx context.Context, instituteID string) (float64, int, error) {
	reviews, err := u.reviewRepo.ListApprovedByInstitute(ctx, instituteID)
	if err != nil {
		return 0, 0, err
	}
	rating, count := aggregateRating(reviews)
	if err := u.instituteRepo.UpdateRatingStats(ctx, instituteID, rating, count); err != nil {
		return 0, 0, err
	}
	return rating, count, nil
}

// recalculate runs the aggregator as a post-condition of a review mutation.
// Its errors are logged and swallowed: the primary action has already been
// committed and still reports success, so the cached rating may lag until
// the next successful recompute.
func (u *ReviewUsecase) recalculate(ctx context.Context, instituteID string) {
	if _, _, err := u.RecalculateInstituteRating(ctx, instituteID); err != nil {
		u.logger.Errorf("rating recompute failed for institute %s: %v", instituteID, err)
	}
}

// aggregateRating computes the mean rating rounded half-away-from-zero at
// the tenths digit.
func aggregateRating(reviews []entity.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10, len(reviews)
}
