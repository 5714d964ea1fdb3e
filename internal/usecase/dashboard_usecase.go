package usecase

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// DashboardUsecase builds the role-branching dashboard views.
type DashboardUsecase struct {
	userRepo      contract.IUserRepository
	instituteRepo contract.IInstituteRepository
	courseRepo    contract.ICourseRepository
	enquiryRepo   contract.IEnquiryRepository
	reviewRepo    contract.IReviewRepository
}

var _ usecasecontract.IDashboardUseCase = (*DashboardUsecase)(nil)

// NewDashboardUsecase creates and returns a new DashboardUsecase instance.
func NewDashboardUsecase(
	userRepo contract.IUserRepository,
	instituteRepo contract.IInstituteRepository,
	courseRepo contract.ICourseRepository,
	enquiryRepo contract.IEnquiryRepository,
	reviewRepo contract.IReviewRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo:      userRepo,
		instituteRepo: instituteRepo,
		courseRepo:    courseRepo,
		enquiryRepo:   enquiryRepo,
		reviewRepo:    reviewRepo,
	}
}

// userOverview is the student-facing dashboard payload.
type userOverview struct {
	Reviews   []entity.Review  `json:"reviews"`
	Enquiries []entity.Enquiry `json:"enquiries"`
}

// GetOverview branches on the actor's role and returns the matching view.
func (u *DashboardUsecase) GetOverview(ctx context.Context, actor *entity.Actor) (interface{}, error) {
	switch actor.Role {
	case entity.RoleAdmin:
		return u.GetPlatformStats(ctx)
	case entity.RoleInstitute:
		return u.GetInstituteStats(ctx, actor, actor.InstituteID)
	default:
		reviews, _, err := u.reviewRepo.ListReviews(ctx, &contract.ReviewFilterOptions{UserID: &actor.ID, Limit: 20})
		if err != nil {
			return nil, err
		}
		return &userOverview{Reviews: reviews, Enquiries: []entity.Enquiry{}}, nil
	}
}

// GetInstituteStats assembles the per-institute aggregate view. The rating
// block is read from the institute's denormalized stats, not recomputed.
func (u *DashboardUsecase) GetInstituteStats(ctx context.Context, actor *entity.Actor, instituteID string) (*usecasecontract.InstituteDashboardStats, error) {
	if actor.Role == entity.RoleInstitute {
		instituteID = actor.InstituteID
	}
	institute, err := u.instituteRepo.GetInstituteByID(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	courses, err := u.courseRepo.CountCoursesByInstitute(ctx, instituteID)
	if err != nil {
		return nil, err
	}
	counts, err := u.enquiryRepo.CountByStatus(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	enquiries := usecasecontract.EnquiryStats{
		Pending:   counts[entity.EnquiryStatusPending],
		Replied:   counts[entity.EnquiryStatusReplied],
		Resolved:  counts[entity.EnquiryStatusResolved],
		Cancelled: counts[entity.EnquiryStatusCancelled],
	}
	enquiries.Total = enquiries.Pending + enquiries.Replied + enquiries.Resolved + enquiries.Cancelled

	return &usecasecontract.InstituteDashboardStats{
		InstituteID:  instituteID,
		Rating:       institute.Stats.Rating,
		ReviewsCount: institute.Stats.ReviewsCount,
		Courses:      courses,
		Enquiries:    enquiries,
	}, nil
}

// GetPlatformStats assembles the admin-facing platform totals.
func (u *DashboardUsecase) GetPlatformStats(ctx context.Context) (*usecasecontract.PlatformStats, error) {
	users, err := u.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	institutes, err := u.instituteRepo.CountInstitutes(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := u.courseRepo.CountCourses(ctx)
	if err != nil {
		return nil, err
	}
	enquiries, err := u.enquiryRepo.CountEnquiries(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := u.reviewRepo.CountReviews(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.reviewRepo.CountPendingApproval(ctx)
	if err != nil {
		return nil, err
	}

	return &usecasecontract.PlatformStats{
		Users:          users,
		Institutes:     institutes,
		Courses:        courses,
		Enquiries:      enquiries,
		Reviews:        reviews,
		PendingReviews: pending,
	}, nil
}
