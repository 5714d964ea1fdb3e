package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// PlatformStats is the admin-facing platform-wide aggregate.
type PlatformStats struct {
	Users          int64 `json:"users"`
	Institutes     int64 `json:"institutes"`
	Courses        int64 `json:"courses"`
	Enquiries      int64 `json:"enquiries"`
	Reviews        int64 `json:"reviews"`
	PendingReviews int64 `json:"pendingReviews"`
}

// InstituteDashboardStats is the per-institute aggregate view.
type InstituteDashboardStats struct {
	InstituteID  string       `json:"instituteId"`
	Rating       float64      `json:"rating"`
	ReviewsCount int          `json:"reviewsCount"`
	Courses      int64        `json:"courses"`
	Enquiries    EnquiryStats `json:"enquiries"`
}

// IDashboardUseCase builds the role-branching dashboard views.
type IDashboardUseCase interface {
	// GetOverview branches on the actor's role and returns the matching view.
	GetOverview(ctx context.Context, actor *entity.Actor) (interface{}, error)
	GetInstituteStats(ctx context.Context, actor *entity.Actor, instituteID string) (*InstituteDashboardStats, error)
	GetPlatformStats(ctx context.Context) (*PlatformStats, error)
}
