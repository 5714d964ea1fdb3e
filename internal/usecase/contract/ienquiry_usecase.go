package contract

import (
	"context"

	domaincontract "github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// CreateEnquiryInput is the payload for a public enquiry submission.
type CreateEnquiryInput struct {
	InstituteID string
	CourseID    string
	Name        string
	Email       string
	Phone       string
	Message     string
}

// EnquiryStats is the per-status breakdown of enquiries.
type EnquiryStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Replied   int64 `json:"replied"`
	Resolved  int64 `json:"resolved"`
	Cancelled int64 `json:"cancelled"`
}

// IEnquiryUseCase covers enquiry intake, the reply flow and stats.
// Institute actors are scoped to their own enquiries throughout.
type IEnquiryUseCase interface {
	// CreateEnquiry accepts a public submission; actor may be nil and, when
	// present, links the enquiry to the submitting user.
	CreateEnquiry(ctx context.Context, actor *entity.Actor, in CreateEnquiryInput) (*entity.Enquiry, error)
	GetEnquiry(ctx context.Context, actor *entity.Actor, id string) (*entity.Enquiry, error)
	ListEnquiries(ctx context.Context, actor *entity.Actor, opts *domaincontract.EnquiryFilterOptions) ([]entity.Enquiry, int64, error)
	ReplyEnquiry(ctx context.Context, actor *entity.Actor, id, message string) (*entity.Enquiry, error)
	UpdateEnquiryStatus(ctx context.Context, actor *entity.Actor, id string, status entity.EnquiryStatus) (*entity.Enquiry, error)
	DeleteEnquiry(ctx context.Context, actor *entity.Actor, id string) error
	GetEnquiryStats(ctx context.Context, actor *entity.Actor) (*EnquiryStats, error)
}
