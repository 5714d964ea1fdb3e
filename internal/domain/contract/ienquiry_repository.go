package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// EnquiryFilterOptions carries the optional enquiry list filters.
type EnquiryFilterOptions struct {
	InstituteID *string
	Status      *entity.EnquiryStatus
	Page        int
	Limit       int
}

// IEnquiryRepository persists enquiries.
type IEnquiryRepository interface {
	CreateEnquiry(ctx context.Context, enquiry *entity.Enquiry) error
	GetEnquiryByID(ctx context.Context, id string) (*entity.Enquiry, error)
	ListEnquiries(ctx context.Context, opts *EnquiryFilterOptions) ([]entity.Enquiry, int64, error)
	UpdateEnquiry(ctx context.Context, id string, updates map[string]interface{}) (*entity.Enquiry, error)
	DeleteEnquiry(ctx context.Context, id string) error
	// CountByStatus returns enquiry counts keyed by status, optionally scoped
	// to one institute (empty instituteID means platform-wide).
	CountByStatus(ctx context.Context, instituteID string) (map[entity.EnquiryStatus]int64, error)
	CountEnquiries(ctx context.Context) (int64, error)
}
