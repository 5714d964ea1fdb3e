package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// EnquiryUsecase handles enquiry intake, the reply flow and stats. Institute
// actors are scoped to enquiries addressed to their own institute.
type EnquiryUsecase struct {
	enquiryRepo   contract.IEnquiryRepository
	instituteRepo contract.IInstituteRepository
	mailService   contract.IEmailService
	uuidGen       contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
}

var _ usecasecontract.IEnquiryUseCase = (*EnquiryUsecase)(nil)

// NewEnquiryUsecase creates and returns a new EnquiryUsecase instance.
func NewEnquiryUsecase(
	enquiryRepo contract.IEnquiryRepository,
	instituteRepo contract.IInstituteRepository,
	mailService contract.IEmailService,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	config usecasecontract.IConfigProvider,
) *EnquiryUsecase {
	return &EnquiryUsecase{
		enquiryRepo:   enquiryRepo,
		instituteRepo: instituteRepo,
		mailService:   mailService,
		uuidGen:       uuidGen,
		logger:        logger,
		config:        config,
	}
}

// CreateEnquiry accepts a public submission. A present actor links the
// enquiry to the submitting user; the institute gets a best-effort
// notification email.
func (u *EnquiryUsecase) CreateEnquiry(ctx context.Context, actor *entity.Actor, in usecasecontract.CreateEnquiryInput) (*entity.Enquiry, error) {
	institute, err := u.instituteRepo.GetInstituteByID(ctx, in.InstituteID)
	if err != nil {
		return nil, err
	}

	enquiry := &entity.Enquiry{
		ID:          u.uuidGen.NewUUID(),
		InstituteID: in.InstituteID,
		CourseID:    in.CourseID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		Status:      entity.EnquiryStatusPending,
	}
	if actor != nil && actor.Role == entity.RoleUser {
		enquiry.UserID = actor.ID
	}

	if err := u.enquiryRepo.CreateEnquiry(ctx, enquiry); err != nil {
		return nil, err
	}

	if err := u.instituteRepo.IncrementCounter(ctx, in.InstituteID, "enquiries_count", 1); err != nil {
		u.logger.Errorf("enquiries_count increment failed for institute %s: %v", in.InstituteID, err)
	}

	if u.config.GetSendEnquiryEmails() {
		subject := fmt.Sprintf("New enquiry from %s", enquiry.Name)
		body := fmt.Sprintf("You received a new enquiry.\n\nFrom: %s <%s>\nPhone: %s\n\n%s",
			enquiry.Name, enquiry.Email, enquiry.Phone, enquiry.Message)
		if err := u.mailService.SendEmail(ctx, institute.Email, subject, body); err != nil {
			u.logger.Warnf("enquiry notification mail to %s failed: %v", institute.Email, err)
		}
	}
	return enquiry, nil
}

// GetEnquiry fetches one enquiry; institute actors may only read their own.
func (u *EnquiryUsecase) GetEnquiry(ctx context.Context, actor *entity.Actor, id string) (*entity.Enquiry, error) {
	enquiry, err := u.enquiryRepo.GetEnquiryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkScope(actor, enquiry); err != nil {
		return nil, err
	}
	return enquiry, nil
}

// ListEnquiries pages enquiries; institute actors are forced onto their own
// institute regardless of the requested filter.
func (u *EnquiryUsecase) ListEnquiries(ctx context.Context, actor *entity.Actor, opts *contract.EnquiryFilterOptions) ([]entity.Enquiry, int64, error) {
	if opts == nil {
		opts = &contract.EnquiryFilterOptions{}
	}
	if actor.Role == entity.RoleInstitute {
		opts.InstituteID = &actor.InstituteID
	}
	return u.enquiryRepo.ListEnquiries(ctx, opts)
}

// ReplyEnquiry stores the reply sub-document and moves the enquiry to
// replied.
func (u *EnquiryUsecase) ReplyEnquiry(ctx context.Context, actor *entity.Actor, id, message string) (*entity.Enquiry, error) {
	enquiry, err := u.enquiryRepo.GetEnquiryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkScope(actor, enquiry); err != nil {
		return nil, err
	}

	reply := &entity.EnquiryReply{
		Message:       message,
		ResponderID:   actor.ID,
		ResponderRole: actor.Role,
		RepliedAt:     time.Now(),
	}
	return u.enquiryRepo.UpdateEnquiry(ctx, id, map[string]interface{}{
		"reply":  reply,
		"status": entity.EnquiryStatusReplied,
	})
}

// UpdateEnquiryStatus sets any status from the fixed value set. No guarded
// transition table: any writer may set any member value.
func (u *EnquiryUsecase) UpdateEnquiryStatus(ctx context.Context, actor *entity.Actor, id string, status entity.EnquiryStatus) (*entity.Enquiry, error) {
	if !entity.ValidEnquiryStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	enquiry, err := u.enquiryRepo.GetEnquiryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkScope(actor, enquiry); err != nil {
		return nil, err
	}
	return u.enquiryRepo.UpdateEnquiry(ctx, id, map[string]interface{}{"status": status})
}

// DeleteEnquiry removes an enquiry within the actor's scope.
func (u *EnquiryUsecase) DeleteEnquiry(ctx context.Context, actor *entity.Actor, id string) error {
	enquiry, err := u.enquiryRepo.GetEnquiryByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.checkScope(actor, enquiry); err != nil {
		return err
	}
	return u.enquiryRepo.DeleteEnquiry(ctx, id)
}

// GetEnquiryStats returns the per-status breakdown for the actor's scope.
func (u *EnquiryUsecase) GetEnquiryStats(ctx context.Context, actor *entity.Actor) (*usecasecontract.EnquiryStats, error) {
	instituteID := ""
	if actor.Role == entity.RoleInstitute {
		instituteID = actor.InstituteID
	}
	counts, err := u.enquiryRepo.CountByStatus(ctx, instituteID)
	if err != nil {
		return nil, err
	}

	stats := &usecasecontract.EnquiryStats{
		Pending:   counts[entity.EnquiryStatusPending],
		Replied:   counts[entity.EnquiryStatusReplied],
		Resolved:  counts[entity.EnquiryStatusResolved],
		Cancelled: counts[entity.EnquiryStatusCancelled],
	}
	stats.Total = stats.Pending + stats.Replied + stats.Resolved + stats.Cancelled
	return stats, nil
}

func (u *EnquiryUsecase) checkScope(actor *entity.Actor, enquiry *entity.Enquiry) error {
	if actor.Role == entity.RoleInstitute && enquiry.InstituteID != actor.InstituteID {
		return ErrForbidden
	}
	return nil
}
