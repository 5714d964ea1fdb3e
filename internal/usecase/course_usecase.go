package usecase

import (
	"context"
	"fmt"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// CourseUsecase handles course CRUD and the public listing filters.
type CourseUsecase struct {
	courseRepo    contract.ICourseRepository
	instituteRepo contract.IInstituteRepository
	uuidGen       contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

var _ usecasecontract.ICourseUseCase = (*CourseUsecase)(nil)

// NewCourseUsecase creates and returns a new CourseUsecase instance.
func NewCourseUsecase(
	courseRepo contract.ICourseRepository,
	instituteRepo contract.IInstituteRepository,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *CourseUsecase {
	return &CourseUsecase{
		courseRepo:    courseRepo,
		instituteRepo: instituteRepo,
		uuidGen:       uuidGen,
		logger:        logger,
	}
}

// CreateCourse creates a listing. Institute actors always create for their
// own institute; admins must name the target institute in the input.
func (u *CourseUsecase) CreateCourse(ctx context.Context, actor *entity.Actor, in usecasecontract.CourseInput) (*entity.Course, error) {
	instituteID := in.InstituteID
	if actor.Role == entity.RoleInstitute {
		instituteID = actor.InstituteID
	}
	if instituteID == "" {
		return nil, fmt.Errorf("%w: institute id required", ErrInvalidInput)
	}
	if !entity.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, in.Category)
	}
	status := in.Status
	if status == "" {
		status = entity.CourseStatusDraft
	}
	if !entity.ValidCourseStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if _, err := u.instituteRepo.GetInstituteByID(ctx, instituteID); err != nil {
		return nil, err
	}

	course := &entity.Course{
		ID:          u.uuidGen.NewUUID(),
		InstituteID: instituteID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Duration:    in.Duration,
		Status:      status,
		Curriculum:  in.Curriculum,
	}
	if err := u.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}

	if err := u.instituteRepo.IncrementCounter(ctx, instituteID, "courses_count", 1); err != nil {
		u.logger.Errorf("courses_count increment failed for institute %s: %v", instituteID, err)
	}
	return course, nil
}

func (u *CourseUsecase) GetCourse(ctx context.Context, id string) (*entity.Course, error) {
	return u.courseRepo.GetCourseByID(ctx, id)
}

func (u *CourseUsecase) ListCourses(ctx context.Context, opts *contract.CourseFilterOptions) ([]entity.Course, int64, error) {
	return u.courseRepo.ListCourses(ctx, opts)
}

// courseFields are the keys a course update may touch.
var courseFields = map[string]bool{
	"name": true, "description": true, "category": true, "price": true,
	"duration": true, "status": true, "curriculum": true,
}

// UpdateCourse applies a partial update after an ownership check and value-set
// re-validation.
func (u *CourseUsecase) UpdateCourse(ctx context.Context, actor *entity.Actor, id string, updates map[string]interface{}) (*entity.Course, error) {
	course, err := u.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == entity.RoleInstitute && course.InstituteID != actor.InstituteID {
		return nil, ErrForbidden
	}

	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if courseFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields supplied", ErrInvalidInput)
	}
	if raw, ok := filtered["category"]; ok {
		if s, _ := raw.(string); !entity.ValidCategory(entity.CourseCategory(s)) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
		}
	}
	if raw, ok := filtered["status"]; ok {
		if s, _ := raw.(string); !entity.ValidCourseStatus(entity.CourseStatus(s)) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
		}
	}

	return u.courseRepo.UpdateCourse(ctx, id, filtered)
}

// DeleteCourse removes a listing after an ownership check and decrements the
// owning institute's course counter.
func (u *CourseUsecase) DeleteCourse(ctx context.Context, actor *entity.Actor, id string) error {
	course, err := u.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}
	if actor.Role == entity.RoleInstitute && course.InstituteID != actor.InstituteID {
		return ErrForbidden
	}

	if err := u.courseRepo.DeleteCourse(ctx, id); err != nil {
		return err
	}
	if err := u.instituteRepo.IncrementCounter(ctx, course.InstituteID, "courses_count", -1); err != nil {
		u.logger.Errorf("courses_count decrement failed for institute %s: %v", course.InstituteID, err)
	}
	return nil
}
