package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// CourseFilterOptions carries the optional list filters. Nil fields add no
// predicate; the repository builds the query from the fields that are set.
type CourseFilterOptions struct {
	InstituteID *string
	Category    *entity.CourseCategory
	Status      *entity.CourseStatus
	Search      *string
	Page        int
	Limit       int
}

// ICourseRepository persists course listings.
type ICourseRepository interface {
	CreateCourse(ctx context.Context, course *entity.Course) error
	GetCourseByID(ctx context.Context, id string) (*entity.Course, error)
	ListCourses(ctx context.Context, opts *CourseFilterOptions) ([]entity.Course, int64, error)
	UpdateCourse(ctx context.Context, id string, updates map[string]interface{}) (*entity.Course, error)
	DeleteCourse(ctx context.Context, id string) error
	CountCourses(ctx context.Context) (int64, error)
	CountCoursesByInstitute(ctx context.Context, instituteID string) (int64, error)
}
