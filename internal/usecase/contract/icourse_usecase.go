package contract

import (
	"context"

	domaincontract "github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// CourseInput is the payload for creating or replacing a course.
type CourseInput struct {
	InstituteID string
	Name        string
	Description string
	Category    entity.CourseCategory
	Price       float64
	Duration    string
	Status      entity.CourseStatus
	Curriculum  []string
}

// ICourseUseCase covers course CRUD and public listing.
type ICourseUseCase interface {
	CreateCourse(ctx context.Context, actor *entity.Actor, in CourseInput) (*entity.Course, error)
	GetCourse(ctx context.Context, id string) (*entity.Course, error)
	ListCourses(ctx context.Context, opts *domaincontract.CourseFilterOptions) ([]entity.Course, int64, error)
	UpdateCourse(ctx context.Context, actor *entity.Actor, id string, updates map[string]interface{}) (*entity.Course, error)
	DeleteCourse(ctx context.Context, actor *entity.Actor, id string) error
}
