package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

type CourseRepository struct {
	collection *mongo.Collection
}

var _ contract.ICourseRepository = (*CourseRepository)(nil)

func NewCourseRepository(collection *mongo.Collection) *CourseRepository {
	return &CourseRepository{collection: collection}
}

// buildCourseFilter creates a BSON filter from the options that are set.
func buildCourseFilter(opts *contract.CourseFilterOptions) bson.M {
	filter := bson.M{}
	if opts == nil {
		return filter
	}
	if opts.InstituteID != nil && *opts.InstituteID != "" {
		filter["institute_id"] = *opts.InstituteID
	}
	if opts.Category != nil && *opts.Category != "" {
		filter["category"] = *opts.Category
	}
	if opts.Status != nil && *opts.Status != "" {
		filter["status"] = *opts.Status
	}
	if opts.Search != nil && *opts.Search != "" {
		regex := primitive.Regex{Pattern: *opts.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
		}
	}
	return filter
}

func (r *CourseRepository) CreateCourse(ctx context.Context, course *entity.Course) error {
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	_, err := r.collection.InsertOne(ctx, course)
	return err
}

func (r *CourseRepository) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	var course entity.Course
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// ListCourses returns one page of matching courses plus the total match count.
func (r *CourseRepository) ListCourses(ctx context.Context, opts *contract.CourseFilterOptions) ([]entity.Course, int64, error) {
	filter := buildCourseFilter(opts)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(opts.Page, opts.Limit)
	findOpts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	courses := make([]entity.Course, 0, limit)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *CourseRepository) UpdateCourse(ctx context.Context, id string, updates map[string]interface{}) (*entity.Course, error) {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, contract.ErrNotFound
	}
	var updated entity.Course
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *CourseRepository) DeleteCourse(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *CourseRepository) CountCoursesByInstitute(ctx context.Context, instituteID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"institute_id": instituteID})
}

// normalizePage clamps pagination inputs to sane values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
