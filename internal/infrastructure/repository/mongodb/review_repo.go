package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

var _ contract.IReviewRepository = (*ReviewRepository)(nil)

func NewReviewRepository(collection *mongo.Collection) *ReviewRepository {
	return &ReviewRepository{collection: collection}
}

func buildReviewFilter(opts *contract.ReviewFilterOptions) bson.M {
	filter := bson.M{}
	if opts == nil {
		return filter
	}
	if opts.InstituteID != nil && *opts.InstituteID != "" {
		filter["institute_id"] = *opts.InstituteID
	}
	if opts.UserID != nil && *opts.UserID != "" {
		filter["user_id"] = *opts.UserID
	}
	if opts.Approved != nil {
		filter["approved"] = *opts.Approved
	}
	if opts.Flagged != nil {
		filter["flagged"] = *opts.Flagged
	}
	return filter
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *entity.Review) error {
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	_, err := r.collection.InsertOne(ctx, review)
	if mongo.IsDuplicateKeyError(err) {
		return contract.ErrDuplicateKey
	}
	return err
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id string) (*entity.Review, error) {
	var review entity.Review
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) GetReviewByUserAndInstitute(ctx context.Context, userID, instituteID string) (*entity.Review, error) {
	var review entity.Review
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "institute_id": instituteID}).Decode(&review)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// ListApprovedByInstitute returns the aggregator's source set: every approved
// review for the institute, unpaginated.
func (r *ReviewRepository) ListApprovedByInstitute(ctx context.Context, instituteID string) ([]entity.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"institute_id": instituteID, "approved": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []entity.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ListReviews(ctx context.Context, opts *contract.ReviewFilterOptions) ([]entity.Review, int64, error) {
	filter := buildReviewFilter(opts)

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

	reviews := make([]entity.Review, 0, limit)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, id string, updates map[string]interface{}) (*entity.Review, error) {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, contract.ErrNotFound
	}
	var updated entity.Review
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *ReviewRepository) CountReviews(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *ReviewRepository) CountPendingApproval(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"approved": false, "flagged": false})
}
