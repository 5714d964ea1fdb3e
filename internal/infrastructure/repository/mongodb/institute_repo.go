package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

type InstituteRepository struct {
	collection *mongo.Collection
}

var _ contract.IInstituteRepository = (*InstituteRepository)(nil)

func NewInstituteRepository(collection *mongo.Collection) *InstituteRepository {
	return &InstituteRepository{collection: collection}
}

func (r *InstituteRepository) CreateInstitute(ctx context.Context, institute *entity.Institute) error {
	institute.CreatedAt = time.Now()
	institute.UpdatedAt = institute.CreatedAt
	_, err := r.collection.InsertOne(ctx, institute)
	if mongo.IsDuplicateKeyError(err) {
		return contract.ErrDuplicateKey
	}
	return err
}

func (r *InstituteRepository) GetInstituteByID(ctx context.Context, id string) (*entity.Institute, error) {
	var institute entity.Institute
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&institute)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &institute, nil
}

func (r *InstituteRepository) GetInstituteByEmail(ctx context.Context, email string) (*entity.Institute, error) {
	var institute entity.Institute
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&institute)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &institute, nil
}

// UpdateInstitute applies a partial update and returns the updated institute.
func (r *InstituteRepository) UpdateInstitute(ctx context.Context, id string, updates map[string]interface{}) (*entity.Institute, error) {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, contract.ErrNotFound
	}
	var updated entity.Institute
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *InstituteRepository) UpdateInstitutePassword(ctx context.Context, id string, hashedPassword string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_hash": hashedPassword,
		"updated_at":    time.Now(),
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// UpdateRatingStats overwrites the denormalized rating block. There is no
// optimistic concurrency check: last writer wins, and every caller writes a
// full recompute rather than an increment.
func (r *InstituteRepository) UpdateRatingStats(ctx context.Context, id string, rating float64, reviewsCount int) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"stats.rating":          rating,
		"stats.reviews_count":   reviewsCount,
		"stats.last_updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// IncrementCounter adjusts one stats counter (courses_count or
// enquiries_count) by delta.
func (r *InstituteRepository) IncrementCounter(ctx context.Context, id string, field string, delta int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"stats." + field: delta},
		"$set": bson.M{"stats.last_updated_at": time.Now()},
	})
	return err
}

func (r *InstituteRepository) CountInstitutes(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
