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

type EnquiryRepository struct {
	collection *mongo.Collection
}

var _ contract.IEnquiryRepository = (*EnquiryRepository)(nil)

func NewEnquiryRepository(collection *mongo.Collection) *EnquiryRepository {
	return &EnquiryRepository{collection: collection}
}

func buildEnquiryFilter(opts *contract.EnquiryFilterOptions) bson.M {
	filter := bson.M{}
	if opts == nil {
		return filter
	}
	if opts.InstituteID != nil && *opts.InstituteID != "" {
		filter["institute_id"] = *opts.InstituteID
	}
	if opts.Status != nil && *opts.Status != "" {
		filter["status"] = *opts.Status
	}
	return filter
}

func (r *EnquiryRepository) CreateEnquiry(ctx context.Context, enquiry *entity.Enquiry) error {
	enquiry.CreatedAt = time.Now()
	enquiry.UpdatedAt = enquiry.CreatedAt
	_, err := r.collection.InsertOne(ctx, enquiry)
	return err
}

func (r *EnquiryRepository) GetEnquiryByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	var enquiry entity.Enquiry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&enquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepository) ListEnquiries(ctx context.Context, opts *contract.EnquiryFilterOptions) ([]entity.Enquiry, int64, error) {
	filter := buildEnquiryFilter(opts)

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

	enquiries := make([]entity.Enquiry, 0, limit)
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, 0, err
	}
	return enquiries, total, nil
}

func (r *EnquiryRepository) UpdateEnquiry(ctx context.Context, id string, updates map[string]interface{}) (*entity.Enquiry, error) {
	updates["updated_at"] = time.Now()
	filter := bson.M{"_id": id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, contract.ErrNotFound
	}
	var updated entity.Enquiry
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *EnquiryRepository) DeleteEnquiry(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// CountByStatus aggregates enquiry counts per status, optionally scoped to
// one institute.
func (r *EnquiryRepository) CountByStatus(ctx context.Context, instituteID string) (map[entity.EnquiryStatus]int64, error) {
	match := bson.M{}
	if instituteID != "" {
		match["institute_id"] = instituteID
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status entity.EnquiryStatus `bson:"_id"`
		Count  int64                `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[entity.EnquiryStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *EnquiryRepository) CountEnquiries(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
