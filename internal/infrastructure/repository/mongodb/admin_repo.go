package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

type AdminRepository struct {
	collection *mongo.Collection
}

var _ contract.IAdminRepository = (*AdminRepository)(nil)

func NewAdminRepository(collection *mongo.Collection) *AdminRepository {
	return &AdminRepository{collection: collection}
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	_, err := r.collection.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return contract.ErrDuplicateKey
	}
	return err
}

func (r *AdminRepository) GetAdminByID(ctx context.Context, id string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) UpdateAdminPassword(ctx context.Context, id string, hashedPassword string) error {
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
