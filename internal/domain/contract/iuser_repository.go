package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// IUserRepository persists student/visitor accounts.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	CountUsers(ctx context.Context) (int64, error)
}
