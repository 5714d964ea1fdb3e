package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// IAdminRepository persists platform moderator accounts.
type IAdminRepository interface {
	CreateAdmin(ctx context.Context, admin *entity.Admin) error
	GetAdminByID(ctx context.Context, id string) (*entity.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	UpdateAdminPassword(ctx context.Context, id string, hashedPassword string) error
}
