package contract

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// RegisterUserInput is the payload for a student registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// RegisterInstituteInput is the payload for an institute registration.
type RegisterInstituteInput struct {
	Name        string
	Email       string
	Password    string
	Phone       string
	Website     string
	Description string
	City        string
	State       string
	Pincode     string
}

// IAuthUseCase covers registration, login and profile management across the
// three identity collections.
type IAuthUseCase interface {
	RegisterUser(ctx context.Context, in RegisterUserInput) (*entity.User, error)
	RegisterInstitute(ctx context.Context, in RegisterInstituteInput) (*entity.Institute, error)
	// Login resolves the email against users, then institutes, then admins,
	// and returns the actor plus a signed access token.
	Login(ctx context.Context, email, password string) (*entity.Actor, string, error)
	// ResolveActor reloads the identity named by a verified token. It is
	// called by the auth middleware on every request.
	ResolveActor(ctx context.Context, id string, role entity.Role) (*entity.Actor, error)
	GetProfile(ctx context.Context, actor *entity.Actor) (interface{}, error)
	UpdateProfile(ctx context.Context, actor *entity.Actor, updates map[string]interface{}) (interface{}, error)
	ChangePassword(ctx context.Context, actor *entity.Actor, currentPassword, newPassword string) error
}
