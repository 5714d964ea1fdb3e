package usecase

import (
	"errors"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
)

// JWTService signs and verifies access tokens for the auth flow and the
// middleware.
type JWTService interface {
	GenerateAccessToken(subjectID string, role entity.Role) (string, error)
	VerifyToken(tokenStr string) (*entity.Claims, error)
}

var (
	// ErrInvalidCredentials is returned when login email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDeactivated is returned when an identity exists but its
	// status is set and not active.
	ErrAccountDeactivated = errors.New("account deactivated")
	// ErrForbidden is returned when the actor lacks rights on the target.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateReview is returned on a second review for the same
	// user/institute pair.
	ErrDuplicateReview = errors.New("user already reviewed this institute")
	// ErrDuplicateEmail is returned when a registration email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidInput is returned for value-set and validation failures.
	ErrInvalidInput = errors.New("invalid input")
)
