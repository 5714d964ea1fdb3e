package mocks

import (
	"context"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailLogin          bool
	ShouldFailResolveActor   bool
	ActorNotFound            bool
	ActorDeactivated         bool
	ShouldFailProfile        bool
	ShouldFailChangePassword bool

	// Return values
	MockActor entity.Actor
	MockToken string
}

// Ensure MockAuthUsecase implements the interface handlers depend on
var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockActor: entity.Actor{
			ID:     "mock-user-id",
			Name:   "Test User",
			Email:  "test@example.com",
			Role:   entity.RoleUser,
			Status: entity.StatusActive,
		},
		MockToken: "mock_access_token",
	}
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, in usecasecontract.RegisterUserInput) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, usecase.ErrDuplicateEmail
	}
	return &entity.User{
		ID:    m.MockActor.ID,
		Name:  in.Name,
		Email: in.Email,
		Role:  entity.RoleUser,
	}, nil
}

func (m *MockAuthUsecase) RegisterInstitute(ctx context.Context, in usecasecontract.RegisterInstituteInput) (*entity.Institute, error) {
	if m.ShouldFailRegister {
		return nil, usecase.ErrDuplicateEmail
	}
	return &entity.Institute{
		ID:    "mock-institute-id",
		Name:  in.Name,
		Email: in.Email,
		Role:  entity.RoleInstitute,
	}, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.Actor, string, error) {
	if m.ShouldFailLogin {
		return nil, "", usecase.ErrInvalidCredentials
	}
	return &m.MockActor, m.MockToken, nil
}

func (m *MockAuthUsecase) ResolveActor(ctx context.Context, id string, role entity.Role) (*entity.Actor, error) {
	if m.ActorNotFound {
		return nil, contract.ErrNotFound
	}
	if m.ActorDeactivated {
		return nil, usecase.ErrAccountDeactivated
	}
	if m.ShouldFailResolveActor {
		return nil, context.DeadlineExceeded
	}
	actor := m.MockActor
	actor.ID = id
	actor.Role = role
	if role == entity.RoleInstitute {
		actor.InstituteID = id
	}
	return &actor, nil
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, actor *entity.Actor) (interface{}, error) {
	if m.ShouldFailProfile {
		return nil, contract.ErrNotFound
	}
	return &m.MockActor, nil
}

func (m *MockAuthUsecase) UpdateProfile(ctx context.Context, actor *entity.Actor, updates map[string]interface{}) (interface{}, error) {
	if m.ShouldFailProfile {
		return nil, contract.ErrNotFound
	}
	return &m.MockActor, nil
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, actor *entity.Actor, currentPassword, newPassword string) error {
	if m.ShouldFailChangePassword {
		return usecase.ErrInvalidCredentials
	}
	return nil
}
