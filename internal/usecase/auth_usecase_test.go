package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// memUserRepo is an in-memory IUserRepository with duplicate email detection.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return contract.ErrDuplicateKey
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *memUserRepo) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		user.Name = name
	}
	cp := *user
	return &cp, nil
}

func (r *memUserRepo) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	user, ok := r.users[id]
	if !ok {
		return contract.ErrNotFound
	}
	user.PasswordHash = hashedPassword
	return nil
}

func (r *memUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// memAdminRepo is an in-memory IAdminRepository.
type memAdminRepo struct {
	admins map[string]*entity.Admin
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{admins: map[string]*entity.Admin{}}
}

func (r *memAdminRepo) CreateAdmin(ctx context.Context, admin *entity.Admin) error {
	cp := *admin
	r.admins[admin.ID] = &cp
	return nil
}

func (r *memAdminRepo) GetAdminByID(ctx context.Context, id string) (*entity.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	cp := *admin
	return &cp, nil
}

func (r *memAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	for _, admin := range r.admins {
		if admin.Email == email {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, contract.ErrNotFound
}

func (r *memAdminRepo) UpdateAdminPassword(ctx context.Context, id string, hashedPassword string) error {
	admin, ok := r.admins[id]
	if !ok {
		return contract.ErrNotFound
	}
	admin.PasswordHash = hashedPassword
	return nil
}

// plainHasher is a reversible stand-in for bcrypt.
type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return errors.New("password mismatch")
	}
	return nil
}

type simpleValidator struct{}

func (simpleValidator) ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("invalid email")
	}
	return nil
}

func (simpleValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

type fakeJWTService struct{}

func (fakeJWTService) GenerateAccessToken(subjectID string, role entity.Role) (string, error) {
	return "token:" + subjectID + ":" + string(role), nil
}

func (fakeJWTService) VerifyToken(tokenStr string) (*entity.Claims, error) {
	return nil, errors.New("not implemented")
}

type authFixture struct {
	uc            *usecase.AuthUsecase
	userRepo      *memUserRepo
	instituteRepo *fakeInstituteRepo
	adminRepo     *memAdminRepo
}

func newAuthUsecaseFixture() *authFixture {
	userRepo := newMemUserRepo()
	instituteRepo := newFakeInstituteRepo()
	adminRepo := newMemAdminRepo()
	uc := usecase.NewAuthUsecase(
		userRepo, instituteRepo, adminRepo,
		plainHasher{}, fakeJWTService{}, nopLogger{}, simpleValidator{}, &seqUUIDGen{},
	)
	return &authFixture{uc: uc, userRepo: userRepo, instituteRepo: instituteRepo, adminRepo: adminRepo}
}

func TestRegisterUser_HashesPasswordAndDefaults(t *testing.T) {
	f := newAuthUsecaseFixture()

	user, err := f.uc.RegisterUser(context.Background(), usecasecontract.RegisterUserInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.StatusActive, user.Status)

	stored, err := f.userRepo.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hashed:Password123!", stored.PasswordHash)
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	f := newAuthUsecaseFixture()

	_, err := f.uc.RegisterUser(context.Background(), usecasecontract.RegisterUserInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	_, err := f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Asha", Email: "asha@example.com", Password: "Password123!",
	})
	require.NoError(t, err)

	_, err = f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Other", Email: "asha@example.com", Password: "Password456!",
	})
	assert.ErrorIs(t, err, usecase.ErrDuplicateEmail)
}

func TestLogin_ResolvesUserBeforeInstitute(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	// The same email exists in both collections; the user collection wins.
	user, err := f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Shared", Email: "shared@example.com", Password: "Password123!",
	})
	require.NoError(t, err)
	require.NoError(t, f.instituteRepo.CreateInstitute(ctx, &entity.Institute{
		ID: "inst-9", Email: "shared@example.com", PasswordHash: "hashed:Password123!",
		Role: entity.RoleInstitute, Status: entity.StatusActive,
	}))

	actor, token, err := f.uc.Login(ctx, "shared@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, actor.Role)
	assert.Equal(t, user.ID, actor.ID)
	assert.Equal(t, "token:"+user.ID+":user", token)
}

func TestLogin_InstituteAndAdmin(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	require.NoError(t, f.instituteRepo.CreateInstitute(ctx, &entity.Institute{
		ID: "inst-1", Email: "inst@example.com", PasswordHash: "hashed:Password123!",
		Role: entity.RoleInstitute, Status: entity.StatusActive,
	}))
	require.NoError(t, f.adminRepo.CreateAdmin(ctx, &entity.Admin{
		ID: "admin-1", Email: "admin@example.com", PasswordHash: "hashed:Password123!",
		AdminRole: entity.AdminRoleModerator, Status: entity.StatusActive,
	}))

	actor, _, err := f.uc.Login(ctx, "inst@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleInstitute, actor.Role)
	assert.Equal(t, "inst-1", actor.InstituteID)

	// Admins authorize under the coarse admin role regardless of tier.
	actor, _, err = f.uc.Login(ctx, "admin@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, actor.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	_, err := f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Asha", Email: "asha@example.com", Password: "Password123!",
	})
	require.NoError(t, err)

	_, _, err = f.uc.Login(ctx, "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, _, err = f.uc.Login(ctx, "nobody@example.com", "Password123!")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	user, err := f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Asha", Email: "asha@example.com", Password: "Password123!",
	})
	require.NoError(t, err)
	f.userRepo.users[user.ID].Status = entity.StatusSuspended

	_, _, err = f.uc.Login(ctx, "asha@example.com", "Password123!")
	assert.ErrorIs(t, err, usecase.ErrAccountDeactivated)
}

func TestResolveActor_InstituteCarriesOwnInstituteID(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	require.NoError(t, f.instituteRepo.CreateInstitute(ctx, &entity.Institute{
		ID: "inst-1", Email: "inst@example.com", Role: entity.RoleInstitute, Status: entity.StatusActive,
	}))

	actor, err := f.uc.ResolveActor(ctx, "inst-1", entity.RoleInstitute)
	require.NoError(t, err)
	assert.Equal(t, "inst-1", actor.InstituteID)
}

func TestResolveActor_DeactivatedAndUnknown(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	user, err := f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Asha", Email: "asha@example.com", Password: "Password123!",
	})
	require.NoError(t, err)
	f.userRepo.users[user.ID].Status = entity.StatusInactive

	_, err = f.uc.ResolveActor(ctx, user.ID, entity.RoleUser)
	assert.ErrorIs(t, err, usecase.ErrAccountDeactivated)

	_, err = f.uc.ResolveActor(ctx, "ghost", entity.RoleUser)
	assert.ErrorIs(t, err, contract.ErrNotFound)

	_, err = f.uc.ResolveActor(ctx, user.ID, "superuser")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestUpdateProfile_WhitelistOnly(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	user, err := f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Asha", Email: "asha@example.com", Password: "Password123!",
	})
	require.NoError(t, err)
	actor := &entity.Actor{ID: user.ID, Role: entity.RoleUser, Status: entity.StatusActive}

	// Only privileged keys supplied: nothing updatable remains.
	_, err = f.uc.UpdateProfile(ctx, actor, map[string]interface{}{
		"role":   "admin",
		"status": "active",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)

	_, err = f.uc.UpdateProfile(ctx, actor, map[string]interface{}{"name": "Asha K"})
	require.NoError(t, err)
	stored, err := f.userRepo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha K", stored.Name)

	// Admin profiles have no update path.
	_, err = f.uc.UpdateProfile(ctx, adminActor("admin-1"), map[string]interface{}{"name": "Root"})
	assert.ErrorIs(t, err, usecase.ErrForbidden)
}

func TestChangePassword(t *testing.T) {
	f := newAuthUsecaseFixture()
	ctx := context.Background()

	user, err := f.uc.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name: "Asha", Email: "asha@example.com", Password: "Password123!",
	})
	require.NoError(t, err)
	actor := &entity.Actor{ID: user.ID, Role: entity.RoleUser, Status: entity.StatusActive}

	err = f.uc.ChangePassword(ctx, actor, "wrong-current", "NewPassword456!")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	err = f.uc.ChangePassword(ctx, actor, "Password123!", "short")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)

	require.NoError(t, f.uc.ChangePassword(ctx, actor, "Password123!", "NewPassword456!"))
	_, _, err = f.uc.Login(ctx, "asha@example.com", "NewPassword456!")
	assert.NoError(t, err)
}
