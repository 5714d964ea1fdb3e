package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// AuthUsecase handles registration, login and profile management across the
// three identity collections (users, institutes, admins).
type AuthUsecase struct {
	userRepo      contract.IUserRepository
	instituteRepo contract.IInstituteRepository
	adminRepo     contract.IAdminRepository
	hasher        contract.IHasher
	jwtService    JWTService
	logger        usecasecontract.IAppLogger
	validator     usecasecontract.IValidator
	uuidGen       contract.IUUIDGenerator
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// NewAuthUsecase creates and returns a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	instituteRepo contract.IInstituteRepository,
	adminRepo contract.IAdminRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		instituteRepo: instituteRepo,
		adminRepo:     adminRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		logger:        logger,
		validator:     validator,
		uuidGen:       uuidGen,
	}
}

// RegisterUser creates a student account.
func (u *AuthUsecase) RegisterUser(ctx context.Context, in usecasecontract.RegisterUserInput) (*entity.User, error) {
	if err := u.validator.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := u.validator.ValidatePasswordStrength(in.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := u.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           u.uuidGen.NewUUID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Role:         entity.RoleUser,
		Status:       entity.StatusActive,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	u.logger.Infof("registered user %s", user.ID)
	return user, nil
}

// RegisterInstitute creates an institute account.
func (u *AuthUsecase) RegisterInstitute(ctx context.Context, in usecasecontract.RegisterInstituteInput) (*entity.Institute, error) {
	if err := u.validator.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := u.validator.ValidatePasswordStrength(in.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := u.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	institute := &entity.Institute{
		ID:           u.uuidGen.NewUUID(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
		Website:      in.Website,
		Description:  in.Description,
		Address: entity.Address{
			City:    in.City,
			State:   in.State,
			Pincode: in.Pincode,
		},
		Role:   entity.RoleInstitute,
		Status: entity.StatusActive,
	}
	if err := u.instituteRepo.CreateInstitute(ctx, institute); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	u.logger.Infof("registered institute %s", institute.ID)
	return institute, nil
}

// Login resolves the email against users, then institutes, then admins, and
// on a password match returns the actor plus a signed access token.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.Actor, string, error) {
	actor, hash, err := u.findByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := u.hasher.ComparePasswordHash(password, hash); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if actor.Status != "" && actor.Status != entity.StatusActive {
		return nil, "", ErrAccountDeactivated
	}

	token, err := u.jwtService.GenerateAccessToken(actor.ID, actor.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return actor, token, nil
}

func (u *AuthUsecase) findByEmail(ctx context.Context, email string) (*entity.Actor, string, error) {
	if user, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return userActor(user), user.PasswordHash, nil
	}
	if institute, err := u.instituteRepo.GetInstituteByEmail(ctx, email); err == nil {
		return instituteActor(institute), institute.PasswordHash, nil
	}
	if admin, err := u.adminRepo.GetAdminByEmail(ctx, email); err == nil {
		return adminActor(admin), admin.PasswordHash, nil
	}
	return nil, "", contract.ErrNotFound
}

// ResolveActor reloads the identity named by a verified token's subject. The
// returned actor never carries the password hash.
func (u *AuthUsecase) ResolveActor(ctx context.Context, id string, role entity.Role) (*entity.Actor, error) {
	var actor *entity.Actor
	switch role {
	case entity.RoleUser:
		user, err := u.userRepo.GetUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		actor = userActor(user)
	case entity.RoleInstitute:
		institute, err := u.instituteRepo.GetInstituteByID(ctx, id)
		if err != nil {
			return nil, err
		}
		actor = instituteActor(institute)
	case entity.RoleAdmin:
		admin, err := u.adminRepo.GetAdminByID(ctx, id)
		if err != nil {
			return nil, err
		}
		actor = adminActor(admin)
	default:
		return nil, contract.ErrNotFound
	}

	if actor.Status != "" && actor.Status != entity.StatusActive {
		return nil, ErrAccountDeactivated
	}
	return actor, nil
}

// GetProfile returns the full account record for the acting identity.
func (u *AuthUsecase) GetProfile(ctx context.Context, actor *entity.Actor) (interface{}, error) {
	switch actor.Role {
	case entity.RoleUser:
		return u.userRepo.GetUserByID(ctx, actor.ID)
	case entity.RoleInstitute:
		return u.instituteRepo.GetInstituteByID(ctx, actor.ID)
	case entity.RoleAdmin:
		return u.adminRepo.GetAdminByID(ctx, actor.ID)
	}
	return nil, contract.ErrNotFound
}

// profileFields are the only keys a profile update may touch. Everything
// else (role, status, stats, password) has its own path.
var profileFields = map[string]bool{
	"name": true, "phone": true, "website": true, "description": true,
	"address.city": true, "address.state": true, "address.pincode": true,
}

// UpdateProfile applies a partial, whitelisted update to the acting identity.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, actor *entity.Actor, updates map[string]interface{}) (interface{}, error) {
	filtered := make(map[string]interface{}, len(updates))
	for k, v := range updates {
		if profileFields[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields supplied", ErrInvalidInput)
	}

	switch actor.Role {
	case entity.RoleUser:
		return u.userRepo.UpdateUser(ctx, actor.ID, filtered)
	case entity.RoleInstitute:
		return u.instituteRepo.UpdateInstitute(ctx, actor.ID, filtered)
	}
	return nil, ErrForbidden
}

// ChangePassword verifies the current password and stores a new hash.
func (u *AuthUsecase) ChangePassword(ctx context.Context, actor *entity.Actor, currentPassword, newPassword string) error {
	if err := u.validator.ValidatePasswordStrength(newPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := u.currentHash(ctx, actor)
	if err != nil {
		return err
	}
	if err := u.hasher.ComparePasswordHash(currentPassword, hash); err != nil {
		return ErrInvalidCredentials
	}

	newHash, err := u.hasher.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	switch actor.Role {
	case entity.RoleUser:
		return u.userRepo.UpdateUserPassword(ctx, actor.ID, newHash)
	case entity.RoleInstitute:
		return u.instituteRepo.UpdateInstitutePassword(ctx, actor.ID, newHash)
	case entity.RoleAdmin:
		return u.adminRepo.UpdateAdminPassword(ctx, actor.ID, newHash)
	}
	return contract.ErrNotFound
}

func (u *AuthUsecase) currentHash(ctx context.Context, actor *entity.Actor) (string, error) {
	switch actor.Role {
	case entity.RoleUser:
		user, err := u.userRepo.GetUserByID(ctx, actor.ID)
		if err != nil {
			return "", err
		}
		return user.PasswordHash, nil
	case entity.RoleInstitute:
		institute, err := u.instituteRepo.GetInstituteByID(ctx, actor.ID)
		if err != nil {
			return "", err
		}
		return institute.PasswordHash, nil
	case entity.RoleAdmin:
		admin, err := u.adminRepo.GetAdminByID(ctx, actor.ID)
		if err != nil {
			return "", err
		}
		return admin.PasswordHash, nil
	}
	return "", contract.ErrNotFound
}

func userActor(user *entity.User) *entity.Actor {
	return &entity.Actor{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   entity.RoleUser,
		Status: user.Status,
	}
}

func instituteActor(institute *entity.Institute) *entity.Actor {
	return &entity.Actor{
		ID:     institute.ID,
		Name:   institute.Name,
		Email:  institute.Email,
		Role:   entity.RoleInstitute,
		Status: institute.Status,
		// An institute's affiliated institute is itself.
		InstituteID: institute.ID,
	}
}

func adminActor(admin *entity.Admin) *entity.Actor {
	return &entity.Actor{
		ID:     admin.ID,
		Name:   admin.Name,
		Email:  admin.Email,
		Role:   entity.RoleAdmin,
		Status: admin.Status,
	}
}
