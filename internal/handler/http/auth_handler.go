package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/middleware"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// AuthHandlerInterface defines the auth handler methods for interface-based
// dependency injection (testing/mocking).
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
	ChangePassword(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles user and institute signup.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	ctx := c.Request.Context()
	if req.Role == "institute" {
		institute, err := h.authUsecase.RegisterInstitute(ctx, usecasecontract.RegisterInstituteInput{
			Name:        req.Name,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			Website:     req.Website,
			Description: req.Description,
			City:        req.City,
			State:       req.State,
			Pincode:     req.Pincode,
		})
		if err != nil {
			RespondError(c, err)
			return
		}
		Success(c, http.StatusCreated, "Institute registered successfully", dto.RegisteredResponse{
			ID:        institute.ID,
			Role:      string(institute.Role),
			Email:     institute.Email,
			CreatedAt: institute.CreatedAt,
		})
		return
	}

	user, err := h.authUsecase.RegisterUser(ctx, usecasecontract.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusCreated, "User registered successfully", dto.RegisteredResponse{
		ID:        user.ID,
		Role:      string(user.Role),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Login handles authentication for all three identity kinds.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	actor, token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	Success(c, http.StatusOK, "Login successful", dto.LoginResponse{
		User:  dto.ToActorResponse(*actor),
		Token: token,
	})
}

// GetProfile returns the authenticated account's full record.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		Fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	profile, err := h.authUsecase.GetProfile(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Profile fetched", profile)
}

// UpdateProfile applies a partial profile update.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		Fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	profile, err := h.authUsecase.UpdateProfile(c.Request.Context(), actor, req.ToMap())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Profile updated", profile)
}

// ChangePassword verifies the current password and stores a new one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor := middleware.GetActor(c)
	if actor == nil {
		Fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Password changed successfully", nil)
}
