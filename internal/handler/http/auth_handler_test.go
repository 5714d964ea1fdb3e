package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	handler "github.com/Ganapati12/Edulists-sub001/internal/handler/http"
	dto "github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/middleware"
	mocks "github.com/Ganapati12/Edulists-sub001/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// withActor injects an authenticated identity the way the auth middleware
// would.
func withActor(actor *entity.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyActor, actor)
		c.Next()
	}
}

func setupAuthRouter(h handler.AuthHandlerInterface, actor *entity.Actor) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	profile := r.Group("/")
	if actor != nil {
		profile.Use(withActor(actor))
	}
	profile.GET("/profile", h.GetProfile)
	profile.PUT("/change-password", h.ChangePassword)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterUser(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Role:     "user",
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")
}

func TestRegisterInstitute(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Role:     "institute",
		Name:     "Bright Future Academy",
		Email:    "admin@brightfuture.example",
		Password: "Password123!",
		City:     "Pune",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Institute registered successfully")
}

func TestRegister_ValidationFailure(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h, nil)

	// Role and password missing.
	w := postJSON(r, "/register", map[string]string{
		"name":  "Test User",
		"email": "test@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Role is required")
	assert.Contains(t, w.Body.String(), "Password is required")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailRegister = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/register", dto.RegisterRequest{
		Role:     "user",
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email is already registered")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful")
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailLogin = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h, nil)

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestGetProfile(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-1", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupAuthRouter(h, actor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Profile fetched")
}

func TestGetProfile_NoActor(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestChangePassword(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-1", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupAuthRouter(h, actor)

	body, _ := json.Marshal(dto.ChangePasswordRequest{
		CurrentPassword: "Password123!",
		NewPassword:     "NewPassword456!",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/change-password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password changed successfully")
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	mockUsecase := mocks.NewMockAuthUsecase()
	mockUsecase.ShouldFailChangePassword = true
	h := handler.NewAuthHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-1", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupAuthRouter(h, actor)

	body, _ := json.Marshal(dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "NewPassword456!",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/change-password", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}
