package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	handler "github.com/Ganapati12/Edulists-sub001/internal/handler/http"
	dto "github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	mocks "github.com/Ganapati12/Edulists-sub001/internal/handler/http/mocks"
)

func setupReviewRouter(h handler.ReviewHandlerInterface, actor *entity.Actor) *gin.Engine {
	r := gin.New()
	if actor != nil {
		r.Use(withActor(actor))
	}
	r.GET("/reviews", h.ListReviews)
	r.GET("/reviews/stats", h.GetReviewStats)
	r.POST("/reviews", h.CreateReview)
	r.GET("/reviews/:id", h.GetReview)
	r.PUT("/reviews/:id", h.UpdateReview)
	r.DELETE("/reviews/:id", h.DeleteReview)
	r.PUT("/reviews/:id/flag", h.FlagReview)
	r.PUT("/reviews/:id/approve", h.ApproveReview)
	return r
}

func TestCreateReview_AwaitingApproval(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-1", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	w := postJSON(r, "/reviews", dto.CreateReviewRequest{
		Institute: "inst-1",
		Rating:    4,
		Comment:   "Good labs",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "awaiting approval")
	assert.Contains(t, w.Body.String(), `"requiresApproval":true`)
}

func TestCreateReview_AdminImmediate(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	mockUsecase.RequiresApproval = false
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "admin-1", Role: entity.RoleAdmin, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	w := postJSON(r, "/reviews", dto.CreateReviewRequest{
		Institute: "inst-1",
		Rating:    5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "awaiting approval")
	assert.Contains(t, w.Body.String(), `"requiresApproval":false`)
}

func TestCreateReview_Duplicate(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	mockUsecase.DuplicateReview = true
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-1", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	w := postJSON(r, "/reviews", dto.CreateReviewRequest{
		Institute: "inst-1",
		Rating:    2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already reviewed this institute")
}

func TestCreateReview_RatingValidation(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-1", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	w := postJSON(r, "/reviews", map[string]interface{}{
		"institute": "inst-1",
		"rating":    9,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Rating exceeds the maximum of 5")
}

func TestListReviews(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	r := setupReviewRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reviews?institute=inst-1&page=1&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reviews fetched")
	assert.Contains(t, w.Body.String(), `"pagination"`)
}

func TestGetReview_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	mockUsecase.ReviewNotFound = true
	h := handler.NewReviewHandler(mockUsecase)
	r := setupReviewRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reviews/no-such-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resource not found")
}

func TestUpdateReview_Forbidden(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	mockUsecase.ShouldFailForbidden = true
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-2", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	body, _ := json.Marshal(map[string]interface{}{"rating": 1})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reviews/some-id", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFlagReview_EmptyBodyDefaultsToFlagged(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "inst-1", Role: entity.RoleInstitute, Status: entity.StatusActive, InstituteID: "inst-1"}
	r := setupReviewRouter(h, actor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reviews/some-id/flag", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Review flagged")
	assert.Contains(t, w.Body.String(), `"flagged":true`)
	assert.Contains(t, w.Body.String(), `"approved":false`)
}

func TestFlagReview_Unflag(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "admin-1", Role: entity.RoleAdmin, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	flagged := false
	body, _ := json.Marshal(dto.FlagReviewRequest{Flagged: &flagged})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reviews/some-id/flag", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Review unflagged")
}

func TestApproveReview_EmptyBodyApproves(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "admin-1", Role: entity.RoleAdmin, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/reviews/some-id/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Review approved")
	assert.Contains(t, w.Body.String(), `"approved":true`)
	assert.Contains(t, w.Body.String(), `"flagged":false`)
}

func TestDeleteReview(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	actor := &entity.Actor{ID: "user-1", Role: entity.RoleUser, Status: entity.StatusActive}
	r := setupReviewRouter(h, actor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/reviews/mock-review-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Review deleted")
}

func TestGetReviewStats(t *testing.T) {
	mockUsecase := mocks.NewMockReviewUsecase()
	h := handler.NewReviewHandler(mockUsecase)
	r := setupReviewRouter(h, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reviews/stats?institute=inst-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalApproved":2`)
	assert.Contains(t, w.Body.String(), `"averageRating":4`)
}
