package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domaincontract "github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/middleware"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// ReviewHandlerInterface defines the review handler methods for
// interface-based dependency injection (testing/mocking).
type ReviewHandlerInterface interface {
	CreateReview(*gin.Context)
	ListReviews(*gin.Context)
	GetReviewStats(*gin.Context)
	GetReview(*gin.Context)
	UpdateReview(*gin.Context)
	DeleteReview(*gin.Context)
	FlagReview(*gin.Context)
	ApproveReview(*gin.Context)
}

var _ ReviewHandlerInterface = (*ReviewHandler)(nil)

type ReviewHandler struct {
	reviewUsecase usecasecontract.IReviewUseCase
}

func NewReviewHandler(reviewUsecase usecasecontract.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// CreateReview submits a review. Non-admin submissions stay unapproved and
// the response reports requiresApproval until a moderator acts.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.CreateReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	review, requiresApproval, err := h.reviewUsecase.CreateReview(c.Request.Context(), actor, usecasecontract.CreateReviewInput{
		InstituteID: req.Institute,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	message := "Review submitted"
	if requiresApproval {
		message = "Review submitted and awaiting approval"
	}
	Success(c, http.StatusCreated, message, gin.H{
		"review":           review,
		"requiresApproval": requiresApproval,
	})
}

// ListReviews handles the public listing with optional filters.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	opts := &domaincontract.ReviewFilterOptions{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}
	if v := c.Query("institute"); v != "" {
		opts.InstituteID = &v
	}
	if v := c.Query("user"); v != "" {
		opts.UserID = &v
	}
	if v := c.Query("approved"); v != "" {
		approved := v == "true"
		opts.Approved = &approved
	}
	if v := c.Query("flagged"); v != "" {
		flagged := v == "true"
		opts.Flagged = &flagged
	}

	reviews, total, err := h.reviewUsecase.ListReviews(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessPage(c, "Reviews fetched", reviews, opts.Page, opts.Limit, total)
}

// GetReviewStats returns the public aggregate, optionally scoped to one
// institute via ?institute=.
func (h *ReviewHandler) GetReviewStats(c *gin.Context) {
	stats, err := h.reviewUsecase.GetReviewStats(c.Request.Context(), c.Query("institute"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Review stats fetched", stats)
}

// GetReview fetches a single review by id.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewUsecase.GetReview(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Review fetched", review)
}

// UpdateReview edits rating/comment (owner or admin).
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.UpdateReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	review, err := h.reviewUsecase.UpdateReview(c.Request.Context(), actor, c.Param("id"), usecasecontract.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Review updated", review)
}

// DeleteReview removes a review (owner or admin).
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	actor := middleware.GetActor(c)
	if err := h.reviewUsecase.DeleteReview(c.Request.Context(), actor, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Review deleted", nil)
}

// FlagReview toggles the flagged bit; flagging always revokes approval.
func (h *ReviewHandler) FlagReview(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.FlagReviewRequest
	if c.Request.ContentLength > 0 {
		if err := BindAndValidate(c, &req); err != nil {
			return
		}
	}
	flagged := true
	if req.Flagged != nil {
		flagged = *req.Flagged
	}

	review, err := h.reviewUsecase.FlagReview(c.Request.Context(), actor, c.Param("id"), flagged, req.Reason)
	if err != nil {
		RespondError(c, err)
		return
	}

	message := "Review flagged"
	if !flagged {
		message = "Review unflagged"
	}
	Success(c, http.StatusOK, message, review)
}

// ApproveReview toggles the approved bit; approving always clears the flag.
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.ApproveReviewRequest
	if c.Request.ContentLength > 0 {
		if err := BindAndValidate(c, &req); err != nil {
			return
		}
	}
	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	review, err := h.reviewUsecase.ApproveReview(c.Request.Context(), actor, c.Param("id"), approved)
	if err != nil {
		RespondError(c, err)
		return
	}

	message := "Review approved"
	if !approved {
		message = "Review approval revoked"
	}
	Success(c, http.StatusOK, message, review)
}
