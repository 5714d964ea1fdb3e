package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domaincontract "github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/middleware"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

type EnquiryHandler struct {
	enquiryUsecase usecasecontract.IEnquiryUseCase
}

func NewEnquiryHandler(enquiryUsecase usecasecontract.IEnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{enquiryUsecase: enquiryUsecase}
}

// CreateEnquiry handles the public submission; an optionally authenticated
// user gets linked to the enquiry.
func (h *EnquiryHandler) CreateEnquiry(c *gin.Context) {
	var req dto.CreateEnquiryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	actor := middleware.GetActor(c) // nil for anonymous submissions
	enquiry, err := h.enquiryUsecase.CreateEnquiry(c.Request.Context(), actor, usecasecontract.CreateEnquiryInput{
		InstituteID: req.Institute,
		CourseID:    req.Course,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusCreated, "Enquiry submitted", enquiry)
}

// ListEnquiries pages enquiries within the actor's scope.
func (h *EnquiryHandler) ListEnquiries(c *gin.Context) {
	actor := middleware.GetActor(c)
	opts := &domaincontract.EnquiryFilterOptions{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}
	if v := c.Query("institute"); v != "" {
		opts.InstituteID = &v
	}
	if v := c.Query("status"); v != "" {
		status := entity.EnquiryStatus(v)
		opts.Status = &status
	}

	enquiries, total, err := h.enquiryUsecase.ListEnquiries(c.Request.Context(), actor, opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessPage(c, "Enquiries fetched", enquiries, opts.Page, opts.Limit, total)
}

// GetEnquiryStats returns the per-status breakdown.
func (h *EnquiryHandler) GetEnquiryStats(c *gin.Context) {
	actor := middleware.GetActor(c)
	stats, err := h.enquiryUsecase.GetEnquiryStats(c.Request.Context(), actor)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Enquiry stats fetched", stats)
}

// GetEnquiry fetches one enquiry within the actor's scope.
func (h *EnquiryHandler) GetEnquiry(c *gin.Context) {
	actor := middleware.GetActor(c)
	enquiry, err := h.enquiryUsecase.GetEnquiry(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Enquiry fetched", enquiry)
}

// ReplyEnquiry stores the reply and moves the enquiry to replied.
func (h *EnquiryHandler) ReplyEnquiry(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.ReplyEnquiryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	enquiry, err := h.enquiryUsecase.ReplyEnquiry(c.Request.Context(), actor, c.Param("id"), req.Message)
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Reply sent", enquiry)
}

// UpdateEnquiryStatus sets any status from the fixed value set.
func (h *EnquiryHandler) UpdateEnquiryStatus(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.UpdateEnquiryStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	enquiry, err := h.enquiryUsecase.UpdateEnquiryStatus(c.Request.Context(), actor, c.Param("id"), entity.EnquiryStatus(req.Status))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Enquiry status updated", enquiry)
}

// DeleteEnquiry removes an enquiry within the actor's scope.
func (h *EnquiryHandler) DeleteEnquiry(c *gin.Context) {
	actor := middleware.GetActor(c)
	if err := h.enquiryUsecase.DeleteEnquiry(c.Request.Context(), actor, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Enquiry deleted", nil)
}
