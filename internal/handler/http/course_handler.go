package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domaincontract "github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/middleware"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

type CourseHandler struct {
	courseUsecase usecasecontract.ICourseUseCase
}

func NewCourseHandler(courseUsecase usecasecontract.ICourseUseCase) *CourseHandler {
	return &CourseHandler{courseUsecase: courseUsecase}
}

// ListCourses handles the public listing with page/limit/search/filters.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	opts := courseFilterFromQuery(c)
	courses, total, err := h.courseUsecase.ListCourses(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessPage(c, "Courses fetched", courses, opts.Page, opts.Limit, total)
}

// ListInstituteCourses lists one institute's courses.
func (h *CourseHandler) ListInstituteCourses(c *gin.Context) {
	opts := courseFilterFromQuery(c)
	instituteID := c.Param("instituteId")
	opts.InstituteID = &instituteID

	courses, total, err := h.courseUsecase.ListCourses(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessPage(c, "Courses fetched", courses, opts.Page, opts.Limit, total)
}

// GetCourse fetches a single course by id.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.courseUsecase.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Course fetched", course)
}

// CreateCourse creates a listing for the acting institute (or a named one,
// for admins).
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.CreateCourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.CreateCourse(c.Request.Context(), actor, usecasecontract.CourseInput{
		InstituteID: req.Institute,
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.CourseCategory(req.Category),
		Price:       req.Price,
		Duration:    req.Duration,
		Status:      entity.CourseStatus(req.Status),
		Curriculum:  req.Curriculum,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusCreated, "Course created", course)
}

// UpdateCourse applies a partial update after ownership checks.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	actor := middleware.GetActor(c)
	var req dto.UpdateCourseRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	course, err := h.courseUsecase.UpdateCourse(c.Request.Context(), actor, c.Param("id"), req.ToMap())
	if err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Course updated", course)
}

// DeleteCourse removes a listing after ownership checks.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	actor := middleware.GetActor(c)
	if err := h.courseUsecase.DeleteCourse(c.Request.Context(), actor, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, http.StatusOK, "Course deleted", nil)
}

// courseFilterFromQuery builds the optional-filter struct from the query
// parameters that are present.
func courseFilterFromQuery(c *gin.Context) *domaincontract.CourseFilterOptions {
	opts := &domaincontract.CourseFilterOptions{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}
	if v := c.Query("institute"); v != "" {
		opts.InstituteID = &v
	}
	if v := c.Query("search"); v != "" {
		opts.Search = &v
	}
	if v := c.Query("category"); v != "" {
		category := entity.CourseCategory(v)
		opts.Category = &category
	}
	if v := c.Query("status"); v != "" {
		status := entity.CourseStatus(v)
		opts.Status = &status
	}
	return opts
}

func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
