package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/contract"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/dto"
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
)

// Success sends a success envelope with an optional payload.
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.Response{Success: true, Message: message, Data: data})
}

// SuccessPage sends a success envelope with pagination metadata.
func SuccessPage(c *gin.Context, message string, data interface{}, page, limit int, total int64) {
	c.JSON(http.StatusOK, dto.Response{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

// Fail sends an error envelope.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Response{Success: false, Message: message})
}

// BindAndValidate binds a JSON request and reports validation failures as a
// joined, human-readable message list. Binding goes through gin's cached
// body reader so the ownership middleware may have inspected the body first.
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fieldError(fe))
			}
			c.JSON(http.StatusBadRequest, dto.Response{
				Success: false,
				Message: strings.Join(msgs, "; "),
				Errors:  msgs,
			})
			return err
		}
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return err
	}
	return nil
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " is below the minimum of " + fe.Param()
	case "max":
		return fe.Field() + " exceeds the maximum of " + fe.Param()
	case "oneof", "coursecategory", "coursestatus", "enquirystatus":
		return fe.Field() + " has an unsupported value"
	default:
		return fe.Field() + " is invalid"
	}
}

// RespondError classifies a usecase error into the documented taxonomy:
// validation 400, not-found 404, forbidden 403, credential failures 401,
// everything else 500 with a generic message.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, contract.ErrNotFound):
		Fail(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, usecase.ErrForbidden):
		Fail(c, http.StatusForbidden, "You do not have access to this resource")
	case errors.Is(err, usecase.ErrInvalidInput):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrDuplicateReview):
		Fail(c, http.StatusBadRequest, "You have already reviewed this institute")
	case errors.Is(err, usecase.ErrDuplicateEmail):
		Fail(c, http.StatusConflict, "Email is already registered")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		Fail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, usecase.ErrAccountDeactivated):
		Fail(c, http.StatusUnauthorized, "Account is deactivated")
	default:
		c.JSON(http.StatusInternalServerError, dto.Response{
			Success: false,
			Message: "Internal server error",
			Code:    dto.CodeServerError,
		})
	}
}
