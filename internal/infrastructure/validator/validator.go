package validator

import (
	"fmt"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength checks if the password meets the strength requirements.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	hasUpper, hasLower, hasDigit := false, false, false
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("coursecategory", courseCategoryFL)
		v.RegisterValidation("coursestatus", courseStatusFL)
		v.RegisterValidation("enquirystatus", enquiryStatusFL)
	}
}

func courseCategoryFL(fl validator.FieldLevel) bool {
	return entity.ValidCategory(entity.CourseCategory(fl.Field().String()))
}

func courseStatusFL(fl validator.FieldLevel) bool {
	return entity.ValidCourseStatus(entity.CourseStatus(fl.Field().String()))
}

func enquiryStatusFL(fl validator.FieldLevel) bool {
	return entity.ValidEnquiryStatus(entity.EnquiryStatus(fl.Field().String()))
}
