package services

import (
	"github.com/go-playground/validator/v10"
)

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{
		validator: validator.New(),
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// FieldFailed reports whether the given field is among the validation
// failures in err.
func FieldFailed(err error, field string) bool {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fe := range errs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}
