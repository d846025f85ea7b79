package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/support-desk/ticket-dashboard/pkg/errorutil"
)

var validate = validator.New()

// Validate runs struct-tag validation and maps failures to the shared
// validation error shape, one detail entry per offending field.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return errorutil.NewValidationError("invalid payload", details)
}
