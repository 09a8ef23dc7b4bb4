// Package validator adapts go-playground/validator to echo.
package validator

import (
	"carepush/internal/domain/entity"
	"carepush/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with the coordinator's custom tags registered
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// notification_type accepts the wire discriminators of the known kinds.
	_ = v.RegisterValidation("notification_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case entity.TypeChat, entity.TypeSOSAlert, entity.TypeHealthAlert,
			entity.TypeCaregiverResponse, entity.TypeDoctorResponse:
			return true
		default:
			return false
		}
	})

	return &CustomValidator{validator: v}
}

// Validate validates a request struct
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
