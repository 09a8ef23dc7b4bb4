package validator

import (
	"testing"

	"carepush/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatchInput struct {
	Type  string `validate:"required,notification_type"`
	Title string `validate:"max=5"`
}

func TestCustomValidator_NotificationType(t *testing.T) {
	v := New()

	for _, wireType := range []string{"chat", "sos_alert", "health_alert", "caregiver_response", "doctor_response"} {
		assert.NoError(t, v.Validate(&dispatchInput{Type: wireType}), wireType)
	}

	err := v.Validate(&dispatchInput{Type: "promo"})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "notification_type", validationErrs[0].Tag())
}

func TestCustomValidator_StandardTags(t *testing.T) {
	v := New()

	assert.Error(t, v.Validate(&dispatchInput{}))
	assert.Error(t, v.Validate(&dispatchInput{Type: "chat", Title: "too long"}))
}
