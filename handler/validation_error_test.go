package handler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/garagekit/handler"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		assert.True(t, err.IsEmpty())
		assert.Equal(t, "validation failed", err.Error())
	})

	t.Run("fields sorted in message", func(t *testing.T) {
		t.Parallel()
		err := handler.NewValidationError()
		err.Add("password", "Password is required")
		err.Add("email", "Valid email is required")
		err.Add("email", "second")

		assert.Equal(t, "validation failed: email: Valid email is required; password: Password is required", err.Error())
		assert.True(t, err.Has("email"))
		assert.False(t, err.Has("phone"))
		assert.Equal(t, "Valid email is required", err.Get("email"))
		assert.Len(t, err["email"], 2)
	})

	t.Run("from validator errors", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{
			{Field: "location", Message: "Valid location is required"},
			{Field: "vehicleType", Message: "Vehicle type is required"},
			{Field: "location", Message: "again"},
		}
		got := handler.FromValidationErrors(errs)
		assert.Equal(t, []string{"Valid location is required", "again"}, got["location"])
		assert.Equal(t, "Vehicle type is required", got.Get("vehicleType"))
	})
}
