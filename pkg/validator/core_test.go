package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/garagekit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "Valid email is required"})
		errs.Add(validator.ValidationError{Field: "phone", Message: "Valid phone number is required"})

		assert.Equal(t,
			"validation failed: email: Valid email is required; phone: Valid phone number is required",
			errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short"},
		{Field: "confirmPassword", Message: "mismatch"},
		{Field: "password", Message: "needs a number"},
	}

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"too short", "needs a number"}, errs.Get("password"))
	assert.Equal(t, []string{"password", "confirmPassword"}, errs.Fields())
	assert.Equal(t, []string{"too short", "mismatch", "needs a number"}, errs.Messages())
	assert.False(t, errs.IsEmpty())

	var empty validator.ValidationErrors
	assert.True(t, empty.IsEmpty())
	assert.NotNil(t, empty.Messages())
	assert.Empty(t, empty.Messages())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Check(true, validator.ValidationError{Field: "a"}),
			validator.Rule{},
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure in order", func(t *testing.T) {
		calls := 0
		counting := func(ok bool, field string) validator.Rule {
			return validator.Rule{
				Check: func() bool { calls++; return ok },
				Error: validator.ValidationError{Field: field, Message: field + " failed"},
			}
		}

		err := validator.Apply(
			counting(false, "first"),
			counting(true, "second"),
			counting(false, "third"),
		)
		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, []string{"first", "third"}, validator.ExtractValidationErrors(err).Fields())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))

	wrapped := fmt.Errorf("register: %w", validator.ValidationErrors{{Field: "name"}})
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
}

func TestWhen(t *testing.T) {
	fail := func(field string) validator.Rule {
		return validator.Check(false, validator.ValidationError{Field: field})
	}
	pass := validator.Check(true, validator.ValidationError{Field: "ok"})

	t.Run("skipped condition passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.When(false, fail("a"))))
	})

	t.Run("reports only the first failing rule", func(t *testing.T) {
		err := validator.Apply(validator.When(true, pass, fail("b"), fail("c")))
		assert.Equal(t, []string{"b"}, validator.ExtractValidationErrors(err).Fields())
	})

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.When(true, pass, pass)))
	})
}

func TestCollect(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := validator.Collect(validator.Check(true, validator.ValidationError{}))
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
		assert.NotNil(t, res.Errors)
		assert.NoError(t, res.Err())
	})

	t.Run("invalid keeps messages and details aligned", func(t *testing.T) {
		res := validator.Collect(
			validator.Check(false, validator.ValidationError{Field: "name", Message: "Name is required"}),
			validator.Check(false, validator.ValidationError{Field: "email", Message: "Valid email is required"}),
		)
		assert.False(t, res.IsValid)
		assert.Equal(t, []string{"Name is required", "Valid email is required"}, res.Errors)
		require.Len(t, res.Details, 2)
		assert.ErrorIs(t, res.Err(), validator.ErrValidationFailed)
	})
}

func TestFieldResult_Rule(t *testing.T) {
	res := validator.ValidateEmailField("nope", validator.EmailFieldOptions{})
	require.False(t, res.IsValid)

	err := validator.Apply(res.Rule("contact.email"))
	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "contact.email", errs[0].Field)
	assert.Equal(t, validator.KeyEmail, errs[0].TranslationKey)
	assert.Empty(t, res.Detail.Field, "adapting must not mutate the field result")

	assert.NoError(t, validator.Apply(validator.Valid().Rule("x")))
}
