package handler

import (
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// ValidationError maps field names to their messages.
type ValidationError url.Values

func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromValidationErrors groups errs by field, keeping message order.
func FromValidationErrors(errs validator.ValidationErrors) ValidationError {
	ve := NewValidationError()
	for _, e := range errs {
		ve.Add(e.Field, e.Message)
	}
	return ve
}

// Error lists the first message of each field, fields sorted.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if msgs := e[f]; len(msgs) > 0 {
			parts = append(parts, f+": "+msgs[0])
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
