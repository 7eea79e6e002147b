package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/dmitrymomot/garagekit/pkg/binder"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// Field kinds served under /v1/fields/{kind}.
const (
	KindText            = "text"
	KindEmail           = "email"
	KindPhone           = "phone"
	KindPassword        = "password"
	KindConfirmPassword = "confirm_password"
	KindNumber          = "number"
	KindSelect          = "select"
	KindLicensePlate    = "license_plate"
)

// FieldRequest is the body of a field validation call. Options follow the
// JSON shape of the matching validator options struct.
type FieldRequest struct {
	Value   json.RawMessage `json:"value"`
	Options json.RawMessage `json:"options"`
}

type fieldFunc func(req FieldRequest) (validator.FieldResult, error)

var fieldKinds = map[string]fieldFunc{
	KindText:            stringField(validator.ValidateTextField),
	KindEmail:           stringField(validator.ValidateEmailField),
	KindPhone:           stringField(validator.ValidatePhoneField),
	KindPassword:        stringField(validator.ValidatePasswordField),
	KindConfirmPassword: stringField(validator.ValidateConfirmPasswordField),
	KindNumber:          numberField,
	KindSelect:          stringField(validator.ValidateSelectField),
	KindLicensePlate:    stringField(validator.ValidateLicensePlateField),
}

// FieldKinds returns the supported kinds sorted by name.
func FieldKinds() []string {
	kinds := make([]string, 0, len(fieldKinds))
	for k := range fieldKinds {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ValidateField runs the validator registered for kind.
func ValidateField(kind string, req FieldRequest) (validator.FieldResult, error) {
	fn, ok := fieldKinds[kind]
	if !ok {
		return validator.FieldResult{}, fmt.Errorf("%w: %q", ErrUnknownFieldKind, kind)
	}
	return fn(req)
}

func stringField[O any](validate func(string, O) validator.FieldResult) fieldFunc {
	return func(req FieldRequest) (validator.FieldResult, error) {
		var value string
		if err := decodeOptional(req.Value, &value); err != nil {
			return validator.FieldResult{}, fmt.Errorf("%w: value: %w", ErrMalformedField, err)
		}
		var opts O
		if err := decodeOptional(req.Options, &opts); err != nil {
			return validator.FieldResult{}, fmt.Errorf("%w: options: %w", ErrMalformedField, err)
		}
		return validate(value, opts), nil
	}
}

func numberField(req FieldRequest) (validator.FieldResult, error) {
	var value any
	if len(req.Value) > 0 {
		dec := json.NewDecoder(bytes.NewReader(req.Value))
		dec.UseNumber()
		if err := dec.Decode(&value); err != nil {
			return validator.FieldResult{}, fmt.Errorf("%w: value: %w", ErrMalformedField, err)
		}
		binder.Sanitize(&value)
	}
	var opts validator.NumberFieldOptions
	if err := decodeOptional(req.Options, &opts); err != nil {
		return validator.FieldResult{}, fmt.Errorf("%w: options: %w", ErrMalformedField, err)
	}
	return validator.ValidateNumberField(value, opts), nil
}

// decodeOptional leaves v untouched for absent or null input.
func decodeOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return binder.Decode(raw, v)
}
