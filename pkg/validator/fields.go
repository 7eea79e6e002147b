package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// ValidateTextField checks required-ness and length bounds.
// Length counts characters of the raw, untrimmed value.
func ValidateTextField(value string, opts TextFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		return requiredOrValid(opts.Required, opts.Label)
	}

	length := utf8.RuneCountInString(value)
	if length < opts.MinLength {
		return Invalid(ValidationError{
			Message:        fmt.Sprintf("%s must be at least %d characters", opts.Label, opts.MinLength),
			TranslationKey: KeyMinLength,
			TranslationValues: map[string]any{
				"label": opts.Label,
				"min":   strconv.Itoa(opts.MinLength),
			},
		})
	}
	if length > opts.MaxLength {
		return Invalid(ValidationError{
			Message:        fmt.Sprintf("%s must be at most %d characters", opts.Label, opts.MaxLength),
			TranslationKey: KeyMaxLength,
			TranslationValues: map[string]any{
				"label": opts.Label,
				"max":   strconv.Itoa(opts.MaxLength),
			},
		})
	}
	return Valid()
}

// ValidateEmailField checks required-ness and email format.
func ValidateEmailField(value string, opts EmailFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		return requiredOrValid(opts.Required, opts.Label)
	}
	if !IsValidEmail(value) {
		return Invalid(labelError(opts.Label, KeyEmail, "%s must be a valid email address"))
	}
	return Valid()
}

// ValidatePhoneField checks required-ness and phone format.
func ValidatePhoneField(value string, opts PhoneFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		return requiredOrValid(opts.Required, opts.Label)
	}
	if !IsValidPhone(value) {
		return Invalid(labelError(opts.Label, KeyPhone, "%s must be a valid phone number"))
	}
	return Valid()
}

// ValidatePasswordField checks, in order: length, special character, number, uppercase.
func ValidatePasswordField(value string, opts PasswordFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		return requiredOrValid(opts.Required, opts.Label)
	}

	if utf8.RuneCountInString(value) < opts.MinLength {
		return Invalid(ValidationError{
			Message:        fmt.Sprintf("%s must be at least %d characters", opts.Label, opts.MinLength),
			TranslationKey: KeyPasswordMinLength,
			TranslationValues: map[string]any{
				"label": opts.Label,
				"min":   strconv.Itoa(opts.MinLength),
			},
		})
	}
	if opts.RequireSpecialChar && !specialCharRegex.MatchString(value) {
		return Invalid(labelError(opts.Label, KeyPasswordSpecial, "%s must contain at least one special character"))
	}
	if opts.RequireNumber && !digitRegex.MatchString(value) {
		return Invalid(labelError(opts.Label, KeyPasswordNumber, "%s must contain at least one number"))
	}
	if opts.RequireUppercase && !uppercaseRegex.MatchString(value) {
		return Invalid(labelError(opts.Label, KeyPasswordUppercase, "%s must contain at least one uppercase letter"))
	}
	return Valid()
}

// ValidateConfirmPasswordField checks that value equals opts.Password.
// Equality is only checked for a non-empty confirmation.
func ValidateConfirmPasswordField(value string, opts ConfirmPasswordFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		return requiredOrValid(opts.Required, opts.Label)
	}
	if value != opts.Password {
		return Invalid(ValidationError{
			Message:        "Passwords do not match",
			TranslationKey: KeyPasswordsMismatch,
			TranslationValues: map[string]any{
				"label": opts.Label,
			},
		})
	}
	return Valid()
}

// ValidateNumberField checks that value converts to a number within bounds.
// Numbers, json.Number, numeric strings and booleans are accepted as input.
func ValidateNumberField(value any, opts NumberFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		return requiredOrValid(opts.Required, opts.Label)
	}

	n, ok := ToNumber(value)
	if !ok {
		return Invalid(labelError(opts.Label, KeyNumber, "%s must be a number"))
	}
	if n < *opts.Min {
		return Invalid(ValidationError{
			Message:        fmt.Sprintf("%s must be at least %s", opts.Label, FormatNumber(*opts.Min)),
			TranslationKey: KeyMin,
			TranslationValues: map[string]any{
				"label": opts.Label,
				"min":   FormatNumber(*opts.Min),
			},
		})
	}
	if n > *opts.Max {
		return Invalid(ValidationError{
			Message:        fmt.Sprintf("%s must be at most %s", opts.Label, FormatNumber(*opts.Max)),
			TranslationKey: KeyMax,
			TranslationValues: map[string]any{
				"label": opts.Label,
				"max":   FormatNumber(*opts.Max),
			},
		})
	}
	if opts.Integer && (math.IsInf(n, 0) || n != math.Trunc(n)) {
		return Invalid(labelError(opts.Label, KeyInteger, "%s must be a whole number"))
	}
	return Valid()
}

// ValidateSelectField checks that value is one of opts.AllowedValues (case-sensitive).
func ValidateSelectField(value string, opts SelectFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		return requiredOrValid(opts.Required, opts.Label)
	}
	if len(opts.AllowedValues) > 0 && !slices.Contains(opts.AllowedValues, value) {
		allowed := strings.Join(opts.AllowedValues, ", ")
		return Invalid(ValidationError{
			Message:        fmt.Sprintf("%s must be one of: %s", opts.Label, allowed),
			TranslationKey: KeyInList,
			TranslationValues: map[string]any{
				"label":   opts.Label,
				"allowed": allowed,
			},
		})
	}
	return Valid()
}

// ToNumber converts v the way a loosely typed form value is read as a number.
// NaN is reported as not a number.
func ToNumber(v any) (float64, bool) {
	var f float64
	switch val := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int8:
		f = float64(val)
	case int16:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case uint:
		f = float64(val)
	case uint8:
		f = float64(val)
	case uint16:
		f = float64(val)
	case uint32:
		f = float64(val)
	case uint64:
		f = float64(val)
	case bool:
		if val {
			f = 1
		}
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && !rv.IsNil() {
			return ToNumber(rv.Elem().Interface())
		}
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// FormatNumber renders f without exponent or trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func requiredOrValid(required bool, label string) FieldResult {
	if required {
		return Invalid(labelError(label, KeyRequired, "%s is required"))
	}
	return Valid()
}

func labelError(label, key, format string) ValidationError {
	return ValidationError{
		Message:        fmt.Sprintf(format, label),
		TranslationKey: key,
		TranslationValues: map[string]any{
			"label": label,
		},
	}
}
