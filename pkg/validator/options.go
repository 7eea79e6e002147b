package validator

// MaxSafeInteger is the largest integer a float64 represents exactly.
// It is the default upper bound for lengths and numeric ranges.
const MaxSafeInteger = 1<<53 - 1

// Default labels used in messages when no label is supplied.
const (
	DefaultLabel                = "Field"
	DefaultEmailLabel           = "Email"
	DefaultPhoneLabel           = "Phone number"
	DefaultPasswordLabel        = "Password"
	DefaultConfirmPasswordLabel = "Confirm password"
	DefaultPlateLabel           = "Biển số xe"

	// DefaultPasswordMinLength applies when PasswordFieldOptions.MinLength is zero.
	DefaultPasswordMinLength = 6
)

// TextFieldOptions configures ValidateTextField.
// MaxLength <= 0 means no upper bound.
type TextFieldOptions struct {
	Required  bool   `json:"required"`
	Label     string `json:"label"`
	MinLength int    `json:"minLength"`
	MaxLength int    `json:"maxLength"`
}

func (o TextFieldOptions) withDefaults() TextFieldOptions {
	o.Label = labelOr(o.Label, DefaultLabel)
	if o.MinLength < 0 {
		o.MinLength = 0
	}
	if o.MaxLength <= 0 {
		o.MaxLength = MaxSafeInteger
	}
	return o
}

// EmailFieldOptions configures ValidateEmailField.
type EmailFieldOptions struct {
	Required bool   `json:"required"`
	Label    string `json:"label"`
}

func (o EmailFieldOptions) withDefaults() EmailFieldOptions {
	o.Label = labelOr(o.Label, DefaultEmailLabel)
	return o
}

// PhoneFieldOptions configures ValidatePhoneField.
type PhoneFieldOptions struct {
	Required bool   `json:"required"`
	Label    string `json:"label"`
}

func (o PhoneFieldOptions) withDefaults() PhoneFieldOptions {
	o.Label = labelOr(o.Label, DefaultPhoneLabel)
	return o
}

// PasswordFieldOptions configures ValidatePasswordField.
// MinLength <= 0 falls back to DefaultPasswordMinLength.
type PasswordFieldOptions struct {
	Required           bool   `json:"required"`
	Label              string `json:"label"`
	MinLength          int    `json:"minLength"`
	RequireSpecialChar bool   `json:"requireSpecialChar"`
	RequireNumber      bool   `json:"requireNumber"`
	RequireUppercase   bool   `json:"requireUppercase"`
}

func (o PasswordFieldOptions) withDefaults() PasswordFieldOptions {
	o.Label = labelOr(o.Label, DefaultPasswordLabel)
	if o.MinLength <= 0 {
		o.MinLength = DefaultPasswordMinLength
	}
	return o
}

// ConfirmPasswordFieldOptions configures ValidateConfirmPasswordField.
// Password is the value the confirmation must equal.
type ConfirmPasswordFieldOptions struct {
	Required bool   `json:"required"`
	Label    string `json:"label"`
	Password string `json:"password"`
}

func (o ConfirmPasswordFieldOptions) withDefaults() ConfirmPasswordFieldOptions {
	o.Label = labelOr(o.Label, DefaultConfirmPasswordLabel)
	return o
}

// NumberFieldOptions configures ValidateNumberField.
// Nil bounds mean the full safe-integer range.
type NumberFieldOptions struct {
	Required bool     `json:"required"`
	Label    string   `json:"label"`
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Integer  bool     `json:"integer"`
}

func (o NumberFieldOptions) withDefaults() NumberFieldOptions {
	o.Label = labelOr(o.Label, DefaultLabel)
	if o.Min == nil {
		o.Min = Ptr(float64(-MaxSafeInteger))
	} else {
		o.Min = Ptr(*o.Min)
	}
	if o.Max == nil {
		o.Max = Ptr(float64(MaxSafeInteger))
	} else {
		o.Max = Ptr(*o.Max)
	}
	return o
}

// SelectFieldOptions configures ValidateSelectField.
// An empty AllowedValues list accepts any non-empty value.
type SelectFieldOptions struct {
	Required      bool     `json:"required"`
	Label         string   `json:"label"`
	AllowedValues []string `json:"allowedValues"`
}

func (o SelectFieldOptions) withDefaults() SelectFieldOptions {
	o.Label = labelOr(o.Label, DefaultLabel)
	return o
}

// LicensePlateFieldOptions configures ValidateLicensePlateField.
type LicensePlateFieldOptions struct {
	Required bool   `json:"required"`
	Label    string `json:"label"`
}

func (o LicensePlateFieldOptions) withDefaults() LicensePlateFieldOptions {
	o.Label = labelOr(o.Label, DefaultPlateLabel)
	return o
}

// Ptr returns a pointer to v. Handy for optional option fields.
func Ptr[T any](v T) *T {
	return &v
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
