package validator

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Vietnamese plates: 2-digit province code, series letter, optional series
// character, dash, then the registration number.
var platePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{2}[A-Z][A-Z0-9]?-\d{5}$`),       // 92H-89873
	regexp.MustCompile(`^\d{2}[A-Z][A-Z0-9]?-\d{4}$`),       // 51F-1234
	regexp.MustCompile(`^\d{2}[A-Z][A-Z0-9]?-\d{3}\.\d{2}$`), // 30A-123.45
}

var plateUpper = cases.Upper(language.Und)

// NormalizeLicensePlate trims and upper-cases a plate number.
func NormalizeLicensePlate(value string) string {
	return plateUpper.String(strings.TrimSpace(value))
}

// IsValidLicensePlate reports whether value matches one of the plate formats after normalization.
func IsValidLicensePlate(value string) bool {
	plate := NormalizeLicensePlate(value)
	for _, re := range platePatterns {
		if re.MatchString(plate) {
			return true
		}
	}
	return false
}

// ValidateLicensePlateField checks a vehicle plate number. Messages default to Vietnamese.
func ValidateLicensePlateField(value string, opts LicensePlateFieldOptions) FieldResult {
	opts = opts.withDefaults()
	if !IsNotEmpty(value) {
		if opts.Required {
			return Invalid(labelError(opts.Label, KeyPlateRequired, "Vui lòng nhập %s"))
		}
		return Valid()
	}
	if !IsValidLicensePlate(value) {
		return Invalid(ValidationError{
			Message:        fmt.Sprintf("%s không đúng định dạng (VD: 92H-89873, 51F-1234, 30A-123.45)", opts.Label),
			TranslationKey: KeyPlateFormat,
			TranslationValues: map[string]any{
				"label": opts.Label,
			},
		})
	}
	return Valid()
}
