package forms

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// Length limits shared by several records.
const (
	PasswordMinLength     = 6
	NameMinLength         = 2
	AddressMaxLength      = 255
	BioMaxLength          = 500
	NotesMaxLength        = 1000
	CommentsMaxLength     = 1000
	ContactPhoneMinLength = 10
)

// rule builds a record rule. kv holds translation values as key, value pairs.
func rule(ok bool, field, key, message string, kv ...string) validator.Rule {
	values := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		values[kv[i]] = kv[i+1]
	}
	return validator.Check(ok, validator.ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	})
}

func present(v any) bool {
	return validator.IsNotEmpty(v)
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func nameRequired(name string) validator.Rule {
	return rule(present(name), "name", KeyNameRequired, "Name is required")
}

func nameMinLength(name string) validator.Rule {
	return rule(length(name) >= NameMinLength, "name", KeyNameMinLength,
		fmt.Sprintf("Name must be at least %d characters", NameMinLength),
		"min", strconv.Itoa(NameMinLength))
}

func validEmail(email string) validator.Rule {
	return rule(validator.IsValidEmail(email), "email", KeyEmailInvalid, "Valid email is required")
}

func validPhone(phone string) validator.Rule {
	return rule(validator.IsValidPhone(phone), "phone", KeyPhoneInvalid, "Valid phone number is required")
}

func passwordRequired(password string) validator.Rule {
	return rule(present(password), "password", KeyPasswordRequired, "Password is required")
}

// passwordLength fails for empty passwords too.
func passwordLength(password string) validator.Rule {
	return rule(present(password) && length(password) >= PasswordMinLength, "password", KeyPasswordMinLength,
		fmt.Sprintf("Password must be at least %d characters", PasswordMinLength),
		"min", strconv.Itoa(PasswordMinLength))
}

func passwordsMatch(password, confirm string) validator.Rule {
	return rule(password == confirm, "confirmPassword", KeyPasswordsMismatch, "Passwords do not match")
}

func maxLength(field, value string, max int, key, label string) validator.Rule {
	return rule(length(value) <= max, field, key,
		fmt.Sprintf("%s must be at most %d characters", label, max),
		"max", strconv.Itoa(max))
}

// passwordChange checks the optional password change sub-flow of profile updates.
// All three checks run together once a new password is supplied.
func passwordChange(password, current, confirm string) []validator.Rule {
	changing := present(password)
	return []validator.Rule{
		validator.When(changing, passwordLength(password)),
		validator.When(changing, rule(present(current), "currentPassword", KeyCurrentPasswordRequired,
			"Current password is required to set a new password")),
		validator.When(changing, passwordsMatch(password, confirm)),
	}
}

func locationRule(loc *validator.Location, field, key, message string) validator.Rule {
	return rule(validator.IsValidLocation(loc), field, key, message)
}

func rescueIDRequired(id string) validator.Rule {
	return rule(present(id), "rescueId", KeyRescueIDRequired, "Rescue ID is required")
}

// numeric reads v as a number only when it already is one. Strings and booleans are rejected.
func numeric(v any) (float64, bool) {
	switch v.(type) {
	case nil, string, bool:
		return 0, false
	}
	return validator.ToNumber(v)
}
