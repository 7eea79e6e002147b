package forms

import (
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// LoginData is submitted by the sign-in form. Either email or phone identifies the account.
type LoginData struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserRegistrationData is submitted by the customer sign-up form.
type UserRegistrationData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ProfileUpdateData is submitted by the profile form. Every field is optional.
type ProfileUpdateData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	CurrentPassword string `json:"currentPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// PasswordResetData requests a reset link.
type PasswordResetData struct {
	Email string `json:"email"`
}

// NewPasswordData completes a password reset.
type NewPasswordData struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ValidateLoginRequest requires an email or a phone, validates whichever is
// present, then requires a password of at least PasswordMinLength characters.
func ValidateLoginRequest(d LoginData) validator.Result {
	hasEmail := present(d.Email)
	hasPhone := present(d.Phone)

	return validator.Collect(
		rule(hasEmail || hasPhone, "email", KeyEmailOrPhoneRequired, "Email or phone number is required"),
		validator.When(hasEmail, validEmail(d.Email)),
		validator.When(hasPhone, validPhone(d.Phone)),
		validator.When(true, passwordRequired(d.Password), passwordLength(d.Password)),
	)
}

// ValidateUserRegistration checks every identity field. Password confirmation
// is always checked last, independently of the length check.
func ValidateUserRegistration(d UserRegistrationData) validator.Result {
	return validator.Collect(
		nameRequired(d.Name),
		validEmail(d.Email),
		validPhone(d.Phone),
		passwordLength(d.Password),
		passwordsMatch(d.Password, d.ConfirmPassword),
	)
}

// ValidateProfileUpdate validates only the fields that are present.
func ValidateProfileUpdate(d ProfileUpdateData) validator.Result {
	rules := []validator.Rule{
		validator.When(present(d.Name), nameMinLength(d.Name)),
		validator.When(present(d.Email), validEmail(d.Email)),
		validator.When(present(d.Phone), validPhone(d.Phone)),
		validator.When(present(d.Address), maxLength("address", d.Address, AddressMaxLength, KeyAddressMaxLength, "Address")),
	}
	rules = append(rules, passwordChange(d.Password, d.CurrentPassword, d.ConfirmPassword)...)
	return validator.Collect(rules...)
}

func ValidatePasswordReset(d PasswordResetData) validator.Result {
	return validator.Collect(validEmail(d.Email))
}

func ValidateNewPassword(d NewPasswordData) validator.Result {
	return validator.Collect(
		rule(present(d.Token), "token", KeyTokenRequired, "Reset token is required"),
		passwordLength(d.Password),
		passwordsMatch(d.Password, d.ConfirmPassword),
	)
}
