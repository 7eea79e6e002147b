package forms

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/garagekit/pkg/binder"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// Form names accepted by Lookup.
const (
	FormLogin                   = "login"
	FormUserRegistration        = "user_registration"
	FormProfileUpdate           = "profile_update"
	FormPasswordReset           = "password_reset"
	FormNewPassword             = "new_password"
	FormTechnicianRegistration  = "technician_registration"
	FormTechnicianProfileUpdate = "technician_profile_update"
	FormAvailabilityUpdate      = "availability_update"
	FormServiceAreaUpdate       = "service_area_update"
	FormSkillUpdate             = "skill_update"
	FormRescueRequest           = "rescue_request"
	FormRescueCreation          = "rescue_creation"
	FormStatusUpdate            = "status_update"
	FormFeedbackSubmission      = "feedback_submission"
	FormEtaUpdate               = "eta_update"
	FormLocationUpdate          = "location_update"
)

// Form binds a record type to its validator so callers holding raw JSON can
// dispatch by name.
type Form struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	newRecord func() any
	check     func(record any, clock validator.Clock) (validator.Result, error)
}

// New returns a pointer to a zero record of the form's type.
func (f Form) New() any {
	return f.newRecord()
}

// Check validates a record produced by New (or the record value itself).
func (f Form) Check(record any, clock validator.Clock) (validator.Result, error) {
	return f.check(record, clock)
}

// Validate decodes data into the form's record and validates it.
// Unknown fields and trailing data are rejected as malformed input. Control
// characters and invalid UTF-8 are stripped from strings before validation.
func (f Form) Validate(data []byte, clock validator.Clock) (validator.Result, error) {
	record := f.New()
	if err := binder.Decode(data, record); err != nil {
		return validator.Result{}, errors.Join(ErrMalformedInput, err)
	}
	return f.Check(record, clock)
}

func newForm[T any](name, description string, validate func(T, validator.Clock) validator.Result) Form {
	return Form{
		Name:        name,
		Description: description,
		newRecord:   func() any { return new(T) },
		check: func(record any, clock validator.Clock) (validator.Result, error) {
			switch r := record.(type) {
			case *T:
				if r == nil {
					return validate(*new(T), clock), nil
				}
				return validate(*r, clock), nil
			case T:
				return validate(r, clock), nil
			default:
				return validator.Result{}, fmt.Errorf("%w: %s got %T", ErrRecordType, name, record)
			}
		},
	}
}

func ignoreClock[T any](fn func(T) validator.Result) func(T, validator.Clock) validator.Result {
	return func(v T, _ validator.Clock) validator.Result { return fn(v) }
}

var registry = []Form{
	newForm(FormLogin, "Sign in with email or phone", ignoreClock(ValidateLoginRequest)),
	newForm(FormUserRegistration, "Customer sign-up", ignoreClock(ValidateUserRegistration)),
	newForm(FormProfileUpdate, "Customer profile changes", ignoreClock(ValidateProfileUpdate)),
	newForm(FormPasswordReset, "Password reset request", ignoreClock(ValidatePasswordReset)),
	newForm(FormNewPassword, "Password reset completion", ignoreClock(ValidateNewPassword)),
	newForm(FormTechnicianRegistration, "Technician sign-up", ignoreClock(ValidateTechnicianRegistration)),
	newForm(FormTechnicianProfileUpdate, "Technician profile changes", ignoreClock(ValidateTechnicianProfileUpdate)),
	newForm(FormAvailabilityUpdate, "Technician availability toggle", ignoreClock(ValidateAvailabilityUpdate)),
	newForm(FormServiceAreaUpdate, "Technician service areas", ignoreClock(ValidateServiceAreaUpdate)),
	newForm(FormSkillUpdate, "Technician skills", ignoreClock(ValidateSkillUpdate)),
	newForm(FormRescueRequest, "Customer rescue request", ignoreClock(ValidateRescueRequest)),
	newForm(FormRescueCreation, "Rescue created by staff", ignoreClock(ValidateRescueCreation)),
	newForm(FormStatusUpdate, "Rescue status change", ignoreClock(ValidateStatusUpdate)),
	newForm(FormFeedbackSubmission, "Rescue feedback", ignoreClock(ValidateFeedbackSubmission)),
	newForm(FormEtaUpdate, "Technician arrival estimate", ValidateEtaUpdate),
	newForm(FormLocationUpdate, "Technician position report", ignoreClock(ValidateLocationUpdate)),
}

// Registry returns every known form in a stable order.
func Registry() []Form {
	return slices.Clone(registry)
}

// Lookup returns the form registered under name.
func Lookup(name string) (Form, error) {
	for _, f := range registry {
		if f.Name == name {
			return f, nil
		}
	}
	return Form{}, fmt.Errorf("%w: %q", ErrUnknownForm, name)
}

// Names returns the registered form names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	return names
}
