package forms

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/garagekit/pkg/validator"
)

// Years of experience accepted on technician profiles.
const (
	MinYearsOfExperience = 0
	MaxYearsOfExperience = 60
)

// TechnicianRegistrationData is submitted by the technician sign-up form.
type TechnicianRegistrationData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Specialization  string `json:"specialization"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// TechnicianProfileUpdateData extends the profile form with technician details.
type TechnicianProfileUpdateData struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Address           string   `json:"address"`
	Specialization    string   `json:"specialization"`
	Bio               string   `json:"bio"`
	YearsOfExperience *float64 `json:"yearsOfExperience"`
	Password          string   `json:"password"`
	CurrentPassword   string   `json:"currentPassword"`
	ConfirmPassword   string   `json:"confirmPassword"`
}

// AvailabilityUpdateData toggles whether a technician takes new rescues.
// A nil IsAvailable means the flag was not sent.
type AvailabilityUpdateData struct {
	IsAvailable     *bool               `json:"isAvailable"`
	CurrentLocation *validator.Location `json:"currentLocation"`
}

type ServiceArea struct {
	Name   string             `json:"name"`
	Center validator.Location `json:"center"`
	Radius float64            `json:"radius"`
}

type ServiceAreaUpdateData struct {
	Areas []ServiceArea `json:"areas"`
}

// Skill is a technician skill. CertificationDate is optional.
type Skill struct {
	Name              string `json:"name"`
	CertificationDate string `json:"certificationDate"`
}

type SkillUpdateData struct {
	Skills []Skill `json:"skills"`
}

// ValidateTechnicianRegistration runs the registration checks with the
// specialization checked before the password.
func ValidateTechnicianRegistration(d TechnicianRegistrationData) validator.Result {
	return validator.Collect(
		nameRequired(d.Name),
		validEmail(d.Email),
		validPhone(d.Phone),
		rule(present(d.Specialization), "specialization", KeySpecializationRequired, "Specialization is required"),
		passwordLength(d.Password),
		passwordsMatch(d.Password, d.ConfirmPassword),
	)
}

// ValidateTechnicianProfileUpdate validates only the fields that are present.
func ValidateTechnicianProfileUpdate(d TechnicianProfileUpdateData) validator.Result {
	rules := []validator.Rule{
		validator.When(present(d.Name), nameMinLength(d.Name)),
		validator.When(present(d.Email), validEmail(d.Email)),
		validator.When(present(d.Phone), validPhone(d.Phone)),
		validator.When(present(d.Address), maxLength("address", d.Address, AddressMaxLength, KeyAddressMaxLength, "Address")),
		validator.When(present(d.Specialization), rule(length(d.Specialization) >= NameMinLength,
			"specialization", KeySpecializationMinLength,
			fmt.Sprintf("Specialization must be at least %d characters", NameMinLength),
			"min", strconv.Itoa(NameMinLength))),
		validator.When(present(d.Bio), maxLength("bio", d.Bio, BioMaxLength, KeyBioMaxLength, "Bio")),
		validator.When(d.YearsOfExperience != nil, experienceRange(d.YearsOfExperience)),
	}
	rules = append(rules, passwordChange(d.Password, d.CurrentPassword, d.ConfirmPassword)...)
	return validator.Collect(rules...)
}

func experienceRange(years *float64) validator.Rule {
	ok := years != nil && *years >= MinYearsOfExperience && *years <= MaxYearsOfExperience
	return rule(ok, "yearsOfExperience", KeyExperienceRange,
		fmt.Sprintf("Years of experience must be between %d and %d", MinYearsOfExperience, MaxYearsOfExperience),
		"min", strconv.Itoa(MinYearsOfExperience), "max", strconv.Itoa(MaxYearsOfExperience))
}

// ValidateAvailabilityUpdate requires the availability flag. false is a
// legitimate value; true additionally requires a valid current location.
func ValidateAvailabilityUpdate(d AvailabilityUpdateData) validator.Result {
	available := d.IsAvailable != nil && *d.IsAvailable
	return validator.Collect(
		rule(d.IsAvailable != nil, "isAvailable", KeyAvailabilityRequired, "Availability status is required"),
		validator.When(available, locationRule(d.CurrentLocation, "currentLocation", KeyCurrentLocationInvalid,
			"Valid current location is required when available")),
	)
}

// ValidateServiceAreaUpdate reports every malformed area, not just the first.
func ValidateServiceAreaUpdate(d ServiceAreaUpdateData) validator.Result {
	rules := []validator.Rule{
		rule(len(d.Areas) > 0, "areas", KeyAreasRequired, "At least one service area is required"),
	}
	for i, area := range d.Areas {
		idx := strconv.Itoa(i)
		rules = append(rules,
			rule(present(area.Name), indexed("areas", i, "name"), KeyAreaNameRequired,
				"Area name is required for area at index "+idx, "index", idx),
			rule(validator.IsValidLocation(&area.Center), indexed("areas", i, "center"), KeyAreaCenterInvalid,
				"Valid center location is required for area at index "+idx, "index", idx),
			rule(area.Radius > 0, indexed("areas", i, "radius"), KeyAreaRadiusInvalid,
				"Radius must be a positive number for area at index "+idx, "index", idx),
		)
	}
	return validator.Collect(rules...)
}

// ValidateSkillUpdate reports every malformed skill. A certification date is
// checked only when supplied.
func ValidateSkillUpdate(d SkillUpdateData) validator.Result {
	rules := []validator.Rule{
		rule(len(d.Skills) > 0, "skills", KeySkillsRequired, "At least one skill is required"),
	}
	for i, skill := range d.Skills {
		idx := strconv.Itoa(i)
		rules = append(rules,
			rule(present(skill.Name), indexed("skills", i, "name"), KeySkillNameRequired,
				"Skill name is required for skill at index "+idx, "index", idx),
			validator.When(present(skill.CertificationDate),
				rule(validator.IsValidDate(skill.CertificationDate), indexed("skills", i, "certificationDate"),
					KeySkillCertificationInvalid,
					"Valid certification date is required for skill at index "+idx, "index", idx)),
		)
	}
	return validator.Collect(rules...)
}

func indexed(list string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, field)
}
