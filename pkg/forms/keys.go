package forms

// Translation keys for record-level failures.
const (
	KeyEmailOrPhoneRequired      = "forms.email_or_phone_required"
	KeyEmailInvalid              = "forms.email_invalid"
	KeyPhoneInvalid              = "forms.phone_invalid"
	KeyPasswordRequired          = "forms.password_required"
	KeyPasswordMinLength         = "forms.password_min_length"
	KeyPasswordsMismatch         = "forms.passwords_mismatch"
	KeyCurrentPasswordRequired   = "forms.current_password_required"
	KeyTokenRequired             = "forms.token_required"
	KeyNameRequired              = "forms.name_required"
	KeyNameMinLength             = "forms.name_min_length"
	KeyAddressMaxLength          = "forms.address_max_length"
	KeySpecializationRequired    = "forms.specialization_required"
	KeySpecializationMinLength   = "forms.specialization_min_length"
	KeyBioMaxLength              = "forms.bio_max_length"
	KeyExperienceRange           = "forms.experience_range"
	KeyAvailabilityRequired      = "forms.availability_required"
	KeyCurrentLocationInvalid    = "forms.current_location_invalid"
	KeyAreasRequired             = "forms.areas_required"
	KeyAreaNameRequired          = "forms.area_name_required"
	KeyAreaCenterInvalid         = "forms.area_center_invalid"
	KeyAreaRadiusInvalid         = "forms.area_radius_invalid"
	KeySkillsRequired            = "forms.skills_required"
	KeySkillNameRequired         = "forms.skill_name_required"
	KeySkillCertificationInvalid = "forms.skill_certification_invalid"
	KeyLocationInvalid           = "forms.location_invalid"
	KeyVehicleTypeRequired       = "forms.vehicle_type_required"
	KeyIssueDescriptionRequired  = "forms.issue_description_required"
	KeyNotesMaxLength            = "forms.notes_max_length"
	KeyContactPhoneMinLength     = "forms.contact_phone_min_length"
	KeyRescueIDRequired          = "forms.rescue_id_required"
	KeyStatusInvalid             = "forms.status_invalid"
	KeyTechnicianRequired        = "forms.technician_required"
	KeyCompletionNotesRequired   = "forms.completion_notes_required"
	KeyCancellationRequired      = "forms.cancellation_reason_required"
	KeyRatingInvalid             = "forms.rating_invalid"
	KeyCommentsMaxLength         = "forms.comments_max_length"
	KeyEtaInvalid                = "forms.eta_invalid"
	KeyEtaNotFuture              = "forms.eta_not_future"
	KeyHeadingRange              = "forms.heading_range"
	KeySpeedInvalid              = "forms.speed_invalid"
)
