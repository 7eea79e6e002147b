package validator

// Translation keys for field-level failures. They double as stable error codes
// and resolve to locale text through the message catalog.
const (
	KeyRequired          = "validation.required"
	KeyMinLength         = "validation.min_length"
	KeyMaxLength         = "validation.max_length"
	KeyEmail             = "validation.email"
	KeyPhone             = "validation.phone"
	KeyPasswordMinLength = "validation.password_min_length"
	KeyPasswordSpecial   = "validation.password_special"
	KeyPasswordNumber    = "validation.password_number"
	KeyPasswordUppercase = "validation.password_uppercase"
	KeyPasswordsMismatch = "validation.passwords_mismatch"
	KeyNumber            = "validation.number"
	KeyMin               = "validation.min"
	KeyMax               = "validation.max"
	KeyInteger           = "validation.integer"
	KeyInList            = "validation.in_list"
	KeyPlateRequired     = "validation.plate_required"
	KeyPlateFormat       = "validation.plate_format"
)
