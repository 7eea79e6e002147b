package validation

import "errors"

var (
	ErrUnknownFieldKind = errors.New("unknown field kind")
	ErrMalformedField   = errors.New("malformed field input")
	ErrNilCatalog       = errors.New("message catalog is required")
)
