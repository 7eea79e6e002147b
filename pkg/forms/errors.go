package forms

import "errors"

var (
	ErrUnknownForm    = errors.New("unknown form")
	ErrMalformedInput = errors.New("malformed form input")
	ErrRecordType     = errors.New("record type does not match form")
)
