package validator

import (
	"reflect"
	"regexp"
	"strings"
)

var (
	// One-or-more non-space non-@ runs around "@" and ".". No TLD or RFC 5322 checks.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Optional "+", optional parenthesised area code, then 3-3-(4..6) digit groups.
	phoneRegex = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// IsNotEmpty reports whether v holds a value.
//
// nil, nil pointers, whitespace-only strings and empty slices, arrays and maps
// are empty. Present falsy primitives such as 0 and false are not empty.
func IsNotEmpty(v any) bool {
	if v == nil {
		return false
	}

	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) != ""
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return IsNotEmpty(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Array:
		return rv.Len() > 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) != ""
	case reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	if !IsNotEmpty(s) {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsValidPhone reports whether s looks like a phone number.
func IsValidPhone(s string) bool {
	if !IsNotEmpty(s) {
		return false
	}
	return phoneRegex.MatchString(s)
}

// IsValidLocation reports whether loc has both coordinates set, parseable and in range.
func IsValidLocation(loc *Location) bool {
	if loc == nil {
		return false
	}
	lat, ok := loc.Latitude.Float()
	if !ok {
		return false
	}
	lng, ok := loc.Longitude.Float()
	if !ok {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
