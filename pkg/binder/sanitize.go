package binder

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SanitizeString drops invalid UTF-8 and control characters other than tab,
// newline and carriage return. Everything else, including surrounding
// whitespace, is kept.
func SanitizeString(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || isStripped(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		if isStripped(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isStripped(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return unicode.IsControl(r)
}

// Sanitize walks the value v points to and applies SanitizeString to every
// settable string, including strings held in interfaces and string maps.
// Byte slices such as json.RawMessage are left alone; decode them with
// Decode to have their contents sanitized.
func Sanitize(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	sanitizeValue(rv.Elem())
}

func sanitizeValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(SanitizeString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if f := rv.Field(i); f.CanSet() {
				sanitizeValue(f)
			}
		}
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return
		}
		for i := range rv.Len() {
			sanitizeValue(rv.Index(i))
		}
	case reflect.Map:
		if rv.IsNil() || rv.Type().Elem().Kind() != reflect.String {
			return
		}
		iter := rv.MapRange()
		for iter.Next() {
			rv.SetMapIndex(iter.Key(), reflect.ValueOf(SanitizeString(iter.Value().String())).Convert(rv.Type().Elem()))
		}
	case reflect.Pointer:
		if !rv.IsNil() {
			sanitizeValue(rv.Elem())
		}
	case reflect.Interface:
		if rv.IsNil() {
			return
		}
		inner := rv.Elem()
		switch inner.Kind() {
		case reflect.String:
			if rv.CanSet() {
				rv.Set(reflect.ValueOf(SanitizeString(inner.String())))
			}
		case reflect.Pointer:
			sanitizeValue(inner.Elem())
		}
	}
}
