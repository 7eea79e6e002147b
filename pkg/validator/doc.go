// Package validator provides the field-level validation primitives used by
// garage-management forms: primitive predicates, single-field validators with
// declarative options, and the Rule machinery record validators are built on.
//
// Every function is pure. There is no shared mutable state, no I/O and no
// logging, so all helpers are safe for concurrent use.
//
// # Architecture
//
// Core building blocks:
//   - Rule              – a Check func paired with the error it reports
//   - ValidationError   – one failure with a translation key and values
//   - ValidationErrors  – ordered failures, implements error
//   - FieldResult       – {IsValid, Error} returned by field validators
//   - Result            – {IsValid, Errors} returned by record validators
//
// Field validators (ValidateTextField, ValidateEmailField, ...) stop at the
// first failing check. Record-level helpers (Apply, Collect) run every rule
// and keep all failures in declared order.
//
// Options structs are merged with their documented defaults before any check
// runs, so a zero value always means "not supplied".
//
// # Usage
//
//	res := validator.ValidatePasswordField(pw, validator.PasswordFieldOptions{
//	    Required:         true,
//	    RequireUppercase: true,
//	})
//	if !res.IsValid {
//	    // res.Error is the default message, res.Detail.TranslationKey the catalog key
//	}
//
//	result := validator.Collect(
//	    validator.ValidateEmailField(email, validator.EmailFieldOptions{Required: true}).Rule("email"),
//	    validator.Check(validator.IsValidLocation(loc), validator.ValidationError{Field: "location", Message: "Valid location is required"}),
//	)
//
// # Messages
//
// Each failure carries a Message in the default language and a
// TranslationKey with TranslationValues. The messages package resolves keys
// to locale text; the keys are listed in keys.go.
package validator
