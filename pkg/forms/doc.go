// Package forms validates the records submitted by garage-management forms:
// sign-in and registration, profile changes, technician availability, service
// areas and skills, and the rescue lifecycle.
//
// Each ValidateX function checks a whole record and collects every failure in
// the order the fields appear on the form. Nothing short-circuits across
// fields, so one call reports everything a user has to fix:
//
//	res := forms.ValidateUserRegistration(forms.UserRegistrationData{
//	    Name:  "",
//	    Email: "bad",
//	})
//	// res.IsValid == false
//	// res.Errors[0] == "Name is required"
//
// Every failure in res.Details carries a stable translation key from keys.go
// so the messages package can render it in the caller's language.
//
// Registry and Lookup expose the validators by name for transports that only
// hold raw JSON, such as the HTTP service and garagectl.
//
// ValidateEtaUpdate is the only time-dependent validator. It takes a
// validator.Clock so tests can pin "now".
package forms
