// Package messages renders validation failures as locale text.
//
// Validators attach a stable translation key and placeholder values to every
// failure. A Catalog resolves them against the embedded English and
// Vietnamese catalogs:
//
//	catalog, err := messages.New(ctx)
//	res := catalog.LocalizeResult("vi", forms.ValidateLoginRequest(data))
//
// Unknown languages fall back to English. A key missing from the catalog
// keeps the validator's default message.
package messages
