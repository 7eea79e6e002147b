// Package validation serves the garage validators over HTTP.
//
// Routes:
//
//	GET  /v1/forms               list record forms
//	POST /v1/forms/{form}        validate a record body
//	GET  /v1/fields              list field kinds
//	POST /v1/fields/{kind}       validate {"value": ..., "options": {...}}
//	GET  /v1/messages/{lang}     message catalog for client-side rendering
//
// Results are localized into the request language negotiated by the i18n
// middleware. A valid body answers 200, a failing one 422 with the same
// result in data and per-field messages in error.details. Unknown forms and
// kinds answer 404, malformed bodies 400.
package validation
