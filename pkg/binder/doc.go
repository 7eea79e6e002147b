// Package binder decodes HTTP request bodies into typed values.
//
// JSON is strict: it requires an application/json content type, caps the body
// size, rejects unknown fields and trailing data, and strips invalid UTF-8 and
// control characters from every decoded string. Surrounding whitespace is
// kept so length checks downstream see the value the client sent.
//
// Decode applies the same strict decoding and sanitization to bytes that
// did not come straight from a request, e.g. a json.RawMessage bound first
// and decoded into a record later.
//
//	bind := binder.JSON()
//	var req fieldRequest
//	if err := bind(r, &req); err != nil {
//		// errors.Is(err, binder.ErrFailedToParseJSON) ...
//	}
package binder
