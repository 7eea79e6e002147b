package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/garagekit/pkg/binder"
)

// JSONResponse is the envelope of every JSON body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) { r.body.Meta = meta }
}

// WithJSONError attaches an error detail next to the data.
func WithJSONError(detail *ErrorDetail) JSONOption {
	return func(r *jsonResponse) { r.body.Error = detail }
}

// JSON renders v as data with status 200. A JSONResponse is sent as is and
// an error is rendered like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}
	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case error:
		r.status, r.body.Error = ErrorToDetail(val)
	default:
		r.body.Data = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err in the error envelope with the status it maps to.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	r.status, r.body.Error = ErrorToDetail(err)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorToDetail maps err to a status code and a client-safe detail.
func ErrorToDetail(err error) (int, *ErrorDetail) {
	var verr ValidationError
	if errors.As(err, &verr) {
		detail := &ErrorDetail{Code: "validation_error", Message: "validation failed"}
		if len(verr) > 0 {
			detail.Details = make(map[string][]string, len(verr))
			maps.Copy(detail.Details, verr)
		}
		return http.StatusUnprocessableEntity, detail
	}

	httpErr := classify(err)
	message := http.StatusText(httpErr.Code)
	if _, bare := err.(HTTPError); !bare && err != nil && httpErr.Code < http.StatusInternalServerError {
		message = err.Error()
	}
	return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: message}
}

// classify finds the HTTPError an error maps to.
func classify(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return ErrBadRequest
	default:
		return ErrInternalServerError
	}
}
