package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/garagekit/handler"
	"github.com/dmitrymomot/garagekit/pkg/forms"
)

// FieldKind describes one entry of GET /v1/fields.
type FieldKind struct {
	Name string `json:"name"`
}

func (s *Service) listForms(_ *requestContext, _ struct{}) handler.Response {
	return handler.JSON(forms.Registry())
}

func (s *Service) listFields(_ *requestContext, _ struct{}) handler.Response {
	kinds := FieldKinds()
	out := make([]FieldKind, len(kinds))
	for i, k := range kinds {
		out[i] = FieldKind{Name: k}
	}
	return handler.JSON(out)
}

func (s *Service) validateForm(ctx *requestContext, body json.RawMessage) handler.Response {
	name := chi.URLParam(ctx.Request(), "form")
	form, err := forms.Lookup(name)
	if err != nil {
		return handler.JSONError(fmt.Errorf("%w: %w", handler.ErrNotFound, err))
	}

	res, err := form.Validate(body, s.clock)
	if err != nil {
		ctx.recordMalformed()
		return handler.JSONError(fmt.Errorf("%w: %w", handler.ErrBadRequest, err))
	}

	res = s.catalog.LocalizeResult(ctx.lang, res)
	ctx.record(res.IsValid, len(res.Details))

	if res.IsValid {
		return handler.JSON(res, meta(name, ctx.lang))
	}
	return handler.JSON(res,
		meta(name, ctx.lang),
		handler.WithJSONStatus(http.StatusUnprocessableEntity),
		handler.WithJSONError(validationDetail(handler.FromValidationErrors(res.Details))),
	)
}

func (s *Service) validateField(ctx *requestContext, req FieldRequest) handler.Response {
	kind := chi.URLParam(ctx.Request(), "kind")

	res, err := ValidateField(kind, req)
	switch {
	case errors.Is(err, ErrUnknownFieldKind):
		return handler.JSONError(fmt.Errorf("%w: %w", handler.ErrNotFound, err))
	case err != nil:
		ctx.recordMalformed()
		return handler.JSONError(fmt.Errorf("%w: %w", handler.ErrBadRequest, err))
	}

	res = s.catalog.LocalizeField(ctx.lang, res)
	if res.IsValid {
		ctx.record(true, 0)
		return handler.JSON(res, meta(kind, ctx.lang))
	}
	ctx.record(false, 1)

	verr := handler.NewValidationError()
	verr.Add("value", res.Error)
	return handler.JSON(res,
		meta(kind, ctx.lang),
		handler.WithJSONStatus(http.StatusUnprocessableEntity),
		handler.WithJSONError(validationDetail(verr)),
	)
}

func (s *Service) exportMessages(ctx *requestContext, _ struct{}) handler.Response {
	lang := s.catalog.Resolve(chi.URLParam(ctx.Request(), "lang"))
	data, err := s.catalog.ExportJSON(lang)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(json.RawMessage(data), handler.WithJSONMeta(map[string]any{"locale": lang}))
}

func meta(name, lang string) handler.JSONOption {
	return handler.WithJSONMeta(map[string]any{"form": name, "locale": lang})
}

func validationDetail(verr handler.ValidationError) *handler.ErrorDetail {
	_, detail := handler.ErrorToDetail(verr)
	return detail
}
