// Package handler provides type-safe JSON HTTP handlers.
//
// A HandlerFunc receives a bound request value and returns a Response.
// Wrap turns it into an http.HandlerFunc, running binders first and routing
// any bind or render failure through an ErrorHandler:
//
//	type fieldRequest struct {
//		Value   json.RawMessage `json:"value"`
//		Options json.RawMessage `json:"options"`
//	}
//
//	h := handler.Wrap(func(ctx handler.Context, req fieldRequest) handler.Response {
//		res := validate(req)
//		if !res.IsValid {
//			return handler.JSON(res, handler.WithJSONStatus(http.StatusUnprocessableEntity))
//		}
//		return handler.JSON(res)
//	},
//		handler.WithBinders[handler.Context, fieldRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, fieldRequest](handler.NewErrorHandler[handler.Context](log)),
//	)
//
// # Custom contexts
//
// Any type embedding Context can be the handler context. Pass a factory so
// Wrap can build it, and decorators to wrap every call, e.g. for timing:
//
//	type appContext struct {
//		handler.Context
//		lang string
//	}
//
//	handler.Wrap(h,
//		handler.WithContextFactory[*appContext, fieldRequest](newAppContext),
//		handler.WithErrorHandler[*appContext, fieldRequest](handler.NewErrorHandler[*appContext](log)),
//		handler.WithDecorators[*appContext, fieldRequest](timed),
//	)
//
// # Errors
//
// HTTPError pairs a status code with a stable key ("not_found",
// "bad_request"). ValidationError maps fields to messages and renders as 422
// with per-field details. Binder failures become 400 or 415. Anything else is
// a 500 whose message is not exposed to the client.
//
// All JSON bodies share the JSONResponse envelope: data, meta and error.
package handler
