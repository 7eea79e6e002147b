package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/garagekit/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))

	ctx := i18n.SetLocale(context.Background(), "vi")
	assert.Equal(t, "vi", i18n.GetLocale(ctx))
	assert.Equal(t, "en", i18n.GetLocale(i18n.SetLocale(ctx, "")))
}

func TestMiddleware(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = i18n.GetLocale(r.Context())
	})

	t.Run("uses extractor", func(t *testing.T) {
		h := i18n.Middleware(func(*http.Request) string { return "vi" })(next)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "vi", got)
	})

	t.Run("empty extraction falls back", func(t *testing.T) {
		h := i18n.Middleware(func(*http.Request) string { return "" })(next)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "en", got)
	})

	t.Run("nil extractor reads Accept-Language", func(t *testing.T) {
		h := i18n.Middleware(nil)(next)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "VI-vn,en;q=0.5")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "vi-vn", got)
	})
}

func TestDefaultLangExtractor(t *testing.T) {
	extract := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages("en", "vi"))

	tests := []struct {
		name   string
		cookie string
		query  string
		header string
		want   string
	}{
		{name: "nothing", want: ""},
		{name: "cookie wins", cookie: "vi", query: "en", header: "en", want: "vi"},
		{name: "query", query: "vi-VN", header: "en", want: "vi"},
		{name: "unsupported cookie skipped", cookie: "fr", query: "vi", want: "vi"},
		{name: "header with quality", header: "fr;q=0.9, vi;q=0.8, en;q=0.1", want: "vi"},
		{name: "header without match", header: "fr, de", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?lang=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "lang", Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.want, extract(req))
		})
	}

	t.Run("custom names", func(t *testing.T) {
		custom := i18n.DefaultLangExtractor(i18n.WithCookieName("locale"), i18n.WithQueryParamName("hl"))
		req := httptest.NewRequest(http.MethodGet, "/?hl=VI", nil)
		assert.Equal(t, "vi", custom(req))
	})
}

func TestParseAcceptLanguage(t *testing.T) {
	supported := []string{"en", "vi"}

	assert.Equal(t, "en", i18n.ParseAcceptLanguage("", supported, "en"))
	assert.Equal(t, "vi", i18n.ParseAcceptLanguage("vi-VN,vi;q=0.9,en;q=0.8", supported, "en"))
	assert.Equal(t, "en", i18n.ParseAcceptLanguage("en-US", supported, "vi"))
	assert.Equal(t, "vi", i18n.ParseAcceptLanguage("ja", supported, "vi"))
	assert.Equal(t, "en", i18n.ParseAcceptLanguage("vi", nil, "en"))
}
