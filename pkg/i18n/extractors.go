package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor reads the requested language from an HTTP request.
// An empty result means "no preference".
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds the sources checked by DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts extracted languages to langs. Unsupported
// explicit choices are ignored and the next source is tried.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order: the "lang" cookie, the "lang" query
// parameter, then the Accept-Language header.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{CookieName: "lang", QueryParamName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	supported := cfg.SupportedLangs
	m := newMatcher(supported)

	normalize := func(lang string) string {
		lang = strings.TrimSpace(lang)
		if lang == "" || len(lang) > maxLangCodeLength {
			return ""
		}
		if len(supported) == 0 {
			return strings.ToLower(lang)
		}
		return matchLanguage(m, supported, lang)
	}

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := normalize(c.Value); lang != "" {
					return lang
				}
			}
		}

		if cfg.QueryParamName != "" {
			if lang := normalize(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(supported) > 0 {
			return ParseAcceptLanguage(header, supported, "")
		}
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		return normalize(first)
	}
}
