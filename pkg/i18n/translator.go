package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves translation keys to locale text.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, err)
	}
	for lang, entries := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if entries == nil {
			return nil, fmt.Errorf("%w: no entries for language %q", ErrInvalidTranslations, lang)
		}
	}

	t.translations = translations
	t.langs = sortedLanguages(translations, t.defaultLang)
	t.matcher = newMatcher(t.langs)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// sortedLanguages lists languages with the default first so the matcher falls back to it.
func sortedLanguages(translations map[string]map[string]any, defaultLang string) []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	if _, ok := translations[defaultLang]; ok {
		langs = append([]string{defaultLang}, langs...)
	}
	return langs
}

// SupportedLanguages returns the loaded language codes, default language first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the language used for unsupported requests.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Resolve maps any language tag (vi-VN, EN, pt-BR) to the closest loaded
// language, falling back to the default language.
func (t *Translator) Resolve(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.resolve(lang)
}

func (t *Translator) resolve(lang string) string {
	if _, ok := t.translations[lang]; ok {
		return lang
	}
	if matched := matchLanguage(t.matcher, t.langs, lang); matched != "" {
		return matched
	}
	return t.defaultLang
}

// HasTranslation reports whether lang has a string for key. lang is not resolved.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(entries, key).(string)
	return ok
}

// T translates key for lang. args are key, value pairs substituted into
// %{name} placeholders. An unsupported lang is resolved to the closest
// loaded language. A missing key renders as the key itself unless
// WithFallbackToKey(false) was set, in which case T returns "".
//
//	// "welcome": "Hello, %{name}!"
//	translator.T("en", "welcome", "name", "Lan") // "Hello, Lan!"
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.template(lang, key)
	if !ok {
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return interpolate(tmpl, pairs(args))
}

// Td translates key for lang and renders defaultValue when no translation exists.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	return t.Tm(lang, key, defaultValue, pairs(args))
}

// Tm is Td with placeholder values supplied as a map.
func (t *Translator) Tm(lang, key, defaultValue string, values map[string]string) string {
	tmpl, ok := t.template(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return interpolate(tmpl, values)
}

func (t *Translator) template(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved := t.resolve(lang)
	entries, ok := t.translations[resolved]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("key", key))
		}
		return "", false
	}

	s, ok := lookup(entries, key).(string)
	if !ok && t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", resolved), slog.String("key", key))
	}
	return s, ok
}

// ExportJSON returns every translation of lang as a JSON object for client-side use.
func (t *Translator) ExportJSON(lang string) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	entries, ok := t.translations[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", errors.Join(ErrFailedToMarshalJSON, err)
	}
	return string(data), nil
}

// lookup walks dot-separated keys through nested maps. A flat key containing
// dots is tried first so "forms.name_required" works both flat and nested.
func lookup(entries map[string]any, key string) any {
	if v, ok := entries[key]; ok {
		return v
	}

	head, rest, found := strings.Cut(key, ".")
	if !found {
		return nil
	}
	switch next := entries[head].(type) {
	case map[string]any:
		return lookup(next, rest)
	case map[any]any:
		converted := make(map[string]any, len(next))
		for k, v := range next {
			if ks, ok := k.(string); ok {
				converted[ks] = v
			}
		}
		return lookup(converted, rest)
	}
	return nil
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} placeholders. Unknown placeholders are kept.
func interpolate(tmpl string, values map[string]string) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := values[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}

// pairs turns key, value, key, value into a map. A trailing odd key is ignored.
func pairs(args []string) map[string]string {
	values := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		values[args[i]] = args[i+1]
	}
	return values
}
