package messages

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/garagekit/pkg/i18n"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

//go:embed translations/*.yaml
var translations embed.FS

// DefaultLanguage is the catalog language used for unsupported requests.
const DefaultLanguage = "en"

// Catalog renders validation failures in a requested language.
type Catalog struct {
	tr *i18n.Translator
}

type config struct {
	dir         string
	file        string
	defaultLang string
	logger      *slog.Logger
}

// Option configures New.
type Option func(*config)

// WithDirectory loads catalogs from dir on disk instead of the embedded files.
func WithDirectory(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithFile loads catalogs from a single .yaml, .yml or .json file.
func WithFile(path string) Option {
	return func(c *config) {
		c.file = path
	}
}

func WithDefaultLanguage(lang string) Option {
	return func(c *config) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger enables warnings for keys missing from a catalog.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// New loads the message catalogs.
func New(ctx context.Context, opts ...Option) (*Catalog, error) {
	cfg := config{defaultLang: DefaultLanguage}
	for _, opt := range opts {
		opt(&cfg)
	}

	var adapter i18n.TranslationAdapter = i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), translations, "translations")
	switch {
	case cfg.file != "":
		var parser i18n.Parser = i18n.NewYAMLParser()
		if strings.EqualFold(filepath.Ext(cfg.file), ".json") {
			parser = i18n.NewJSONParser()
		}
		adapter = i18n.NewFileAdapter(parser, cfg.file)
	case cfg.dir != "":
		adapter = i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), cfg.dir)
	}

	trOpts := []i18n.Option{i18n.WithDefaultLanguage(cfg.defaultLang)}
	if cfg.logger != nil {
		trOpts = append(trOpts, i18n.WithLogger(cfg.logger), i18n.WithMissingTranslationsLogging(true))
	}

	tr, err := i18n.NewTranslator(ctx, adapter, trOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return &Catalog{tr: tr}, nil
}

// Translator exposes the underlying translator, e.g. for HTTP language negotiation.
func (c *Catalog) Translator() *i18n.Translator {
	return c.tr
}

// Languages lists the loaded languages, default first.
func (c *Catalog) Languages() []string {
	return c.tr.SupportedLanguages()
}

// Resolve maps a requested language to a loaded one.
func (c *Catalog) Resolve(lang string) string {
	return c.tr.Resolve(lang)
}

// ExportJSON returns the catalog of a language for client-side rendering.
func (c *Catalog) ExportJSON(lang string) (string, error) {
	return c.tr.ExportJSON(c.Resolve(lang))
}

// Localize renders err in lang. Errors without a key, or with a key the
// catalog lacks or renders blank, keep their original message so a failure
// is never reported without text.
func (c *Catalog) Localize(lang string, err validator.ValidationError) string {
	if err.TranslationKey == "" {
		return err.Message
	}
	msg := c.tr.Tm(lang, err.TranslationKey, err.Message, c.values(lang, err.TranslationValues))
	if strings.TrimSpace(msg) == "" {
		return err.Message
	}
	return msg
}

// LocalizeErrors returns a copy of errs with localized messages.
func (c *Catalog) LocalizeErrors(lang string, errs validator.ValidationErrors) validator.ValidationErrors {
	if errs == nil {
		return nil
	}
	out := make(validator.ValidationErrors, len(errs))
	for i, err := range errs {
		err.Message = c.Localize(lang, err)
		out[i] = err
	}
	return out
}

// LocalizeResult returns r with Errors and Details rendered in lang.
func (c *Catalog) LocalizeResult(lang string, r validator.Result) validator.Result {
	if r.IsValid {
		return r
	}
	return validator.NewResult(c.LocalizeErrors(lang, r.Details))
}

// LocalizeField returns f with Error rendered in lang.
func (c *Catalog) LocalizeField(lang string, f validator.FieldResult) validator.FieldResult {
	if f.IsValid || f.Detail == nil {
		return f
	}
	detail := *f.Detail
	detail.Message = c.Localize(lang, detail)
	return validator.Invalid(detail)
}

// values stringifies placeholder values and translates the label when the
// catalog has an entry for it under "labels".
func (c *Catalog) values(lang string, in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = fmt.Sprint(v)
	}
	if label, ok := out["label"]; ok && label != "" {
		out["label"] = c.tr.Td(lang, "labels."+label, label)
	}
	return out
}
