// Package i18n loads translation catalogs and negotiates the request language.
//
// Translations are nested maps keyed by language, loaded through a
// TranslationAdapter (MapAdapter, or FSAdapter over embed.FS or a directory)
// and a Parser such as YAMLParser. Templates use named placeholders:
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), files, "translations"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	msg := translator.T("vi-VN", "validation.required", "label", "Email")
//
// Language tags are matched with golang.org/x/text/language, so regional
// variants resolve to their base language and unknown languages fall back to
// the default.
//
// Middleware stores the negotiated language in the request context; read it
// back with GetLocale.
package i18n
