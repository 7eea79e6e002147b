package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language can be negotiated.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header we are willing to parse.
const maxAcceptLanguageLength = 4096

// maxLangCodeLength is the longest tag accepted from cookies and query strings (RFC 5646).
const maxLangCodeLength = 35

func newMatcher(langs []string) language.Matcher {
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	return language.NewMatcher(tags)
}

// matchLanguage returns the entry of langs closest to lang, or "" when nothing matches.
func matchLanguage(m language.Matcher, langs []string, lang string) string {
	lang = strings.TrimSpace(lang)
	if m == nil || len(langs) == 0 || lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	return pick(m, langs, tag)
}

func pick(m language.Matcher, langs []string, tags ...language.Tag) string {
	_, idx, conf := m.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(langs) {
		return ""
	}
	return langs[idx]
}

// ParseAcceptLanguage negotiates an Accept-Language header against the
// supported languages, honouring quality values. Regional variants match
// their base language (vi-VN matches vi). defaultLang is returned when the
// header is empty, malformed or matches nothing.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	header = strings.TrimSpace(header)
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
		if i := strings.LastIndex(header, ","); i > 0 {
			header = header[:i]
		}
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}

	if lang := pick(newMatcher(supportedLangs), supportedLangs, tags...); lang != "" {
		return lang
	}
	return defaultLang
}
