package i18n

import "errors"

var (
	ErrNilAdapter               = errors.New("i18n: adapter is nil")
	ErrFailedToLoadTranslations = errors.New("i18n: failed to load translations")
	ErrInvalidTranslations      = errors.New("i18n: invalid translations")
	ErrLanguageNotSupported     = errors.New("i18n: language not supported")
	ErrFailedToMarshalJSON      = errors.New("i18n: failed to marshal translations to JSON")

	ErrFailedToParseYAML  = errors.New("i18n: failed to parse YAML content")
	ErrFailedToParseJSON  = errors.New("i18n: failed to parse JSON content")
	ErrUnsupportedFile    = errors.New("i18n: unsupported translation file")
	ErrParsingCancelled   = errors.New("i18n: parsing cancelled")
	ErrFailedToReadDir    = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile   = errors.New("i18n: failed to read translation file")
	ErrNoTranslationFiles = errors.New("i18n: no translation files found")
)
