package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into entries keyed by language.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
	// SupportsFileExtension accepts the extension with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// YAMLParser reads files whose top-level keys are language codes:
//
//	en:
//	  validation:
//	    required: "%{label} is required"
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q must map to keys, got %T", ErrFailedToParseYAML, lang, val)
		}
		result[lang] = entries
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrFailedToParseYAML)
	}
	return result, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser reads the same layout as YAMLParser encoded as JSON.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		entries, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q must map to keys, got %T", ErrFailedToParseJSON, lang, val)
		}
		result[lang] = entries
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrFailedToParseJSON)
	}
	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
