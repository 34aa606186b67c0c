package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser implements Parser for JSON files.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes JSON content into a Config.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, errors.Join(ErrParsingCancelled, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(content, &fc); err != nil {
		return Config{}, errors.Join(ErrFailedToParseJSON, err)
	}
	return fc.config(), nil
}

// SupportsFileExtension checks if the parser supports the given file extension.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
