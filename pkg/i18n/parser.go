package i18n

import (
	"context"
	"strings"
)

// Parser decodes a Config from file content.
type Parser interface {
	Parse(ctx context.Context, content []byte) (Config, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(getFileExtension(filename)) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}

// fileConfig accepts both snake_case keys and the camelCase
// defaultLanguage/allLanguages keys used by JavaScript site configs.
type fileConfig struct {
	DefaultLanguage      string   `yaml:"default_language" json:"default_language"`
	DefaultLanguageCamel string   `yaml:"defaultLanguage" json:"defaultLanguage"`
	Languages            []string `yaml:"languages" json:"languages"`
	AllLanguages         []string `yaml:"allLanguages" json:"allLanguages"`
}

func (f fileConfig) config() Config {
	cfg := Config{
		DefaultLanguage: f.DefaultLanguage,
		Languages:       f.Languages,
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = f.DefaultLanguageCamel
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = f.AllLanguages
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = DefaultLanguage
	}
	return cfg
}
