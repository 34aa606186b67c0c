package i18n

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/localekit/pkg/config"
)

// DefaultLanguage is used when a Config does not name one.
const DefaultLanguage = "en"

// EnvPrefix is prepended to the env tags of Config by LoadConfig.
const EnvPrefix = "I18N_"

// Config describes the site's language scheme.
// Languages is ordered and must contain DefaultLanguage.
type Config struct {
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	Languages       []string `env:"LANGUAGES" envSeparator:"," envDefault:"en"`
}

// Has reports whether lang is one of the configured languages.
func (c Config) Has(lang string) bool {
	return slices.Contains(c.Languages, lang)
}

// IsDefault reports whether lang is the default language.
func (c Config) IsDefault(lang string) bool {
	return lang == c.DefaultLanguage
}

// State returns a State with every configured language registered.
func (c Config) State() State {
	return NewState(c.Languages...)
}

// Validate checks that the configuration can be served.
// Every problem found is reported, wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	var result *multierror.Error

	switch {
	case strings.TrimSpace(c.DefaultLanguage) == "":
		result = multierror.Append(result, ErrEmptyDefaultLanguage)
	case !c.Has(c.DefaultLanguage):
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrDefaultLanguageNotListed, c.DefaultLanguage))
	}

	if len(c.Languages) == 0 {
		result = multierror.Append(result, ErrNoLanguages)
	}

	seen := make(map[string]struct{}, len(c.Languages))
	for i, lang := range c.Languages {
		if strings.TrimSpace(lang) == "" {
			result = multierror.Append(result, fmt.Errorf("%w at index %d", ErrEmptyLanguage, i))
			continue
		}
		if _, ok := seen[lang]; ok {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrDuplicateLanguage, lang))
			continue
		}
		seen[lang] = struct{}{}

		if strings.ContainsAny(lang, "/?#") {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrMalformedLanguage, lang))
			continue
		}
		if _, err := language.Parse(lang); err != nil {
			result = multierror.Append(result, fmt.Errorf("%w: %q: %w", ErrMalformedLanguage, lang, err))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads Config from I18N_DEFAULT_LANGUAGE and I18N_LANGUAGES
// and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(EnvPrefix)); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML or JSON config file and validates it.
func LoadConfigFile(ctx context.Context, filename string) (Config, error) {
	parser := NewParserForFile(filename)
	if parser == nil {
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, filename)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Join(ErrFailedToReadFile, err)
	}

	cfg, err := parser.Parse(ctx, content)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
