package i18n

import "errors"

const notConfiguredMessage = "Invalid configuration: Current language is not included in all languages array."

var (
	// ErrLanguageNotConfigured matches every *ConfigurationError.
	ErrLanguageNotConfigured = errors.New("current language is not included in all languages")

	// Config validation
	ErrInvalidConfig            = errors.New("invalid i18n configuration")
	ErrEmptyDefaultLanguage     = errors.New("default language is empty")
	ErrDefaultLanguageNotListed = errors.New("default language is not included in languages")
	ErrNoLanguages              = errors.New("no languages configured")
	ErrEmptyLanguage            = errors.New("empty language code")
	ErrDuplicateLanguage        = errors.New("duplicate language code")
	ErrMalformedLanguage        = errors.New("malformed language code")

	// Config files
	ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
	ErrFailedToReadFile      = errors.New("failed to read config file")
	ErrFailedToParseYAML     = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON     = errors.New("failed to parse JSON content")
	ErrParsingCancelled      = errors.New("config parsing cancelled")
)

// ConfigurationError is returned by Correct when the active language is not
// part of Config.Languages.
type ConfigurationError struct {
	Language  string
	Languages []string
}

func (e *ConfigurationError) Error() string {
	return notConfiguredMessage
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrLanguageNotConfigured
}
