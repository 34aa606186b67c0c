// Package i18n keeps URL paths consistent with a prefix-based language
// scheme: the default language is served without any marker, every other
// language is addressed either as a "/<lang>" path prefix or as a "?lng=<lang>"
// query parameter.
//
// # Usage
//
//	cfg := i18n.Config{DefaultLanguage: "en", Languages: []string{"en", "de"}}
//
//	res, err := i18n.Correct(cfg, cfg.State(), "/en/pricing", "de")
//	if err != nil {
//	    // lang is not part of cfg.Languages
//	}
//	// res.Query == "/pricing?lng=de"
//	// res.Path  == "/de/pricing"
//
// Correct is pure and safe for concurrent use. The only failure is a
// *ConfigurationError, reported when the active language is not configured;
// treat it as a startup defect. MustCorrect panics instead.
//
// # Configuration
//
// Config can be built in code, read from the environment with LoadConfig
// (I18N_DEFAULT_LANGUAGE, I18N_LANGUAGES) or from a YAML/JSON file with
// LoadConfigFile. Both loaders run Config.Validate, which checks that every
// language is a well-formed BCP 47 tag and that the default is listed.
//
// # Error Handling
//
//	if errors.Is(err, i18n.ErrLanguageNotConfigured) {
//	    // configuration defect
//	}
package i18n
