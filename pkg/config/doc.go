// Package config loads typed configuration structs from the process
// environment.
//
// Values are parsed with github.com/caarlos0/env/v11 using struct tags. The
// default `.env` file in the working directory is read once with
// github.com/joho/godotenv before the first parse; additional files can be
// loaded explicitly with LoadEnv.
//
// Each (type, prefix) pair is parsed at most once per process and served from
// an in-memory cache afterwards:
//
//	type I18nConfig struct {
//	    DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"en"`
//	    Languages       []string `env:"LANGUAGES" envSeparator:","`
//	}
//
//	var cfg I18nConfig
//	if err := config.Load(&cfg, config.WithPrefix("I18N_")); err != nil {
//	    return err
//	}
//
// Use ResetCache in tests that change the environment between loads.
package config
