package i18n_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/i18n"
)

func testConfig() (i18n.Config, i18n.State) {
	cfg := i18n.Config{
		DefaultLanguage: "en",
		Languages:       []string{"en", "de"},
	}
	return cfg, i18n.NewState("en", "de")
}

func TestCorrect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		lang     string
		query    string
		prefixed string
	}{
		{
			name:     "strips the default language",
			path:     "/en/foo",
			query:    "/foo",
			prefixed: "/foo",
		},
		{
			name:     "explicit default language",
			path:     "/en/foo",
			lang:     "en",
			query:    "/foo",
			prefixed: "/foo",
		},
		{
			name:     "path without prefix stays as is",
			path:     "/foo",
			query:    "/foo",
			prefixed: "/foo",
		},
		{
			name:     "default language root keeps slash",
			path:     "/en/",
			query:    "/",
			prefixed: "/",
		},
		{
			name:     "bare language segment is root",
			path:     "/en",
			query:    "/",
			prefixed: "/",
		},
		{
			name:     "non-default language is added",
			path:     "/foo",
			lang:     "de",
			query:    "/foo?lng=de",
			prefixed: "/de/foo",
		},
		{
			name:     "non-default language already present",
			path:     "/de/foo/bar",
			lang:     "de",
			query:    "/foo/bar?lng=de",
			prefixed: "/de/foo/bar",
		},
		{
			name:     "non-default language root",
			path:     "/",
			lang:     "de",
			query:    "/?lng=de",
			prefixed: "/de/",
		},
		{
			name:     "partial segment is not stripped",
			path:     "/english/foo",
			query:    "/english/foo",
			prefixed: "/english/foo",
		},
		{
			name:     "partial segment for non-default language",
			path:     "/dev/tools",
			lang:     "de",
			query:    "/dev/tools?lng=de",
			prefixed: "/de/dev/tools",
		},
		{
			name:     "other language prefix is kept",
			path:     "/en/foo",
			lang:     "de",
			query:    "/en/foo?lng=de",
			prefixed: "/de/en/foo",
		},
		{
			name:     "empty path",
			path:     "",
			query:    "/",
			prefixed: "/",
		},
		{
			name:     "missing leading slash",
			path:     "foo",
			lang:     "de",
			query:    "/foo?lng=de",
			prefixed: "/de/foo",
		},
		{
			name:     "existing query string",
			path:     "/de/search?q=go",
			lang:     "de",
			query:    "/search?q=go&lng=de",
			prefixed: "/de/search?q=go",
		},
		{
			name:     "existing query string on default language",
			path:     "/en?q=go",
			query:    "/?q=go",
			prefixed: "/?q=go",
		},
		{
			name:     "fragment on prefixed path",
			path:     "/de#top",
			lang:     "de",
			query:    "/?lng=de#top",
			prefixed: "/de/#top",
		},
		{
			name:     "marker goes before the fragment",
			path:     "/foo#top",
			lang:     "de",
			query:    "/foo?lng=de#top",
			prefixed: "/de/foo#top",
		},
		{
			name:     "query and fragment",
			path:     "/de/foo?q=1#top",
			lang:     "de",
			query:    "/foo?q=1&lng=de#top",
			prefixed: "/de/foo?q=1#top",
		},
		{
			name:     "question mark inside fragment",
			path:     "/foo#a?b",
			lang:     "de",
			query:    "/foo?lng=de#a?b",
			prefixed: "/de/foo#a?b",
		},
		{
			name:     "fragment on default language",
			path:     "/en/foo#top",
			query:    "/foo#top",
			prefixed: "/foo#top",
		},
		{
			name:     "empty trailing query",
			path:     "/de?",
			lang:     "de",
			query:    "/?lng=de",
			prefixed: "/de/",
		},
		{
			name:     "empty trailing query on default language",
			path:     "/foo?",
			query:    "/foo",
			prefixed: "/foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, state := testConfig()

			res, err := i18n.Correct(cfg, state, tt.path, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.query, res.Query)
			assert.Equal(t, tt.prefixed, res.Path)
			assert.Equal(t, [2]string{tt.query, tt.prefixed}, res.Pair())
		})
	}
}

func TestCorrect_LanguageNotConfigured(t *testing.T) {
	t.Parallel()

	t.Run("default language missing", func(t *testing.T) {
		t.Parallel()
		cfg, state := testConfig()
		cfg.Languages = []string{"de", "fr"}

		_, err := i18n.Correct(cfg, state, "/", "")
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid configuration: Current language is not included in all languages array.")
		assert.ErrorIs(t, err, i18n.ErrLanguageNotConfigured)

		var cfgErr *i18n.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "en", cfgErr.Language)
		assert.Equal(t, []string{"de", "fr"}, cfgErr.Languages)
	})

	t.Run("explicit language missing", func(t *testing.T) {
		t.Parallel()
		cfg, state := testConfig()

		res, err := i18n.Correct(cfg, state, "/fr/foo", "fr")
		assert.ErrorIs(t, err, i18n.ErrLanguageNotConfigured)
		assert.Equal(t, i18n.Result{}, res)
	})

	t.Run("runtime state does not widen the config", func(t *testing.T) {
		t.Parallel()
		cfg, _ := testConfig()

		_, err := i18n.Correct(cfg, i18n.NewState("en", "de", "fr"), "/foo", "fr")
		assert.ErrorIs(t, err, i18n.ErrLanguageNotConfigured)
	})
}

func TestCorrect_Idempotent(t *testing.T) {
	t.Parallel()
	cfg, state := testConfig()

	for _, lang := range []string{"en", "de"} {
		for _, path := range []string{"/", "/foo", "/de/foo", "/en/foo/", "/search?q=1", "/de#top", "/foo?q=1#top"} {
			first, err := i18n.Correct(cfg, state, path, lang)
			require.NoError(t, err)

			second, err := i18n.Correct(cfg, state, first.Path, lang)
			require.NoError(t, err)
			assert.Equal(t, first, second, "lang=%s path=%s", lang, path)
		}
	}
}

func TestMustCorrect(t *testing.T) {
	t.Parallel()
	cfg, state := testConfig()

	assert.Equal(t, i18n.Result{Query: "/foo?lng=de", Path: "/de/foo"},
		i18n.MustCorrect(cfg, state, "/foo", "de"))

	assert.Panics(t, func() {
		i18n.MustCorrect(cfg, state, "/foo", "fr")
	})
}

func TestSplitPath(t *testing.T) {
	t.Parallel()
	cfg := i18n.Config{
		DefaultLanguage: "en",
		Languages:       []string{"en", "de", "pt-BR"},
	}

	tests := []struct {
		path string
		lang string
		bare string
	}{
		{path: "/de/foo", lang: "de", bare: "/foo"},
		{path: "/de", lang: "de", bare: "/"},
		{path: "/pt-BR/a/b", lang: "pt-BR", bare: "/a/b"},
		{path: "/en/", lang: "en", bare: "/"},
		{path: "/foo", lang: "en", bare: "/foo"},
		{path: "/dev", lang: "en", bare: "/dev"},
		{path: "", lang: "en", bare: "/"},
		{path: "/de?x=1", lang: "de", bare: "/?x=1"},
		{path: "/de#top", lang: "de", bare: "/#top"},
		{path: "/pt-BR/a#b?c", lang: "pt-BR", bare: "/a#b?c"},
	}

	for _, tt := range tests {
		lang, bare := i18n.SplitPath(cfg, tt.path)
		assert.Equal(t, tt.lang, lang, tt.path)
		assert.Equal(t, tt.bare, bare, tt.path)
	}
}

func TestState(t *testing.T) {
	t.Parallel()

	langs := []string{"en", "de"}
	state := i18n.NewState(langs...)
	langs[0] = "fr"

	assert.True(t, state.Has("en"))
	assert.False(t, state.Has("fr"))

	cfg, _ := testConfig()
	assert.Equal(t, []string{"en", "de"}, cfg.State().Languages)
}
