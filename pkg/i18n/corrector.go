package i18n

import "strings"

// QueryParam is the query parameter that carries a non-default language.
const QueryParam = "lng"

// Result holds the same route in both addressing conventions.
type Result struct {
	// Query is the bare path with the language as a query parameter.
	Query string
	// Path is the bare path with the language as a leading segment.
	Path string
}

// Pair returns the result as [query variant, path variant].
func (r Result) Pair() [2]string {
	return [2]string{r.Query, r.Path}
}

// Correct rewrites path for lang so that the default language carries no
// marker and any other language is addressed as "?lng=<lang>" and as a
// "/<lang>" prefix. An empty lang means cfg.DefaultLanguage.
//
// A leading "/<lang>" segment already present in path is stripped first, so
// correcting Result.Path again with the same language is stable. Query
// strings and fragments are kept; the marker is placed before the fragment.
//
// It returns a *ConfigurationError when lang is not listed in cfg.Languages.
// The state argument carries the host's registered languages; the rewrite
// itself depends on cfg only.
func Correct(cfg Config, state State, path, lang string) (Result, error) {
	if lang == "" {
		lang = cfg.DefaultLanguage
	}
	if !cfg.Has(lang) {
		return Result{}, &ConfigurationError{Language: lang, Languages: cfg.Languages}
	}

	p, query, fragment := splitURL(normalizePath(path))
	bare := stripLanguage(p, lang)

	if cfg.IsDefault(lang) {
		return Result{Query: bare + query + fragment, Path: bare + query + fragment}, nil
	}

	sep := "?"
	if query != "" {
		sep = "&"
	}
	return Result{
		Query: bare + query + sep + QueryParam + "=" + lang + fragment,
		Path:  "/" + lang + bare + query + fragment,
	}, nil
}

// MustCorrect is like Correct but panics on a configuration error.
func MustCorrect(cfg Config, state State, path, lang string) Result {
	res, err := Correct(cfg, state, path, lang)
	if err != nil {
		panic(err)
	}
	return res
}

// SplitPath reports which configured language prefixes path and returns the
// path without that prefix. Paths without a language segment belong to the
// default language.
func SplitPath(cfg Config, path string) (lang, bare string) {
	p, query, fragment := splitURL(normalizePath(path))
	for _, l := range cfg.Languages {
		if l == "" {
			continue
		}
		if hasLanguagePrefix(p, l) {
			return l, stripLanguage(p, l) + query + fragment
		}
	}
	return cfg.DefaultLanguage, p + query + fragment
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// splitURL cuts path into its path, query and fragment parts. The query
// keeps its leading "?" and the fragment its leading "#". A bare "?" counts
// as no query.
func splitURL(path string) (p, query, fragment string) {
	p = path
	if idx := strings.IndexByte(p, '#'); idx != -1 {
		p, fragment = p[:idx], p[idx:]
	}
	if idx := strings.IndexByte(p, '?'); idx != -1 {
		p, query = p[:idx], p[idx:]
	}
	if query == "?" {
		query = ""
	}
	if p == "" {
		p = "/"
	}
	return p, query, fragment
}

func hasLanguagePrefix(path, lang string) bool {
	prefix := "/" + lang
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// stripLanguage removes a leading "/<lang>" segment. The root stays "/".
func stripLanguage(path, lang string) string {
	if !hasLanguagePrefix(path, lang) {
		return path
	}
	rest := path[len(lang)+1:]
	if rest == "" {
		return "/"
	}
	return rest
}
