package i18n

import "slices"

// State lists the languages currently registered as active by the host
// application.
type State struct {
	Languages []string
}

// NewState returns a State holding a copy of langs.
func NewState(langs ...string) State {
	return State{Languages: slices.Clone(langs)}
}

// Has reports whether lang is registered.
func (s State) Has(lang string) bool {
	return slices.Contains(s.Languages, lang)
}
