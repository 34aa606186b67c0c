// Package console pretty-prints warnings, errors and info messages for
// humans watching a terminal, typically from build tooling.
//
//	console.Log(console.KindWarn, "translations for de are incomplete")
//	console.Log(console.KindError, "build failed", 5) // include 5 caller frames
//
// Each message is preceded by an empty line on the info stream and rendered
// as a colored label followed by the text. By default no stack frames are
// shown; the optional trace limit selects how many caller frames are printed.
// Colors are only emitted when the target stream is a terminal, unless
// WithColor says otherwise.
//
// Messages must be strings. Any other value produces a "Meta" diagnostic on
// the error stream that names the value's type and dumps it.
//
// A Console keeps its trace depth as shared state: Log sets it for the
// duration of the call and resets it to DefaultTraceLimit afterwards, except
// after a Meta diagnostic. Calls are not synchronized with each other.
package console
