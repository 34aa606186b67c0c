package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups non-nil errors under the key "errors", indexed by position.
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records a message kind under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// TraceLimit records a stack-trace depth under the key "trace_limit".
func TraceLimit(n int) slog.Attr {
	return slog.Int("trace_limit", n)
}

// Frames records caller frames as a list of "function file:line" strings.
func Frames(frames []string) slog.Attr {
	if len(frames) == 0 {
		return slog.Attr{}
	}
	return slog.Any("frames", frames)
}
