package console

import "log/slog"

// Kind selects the label and output stream of a message.
type Kind string

const (
	KindWarn  Kind = "warn"
	KindError Kind = "err"
	KindInfo  Kind = "info"
)

// Normalize maps "error" to KindError and unknown kinds to KindInfo.
func (k Kind) Normalize() Kind {
	switch k {
	case KindWarn, KindError:
		return k
	case "error":
		return KindError
	default:
		return KindInfo
	}
}

// Label returns the human name shown in front of the message.
func (k Kind) Label() string {
	switch k.Normalize() {
	case KindWarn:
		return "Warning"
	case KindError:
		return "Error"
	default:
		return "Info"
	}
}

func (k Kind) level() slog.Level {
	switch k.Normalize() {
	case KindWarn:
		return slog.LevelWarn
	case KindError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
