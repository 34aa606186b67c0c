package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/dmitrymomot/localekit/pkg/logger"
)

// DefaultTraceLimit is the trace depth restored after a message is written.
const DefaultTraceLimit = 10

// Console writes formatted messages to an info, a warning and an error
// stream.
type Console struct {
	info   io.Writer
	warn   io.Writer
	err    io.Writer
	logger *slog.Logger
	color  *bool

	traceLimit atomic.Int64
}

// Option configures a Console.
type Option func(*Console)

// WithInfoOutput sets the stream for info messages and the leading blank
// line. Nil writers are ignored.
func WithInfoOutput(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.info = w
		}
	}
}

// WithWarnOutput sets the stream for warnings. Nil writers are ignored.
func WithWarnOutput(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.warn = w
		}
	}
}

// WithErrorOutput sets the stream for errors and diagnostics. Nil writers
// are ignored.
func WithErrorOutput(w io.Writer) Option {
	return func(c *Console) {
		if w != nil {
			c.err = w
		}
	}
}

// WithOutput sends all three streams to w.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		WithInfoOutput(w)(c)
		WithWarnOutput(w)(c)
		WithErrorOutput(w)(c)
	}
}

// WithLogger mirrors every message to l as a structured record.
func WithLogger(l *slog.Logger) Option {
	return func(c *Console) {
		c.logger = l
	}
}

// WithColor forces colors on or off. By default colors are used only for
// terminal streams.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = &enabled
	}
}

// New creates a Console writing info to stdout and warnings and errors to
// stderr.
func New(opts ...Option) *Console {
	c := &Console{
		info: os.Stdout,
		warn: os.Stderr,
		err:  os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.traceLimit.Store(DefaultTraceLimit)
	return c
}

// TraceLimit returns the current trace depth.
func (c *Console) TraceLimit() int {
	return int(c.traceLimit.Load())
}

// NewEntry builds an entry capturing up to TraceLimit frames above the
// caller.
func (c *Console) NewEntry(name, message string) *Entry {
	return &Entry{
		Name:    name,
		Message: message,
		Stack:   captureStack(c.TraceLimit(), 1),
	}
}

// Log writes message labelled by kind to the stream matching kind, with at
// most traceLimit caller frames (none by default). The trace depth is
// restored to DefaultTraceLimit afterwards.
//
// A message that is not a string is not written. A Meta diagnostic naming
// its type is written to the error stream instead, and the trace depth is
// left at traceLimit.
func (c *Console) Log(kind Kind, message any, traceLimit ...int) {
	c.log(kind, message, traceLimit)
}

// Warn logs a warning.
func (c *Console) Warn(message any, traceLimit ...int) {
	c.log(KindWarn, message, traceLimit)
}

// Error logs an error.
func (c *Console) Error(message any, traceLimit ...int) {
	c.log(KindError, message, traceLimit)
}

// Info logs an info message.
func (c *Console) Info(message any, traceLimit ...int) {
	c.log(KindInfo, message, traceLimit)
}

// log must be called directly from an exported method so that the captured
// stack starts at the user's call site.
func (c *Console) log(kind Kind, message any, traceLimit []int) {
	limit := 0
	if len(traceLimit) > 0 && traceLimit[0] > 0 {
		limit = traceLimit[0]
	}
	c.traceLimit.Store(int64(limit))

	fmt.Fprintln(c.info)

	text, ok := message.(string)
	if !ok {
		meta := &Entry{
			Name:    MetaName,
			Message: metaMessage(message),
			Stack:   captureStack(limit, 2),
		}
		fmt.Fprint(c.err, c.render(c.err, meta))
		c.record(slog.LevelError, "meta", limit, meta)
		return
	}

	kind = kind.Normalize()
	entry := &Entry{
		Name:    kind.Label(),
		Message: text,
		Stack:   captureStack(limit, 2),
	}
	w := c.writerFor(kind)
	fmt.Fprint(w, c.render(w, entry))
	c.traceLimit.Store(DefaultTraceLimit)
	c.record(kind.level(), string(kind), limit, entry)
}

func (c *Console) writerFor(kind Kind) io.Writer {
	switch kind {
	case KindWarn:
		return c.warn
	case KindError:
		return c.err
	default:
		return c.info
	}
}

func (c *Console) record(level slog.Level, kind string, limit int, e *Entry) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), level, e.Message,
		logger.Component("console"),
		logger.Kind(kind),
		logger.TraceLimit(limit),
		logger.Frames(e.Frames()),
	)
}

var defaultConsole atomic.Pointer[Console]

func init() {
	defaultConsole.Store(New())
}

// Default returns the package-level Console.
func Default() *Console {
	return defaultConsole.Load()
}

// SetDefault replaces the package-level Console. Nil is ignored.
func SetDefault(c *Console) {
	if c != nil {
		defaultConsole.Store(c)
	}
}

// Log writes message through the package-level Console.
func Log(kind Kind, message any, traceLimit ...int) {
	Default().log(kind, message, traceLimit)
}
