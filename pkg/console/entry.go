package console

import (
	"fmt"
	"runtime"
)

// Entry is the error-like value rendered for every message.
type Entry struct {
	Name    string
	Message string
	Stack   []runtime.Frame
}

func (e *Entry) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

// Frames formats the captured stack as "function file:line" strings.
func (e *Entry) Frames() []string {
	if len(e.Stack) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.Stack))
	for _, f := range e.Stack {
		out = append(out, fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line))
	}
	return out
}

// maxCallerBatch bounds the pc buffer of a single runtime.Callers call.
const maxCallerBatch = 64

// captureStack returns at most limit frames, starting skip frames above
// its caller. Any limit is accepted; the buffer grows only while the
// goroutine has more frames to report.
func captureStack(limit, skip int) []runtime.Frame {
	if limit <= 0 {
		return nil
	}

	var pcs []uintptr
	buf := make([]uintptr, min(limit, maxCallerBatch))
	for {
		n := runtime.Callers(skip+2+len(pcs), buf)
		pcs = append(pcs, buf[:n]...)
		if n < len(buf) || len(pcs) >= limit {
			break
		}
		if rest := limit - len(pcs); rest < len(buf) {
			buf = buf[:rest]
		}
	}
	if len(pcs) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs)
	stack := make([]runtime.Frame, 0, len(pcs))
	for len(stack) < limit {
		f, more := frames.Next()
		stack = append(stack, f)
		if !more {
			break
		}
	}
	return stack
}
