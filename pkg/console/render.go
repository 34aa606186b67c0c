package console

import (
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var badgeColors = map[string]lipgloss.Color{
	"Warning": lipgloss.Color("214"),
	"Error":   lipgloss.Color("196"),
	"Info":    lipgloss.Color("39"),
	MetaName:  lipgloss.Color("201"),
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// rendererFor returns a lipgloss renderer for w. Colors are used only when
// forced or when w is a terminal.
func (c *Console) rendererFor(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case c.color != nil && *c.color:
		r.SetColorProfile(termenv.ANSI256)
	case c.color != nil, !isTerminal(w):
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// render formats e as a labelled block followed by its stack frames:
//
//	Warning  disk almost full
//
//	- at main.main (main.go:12)
func (c *Console) render(w io.Writer, e *Entry) string {
	r := c.rendererFor(w)

	color, ok := badgeColors[e.Name]
	if !ok {
		color = badgeColors["Info"]
	}
	badge := r.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color("231")).
		Background(color).
		Render(e.Name)

	var b strings.Builder
	b.WriteString(badge)
	b.WriteString(" ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if len(e.Stack) > 0 {
		location := r.NewStyle().Faint(true)
		b.WriteString("\n")
		for _, f := range e.Stack {
			b.WriteString("  - at ")
			b.WriteString(shortFunction(f.Function))
			b.WriteString(" ")
			b.WriteString(location.Render("(" + filepath.Base(f.File) + ":" + strconv.Itoa(f.Line) + ")"))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// shortFunction drops the import path from a fully qualified function name.
func shortFunction(name string) string {
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		return name[idx+1:]
	}
	return name
}
