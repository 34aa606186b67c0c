package console

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// MetaName labels the diagnostic emitted for non-string messages.
const MetaName = "Meta"

const inspectDepth = 8

var inspector = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                inspectDepth,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

const metaRule = "------------------------------------------------"

// metaMessage explains that v is not a string and dumps it, unexported
// fields included.
func metaMessage(v any) string {
	typ := typeName(v)

	var b strings.Builder
	fmt.Fprintf(&b, "Param message needs to be of type: string. Instead, '%s' was provided.\n\n", typ)
	b.WriteString(metaRule + "\n\n")
	fmt.Fprintf(&b, "  The provided %s:\n\n", typ)
	for line := range strings.SplitSeq(strings.TrimRight(inspector.Sdump(v), "\n"), "\n") {
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("\n" + metaRule)
	return b.String()
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
