package pretty

import (
	"strings"

	"github.com/signadot/tony-format/go-typesys/schema"
)

// Pretty renders s as indented text, one line per Line.
func Pretty(s schema.Schema, os ...Option) string {
	o := newOpts(os)
	buf := &strings.Builder{}
	for i, l := range Lines(s) {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(o.highlight(l.Node))
		buf.WriteString(strings.Repeat(o.indent, l.Depth))
		if o.colors != nil {
			buf.WriteString(o.colors.Color(l.Node.Kind(), l.Text))
		} else {
			buf.WriteString(l.Text)
		}
	}
	return buf.String()
}
