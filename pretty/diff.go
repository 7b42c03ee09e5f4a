package pretty

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/tony-format/go-typesys/schema"
)

// Diff returns a line diff of the renderings of a and b: lines only in a are
// prefixed by "-", lines only in b by "+" and common lines by " ". The
// result is empty if a and b are equal.
func Diff(a, b schema.Schema) string {
	if schema.Equal(a, b) {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lineArray := dmp.DiffLinesToChars(Pretty(a)+"\n", Pretty(b)+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lineArray)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(l)
		}
	}
	return buf.String()
}
