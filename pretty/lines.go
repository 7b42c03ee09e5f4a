package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-typesys/schema"
)

// Line is one line of a rendering.
type Line struct {
	Depth int
	Text  string
	// Node is the schema the line belongs to. The opening and closing lines
	// of a composite both belong to the composite.
	Node schema.Schema
}

// Lines renders s.
func Lines(s schema.Schema) []Line {
	return lines(s, 0, "")
}

func lines(s schema.Schema, depth int, comma string) []Line {
	open := Line{Depth: depth, Text: s.Kind().String() + "(", Node: s}
	closing := func(text string) Line {
		return Line{Depth: depth + 1, Text: text + ")" + comma, Node: s}
	}
	switch x := s.(type) {
	case *schema.Tensor:
		res := []Line{open}
		res = append(res, lines(x.Items(), depth+1, ",")...)
		dims := x.Dimensions()
		parts := make([]string, len(dims))
		for i, d := range dims {
			parts[i] = strconv.Itoa(d)
		}
		return append(res, closing(strings.Join(parts, ", ")))
	case *schema.Collection:
		res := []Line{open}
		res = append(res, lines(x.Items(), depth+1, ",")...)
		attrs := fmt.Sprintf("ordered=%t", x.Ordered())
		if n, ok := x.MaxLength(); ok {
			attrs += fmt.Sprintf(", maxlength=%d", n)
		}
		return append(res, closing(attrs))
	case *schema.Mapping:
		res := []Line{open}
		res = append(res, prefixed("keys=", lines(x.Keys(), depth+1, ","))...)
		res = append(res, prefixed("values=", lines(x.Values(), depth+1, ""))...)
		return append(res, closing(""))
	case *schema.Record:
		res := []Line{open}
		names := x.FieldNames()
		for i, n := range names {
			f, _ := x.Field(n)
			res = append(res, prefixed(n+"=", lines(f, depth+1, sep(i, len(names))))...)
		}
		return append(res, closing(""))
	case *schema.Union:
		res := []Line{open}
		for i, p := range x.Possibilities() {
			res = append(res, lines(p, depth+1, sep(i, x.Len()))...)
		}
		return append(res, closing(""))
	}
	return []Line{{Depth: depth, Text: s.String() + comma, Node: s}}
}

func prefixed(p string, ls []Line) []Line {
	ls[0].Text = p + ls[0].Text
	return ls
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}
