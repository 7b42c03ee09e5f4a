package pretty

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/signadot/tony-format/go-typesys/schema"
)

// Compare renders a and b side by side.
//
// Lines are paired by depth: lines at equal depth share a row, and where one
// side is deeper its lines are printed against a blank column until the
// depths meet again. Between the columns is the result of the between
// function (see WithBetween), by default ">" where the paired schemas
// differ.
func Compare(a, b schema.Schema, os ...Option) string {
	o := newOpts(os)
	one, two := Lines(a), Lines(b)
	width := o.width
	if width <= 0 {
		for _, ls := range [][]Line{one, two} {
			for _, l := range ls {
				width = max(width, runewidth.StringWidth(o.render(l.Depth, l.Text)))
			}
		}
	}
	blank := strings.Repeat(" ", width)

	var out []string
	i1, i2 := 0, 0
	d1, d2 := 0, 0
	for i1 < len(one) || i2 < len(two) {
		var (
			l1, l2 string
			t1, t2 schema.Schema
		)
		if i1 < len(one) {
			d1, l1, t1 = one[i1].Depth, one[i1].Text, one[i1].Node
		}
		if i2 < len(two) {
			d2, l2, t2 = two[i2].Depth, two[i2].Text, two[i2].Node
		}
		// an exhausted side follows the other
		switch {
		case i1 >= len(one):
			d1 = d2
		case i2 >= len(two):
			d2 = d1
		}
		if d1 >= d2 {
			l1 = column(o.render(d1, l1), width)
		}
		if d2 >= d1 {
			l2 = column(o.render(d2, l2), width)
		}
		switch {
		case d1 == d2:
			out = append(out, l1+" "+o.between(t1, t2)+" "+l2)
			i1++
			i2++
		case d1 > d2:
			out = append(out, l1+" "+o.between(t1, nil)+" "+blank)
			i1++
		default:
			out = append(out, blank+" "+o.between(nil, t2)+" "+l2)
			i2++
		}
	}
	return strings.Join(out, "\n")
}

func (o *opts) render(depth int, text string) string {
	return strings.Repeat(o.indent, depth) + text
}

// column truncates or pads s to width display cells.
func column(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
