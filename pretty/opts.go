package pretty

import "github.com/signadot/tony-format/go-typesys/schema"

type Option func(*opts)

type opts struct {
	highlight func(schema.Schema) string
	indent    string
	colors    *Colors
	between   func(a, b schema.Schema) string
	width     int
}

func newOpts(os []Option) *opts {
	o := &opts{
		highlight: func(schema.Schema) string { return "" },
		indent:    "  ",
		between:   defaultBetween,
	}
	for _, opt := range os {
		opt(o)
	}
	return o
}

// WithHighlight prefixes every line with the result of f applied to the
// line's schema.
func WithHighlight(f func(schema.Schema) string) Option {
	return func(o *opts) { o.highlight = f }
}

// WithIndent sets the per depth indentation, two spaces by default.
func WithIndent(indent string) Option {
	return func(o *opts) { o.indent = indent }
}

// WithColors colors the text of each line by the kind of its schema. A nil
// Colors disables coloring. Compare ignores colors.
func WithColors(c *Colors) Option {
	return func(o *opts) { o.colors = c }
}

// WithBetween sets the separator Compare places between paired lines. Either
// argument is nil when its side has no line at that depth.
func WithBetween(f func(a, b schema.Schema) string) Option {
	return func(o *opts) { o.between = f }
}

// WithWidth sets the column width of Compare. Longer lines are truncated.
// By default the width of the widest line is used.
func WithWidth(w int) Option {
	return func(o *opts) { o.width = w }
}

func defaultBetween(a, b schema.Schema) string {
	if a == nil || b == nil || schema.Equal(a, b) {
		return " "
	}
	return ">"
}
