package encode

import "github.com/signadot/tony-format/go-typesys/format"

type EncodeOption func(*EncState)

type EncState struct {
	format format.Format
	indent int
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent sets the YAML indentation, 2 by default.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	return newEncState(opts).format
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{format: format.YAMLFormat, indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
