package encode

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/signadot/tony-format/go-typesys/schema"
)

// Marshal encodes s as a YAML (default) or JSON document. Within each node
// "kind" comes first and the other keys follow in sorted order.
func Marshal(s schema.Schema, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	yopts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.format.IsJSON() {
		yopts = append(yopts, yaml.JSON())
	}
	return yaml.MarshalWithOptions(ordered(ToDoc(s)), yopts...)
}

// Encode writes the encoding of s to w.
func Encode(s schema.Schema, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(s, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Unmarshal decodes a schema from a YAML or JSON document.
func Unmarshal(d []byte) (schema.Schema, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return FromDoc(v)
}

// Decode reads a whole document from r and decodes it.
func Decode(r io.Reader) (schema.Schema, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(d)
}

// ordered converts document maps to yaml.MapSlice with "kind" first.
func ordered(v any) any {
	switch x := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i] == "kind" || keys[j] == "kind" {
				return keys[i] == "kind"
			}
			return keys[i] < keys[j]
		})
		res := make(yaml.MapSlice, len(keys))
		for i, k := range keys {
			res[i] = yaml.MapItem{Key: k, Value: ordered(x[k])}
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = ordered(e)
		}
		return res
	}
	return v
}
