package backend

import (
	"reflect"
	"slices"

	"github.com/signadot/tony-format/go-typesys/debug"
	"github.com/signadot/tony-format/go-typesys/pretty"
	"github.com/signadot/tony-format/go-typesys/schema"
)

// Capability is what a backend can do with schemas of one kind.
type Capability struct {
	// Supported reports whether the node itself can be represented; its
	// children are checked separately. Nil means supported.
	Supported func(s schema.Schema) bool
	// IsInstance checks membership of v. It should use b.IsInstance for
	// child schemas. Nil means schema.IsInstance.
	IsInstance func(b *Backend, s schema.Schema, v any) bool
}

type Table map[schema.Kind]Capability

type Backend struct {
	name  string
	table Table
	cons  schema.Constructors
}

type Option func(*Backend)

// WithConstructors sets the constructors Adapt rebuilds schemas with.
func WithConstructors(cs schema.Constructors) Option {
	return func(b *Backend) { b.cons = cs }
}

func New(name string, table Table, opts ...Option) *Backend {
	b := &Backend{name: name, table: table}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) Name() string { return b.name }

func (b *Backend) String() string { return b.name }

// Supported reports whether every node of s is supported. A Null
// possibility of a union marks the union nullable and is not checked on its
// own.
func (b *Backend) Supported(s schema.Schema) bool {
	return len(b.unsupported(s, nil)) == 0
}

// UnsupportedNodes returns the nodes of s the backend cannot represent, in
// depth first order.
func (b *Backend) UnsupportedNodes(s schema.Schema) []schema.Schema {
	return b.unsupported(s, nil)
}

func (b *Backend) unsupported(s schema.Schema, acc []schema.Schema) []schema.Schema {
	if !b.nodeSupported(s) {
		if debug.Backend() {
			debug.Logf("%s: unsupported %s\n", b.name, s)
		}
		acc = append(acc, s)
	}
	switch x := s.(type) {
	case *schema.Tensor:
		acc = b.unsupported(x.Items(), acc)
	case *schema.Collection:
		acc = b.unsupported(x.Items(), acc)
	case *schema.Mapping:
		acc = b.unsupported(x.Keys(), acc)
		acc = b.unsupported(x.Values(), acc)
	case *schema.Record:
		for _, n := range x.FieldNames() {
			f, _ := x.Field(n)
			acc = b.unsupported(f, acc)
		}
	case *schema.Union:
		for _, p := range x.Possibilities() {
			if p.Kind() == schema.NullKind {
				continue
			}
			acc = b.unsupported(p, acc)
		}
	}
	return acc
}

func (b *Backend) nodeSupported(s schema.Schema) bool {
	c := b.table[s.Kind()]
	if c.Supported == nil {
		return true
	}
	return c.Supported(s)
}

// Unsupported renders s with each unsupported node flagged by "--> ".
func (b *Backend) Unsupported(s schema.Schema) string {
	bad := b.UnsupportedNodes(s)
	return pretty.Pretty(s, pretty.WithHighlight(func(n schema.Schema) string {
		if slices.Contains(bad, n) {
			return "--> "
		}
		return "    "
	}))
}

// IsInstance reports whether v conforms to s as represented by the backend.
func (b *Backend) IsInstance(s schema.Schema, v any) bool {
	c := b.table[s.Kind()]
	if c.IsInstance == nil {
		return schema.IsInstance(s, v)
	}
	return c.IsInstance(b, s, v)
}

// IsDataset reports whether data is a slice or array whose every element
// conforms to s as represented by the backend.
func (b *Backend) IsDataset(s schema.Schema, data any) bool {
	rv := indirect(reflect.ValueOf(data))
	if !isSequence(rv) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !b.IsInstance(s, rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// Adapt rebuilds s with the backend's constructors.
func (b *Backend) Adapt(s schema.Schema) (schema.Schema, error) {
	return schema.Rebuild(s, b.cons)
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Array:
		return true
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	}
	return false
}
