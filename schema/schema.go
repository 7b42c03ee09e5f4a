package schema

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

// Schema is a node in a type-description tree.
//
// The set of implementations is closed: Anything, Nothing, Null, Boolean,
// *Number, *String, *Tensor, *Collection, *Mapping, *Record, *Union and
// *Reference. Schemas are immutable once constructed.
type Schema interface {
	Kind() Kind
	String() string
	isSchema()
}

// Unbounded is the maximum length of strings and collections with no maximum.
const Unbounded = -1

// Anything is the supertype of all other schemas, the "top type". It is
// useful for describing schemaless data.
type Anything struct{}

func (Anything) Kind() Kind     { return AnythingKind }
func (Anything) String() string { return "Anything()" }
func (Anything) isSchema()      {}

// Nothing has no members, the "bottom type".
type Nothing struct{}

func (Nothing) Kind() Kind     { return NothingKind }
func (Nothing) String() string { return "Nothing()" }
func (Nothing) isSchema()      {}

// Null has exactly one member, the absence of a value. Combined with a union
// it describes nullable data.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) String() string { return "Null()" }
func (Null) isSchema()      {}

// Boolean has exactly two members.
type Boolean struct{}

func (Boolean) Kind() Kind     { return BooleanKind }
func (Boolean) String() string { return "Boolean()" }
func (Boolean) isSchema()      {}

// Number describes integral and floating point numbers by integrality,
// signedness and byte width.
type Number struct {
	whole  bool
	signed bool
	nbytes int
}

// NewNumber returns a Number schema. nbytes must be positive.
func NewNumber(whole, signed bool, nbytes int) (*Number, error) {
	if nbytes <= 0 {
		return nil, constructionErr(NumberKind, "nbytes must be positive, got %d", nbytes)
	}
	return &Number{whole: whole, signed: signed, nbytes: nbytes}, nil
}

func MustNumber(whole, signed bool, nbytes int) *Number {
	n, err := NewNumber(whole, signed, nbytes)
	if err != nil {
		panic(err)
	}
	return n
}

// Whole is true for integral numbers, false for floating point.
func (n *Number) Whole() bool { return n.whole }

// Signed is true if negative values can be expressed.
func (n *Number) Signed() bool { return n.signed }

// NBytes is the width in bytes.
func (n *Number) NBytes() int { return n.nbytes }

func (n *Number) Kind() Kind { return NumberKind }
func (n *Number) isSchema()  {}
func (n *Number) String() string {
	return fmt.Sprintf("Number(whole=%t, signed=%t, nbytes=%d)", n.whole, n.signed, n.nbytes)
}

// Charset names the encoding of a String schema.
type Charset string

const (
	CharsetBytes   Charset = "bytes"
	CharsetUTF8    Charset = "utf-8"
	CharsetUTF32LE Charset = "utf-32le"
)

// String describes byte strings and text. It is not a Collection: strings of
// variable width characters are not arrays of bytes.
type String struct {
	charset   Charset
	maxLength int
}

// NewString returns a String schema. maxLength is Unbounded or non-negative.
func NewString(cs Charset, maxLength int) (*String, error) {
	if cs == "" {
		return nil, constructionErr(StringKind, "empty charset")
	}
	if maxLength < Unbounded {
		return nil, constructionErr(StringKind, "maxlength must be non-negative, got %d", maxLength)
	}
	return &String{charset: cs, maxLength: maxLength}, nil
}

func MustString(cs Charset, maxLength int) *String {
	s, err := NewString(cs, maxLength)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *String) Charset() Charset { return s.charset }

// MaxLength returns the maximum length and true, or false if unbounded.
func (s *String) MaxLength() (int, bool) {
	return s.maxLength, s.maxLength != Unbounded
}

func (s *String) Kind() Kind { return StringKind }
func (s *String) isSchema()  {}
func (s *String) String() string {
	if s.maxLength == Unbounded {
		return fmt.Sprintf("String(charset=%q)", string(s.charset))
	}
	return fmt.Sprintf("String(charset=%q, maxlength=%d)", string(s.charset), s.maxLength)
}

// Tensor is a fixed rank, fixed extent homogeneous array.
type Tensor struct {
	items      Schema
	dimensions []int
}

// NewTensor returns a Tensor of items with the given dimensions; there must be
// at least one dimension and each must be at least 1.
func NewTensor(items Schema, dimensions ...int) (*Tensor, error) {
	if items == nil {
		return nil, constructionErr(TensorKind, "nil items")
	}
	if len(dimensions) == 0 {
		return nil, constructionErr(TensorKind, "no dimensions")
	}
	for i, d := range dimensions {
		if d < 1 {
			return nil, constructionErr(TensorKind, "dimension %d must be at least 1, got %d", i, d)
		}
	}
	return &Tensor{items: items, dimensions: slices.Clone(dimensions)}, nil
}

func MustTensor(items Schema, dimensions ...int) *Tensor {
	t, err := NewTensor(items, dimensions...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tensor) Items() Schema { return t.items }

// Dimensions returns a copy of the extents, outermost first.
func (t *Tensor) Dimensions() []int { return slices.Clone(t.dimensions) }

func (t *Tensor) Rank() int { return len(t.dimensions) }

func (t *Tensor) Kind() Kind { return TensorKind }
func (t *Tensor) isSchema()  {}
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(%s, %s)", t.items, joinInts(t.dimensions))
}

// Collection is a variable length list (ordered) or multiset (unordered).
type Collection struct {
	items     Schema
	ordered   bool
	maxLength int
}

// NewCollection returns a Collection schema. maxLength is Unbounded or
// non-negative.
func NewCollection(items Schema, ordered bool, maxLength int) (*Collection, error) {
	if items == nil {
		return nil, constructionErr(CollectionKind, "nil items")
	}
	if maxLength < Unbounded {
		return nil, constructionErr(CollectionKind, "maxlength must be non-negative, got %d", maxLength)
	}
	return &Collection{items: items, ordered: ordered, maxLength: maxLength}, nil
}

func MustCollection(items Schema, ordered bool, maxLength int) *Collection {
	c, err := NewCollection(items, ordered, maxLength)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Collection) Items() Schema { return c.items }
func (c *Collection) Ordered() bool { return c.ordered }

// MaxLength returns the maximum length and true, or false if unbounded.
func (c *Collection) MaxLength() (int, bool) {
	return c.maxLength, c.maxLength != Unbounded
}

func (c *Collection) Kind() Kind { return CollectionKind }
func (c *Collection) isSchema()  {}
func (c *Collection) String() string {
	if c.maxLength == Unbounded {
		return fmt.Sprintf("Collection(%s, ordered=%t)", c.items, c.ordered)
	}
	return fmt.Sprintf("Collection(%s, ordered=%t, maxlength=%d)", c.items, c.ordered, c.maxLength)
}

// Mapping associates keys with values.
type Mapping struct {
	keys   Schema
	values Schema
}

func NewMapping(keys, values Schema) (*Mapping, error) {
	if keys == nil || values == nil {
		return nil, constructionErr(MappingKind, "nil keys or values")
	}
	return &Mapping{keys: keys, values: values}, nil
}

func MustMapping(keys, values Schema) *Mapping {
	m, err := NewMapping(keys, values)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Mapping) Keys() Schema   { return m.keys }
func (m *Mapping) Values() Schema { return m.values }

func (m *Mapping) Kind() Kind { return MappingKind }
func (m *Mapping) isSchema()  {}
func (m *Mapping) String() string {
	return fmt.Sprintf("Mapping(keys=%s, values=%s)", m.keys, m.values)
}

// Record is a product type with a fixed set of named fields.
type Record struct {
	fields map[string]Schema
	names  []string
}

func NewRecord(fields map[string]Schema) (*Record, error) {
	for n, f := range fields {
		if n == "" {
			return nil, constructionErr(RecordKind, "empty field name")
		}
		if f == nil {
			return nil, constructionErr(RecordKind, "nil schema for field %q", n)
		}
	}
	names := slices.Sorted(maps.Keys(fields))
	return &Record{fields: maps.Clone(fields), names: names}, nil
}

func MustRecord(fields map[string]Schema) *Record {
	r, err := NewRecord(fields)
	if err != nil {
		panic(err)
	}
	return r
}

// Field returns the schema of the named field.
func (r *Record) Field(name string) (Schema, bool) {
	f, ok := r.fields[name]
	return f, ok
}

// FieldNames returns the field names in sorted order.
func (r *Record) FieldNames() []string { return slices.Clone(r.names) }

// Fields returns a copy of the field map.
func (r *Record) Fields() map[string]Schema { return maps.Clone(r.fields) }

func (r *Record) Len() int { return len(r.names) }

func (r *Record) Kind() Kind { return RecordKind }
func (r *Record) isSchema()  {}
func (r *Record) String() string {
	parts := make([]string, len(r.names))
	for i, n := range r.names {
		parts[i] = n + "=" + r.fields[n].String()
	}
	return "Record(" + strings.Join(parts, ", ") + ")"
}

// Union is a sum type; a member may be a member of any possibility.
// Possibilities are flattened, free of mutual subtypes and sorted; see
// NewUnion.
type Union struct {
	possibilities []Schema
}

// Possibilities returns a copy of the normalized possibilities.
func (u *Union) Possibilities() []Schema { return slices.Clone(u.possibilities) }

func (u *Union) Len() int { return len(u.possibilities) }

// Possibility returns the i'th possibility.
func (u *Union) Possibility(i int) Schema { return u.possibilities[i] }

func (u *Union) Kind() Kind { return UnionKind }
func (u *Union) isSchema()  {}
func (u *Union) String() string {
	parts := make([]string, len(u.possibilities))
	for i, p := range u.possibilities {
		parts[i] = p.String()
	}
	return "Union(" + strings.Join(parts, ", ") + ")"
}

// Reference is an index into another part of a schema tree, for example a
// pointer into a table. Its path names an ordered collection (or tensor, or
// integer keyed mapping) relative to a root schema supplied when the
// reference is resolved.
type Reference struct {
	path kpath.Path
}

func NewReference(path ...kpath.Segment) *Reference {
	return &Reference{path: slices.Clone(kpath.Path(path))}
}

// ParseReference returns a reference to the textual path p, e.g. "table" or
// "outer.inner[2]".
func ParseReference(p string) (*Reference, error) {
	kp, err := kpath.Parse(p)
	if err != nil {
		return nil, constructionErr(ReferenceKind, "%v", err)
	}
	return &Reference{path: kp}, nil
}

func MustReference(p string) *Reference {
	r, err := ParseReference(p)
	if err != nil {
		panic(err)
	}
	return r
}

// Path returns a copy of the reference path.
func (r *Reference) Path() kpath.Path { return slices.Clone(r.path) }

func (r *Reference) Kind() Kind { return ReferenceKind }
func (r *Reference) isSchema()  {}
func (r *Reference) String() string {
	return fmt.Sprintf("Reference(%q)", r.path.String())
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}
