package schema

// Common fixed width numbers, named after their Go types.
var (
	Int8    = MustNumber(true, true, 1)
	Int16   = MustNumber(true, true, 2)
	Int32   = MustNumber(true, true, 4)
	Int64   = MustNumber(true, true, 8)
	Uint8   = MustNumber(true, false, 1)
	Uint16  = MustNumber(true, false, 2)
	Uint32  = MustNumber(true, false, 4)
	Uint64  = MustNumber(true, false, 8)
	Float32 = MustNumber(false, true, 4)
	Float64 = MustNumber(false, true, 8)
)

// Text returns an unbounded "utf-8" String.
func Text() *String { return MustString(CharsetUTF8, Unbounded) }

// Bytes returns an unbounded "bytes" String.
func Bytes() *String { return MustString(CharsetBytes, Unbounded) }

// List returns an unbounded ordered Collection of items.
func List(items Schema) *Collection { return MustCollection(items, true, Unbounded) }

// Nullable returns Union(Null(), s).
func Nullable(s Schema) *Union { return MustUnion(Null{}, s) }
