package schema

import (
	"cmp"
	"strings"

	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

// Compare returns an integer comparing two schemas in the canonical total
// order: first by kind rank, then by variant attributes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// A nil schema sorts before everything.
func Compare(a, b Schema) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	switch x := a.(type) {
	case Anything, Nothing, Null, Boolean:
		return 0
	case *Number:
		y := b.(*Number)
		if c := compareBool(x.whole, y.whole); c != 0 {
			return c
		}
		if c := compareBool(x.signed, y.signed); c != 0 {
			return c
		}
		return cmp.Compare(x.nbytes, y.nbytes)
	case *String:
		y := b.(*String)
		if c := strings.Compare(string(x.charset), string(y.charset)); c != 0 {
			return c
		}
		return cmp.Compare(x.maxLength, y.maxLength)
	case *Tensor:
		y := b.(*Tensor)
		if c := Compare(x.items, y.items); c != 0 {
			return c
		}
		return compareInts(x.dimensions, y.dimensions)
	case *Collection:
		y := b.(*Collection)
		if c := Compare(x.items, y.items); c != 0 {
			return c
		}
		if c := compareBool(x.ordered, y.ordered); c != 0 {
			return c
		}
		return cmp.Compare(x.maxLength, y.maxLength)
	case *Mapping:
		y := b.(*Mapping)
		if c := Compare(x.keys, y.keys); c != 0 {
			return c
		}
		return Compare(x.values, y.values)
	case *Record:
		return compareRecords(x, b.(*Record))
	case *Union:
		return compareSchemas(x.possibilities, b.(*Union).possibilities)
	case *Reference:
		return kpath.Compare(x.path, b.(*Reference).path)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Schema) bool {
	return Compare(a, b) == 0
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareSchemas(a, b []Schema) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// compareRecords compares the sorted (name, schema) pairs of two records.
func compareRecords(a, b *Record) int {
	for i := 0; i < len(a.names) && i < len(b.names); i++ {
		if c := strings.Compare(a.names[i], b.names[i]); c != 0 {
			return c
		}
		if c := Compare(a.fields[a.names[i]], b.fields[b.names[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.names), len(b.names))
}
