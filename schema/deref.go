package schema

import (
	"fmt"

	"github.com/signadot/tony-format/go-typesys/debug"
	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

// Dereference walks path through s and returns the schema found there.
//
// Field segments select record fields and string mapping keys; index segments
// select tensor positions (one dimension per segment), ordered collection
// elements and integer mapping keys. A path that stops part way through a
// tensor's dimensions yields a tensor of the remaining dimensions. Unions,
// references and atomic schemas cannot be dereferenced by a non-empty path.
//
// All failures are *DereferenceError.
func Dereference(s Schema, path ...kpath.Segment) (Schema, error) {
	res, err := dereference(s, kpath.Path(path))
	if debug.Deref() {
		debug.Logf("dereference %s in %s: %v %v\n", kpath.Path(path), s, res, err)
	}
	return res, err
}

// DereferencePath is Dereference with a textual path such as "a.b[3]".
func DereferencePath(s Schema, path string) (Schema, error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil, &DereferenceError{Path: nil, Pos: -1, Kind: s.Kind(), Reason: err.Error()}
	}
	return Dereference(s, kp...)
}

func dereference(s Schema, path kpath.Path) (Schema, error) {
	cur := s
	pos := 0
	fail := func(pos int, k Kind, format string, args ...any) error {
		return &DereferenceError{Path: path, Pos: pos, Kind: k, Reason: fmt.Sprintf(format, args...)}
	}
	for pos < len(path) {
		seg := path[pos]
		switch x := cur.(type) {
		case *Tensor:
			j := 0
			for ; j < len(x.dimensions); j++ {
				if pos+j == len(path) {
					return &Tensor{items: x.items, dimensions: append([]int(nil), x.dimensions[j:]...)}, nil
				}
				i, ok := path[pos+j].IndexValue()
				if !ok {
					return nil, fail(pos+j, TensorKind, "can't use a field to dereference a tensor")
				}
				if i < 0 || i >= x.dimensions[j] {
					return nil, fail(pos+j, TensorKind, "index %d out of range for tensor dimension %d", i, x.dimensions[j])
				}
			}
			pos += j
			cur = x.items
		case *Collection:
			i, ok := seg.IndexValue()
			if !ok {
				return nil, fail(pos, CollectionKind, "can't use a field to dereference a collection")
			}
			if i < 0 || (x.maxLength != Unbounded && i >= x.maxLength) {
				return nil, fail(pos, CollectionKind, "index %d out of range for collection with maxlength %d", i, x.maxLength)
			}
			if !x.ordered {
				return nil, fail(pos, CollectionKind, "can't dereference index %d from an unordered collection", i)
			}
			pos++
			cur = x.items
		case *Mapping:
			if !mappingKeyAccepts(x.keys, seg) {
				return nil, fail(pos, MappingKind, "can't dereference mapping with keys %s", x.keys)
			}
			pos++
			cur = x.values
		case *Record:
			name, ok := seg.FieldName()
			if !ok {
				return nil, fail(pos, RecordKind, "can't use an index to dereference a record")
			}
			f, ok := x.fields[name]
			if !ok {
				return nil, fail(pos, RecordKind, "no field named %q", name)
			}
			pos++
			cur = f
		case *Union:
			return nil, fail(pos, UnionKind, "can't dereference a union")
		case *Reference:
			return nil, fail(pos, ReferenceKind, "can't dereference a reference")
		default:
			return nil, fail(pos, cur.Kind(), "%s cannot be dereferenced", cur.Kind())
		}
	}
	return cur, nil
}

// mappingKeyAccepts reports whether seg has the runtime shape of keys:
// a field for string keys, an index for integral number keys.
func mappingKeyAccepts(keys Schema, seg kpath.Segment) bool {
	switch k := unwrap(keys).(type) {
	case *String:
		return !seg.IsIndex()
	case *Number:
		return k.whole && seg.IsIndex()
	}
	return false
}

// Schema resolves the reference against root, returning the schema of one
// element reached by following the reference. The reference path is followed
// by a trailing Index(0), so a reference to a collection of strings resolves
// to the string schema, not the collection.
//
// The target must be concrete: a reference or a union of several
// possibilities is an error.
func (r *Reference) Schema(root Schema) (Schema, error) {
	if root == nil {
		return nil, &DereferenceError{Path: r.path, Pos: -1, Kind: ReferenceKind, Reason: "nil root"}
	}
	path := r.path.Append(kpath.Index(0))
	target, err := Dereference(root, path...)
	if err != nil {
		return nil, err
	}
	switch x := unwrap(target).(type) {
	case *Reference:
		return nil, &DereferenceError{Path: path, Pos: -1, Kind: ReferenceKind, Reason: fmt.Sprintf("target %s is a reference", x)}
	case *Union:
		return nil, &DereferenceError{Path: path, Pos: -1, Kind: UnionKind, Reason: fmt.Sprintf("target %s is ambiguous", x)}
	}
	return target, nil
}
