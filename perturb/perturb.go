// Package perturb generates random schemas and modified copies of schemas,
// for testing code that compares schemas.
package perturb

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/signadot/tony-format/go-typesys/schema"
	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

var (
	widths   = []int{1, 2, 4, 8}
	charsets = []schema.Charset{schema.CharsetBytes, schema.CharsetUTF8, schema.CharsetUTF32LE}
)

// Random returns a random reference free schema of at most the given depth.
func Random(r *rand.Rand, depth int) schema.Schema {
	if depth <= 0 {
		return randomAtom(r)
	}
	switch r.IntN(10) {
	case 0, 1:
		return randomAtom(r)
	case 2:
		dims := make([]int, 1+r.IntN(3))
		for i := range dims {
			dims[i] = 1 + r.IntN(5)
		}
		return schema.MustTensor(Random(r, depth-1), dims...)
	case 3, 4:
		return schema.MustCollection(Random(r, depth-1), r.IntN(2) == 0, randomLength(r))
	case 5:
		return schema.MustMapping(randomAtom(r), Random(r, depth-1))
	case 6, 7:
		fields := map[string]schema.Schema{}
		for i := r.IntN(4); i >= 0; i-- {
			fields[fieldName(r)] = Random(r, depth-1)
		}
		return schema.MustRecord(fields)
	default:
		ps := make([]schema.Schema, 1+r.IntN(3))
		for i := range ps {
			ps[i] = Random(r, depth-1)
		}
		return schema.MustUnion(ps...)
	}
}

func randomAtom(r *rand.Rand) schema.Schema {
	switch r.IntN(8) {
	case 0:
		return schema.Null{}
	case 1:
		return schema.Boolean{}
	case 2, 3, 4:
		return randomNumber(r)
	case 5:
		if r.IntN(4) == 0 {
			return schema.Anything{}
		}
		return schema.Nothing{}
	}
	return schema.MustString(charsets[r.IntN(len(charsets))], randomLength(r))
}

func randomNumber(r *rand.Rand) *schema.Number {
	return schema.MustNumber(r.IntN(2) == 0, r.IntN(2) == 0, widths[r.IntN(len(widths))])
}

func randomLength(r *rand.Rand) int {
	if r.IntN(2) == 0 {
		return schema.Unbounded
	}
	return r.IntN(10)
}

func fieldName(r *rand.Rand) string {
	return string(rune('a' + r.IntN(6)))
}

// Perturb returns a copy of s in which one randomly chosen node differs; s
// itself is not modified. The result is never Equal to s.
func Perturb(r *rand.Rand, s schema.Schema) schema.Schema {
	for {
		res := perturb(r, s)
		if !schema.Equal(res, s) {
			return res
		}
	}
}

// perturb rebuilds s, descending into a random child of composites or
// replacing the node itself.
func perturb(r *rand.Rand, s schema.Schema) schema.Schema {
	children := childCount(s)
	if children == 0 || r.IntN(children+1) == 0 {
		return modify(r, s)
	}
	i := r.IntN(children)
	switch x := s.(type) {
	case *schema.Tensor:
		return schema.MustTensor(perturb(r, x.Items()), x.Dimensions()...)
	case *schema.Collection:
		n, _ := x.MaxLength()
		return schema.MustCollection(perturb(r, x.Items()), x.Ordered(), n)
	case *schema.Mapping:
		if i == 0 {
			return schema.MustMapping(perturb(r, x.Keys()), x.Values())
		}
		return schema.MustMapping(x.Keys(), perturb(r, x.Values()))
	case *schema.Record:
		fields := x.Fields()
		n := x.FieldNames()[i]
		fields[n] = perturb(r, fields[n])
		return schema.MustRecord(fields)
	case *schema.Union:
		ps := x.Possibilities()
		ps[i] = perturb(r, ps[i])
		return schema.MustUnion(ps...)
	}
	panic(fmt.Sprintf("perturb: %s has no children", s))
}

func childCount(s schema.Schema) int {
	switch x := s.(type) {
	case *schema.Tensor, *schema.Collection:
		return 1
	case *schema.Mapping:
		return 2
	case *schema.Record:
		return x.Len()
	case *schema.Union:
		return x.Len()
	}
	return 0
}

// modify changes one attribute of s, or replaces it with a random atom.
func modify(r *rand.Rand, s schema.Schema) schema.Schema {
	switch x := s.(type) {
	case *schema.Number:
		switch r.IntN(3) {
		case 0:
			return schema.MustNumber(!x.Whole(), x.Signed(), x.NBytes())
		case 1:
			return schema.MustNumber(x.Whole(), !x.Signed(), x.NBytes())
		}
		return schema.MustNumber(x.Whole(), x.Signed(), x.NBytes()*2)
	case *schema.String:
		if r.IntN(2) == 0 {
			n, _ := x.MaxLength()
			return schema.MustString(charsets[r.IntN(len(charsets))], n)
		}
		return schema.MustString(x.Charset(), randomLength(r))
	case *schema.Tensor:
		dims := x.Dimensions()
		if r.IntN(2) == 0 {
			dims[r.IntN(len(dims))]++
		} else {
			dims = append(dims, 1+r.IntN(3))
		}
		return schema.MustTensor(x.Items(), dims...)
	case *schema.Collection:
		n, _ := x.MaxLength()
		if r.IntN(2) == 0 {
			return schema.MustCollection(x.Items(), !x.Ordered(), n)
		}
		return schema.MustCollection(x.Items(), x.Ordered(), randomLength(r))
	case *schema.Record:
		fields := x.Fields()
		names := x.FieldNames()
		if len(names) > 0 && r.IntN(2) == 0 {
			delete(fields, names[r.IntN(len(names))])
		} else {
			fields["f"+strconv.Itoa(len(names))] = randomAtom(r)
		}
		return schema.MustRecord(fields)
	case *schema.Union:
		return schema.MustUnion(append(x.Possibilities(), randomAtom(r))...)
	case *schema.Reference:
		return schema.NewReference(x.Path().Append(kpath.Field("x"))...)
	}
	return randomAtom(r)
}
