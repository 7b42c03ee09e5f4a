package schema

import (
	"slices"

	"github.com/signadot/tony-format/go-typesys/debug"
)

// IsSubtype reports whether a value of sub can be used wherever super is
// required. References are resolved against sub, the schema being queried;
// use IsSubtypeIn to resolve them against another root.
//
// A union subtype is checked possibility by possibility: against a union
// supertype every possibility must be covered, against any other supertype
// one possibility suffices.
//
// References on either side are resolved. The only error is a
// *DereferenceError from a reference that does not resolve to a single
// concrete schema in the root.
func IsSubtype(super, sub Schema) (bool, error) {
	return IsSubtypeIn(super, sub, sub)
}

// IsSubtypeIn is IsSubtype with references resolved against root.
func IsSubtypeIn(super, sub, root Schema) (bool, error) {
	st := &subtyper{root: root}
	res, err := st.check(super, sub)
	if debug.Subtype() {
		debug.Logf("subtype %s >= %s: %t %v\n", super, sub, res, err)
	}
	return res, err
}

// MustSubtype is like IsSubtype but panics on error.
func MustSubtype(super, sub Schema) bool {
	res, err := IsSubtype(super, sub)
	if err != nil {
		panic(err)
	}
	return res
}

type subtyper struct {
	root Schema
	// pairs under comparison through a reference, by hash; met again they
	// are assumed to hold so recursive schemas terminate.
	assumed map[[2]uint64][]pair
}

type pair struct {
	super, sub Schema
}

func (st *subtyper) isAssumed(key [2]uint64, super, sub Schema) bool {
	for _, p := range st.assumed[key] {
		if Equal(p.super, super) && Equal(p.sub, sub) {
			return true
		}
	}
	return false
}

func (st *subtyper) check(super, sub Schema) (bool, error) {
	super, sub = unwrap(super), unwrap(sub)
	if _, ok := super.(Anything); ok {
		return true, nil
	}
	if Equal(super, sub) {
		return true, nil
	}
	if _, ok := sub.(Nothing); ok {
		return true, nil
	}
	if _, ok := super.(Nothing); ok {
		return false, nil
	}
	if r, ok := super.(*Reference); ok {
		return st.resolved(super, sub, r, func(target Schema) (bool, error) {
			return st.check(target, sub)
		})
	}
	if u, ok := super.(*Union); ok {
		return st.unionCovers(u, sub)
	}
	if r, ok := sub.(*Reference); ok {
		return st.resolved(super, sub, r, func(target Schema) (bool, error) {
			return st.check(super, target)
		})
	}
	if u, ok := sub.(*Union); ok {
		// against a non-union, one possibility suffices
		for _, p := range u.possibilities {
			ok, err := st.check(super, p)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}

	switch x := super.(type) {
	case Null, Boolean:
		return super.Kind() == sub.Kind(), nil
	case *Number:
		y, ok := sub.(*Number)
		if !ok {
			return false, nil
		}
		return numberCovers(x, y), nil
	case *String:
		y, ok := sub.(*String)
		if !ok {
			return false, nil
		}
		if x.charset != y.charset {
			return false, nil
		}
		return lengthCovers(x.maxLength, y.maxLength), nil
	case *Tensor:
		y, ok := sub.(*Tensor)
		if !ok {
			return false, nil
		}
		if !slices.Equal(x.dimensions, y.dimensions) {
			return false, nil
		}
		return st.check(x.items, y.items)
	case *Collection:
		y, ok := sub.(*Collection)
		if !ok {
			return false, nil
		}
		if x.ordered && !y.ordered {
			return false, nil
		}
		if !lengthCovers(x.maxLength, y.maxLength) {
			return false, nil
		}
		return st.check(x.items, y.items)
	case *Mapping:
		y, ok := sub.(*Mapping)
		if !ok {
			return false, nil
		}
		ok, err := st.check(x.keys, y.keys)
		if err != nil || !ok {
			return false, err
		}
		return st.check(x.values, y.values)
	case *Record:
		y, ok := sub.(*Record)
		if !ok {
			return false, nil
		}
		for _, n := range x.names {
			yf, ok := y.fields[n]
			if !ok {
				return false, nil
			}
			ok, err := st.check(x.fields[n], yf)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
	return false, nil
}

// unionCovers requires every possibility of sub (a bare schema counts as a
// one element union) to be a subtype of some possibility of u.
func (st *subtyper) unionCovers(u *Union, sub Schema) (bool, error) {
	subs := []Schema{sub}
	if su, ok := sub.(*Union); ok {
		subs = su.possibilities
	}
	for _, p2 := range subs {
		found := false
		for _, p1 := range u.possibilities {
			ok, err := st.check(p1, p2)
			if err != nil {
				return false, err
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

func (st *subtyper) resolved(super, sub Schema, r *Reference, f func(Schema) (bool, error)) (bool, error) {
	key := [2]uint64{Hash(super), Hash(sub)}
	if st.isAssumed(key, super, sub) {
		return true, nil
	}
	target, err := r.Schema(st.root)
	if err != nil {
		return false, err
	}
	if st.assumed == nil {
		st.assumed = map[[2]uint64][]pair{}
	}
	st.assumed[key] = append(st.assumed[key], pair{super, sub})
	defer func() {
		ps := st.assumed[key]
		if len(ps) == 1 {
			delete(st.assumed, key)
			return
		}
		st.assumed[key] = ps[:len(ps)-1]
	}()
	return f(target)
}

// numberCovers: the subtype is no more fractional, has the same signedness
// and fits in no more bytes.
func numberCovers(super, sub *Number) bool {
	if super.whole && !sub.whole {
		return false
	}
	if super.signed != sub.signed {
		return false
	}
	return sub.nbytes <= super.nbytes
}

// lengthCovers: a bounded supertype requires a bounded subtype whose bound
// is no larger.
func lengthCovers(super, sub int) bool {
	if super == Unbounded {
		return true
	}
	return sub != Unbounded && sub <= super
}
