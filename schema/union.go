package schema

import (
	"slices"

	"github.com/signadot/tony-format/go-typesys/debug"
)

// NewUnion returns the normalized union of ps.
//
// Nested unions are flattened. Possibilities are then inserted one at a time:
// a candidate already covered by an accumulated possibility is dropped, and
// accumulated possibilities covered by the candidate are removed. The result
// is sorted by Compare. A single possibility stays a one element union.
//
// Subtype checks that fail to resolve a reference count as "not a subtype".
func NewUnion(ps ...Schema) (*Union, error) {
	for _, p := range ps {
		if p == nil {
			return nil, constructionErr(UnionKind, "nil possibility")
		}
	}
	n := &normalizer{seen: map[uint64][]Schema{}}
	for _, p := range ps {
		n.insert(p)
	}
	slices.SortFunc(n.acc, Compare)
	if debug.Union() {
		debug.Logf("union of %d possibilities normalized to %d\n", len(ps), len(n.acc))
	}
	return &Union{possibilities: n.acc}, nil
}

func MustUnion(ps ...Schema) *Union {
	u, err := NewUnion(ps...)
	if err != nil {
		panic(err)
	}
	return u
}

type normalizer struct {
	acc  []Schema
	seen map[uint64][]Schema
}

func (n *normalizer) insert(p Schema) {
	if u, ok := p.(*Union); ok {
		for _, pp := range u.possibilities {
			n.insert(pp)
		}
		return
	}
	h := Hash(p)
	for _, q := range n.seen[h] {
		if Equal(p, q) && slices.ContainsFunc(n.acc, func(x Schema) bool { return x == q }) {
			return
		}
	}
	found := false
	for i := len(n.acc) - 1; i >= 0; i-- {
		x := n.acc[i]
		if covers(x, p) {
			found = true
			if debug.Union() {
				debug.Logf("union: %s already covered by %s\n", p, x)
			}
		} else if covers(p, x) {
			if debug.Union() {
				debug.Logf("union: %s removed, covered by %s\n", x, p)
			}
			n.acc = slices.Delete(n.acc, i, i+1)
		}
	}
	if !found {
		n.acc = append(n.acc, p)
		n.seen[h] = append(n.seen[h], p)
	}
}

func covers(super, sub Schema) bool {
	ok, err := IsSubtype(super, sub)
	return err == nil && ok
}

// unwrap returns the sole possibility of one element unions, repeatedly.
func unwrap(s Schema) Schema {
	for {
		u, ok := s.(*Union)
		if !ok || len(u.possibilities) != 1 {
			return s
		}
		s = u.possibilities[0]
	}
}
