package schema

import (
	"errors"
	"testing"

	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

func TestReferenceTables(t *testing.T) {
	str := Bytes()
	tests := []struct {
		name  string
		table Schema
		path  []kpath.Segment
		ok    bool
	}{
		{"list", List(str), nil, true},
		{"bounded list", MustCollection(str, true, 5), nil, true},
		{"unordered", MustCollection(str, false, Unbounded), nil, false},
		{"list of lists", List(List(str)), []kpath.Segment{kpath.Index(5)}, true},
		{"matrix row", MustTensor(str, 5, 5), []kpath.Segment{kpath.Index(3)}, true},
		{"cube", MustTensor(str, 5, 5, 5), []kpath.Segment{kpath.Index(3), kpath.Index(3)}, true},
		{"matrix out of range", MustTensor(str, 5, 5), []kpath.Segment{kpath.Index(6)}, false},
		{"mapping", MustMapping(str, List(str)), []kpath.Segment{kpath.Field("")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := MustRecord(map[string]Schema{
				"table":   tt.table,
				"pointer": NewReference(append([]kpath.Segment{kpath.Field("table")}, tt.path...)...),
			})
			p, _ := top.Field("pointer")
			got, err := p.(*Reference).Schema(top)
			if !tt.ok {
				if !errors.Is(err, ErrDereference) {
					t.Errorf("expected dereference error, got %v %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, str) {
				t.Errorf("got %s", got)
			}
			if Equal(got, Text()) {
				t.Errorf("%s resolved to text", p)
			}
		})
	}
}

func TestNestedRecordReference(t *testing.T) {
	top := MustRecord(map[string]Schema{
		"outer":   MustRecord(map[string]Schema{"inner": List(Bytes())}),
		"pointer": MustReference("outer.inner"),
	})
	got, err := MustReference("outer.inner").Schema(top)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, Bytes()) {
		t.Errorf("got %s", got)
	}
	if _, err := MustReference("outer").Schema(nil); !errors.Is(err, ErrDereference) {
		t.Errorf("nil root: got %v", err)
	}
}

func TestDereferenceErrorMessage(t *testing.T) {
	_, err := DereferencePath(MustRecord(nil), "a.b")
	want := `dereference error: Record at a (path "a.b"): no field named "a"`
	if err == nil || err.Error() != want {
		t.Errorf("got %v want %s", err, want)
	}
}

func TestReferenceTargetMustBeConcrete(t *testing.T) {
	root := MustRecord(map[string]Schema{
		"self":     List(MustReference("self")),
		"hop":      List(MustReference("ints")),
		"ints":     List(Int64),
		"either":   List(MustUnion(Int64, Text())),
		"nullable": List(Nullable(Int64)),
		"single":   List(MustUnion(Int32)),
	})
	tests := []struct {
		ref  string
		kind Kind
	}{
		{"self", ReferenceKind},
		{"hop", ReferenceKind},
		{"either", UnionKind},
		{"nullable", UnionKind},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := MustReference(tt.ref).Schema(root)
			var de *DereferenceError
			if !errors.As(err, &de) {
				t.Fatalf("expected dereference error, got %v %v", got, err)
			}
			if de.Kind != tt.kind {
				t.Errorf("got kind %s want %s", de.Kind, tt.kind)
			}
		})
	}
	got, err := MustReference("single").Schema(root)
	if err != nil || !Equal(unwrap(got), Int32) {
		t.Errorf("single: got %v %v", got, err)
	}
}

func TestSelfReferenceIsNotASupertype(t *testing.T) {
	root := MustRecord(map[string]Schema{"t": List(MustReference("t"))})
	for _, sub := range []Schema{Int64, Text(), Boolean{}} {
		ok, err := IsSubtypeIn(MustReference("t"), sub, root)
		if !errors.Is(err, ErrDereference) {
			t.Errorf("%s: expected dereference error, got %t %v", sub, ok, err)
		}
	}
	ok, err := IsSubtypeIn(MustReference("t"), MustReference("t"), root)
	if err != nil || !ok {
		t.Errorf("reflexivity: got %t %v", ok, err)
	}
}
