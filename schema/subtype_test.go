package schema

import (
	"errors"
	"testing"

	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

func samples() []Schema {
	return []Schema{
		Anything{},
		Nothing{},
		Null{},
		Boolean{},
		Int8, Int32, Int64, Uint16, Float32, Float64,
		Text(),
		Bytes(),
		MustString(CharsetUTF8, 10),
		MustTensor(Int64, 2, 3),
		List(Text()),
		MustCollection(Boolean{}, false, 4),
		MustMapping(Text(), Float64),
		MustRecord(map[string]Schema{"x": Int64, "y": Text()}),
		MustRecord(nil),
		Nullable(Int64),
		MustUnion(Int8),
		MustReference("table"),
		MustReference("a[2].b"),
	}
}

func TestReflexive(t *testing.T) {
	for _, s := range samples() {
		ok, err := IsSubtype(s, s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		if !ok {
			t.Errorf("%s is not a subtype of itself", s)
		}
	}
}

func TestTopAndBottom(t *testing.T) {
	for _, s := range samples() {
		if !MustSubtype(Anything{}, s) {
			t.Errorf("Anything() does not cover %s", s)
		}
		if !MustSubtype(s, Nothing{}) {
			t.Errorf("Nothing() is not a subtype of %s", s)
		}
	}
	if MustSubtype(Nothing{}, Null{}) {
		t.Error("Nothing() covers Null()")
	}
	if MustSubtype(Int64, Anything{}) {
		t.Error("Anything() is a subtype of a number")
	}
}

type subtypeCase struct {
	name       string
	super, sub Schema
	want       bool
}

func runSubtype(t *testing.T, tests []subtypeCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsSubtype(tt.super, tt.sub)
			if err != nil {
				t.Fatalf("IsSubtype(%s, %s) error: %v", tt.super, tt.sub, err)
			}
			if got != tt.want {
				t.Errorf("IsSubtype(%s, %s) = %t, want %t", tt.super, tt.sub, got, tt.want)
			}
		})
	}
}

func TestNumberLaw(t *testing.T) {
	runSubtype(t, []subtypeCase{
		{"wider int", Int64, Int32, true},
		{"narrower int", Int32, Int64, false},
		{"sign differs", Int64, Uint32, false},
		{"unsigned widths", Uint64, Uint16, true},
		{"float covers int", Float64, Int64, true},
		{"float covers narrower int", Float64, Int8, true},
		{"int does not cover float", Int64, Float64, false},
		{"float widths", Float64, Float32, true},
		{"float narrower", Float32, Float64, false},
		{"float over unsigned", Float64, Uint8, false},
	})
}

func TestStringLaw(t *testing.T) {
	runSubtype(t, []subtypeCase{
		{"charset differs", Text(), Bytes(), false},
		{"unbounded covers bounded", Text(), MustString(CharsetUTF8, 5), true},
		{"bounded does not cover unbounded", MustString(CharsetUTF8, 5), Text(), false},
		{"longer covers shorter", MustString(CharsetUTF8, 5), MustString(CharsetUTF8, 3), true},
		{"shorter does not cover longer", MustString(CharsetUTF8, 3), MustString(CharsetUTF8, 5), false},
		{"bounded charset differs", MustString(CharsetBytes, 5), MustString(CharsetUTF8, 3), false},
	})
}

func TestTensorLaw(t *testing.T) {
	runSubtype(t, []subtypeCase{
		{"same", MustTensor(Int64, 5), MustTensor(Int64, 5), true},
		{"covariant", MustTensor(Float64, 5), MustTensor(Int64, 5), true},
		{"not contravariant", MustTensor(Int64, 5), MustTensor(Float64, 5), false},
		{"extent differs", MustTensor(Int64, 5), MustTensor(Int64, 6), false},
		{"rank differs", MustTensor(Int64, 5), MustTensor(Int64, 5, 1), false},
		{"collection is not a tensor", MustTensor(Int64, 5), List(Int64), false},
	})
}

func TestCollectionLaw(t *testing.T) {
	unordered := MustCollection(Int64, false, Unbounded)
	runSubtype(t, []subtypeCase{
		{"unordered covers ordered", unordered, List(Int64), true},
		{"ordered does not cover unordered", List(Int64), unordered, false},
		{"covariant", List(Int64), List(Int32), true},
		{"not contravariant", List(Int32), List(Int64), false},
		{"bounded", MustCollection(Int64, true, 4), MustCollection(Int64, true, 3), true},
		{"bounded does not cover unbounded", MustCollection(Int64, true, 4), List(Int64), false},
	})
}

func TestMappingLaw(t *testing.T) {
	runSubtype(t, []subtypeCase{
		{"covariant values", MustMapping(Text(), Int64), MustMapping(Text(), Int32), true},
		{"covariant keys", MustMapping(Int64, Text()), MustMapping(Int16, Text()), true},
		{"keys differ", MustMapping(Text(), Int64), MustMapping(Bytes(), Int64), false},
		{"not a record", MustMapping(Text(), Int64), MustRecord(map[string]Schema{"a": Int64}), false},
	})
}

func TestRecordLaw(t *testing.T) {
	a := MustRecord(map[string]Schema{"a": Int64})
	ab := MustRecord(map[string]Schema{"a": Int64, "b": Text()})
	runSubtype(t, []subtypeCase{
		{"more fields is a subtype", a, ab, true},
		{"fewer fields is not", ab, a, false},
		{"empty record covers records", MustRecord(nil), ab, true},
		{"field covariance", a, MustRecord(map[string]Schema{"a": Int8}), true},
		{"field mismatch", a, MustRecord(map[string]Schema{"a": Text()}), false},
	})
}

func TestUnionLaw(t *testing.T) {
	u := MustUnion(Int64, Text())
	runSubtype(t, []subtypeCase{
		{"union covers possibility", u, Int32, true},
		{"union covers other possibility", u, MustString(CharsetUTF8, 2), true},
		{"union does not cover stranger", u, Boolean{}, false},
		{"union covers smaller union", u, MustUnion(Int8, Text()), true},
		{"union does not cover larger union", u, MustUnion(Int8, Boolean{}), false},
		{"singleton unwraps as super", MustUnion(Int64), Int32, true},
		{"singleton unwraps as sub", Int64, MustUnion(Int32), true},
		{"non-union needs one possibility", Int64, MustUnion(Int32, Text()), true},
		{"non-union covers all possibilities", Float64, MustUnion(Int64, Float32), true},
		{"non-union covers first possibility", Float64, MustUnion(Float64, Text()), true},
		{"non-union covers no possibility", Int64, MustUnion(Boolean{}, Text()), false},
		{"nested non-union", List(Float64), List(MustUnion(Int64, Text())), true},
		{"nullable", Nullable(Int64), Null{}, true},
		{"nullable narrower", Nullable(Int64), Nullable(Int16), true},
		{"nullable as sub", Int64, Nullable(Int64), true},
		{"nullable as sub of null", Null{}, Nullable(Int64), true},
	})
}

func referenceRoot() *Record {
	return MustRecord(map[string]Schema{
		"table": List(MustRecord(map[string]Schema{"x": Int64})),
		"ref":   MustReference("table"),
	})
}

func TestReferenceSubtype(t *testing.T) {
	root := referenceRoot()
	row := MustRecord(map[string]Schema{"x": Int64})
	ok, err := IsSubtypeIn(row, MustReference("table"), root)
	if err != nil || !ok {
		t.Errorf("row vs reference: %t %v", ok, err)
	}
	ok, err = IsSubtypeIn(MustReference("table"), MustRecord(map[string]Schema{"x": Int32, "y": Null{}}), root)
	if err != nil || !ok {
		t.Errorf("reference vs narrower row: %t %v", ok, err)
	}
	ok, err = IsSubtypeIn(MustReference("table"), Int64, root)
	if err != nil || ok {
		t.Errorf("reference vs number: %t %v", ok, err)
	}
	// resolved against the queried schema, which has no "table"
	_, err = IsSubtype(MustReference("table"), Int64)
	if !errors.Is(err, ErrDereference) {
		t.Errorf("expected dereference error, got %v", err)
	}
}

func TestRecursiveReference(t *testing.T) {
	node := func(next string, v Schema) Schema {
		return MustRecord(map[string]Schema{
			"next": Nullable(MustReference(next)),
			"v":    v,
		})
	}
	root := MustRecord(map[string]Schema{
		"wide":   List(node("wide", Int64)),
		"narrow": List(node("narrow", Int32)),
	})
	ok, err := IsSubtypeIn(MustReference("wide"), MustReference("narrow"), root)
	if err != nil || !ok {
		t.Errorf("wide vs narrow: %t %v", ok, err)
	}
	ok, err = IsSubtypeIn(MustReference("narrow"), MustReference("wide"), root)
	if err != nil || ok {
		t.Errorf("narrow vs wide: %t %v", ok, err)
	}
}

func TestUnionSubtypeErrors(t *testing.T) {
	root := MustRecord(map[string]Schema{"t": List(Int64)})
	_, err := IsSubtypeIn(Int64, MustUnion(Text(), MustReference("missing")), root)
	if !errors.Is(err, ErrDereference) {
		t.Errorf("expected dereference error, got %v", err)
	}
	ok, err := IsSubtypeIn(Int64, MustUnion(Text(), MustReference("t")), root)
	if err != nil || !ok {
		t.Errorf("got %t %v", ok, err)
	}
}

// Record field names may contain text that renders like other fields.
func TestRecursiveAssumptionsUseStructure(t *testing.T) {
	tricky := MustRecord(map[string]Schema{"a=Null(), b": MustReference("q")})
	plain := MustRecord(map[string]Schema{"a": Null{}, "b": MustReference("q")})
	if tricky.String() != plain.String() {
		t.Fatalf("%s and %s should render alike", tricky, plain)
	}
	root := MustRecord(map[string]Schema{
		"r": List(MustRecord(map[string]Schema{"a=Null(), b": MustReference("r")})),
		"q": List(plain),
	})
	ok, err := IsSubtypeIn(tricky, MustReference("r"), root)
	if err != nil || ok {
		t.Errorf("got %t %v", ok, err)
	}
}

func TestDereferenceRoundTrip(t *testing.T) {
	root := referenceRoot()
	ref, err := Dereference(root, kpath.Field("ref"))
	if err != nil {
		t.Fatal(err)
	}
	r, ok := ref.(*Reference)
	if !ok {
		t.Fatalf("got %s, expected a reference", ref)
	}
	got, err := r.Schema(root)
	if err != nil {
		t.Fatal(err)
	}
	want, err := DereferencePath(root, "table[0]")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, want) {
		t.Errorf("got %s want %s", got, want)
	}
	if !Equal(got, MustRecord(map[string]Schema{"x": Int64})) {
		t.Errorf("got %s", got)
	}
}

func TestDereferenceErrors(t *testing.T) {
	root := MustRecord(map[string]Schema{
		"bounded": MustCollection(Int64, true, 3),
		"bag":     MustCollection(Int64, false, Unbounded),
		"grid":    MustTensor(Int64, 2, 3),
		"byname":  MustMapping(Text(), Int64),
		"either":  MustUnion(List(Int64), Text()),
		"ref":     MustReference("bounded"),
		"n":       Int64,
	})
	tests := []struct {
		path string
		pos  int
		kind Kind
	}{
		{"bounded[5]", 1, CollectionKind},
		{"bounded[3]", 1, CollectionKind},
		{"bounded.x", 1, CollectionKind},
		{"bag[0]", 1, CollectionKind},
		{"grid[2]", 1, TensorKind},
		{"grid[0][3]", 2, TensorKind},
		{"grid.x", 1, TensorKind},
		{"byname[0]", 1, MappingKind},
		{"either[0]", 1, UnionKind},
		{"ref[0]", 1, ReferenceKind},
		{"n.x", 1, NumberKind},
		{"missing", 0, RecordKind},
		{"[0]", 0, RecordKind},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := DereferencePath(root, tt.path)
			if !errors.Is(err, ErrDereference) {
				t.Fatalf("expected dereference error, got %v", err)
			}
			var de *DereferenceError
			if !errors.As(err, &de) {
				t.Fatalf("got %T", err)
			}
			if de.Pos != tt.pos || de.Kind != tt.kind {
				t.Errorf("got pos %d kind %s, want pos %d kind %s", de.Pos, de.Kind, tt.pos, tt.kind)
			}
		})
	}
}

func TestReferenceOutOfRange(t *testing.T) {
	root := MustRecord(map[string]Schema{"t": MustTensor(Int64, 1)})
	ok, err := IsSubtypeIn(MustReference("t[1]"), Int64, root)
	if !errors.Is(err, ErrDereference) {
		t.Errorf("expected dereference error, got %t %v", ok, err)
	}
}

func TestDereference(t *testing.T) {
	root := MustRecord(map[string]Schema{
		"grid":  MustTensor(Int64, 2, 3),
		"list":  List(Text()),
		"byint": MustMapping(Int32, Boolean{}),
		"byname": MustMapping(Text(), MustRecord(map[string]Schema{
			"deep": Float32,
		})),
	})
	tests := []struct {
		path string
		want Schema
	}{
		{"", root},
		{"grid", MustTensor(Int64, 2, 3)},
		{"grid[1]", MustTensor(Int64, 3)},
		{"grid[1][2]", Int64},
		{"list[7]", Text()},
		{"byint[9]", Boolean{}},
		{"byname.anything.deep", Float32},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DereferencePath(root, tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestMappingReference(t *testing.T) {
	root := MustRecord(map[string]Schema{
		"byint":  MustMapping(Int64, Text()),
		"byname": MustMapping(Text(), Text()),
	})
	got, err := MustReference("byint").Schema(root)
	if err != nil || !Equal(got, Text()) {
		t.Errorf("got %v %v", got, err)
	}
	if _, err := MustReference("byname").Schema(root); !errors.Is(err, ErrDereference) {
		t.Errorf("expected dereference error, got %v", err)
	}
}
