package schema

import (
	"errors"
	"testing"
)

func TestUnionNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []Schema
		want []Schema
	}{
		{"idempotent", []Schema{Int64, Int64}, []Schema{Int64}},
		{"absorbs narrower", []Schema{Int32, Int64}, []Schema{Int64}},
		{"absorbs narrower later", []Schema{Int64, Int8, Int32}, []Schema{Int64}},
		{"float absorbs int", []Schema{Int64, Float64}, []Schema{Float64}},
		{"sorted by kind", []Schema{Text(), Null{}, Int64}, []Schema{Null{}, Int64, Text()}},
		{"flattened", []Schema{MustUnion(Int8, Text()), MustUnion(Boolean{}, Int64)}, []Schema{Boolean{}, Int64, Text()}},
		{"anything absorbs all", []Schema{Int8, Anything{}, Text()}, []Schema{Anything{}}},
		{"nothing absorbed", []Schema{Nothing{}, Int8}, []Schema{Int8}},
		{"incomparable kept", []Schema{Int8, Uint8}, []Schema{Uint8, Int8}},
		{"flattened before absorbing", []Schema{Float64, MustUnion(Int64, Text())}, []Schema{Float64, Text()}},
		{"nested union absorbed", []Schema{List(Float64), List(MustUnion(Int64, Text()))}, []Schema{List(Float64)}},
		{"nested union kept", []Schema{List(MustUnion(Int64, Text())), List(Boolean{})}, []Schema{List(Boolean{}), List(MustUnion(Int64, Text()))}},
		{"single", []Schema{Boolean{}}, []Schema{Boolean{}}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUnion(tt.in...)
			if err != nil {
				t.Fatal(err)
			}
			got := u.Possibilities()
			if len(got) != len(tt.want) {
				t.Fatalf("got %s want %d possibilities", u, len(tt.want))
			}
			for i := range got {
				if !Equal(got[i], tt.want[i]) {
					t.Errorf("possibility %d: got %s want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnionKeepsUnresolvedReferences(t *testing.T) {
	u := MustUnion(Null{}, MustReference("nodes"), MustReference("other"))
	if u.Len() != 3 {
		t.Errorf("got %s", u)
	}
}

func TestUnionNil(t *testing.T) {
	_, err := NewUnion(Int8, nil)
	if !errors.Is(err, ErrConstruction) {
		t.Errorf("expected construction error, got %v", err)
	}
}

func TestUnionString(t *testing.T) {
	got := Nullable(Int32).String()
	want := "Union(Null(), Number(whole=true, signed=true, nbytes=4))"
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}
