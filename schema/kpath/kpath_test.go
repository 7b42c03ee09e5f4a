package kpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var segOpt = cmp.AllowUnexported(Segment{})

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", nil},
		{"a", Path{Field("a")}},
		{"a.b", Path{Field("a"), Field("b")}},
		{"a[0]", Path{Field("a"), Index(0)}},
		{"[2][3]", Path{Index(2), Index(3)}},
		{"table[3].inner", Path{Field("table"), Index(3), Field("inner")}},
		{`a."x.y"`, Path{Field("a"), Field("x.y")}},
		{`"[odd]"`, Path{Field("[odd]")}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got, segOpt); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"a[",
		"a[-1]",
		"a[x]",
		"a.",
		"a..b",
		`a."x`,
		"[0]b",
	} {
		t.Run(in, func(t *testing.T) {
			if p, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) = %v, expected error", in, p)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, p := range []Path{
		{Field("a")},
		{Field("a"), Index(1), Field("b")},
		{Index(0), Index(4)},
		{Field("x.y"), Field(""), Field(`q"uote`)},
	} {
		s := p.String()
		got, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		if diff := cmp.Diff(p, got, segOpt); diff != "" {
			t.Errorf("round trip of %q (-want +got):\n%s", s, diff)
		}
	}
}

func TestString(t *testing.T) {
	p := Path{Field("table"), Index(3), Field("inner")}
	if got, want := p.String(), "table[3].inner"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := Index(7).String(), "[7]"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestNew(t *testing.T) {
	p, err := New("a", 2, Field("b"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Path{Field("a"), Index(2), Field("b")}, p, segOpt); diff != "" {
		t.Error(diff)
	}
	if _, err := New(1.5); err == nil {
		t.Error("expected error for float element")
	}
}

func TestAppendDoesNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = Field("a")
	x := base.Append(Index(0))
	y := base.Append(Index(1))
	if i, _ := x[1].IndexValue(); i != 0 {
		t.Errorf("x was modified by a later Append: %s", x)
	}
	if i, _ := y[1].IndexValue(); i != 1 {
		t.Errorf("got %s", y)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"a", "b", -1},
		{"[0]", "a", -1},
		{"a[1]", "a[0]", 1},
		{"a", "a.b", -1},
		{"a.b", "a", 1},
	}
	for _, tt := range tests {
		if got := Compare(MustParse(tt.a), MustParse(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	var p Path
	if err := p.UnmarshalText([]byte("a[2]")); err != nil {
		t.Fatal(err)
	}
	d, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "a[2]" {
		t.Errorf("got %q", d)
	}
}
