package kpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a path through a schema tree: either a named
// field/key or a positional index.
type Segment struct {
	field   string
	index   int
	isIndex bool
}

// Field returns a segment naming a record field or a string mapping key.
func Field(name string) Segment {
	return Segment{field: name}
}

// Index returns a positional segment.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

func (s Segment) IsIndex() bool { return s.isIndex }

// FieldName returns the field name and true if s is a field segment.
func (s Segment) FieldName() (string, bool) {
	if s.isIndex {
		return "", false
	}
	return s.field, true
}

// IndexValue returns the index and true if s is an index segment.
func (s Segment) IndexValue() (int, bool) {
	if !s.isIndex {
		return 0, false
	}
	return s.index, true
}

// String returns the segment in path syntax without a leading separator,
// e.g. "name", "\"a.b\"" or "[3]".
func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	if needsQuote(s.field) {
		return strconv.Quote(s.field)
	}
	return s.field
}

// Path is a sequence of segments. The zero value is the empty path.
//
// Paths have a textual form similar to kinded paths:
//   - "a.b" → Field("a"), Field("b")
//   - "a[0]" → Field("a"), Index(0)
//   - "[2][3]" → Index(2), Index(3)
//   - `a."x.y"` → Field("a"), Field("x.y")
type Path []Segment

// New builds a path from strings (fields) and ints (indices).
func New(parts ...any) (Path, error) {
	res := make(Path, 0, len(parts))
	for _, p := range parts {
		switch x := p.(type) {
		case string:
			res = append(res, Field(x))
		case int:
			res = append(res, Index(x))
		case Segment:
			res = append(res, x)
		default:
			return nil, fmt.Errorf("path element %v has type %T, expected string or int", p, p)
		}
	}
	return res, nil
}

// Append returns a new path with segs added; p is not modified.
func (p Path) Append(segs ...Segment) Path {
	res := make(Path, 0, len(p)+len(segs))
	res = append(res, p...)
	return append(res, segs...)
}

func (p Path) String() string {
	buf := bytes.NewBuffer(nil)
	for _, s := range p {
		if !s.isIndex && buf.Len() > 0 {
			buf.WriteByte('.')
		}
		buf.WriteString(s.String())
	}
	return buf.String()
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// Parse parses the textual form of a path. The empty string is the empty path.
func Parse(kpath string) (Path, error) {
	var res Path
	frag := kpath
	first := true
	for len(frag) > 0 {
		switch frag[0] {
		case '[':
			i := strings.IndexByte(frag, ']')
			if i == -1 {
				return nil, fmt.Errorf("expected '[' <index> ']' in %q", kpath)
			}
			u64, err := strconv.ParseUint(frag[1:i], 10, 31)
			if err != nil {
				return nil, fmt.Errorf("invalid index %q: %w", frag[1:i], err)
			}
			res = append(res, Index(int(u64)))
			frag = frag[i+1:]
		case '.':
			if len(frag) == 1 {
				return nil, fmt.Errorf("expected field at end of %q", kpath)
			}
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, err
			}
			res = append(res, Field(field))
			frag = rest
		default:
			if !first {
				return nil, fmt.Errorf("expected '.' or '[' in %q, got %q", kpath, frag[0])
			}
			field, rest, err := parseField(frag)
			if err != nil {
				return nil, err
			}
			res = append(res, Field(field))
			frag = rest
		}
		first = false
	}
	return res, nil
}

// MustParse is like Parse but panics on error.
func MustParse(kpath string) Path {
	p, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return p
}

func parseField(frag string) (field, rest string, err error) {
	if frag[0] == '"' {
		end, err := quotedEnd(frag)
		if err != nil {
			return "", "", err
		}
		field, err = strconv.Unquote(frag[:end])
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field %s: %w", frag[:end], err)
		}
		return field, frag[end:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == 0 {
		return "", "", fmt.Errorf("expected field, got %q", frag[0])
	}
	if i == -1 {
		return frag, "", nil
	}
	return frag[:i], frag[i:], nil
}

// quotedEnd returns the length of the double quoted string at the start of d,
// including both quotes.
func quotedEnd(d string) (int, error) {
	esc := false
	for i := 1; i < len(d); i++ {
		switch {
		case esc:
			esc = false
		case d[i] == '\\':
			esc = true
		case d[i] == '"':
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated quoted field in %q", d)
}

func needsQuote(f string) bool {
	if f == "" {
		return true
	}
	return strings.ContainsAny(f, ".[]\"\\ \t\n")
}

// Compare orders paths lexicographically by segment; index segments sort
// before field segments.
func Compare(a, b Path) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := CompareSegment(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func CompareSegment(a, b Segment) int {
	if a.isIndex != b.isIndex {
		if a.isIndex {
			return -1
		}
		return 1
	}
	if a.isIndex {
		switch {
		case a.index < b.index:
			return -1
		case a.index > b.index:
			return 1
		}
		return 0
	}
	return strings.Compare(a.field, b.field)
}
