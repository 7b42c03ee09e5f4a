package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var back Format
		if err := back.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("got %s want %s", back, f)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if f, err := ParseFormat("JSON"); err != nil || !f.IsJSON() {
		t.Errorf("got %v %v", f, err)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"schema.yaml", YAMLFormat, true},
		{"dir/schema.yml", YAMLFormat, true},
		{"schema.json", JSONFormat, true},
		{"schema", 0, false},
		{"schema.txt", 0, false},
	}
	for _, tt := range tests {
		got, err := ForPath(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("%s: unexpected error %v", tt.path, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("%s: got %s want %s", tt.path, got, tt.want)
		}
	}
	if Format(9).Suffix() != "" {
		t.Error("unknown format has a suffix")
	}
}
