package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("at %s: %v %s\n", kpath.MustParse("a[1]"), true, map[string]any{"k": 1})
	got := buf.String()
	if !strings.HasPrefix(got, "at a[1]: true {") {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(got, `"k": 1`) {
		t.Errorf("expected indented json in %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("TYPESYS_TEST_FLAG", "true")
	if !boolEnv("TYPESYS_TEST_FLAG") {
		t.Error("expected true")
	}
	t.Setenv("TYPESYS_TEST_FLAG", "nope")
	if boolEnv("TYPESYS_TEST_FLAG") {
		t.Error("expected false for unparsable value")
	}
	if boolEnv("TYPESYS_TEST_UNSET") {
		t.Error("expected false for unset")
	}
}
