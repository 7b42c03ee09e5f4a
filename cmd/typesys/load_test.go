package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/tony-format/go-typesys/encode"
	"github.com/signadot/tony-format/go-typesys/format"
	"github.com/signadot/tony-format/go-typesys/schema"
)

func TestLoadAndWrite(t *testing.T) {
	s := schema.MustRecord(map[string]schema.Schema{
		"x": schema.Float64,
		"y": schema.Nullable(schema.Text()),
	})
	d, err := encode.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(p, d, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := loadSchema(p)
	if err != nil {
		t.Fatal(err)
	}
	if !schema.Equal(got, s) {
		t.Fatalf("loaded %s, want %s", got, s)
	}

	buf := &bytes.Buffer{}
	if err := writeSchema(&MainConfig{J: true}, buf, got); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "{") || !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("expected a json document ending in a newline, got %q", buf.String())
	}
	back, err := encode.Unmarshal(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !schema.Equal(back, s) {
		t.Errorf("round trip gave %s, want %s", back, s)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := loadSchema(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error")
	}
}

func TestEncOpts(t *testing.T) {
	j := format.JSONFormat
	cfg := &MainConfig{Y: true, OutFormat: &j}
	if f := encode.FormatFromOpts(cfg.encOpts()...); f != format.JSONFormat {
		t.Errorf("-O overrides -y: got %s", f)
	}
	cfg = &MainConfig{Y: true}
	if f := encode.FormatFromOpts(cfg.encOpts()...); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
}
