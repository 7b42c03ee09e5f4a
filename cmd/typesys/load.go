package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/tony-format/go-typesys/encode"
	"github.com/signadot/tony-format/go-typesys/schema"
)

func readArg(arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	return io.ReadAll(r)
}

func loadSchema(arg string) (schema.Schema, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	s, err := encode.Unmarshal(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return s, nil
}

// eachSchema calls f with the schema of each file argument, or of stdin if
// there are none.
func eachSchema(args []string, f func(arg string, s schema.Schema) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		s, err := loadSchema(arg)
		if err != nil {
			return err
		}
		if err := f(arg, s); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}

func writeSchema(cfg *MainConfig, w io.Writer, s schema.Schema) error {
	d, err := encode.Marshal(s, cfg.encOpts()...)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(string(d), "\n") {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}
