package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-typesys/backend"
	"github.com/signadot/tony-format/go-typesys/schema"
)

func columnar(cfg *ColumnarConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Columnar.Parse(cc, args)
	if err != nil {
		return err
	}
	b := backend.Columnar()
	failed := false
	err = eachSchema(args, func(arg string, s schema.Schema) error {
		if !b.Supported(s) {
			failed = true
			fmt.Fprintf(cc.Out, "%s: not supported by %s\n%s\n", arg, b, b.Unsupported(s))
			return nil
		}
		if !cfg.Adapt {
			fmt.Fprintf(cc.Out, "%s: supported by %s\n", arg, b)
			return nil
		}
		a, err := b.Adapt(s)
		if err != nil {
			return err
		}
		return writeSchema(cfg.MainConfig, cc.Out, a)
	})
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
