package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-typesys/pretty"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	a, err := loadSchema(args[0])
	if err != nil {
		return err
	}
	b, err := loadSchema(args[1])
	if err != nil {
		return err
	}
	if cfg.Side {
		opts := append(cfg.prettyOpts(cc.Out), pretty.WithWidth(cfg.Width))
		_, err = fmt.Fprintln(cc.Out, pretty.Compare(a, b, opts...))
		return err
	}
	d := pretty.Diff(a, b)
	if d == "" {
		return nil
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}
