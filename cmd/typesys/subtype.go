package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-typesys/pretty"
	"github.com/signadot/tony-format/go-typesys/schema"
)

func subtype(cfg *SubtypeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Subtype.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: subtype requires 2 arguments, got %d", cli.ErrUsage, len(args))
	}
	super, err := loadSchema(args[0])
	if err != nil {
		return err
	}
	sub, err := loadSchema(args[1])
	if err != nil {
		return err
	}
	root := sub
	if cfg.Root != "" {
		root, err = loadSchema(cfg.Root)
		if err != nil {
			return err
		}
	}
	ok, err := schema.IsSubtypeIn(super, sub, root)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, ok)
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func deref(cfg *DerefConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Deref.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: deref requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	return eachSchema(args[1:], func(_ string, s schema.Schema) error {
		res, err := schema.DereferencePath(s, path)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, pretty.Pretty(res, cfg.prettyOpts(cc.Out)...))
		return err
	})
}
