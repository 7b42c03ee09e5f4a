package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-typesys/pretty"
	"github.com/signadot/tony-format/go-typesys/schema"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	n := 0
	return eachSchema(args, func(_ string, s schema.Schema) error {
		if n > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		n++
		if cfg.Encode {
			return writeSchema(cfg.MainConfig, cc.Out, s)
		}
		_, err := fmt.Fprintln(cc.Out, pretty.Pretty(s, cfg.prettyOpts(cc.Out)...))
		return err
	})
}
