package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-typesys/perturb"
	"github.com/signadot/tony-format/go-typesys/schema"
)

func newRand(seed int) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func random(cfg *RandomConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Random.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: random takes no arguments", cli.ErrUsage)
	}
	if cfg.Count < 1 {
		return fmt.Errorf("%w: -n must be positive", cli.ErrUsage)
	}
	r := newRand(cfg.Seed)
	ss := make([]schema.Schema, cfg.Count)
	for i := range ss {
		ss[i] = perturb.Random(r, cfg.Depth)
	}
	if cfg.Union {
		u, err := schema.NewUnion(ss...)
		if err != nil {
			return err
		}
		return writeSchema(cfg.MainConfig, cc.Out, u)
	}
	for i, s := range ss {
		if i > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		if err := writeSchema(cfg.MainConfig, cc.Out, s); err != nil {
			return err
		}
	}
	return nil
}

func perturbFiles(cfg *PerturbConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Perturb.Parse(cc, args)
	if err != nil {
		return err
	}
	r := newRand(cfg.Seed)
	n := 0
	return eachSchema(args, func(_ string, s schema.Schema) error {
		if n > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		n++
		return writeSchema(cfg.MainConfig, cc.Out, perturb.Perturb(r, s))
	})
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch file", cli.ErrUsage)
	}
	p, err := readArg(args[0])
	if err != nil {
		return err
	}
	n := 0
	return eachSchema(args[1:], func(_ string, s schema.Schema) error {
		if n > 0 {
			fmt.Fprintln(cc.Out, "---")
		}
		n++
		res, err := perturb.Patch(s, p)
		if err != nil {
			return err
		}
		return writeSchema(cfg.MainConfig, cc.Out, res)
	})
}
