package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "typesys").
		WithSynopsis("typesys [opts] command [opts]").
		WithDescription("typesys is a tool for working with structural schemas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return typesysMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			SubtypeCommand(cfg),
			DerefCommand(cfg),
			DiffCommand(cfg),
			ColumnarCommand(cfg),
			RandomCommand(cfg),
			PerturbCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-e] [files]").
		WithDescription("view schema files as an indented outline").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func SubtypeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SubtypeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("subtype").
		WithAliases("sub", "s").
		WithOpts(opts...).
		WithSynopsis("subtype [-root file] <super> <sub>").
		WithDescription("report whether sub is a subtype of super, exiting 1 if not").
		WithRun(func(cc *cli.Context, args []string) error {
			return subtype(cfg, cc, args)
		})
	cfg.Subtype = cmd
	return cmd
}

func DerefCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DerefConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Deref, "deref").
		WithAliases("get", "g").
		WithSynopsis("deref <path> [files]").
		WithDescription("dereference a path such as 'a.b[3]' in schema files").
		WithRun(func(cc *cli.Context, args []string) error {
			return deref(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Width: 40}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-s [-w width]] a b").
		WithDescription("diff schema files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ColumnarCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ColumnarConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("columnar").
		WithAliases("col").
		WithOpts(opts...).
		WithSynopsis("columnar [-a] [files]").
		WithDescription(columnarDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return columnar(cfg, cc, args)
		})
	cfg.Columnar = cmd
	return cmd
}

const columnarDescription = `columnar checks schemas against the columnar backend.

Schemas the backend supports are reported as such. Otherwise the schema is
shown with each unsupported node flagged by '-->'.

With -a, supported schemas are adapted to the backend's representation and
written out.`

func RandomCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RandomConfig{MainConfig: mainCfg, Seed: 1, Depth: 3, Count: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("random").
		WithAliases("r", "rand").
		WithOpts(opts...).
		WithSynopsis("random [-seed n] [-depth n] [-n count] [-u]").
		WithDescription("generate random schemas").
		WithRun(func(cc *cli.Context, args []string) error {
			return random(cfg, cc, args)
		})
	cfg.Random = cmd
	return cmd
}

func PerturbCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PerturbConfig{MainConfig: mainCfg, Seed: 1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("perturb").
		WithOpts(opts...).
		WithSynopsis("perturb [-seed n] [files]").
		WithDescription("write a randomly modified copy of each schema").
		WithRun(func(cc *cli.Context, args []string) error {
			return perturbFiles(cfg, cc, args)
		})
	cfg.Perturb = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <json-patch-file> [files]").
		WithDescription("apply an RFC 6902 JSON patch to the encoded form of schema files").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
