package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/tony-format/go-typesys/encode"
	"github.com/signadot/tony-format/go-typesys/format"
	"github.com/signadot/tony-format/go-typesys/pretty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`
	J     bool `cli:"name=j aliases=json desc='encode schemas as json'"`
	Y     bool `cli:"name=y aliases=yaml desc='encode schemas as yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	var f format.Format
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return []encode.EncodeOption{encode.EncodeFormat(f)}
}

// prettyOpts colors output when -color is given or w is a terminal.
func (cfg *MainConfig) prettyOpts(w io.Writer) []pretty.Option {
	if cfg.Color {
		return []pretty.Option{pretty.WithColors(pretty.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if c := pretty.AutoColors(f); c != nil {
		return []pretty.Option{pretty.WithColors(c)}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig
	Encode bool `cli:"name=e aliases=encode desc='write the encoded document instead of the outline'"`

	View *cli.Command
}

type SubtypeConfig struct {
	*MainConfig
	Root string `cli:"name=root desc='schema file resolving references (default the sub schema)'"`

	Subtype *cli.Command
}

type DerefConfig struct {
	*MainConfig

	Deref *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Side  bool `cli:"name=s aliases=side desc='side by side comparison'"`
	Width int  `cli:"name=w aliases=width desc='column width for side by side comparison'"`

	Diff *cli.Command
}

type ColumnarConfig struct {
	*MainConfig
	Adapt bool `cli:"name=a aliases=adapt desc='write the adapted schema'"`

	Columnar *cli.Command
}

type RandomConfig struct {
	*MainConfig
	Seed  int  `cli:"name=seed desc='random seed'"`
	Depth int  `cli:"name=depth desc='maximum nesting depth'"`
	Count int  `cli:"name=n desc='number of schemas'"`
	Union bool `cli:"name=u aliases=union desc='write the union of the generated schemas'"`

	Random *cli.Command
}

type PerturbConfig struct {
	*MainConfig
	Seed int `cli:"name=seed desc='random seed'"`

	Perturb *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
