package pretty

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/tony-format/go-typesys/schema"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[schema.Kind]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[schema.Kind]func(string, ...any) string{},
	}
	top := color.RGB(168, 0, 196).SprintfFunc()
	colors.Map[schema.AnythingKind] = top
	colors.Map[schema.NothingKind] = top
	colors.Map[schema.NullKind] = top
	colors.Map[schema.BooleanKind] = color.CyanString
	colors.Map[schema.NumberKind] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[schema.StringKind] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[schema.TensorKind] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[schema.CollectionKind] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[schema.MappingKind] = color.RGB(196, 168, 128).SprintfFunc()
	colors.Map[schema.RecordKind] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[schema.UnionKind] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[schema.ReferenceKind] = color.BlueString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

// AutoColors returns NewColors if f is a terminal and nil otherwise.
func AutoColors(f *os.File) *Colors {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewColors()
	}
	return nil
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k schema.Kind, s string) string {
	return c.Get(k)(s)
}

func (c *Colors) Get(k schema.Kind) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}
