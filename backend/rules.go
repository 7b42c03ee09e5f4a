package backend

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/tony-format/go-typesys/schema"
)

var ErrRule = errors.New("backend rule error")

// Node is the environment rule expressions are evaluated in. Attributes not
// held by the node's kind are zero.
type Node struct {
	Kind       string `expr:"kind"`
	Whole      bool   `expr:"whole"`
	Signed     bool   `expr:"signed"`
	NBytes     int    `expr:"nbytes"`
	Charset    string `expr:"charset"`
	Bounded    bool   `expr:"bounded"`
	MaxLength  int    `expr:"maxlength"`
	Rank       int    `expr:"rank"`
	Dimensions []int  `expr:"dimensions"`
	Ordered    bool   `expr:"ordered"`
	// Fields holds record field names in sorted order.
	Fields []string `expr:"fields"`
	// PrimitiveFields is true if every record field is a Boolean, Number
	// or String, or a one possibility union of one.
	PrimitiveFields bool `expr:"primitiveFields"`
	Possibilities   int  `expr:"possibilities"`
	// Nullable is true for unions with a Null possibility.
	Nullable bool `expr:"nullable"`
}

// NodeOf returns the rule environment of s.
func NodeOf(s schema.Schema) Node {
	n := Node{Kind: s.Kind().String()}
	switch x := s.(type) {
	case *schema.Number:
		n.Whole, n.Signed, n.NBytes = x.Whole(), x.Signed(), x.NBytes()
	case *schema.String:
		n.Charset = string(x.Charset())
		n.MaxLength, n.Bounded = x.MaxLength()
	case *schema.Tensor:
		n.Dimensions = x.Dimensions()
		n.Rank = len(n.Dimensions)
	case *schema.Collection:
		n.Ordered = x.Ordered()
		n.MaxLength, n.Bounded = x.MaxLength()
	case *schema.Record:
		n.Fields = x.FieldNames()
		n.PrimitiveFields = true
		for _, name := range n.Fields {
			f, _ := x.Field(name)
			if !isPrimitive(f) {
				n.PrimitiveFields = false
				break
			}
		}
	case *schema.Union:
		n.Possibilities = x.Len()
		for _, p := range x.Possibilities() {
			if p.Kind() == schema.NullKind {
				n.Nullable = true
			}
		}
	}
	return n
}

func isPrimitive(s schema.Schema) bool {
	if u, ok := s.(*schema.Union); ok && u.Len() == 1 {
		s = u.Possibility(0)
	}
	switch s.Kind() {
	case schema.BooleanKind, schema.NumberKind, schema.StringKind:
		return true
	}
	return false
}

// CompileRules compiles boolean expressions over Node into Supported
// functions, for example
//
//	schema.NumberKind: `whole ? nbytes in [1, 2, 4, 8] : signed`
func CompileRules(rules map[schema.Kind]string) (map[schema.Kind]func(schema.Schema) bool, error) {
	res := make(map[schema.Kind]func(schema.Schema) bool, len(rules))
	for k, src := range rules {
		prg, err := expr.Compile(src, expr.Env(Node{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("%w: %s rule %q: %w", ErrRule, k, src, err)
		}
		res[k] = supportedFunc(prg)
	}
	return res, nil
}

func supportedFunc(prg *vm.Program) func(schema.Schema) bool {
	return func(s schema.Schema) bool {
		out, err := expr.Run(prg, NodeOf(s))
		if err != nil {
			return false
		}
		b, _ := out.(bool)
		return b
	}
}

// RuleTable returns a table whose Supported functions are compiled from
// rules, merged over base.
func RuleTable(base Table, rules map[schema.Kind]string) (Table, error) {
	fs, err := CompileRules(rules)
	if err != nil {
		return nil, err
	}
	res := make(Table, len(base)+len(fs))
	for k, c := range base {
		res[k] = c
	}
	for k, f := range fs {
		c := res[k]
		c.Supported = f
		res[k] = c
	}
	return res, nil
}
