package backend

import (
	"reflect"
	"unicode/utf8"

	"github.com/signadot/tony-format/go-typesys/schema"
)

var columnarRules = map[schema.Kind]string{
	schema.AnythingKind:  `false`,
	schema.NothingKind:   `false`,
	schema.NullKind:      `false`,
	schema.NumberKind:    `whole ? nbytes in [1, 2, 4, 8] : signed && nbytes in [2, 4, 8, 16]`,
	schema.StringKind:    `charset in ["bytes", "utf-32le"]`,
	schema.MappingKind:   `false`,
	schema.RecordKind:    `primitiveFields`,
	schema.UnionKind:     `possibilities == 1 || (possibilities == 2 && nullable)`,
	schema.ReferenceKind: `false`,
}

var columnarTable = Table{
	schema.AnythingKind:   {IsInstance: never},
	schema.NothingKind:    {IsInstance: never},
	schema.NullKind:       {IsInstance: never},
	schema.BooleanKind:    {IsInstance: columnarBoolean},
	schema.NumberKind:     {IsInstance: columnarNumber},
	schema.StringKind:     {IsInstance: columnarString},
	schema.TensorKind:     {IsInstance: columnarTensor},
	schema.CollectionKind: {IsInstance: columnarCollection},
	schema.MappingKind:    {IsInstance: never},
	schema.RecordKind:     {IsInstance: columnarRecord},
	schema.UnionKind:      {IsInstance: columnarUnion},
	schema.ReferenceKind:  {IsInstance: never},
}

// Columnar returns a backend for fixed width columnar arrays.
//
// It represents booleans, integers of 1, 2, 4 or 8 bytes, signed floating
// point numbers of 2, 4, 8 or 16 bytes, "bytes" and "utf-32le" strings,
// tensors, collections, records of primitive fields and unions that are
// either a single possibility or a nullable one. Membership requires exact
// Go types: an int32 is a member of a 4 byte integer only. Arrays are
// homogeneous, so only their first element is checked.
//
// Adapt rewrites "utf-8" strings as "utf-32le".
func Columnar() *Backend {
	tbl, err := RuleTable(columnarTable, columnarRules)
	if err != nil {
		panic(err)
	}
	return New("columnar", tbl, WithConstructors(schema.Constructors{
		String: func(cs schema.Charset, maxLength int) (schema.Schema, error) {
			if cs == schema.CharsetUTF8 {
				cs = schema.CharsetUTF32LE
			}
			return schema.NewString(cs, maxLength)
		},
	}))
}

func never(*Backend, schema.Schema, any) bool { return false }

func columnarBoolean(_ *Backend, _ schema.Schema, v any) bool {
	rv := indirect(reflect.ValueOf(v))
	return rv.IsValid() && rv.Kind() == reflect.Bool
}

func columnarNumber(_ *Backend, s schema.Schema, v any) bool {
	n, ok := schema.NumberOf(v)
	return ok && schema.Equal(s, n)
}

func columnarString(_ *Backend, s schema.Schema, v any) bool {
	x := s.(*schema.String)
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return false
	}
	var l int
	switch x.Charset() {
	case schema.CharsetBytes:
		switch {
		case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
			l = rv.Len()
		case rv.Type() == reflect.TypeOf(schema.ByteString("")):
			l = rv.Len()
		default:
			return false
		}
	case schema.CharsetUTF32LE:
		if rv.Kind() != reflect.String || rv.Type() == reflect.TypeOf(schema.ByteString("")) {
			return false
		}
		l = utf8.RuneCountInString(rv.String())
	default:
		return false
	}
	limit, bounded := x.MaxLength()
	return !bounded || l <= limit
}

func columnarTensor(b *Backend, s schema.Schema, v any) bool {
	x := s.(*schema.Tensor)
	rv := indirect(reflect.ValueOf(v))
	for _, d := range x.Dimensions() {
		if !isSequence(rv) || rv.Len() != d {
			return false
		}
		rv = indirect(rv.Index(0))
	}
	return b.IsInstance(x.Items(), valueOf(rv))
}

func columnarCollection(b *Backend, s schema.Schema, v any) bool {
	x := s.(*schema.Collection)
	rv := indirect(reflect.ValueOf(v))
	if !isSequence(rv) {
		return false
	}
	if limit, ok := x.MaxLength(); ok && rv.Len() > limit {
		return false
	}
	if rv.Len() == 0 {
		return true
	}
	return b.IsInstance(x.Items(), rv.Index(0).Interface())
}

func columnarRecord(b *Backend, s schema.Schema, v any) bool {
	x := s.(*schema.Record)
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || (rv.Kind() != reflect.Struct && rv.Kind() != reflect.Map) {
		return false
	}
	for _, n := range x.FieldNames() {
		fv, ok := schema.LookupField(v, n)
		if !ok {
			return false
		}
		f, _ := x.Field(n)
		if !b.IsInstance(f, fv) {
			return false
		}
	}
	return true
}

func columnarUnion(b *Backend, s schema.Schema, v any) bool {
	x := s.(*schema.Union)
	switch x.Len() {
	case 1:
		return b.IsInstance(x.Possibility(0), v)
	case 2:
		if x.Possibility(0).Kind() != schema.NullKind {
			return false
		}
		if !indirect(reflect.ValueOf(v)).IsValid() {
			return true
		}
		return b.IsInstance(x.Possibility(1), v)
	}
	return false
}

func valueOf(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
