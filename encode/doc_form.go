package encode

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/signadot/tony-format/go-typesys/schema"
	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

var ErrDecode = errors.New("decode error")

// ToDoc returns the document form of s.
func ToDoc(s schema.Schema) map[string]any {
	d := map[string]any{"kind": kindName(s.Kind())}
	switch x := s.(type) {
	case *schema.Number:
		d["whole"] = x.Whole()
		d["signed"] = x.Signed()
		d["nbytes"] = x.NBytes()
	case *schema.String:
		d["charset"] = string(x.Charset())
		if n, ok := x.MaxLength(); ok {
			d["maxlength"] = n
		}
	case *schema.Tensor:
		d["items"] = ToDoc(x.Items())
		dims := x.Dimensions()
		l := make([]any, len(dims))
		for i, n := range dims {
			l[i] = n
		}
		d["dimensions"] = l
	case *schema.Collection:
		d["items"] = ToDoc(x.Items())
		d["ordered"] = x.Ordered()
		if n, ok := x.MaxLength(); ok {
			d["maxlength"] = n
		}
	case *schema.Mapping:
		d["keys"] = ToDoc(x.Keys())
		d["values"] = ToDoc(x.Values())
	case *schema.Record:
		fields := map[string]any{}
		for _, n := range x.FieldNames() {
			f, _ := x.Field(n)
			fields[n] = ToDoc(f)
		}
		d["fields"] = fields
	case *schema.Union:
		ps := make([]any, x.Len())
		for i := range ps {
			ps[i] = ToDoc(x.Possibility(i))
		}
		d["possibilities"] = ps
	case *schema.Reference:
		d["path"] = x.Path().String()
	}
	return d
}

func kindName(k schema.Kind) string {
	d, _ := k.MarshalText()
	return string(d)
}

// FromDoc builds a schema from its document form. Maps may have string or
// arbitrary keys; numbers may be of any Go numeric type holding an integral
// value.
func FromDoc(d any) (schema.Schema, error) {
	return fromDoc(d, "$")
}

func fromDoc(d any, at string) (schema.Schema, error) {
	m, err := asMap(d, at)
	if err != nil {
		return nil, err
	}
	dm := &docMap{m: m, at: at}
	var k schema.Kind
	ks, err := dm.str("kind", true)
	if err != nil {
		return nil, err
	}
	if err := k.UnmarshalText([]byte(ks)); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, at, err)
	}
	switch k {
	case schema.AnythingKind:
		return schema.Anything{}, nil
	case schema.NothingKind:
		return schema.Nothing{}, nil
	case schema.NullKind:
		return schema.Null{}, nil
	case schema.BooleanKind:
		return schema.Boolean{}, nil
	case schema.NumberKind:
		whole, err := dm.boolean("whole", false)
		if err != nil {
			return nil, err
		}
		signed, err := dm.boolean("signed", false)
		if err != nil {
			return nil, err
		}
		nbytes, err := dm.integer("nbytes", true, 0)
		if err != nil {
			return nil, err
		}
		return schema.NewNumber(whole, signed, nbytes)
	case schema.StringKind:
		cs, err := dm.str("charset", true)
		if err != nil {
			return nil, err
		}
		n, err := dm.maxLength(schema.StringKind)
		if err != nil {
			return nil, err
		}
		return schema.NewString(schema.Charset(cs), n)
	case schema.TensorKind:
		items, err := dm.child("items")
		if err != nil {
			return nil, err
		}
		l, err := dm.list("dimensions")
		if err != nil {
			return nil, err
		}
		dims := make([]int, len(l))
		for i, v := range l {
			n, ok := asInt(v)
			if !ok {
				return nil, fmt.Errorf("%w: %s.dimensions[%d]: expected an integer, got %v", ErrDecode, at, i, v)
			}
			dims[i] = n
		}
		return schema.NewTensor(items, dims...)
	case schema.CollectionKind:
		items, err := dm.child("items")
		if err != nil {
			return nil, err
		}
		ordered, err := dm.boolean("ordered", false)
		if err != nil {
			return nil, err
		}
		n, err := dm.maxLength(schema.CollectionKind)
		if err != nil {
			return nil, err
		}
		return schema.NewCollection(items, ordered, n)
	case schema.MappingKind:
		keys, err := dm.child("keys")
		if err != nil {
			return nil, err
		}
		values, err := dm.child("values")
		if err != nil {
			return nil, err
		}
		return schema.NewMapping(keys, values)
	case schema.RecordKind:
		fields := map[string]schema.Schema{}
		if raw, ok := m["fields"]; ok && raw != nil {
			fm, err := asMap(raw, at+".fields")
			if err != nil {
				return nil, err
			}
			names := make([]string, 0, len(fm))
			for n := range fm {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				f, err := fromDoc(fm[n], at+".fields."+kpath.Field(n).String())
				if err != nil {
					return nil, err
				}
				fields[n] = f
			}
		}
		return schema.NewRecord(fields)
	case schema.UnionKind:
		l, err := dm.list("possibilities")
		if err != nil {
			return nil, err
		}
		ps := make([]schema.Schema, len(l))
		for i, v := range l {
			p, err := fromDoc(v, fmt.Sprintf("%s.possibilities[%d]", at, i))
			if err != nil {
				return nil, err
			}
			ps[i] = p
		}
		return schema.NewUnion(ps...)
	case schema.ReferenceKind:
		p, err := dm.str("path", true)
		if err != nil {
			return nil, err
		}
		return schema.ParseReference(p)
	}
	return nil, fmt.Errorf("%w: %s: unhandled kind %s", ErrDecode, at, k)
}

type docMap struct {
	m  map[string]any
	at string
}

func (d *docMap) errorf(key, format string, args ...any) error {
	return fmt.Errorf("%w: %s.%s: %s", ErrDecode, d.at, key, fmt.Sprintf(format, args...))
}

func (d *docMap) str(key string, required bool) (string, error) {
	v, ok := d.m[key]
	if !ok || v == nil {
		if required {
			return "", d.errorf(key, "missing")
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", d.errorf(key, "expected a string, got %T", v)
	}
	return s, nil
}

func (d *docMap) boolean(key string, required bool) (bool, error) {
	v, ok := d.m[key]
	if !ok || v == nil {
		if required {
			return false, d.errorf(key, "missing")
		}
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, d.errorf(key, "expected a boolean, got %T", v)
	}
	return b, nil
}

func (d *docMap) integer(key string, required bool, dflt int) (int, error) {
	v, ok := d.m[key]
	if !ok || v == nil {
		if required {
			return 0, d.errorf(key, "missing")
		}
		return dflt, nil
	}
	n, ok := asInt(v)
	if !ok {
		return 0, d.errorf(key, "expected an integer, got %v", v)
	}
	return n, nil
}

// maxLength returns "maxlength", or Unbounded when it is absent. Unbounded is
// only ever written by omission, so any negative value is malformed.
func (d *docMap) maxLength(k schema.Kind) (int, error) {
	n, err := d.integer("maxlength", false, schema.Unbounded)
	if err != nil {
		return 0, err
	}
	if v, ok := d.m["maxlength"]; ok && v != nil && n < 0 {
		return 0, &schema.ConstructionError{Kind: k, Reason: fmt.Sprintf("%s.maxlength must be non-negative, got %d", d.at, n)}
	}
	return n, nil
}

func (d *docMap) list(key string) ([]any, error) {
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil, nil
	}
	l, ok := v.([]any)
	if !ok {
		return nil, d.errorf(key, "expected a list, got %T", v)
	}
	return l, nil
}

func (d *docMap) child(key string) (schema.Schema, error) {
	v, ok := d.m[key]
	if !ok || v == nil {
		return nil, d.errorf(key, "missing")
	}
	return fromDoc(v, d.at+"."+key)
}

func asMap(d any, at string) (map[string]any, error) {
	switch x := d.(type) {
	case map[string]any:
		return x, nil
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s: non string key %v", ErrDecode, at, k)
			}
			res[ks] = v
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s: expected a map, got %T", ErrDecode, at, d)
}

func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), x <= math.MaxInt
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), x <= math.MaxInt
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
			return 0, false
		}
		return int(x), true
	case float32:
		return asInt(float64(x))
	}
	return 0, false
}
