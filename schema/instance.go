package schema

import (
	"reflect"
	"unicode/utf8"
)

// StructTag is the struct tag naming the record field a Go struct field
// provides, e.g. `typesys:"name"`.
const StructTag = "typesys"

// ByteString is a Go representation of a "bytes" string usable as a map key.
// Plain Go strings are text ("utf-8"); byte strings and text never conform
// to each other's schemas.
type ByteString string

var byteStringType = reflect.TypeOf(ByteString(""))

// IsInstance reports whether the Go value v conforms to s.
//
// Go values are interpreted as follows:
//   - nil (including nil pointers and interfaces) is the Null member.
//   - bool is a Boolean member.
//   - Go numeric types describe themselves: intN is a whole signed number of
//     N/8 bytes, uintN whole unsigned, float32/float64 fractional signed;
//     int, uint and uintptr are 8 bytes. A number conforms when its own
//     Number schema is a subtype of s.
//   - []byte and ByteString are "bytes" strings; string is a "utf-8" string
//     measured in runes.
//   - Slices and arrays (other than []byte) are tensors and collections;
//     map[K]struct{} is also an unordered collection.
//   - Maps are mappings; structs and map[string]T are records.
//   - Any Go integer is a Reference member.
func IsInstance(s Schema, v any) bool {
	return isInstance(s, reflect.ValueOf(v))
}

// IsDataset reports whether data is a slice or array whose every element
// conforms to s.
func IsDataset(s Schema, data any) bool {
	rv := indirect(reflect.ValueOf(data))
	if !isSequence(rv) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !isInstance(s, rv.Index(i)) {
			return false
		}
	}
	return true
}

func isInstance(s Schema, rv reflect.Value) bool {
	rv = indirect(rv)
	switch x := s.(type) {
	case Anything:
		return true
	case Nothing:
		return false
	case Null:
		return !rv.IsValid()
	case Boolean:
		return rv.IsValid() && rv.Kind() == reflect.Bool
	case *Number:
		n, ok := numberOf(rv)
		return ok && numberCovers(x, n)
	case *String:
		l, ok := stringLen(x.charset, rv)
		return ok && (x.maxLength == Unbounded || l <= x.maxLength)
	case *Tensor:
		return tensorInstance(x, rv, 0)
	case *Collection:
		if isSet(rv) {
			if x.maxLength != Unbounded && rv.Len() > x.maxLength {
				return false
			}
			it := rv.MapRange()
			for it.Next() {
				if !isInstance(x.items, it.Key()) {
					return false
				}
			}
			return true
		}
		if !isSequence(rv) {
			return false
		}
		if x.maxLength != Unbounded && rv.Len() > x.maxLength {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if !isInstance(x.items, rv.Index(i)) {
				return false
			}
		}
		return true
	case *Mapping:
		if !rv.IsValid() || rv.Kind() != reflect.Map {
			return false
		}
		it := rv.MapRange()
		for it.Next() {
			if !isInstance(x.keys, it.Key()) || !isInstance(x.values, it.Value()) {
				return false
			}
		}
		return true
	case *Record:
		for _, n := range x.names {
			fv, ok := recordField(rv, n)
			if !ok || !isInstance(x.fields[n], fv) {
				return false
			}
		}
		return rv.IsValid() && (rv.Kind() == reflect.Struct || rv.Kind() == reflect.Map)
	case *Union:
		for _, p := range x.possibilities {
			if isInstance(p, rv) {
				return true
			}
		}
		return false
	case *Reference:
		_, ok := numberOf(rv)
		return ok && isInteger(rv.Kind())
	}
	return false
}

// NumberOf returns the Number schema describing the Go numeric value v, as
// used by IsInstance.
func NumberOf(v any) (*Number, bool) {
	return numberOf(indirect(reflect.ValueOf(v)))
}

// LookupField returns the value v provides for a record field, where v is a
// struct or a string keyed map.
func LookupField(v any, name string) (any, bool) {
	fv, ok := recordField(indirect(reflect.ValueOf(v)), name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

// indirect follows pointers and interfaces; nil yields the invalid Value.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func isBytes(rv reflect.Value) bool {
	return rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Array:
		return true
	case reflect.Slice:
		return !isBytes(rv)
	}
	return false
}

func isSet(rv reflect.Value) bool {
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return false
	}
	et := rv.Type().Elem()
	return et.Kind() == reflect.Struct && et.NumField() == 0
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// numberOf returns the Number schema describing a Go numeric value.
func numberOf(rv reflect.Value) (*Number, bool) {
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int64:
		return &Number{whole: true, signed: true, nbytes: 8}, true
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return &Number{whole: true, signed: true, nbytes: int(rv.Type().Size())}, true
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return &Number{whole: true, signed: false, nbytes: 8}, true
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return &Number{whole: true, signed: false, nbytes: int(rv.Type().Size())}, true
	case reflect.Float32:
		return &Number{whole: false, signed: true, nbytes: 4}, true
	case reflect.Float64:
		return &Number{whole: false, signed: true, nbytes: 8}, true
	}
	return nil, false
}

// stringLen returns the length of rv as a string of charset cs.
func stringLen(cs Charset, rv reflect.Value) (int, bool) {
	if !rv.IsValid() {
		return 0, false
	}
	switch cs {
	case CharsetBytes:
		if isBytes(rv) || rv.Type() == byteStringType {
			return rv.Len(), true
		}
	case CharsetUTF8:
		if rv.Kind() == reflect.String && rv.Type() != byteStringType {
			return utf8.RuneCountInString(rv.String()), true
		}
	}
	return 0, false
}

func tensorInstance(t *Tensor, rv reflect.Value, depth int) bool {
	rv = indirect(rv)
	if !isSequence(rv) || rv.Len() != t.dimensions[depth] {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if depth+1 == len(t.dimensions) {
			if !isInstance(t.items, rv.Index(i)) {
				return false
			}
			continue
		}
		if !tensorInstance(t, rv.Index(i), depth+1) {
			return false
		}
	}
	return true
}

// recordField looks up a named field of a struct or string keyed map.
func recordField(rv reflect.Value, name string) (reflect.Value, bool) {
	if !rv.IsValid() {
		return reflect.Value{}, false
	}
	switch rv.Kind() {
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			fname := sf.Name
			if tag, ok := sf.Tag.Lookup(StructTag); ok && tag != "" && tag != "-" {
				fname = tag
			} else if tag == "-" {
				continue
			}
			if fname == name {
				return rv.Field(i), true
			}
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if v.IsValid() {
			return v, true
		}
	}
	return reflect.Value{}, false
}
