package schema

import (
	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

// Constructors supplies per variant constructors to Rebuild. A nil field
// falls back to the constructor of this package. Composite constructors
// receive children that have already been rebuilt.
type Constructors struct {
	Anything   func() (Schema, error)
	Nothing    func() (Schema, error)
	Null       func() (Schema, error)
	Boolean    func() (Schema, error)
	Number     func(whole, signed bool, nbytes int) (Schema, error)
	String     func(cs Charset, maxLength int) (Schema, error)
	Tensor     func(items Schema, dimensions []int) (Schema, error)
	Collection func(items Schema, ordered bool, maxLength int) (Schema, error)
	Mapping    func(keys, values Schema) (Schema, error)
	Record     func(fields map[string]Schema) (Schema, error)
	Union      func(possibilities []Schema) (Schema, error)
	Reference  func(path kpath.Path) (Schema, error)
}

// Copy returns a structurally equal schema sharing no mutable state with s.
func Copy(s Schema) Schema {
	res, err := Rebuild(s, Constructors{})
	if err != nil {
		// the default constructors accept everything an existing schema holds
		panic(err)
	}
	return res
}

// Rebuild reconstructs s bottom up through cs. The first constructor error
// is returned.
func Rebuild(s Schema, cs Constructors) (Schema, error) {
	switch x := s.(type) {
	case Anything:
		if cs.Anything != nil {
			return cs.Anything()
		}
		return Anything{}, nil
	case Nothing:
		if cs.Nothing != nil {
			return cs.Nothing()
		}
		return Nothing{}, nil
	case Null:
		if cs.Null != nil {
			return cs.Null()
		}
		return Null{}, nil
	case Boolean:
		if cs.Boolean != nil {
			return cs.Boolean()
		}
		return Boolean{}, nil
	case *Number:
		if cs.Number != nil {
			return cs.Number(x.whole, x.signed, x.nbytes)
		}
		return NewNumber(x.whole, x.signed, x.nbytes)
	case *String:
		if cs.String != nil {
			return cs.String(x.charset, x.maxLength)
		}
		return NewString(x.charset, x.maxLength)
	case *Tensor:
		items, err := Rebuild(x.items, cs)
		if err != nil {
			return nil, err
		}
		if cs.Tensor != nil {
			return cs.Tensor(items, x.Dimensions())
		}
		return NewTensor(items, x.dimensions...)
	case *Collection:
		items, err := Rebuild(x.items, cs)
		if err != nil {
			return nil, err
		}
		if cs.Collection != nil {
			return cs.Collection(items, x.ordered, x.maxLength)
		}
		return NewCollection(items, x.ordered, x.maxLength)
	case *Mapping:
		keys, err := Rebuild(x.keys, cs)
		if err != nil {
			return nil, err
		}
		values, err := Rebuild(x.values, cs)
		if err != nil {
			return nil, err
		}
		if cs.Mapping != nil {
			return cs.Mapping(keys, values)
		}
		return NewMapping(keys, values)
	case *Record:
		fields := make(map[string]Schema, len(x.names))
		for _, n := range x.names {
			f, err := Rebuild(x.fields[n], cs)
			if err != nil {
				return nil, err
			}
			fields[n] = f
		}
		if cs.Record != nil {
			return cs.Record(fields)
		}
		return NewRecord(fields)
	case *Union:
		ps := make([]Schema, len(x.possibilities))
		for i, p := range x.possibilities {
			q, err := Rebuild(p, cs)
			if err != nil {
				return nil, err
			}
			ps[i] = q
		}
		if cs.Union != nil {
			return cs.Union(ps)
		}
		return NewUnion(ps...)
	case *Reference:
		if cs.Reference != nil {
			return cs.Reference(x.Path())
		}
		return NewReference(x.path...), nil
	}
	return nil, constructionErr(AnythingKind, "unknown schema %T", s)
}
