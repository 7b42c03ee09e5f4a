package schema

import (
	"fmt"
	"strings"
)

// Kind identifies a schema variant. The numeric value of a Kind is its order
// rank: schemas of different kinds sort by Kind.
type Kind int

const (
	AnythingKind Kind = iota
	NothingKind
	NullKind
	BooleanKind
	NumberKind
	StringKind
	TensorKind
	CollectionKind
	MappingKind
	RecordKind
	UnionKind
	ReferenceKind
)

var kindNames = [...]string{
	AnythingKind:   "Anything",
	NothingKind:    "Nothing",
	NullKind:       "Null",
	BooleanKind:    "Boolean",
	NumberKind:     "Number",
	StringKind:     "String",
	TensorKind:     "Tensor",
	CollectionKind: "Collection",
	MappingKind:    "Mapping",
	RecordKind:     "Record",
	UnionKind:      "Union",
	ReferenceKind:  "Reference",
}

// Kinds returns all kinds in rank order.
func Kinds() []Kind {
	res := make([]Kind, len(kindNames))
	for i := range kindNames {
		res[i] = Kind(i)
	}
	return res
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a kind name, case insensitively.
func ParseKind(v string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, v) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown schema kind %q", v)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("<err: %d is not a kind>", int(k))
	}
	return []byte(strings.ToLower(kindNames[k])), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// IsAtomic reports whether schemas of kind k have no child schemas.
func (k Kind) IsAtomic() bool {
	switch k {
	case TensorKind, CollectionKind, MappingKind, RecordKind, UnionKind:
		return false
	}
	return true
}
