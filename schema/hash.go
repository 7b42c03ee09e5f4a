package schema

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the schema, consistent with Equal within a
// process. It panics if s is nil.
func Hash(s Schema) uint64 {
	if s == nil {
		panic("schema: Hash called on nil schema")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	writeHash(&h, s)
	return h.Sum64()
}

func writeHash(h *maphash.Hash, s Schema) {
	h.WriteByte(byte(s.Kind()))
	switch x := s.(type) {
	case *Number:
		writeBool(h, x.whole)
		writeBool(h, x.signed)
		writeInt(h, x.nbytes)
	case *String:
		h.WriteString(string(x.charset))
		h.WriteByte(0)
		writeInt(h, x.maxLength)
	case *Tensor:
		writeHash(h, x.items)
		writeInt(h, len(x.dimensions))
		for _, d := range x.dimensions {
			writeInt(h, d)
		}
	case *Collection:
		writeHash(h, x.items)
		writeBool(h, x.ordered)
		writeInt(h, x.maxLength)
	case *Mapping:
		writeHash(h, x.keys)
		writeHash(h, x.values)
	case *Record:
		writeInt(h, len(x.names))
		for _, n := range x.names {
			h.WriteString(n)
			h.WriteByte(0)
			writeHash(h, x.fields[n])
		}
	case *Union:
		writeInt(h, len(x.possibilities))
		for _, p := range x.possibilities {
			writeHash(h, p)
		}
	case *Reference:
		writeInt(h, len(x.path))
		for _, seg := range x.path {
			if i, ok := seg.IndexValue(); ok {
				h.WriteByte(1)
				writeInt(h, i)
				continue
			}
			f, _ := seg.FieldName()
			h.WriteByte(2)
			h.WriteString(f)
			h.WriteByte(0)
		}
	}
}

func writeBool(h *maphash.Hash, b bool) {
	if b {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
}

func writeInt(h *maphash.Hash, i int) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(int64(i)))
	h.Write(b[:])
}
