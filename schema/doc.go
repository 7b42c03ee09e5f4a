// Package schema provides a structural type system for describing the shape
// of data.
//
// A Schema is one of twelve variants: the top and bottom types Anything and
// Nothing, the atoms Null, Boolean, Number and String, the composites Tensor,
// Collection, Mapping and Record, the sum type Union and Reference, which
// points at another part of a schema tree so recursive and table like
// structures can be described.
//
// Schemas support membership tests of Go values (IsInstance), structural
// subtyping (IsSubtype), path based navigation (Dereference) and a total
// order (Compare) consistent with Equal and Hash. Unions are normalized on
// construction so that no possibility is a subtype of another.
//
// Schemas are immutable and safe for concurrent use.
package schema
