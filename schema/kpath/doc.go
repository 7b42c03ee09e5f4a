// Package kpath provides paths into schema trees.
//
// A path is a sequence of segments, each either a field name (record fields,
// string mapping keys) or an index (tensor dimensions, ordered collection
// elements, integer mapping keys). Paths are written like "table[3].name".
package kpath
