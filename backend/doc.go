// Package backend describes what an execution backend can represent.
//
// A Backend is a table of per kind capabilities consulted by a generic walk
// over schema trees: whether a node is supported and how a Go value is
// checked for membership. Backends also rebuild schemas into the form they
// prefer through schema.Rebuild.
//
// Columnar returns a backend for fixed width columnar arrays.
package backend
