// Package encode converts schemas to and from documents.
//
// A document is a tree of maps, lists and scalars, one map per schema node
// with a "kind" entry naming the variant:
//
//	kind: record
//	fields:
//	  id:
//	    kind: number
//	    nbytes: 8
//	    signed: true
//	    whole: true
//	  parent:
//	    kind: reference
//	    path: nodes
//
// Documents are written as YAML or JSON.
package encode
