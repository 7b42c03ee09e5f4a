// Package pretty renders schemas as indented text and compares two
// renderings side by side.
//
// A rendering is a sequence of Lines. Atomic schemas take one line;
// composites open with "Kind(", list their children one level deeper and
// close with a line carrying the remaining attributes:
//
//	Record(
//	  points=Tensor(
//	    Number(whole=false, signed=true, nbytes=8),
//	    3)
//	  )
package pretty
