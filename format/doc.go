// Package format names the document formats schemas are encoded in.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-typesys/encode - Encode schemas as documents
package format
