package schema

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/go-typesys/schema/kpath"
)

var (
	// ErrDereference is wrapped by every *DereferenceError.
	ErrDereference = errors.New("dereference error")
	// ErrConstruction is wrapped by every *ConstructionError.
	ErrConstruction = errors.New("construction error")
)

// DereferenceError reports a path segment that cannot be applied to the
// schema reached so far.
type DereferenceError struct {
	// Path is the full path being dereferenced.
	Path kpath.Path
	// Pos is the position in Path of the failing segment.
	Pos int
	// Kind is the kind of schema the segment was applied to.
	Kind   Kind
	Reason string
}

func (e *DereferenceError) Error() string {
	seg := "<none>"
	if e.Pos >= 0 && e.Pos < len(e.Path) {
		seg = e.Path[e.Pos].String()
	}
	return fmt.Sprintf("%s: %s at %s (path %q): %s", ErrDereference, e.Kind, seg, e.Path.String(), e.Reason)
}

func (e *DereferenceError) Unwrap() error { return ErrDereference }

// ConstructionError reports malformed constructor attributes.
type ConstructionError struct {
	Kind   Kind
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConstruction, e.Kind, e.Reason)
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

func constructionErr(k Kind, format string, args ...any) error {
	return &ConstructionError{Kind: k, Reason: fmt.Sprintf(format, args...)}
}
