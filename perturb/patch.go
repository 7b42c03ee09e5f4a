package perturb

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/tony-format/go-typesys/encode"
	"github.com/signadot/tony-format/go-typesys/format"
	"github.com/signadot/tony-format/go-typesys/schema"
)

// Patch applies an RFC 6902 JSON patch to the document form of s (see
// package encode) and decodes the result as a new schema.
//
//	[{"op": "replace", "path": "/fields/id/nbytes", "value": 4}]
func Patch(s schema.Schema, patch []byte) (schema.Schema, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	d, err := encode.Marshal(s, encode.EncodeFormat(format.JSONFormat))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return encode.Unmarshal(out)
}
