package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Subtype bool
	Union   bool
	Deref   bool
	Backend bool
}

var d *debug

func init() {
	d = &debug{}
	d.Subtype = boolEnv("TYPESYS_DEBUG_SUBTYPE")
	d.Union = boolEnv("TYPESYS_DEBUG_UNION")
	d.Deref = boolEnv("TYPESYS_DEBUG_DEREF")
	d.Backend = boolEnv("TYPESYS_DEBUG_BACKEND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Subtype() bool {
	return d.Subtype
}
func Union() bool {
	return d.Union
}
func Deref() bool {
	return d.Deref
}
func Backend() bool {
	return d.Backend
}
