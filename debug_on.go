//go:build ansipal_debug

package ansipal

import "fmt"

// debugAssert panics with msg when cond is false. Only compiled in when the
// ansipal_debug build tag is set; release builds carry none of this, not
// even the branch, matching the source project's debug_assert! convention.
func debugAssert(cond bool, msg string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(msg, args...))
	}
}
