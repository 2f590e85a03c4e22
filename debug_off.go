//go:build !ansipal_debug

package ansipal

// debugAssert is a no-op in release builds. Callers should keep the
// condition cheap (equality/range checks on already-computed values):
// Go still evaluates the arguments before the call, this just drops the
// panic.
func debugAssert(cond bool, msg string, args ...any) {}
