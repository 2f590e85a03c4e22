package ansipal

import "sync/atomic"

// kernelFunc is the shape every search kernel (scalar and the per-arch
// unrolled variants) shares.
type kernelFunc func(rows []labRow, target oklab) int

// kernelPtr holds the kernel chosen for this process. It is populated
// lazily, once, by ensureKernel; every candidate kernel is required to be
// byte-exact with searchScalar (see search_test.go), so a benign race on
// the very first call — two goroutines both computing and publishing the
// same selection — can never produce a wrong answer, only redundant work.
var kernelPtr atomic.Pointer[kernelFunc]

// ensureKernel returns the process-wide search kernel, selecting it via
// CPU feature detection on first use.
func ensureKernel() kernelFunc {
	if p := kernelPtr.Load(); p != nil {
		return *p
	}
	k := selectKernel()
	kernelPtr.Store(&k)
	return k
}
