//go:build arm64

package ansipal

import "golang.org/x/sys/cpu"

// selectKernel picks the unrolled ARM64 kernel when Advanced SIMD is
// present (it is mandatory on arm64, so this is effectively always true;
// the check is kept for symmetry with dispatch_amd64.go and in case a
// future constrained target reports it absent).
func selectKernel() kernelFunc {
	if cpu.ARM64.HasASIMD {
		return searchARM64
	}
	return searchScalar
}
