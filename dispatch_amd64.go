//go:build amd64

package ansipal

import "golang.org/x/sys/cpu"

// selectKernel picks the unrolled AMD64 kernel when AVX2 is present (it is
// on effectively every x86_64 CPU built since ~2013), falling back to the
// scalar reference otherwise.
func selectKernel() kernelFunc {
	if cpu.X86.HasAVX2 {
		return searchAMD64
	}
	return searchScalar
}
