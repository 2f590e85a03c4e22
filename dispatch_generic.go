//go:build !amd64 && !arm64

package ansipal

// selectKernel has no dedicated unrolled kernel to offer on this
// architecture; searchGeneric is the scalar reference itself.
func selectKernel() kernelFunc {
	return searchGeneric
}
