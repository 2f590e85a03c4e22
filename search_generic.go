//go:build !amd64 && !arm64

package ansipal

// searchGeneric backs platforms with no dedicated unrolled kernel; it is
// simply the scalar reference. Correct on every architecture Go supports,
// just without the unrolled kernels' modest constant-factor speedup.
func searchGeneric(rows []labRow, target oklab) int {
	return searchScalar(rows, target)
}
