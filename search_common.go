package ansipal

// sq is shared by every search kernel (scalar and the per-arch unrolled
// variants) for the squared-distance accumulation.
func sq(x float32) float32 { return x * x }
