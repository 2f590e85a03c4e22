package ansipal

// Cache sizes. Both are powers of two, larger than the palette they back,
// chosen so that a terminal session cycling through a modest working set
// of colors (the common case: a handful of foreground/background pairs
// reused constantly) keeps its hot set resident with low collision
// pressure.
const (
	cacheSize256 = 1024
	cacheSize88  = 512
)

var (
	cache256 = newColorCache(cacheSize256)
	cache88  = newColorCache(cacheSize88)
)

// NearestANSI256 returns the index (16-255) of the xterm 256-color palette
// entry closest to (r, g, b) in Oklab space, or a fixed exact/monochrome
// answer (0-255) when one applies. Repeated calls with the same color are
// served from a lock-free cache after the first.
func NearestANSI256(r, g, b uint8) uint8 {
	if r == g && g == b {
		return monochrome256(r)
	}
	if idx, ok := exactMatch256(r, g, b); ok {
		return idx
	}
	if idx, ok := cache256.lookup(r, g, b); ok {
		return idx
	}
	idx := searchNearest256(r, g, b)
	cache256.insert(r, g, b, idx)
	return idx
}

// NearestANSI256Uncached computes the same answer as NearestANSI256 without
// ever consulting or populating the cache. Useful for benchmarking the
// search kernels in isolation, or for callers who already maintain their
// own higher-level cache.
func NearestANSI256Uncached(r, g, b uint8) uint8 {
	if r == g && g == b {
		return monochrome256(r)
	}
	if idx, ok := exactMatch256(r, g, b); ok {
		return idx
	}
	return searchNearest256(r, g, b)
}

// NearestANSI88 is NearestANSI256's counterpart for the 88-color palette.
func NearestANSI88(r, g, b uint8) uint8 {
	if r == g && g == b {
		return monochrome88(r)
	}
	if idx, ok := exactMatch88(r, g, b); ok {
		return idx
	}
	if idx, ok := cache88.lookup(r, g, b); ok {
		return idx
	}
	idx := searchNearest88(r, g, b)
	cache88.insert(r, g, b, idx)
	return idx
}

// NearestANSI88Uncached is NearestANSI256Uncached's counterpart for the
// 88-color palette.
func NearestANSI88Uncached(r, g, b uint8) uint8 {
	if r == g && g == b {
		return monochrome88(r)
	}
	if idx, ok := exactMatch88(r, g, b); ok {
		return idx
	}
	return searchNearest88(r, g, b)
}

// searchNearest256 runs the full Oklab search over the 256-palette's
// searchable range (palette indices 16-255) via whichever kernel this
// process selected.
func searchNearest256(r, g, b uint8) uint8 {
	target := fromSRGB8(r, g, b)
	lane := ensureKernel()(lab256Rows[:], target)
	debugAssert(lane >= 0 && lane < len(lab256Rows)*8, "search returned out-of-range lane %d", lane)
	return uint8(lane + 16)
}

// searchNearest88 is searchNearest256's counterpart for the 88-color
// palette's searchable range (palette indices 16-87).
func searchNearest88(r, g, b uint8) uint8 {
	target := fromSRGB8(r, g, b)
	lane := ensureKernel()(lab88Rows[:], target)
	return uint8(lane + 16)
}
