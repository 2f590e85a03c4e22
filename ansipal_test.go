package ansipal

import (
	"reflect"
	"testing"
)

func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name       string
		r, g, b    uint8
		want256    uint8
	}{
		{"black corner", 0, 0, 0, 16},
		{"white corner", 255, 255, 255, 231},
		{"mid grey", 128, 128, 128, greyToAnsi256[128]},
		{"red cube corner", 255, 0, 0, 196},
		{"green cube corner", 0, 255, 0, 46},
		{"blue cube corner", 0, 0, 255, 21},
		{"cube interior", 95, 135, 175, 67},
		{"near white", 250, 251, 252, 231},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearestANSI256(tc.r, tc.g, tc.b); got != tc.want256 {
				t.Fatalf("NearestANSI256(%d,%d,%d) = %d, want %d", tc.r, tc.g, tc.b, got, tc.want256)
			}
		})
	}
}

func TestMonochromeLawNeverTouchesCache(t *testing.T) {
	fresh := newColorCache(cacheSize256)
	old := cache256
	cache256 = fresh
	defer func() { cache256 = old }()

	for v := 0; v < 256; v++ {
		want := greyToAnsi256[v]
		if got := NearestANSI256(uint8(v), uint8(v), uint8(v)); got != want {
			t.Fatalf("NearestANSI256(%d,%d,%d) = %d, want %d", v, v, v, got, want)
		}
	}
	for i := range fresh.buckets {
		if fresh.buckets[i].slots[0].Load() != cacheEmpty || fresh.buckets[i].slots[1].Load() != cacheEmpty {
			t.Fatalf("monochrome lookups touched cache bucket %d", i)
		}
	}
}

// wantExact is the answer NearestANSI{256,88} owes a searchable palette
// entry's own RGB triple: idx, unless r == g == b, in which case the
// monochrome shortcut (ansipal.go) intercepts before the exact-match check
// ever runs and the grey-to-index table's answer governs instead. That
// table can legitimately point elsewhere: the 88-color palette's grey
// ramp and color cube both include a level of 139, so ansi88RGB holds two
// distinct indices (a cube corner and a ramp step) for the same RGB
// triple, and only one of them is reachable from a grey query.
func wantExact(rgb [3]uint8, idx uint8, grey [256]uint8) uint8 {
	if rgb[0] == rgb[1] && rgb[1] == rgb[2] {
		return grey[rgb[0]]
	}
	return idx
}

func TestExactMatchLaw256(t *testing.T) {
	for i, rgb := range ansi256RGB {
		idx := uint8(i + 16)
		want := wantExact(rgb, idx, greyToAnsi256)
		got := NearestANSI256(rgb[0], rgb[1], rgb[2])
		if got != want {
			t.Fatalf("NearestANSI256(%v) = %d, want %d", rgb, got, want)
		}
	}
}

func TestExactMatchLaw88(t *testing.T) {
	for i, rgb := range ansi88RGB {
		idx := uint8(i + 16)
		want := wantExact(rgb, idx, greyToAnsi88)
		got := NearestANSI88(rgb[0], rgb[1], rgb[2])
		if got != want {
			t.Fatalf("NearestANSI88(%v) = %d, want %d", rgb, got, want)
		}
	}
}

func TestCachedMatchesUncached(t *testing.T) {
	for r := 0; r < 256; r += 31 {
		for g := 0; g < 256; g += 37 {
			for b := 0; b < 256; b += 41 {
				want := NearestANSI256Uncached(uint8(r), uint8(g), uint8(b))
				got := NearestANSI256(uint8(r), uint8(g), uint8(b))
				if got != want {
					t.Fatalf("cached/uncached mismatch at (%d,%d,%d): %d vs %d", r, g, b, got, want)
				}
				// Second call must hit the cache and still agree.
				again := NearestANSI256(uint8(r), uint8(g), uint8(b))
				if again != want {
					t.Fatalf("repeated NearestANSI256(%d,%d,%d) = %d, want %d", r, g, b, again, want)
				}
			}
		}
	}
}

func TestKernelDispatchStable(t *testing.T) {
	first := reflect.ValueOf(ensureKernel()).Pointer()
	for i := 0; i < 1000; i++ {
		if got := reflect.ValueOf(ensureKernel()).Pointer(); got != first {
			t.Fatalf("ensureKernel() returned a different function on call %d", i)
		}
	}
}
