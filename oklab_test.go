package ansipal

import (
	"math"
	"testing"
)

func TestFastCbrtMatchesMathCbrt(t *testing.T) {
	// Exhaustive over every representable float32 in [cbrtMin, 1.0] by
	// default, the same default-exhaustive convention search_test.go uses
	// for the kernel-vs-scalar check; -short thins the sweep with a
	// stride for quick local iteration. Bit patterns are monotonic with
	// magnitude for non-negative floats, so walking bits from cbrtMin's
	// pattern to 1.0's visits every candidate exactly once.
	start := math.Float32bits(cbrtMin)
	end := math.Float32bits(1.0)
	stride := uint32(1)
	if testing.Short() {
		stride = 997
	}

	var maxULP int64
	var worstBits uint32
	for bits := start; bits <= end; bits += stride {
		f := math.Float32frombits(bits)
		got := fastCbrt(f)
		want := float32(math.Cbrt(float64(f)))
		if d := ulpDiff(got, want); d > maxULP {
			maxULP, worstBits = d, bits
		}
	}
	t.Logf("fastCbrt vs math.Cbrt over [%g, 1.0]: worst case %d ULP, at input %v", cbrtMin, maxULP, math.Float32frombits(worstBits))
	if maxULP > 2 {
		t.Fatalf("fastCbrt diverged from math.Cbrt by %d ULP at worst (want <= 2), at input %v", maxULP, math.Float32frombits(worstBits))
	}
}

func TestFastCbrtBelowThresholdFlattensToZero(t *testing.T) {
	for _, f := range []float32{0, 1e-9, -1, 9.9e-7} {
		if got := fastCbrt(f); got != 0 {
			t.Fatalf("fastCbrt(%v) = %v, want 0 (below cbrtMin)", f, got)
		}
	}
}

func TestFromSRGB8Black(t *testing.T) {
	c := fromSRGB8(0, 0, 0)
	if c.l != 0 || c.a != 0 || c.b != 0 {
		t.Fatalf("fromSRGB8(0,0,0) = %+v, want all-zero", c)
	}
}

func TestFromSRGB8White(t *testing.T) {
	c := fromSRGB8(255, 255, 255)
	if c.l < 0.999 || c.l > 1.001 {
		t.Fatalf("fromSRGB8(255,255,255).l = %v, want ~1.0", c.l)
	}
	if math.Abs(float64(c.a)) > 1e-3 || math.Abs(float64(c.b)) > 1e-3 {
		t.Fatalf("fromSRGB8(255,255,255) = %+v, want a/b ~0", c)
	}
}

// ulpDiff compares two non-negative float32 values (the only kind fastCbrt
// ever produces over its documented domain) by treating their bit patterns
// as ordered integers, which IEEE 754 guarantees is monotonic for
// non-negative floats.
func ulpDiff(a, b float32) int64 {
	ai := int64(math.Float32bits(a))
	bi := int64(math.Float32bits(b))
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return d
}
