package ansipal

import "testing"

// TestSearchKernelMatchesScalar checks the process-selected kernel against
// the scalar reference over every one of the 2^24 RGB inputs by default;
// -short thins the sweep to a stride of 17 per channel for quick local
// iteration.
func TestSearchKernelMatchesScalar(t *testing.T) {
	kernel := ensureKernel()
	step := 17
	if !testing.Short() {
		step = 1
	}
	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				target := fromSRGB8(uint8(r), uint8(g), uint8(b))

				want256 := searchScalar(lab256Rows[:], target)
				got256 := kernel(lab256Rows[:], target)
				if got256 != want256 {
					t.Fatalf("256-palette kernel/scalar mismatch at (%d,%d,%d): kernel=%d scalar=%d", r, g, b, got256, want256)
				}

				want88 := searchScalar(lab88Rows[:], target)
				got88 := kernel(lab88Rows[:], target)
				if got88 != want88 {
					t.Fatalf("88-palette kernel/scalar mismatch at (%d,%d,%d): kernel=%d scalar=%d", r, g, b, got88, want88)
				}
			}
		}
	}
}

func TestSearchLowestLaneTieBreak(t *testing.T) {
	rows := []labRow{{
		l: [8]float32{1, 1, 2, 3, 4, 5, 6, 7},
		a: [8]float32{0, 0, 0, 0, 0, 0, 0, 0},
		b: [8]float32{0, 0, 0, 0, 0, 0, 0, 0},
	}}
	target := oklab{l: 1, a: 0, b: 0}
	if got := searchScalar(rows, target); got != 0 {
		t.Fatalf("searchScalar tie-break = %d, want 0 (lowest lane)", got)
	}
	if got := ensureKernel()(rows, target); got != 0 {
		t.Fatalf("kernel tie-break = %d, want 0 (lowest lane)", got)
	}
}
