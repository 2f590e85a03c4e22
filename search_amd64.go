//go:build amd64

package ansipal

// searchAMD64 is the AVX2-class kernel: the loop over lanes within a row is
// unrolled by hand so the eight squared-distance computations and the
// pairwise min-reduction are laid out the way a real 8-wide vector kernel
// would compute them. Go has no stable SIMD intrinsics without cgo or
// hand-written assembly, so "vector width" here means "loop unrolled to
// the row width" rather than an actual vector instruction — the same
// approach used elsewhere in this ecosystem for portable "vectorized"
// hot loops. Must match searchScalar bit for bit; see search_test.go.
func searchAMD64(rows []labRow, target oklab) int {
	best := -1
	var bestD float32

	tl, ta, tb := target.l, target.a, target.b

	for ri := range rows {
		row := &rows[ri]

		d0 := sq(row.l[0]-tl) + sq(row.a[0]-ta) + sq(row.b[0]-tb)
		d1 := sq(row.l[1]-tl) + sq(row.a[1]-ta) + sq(row.b[1]-tb)
		d2 := sq(row.l[2]-tl) + sq(row.a[2]-ta) + sq(row.b[2]-tb)
		d3 := sq(row.l[3]-tl) + sq(row.a[3]-ta) + sq(row.b[3]-tb)
		d4 := sq(row.l[4]-tl) + sq(row.a[4]-ta) + sq(row.b[4]-tb)
		d5 := sq(row.l[5]-tl) + sq(row.a[5]-ta) + sq(row.b[5]-tb)
		d6 := sq(row.l[6]-tl) + sq(row.a[6]-ta) + sq(row.b[6]-tb)
		d7 := sq(row.l[7]-tl) + sq(row.a[7]-ta) + sq(row.b[7]-tb)

		// Pairwise reduction, lowest-index-wins on ties at every stage, so
		// the result is identical to scanning lanes 0..7 in order.
		i0, v0 := 0, d0
		if d1 < v0 {
			i0, v0 = 1, d1
		}
		i1, v1 := 2, d2
		if d3 < v1 {
			i1, v1 = 3, d3
		}
		i2, v2 := 4, d4
		if d5 < v2 {
			i2, v2 = 5, d5
		}
		i3, v3 := 6, d6
		if d7 < v3 {
			i3, v3 = 7, d7
		}

		j0, w0 := i0, v0
		if v1 < w0 {
			j0, w0 = i1, v1
		}
		j1, w1 := i2, v2
		if v3 < w1 {
			j1, w1 = i3, v3
		}

		rowLane, rowD := j0, w0
		if w1 < rowD {
			rowLane, rowD = j1, w1
		}

		idx := ri*8 + rowLane
		if best == -1 || rowD < bestD {
			best = idx
			bestD = rowD
		}
	}
	return best
}
