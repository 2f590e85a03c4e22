// Command gentables recomputes tables.go in full — palette geometry, the
// sRGB->Oklab conversion, the grey and exact-match reverse lookups, and the
// SoA Oklab rows the search kernels sweep — and writes the result to the
// path given as its single argument. It is never imported by package
// ansipal and never runs on the hot path: it exists so the static tables
// checked into that package are reproducible from first principles rather
// than opaque, the same role the teacher project's compute_tables command
// plays for its own palette blobs.
//
// Usage: gentables <output-path>
package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// --- C2, duplicated rather than imported ---
//
// This tool intentionally never depends on package ansipal (it produces
// that package's source, not the other way around), so the conversion it
// needs to bake into the static tables is reproduced here verbatim. Any
// change to oklab.go's fastCbrt or matrices must be mirrored here, or the
// regenerated tables would quietly drift from what the runtime search
// compares against.

const cbrtMin = 1e-6

func fastCbrt(f float32) float32 {
	if f < cbrtMin {
		return 0
	}
	bits := math.Float32bits(f)
	seed := bits/3 + 0x2a5119f2
	a := float64(math.Float32frombits(seed))
	x := float64(f)
	a = a * (2*x + a*a*a) / (x + 2*a*a*a)
	a = a * (2*x + a*a*a) / (x + 2*a*a*a)
	return float32(a)
}

const (
	m1r1, m1r2, m1r3 = 0.4122214708, 0.5363325363, 0.0514459929
	m1r4, m1r5, m1r6 = 0.2119034982, 0.6806995451, 0.1073969566
	m1r7, m1r8, m1r9 = 0.0883024619, 0.2817188376, 0.6299787005

	m2r1, m2r2, m2r3 = 0.2104542553, 0.7936177850, -0.0040720468
	m2r4, m2r5, m2r6 = 1.9779984951, -2.4285922050, 0.4505937099
	m2r7, m2r8, m2r9 = 0.0259040371, 0.7827717662, -0.8086757660
)

type oklab struct{ l, a, b float32 }

func srgbEOTF(c uint8) float32 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return float32(v / 12.92)
	}
	return float32(math.Pow((v+0.055)/1.055, 2.4))
}

var linearLUT = func() (t [256]float32) {
	for i := range t {
		t[i] = srgbEOTF(uint8(i))
	}
	return t
}()

func fromSRGB8(r, g, b uint8) oklab {
	lr, lg, lb := linearLUT[r], linearLUT[g], linearLUT[b]

	l := fastCbrt(m1r1*lr + m1r2*lg + m1r3*lb)
	m := fastCbrt(m1r4*lr + m1r5*lg + m1r6*lb)
	s := fastCbrt(m1r7*lr + m1r8*lg + m1r9*lb)

	return oklab{
		l: m2r1*l + m2r2*m + m2r3*s,
		a: m2r4*l + m2r5*m + m2r6*s,
		b: m2r7*l + m2r8*m + m2r9*s,
	}
}

// --- palette geometry ---

var cube256Levels = [6]uint8{0, 95, 135, 175, 215, 255}
var cube88Levels = [4]uint8{0, 139, 205, 255}
var grey256Ramp = buildGreyRamp(24, 8, 10)
var grey88Ramp = [8]uint8{46, 92, 115, 139, 162, 185, 208, 231}

var ansi16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0}, {0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0}, {92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func buildGreyRamp(n, startVal, step int) []uint8 {
	out := make([]uint8, n)
	for i := 0; i < n; i++ {
		out[i] = uint8(startVal + i*step)
	}
	return out
}

// cube returns every (r, g, b) triple in levels^3, r outermost and b
// innermost, matching ansi256RGB/ansi88RGB's literal ordering.
func cube(levels []uint8) [][3]uint8 {
	var out [][3]uint8
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				out = append(out, [3]uint8{r, g, b})
			}
		}
	}
	return out
}

// palette is a cube followed by its grey ramp rendered as (v, v, v)
// triples: the 240- and 72-entry searchable layouts tables.go documents.
func palette(levels []uint8, ramp []uint8) [][3]uint8 {
	out := cube(levels)
	for _, v := range ramp {
		out = append(out, [3]uint8{v, v, v})
	}
	return out
}

type exactEntry struct {
	key uint32
	idx uint8
}

func rgbKey(r, g, b uint8) uint32 { return uint32(r)<<16 | uint32(g)<<8 | uint32(b) }

// buildExact folds the 16 named colors and a searchable palette into one
// reverse table sorted by key. A searchable index (>= 16) always wins a
// collision, including one against another searchable index inserted
// earlier (the case where a grey-ramp entry's level happens to equal a
// cube level, as the 88-color ramp's 139 does): it is processed later in
// palette order and simply overwrites. For such a grey key the Oklab search
// itself returns the earlier (lower) index, but grey inputs never reach the
// exact-match table at runtime. A named color only ever fills a key no
// searchable entry claims.
func buildExact(pal [][3]uint8) []exactEntry {
	seen := map[uint32]uint8{}
	for i, rgb := range ansi16 {
		key := rgbKey(rgb[0], rgb[1], rgb[2])
		if _, ok := seen[key]; !ok {
			seen[key] = uint8(i)
		}
	}
	for i, rgb := range pal {
		seen[rgbKey(rgb[0], rgb[1], rgb[2])] = uint8(i + 16)
	}

	entries := make([]exactEntry, 0, len(seen))
	for key, idx := range seen {
		entries = append(entries, exactEntry{key, idx})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries
}

func exactLookup(table []exactEntry, key uint32) (uint8, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].key >= key })
	if i < len(table) && table[i].key == key {
		return table[i].idx, true
	}
	return 0, false
}

// nearestSearch is the offline twin of search_scalar.go: scan every
// searchable entry's Oklab coordinates and keep the lowest-index winner on
// a squared-distance tie.
func nearestSearch(labs []oklab, target oklab) int {
	best := -1
	var bestD float32
	for i, c := range labs {
		dl, da, db := c.l-target.l, c.a-target.a, c.b-target.b
		if d := dl*dl + da*da + db*db; best == -1 || d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// greyToIndex is GREY_TO_PALETTE's offline derivation: the Oklab search's
// answer for (v, v, v), frozen as data so the runtime monochrome shortcut
// never has to run the search itself. The exact-match table is not
// consulted: at runtime the monochrome shortcut runs before the exact-match
// check, so a grey input never reaches it, and grey results are always
// searchable indices (>= 16).
func greyToIndex(labs []oklab, v uint8) uint8 {
	return uint8(nearestSearch(labs, fromSRGB8(v, v, v)) + 16)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: gentables <output-path>")
		os.Exit(1)
	}

	pal256 := palette(cube256Levels[:], grey256Ramp)
	pal88 := palette(cube88Levels[:], grey88Ramp[:])
	if len(pal256)%8 != 0 || len(pal88)%8 != 0 {
		fatal(errors.Errorf("searchable palette sizes %d/%d do not divide evenly into 8-wide rows", len(pal256), len(pal88)))
	}

	labs256 := make([]oklab, len(pal256))
	for i, rgb := range pal256 {
		labs256[i] = fromSRGB8(rgb[0], rgb[1], rgb[2])
	}
	labs88 := make([]oklab, len(pal88))
	for i, rgb := range pal88 {
		labs88[i] = fromSRGB8(rgb[0], rgb[1], rgb[2])
	}

	exact256 := buildExact(pal256)
	exact88 := buildExact(pal88)

	var grey256, grey88 [256]uint8
	for v := 0; v < 256; v++ {
		grey256[v] = greyToIndex(labs256, uint8(v))
		grey88[v] = greyToIndex(labs88, uint8(v))
	}

	var buf bytes.Buffer
	buf.WriteString("package ansipal\n\n")
	writeTypes(&buf)
	writeRGBTable(&buf, "ansi16RGB", ansi16[:])
	writeRGBTable(&buf, "ansi256RGB", pal256)
	writeRGBTable(&buf, "ansi88RGB", pal88)
	writeSRGBToLinear(&buf)
	writeGreyTable(&buf, "greyToAnsi256", grey256)
	writeGreyTable(&buf, "greyToAnsi88", grey88)
	writeLabRows(&buf, "lab256Rows", labs256)
	writeLabRows(&buf, "lab88Rows", labs88)
	writeExactTable(&buf, "exact256", exact256)
	writeExactTable(&buf, "exact88", exact88)

	if err := os.WriteFile(os.Args[1], buf.Bytes(), 0o644); err != nil {
		fatal(errors.Wrapf(err, "writing %s", os.Args[1]))
	}
}

func writeTypes(buf *bytes.Buffer) {
	buf.WriteString("type labRow struct {\n\tl, a, b [8]float32\n}\n\n")
	buf.WriteString("type exactEntry struct {\n\tkey uint32\n\tidx uint8\n}\n\n")
}

func writeRGBTable(buf *bytes.Buffer, name string, rgbs [][3]uint8) {
	fmt.Fprintf(buf, "var %s = [%d][3]uint8{\n", name, len(rgbs))
	for i, rgb := range rgbs {
		if i%8 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "{%d, %d, %d}, ", rgb[0], rgb[1], rgb[2])
		if i%8 == 7 {
			buf.WriteString("\n")
		}
	}
	if len(rgbs)%8 != 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n\n")
}

func writeSRGBToLinear(buf *bytes.Buffer) {
	buf.WriteString("var srgbToLinear = [256]float32{\n")
	for i := 0; i < 256; i++ {
		if i%8 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "%v, ", float64(linearLUT[i]))
		if i%8 == 7 {
			buf.WriteString("\n")
		}
	}
	buf.WriteString("}\n\n")
}

func writeGreyTable(buf *bytes.Buffer, name string, vals [256]uint8) {
	fmt.Fprintf(buf, "var %s = [256]uint8{\n", name)
	for i, v := range vals {
		if i%16 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "%d, ", v)
		if i%16 == 15 {
			buf.WriteString("\n")
		}
	}
	buf.WriteString("}\n\n")
}

func writeLabRows(buf *bytes.Buffer, name string, labs []oklab) {
	fmt.Fprintf(buf, "var %s = [%d]labRow{\n", name, len(labs)/8)
	for ri := 0; ri < len(labs); ri += 8 {
		row := labs[ri : ri+8]
		buf.WriteString("\t{\n")
		writeLane(buf, "l", row, func(c oklab) float32 { return c.l })
		writeLane(buf, "a", row, func(c oklab) float32 { return c.a })
		writeLane(buf, "b", row, func(c oklab) float32 { return c.b })
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")
}

func writeLane(buf *bytes.Buffer, field string, row []oklab, pick func(oklab) float32) {
	fmt.Fprintf(buf, "\t\t%s: [8]float32{", field)
	for i, c := range row {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%v", float64(pick(c)))
	}
	buf.WriteString("},\n")
}

func writeExactTable(buf *bytes.Buffer, name string, entries []exactEntry) {
	fmt.Fprintf(buf, "var %s = [%d]exactEntry{\n", name, len(entries))
	for i, e := range entries {
		if i%6 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "{0x%06X, %d}, ", e.key, e.idx)
		if i%6 == 5 {
			buf.WriteString("\n")
		}
	}
	if len(entries)%6 != 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "gentables: %+v\n", err)
	os.Exit(1)
}
