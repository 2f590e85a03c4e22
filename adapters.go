package ansipal

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/gdamore/tcell/v2"
)

// FromColor extracts an 8-bit sRGB triple from a stdlib image/color.Color,
// un-premultiplying and rounding the way image/color's own RGBA() contract
// expects callers to. This never involves a palette search; pass the
// result to NearestANSI256/NearestANSI88.
func FromColor(c color.Color) (r, g, b uint8) {
	cr, cg, cb, ca := c.RGBA()
	if ca != 0 && ca != 0xffff {
		cr = (cr*0xffff + ca/2) / ca
		cg = (cg*0xffff + ca/2) / ca
		cb = (cb*0xffff + ca/2) / ca
	}
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

// FromColorful extracts an 8-bit sRGB triple from a go-colorful Color,
// which stores components as float64 in [0, 1].
func FromColorful(c colorful.Color) (r, g, b uint8) {
	cr, cg, cb := c.RGB255()
	return cr, cg, cb
}

// FromTcellColor extracts an 8-bit sRGB triple from a tcell.Color via its
// Hex() value. ok is false when Hex() reports no RGB value for the color
// (a negative result, as for ColorDefault); callers should fall back to
// their own default in that case rather than feeding a zero triple into
// the search.
func FromTcellColor(c tcell.Color) (r, g, b uint8, ok bool) {
	hex := c.Hex()
	if hex < 0 {
		return 0, 0, 0, false
	}
	return uint8(hex >> 16), uint8(hex >> 8), uint8(hex), true
}
