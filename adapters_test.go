package ansipal

import (
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/gdamore/tcell/v2"
)

func TestFromColorRoundTrip(t *testing.T) {
	want := color.NRGBA{R: 12, G: 200, B: 77, A: 255}
	r, g, b := FromColor(want)
	if r != 12 || g != 200 || b != 77 {
		t.Fatalf("FromColor(%v) = (%d,%d,%d), want (12,200,77)", want, r, g, b)
	}
}

func TestFromColorfulRoundTrip(t *testing.T) {
	c := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	wantR, wantG, wantB := c.RGB255()
	r, g, b := FromColorful(c)
	if r != wantR || g != wantG || b != wantB {
		t.Fatalf("FromColorful(%v) = (%d,%d,%d), want (%d,%d,%d)", c, r, g, b, wantR, wantG, wantB)
	}
}

func TestFromTcellColorRGB(t *testing.T) {
	tc := tcell.NewRGBColor(10, 20, 30)
	r, g, b, ok := FromTcellColor(tc)
	if !ok || r != 10 || g != 20 || b != 30 {
		t.Fatalf("FromTcellColor(%v) = (%d,%d,%d,%v), want (10,20,30,true)", tc, r, g, b, ok)
	}
}

func TestFromTcellColorDefault(t *testing.T) {
	_, _, _, ok := FromTcellColor(tcell.ColorDefault)
	if ok {
		t.Fatalf("FromTcellColor(ColorDefault) reported ok=true, want false")
	}
}
