package text

import (
	"math"

	"github.com/rastkit/rast"
)

// defaultShaper backs the package-level drawing helpers.
var defaultShaper = NewShaper()

// DrawOptions provides extra styling for DrawStyled.
type DrawOptions struct {
	// Underline draws a one pixel rule under the text, halfway into
	// the descent.
	Underline bool
}

// Draw renders text onto the canvas through a pattern. The position
// (x, y) is the baseline origin of the first run. Text is split into
// bidirectional runs, each run is shaped with HarfBuzz, and every glyph
// is blended into the canvas using its rasterized alpha mask as the
// pattern opacity. Glyphs outside the canvas are cropped per pixel.
func Draw(c rast.Canvas, p rast.Pattern, face *Face, s string, x, y float64) {
	DrawStyled(c, p, face, s, x, y, DrawOptions{})
}

// DrawStyled is Draw with options.
func DrawStyled(c rast.Canvas, p rast.Pattern, face *Face, s string, x, y float64, opts DrawOptions) {
	if s == "" || face == nil {
		return
	}

	penX := x
	for _, run := range SplitRuns(s) {
		glyphs := defaultShaper.Shape(run.Text, face, run.Direction)
		for _, g := range glyphs {
			drawGlyph(c, p, face, g, penX, y)
		}
		penX += advance(glyphs)
	}

	if opts.Underline {
		m := face.Metrics()
		underlineY := math.Round(y + m.Descent/2)
		for xi := math.Round(x); xi <= math.Round(penX); xi++ {
			p.Apply(c, rast.Pt(xi, underlineY), 1)
		}
	}

	rast.Logger().Debug("drew text",
		"len", len(s), "x", x, "y", y, "width", penX-x)
}

// drawGlyph blends a single shaped glyph into the canvas. The mask
// coverage of each pixel becomes the pattern opacity.
func drawGlyph(c rast.Canvas, p rast.Pattern, face *Face, g ShapedGlyph, penX, baseY float64) {
	dr, mask, maskp, ok := face.glyphMask(penX+g.X, baseY+g.Y, g.Rune)
	if !ok {
		return
	}

	for my := dr.Min.Y; my < dr.Max.Y; my++ {
		for mx := dr.Min.X; mx < dr.Max.X; mx++ {
			_, _, _, a := mask.At(maskp.X+mx-dr.Min.X, maskp.Y+my-dr.Min.Y).RGBA()
			if a == 0 {
				continue
			}
			p.Apply(c, rast.Pt(float64(mx), float64(my)), float64(a)/0xffff)
		}
	}
}

// Measure returns the dimensions of text as it would be drawn by Draw:
// the total shaped advance width and the face's line height.
func Measure(face *Face, s string) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	for _, run := range SplitRuns(s) {
		width += advance(defaultShaper.Shape(run.Text, face, run.Direction))
	}
	return width, face.Metrics().Height
}

// advance sums the pen advances of a shaped run.
func advance(glyphs []ShapedGlyph) float64 {
	total := 0.0
	for _, g := range glyphs {
		total += g.XAdvance
	}
	return total
}
