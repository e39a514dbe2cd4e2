package text

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics describes the vertical metrics of a face, in pixels.
// All distances are measured from the baseline and are positive.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64

	// Height is the recommended distance between the baselines of two
	// consecutive lines.
	Height float64
}

// Face is a parsed font at a specific size. It carries two views of the
// same font data: a go-text font for shaping and a golang.org/x/image
// face for glyph rasterization.
//
// Face is safe for concurrent use. Parsing is the expensive part, so
// create a Face once and share it.
type Face struct {
	size float64

	// shapeFont is the go-text font used for HarfBuzz shaping.
	// gotext.Font is read-only and safe for concurrent use; the
	// lightweight gotext.Face wrapper is created per shaping call.
	shapeFont *gotext.Font

	// otFont is the x/image view of the same data, used for glyph
	// index lookups.
	otFont *opentype.Font

	// mu guards raster. xfont.Face has internal mutable buffers and is
	// not safe for concurrent use.
	mu     sync.Mutex
	raster xfont.Face
}

// NewFace parses TTF or OTF font data at the given size in pixels.
func NewFace(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("text: invalid face size %v", size)
	}

	shapeFace, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	otFont, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	raster, err := opentype.NewFace(otFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{
		size:      size,
		shapeFont: shapeFace.Font,
		otFont:    otFont,
		raster:    raster,
	}, nil
}

// Size returns the size of the face in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	f.mu.Lock()
	m := f.raster.Metrics()
	f.mu.Unlock()

	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	idx, err := f.otFont.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

// glyphMask rasterizes the glyph for r with the dot at the given pixel
// position. It returns the destination rectangle, the alpha mask and the
// mask offset, in the layout of xfont.Face.Glyph.
func (f *Face) glyphMask(dotX, dotY float64, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, ok bool) {
	dot := fixed.Point26_6{X: floatToFixed(dotX), Y: floatToFixed(dotY)}

	f.mu.Lock()
	dr, mask, maskp, _, ok = f.raster.Glyph(dot, r)
	f.mu.Unlock()
	return dr, mask, maskp, ok
}
