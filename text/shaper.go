package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Direction is the progression direction of a run of text.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// ShapedGlyph is a single positioned glyph produced by shaping.
// Positions are in pixels, relative to the pen origin of the run,
// with y growing downwards to match canvas coordinates.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID uint16

	// Cluster is the rune index in the shaped text this glyph maps
	// back to. Several glyphs may share a cluster, and a ligature
	// glyph covers several runes.
	Cluster int

	// Rune is the first rune of the cluster.
	Rune rune

	// X, Y position the glyph origin relative to the run origin.
	X, Y float64

	// XAdvance is how far the pen moves after this glyph.
	XAdvance float64
}

// Shaper converts text into positioned glyphs using HarfBuzz shaping via
// go-text/typesetting. Shaping applies kerning, ligatures and complex
// script rules; for right-to-left runs the output glyphs come in visual
// order.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances have
// internal mutable buffers, so they are pooled rather than shared.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a Shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape shapes a single-direction run of text with the given face.
// Mixed-direction text must be split with SplitRuns first and each run
// shaped separately.
func (s *Shaper) Shape(text string, face *Face, dir Direction) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	runes := []rune(text)

	// gotext.Face is not safe for concurrent use; wrapping the shared
	// read-only Font is cheap, so each call gets its own.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      gotext.NewFace(face.shapeFont),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	return convertGlyphs(output.Glyphs, runes)
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script text should be split into runs
// before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text output glyphs to ShapedGlyphs with pen
// positions accumulated in pixels.
func convertGlyphs(glyphs []shaping.Glyph, runes []rune) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))
	x := 0.0

	for i, g := range glyphs {
		cluster := g.TextIndex()
		var r rune
		if cluster >= 0 && cluster < len(runes) {
			r = runes[cluster]
		}

		// YOffset is an upward adjustment in font space; the canvas
		// y-axis grows downwards.
		result[i] = ShapedGlyph{
			GID:      uint16(g.GlyphID),
			Cluster:  cluster,
			Rune:     r,
			X:        x + fixedToFloat(g.XOffset),
			Y:        -fixedToFloat(g.YOffset),
			XAdvance: fixedToFloat(g.Advance),
		}
		x += fixedToFloat(g.Advance)
	}

	return result
}

// floatToFixed converts a pixel value to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to pixels.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
