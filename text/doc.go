// Package text renders shaped text onto rast canvases.
//
// The pipeline has three stages:
//
//   - Face: a parsed font at a specific size (heavyweight, share it)
//   - Shaper: HarfBuzz shaping via go-text/typesetting, producing
//     positioned glyphs with kerning and ligatures applied
//   - Draw: per-glyph alpha masks rasterized with golang.org/x/image,
//     blended into the canvas through a rast.Pattern
//
// Bidirectional text is split into directional runs with
// golang.org/x/text/unicode/bidi before shaping; see SplitRuns.
//
// # Example usage
//
//	face, err := text.NewFace(goregular.TTF, 24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pm := rast.NewPixmap(400, 100)
//	pm.Clear(rast.White)
//	text.Draw(pm, rast.SolidPattern{Color: rast.Black}, face, "Hello", 10, 60)
package text
