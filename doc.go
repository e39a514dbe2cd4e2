// Package rast provides a software rasterization toolkit built around an
// exact 2D line- and segment-clipping core.
//
// # Overview
//
// The core of the package is a set of pure intersection and clipping
// functions over immutable value types: segment-segment and line-segment
// intersection, extension of a segment's supporting line to a rectangle
// boundary, and rectangle clipping by both the parametric (Liang-Barsky)
// and edge-enumeration methods. On top of the core sit a pixel canvas
// abstraction, brushes, patterns, and line drawing primitives that crop
// figures against the canvas before walking pixels.
//
// # Quick Start
//
//	import "github.com/rastkit/rast"
//
//	pm := rast.NewPixmap(256, 256)
//	pm.Clear(rast.White)
//
//	brush := rast.Solid(rast.Black)
//	rast.DrawSegment(pm, brush, rast.Seg(rast.Pt(-40, 10), rast.Pt(300, 220)))
//
//	pm.SavePNG("out.png")
//
// # Intersection Results
//
// Every intersection routine returns a tri-state [Intersection]: a single
// point, colinear overlap, or none. Colinear overlap is deliberately a
// distinct variant rather than a point or an absence, and callers are
// expected to handle all three kinds.
//
// # Numeric Conventions
//
// Rectangle containment is closed on all four edges, uniformly across the
// package. All comparisons are exact: no epsilon tolerance is applied
// anywhere, so degenerate classifications (colinearity, corner tangency)
// trigger only on exact floating-point coincidence. Callers working with
// accumulated floating error must snap their inputs themselves.
//
// # Concurrency
//
// The geometry core is pure and allocation-free; every function is safe to
// call concurrently. Canvases are not synchronized: concurrent drawing to
// the same canvas requires external coordination.
package rast
