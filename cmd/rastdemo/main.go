// Command rastdemo demonstrates the rast drawing toolkit.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/rastkit/rast"
	"github.com/rastkit/rast/text"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		rast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pm := rast.NewPixmap(*width, *height)
	pm.Clear(rast.White)

	drawSegmentFan(pm)
	drawClippedLines(pm)
	drawRays(pm)
	drawLabel(pm)

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawSegmentFan draws a fan of length-delimited rays with a thick brush.
func drawSegmentFan(pm *rast.Pixmap) {
	brush := rast.SquareBrush{Color: rast.RGB(0.8, 0.2, 0.2), Width: 3}
	center := rast.Pt(180, 180)

	for i := 0; i < 16; i++ {
		angle := float64(i) * math.Pi / 8
		rast.DrawRaySegment(pm, brush, center, angle, 120)
	}
}

// drawClippedLines draws infinite lines through a common point. Each line
// is cropped against the canvas before any pixel is touched.
func drawClippedLines(pm *rast.Pixmap) {
	brush := rast.Solid(rast.RGB(0.2, 0.4, 0.8))
	pivot := rast.Pt(550, 160)

	for i := 1; i < 8; i++ {
		rast.DrawLine(pm, brush, pivot, float64(i)*math.Pi/8)
	}
	rast.DrawLineHorizontal(pm, brush, pivot.Y)
	rast.DrawLineVertical(pm, brush, pivot.X)
}

// drawRays draws half-lines from an origin deliberately placed so some of
// them leave the canvas immediately.
func drawRays(pm *rast.Pixmap) {
	fade := rast.CustomBrush{
		Func: func(c rast.Canvas, pt rast.Point) {
			t := rast.Clamp(pt.Y/float64(c.Bottom()), 0, 1)
			c.SetPixel(pt.Position(), rast.RGB(0.1, 0.6, 0.3).Lerp(rast.RGB(0.6, 0.3, 0.7), t))
		},
		W: 1, H: 1,
		Name: "fade",
	}

	origin := rast.Pt(400, 450)
	for i := 0; i < 24; i++ {
		rast.DrawRay(pm, fade, origin, float64(i)*math.Pi/12)
	}
}

// drawLabel renders a shaped, underlined caption.
func drawLabel(pm *rast.Pixmap) {
	face, err := text.NewFace(goregular.TTF, 28)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	caption := "rast demo"
	w, _ := text.Measure(face, caption)
	x := (float64(pm.Width()) - w) / 2

	text.DrawStyled(pm, rast.SolidPattern{Color: rast.Black}, face, caption,
		x, float64(pm.Height())-40, text.DrawOptions{Underline: true})
}
