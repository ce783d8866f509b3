// Command splatdemo renders a sample splatter frame to a PNG file.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/draw"
	"github.com/gogpu/splatter/pipeline"
	"github.com/gogpu/splatter/preview"
	"github.com/gogpu/splatter/tess"
)

// logo is an SVG path drawn by the demo.
const logo = "M-40 0 C-40 -30 40 -30 40 0 S-40 30 -40 0 Z M-15 0 A15 15 0 1 0 15 0 A15 15 0 1 0 -15 0 Z"

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "splat.png", "output file")
		themeFile = flag.String("theme", "", "YAML theme file")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	splatter.SetLogger(logger)

	theme := draw.DefaultTheme()
	if *themeFile != "" {
		t, err := draw.LoadTheme(*themeFile)
		if err != nil {
			logger.Error("failed to load theme", "path", *themeFile, "error", err)
			os.Exit(1)
		}
		theme = t
	}

	d := draw.New()
	drawGradientPolygon(d)
	drawStar(d)
	drawLogo(d, logger)
	drawTexturedQuad(d)
	drawShapes(d)

	r := draw.NewRenderer(draw.WithTheme(theme))
	frame := r.Render(d)

	if *debug {
		vertices, err := pipeline.PackVertices(frame.Mesh)
		if err != nil {
			logger.Error("failed to pack vertices", "error", err)
			os.Exit(1)
		}
		logger.Debug("packed frame",
			"vertex_bytes", len(vertices),
			"index_bytes", len(pipeline.PackIndices(frame.Mesh)),
			"commands", len(frame.Commands))
	}

	img := preview.Rasterize(frame, *width, *height, preview.WithSampler(checker))
	if err := preview.SavePNG(img, *output); err != nil {
		logger.Error("failed to save", "path", *output, "error", err)
		os.Exit(1)
	}
	logger.Info("demo saved", "path", *output, "width", *width, "height", *height,
		"vertices", frame.Mesh.RawVertexCount(), "triangles", frame.Mesh.TriangleCount())
}

func drawGradientPolygon(d *draw.Draw) {
	const sides = 6
	pts := make([]splatter.ColoredPoint, sides)
	for i := range pts {
		a := float32(i) / sides * 2 * math32.Pi
		s, c := math32.Sincos(a)
		pts[i] = splatter.ColoredPoint{
			Point: splatter.Pt(c*120, s*120),
			Color: splatter.HSL(float32(i)*360/sides, 0.8, 0.5),
		}
	}
	d.Save()
	d.Translate(-220, 120)
	d.Path().Fill().PointsColoredClosed(pts...)
	d.Restore()
}

func drawStar(d *draw.Draw) {
	const points = 5
	pts := make([]splatter.Point, 2*points)
	for i := range pts {
		r := float32(100)
		if i%2 == 1 {
			r = 40
		}
		a := math32.Pi/2 + float32(i)*math32.Pi/points
		s, c := math32.Sincos(a)
		pts[i] = splatter.Pt(c*r, s*r)
	}
	d.Path().Stroke().
		Weight(8).
		Join(tess.JoinRound).
		Color(splatter.RGB(1, 0.6, 0)).
		XY(220, 120).
		RotateZ(0.2).
		PointsClosed(pts...)
}

func drawLogo(d *draw.Draw, logger *slog.Logger) {
	d.Save()
	d.Translate(0, -150)
	d.Scale(2, 2)
	if err := d.Path().Fill().Rule(tess.EvenOdd).Color(splatter.RGB(0.1, 0.3, 0.8)).SVG(logo); err != nil {
		logger.Warn("invalid SVG path", "error", err)
	}
	d.Restore()
}

func drawTexturedQuad(d *draw.Draw) {
	d.Path().Fill().XY(-220, -150).PointsTexturedClosed(nil,
		splatter.TexturedPoint{Point: splatter.Pt(-60, -60), TexCoords: splatter.Pt(0, 1)},
		splatter.TexturedPoint{Point: splatter.Pt(60, -60), TexCoords: splatter.Pt(1, 1)},
		splatter.TexturedPoint{Point: splatter.Pt(60, 60), TexCoords: splatter.Pt(1, 0)},
		splatter.TexturedPoint{Point: splatter.Pt(-60, 60), TexCoords: splatter.Pt(0, 0)},
	)
}

func drawShapes(d *draw.Draw) {
	d.Path().Fill().Ellipse(220, -150, 80, 40)
	d.Path().Stroke().Weight(3).Caps(tess.CapRound).Line(splatter.Pt(-380, -280), splatter.Pt(380, -280))
}

// checker samples a procedural 8×8 checkerboard in place of a GPU texture.
func checker(_ gpucontext.Texture, uv splatter.Point) splatter.Color {
	x, y := int(uv.X*8), int(uv.Y*8)
	if (x+y)%2 == 0 {
		return splatter.White
	}
	return splatter.RGB(0.2, 0.2, 0.2)
}
