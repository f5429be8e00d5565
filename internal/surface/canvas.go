package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
)

// Canvas draws onto a tdewolff/canvas vector canvas so a plane can be written
// out as PNG, SVG or PDF. One surface pixel is one canvas millimeter.
type Canvas struct {
	c          *canvas.Canvas
	ctx        *canvas.Context
	background color.Color
	path       *canvas.Path
	started    bool // path has a current point
}

func NewCanvas(width, height float64, background color.Color) *Canvas {
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	return &Canvas{
		c:          c,
		ctx:        ctx,
		background: background,
		path:       &canvas.Path{},
	}
}

// Canvas exposes the underlying canvas.
func (s *Canvas) Canvas() *canvas.Canvas { return s.c }

func (s *Canvas) Size() (float64, float64) { return s.c.Size() }

// ClearRect paints the rectangle with the background color. Clearing the
// whole surface also drops everything drawn before.
func (s *Canvas) ClearRect(x, y, width, height float64) {
	w, h := s.c.Size()
	if x <= 0 && y <= 0 && x+width >= w && y+height >= h {
		s.c.Reset()
	}
	if s.background == nil {
		return
	}
	s.ctx.SetFillColor(s.background)
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.DrawPath(x, y, canvas.Rectangle(width, height))
}

func (s *Canvas) BeginPath() {
	s.path = &canvas.Path{}
	s.started = false
}

func (s *Canvas) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
	s.started = true
}

func (s *Canvas) LineTo(x, y float64) {
	if !s.started {
		s.MoveTo(x, y)
		return
	}
	s.path.LineTo(x, y)
}

// Arc adds a circular arc; a line joins it to the current point if any.
func (s *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	sx, sy := x+radius*math.Cos(startAngle), y+radius*math.Sin(startAngle)
	s.LineTo(sx, sy)
	s.path.Arc(radius, radius, 0, startAngle*180/math.Pi, endAngle*180/math.Pi)
}

func (s *Canvas) ClosePath() { s.path.Close() }

func (s *Canvas) Fill(c color.Color) {
	if s.path.Empty() {
		return
	}
	s.ctx.SetFillColor(c)
	s.ctx.SetStrokeColor(canvas.Transparent)
	s.ctx.DrawPath(0, 0, s.path)
}

func (s *Canvas) Stroke(c color.Color, width float64) {
	if s.path.Empty() {
		return
	}
	s.ctx.SetFillColor(canvas.Transparent)
	s.ctx.SetStrokeColor(c)
	s.ctx.SetStrokeWidth(width)
	s.ctx.DrawPath(0, 0, s.path)
}

// WriteFile renders to filename; the extension picks the format. dpmm is the
// PNG resolution in dots per surface pixel, vector formats ignore it.
func (s *Canvas) WriteFile(filename string, dpmm float64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := s.Write(f, ext[1:], dpmm); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders the canvas as png, svg or pdf.
func (s *Canvas) Write(w io.Writer, format string, dpmm float64) error {
	width, height := s.c.Size()
	switch format {
	case "png":
		return png.Encode(w, s.Image(dpmm))
	case "svg":
		r := svg.New(w, width, height, nil)
		s.c.RenderTo(r)
		return r.Close()
	case "pdf":
		r := pdf.New(w, width, height, nil)
		s.c.RenderTo(r)
		return r.Close()
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// Image rasterizes the canvas at dpmm dots per surface pixel.
func (s *Canvas) Image(dpmm float64) *image.RGBA {
	return rasterizer.Draw(s.c, canvas.DPMM(dpmm), canvas.DefaultColorSpace)
}
