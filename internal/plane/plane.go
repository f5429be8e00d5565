// Package plane renders a Cartesian plane with a grid, axes, points and
// vectors onto a Surface.
package plane

import (
	"fmt"
	"image/color"
	"math"
)

// Plane owns the plotted entities and keeps its surface in sync with them:
// every mutation is followed by a full redraw before it returns.
type Plane struct {
	surface Surface
	tr      Transformer
	style   Style

	points  []Point
	vectors []Vector
}

// New returns a Plane drawing onto s and performs the initial redraw. The
// surface size is fixed for the lifetime of the Plane.
func New(s Surface, style Style) *Plane {
	w, h := s.Size()
	p := &Plane{
		surface: s,
		tr:      NewTransformer(w, h, style.Scale),
		style:   style,
	}
	p.Redraw()
	return p
}

func (p *Plane) Transformer() Transformer { return p.tr }
func (p *Plane) Style() Style             { return p.style }

// AddPoint appends pt and redraws.
func (p *Plane) AddPoint(pt Point) {
	p.points = append(p.points, pt)
	p.Redraw()
}

// AddVector appends v and redraws.
func (p *Plane) AddVector(v Vector) {
	p.vectors = append(p.vectors, v)
	p.Redraw()
}

// Add appends a batch of entities, keeping their relative order within each
// kind, and redraws once.
func (p *Plane) Add(entities ...Entity) {
	if len(entities) == 0 {
		return
	}
	for _, e := range entities {
		switch e := e.(type) {
		case Point:
			p.points = append(p.points, e)
		case Vector:
			p.vectors = append(p.vectors, e)
		default:
			panic(fmt.Sprintf("plane: unknown entity %T", e))
		}
	}
	p.Redraw()
}

// Clear removes all entities. The grid and axes stay visible.
func (p *Plane) Clear() {
	p.points = nil
	p.vectors = nil
	p.Redraw()
}

func (p *Plane) Points() []Point {
	return append([]Point(nil), p.points...)
}

func (p *Plane) Vectors() []Vector {
	return append([]Vector(nil), p.vectors...)
}

// Entities returns the entities in draw order: all points, then all vectors.
func (p *Plane) Entities() []Entity {
	out := make([]Entity, 0, p.Len())
	for _, pt := range p.points {
		out = append(out, pt)
	}
	for _, v := range p.vectors {
		out = append(out, v)
	}
	return out
}

func (p *Plane) Len() int {
	return len(p.points) + len(p.vectors)
}

// Redraw repaints the owned surface from scratch.
func (p *Plane) Redraw() {
	p.DrawTo(p.surface)
}

// DrawTo paints the plane onto s, which is expected to have the same size as
// the plane's own surface.
func (p *Plane) DrawTo(s Surface) {
	s.ClearRect(0, 0, p.tr.Width, p.tr.Height)
	p.drawGrid(s)
	p.drawAxes(s)
	for _, pt := range p.points {
		render(s, p.tr, p.style, pt)
	}
	for _, v := range p.vectors {
		render(s, p.tr, p.style, v)
	}
}

func (p *Plane) drawGrid(s Surface) {
	step := p.tr.Scale / 2
	for x := 0.0; x < p.tr.Width; x += step {
		s.BeginPath()
		s.MoveTo(x, 0)
		s.LineTo(x, p.tr.Height)
		s.Stroke(p.gridColor(x, p.tr.CenterX), p.style.GridWidth)
	}
	for y := 0.0; y < p.tr.Height; y += step {
		s.BeginPath()
		s.MoveTo(0, y)
		s.LineTo(p.tr.Width, y)
		s.Stroke(p.gridColor(y, p.tr.CenterY), p.style.GridWidth)
	}
}

// gridColor picks the tint of the gridline at pixel coordinate v: the line
// through the center, lines on whole units, then the half-unit lines.
func (p *Plane) gridColor(v, center float64) color.Color {
	switch {
	case v == center:
		return p.style.GridAxisColor
	case math.Mod(v, p.tr.Scale) == 0:
		return p.style.GridMajorColor
	default:
		return p.style.GridMinorColor
	}
}

func (p *Plane) drawAxes(s Surface) {
	s.BeginPath()
	s.MoveTo(0, p.tr.CenterY)
	s.LineTo(p.tr.Width, p.tr.CenterY)
	s.Stroke(p.style.AxisColor, p.style.AxisWidth)

	s.BeginPath()
	s.MoveTo(p.tr.CenterX, 0)
	s.LineTo(p.tr.CenterX, p.tr.Height)
	s.Stroke(p.style.AxisColor, p.style.AxisWidth)
}
