package plane

import (
	"fmt"
	"math"
)

// Entity is anything a Plane can plot. The set is closed: Point and Vector.
type Entity interface {
	entity()
}

// Point is a location in Cartesian units.
type Point struct {
	X, Y float64
}

func (Point) entity() {}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Vector is a directed segment from Origin to Tip.
type Vector struct {
	Origin Point
	Tip    Point
}

func (Vector) entity() {}

func (v Vector) String() string {
	return fmt.Sprintf("%v -> %v", v.Origin, v.Tip)
}

// render issues the drawing primitives for a single entity.
func render(s Surface, t Transformer, st Style, e Entity) {
	switch e := e.(type) {
	case Point:
		renderPoint(s, t, st, e)
	case Vector:
		renderVector(s, t, st, e)
	default:
		panic(fmt.Sprintf("plane: unknown entity %T", e))
	}
}

func renderPoint(s Surface, t Transformer, st Style, p Point) {
	cx, cy := t.ToCanvas(p.X, p.Y)
	s.BeginPath()
	s.Arc(cx, cy, st.PointRadius, 0, 2*math.Pi)
	s.Fill(st.PointColor)
}

func renderVector(s Surface, t Transformer, st Style, v Vector) {
	x1, y1 := t.ToCanvas(v.Origin.X, v.Origin.Y)
	x2, y2 := t.ToCanvas(v.Tip.X, v.Tip.Y)

	s.BeginPath()
	s.MoveTo(x1, y1)
	s.LineTo(x2, y2)
	s.Stroke(st.VectorColor, st.VectorWidth)

	head := Arrowhead(t, st, v)
	s.BeginPath()
	s.MoveTo(head[0][0], head[0][1])
	s.LineTo(head[1][0], head[1][1])
	s.LineTo(head[2][0], head[2][1])
	s.ClosePath()
	s.Fill(st.VectorColor)
}

// arrowEdge returns the far end of an arrowhead edge that leaves the tip
// backwards along angle.
func arrowEdge(tx, ty, angle, length float64) (float64, float64) {
	return tx - length*math.Cos(angle), ty - length*math.Sin(angle)
}

// Arrowhead returns the three pixel-space corners of the arrowhead drawn for v:
// the tip followed by the two edge ends.
func Arrowhead(t Transformer, st Style, v Vector) [3][2]float64 {
	x1, y1 := t.ToCanvas(v.Origin.X, v.Origin.Y)
	x2, y2 := t.ToCanvas(v.Tip.X, v.Tip.Y)
	// atan2(0, 0) is 0, so a zero-length vector gets an arrowhead pointing +X
	ang := math.Atan2(y2-y1, x2-x1)
	lx, ly := arrowEdge(x2, y2, ang-st.ArrowSpread, st.ArrowLength)
	rx, ry := arrowEdge(x2, y2, ang+st.ArrowSpread, st.ArrowLength)
	return [3][2]float64{{x2, y2}, {lx, ly}, {rx, ry}}
}
