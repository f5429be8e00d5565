package surface_test

import (
	"testing"

	"github.com/tdewolff/test"

	"cartesian/internal/plane"
	"cartesian/internal/surface"
)

func TestBraillePlane(t *testing.T) {
	b := surface.NewBraille(72, 24)
	p := plane.New(b, plane.TerminalStyle())
	st := p.Style()

	// axes are drawn over the grid
	test.T(t, b.CellColor(36, 0), st.AxisColor)
	test.T(t, b.CellColor(0, 12), st.AxisColor)
	test.That(t, b.Dot(72, 0))
	test.That(t, b.Dot(0, 48))

	p.AddPoint(plane.Point{X: 1, Y: 1})
	test.That(t, b.Dot(80, 40))
	test.T(t, b.CellColor(40, 10), st.PointColor)

	p.AddVector(plane.Vector{Origin: plane.Point{X: -2, Y: -1}, Tip: plane.Point{X: -2, Y: -4}})
	test.That(t, b.Dot(56, 64), "vector shaft")
	test.T(t, b.CellColor(28, 18), st.VectorColor)

	p.Clear()
	test.That(t, b.CellColor(40, 10) != st.PointColor, "marker cleared")
	test.T(t, b.CellColor(28, 18), st.GridMajorColor)
	test.T(t, b.CellColor(36, 0), st.AxisColor)
}
