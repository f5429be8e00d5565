package plane

import "image/color"

// Surface is the drawing target a Plane renders onto. Coordinates are pixels
// with the origin at the top-left corner and Y growing downward. Angles are in
// radians.
type Surface interface {
	Size() (width, height float64)
	ClearRect(x, y, width, height float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	ClosePath()
	Fill(c color.Color)
	Stroke(c color.Color, width float64)
}
