package plane

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style holds the construction-time constants of a Plane: the scale and the
// marker, arrowhead and grid sizes together with the palette.
type Style struct {
	Scale float64

	PointRadius float64
	PointColor  color.Color

	VectorColor color.Color
	VectorWidth float64
	ArrowLength float64
	ArrowSpread float64 // angle between the shaft and each arrowhead edge

	GridWidth      float64
	GridAxisColor  color.Color
	GridMajorColor color.Color
	GridMinorColor color.Color

	AxisColor color.Color
	AxisWidth float64

	Background color.Color
}

// Palette
var (
	pointCol      = hex("#FF6B6B")
	vectorCol     = hex("#8effc1")
	gridAxisCol   = hex("#546de5")
	gridMajorCol  = hex("#404b69")
	gridMinorCol  = hex("#353a50")
	axisCol       = hex("#00f2fe")
	backgroundCol = hex("#1a1c2c")
)

func hex(s string) color.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("plane: bad palette color " + s)
	}
	return c
}

// DefaultStyle is sized for a pixel surface: one Cartesian unit is 30 pixels.
func DefaultStyle() Style {
	return Style{
		Scale:          30,
		PointRadius:    5,
		PointColor:     pointCol,
		VectorColor:    vectorCol,
		VectorWidth:    2.5,
		ArrowLength:    12,
		ArrowSpread:    math.Pi / 6,
		GridWidth:      0.5,
		GridAxisColor:  gridAxisCol,
		GridMajorColor: gridMajorCol,
		GridMinorColor: gridMinorCol,
		AxisColor:      axisCol,
		AxisWidth:      1.5,
		Background:     backgroundCol,
	}
}

// TerminalStyle is sized for braille dots, where a terminal cell is 2x4 dots.
func TerminalStyle() Style {
	s := DefaultStyle()
	s.Scale = 8
	s.PointRadius = 1.5
	s.VectorWidth = 1
	s.ArrowLength = 3
	s.AxisWidth = 1
	return s
}

// WithScale returns a copy of s using another scale. Marker and arrowhead
// sizes are kept.
func (s Style) WithScale(scale float64) Style {
	s.Scale = scale
	return s
}
