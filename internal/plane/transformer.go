package plane

// Transformer maps between Cartesian units (origin at the center, Y up) and
// surface pixels (origin at the top-left, Y down).
type Transformer struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
	Scale   float64 // pixels per Cartesian unit
}

func NewTransformer(width, height, scale float64) Transformer {
	if !(scale > 0) {
		panic("plane: scale must be positive")
	}
	return Transformer{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
		Scale:   scale,
	}
}

// ToCanvas converts Cartesian coordinates to surface pixels.
func (t Transformer) ToCanvas(x, y float64) (float64, float64) {
	return t.CenterX + x*t.Scale, t.CenterY - y*t.Scale
}

// ToCartesian is the inverse of ToCanvas.
func (t Transformer) ToCartesian(px, py float64) (float64, float64) {
	return (px - t.CenterX) / t.Scale, (t.CenterY - py) / t.Scale
}
