// Package surface provides the drawing surfaces a plane.Plane renders onto: a
// recorder for inspection, a braille raster for terminals and a vector canvas
// for image export.
package surface

import (
	"fmt"
	"image/color"
	"strings"
)

// Op is one recorded drawing primitive.
type Op struct {
	Name  string
	Args  []float64
	Color color.Color
	Width float64
}

func (op Op) String() string {
	var b strings.Builder
	b.WriteString(op.Name)
	b.WriteByte('(')
	for i, a := range op.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", a)
	}
	b.WriteByte(')')
	if op.Color != nil {
		r, g, bl, _ := op.Color.RGBA()
		fmt.Fprintf(&b, " #%02x%02x%02x", r>>8, g>>8, bl>>8)
	}
	if op.Name == "Stroke" {
		fmt.Fprintf(&b, " w=%g", op.Width)
	}
	return b.String()
}

// Recorder keeps every primitive it receives and draws nothing.
type Recorder struct {
	w, h float64
	ops  []Op
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{w: width, h: height}
}

func (r *Recorder) Size() (float64, float64) { return r.w, r.h }

func (r *Recorder) ClearRect(x, y, width, height float64) {
	r.add(Op{Name: "ClearRect", Args: []float64{x, y, width, height}})
}

func (r *Recorder) BeginPath() { r.add(Op{Name: "BeginPath"}) }

func (r *Recorder) MoveTo(x, y float64) {
	r.add(Op{Name: "MoveTo", Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.add(Op{Name: "LineTo", Args: []float64{x, y}})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.add(Op{Name: "Arc", Args: []float64{x, y, radius, startAngle, endAngle}})
}

func (r *Recorder) ClosePath() { r.add(Op{Name: "ClosePath"}) }

func (r *Recorder) Fill(c color.Color) {
	r.add(Op{Name: "Fill", Color: c})
}

func (r *Recorder) Stroke(c color.Color, width float64) {
	r.add(Op{Name: "Stroke", Color: c, Width: width})
}

func (r *Recorder) add(op Op) {
	r.ops = append(r.ops, op)
}

// Ops returns everything recorded since creation or the last Reset.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Frame returns the ops issued since the last ClearRect covering the whole
// surface, that clear included. This is what is currently visible.
func (r *Recorder) Frame() []Op {
	for i := len(r.ops) - 1; i >= 0; i-- {
		if r.fullClear(r.ops[i]) {
			return append([]Op(nil), r.ops[i:]...)
		}
	}
	return r.Ops()
}

// Frames counts the full-surface clears, i.e. the number of redraws.
func (r *Recorder) Frames() int {
	n := 0
	for _, op := range r.ops {
		if r.fullClear(op) {
			n++
		}
	}
	return n
}

func (r *Recorder) fullClear(op Op) bool {
	return op.Name == "ClearRect" && op.Args[0] <= 0 && op.Args[1] <= 0 && op.Args[2] >= r.w && op.Args[3] >= r.h
}

func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
