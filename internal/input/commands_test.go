package input

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"

	"cartesian/internal/plane"
	"cartesian/internal/surface"
)

func newPlane() (*plane.Plane, *surface.Recorder) {
	r := surface.NewRecorder(600, 400)
	return plane.New(r, plane.DefaultStyle()), r
}

func TestHandleAddPoint(t *testing.T) {
	p, r := newPlane()
	pt, err := HandleAddPoint(p, "2", "3")
	test.Error(t, err)
	test.T(t, pt, plane.Point{X: 2, Y: 3})
	test.T(t, p.Points(), []plane.Point{{X: 2, Y: 3}})
	test.T(t, r.Frames(), 2)
}

func TestHandleAddVector(t *testing.T) {
	p, r := newPlane()
	v, err := HandleAddVector(p, "0,0", "1,0")
	test.Error(t, err)
	test.T(t, v, plane.Vector{Tip: plane.Point{X: 1}})
	test.T(t, p.Vectors(), []plane.Vector{v})
	test.T(t, r.Frames(), 2)
}

func TestHandleRejected(t *testing.T) {
	p, r := newPlane()
	_, err := HandleAddPoint(p, "1", "1")
	test.Error(t, err)
	frame := r.Frame()
	frames := r.Frames()

	var tests = []struct {
		name string
		run  func() error
	}{
		{"point x", func() error { _, err := HandleAddPoint(p, "abc", "3"); return err }},
		{"point y", func() error { _, err := HandleAddPoint(p, "2", ""); return err }},
		{"vector origin", func() error { _, err := HandleAddVector(p, "0", "1,0"); return err }},
		{"vector tip", func() error { _, err := HandleAddVector(p, "0,0", "1,inf"); return err }},
		{"paste", func() error { _, err := HandlePaste(p, "MULTIPOINT(1 1, 2 ?)"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			test.That(t, errors.Is(err, ErrInvalidCoordinate), err)
			test.T(t, p.Points(), []plane.Point{{X: 1, Y: 1}})
			test.T(t, len(p.Vectors()), 0)
			test.T(t, r.Frames(), frames)
			test.T(t, r.Frame(), frame)
		})
	}
}

func TestHandlePaste(t *testing.T) {
	p, r := newPlane()
	out, err := HandlePaste(p, "LINESTRING(0 0, 1 0, 1 1)")
	test.Error(t, err)
	test.T(t, len(out), 2)
	test.T(t, len(p.Vectors()), 2)
	test.T(t, r.Frames(), 2) // one redraw for the whole batch

	_, err = HandlePaste(p, "MULTIPOINT((1 1), (2 2))")
	test.Error(t, err)
	test.T(t, len(p.Points()), 2)
	test.T(t, p.Len(), 4)

	_, err = HandlePaste(p, "POLYGON((0 0, 1 0, 1 1, 0 0))")
	test.That(t, errors.Is(err, ErrUnsupportedGeometry))
	test.T(t, p.Len(), 4)
}

func TestHandleClear(t *testing.T) {
	p, r := newPlane()
	empty := r.Frame()
	_, err := HandlePaste(p, "MULTIPOINT(1 1, 2 2)")
	test.Error(t, err)

	HandleClear(p)
	test.T(t, p.Len(), 0)
	test.T(t, r.Frame(), empty)
}
