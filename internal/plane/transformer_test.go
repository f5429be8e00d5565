package plane

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestTransformerCenter(t *testing.T) {
	tr := NewTransformer(600, 400, 30)
	test.Float(t, tr.CenterX, 300)
	test.Float(t, tr.CenterY, 200)

	px, py := tr.ToCanvas(0, 0)
	test.Float(t, px, 300)
	test.Float(t, py, 200)
}

func TestTransformerToCanvas(t *testing.T) {
	tr := NewTransformer(600, 400, 30)
	tests := []struct {
		x, y   float64
		px, py float64
	}{
		{0, 0, 300, 200},
		{2, 3, 360, 110},
		{1, 0, 330, 200},
		{0, 1, 300, 170},
		{0, -1, 300, 230},
		{-10, -20/3.0, 0, 400},
		{0.5, -0.5, 315, 215},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v,%v", tt.x, tt.y), func(t *testing.T) {
			px, py := tr.ToCanvas(tt.x, tt.y)
			test.Float(t, px, tt.px)
			test.Float(t, py, tt.py)
		})
	}
}

func TestTransformerYInversion(t *testing.T) {
	for _, scale := range []float64{1, 8, 30, 12.5} {
		tr := NewTransformer(640, 480, scale)
		_, up := tr.ToCanvas(0, 1)
		_, down := tr.ToCanvas(0, -1)
		test.Float(t, up, tr.CenterY-scale)
		test.Float(t, down, tr.CenterY+scale)
	}
}

func TestTransformerInverse(t *testing.T) {
	tr := NewTransformer(600, 400, 30)
	values := []float64{0, 1, -1, 2.5, -7.25, 1e-9, 123456.789, -0.001, math.Pi}
	for _, x := range values {
		for _, y := range values {
			px, py := tr.ToCanvas(x, y)
			bx, by := tr.ToCartesian(px, py)
			test.FloatDiff(t, bx, x, 1e-6)
			test.FloatDiff(t, by, y, 1e-6)

			cx, cy := tr.ToCartesian(x, y)
			qx, qy := tr.ToCanvas(cx, cy)
			test.FloatDiff(t, qx, x, 1e-6)
			test.FloatDiff(t, qy, y, 1e-6)
		}
	}
}

func TestTransformerToCartesian(t *testing.T) {
	tr := NewTransformer(600, 400, 30)
	x, y := tr.ToCartesian(360, 110)
	test.Float(t, x, 2)
	test.Float(t, y, 3)

	x, y = tr.ToCartesian(0, 0)
	test.Float(t, x, -10)
	test.Float(t, y, 200/30.0)
}

func TestTransformerBadScale(t *testing.T) {
	for _, scale := range []float64{0, -1, math.NaN()} {
		func() {
			defer func() {
				test.That(t, recover() != nil, "scale", scale)
			}()
			NewTransformer(10, 10, scale)
		}()
	}
}
