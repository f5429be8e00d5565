package surface

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/tdewolff/test"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func TestBrailleSize(t *testing.T) {
	b := NewBraille(10, 5)
	w, h := b.Size()
	test.Float(t, w, 20)
	test.Float(t, h, 20)
	test.T(t, b.Cols(), 10)
	test.T(t, b.Rows(), 5)
}

func TestBrailleDotBits(t *testing.T) {
	tests := []struct {
		x, y int
		r    rune
	}{
		{0, 0, '⠁'},
		{0, 1, '⠂'},
		{0, 2, '⠄'},
		{0, 3, '⡀'},
		{1, 0, '⠈'},
		{1, 1, '⠐'},
		{1, 2, '⠠'},
		{1, 3, '⢀'},
	}
	for _, tt := range tests {
		b := NewBraille(1, 1)
		b.setPixel(tt.x, tt.y, red)
		test.That(t, b.Dot(tt.x, tt.y))
		test.T(t, []rune(b.Runes()[0])[0], tt.r)
	}
}

func TestBrailleClip(t *testing.T) {
	b := NewBraille(2, 2)
	b.setPixel(-1, 0, red)
	b.setPixel(4, 0, red)
	b.setPixel(0, 8, red)
	test.T(t, b.Runes(), []string{"  ", "  "})
	test.That(t, !b.Dot(-1, 0))
	test.T(t, b.CellColor(5, 5), color.Color(nil))
}

func TestBrailleStroke(t *testing.T) {
	b := NewBraille(4, 2)
	b.BeginPath()
	b.MoveTo(0, 1)
	b.LineTo(7, 1)
	b.Stroke(red, 1)
	for x := 0; x < 8; x++ {
		test.That(t, b.Dot(x, 1), x)
		test.That(t, !b.Dot(x, 0), x)
	}
	test.T(t, b.CellColor(0, 0), color.Color(red))
	test.T(t, b.CellColor(0, 1), color.Color(nil))

	// a later stroke recolors the cells it touches
	b.BeginPath()
	b.MoveTo(0, 0)
	b.LineTo(0, 7)
	b.Stroke(blue, 1)
	test.T(t, b.CellColor(0, 0), color.Color(blue))
	test.T(t, b.CellColor(0, 1), color.Color(blue))
	test.T(t, b.CellColor(1, 0), color.Color(red))
}

func TestBrailleStrokeDiagonal(t *testing.T) {
	b := NewBraille(4, 1)
	b.BeginPath()
	b.MoveTo(0, 0)
	b.LineTo(3, 3)
	b.Stroke(red, 1)
	for i := 0; i < 4; i++ {
		test.That(t, b.Dot(i, i), i)
	}
}

func TestBrailleFillCircle(t *testing.T) {
	b := NewBraille(8, 4)
	b.BeginPath()
	b.Arc(8, 8, 3, 0, 2*math.Pi)
	b.Fill(red)
	test.That(t, b.Dot(8, 8), "center")
	test.That(t, b.Dot(7, 7))
	test.That(t, b.Dot(10, 8))
	test.That(t, !b.Dot(8, 13))
	test.That(t, !b.Dot(0, 0))
	test.T(t, b.CellColor(4, 2), color.Color(red))
}

func TestBrailleFillTriangle(t *testing.T) {
	b := NewBraille(8, 4)
	b.BeginPath()
	b.MoveTo(2, 2)
	b.LineTo(12, 2)
	b.LineTo(2, 12)
	b.ClosePath()
	b.Fill(blue)
	test.That(t, b.Dot(4, 4))
	test.That(t, b.Dot(2, 12), "outline corner")
	test.That(t, !b.Dot(11, 11))
	test.That(t, !b.Dot(14, 14))
}

func TestBrailleLineToAfterClose(t *testing.T) {
	b := NewBraille(8, 4)
	b.BeginPath()
	b.MoveTo(1, 1)
	b.LineTo(5, 1)
	b.ClosePath()
	b.LineTo(1, 9)
	test.T(t, len(b.path), 2)
	test.T(t, b.path[1], []dot{{1, 1}, {1, 9}})
}

func TestBrailleClearRect(t *testing.T) {
	b := NewBraille(4, 2)
	b.BeginPath()
	b.MoveTo(0, 0)
	b.LineTo(7, 7)
	b.Stroke(red, 1)

	b.ClearRect(0, 0, 2, 8)
	test.That(t, !b.Dot(0, 0))
	test.That(t, !b.Dot(1, 1))
	test.That(t, b.Dot(2, 2))
	test.T(t, b.CellColor(0, 0), color.Color(nil))

	w, h := b.Size()
	b.ClearRect(0, 0, w, h)
	test.T(t, b.Runes(), []string{"    ", "    "})
}

func TestBrailleLines(t *testing.T) {
	b := NewBraille(6, 2)
	b.BeginPath()
	b.MoveTo(0, 0)
	b.LineTo(11, 0)
	b.Stroke(red, 1)

	lines := b.Lines()
	test.T(t, len(lines), 2)
	test.T(t, lipgloss.Width(lines[0]), 6)
	test.That(t, strings.Contains(lines[0], "⠉"))
	test.String(t, lines[1], "      ")
	test.String(t, hexOf(red), "#ff0000")
	test.String(t, hexOf(nil), "")
}
