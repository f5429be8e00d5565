package surface

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Braille rasterizes onto a grid of terminal cells, each holding 2x4 braille
// dots. One surface pixel is one dot. Every cell keeps the color of the last
// dot written into it.
type Braille struct {
	w, h int // in cells
	m    [][]uint8
	col  [][]color.Color

	path   [][]dot
	closed []bool
}

type dot struct {
	x, y float64
}

func NewBraille(cols, rows int) *Braille {
	m := make([][]uint8, rows)
	col := make([][]color.Color, rows)
	for i := range m {
		m[i] = make([]uint8, cols)
		col[i] = make([]color.Color, cols)
	}
	return &Braille{w: cols, h: rows, m: m, col: col}
}

func (b *Braille) Cols() int { return b.w }
func (b *Braille) Rows() int { return b.h }

// Size is measured in dots.
func (b *Braille) Size() (float64, float64) {
	return float64(b.w * 2), float64(b.h * 4)
}

func (b *Braille) ClearRect(x, y, width, height float64) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+width)), int(math.Ceil(y+height))
	for my := max(0, y0); my < min(y1, b.h*4); my++ {
		for mx := max(0, x0); mx < min(x1, b.w*2); mx++ {
			b.clearPixel(mx, my)
		}
	}
}

func (b *Braille) BeginPath() {
	b.path = b.path[:0]
	b.closed = b.closed[:0]
}

func (b *Braille) MoveTo(x, y float64) {
	b.path = append(b.path, []dot{{x, y}})
	b.closed = append(b.closed, false)
}

func (b *Braille) LineTo(x, y float64) {
	n := len(b.path)
	if n == 0 {
		b.MoveTo(x, y)
		return
	}
	if b.closed[n-1] {
		start := b.path[n-1][0]
		b.MoveTo(start.x, start.y)
		n++
	}
	b.path[n-1] = append(b.path[n-1], dot{x, y})
}

// Arc flattens the arc into line segments of roughly one dot.
func (b *Braille) Arc(x, y, radius, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	segs := int(math.Ceil(math.Abs(sweep) * math.Max(radius, 1.5)))
	if segs < 8 {
		segs = 8
	}
	for i := 0; i <= segs; i++ {
		a := startAngle + sweep*float64(i)/float64(segs)
		px, py := x+radius*math.Cos(a), y+radius*math.Sin(a)
		if i == 0 && len(b.path) == 0 {
			b.MoveTo(px, py)
			continue
		}
		b.LineTo(px, py)
	}
}

func (b *Braille) ClosePath() {
	if n := len(b.path); n > 0 {
		b.closed[n-1] = true
	}
}

// Stroke draws the current path one dot wide whatever the width.
func (b *Braille) Stroke(c color.Color, width float64) {
	for i, sub := range b.path {
		b.outline(sub, b.closed[i], c)
	}
}

// Fill scan-converts every subpath with the even-odd rule and outlines it so
// shapes thinner than a dot still show up.
func (b *Braille) Fill(c color.Color) {
	for _, sub := range b.path {
		if len(sub) >= 3 {
			b.scanFill(sub, c)
		}
		b.outline(sub, true, c)
	}
}

func (b *Braille) outline(sub []dot, closed bool, c color.Color) {
	if len(sub) == 1 {
		if closed {
			b.setPixel(snap(sub[0].x), snap(sub[0].y), c)
		}
		return
	}
	for i := 0; i+1 < len(sub); i++ {
		b.drawLine(snap(sub[i].x), snap(sub[i].y), snap(sub[i+1].x), snap(sub[i+1].y), c)
	}
	if closed {
		last, first := sub[len(sub)-1], sub[0]
		b.drawLine(snap(last.x), snap(last.y), snap(first.x), snap(first.y), c)
	}
}

// scanFill fills the dots whose centers lie inside the polygon.
func (b *Braille) scanFill(poly []dot, c color.Color) {
	hMic := b.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		yc := float64(yMic) + 0.5
		var xs []float64
		for i := range poly {
			p0 := poly[i]
			p1 := poly[(i+1)%len(poly)]
			if p0.y == p1.y { // horizontal edge: skip
				continue
			}
			if (yc >= p0.y && yc < p1.y) || (yc >= p1.y && yc < p0.y) {
				t := (yc - p0.y) / (p1.y - p0.y)
				xs = append(xs, p0.x+t*(p1.x-p0.x))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xstart := int(math.Ceil(xs[i] - 0.5))
			xend := int(math.Floor(xs[i+1] - 0.5))
			for xMic := max(0, xstart); xMic <= xend; xMic++ {
				b.setPixel(xMic, yMic, c)
			}
		}
	}
}

func snap(v float64) int {
	return int(math.Floor(v))
}

func bit(rx, ry int) uint8 {
	if rx == 0 {
		switch ry {
		case 0:
			return 0x01
		case 1:
			return 0x02
		case 2:
			return 0x04
		default:
			return 0x40
		}
	}
	switch ry {
	case 0:
		return 0x08
	case 1:
		return 0x10
	case 2:
		return 0x20
	default:
		return 0x80
	}
}

// setPixel sets a dot (2x4 per cell) and colors its cell.
func (b *Braille) setPixel(mx, my int, c color.Color) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= bit(mx%2, my%4)
	b.col[cy][cx] = c
}

func (b *Braille) clearPixel(mx, my int) {
	cx, cy := mx/2, my/4
	b.m[cy][cx] &^= bit(mx%2, my%4)
	if b.m[cy][cx] == 0 {
		b.col[cy][cx] = nil
	}
}

// Dot reports whether the dot at (mx, my) is set.
func (b *Braille) Dot(mx, my int) bool {
	if mx < 0 || my < 0 || mx >= b.w*2 || my >= b.h*4 {
		return false
	}
	return b.m[my/4][mx/2]&bit(mx%2, my%4) != 0
}

// CellColor is the color of the last dot written into cell (cx, cy), or nil.
func (b *Braille) CellColor(cx, cy int) color.Color {
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h {
		return nil
	}
	return b.col[cy][cx]
}

// drawLine draws a line on the dot grid using Bresenham.
func (b *Braille) drawLine(x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) cellRune(cx, cy int) rune {
	if mask := b.m[cy][cx]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

// Runes returns the rows without color.
func (b *Braille) Runes() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.cellRune(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Lines returns the rows with each run of equally colored cells wrapped in a
// lipgloss foreground style.
func (b *Braille) Lines() []string {
	styles := map[string]lipgloss.Style{}
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		runHex := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runHex == "" {
				sb.WriteString(string(run))
			} else {
				st, ok := styles[runHex]
				if !ok {
					st = lipgloss.NewStyle().Foreground(lipgloss.Color(runHex))
					styles[runHex] = st
				}
				sb.WriteString(st.Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			h := hexOf(b.col[y][x])
			if h != runHex {
				flush()
				runHex = h
			}
			run = append(run, b.cellRune(x, y))
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func hexOf(c color.Color) string {
	if c == nil {
		return ""
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Hex()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
