package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cartesian/internal/plane"
)

var errNoColumns = errors.New("csv: need x,y or x0,y0,x1,y1 columns")

// ParseCSV reads entities from CSV with a header row. Column detection is
// case-insensitive: x and y give points; x0, y0, x1 and y1 give vectors from
// (x0, y0) to (x1, y1). A row may carry both. Blank cells are skipped, any
// other bad cell rejects the whole file.
func ParseCSV(r io.Reader) ([]plane.Entity, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}

	idx := map[string]int{}
	for i, h := range recs[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	col := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return -1
	}
	px, py := col("x"), col("y")
	x0, y0, x1, y1 := col("x0"), col("y0"), col("x1"), col("y1")
	hasPoints := px >= 0 && py >= 0
	hasVectors := x0 >= 0 && y0 >= 0 && x1 >= 0 && y1 >= 0
	if !hasPoints && !hasVectors {
		return nil, errNoColumns
	}

	var out []plane.Entity
	for n, row := range recs[1:] {
		line := n + 2
		cell := func(i int) (string, bool) {
			if i >= len(row) {
				return "", false
			}
			s := strings.TrimSpace(row[i])
			return s, s != ""
		}
		num := func(i int, name string) (float64, error) {
			s, _ := cell(i)
			return ParseNumber(fmt.Sprintf("line %d %s", line, name), s)
		}
		if hasPoints {
			_, okx := cell(px)
			_, oky := cell(py)
			if okx || oky {
				x, err := num(px, "x")
				if err != nil {
					return nil, err
				}
				y, err := num(py, "y")
				if err != nil {
					return nil, err
				}
				out = append(out, plane.Point{X: x, Y: y})
			}
		}
		if hasVectors {
			set := false
			for _, i := range []int{x0, y0, x1, y1} {
				if _, ok := cell(i); ok {
					set = true
				}
			}
			if !set {
				continue
			}
			var v [4]float64
			for k, i := range []int{x0, y0, x1, y1} {
				if v[k], err = num(i, []string{"x0", "y0", "x1", "y1"}[k]); err != nil {
					return nil, err
				}
			}
			out = append(out, plane.Vector{
				Origin: plane.Point{X: v[0], Y: v[1]},
				Tip:    plane.Point{X: v[2], Y: v[3]},
			})
		}
	}
	return out, nil
}

// HandleLoad plots every entity of a CSV file in a single redraw, or none of
// them.
func HandleLoad(p *plane.Plane, path string) ([]plane.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entities, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Add(entities...)
	return entities, nil
}
