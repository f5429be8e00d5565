package input

import (
	"errors"
	"fmt"
	"strings"

	"cartesian/internal/plane"
)

// ErrUnsupportedGeometry is returned for WKT that is not a POINT, MULTIPOINT
// or LINESTRING.
var ErrUnsupportedGeometry = errors.New("unsupported wkt geometry")

// ParseWKT parses a subset of WKT into entities:
//
//	POINT(x y)                  one point
//	MULTIPOINT(x y, ...)        points; members may also be written (x y)
//	LINESTRING(x0 y0, x1 y1...) one vector per consecutive pair of vertices
//
// Every coordinate must parse; one bad tuple rejects the whole text.
func ParseWKT(wkt string) ([]plane.Entity, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, &CoordinateError{Field: "wkt", Text: wkt, Err: errors.New("empty wkt")}
	}
	up := strings.ToUpper(s)
	body := func(kind string) (string, error) {
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return "", &CoordinateError{Field: kind, Text: s, Err: errors.New("missing parentheses")}
		}
		if strings.TrimSpace(s[len(kind):i]) != "" {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedGeometry, strings.TrimSpace(s[:i]))
		}
		return s[i+1 : j], nil
	}
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		b, err := body("MULTIPOINT")
		if err != nil {
			return nil, err
		}
		b = strings.NewReplacer("(", "", ")", "").Replace(b)
		pts, err := parseTuples("multipoint", b)
		if err != nil {
			return nil, err
		}
		out := make([]plane.Entity, 0, len(pts))
		for _, p := range pts {
			out = append(out, p)
		}
		return out, nil
	case strings.HasPrefix(up, "POINT"):
		b, err := body("POINT")
		if err != nil {
			return nil, err
		}
		pts, err := parseTuples("point", b)
		if err != nil {
			return nil, err
		}
		if len(pts) != 1 {
			return nil, &CoordinateError{Field: "point", Text: b, Err: errors.New("expected one coordinate")}
		}
		return []plane.Entity{pts[0]}, nil
	case strings.HasPrefix(up, "LINESTRING"):
		b, err := body("LINESTRING")
		if err != nil {
			return nil, err
		}
		pts, err := parseTuples("linestring", b)
		if err != nil {
			return nil, err
		}
		if len(pts) < 2 {
			return nil, &CoordinateError{Field: "linestring", Text: b, Err: errors.New("need at least two vertices")}
		}
		out := make([]plane.Entity, 0, len(pts)-1)
		for i := 0; i+1 < len(pts); i++ {
			out = append(out, plane.Vector{Origin: pts[i], Tip: pts[i+1]})
		}
		return out, nil
	}
	kind := s
	if i := strings.IndexAny(s, " ("); i > 0 {
		kind = s[:i]
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, kind)
}

// parseTuples reads "x y, x y, ..." tuples.
func parseTuples(field, block string) ([]plane.Point, error) {
	var out []plane.Point
	for i, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		name := fmt.Sprintf("%s[%d]", field, i)
		if len(parts) != 2 {
			return nil, &CoordinateError{Field: name, Text: strings.TrimSpace(tup), Err: errors.New("expected x y")}
		}
		x, err := ParseNumber(name+".x", parts[0])
		if err != nil {
			return nil, err
		}
		y, err := ParseNumber(name+".y", parts[1])
		if err != nil {
			return nil, err
		}
		out = append(out, plane.Point{X: x, Y: y})
	}
	return out, nil
}
