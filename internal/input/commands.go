package input

import "cartesian/internal/plane"

// HandleAddPoint parses x and y and plots the point. On error p is untouched.
func HandleAddPoint(p *plane.Plane, xText, yText string) (plane.Point, error) {
	pt, err := ParsePoint(xText, yText)
	if err != nil {
		return plane.Point{}, err
	}
	p.AddPoint(pt)
	return pt, nil
}

// HandleAddVector parses origin and tip ("x,y" each) and plots the vector. On
// error p is untouched.
func HandleAddVector(p *plane.Plane, originText, tipText string) (plane.Vector, error) {
	v, err := ParseVector(originText, tipText)
	if err != nil {
		return plane.Vector{}, err
	}
	p.AddVector(v)
	return v, nil
}

// HandlePaste plots every entity in a WKT text in a single redraw, or none of
// them.
func HandlePaste(p *plane.Plane, wkt string) ([]plane.Entity, error) {
	entities, err := ParseWKT(wkt)
	if err != nil {
		return nil, err
	}
	p.Add(entities...)
	return entities, nil
}

func HandleClear(p *plane.Plane) {
	p.Clear()
}
