// Package input turns raw user text into plane entities and applies them to a
// plane.Plane. Parsing always finishes before the plane is touched, so a
// rejected input leaves the plane exactly as it was.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cartesian/internal/plane"
)

// ErrInvalidCoordinate is the single error kind for numeric input that cannot
// be used as a coordinate.
var ErrInvalidCoordinate = errors.New("invalid coordinate input")

// CoordinateError reports which field held the bad text.
type CoordinateError struct {
	Field string
	Text  string
	Err   error
}

func (e *CoordinateError) Error() string {
	msg := fmt.Sprintf("%s: %q is not a valid coordinate", e.Field, e.Text)
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *CoordinateError) Is(target error) bool { return target == ErrInvalidCoordinate }
func (e *CoordinateError) Unwrap() error        { return e.Err }

var (
	errNotFinite = errors.New("not a finite number")
	errPairShape = errors.New("expected x,y")
)

// ParseNumber parses a single finite real number.
func ParseNumber(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &CoordinateError{Field: field, Text: text, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &CoordinateError{Field: field, Text: text, Err: errNotFinite}
	}
	return v, nil
}

// ParsePoint parses separate x and y fields.
func ParsePoint(xText, yText string) (plane.Point, error) {
	x, err := ParseNumber("x", xText)
	if err != nil {
		return plane.Point{}, err
	}
	y, err := ParseNumber("y", yText)
	if err != nil {
		return plane.Point{}, err
	}
	return plane.Point{X: x, Y: y}, nil
}

// ParsePair parses "x,y" into a point.
func ParsePair(field, text string) (plane.Point, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return plane.Point{}, &CoordinateError{Field: field, Text: text, Err: errPairShape}
	}
	x, err := ParseNumber(field+".x", parts[0])
	if err != nil {
		return plane.Point{}, err
	}
	y, err := ParseNumber(field+".y", parts[1])
	if err != nil {
		return plane.Point{}, err
	}
	return plane.Point{X: x, Y: y}, nil
}

// ParseVector parses the origin and tip of a vector, each as "x,y".
func ParseVector(originText, tipText string) (plane.Vector, error) {
	origin, err := ParsePair("origin", originText)
	if err != nil {
		return plane.Vector{}, err
	}
	tip, err := ParsePair("tip", tipText)
	if err != nil {
		return plane.Vector{}, err
	}
	return plane.Vector{Origin: origin, Tip: tip}, nil
}
