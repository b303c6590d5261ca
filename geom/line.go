// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/pkg/errors"
)

// Orientation is the rotational sense of a point relative to a directed line.
type Orientation int

const (
	Colinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Colinear:
		return "Colinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Line is a directed segment between two distinct points.
type Line struct {
	start, end Point
}

// NewLine returns the segment from start to end. Zero-length segments are
// rejected with ErrInvalidGeometry.
func NewLine(start, end Point) (Line, error) {
	if start.Equal(end) {
		return Line{}, errors.Wrapf(ErrInvalidGeometry, "line %v -> %v has zero length", start, end)
	}
	return Line{start: start, end: end}, nil
}

// newLine skips validation. Callers guarantee start != end.
func newLine(start, end Point) Line {
	return Line{start: start, end: end}
}

func (l Line) Start() Point {
	return l.start
}

func (l Line) End() Point {
	return l.end
}

func (l Line) Bounds() Rect {
	return NewRect(l.start, l.end)
}

func (l Line) Midpoint() Point {
	return l.start.Add(l.end).Mul(0.5)
}

func (l Line) Length() float64 {
	return l.start.Distance(l.end)
}

// Slope is ±Inf for vertical lines.
func (l Line) Slope() float64 {
	dx := l.end.X - l.start.X
	dy := l.end.Y - l.start.Y
	if dx == 0 {
		return math.Copysign(math.Inf(1), dy)
	}
	return dy / dx
}

// YIntercept is NaN for vertical lines.
func (l Line) YIntercept() float64 {
	if l.end.X == l.start.X {
		return math.NaN()
	}
	return l.start.Y - l.Slope()*l.start.X
}

// Angle returns the direction from start to end.
func (l Line) Angle() s1.Angle {
	return l.start.AngleTo(l.end)
}

func (l Line) Reverse() Line {
	return Line{start: l.end, end: l.start}
}

// OrientationOfPoint reports on which side of l the point p lies, treating
// only an exactly zero cross product as colinear.
func (l Line) OrientationOfPoint(p Point) Orientation {
	return l.OrientationOfPointEps(p, 0)
}

// OrientationOfPointEps is OrientationOfPoint with cross products of
// magnitude at most eps treated as colinear. The cross product scales with
// the square of the coordinates, so eps must be chosen for the input scale.
func (l Line) OrientationOfPointEps(p Point, eps float64) Orientation {
	return orientation(l.start, l.end, p, eps)
}

func orientation(a, b, p Point, eps float64) Orientation {
	v := p.Sub(b).Cross(b.Sub(a))
	switch {
	case math.Abs(v) <= eps:
		return Colinear
	case v > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// Equal reports whether l and o have the same start and end.
func (l Line) Equal(o Line) bool {
	return l.start.Equal(o.start) && l.end.Equal(o.end)
}

// SameSegment reports whether l and o join the same two points in either
// direction.
func (l Line) SameSegment(o Line) bool {
	return l.Equal(o) || (l.start.Equal(o.end) && l.end.Equal(o.start))
}

// IntersectsLine reports whether the infinite lines through l and o cross.
// Parallel and coincident lines do not intersect.
func (l Line) IntersectsLine(o Line) bool {
	_, ok := l.LineIntersection(o)
	return ok
}

// IntersectsSegment reports whether the segments l and o cross.
func (l Line) IntersectsSegment(o Line) bool {
	_, ok := l.SegmentIntersection(o)
	return ok
}

// LineIntersection returns the crossing point of the infinite lines through
// l and o. ok is false for parallel or coincident lines.
func (l Line) LineIntersection(o Line) (p Point, ok bool) {
	t, _, ok := l.intersectParams(o)
	if !ok {
		return Point{}, false
	}
	return l.at(t), true
}

// SegmentIntersection returns the crossing point of segments l and o. ok is
// false when the lines are parallel or the crossing lies outside either
// segment.
func (l Line) SegmentIntersection(o Line) (p Point, ok bool) {
	t, u, ok := l.intersectParams(o)
	if !ok || t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return l.at(t), true
}

func (l Line) intersectParams(o Line) (t, u float64, ok bool) {
	d1 := l.end.Sub(l.start)
	d2 := o.end.Sub(o.start)
	denom := d1.Cross(d2)
	if denom == 0 {
		return 0, 0, false
	}
	w := o.start.Sub(l.start)
	return w.Cross(d2) / denom, w.Cross(d1) / denom, true
}

func (l Line) at(t float64) Point {
	return l.start.Add(l.end.Sub(l.start).Mul(t))
}

func (l Line) String() string {
	return fmt.Sprintf("[%v -> %v]", l.start, l.end)
}

// Canonical returns l directed from its lexicographically smaller endpoint
// (by X, then Y). Two segments with SameSegment true have equal canonical
// forms, so Canonical values can key maps of undirected edges.
func (l Line) Canonical() Line {
	a, b := l.start, l.end
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		return Line{start: b, end: a}
	}
	return l
}
