// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Triangle is three distinct, non-colinear points stored in canonical
// clockwise order starting at the leftmost, then topmost, vertex. Triangles
// built from the same three points in any order are Equal.
type Triangle struct {
	pts    [3]Point
	edges  [3]Line
	circum Circle
	area   float64
}

// NewTriangle validates and canonicalises exactly three points.
func NewTriangle(points ...Point) (Triangle, error) {
	if len(points) != 3 {
		return Triangle{}, errors.Wrapf(ErrInvalidArgument, "triangle needs 3 points, got %d", len(points))
	}
	for _, p := range points {
		if !p.IsFinite() {
			return Triangle{}, errors.Wrapf(ErrInvalidArgument, "triangle point %v is not finite", p)
		}
	}
	if points[0].Equal(points[1]) || points[1].Equal(points[2]) || points[0].Equal(points[2]) {
		return Triangle{}, errors.Wrapf(ErrInvalidGeometry, "triangle points %v are not distinct", points)
	}
	if orientation(points[0], points[1], points[2], 0) == Colinear {
		return Triangle{}, errors.Wrapf(ErrInvalidGeometry, "triangle points %v are colinear", points)
	}

	ordered := OrientPointsClockwise(points)
	var t Triangle
	copy(t.pts[:], ordered)
	if orientation(t.pts[0], t.pts[1], t.pts[2], 0) == CounterClockwise {
		t.pts[1], t.pts[2] = t.pts[2], t.pts[1]
	}
	for i := 0; i < 3; i++ {
		t.edges[i] = newLine(t.pts[i], t.pts[(i+1)%3])
	}
	t.area = heron(t.edges[0].Length(), t.edges[1].Length(), t.edges[2].Length())
	t.circum = circumcircle(t.pts[0], t.pts[1], t.pts[2])
	return t, nil
}

// Points returns the vertices in clockwise order.
func (t Triangle) Points() [3]Point {
	return t.pts
}

// Edges returns pts[0]->pts[1], pts[1]->pts[2] and pts[2]->pts[0].
func (t Triangle) Edges() [3]Line {
	return t.edges
}

// Area is computed with Heron's formula.
func (t Triangle) Area() float64 {
	return t.area
}

func (t Triangle) Perimeter() float64 {
	return t.edges[0].Length() + t.edges[1].Length() + t.edges[2].Length()
}

// Circumcircle returns the circle through all three vertices. For a triangle
// so thin that the circumcenter determinant is exactly zero it is the zero
// Circle (radius 0 at the origin).
func (t Triangle) Circumcircle() Circle {
	return t.circum
}

func (t Triangle) Centroid() Point {
	return t.pts[0].Add(t.pts[1]).Add(t.pts[2]).Mul(1.0 / 3)
}

func (t Triangle) Bounds() Rect {
	return Bounds(t.pts[:])
}

// Contains reports whether p lies inside or on the boundary of t.
func (t Triangle) Contains(p Point) bool {
	return t.enclosesEps(p, 0)
}

func (t Triangle) enclosesEps(p Point, eps float64) bool {
	for _, e := range t.edges {
		if e.OrientationOfPointEps(p, eps) == CounterClockwise {
			return false
		}
	}
	return true
}

// IsPointInsideCircumcircle reports whether p lies inside or on the
// circumcircle.
func (t Triangle) IsPointInsideCircumcircle(p Point) bool {
	return t.circum.Contains(p)
}

// HasVertex reports whether p is one of the vertices.
func (t Triangle) HasVertex(p Point) bool {
	return t.pts[0].Equal(p) || t.pts[1].Equal(p) || t.pts[2].Equal(p)
}

// SharesEdgeWith reports whether t and o have an edge in common, in either
// direction.
func (t Triangle) SharesEdgeWith(o Triangle) bool {
	_, ok := t.SharedEdge(o)
	return ok
}

// SharedEdge returns the first edge of t that o also has.
func (t Triangle) SharedEdge(o Triangle) (Line, bool) {
	for _, e := range t.edges {
		for _, f := range o.edges {
			if e.SameSegment(f) {
				return e, true
			}
		}
	}
	return Line{}, false
}

func (t Triangle) hasEdge(e Line) bool {
	return t.edges[0].SameSegment(e) || t.edges[1].SameSegment(e) || t.edges[2].SameSegment(e)
}

// Equal compares vertices only; the derived fields follow from them.
func (t Triangle) Equal(o Triangle) bool {
	return t.pts == o.pts
}

func (t Triangle) String() string {
	return fmt.Sprintf("triangle(%v, %v, %v)", t.pts[0], t.pts[1], t.pts[2])
}

func heron(a, b, c float64) float64 {
	s := (a + b + c) / 2
	v := s * (s - a) * (s - b) * (s - c)
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

func circumcircle(a, b, c Point) Circle {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return Circle{}
	}
	a2, b2, c2 := a.MagnitudeSquared(), b.MagnitudeSquared(), c.MagnitudeSquared()
	center := Pt(
		(a2*(b.Y-c.Y)+b2*(c.Y-a.Y)+c2*(a.Y-b.Y))/d,
		(a2*(c.X-b.X)+b2*(a.X-c.X)+c2*(b.X-a.X))/d,
	)
	return Circle{center: center, radius: center.Distance(a)}
}
