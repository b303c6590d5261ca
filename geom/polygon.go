// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"fmt"
	"slices"
)

// Polygon is a simple ring of at least three distinct points, not all
// colinear, stored clockwise from the leftmost, then topmost, point. Holes are
// not supported.
type Polygon struct {
	pts  []Point
	area float64
}

// NewPolygon orders points with ValidateAndOrderPointsForPolygon and returns
// its error, if any.
func NewPolygon(points ...Point) (Polygon, error) {
	ordered, err := ValidateAndOrderPointsForPolygon(points...)
	if err != nil {
		return Polygon{}, err
	}
	p := Polygon{pts: ordered}
	if len(ordered) == 3 {
		p.area = heron(ordered[0].Distance(ordered[1]), ordered[1].Distance(ordered[2]), ordered[2].Distance(ordered[0]))
	} else {
		tris, err := triangulatePolygon(p, 0)
		if err != nil {
			return Polygon{}, err
		}
		for _, t := range tris {
			p.area += t.Area()
		}
	}
	return p, nil
}

// Points returns a copy of the vertices in clockwise order.
func (p Polygon) Points() []Point {
	return slices.Clone(p.pts)
}

func (p Polygon) NumPoints() int {
	return len(p.pts)
}

// IsEmpty reports whether p is the zero Polygon.
func (p Polygon) IsEmpty() bool {
	return len(p.pts) == 0
}

// Edges returns the ring's edges, the last closing back to the first point.
func (p Polygon) Edges() []Line {
	n := len(p.pts)
	edges := make([]Line, n)
	for i := 0; i < n; i++ {
		edges[i] = newLine(p.pts[i], p.pts[(i+1)%n])
	}
	return edges
}

// Area is Heron's formula for three points and the summed area of
// Triangulate otherwise.
func (p Polygon) Area() float64 {
	return p.area
}

func (p Polygon) Perimeter() float64 {
	var sum float64
	for _, e := range p.Edges() {
		sum += e.Length()
	}
	return sum
}

func (p Polygon) Centroid() Point {
	return Centroid(p.pts)
}

func (p Polygon) Bounds() Rect {
	return Bounds(p.pts)
}

// Contains applies the even-odd rule.
func (p Polygon) Contains(q Point) bool {
	return IsPointInPolygon(q, p.pts)
}

// Triangulate returns the Delaunay triangles of the vertices whose centroid
// lies inside p.
func (p Polygon) Triangulate() []Triangle {
	tris, err := triangulatePolygon(p, 0)
	if err != nil {
		return nil
	}
	return tris
}

func (p Polygon) Equal(o Polygon) bool {
	return slices.Equal(p.pts, o.pts)
}

func (p Polygon) String() string {
	return fmt.Sprintf("polygon%v", p.pts)
}
