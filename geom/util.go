// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"
	"slices"
	"sort"

	"github.com/golang/geo/s1"
	"github.com/pkg/errors"
)

// Bounds returns the smallest rectangle containing every point. It returns
// the zero Rect for an empty slice.
func Bounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return NewRect(lo, hi)
}

// OrientPointsClockwise returns a copy of points starting at the leftmost
// point (the topmost of those on ties) followed by the rest sorted by
// descending angle from it. Points at the same angle keep their input order.
func OrientPointsClockwise(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	anchor := 0
	for i, p := range points {
		a := points[anchor]
		if p.X < a.X || (p.X == a.X && p.Y > a.Y) {
			anchor = i
		}
	}

	out := make([]Point, 0, len(points))
	out = append(out, points[anchor])
	out = append(out, points[:anchor]...)
	out = append(out, points[anchor+1:]...)

	origin := out[0]
	rest := out[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return origin.AngleTo(rest[i]) > origin.AngleTo(rest[j])
	})
	return out
}

// ArePointsAllColinear ignores non-finite points. Two points count as
// colinear, fewer than two do not.
func ArePointsAllColinear(points []Point) bool {
	valid := finitePoints(points)
	if len(valid) < 3 {
		return len(valid) == 2
	}
	for _, p := range valid[2:] {
		if orientation(valid[0], valid[1], p, 0) != Colinear {
			return false
		}
	}
	return true
}

// Centroid returns the mean of the distinct points, or the zero point for an
// empty slice.
func Centroid(points []Point) Point {
	distinct := dedupe(points)
	if len(distinct) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range distinct {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(distinct)))
}

// ShoelaceArea returns the area enclosed by the ring of points, in either
// winding order.
func ShoelaceArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		sum += p.Cross(points[(i+1)%len(points)])
	}
	return math.Abs(sum) / 2
}

// IsPointInPolygon casts a ray from p towards +X and applies the even-odd
// rule to the ring described by polygon.
func IsPointInPolygon(p Point, polygon []Point) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// RotatePointAroundOrigin rotates p counter-clockwise by angle around origin.
// Angles <= 0 leave p unchanged.
func RotatePointAroundOrigin(p, origin Point, angle s1.Angle) Point {
	if angle <= 0 {
		return p
	}
	sin, cos := math.Sincos(angle.Radians())
	d := p.Sub(origin)
	return Pt(origin.X+d.X*cos-d.Y*sin, origin.Y+d.X*sin+d.Y*cos)
}

// ValidateAndOrderPointsForPolygon drops non-finite points, orders the rest
// clockwise and removes duplicates. Fewer than three remaining points is
// ErrInvalidArgument, all of them colinear is ErrInvalidGeometry.
func ValidateAndOrderPointsForPolygon(points ...Point) ([]Point, error) {
	ordered := dedupe(OrientPointsClockwise(finitePoints(points)))
	if len(ordered) < 3 {
		return nil, errors.Wrapf(ErrInvalidArgument, "polygon needs at least 3 distinct points, got %d", len(ordered))
	}
	if ArePointsAllColinear(ordered) {
		return nil, errors.Wrapf(ErrInvalidGeometry, "polygon points %v are colinear", ordered)
	}
	return ordered, nil
}

// DistinctEdges flattens the edges of triangles, keeping the first occurrence
// of every undirected segment.
func DistinctEdges(triangles []Triangle) []Line {
	seen := make(map[Line]struct{}, len(triangles)*3/2)
	edges := make([]Line, 0, len(triangles)*3/2)
	for _, t := range triangles {
		for _, e := range t.edges {
			k := e.Canonical()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// SuperTriangle returns a triangle comfortably enclosing r. It returns
// ErrInvalidGeometry when r is too large for the enclosing vertices to be
// finite.
func SuperTriangle(r Rect) (Triangle, error) {
	c := r.Center()
	d := math.Max(math.Max(r.Width(), r.Height()), 1)
	t, err := NewTriangle(
		Pt(c.X-20*d, c.Y-d),
		Pt(c.X, c.Y+20*d),
		Pt(c.X+20*d, c.Y-d),
	)
	if err != nil {
		return Triangle{}, errors.Wrapf(ErrInvalidGeometry, "SuperTriangle: %v too large: %v", r, err)
	}
	return t, nil
}

func finitePoints(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if p.IsFinite() {
			out = append(out, p)
		}
	}
	return out
}

func dedupe(points []Point) []Point {
	seen := make(map[Point]struct{}, len(points))
	out := slices.Grow([]Point(nil), len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
