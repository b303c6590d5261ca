// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"slices"
)

// BowyerWatson inserts points one at a time, in order, into the triangulation
// seed and returns the result. The seed must cover every point: a point
// outside the union of the seed triangles breaks the cavity invariant.
//
// For each point every triangle whose circumcircle contains it is removed,
// and the boundary of the removed region (edges used by exactly one removed
// triangle) is fanned back to the point. Triangles enclosing the point are
// always removed. A removed triangle with a boundary edge that does not have
// the point strictly on its inner side is put back, until none is left, so
// rounding on near-cocircular input never yields overlapping triangles.
// Boundary edges colinear with the point within eps are skipped so no sliver
// triangles are built. Points that are already vertices are ignored.
func BowyerWatson(seed []Triangle, points []Point, eps float64) []Triangle {
	tris := slices.Clone(seed)
	vertices := make(map[Point]struct{}, len(points)+len(seed))
	for _, t := range seed {
		for _, p := range t.pts {
			vertices[p] = struct{}{}
		}
	}

	log := Logger()
	for _, p := range points {
		if _, ok := vertices[p]; ok {
			log.Debug("geom: skipping duplicate vertex", "point", p)
			continue
		}
		vertices[p] = struct{}{}
		tris = insertPoint(tris, p, eps)
	}
	log.Debug("geom: bowyer-watson done", "points", len(points), "triangles", len(tris))
	return tris
}

// cavityEdge is a boundary edge of the removed region, directed as in its
// owning clockwise triangle.
type cavityEdge struct {
	edge  Line
	owner int
}

func insertPoint(tris []Triangle, p Point, eps float64) []Triangle {
	bad := make([]bool, len(tris))
	root := make([]bool, len(tris))
	var roots []int
	for i, t := range tris {
		if t.enclosesEps(p, eps) {
			root[i] = true
			roots = append(roots, i)
		}
		bad[i] = root[i] || t.IsPointInsideCircumcircle(p)
	}
	if len(roots) == 0 {
		Logger().Debug("geom: point outside triangulation", "point", p)
		return tris
	}

	// A point on an edge of its enclosing triangle is also enclosed by the
	// triangle across that edge.
	for _, i := range roots {
		for _, e := range tris[i].edges {
			if e.OrientationOfPointEps(p, eps) != Colinear {
				continue
			}
			for j, t := range tris {
				if j != i && t.hasEdge(e) {
					root[j], bad[j] = true, true
				}
			}
		}
	}

	// Shrink the removed region until it is star-shaped around p: every
	// boundary edge must have p strictly on its inner side.
	boundary := cavityBoundary(tris, bad)
	for {
		restored := false
		for _, c := range boundary {
			if root[c.owner] || !bad[c.owner] {
				continue
			}
			if c.edge.OrientationOfPointEps(p, eps) != Clockwise {
				bad[c.owner] = false
				restored = true
			}
		}
		if !restored {
			break
		}
		boundary = cavityBoundary(tris, bad)
	}

	kept := make([]Triangle, 0, len(tris)+2)
	for i, t := range tris {
		if !bad[i] {
			kept = append(kept, t)
		}
	}
	for _, c := range boundary {
		if c.edge.OrientationOfPointEps(p, eps) != Clockwise {
			Logger().Debug("geom: skipping sliver edge", "edge", c.edge, "point", p)
			continue
		}
		t, err := NewTriangle(p, c.edge.start, c.edge.end)
		if err != nil {
			Logger().Debug("geom: dropping cavity triangle", "edge", c.edge, "point", p, "err", err)
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// cavityBoundary returns the edges used by exactly one triangle marked bad.
func cavityBoundary(tris []Triangle, bad []bool) []cavityEdge {
	counts := make(map[Line]int)
	for i, t := range tris {
		if !bad[i] {
			continue
		}
		for _, e := range t.edges {
			counts[e.Canonical()]++
		}
	}

	var boundary []cavityEdge
	for i, t := range tris {
		if !bad[i] {
			continue
		}
		for _, e := range t.edges {
			if counts[e.Canonical()] == 1 {
				boundary = append(boundary, cavityEdge{edge: e, owner: i})
			}
		}
	}
	return boundary
}

// TriangulatePolygonAtPoint triangulates polygon, which must contain point.
// It returns nil when polygon is empty, point is not finite or point lies
// outside polygon.
func TriangulatePolygonAtPoint(polygon Polygon, point Point) []Triangle {
	return TriangulatePolygonAtPointEps(polygon, point, 0)
}

// TriangulatePolygonAtPointEps is TriangulatePolygonAtPoint with eps passed to
// BowyerWatson.
func TriangulatePolygonAtPointEps(polygon Polygon, point Point, eps float64) []Triangle {
	if polygon.IsEmpty() || !point.IsFinite() || !polygon.Contains(point) {
		return nil
	}
	tris, err := triangulatePolygon(polygon, eps)
	if err != nil {
		Logger().Debug("geom: polygon triangulation failed", "polygon", polygon, "err", err)
		return nil
	}
	return tris
}

// triangulatePolygon runs Bowyer-Watson over the vertices inside a super
// triangle and keeps triangles whose centroid is inside the polygon.
func triangulatePolygon(polygon Polygon, eps float64) ([]Triangle, error) {
	super, err := SuperTriangle(polygon.Bounds())
	if err != nil {
		return nil, err
	}
	all := BowyerWatson([]Triangle{super}, polygon.pts, eps)
	out := all[:0]
	for _, t := range all {
		if polygon.Contains(t.Centroid()) {
			out = append(out, t)
		}
	}
	return out, nil
}
