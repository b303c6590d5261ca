// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes planar Delaunay triangulations as the lower
// convex hull of the input points lifted onto the paraboloid z = x² + y².
package r2delaunay

import (
	"github.com/2dChan/r2voronoi/geom"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

const (
	defaultEps = 1e-12
)

type Triangulation struct {
	Vertices []geom.Point
	// NOTE: Clockwise per triangle.
	Triangles [][3]int
	// NOTE: Sorted clockwise around each vertex. For hull vertices the fan is
	// open and starts at the triangle after the outside.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the indices of the triangles using vertex vIdx.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (geom.Point, geom.Point, geom.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Triangle returns triangle tIdx as a geom.Triangle.
func (dt *Triangulation) Triangle(tIdx int) (geom.Triangle, error) {
	a, b, c := dt.TriangleVertices(tIdx)
	return geom.NewTriangle(a, b, c)
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the QuickHull tolerance and the threshold below which a hull
// face counts as vertical. Points are scaled into the unit square before
// lifting, so eps is relative to the input extent.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return errors.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation triangulates vertices. At least four points, not all
// colinear or cocircular, are required.
func NewTriangulation(vertices []geom.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil, errors.Wrapf(geom.ErrInvalidArgument,
			"r2delaunay: insufficient vertices for triangulation (minimum 4 required, got %d)", numVertices)
	}

	lifted := lift(vertices)
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)

	var centroid r3.Vector
	for _, v := range lifted {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1 / float64(numVertices))

	dt := &Triangulation{
		Vertices:                vertices,
		IncidentTriangleOffsets: make([]int, numVertices+1),
	}
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		if !isLowerFace(lifted, t, centroid, opts.Eps) {
			continue
		}
		sortTriangleVerticesCW(&t, vertices)
		dt.Triangles = append(dt.Triangles, t)
	}
	if len(dt.Triangles) == 0 {
		return nil, errors.Wrap(geom.ErrInvalidGeometry, "r2delaunay: degenerate input, no lower hull faces")
	}

	numTriangles := len(dt.Triangles)
	dt.IncidentTriangleIndices = make([]int, numTriangles*3)
	for _, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := 0; i < numVertices; i++ {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := 0; i < numVertices; i++ {
		sortIncidentTriangleIndicesCW(i, dt.IncidentTriangles(i), dt.Triangles)
	}

	return dt, nil
}

// lift maps the points into the unit square and onto the paraboloid.
func lift(vertices []geom.Point) []r3.Vector {
	b := geom.Bounds(vertices)
	scale := max(b.Width(), b.Height())
	if scale == 0 {
		scale = 1
	}
	origin := b.BottomLeft()
	out := make([]r3.Vector, len(vertices))
	for i, p := range vertices {
		q := p.Sub(origin).Mul(1 / scale)
		out[i] = r3.Vector{X: q.X, Y: q.Y, Z: q.MagnitudeSquared()}
	}
	return out
}

// isLowerFace reports whether the outward normal of face t points down.
func isLowerFace(lifted []r3.Vector, t [3]int, centroid r3.Vector, eps float64) bool {
	a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	norm := n.Norm()
	if norm == 0 {
		return false
	}
	if n.Dot(a.Sub(centroid)) < 0 {
		n = n.Mul(-1)
	}
	return n.Z < -eps*norm
}

func sortTriangleVerticesCW(t *[3]int, v []geom.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) > 0 {
		t[1], t[2] = t[2], t[1]
	}
}

// sortIncidentTriangleIndicesCW chains the fan around vIdx so that each
// triangle's next vertex is the following triangle's previous vertex.
func sortIncidentTriangleIndicesCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	if n < 2 {
		return
	}

	// An open fan must start at the triangle with no predecessor.
	for i := 0; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i]], vIdx)
		hasPred := false
		for j := 0; j < n; j++ {
			if j != i && NextVertex(tris[incidentTris[j]], vIdx) == prv {
				hasPred = true
				break
			}
		}
		if !hasPred {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		nxt := NextVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			prv := PrevVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
