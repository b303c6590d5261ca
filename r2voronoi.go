// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi builds planar Delaunay triangulations with the
// Bowyer-Watson algorithm and derives the dual Voronoi edges.
package r2voronoi

import (
	"math"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/pkg/errors"
)

const (
	defaultEps = 0
)

// Diagram is the result of one generation request. It is never updated in
// place; build a new Diagram for new input.
type Diagram struct {
	Bounds geom.Rect
	// Sites are the inserted points, seed corners and polygon super triangle
	// excluded.
	Sites                 []geom.Point
	DelaunayTriangles     []geom.Triangle
	DelaunayDistinctEdges []geom.Line
	VoronoiDistinctEdges  []geom.Line
	// NOTE: Cell assembly is not implemented, always empty.
	VoronoiPolygons []geom.Polygon

	// NOTE: TriangleNeighbors[i][k] is the triangle across
	// DelaunayTriangles[i].Edges()[k], or -1 on the outside.
	TriangleNeighbors [][3]int
	SiteTriangles     []int
	SiteOffsets       []int

	area float64
}

type DiagramOptions struct {
	Eps  float64
	Seed int64
}

type DiagramOption func(*DiagramOptions) error

// WithEps sets the tolerance of the colinearity test that discards sliver
// triangles during insertion. Zero, the default, means exact comparison.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if !(eps >= 0) {
			return errors.Wrapf(geom.ErrInvalidArgument, "WithEps: eps must be non-negative, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithSeed sets the random seed NewDiagram generates points with.
func WithSeed(seed int64) DiagramOption {
	return func(o *DiagramOptions) error {
		o.Seed = seed
		return nil
	}
}

func newOptions(setters []DiagramOption) (DiagramOptions, error) {
	opts := DiagramOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return DiagramOptions{}, err
		}
	}
	return opts, nil
}

// NewDiagram triangulates count random points on a width x height plane.
func NewDiagram(width, height float64, count int, setters ...DiagramOption) (*Diagram, error) {
	bounds, err := geom.NewRectFromSize(width, height)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errors.Wrapf(geom.ErrInvalidArgument, "point count %d must be non-negative", count)
	}
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	return newRectDiagram(bounds, utils.GenerateRandomPoints(count, bounds, opts.Seed), opts)
}

// NewDiagramFromPoints triangulates points, which must lie inside bounds.
func NewDiagramFromPoints(bounds geom.Rect, points []geom.Point, setters ...DiagramOption) (*Diagram, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		if !p.IsFinite() || !bounds.Contains(p) {
			return nil, errors.Wrapf(geom.ErrInvalidArgument, "point %v outside %v", p, bounds)
		}
	}
	return newRectDiagram(bounds, points, opts)
}

// NewPolygonDiagram triangulates polygon, which must contain point. An empty
// polygon or a point outside it gives a Diagram without triangles; only an
// invalid option is an error.
func NewPolygonDiagram(polygon geom.Polygon, point geom.Point, setters ...DiagramOption) (*Diagram, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	tris := geom.TriangulatePolygonAtPointEps(polygon, point, opts.Eps)
	d := build(polygon.Bounds(), polygon.Points(), tris)
	if len(tris) > 0 {
		d.area = geom.ShoelaceArea(polygon.Points())
	}
	return d, nil
}

func newRectDiagram(bounds geom.Rect, points []geom.Point, opts DiagramOptions) (*Diagram, error) {
	seed, err := bounds.Triangles()
	if err != nil {
		return nil, err
	}
	tris := geom.BowyerWatson(seed[:], points, opts.Eps)
	d := build(bounds, points, tris)
	d.area = bounds.Area()
	return d, nil
}

func build(bounds geom.Rect, points []geom.Point, tris []geom.Triangle) *Diagram {
	d := &Diagram{
		Bounds:                bounds,
		Sites:                 dedupe(points),
		DelaunayTriangles:     tris,
		DelaunayDistinctEdges: geom.DistinctEdges(tris),
		VoronoiPolygons:       []geom.Polygon{},
	}
	d.buildAdjacency()
	d.buildVoronoiEdges()
	d.buildSiteIndex()

	logger().Debug("r2voronoi: diagram built",
		"sites", len(d.Sites),
		"triangles", len(d.DelaunayTriangles),
		"delaunayEdges", len(d.DelaunayDistinctEdges),
		"voronoiEdges", len(d.VoronoiDistinctEdges))
	return d
}

// buildAdjacency indexes every edge by the triangles using it.
func (d *Diagram) buildAdjacency() {
	type owner struct{ tri, edge int }
	owners := make(map[geom.Line]owner, len(d.DelaunayTriangles)*3/2)

	d.TriangleNeighbors = make([][3]int, len(d.DelaunayTriangles))
	for i, t := range d.DelaunayTriangles {
		d.TriangleNeighbors[i] = [3]int{-1, -1, -1}
		for k, e := range t.Edges() {
			key := e.Canonical()
			o, ok := owners[key]
			if !ok {
				owners[key] = owner{i, k}
				continue
			}
			d.TriangleNeighbors[i][k] = o.tri
			d.TriangleNeighbors[o.tri][o.edge] = i
		}
	}
}

// buildVoronoiEdges joins the circumcenters of every pair of neighboring
// triangles, skipping pairs whose centers coincide.
func (d *Diagram) buildVoronoiEdges() {
	seen := make(map[geom.Line]struct{})
	d.VoronoiDistinctEdges = []geom.Line{}
	for i, t := range d.DelaunayTriangles {
		for _, j := range d.TriangleNeighbors[i] {
			if j <= i {
				continue
			}
			a := t.Circumcircle().Center()
			b := d.DelaunayTriangles[j].Circumcircle().Center()
			l, err := geom.NewLine(a, b)
			if err != nil {
				continue
			}
			if _, ok := seen[l.Canonical()]; ok {
				continue
			}
			seen[l.Canonical()] = struct{}{}
			d.VoronoiDistinctEdges = append(d.VoronoiDistinctEdges, l)
		}
	}
}

func (d *Diagram) buildSiteIndex() {
	index := make(map[geom.Point]int, len(d.Sites))
	for i, p := range d.Sites {
		index[p] = i
	}

	d.SiteOffsets = make([]int, len(d.Sites)+1)
	for _, t := range d.DelaunayTriangles {
		for _, p := range t.Points() {
			if i, ok := index[p]; ok {
				d.SiteOffsets[i+1]++
			}
		}
	}
	for i := range d.Sites {
		d.SiteOffsets[i+1] += d.SiteOffsets[i]
	}

	d.SiteTriangles = make([]int, d.SiteOffsets[len(d.Sites)])
	nxt := make([]int, len(d.Sites))
	copy(nxt, d.SiteOffsets[:len(d.Sites)])
	for tIdx, t := range d.DelaunayTriangles {
		for _, p := range t.Points() {
			if i, ok := index[p]; ok {
				d.SiteTriangles[nxt[i]] = tIdx
				nxt[i]++
			}
		}
	}
}

// NumSites returns the number of inserted points.
func (d *Diagram) NumSites() int {
	return len(d.Sites)
}

// Site returns the view of site i.
// It returns an error if the index is out of range.
func (d *Diagram) Site(i int) (Site, error) {
	if i < 0 || i >= len(d.Sites) {
		return Site{}, errors.Errorf("Site: index %d out of range [0 %d)", i, len(d.Sites))
	}
	return Site{idx: i, d: d}, nil
}

// Neighbors returns the indices of the triangles sharing an edge with
// triangle tIdx, -1 where an edge is on the outside.
func (d *Diagram) Neighbors(tIdx int) ([3]int, error) {
	if tIdx < 0 || tIdx >= len(d.TriangleNeighbors) {
		return [3]int{}, errors.Errorf("Neighbors: index %d out of range [0 %d)", tIdx, len(d.TriangleNeighbors))
	}
	return d.TriangleNeighbors[tIdx], nil
}

// Validate performs sanity checks on the Diagram: neighbor links are
// symmetric, the triangles cover the expected area and no vertex lies inside
// a circumcircle. It returns nil if no issues were found. It is quadratic in
// the number of triangles and meant for debugging.
func (d *Diagram) Validate() error {
	for i, ns := range d.TriangleNeighbors {
		for k, j := range ns {
			if j == -1 {
				continue
			}
			if !contains(d.TriangleNeighbors[j], i) {
				return errors.Errorf("Validate: triangle %d lists %d across edge %d but not vice versa", i, j, k)
			}
		}
	}

	var area float64
	for _, t := range d.DelaunayTriangles {
		area += t.Area()
	}
	if math.Abs(area-d.area) > 1e-9*math.Max(1, d.area) {
		return errors.Errorf("Validate: triangles cover %v, want %v", area, d.area)
	}

	var vertices []geom.Point
	for _, e := range d.DelaunayDistinctEdges {
		vertices = append(vertices, e.Start(), e.End())
	}
	vertices = dedupe(vertices)
	for i, t := range d.DelaunayTriangles {
		cc := t.Circumcircle()
		for _, v := range vertices {
			if t.HasVertex(v) {
				continue
			}
			if cc.Center().Distance(v) < cc.Radius()*(1-1e-9) {
				return errors.Errorf("Validate: vertex %v inside circumcircle of triangle %d", v, i)
			}
		}
	}
	return nil
}

func contains(ns [3]int, i int) bool {
	return ns[0] == i || ns[1] == i || ns[2] == i
}

func dedupe(points []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(points))
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
