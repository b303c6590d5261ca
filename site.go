// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/geom"
	"github.com/pkg/errors"
)

// Site is a view structure for accessing one inserted point of a Diagram and
// the Delaunay triangles around it. The site's index corresponds to its
// position in the Diagram's Sites.
type Site struct {
	idx int
	d   *Diagram
}

// Index returns the index of the site in the Diagram's Sites.
func (s Site) Index() int {
	return s.idx
}

// Point returns the site's position.
func (s Site) Point() geom.Point {
	return s.d.Sites[s.idx]
}

// NumTriangles returns the number of Delaunay triangles using the site as a
// vertex.
func (s Site) NumTriangles() int {
	return s.d.SiteOffsets[s.idx+1] - s.d.SiteOffsets[s.idx]
}

// TriangleIndices returns the indices of those triangles in the Diagram's
// DelaunayTriangles, in triangle order.
func (s Site) TriangleIndices() []int {
	return s.d.SiteTriangles[s.d.SiteOffsets[s.idx]:s.d.SiteOffsets[s.idx+1]]
}

// Triangle returns the incident triangle at the specified index.
// It returns an error if the index is out of range.
func (s Site) Triangle(i int) (geom.Triangle, error) {
	start := s.d.SiteOffsets[s.idx]
	end := s.d.SiteOffsets[s.idx+1]
	if i < 0 || i >= end-start {
		return geom.Triangle{}, errors.Errorf("Triangle: index %d out of range [0 %d)", i, end-start)
	}
	return s.d.DelaunayTriangles[s.d.SiteTriangles[start+i]], nil
}

// Neighbors returns the distinct points joined to the site by a Delaunay edge,
// seed corners included.
func (s Site) Neighbors() []geom.Point {
	p := s.Point()
	var out []geom.Point
	for _, tIdx := range s.TriangleIndices() {
		for _, q := range s.d.DelaunayTriangles[tIdx].Points() {
			if !q.Equal(p) {
				out = append(out, q)
			}
		}
	}
	return dedupe(out)
}
