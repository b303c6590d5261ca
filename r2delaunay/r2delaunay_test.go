// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"fmt"
	"testing"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// TriangulationOptions

func TestWithEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 0.5, false},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &TriangulationOptions{Eps: defaultEps}
			opt := WithEps(tt.eps)
			err := opt(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithEps(%v) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}
			if err == nil && opts.Eps != tt.eps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want %v", tt.eps, opts.Eps, tt.eps)
			}
		})
	}
}

// Triangulation

func TestNewTriangulation_WithEps(t *testing.T) {
	points := mustRandomPoints(t, 10)
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps default", defaultEps, false},
		{"eps small", 1e-9, false},
		{"eps zero", 0, true},
		{"eps negative", -0.01, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTriangulation(points, WithEps(tt.eps))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTriangulation(..., WithEps(%v)) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}
		})
	}
}

func TestNewTriangulation_InsufficientInput(t *testing.T) {
	vertices := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1)}
	_, err := NewTriangulation(vertices)
	if !errors.Is(err, geom.ErrInvalidArgument) {
		t.Errorf("NewTriangulation(3 points) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNewTriangulation_VerifyTrianglesCW(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i := range dt.Triangles {
		tri, err := dt.Triangle(i)
		if err != nil {
			t.Fatalf("dt.Triangle(%d) error = %v, want nil", i, err)
		}
		a, b, c := dt.TriangleVertices(i)
		l, err := geom.NewLine(a, b)
		if err != nil {
			t.Fatal(err)
		}
		if got := l.OrientationOfPoint(c); got != geom.Clockwise {
			t.Errorf("dt.Triangles[%d] %v orientation = %v, want Clockwise", i, tri, got)
		}
	}
}

func TestNewTriangulation_DelaunayProperty(t *testing.T) {
	dt := mustNewTriangulation(t, 200)

	for i := range dt.Triangles {
		tri, err := dt.Triangle(i)
		if err != nil {
			t.Fatal(err)
		}
		cc := tri.Circumcircle()
		for _, v := range dt.Vertices {
			if tri.HasVertex(v) {
				continue
			}
			if d := cc.Center().Distance(v); d < cc.Radius()*(1-1e-9) {
				t.Errorf("dt.Triangles[%d]: vertex %v inside circumcircle", i, v)
			}
		}
	}
}

func TestNewTriangulation_MatchesBowyerWatson(t *testing.T) {
	bounds, err := geom.NewRectFromSize(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	seed, err := bounds.Triangles()
	if err != nil {
		t.Fatal(err)
	}
	points := utils.GenerateRandomPoints(100, bounds, 3)
	bw := geom.BowyerWatson(seed[:], points, 0)

	all := append([]geom.Point{bounds.TopLeft(), bounds.TopRight(), bounds.BottomLeft(), bounds.BottomRight()}, points...)
	dt, err := NewTriangulation(all)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}

	want := make(map[[3]geom.Point]bool, len(bw))
	for _, tri := range bw {
		want[tri.Points()] = true
	}
	got := make(map[[3]geom.Point]bool, len(dt.Triangles))
	for i := range dt.Triangles {
		tri, err := dt.Triangle(i)
		if err != nil {
			t.Fatal(err)
		}
		got[tri.Points()] = true
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("triangles mismatch (-bowyer-watson +hull):\n%s", diff)
	}
}

func TestNewTriangulation_VerifyIncidentTrianglesSorted(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for vIdx := 0; vIdx < len(dt.Vertices); vIdx++ {
		incidentTris := dt.IncidentTriangles(vIdx)
		for i := 1; i < len(incidentTris); i++ {
			ct := dt.Triangles[incidentTris[i-1]]
			nt := dt.Triangles[incidentTris[i]]

			nextVertex := NextVertex(ct, vIdx)
			prevVertex := PrevVertex(nt, vIdx)
			if nextVertex != prevVertex {
				t.Errorf("dt.IncidentTriangles(%d) triangles %d and %d are not CW neighbors", vIdx, i-1, i)
			}
		}
	}
}

func TestTriangulation_IncidentTriangles(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.IncidentTriangles(%d) did not panic, want panic", in)
			}
		}()
		dt.IncidentTriangles(in)
	}

	dt := &Triangulation{
		IncidentTriangleIndices: []int{0, 1, 1, 1, 2},
		IncidentTriangleOffsets: []int{0, 2, 3, 5},
	}

	tests := []struct {
		name string
		in   int
		want []int
	}{
		{"index 0", 0, []int{0, 1}},
		{"index 1", 1, []int{1}},
		{"index 2", 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dt.IncidentTriangles(tt.in)
			if !cmp.Equal(tt.want, got) {
				t.Errorf("dt.IncidentTriangles(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.IncidentTriangleOffsets))
}

func TestTriangulation_TriangleVertices(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.TriangleVertices(%d) did not panic, want panic", in)
			}
		}()
		dt.TriangleVertices(in)
	}

	points := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0)}
	dt := &Triangulation{
		Vertices:  points,
		Triangles: [][3]int{{0, 1, 2}},
	}

	want := [3]geom.Point{points[0], points[1], points[2]}
	a, b, c := dt.TriangleVertices(0)
	got := [3]geom.Point{a, b, c}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dt.TriangleVertices(0) mismatch (-want +got):\n%s", diff)
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.Triangles))
}

func TestSortTriangleVerticesCW(t *testing.T) {
	verts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0)}

	want := [3]int{0, 1, 2}
	tri1 := [3]int{0, 1, 2}
	sortTriangleVerticesCW(&tri1, verts)
	if diff := cmp.Diff(want, tri1); diff != "" {
		t.Errorf("sortTriangleVerticesCW([0 1 2], verts) mismatch (-want +got):\n%s", diff)
	}

	tri2 := [3]int{0, 2, 1}
	sortTriangleVerticesCW(&tri2, verts)
	if diff := cmp.Diff(want, tri2); diff != "" {
		t.Errorf("sortTriangleVerticesCW([0 2 1], verts) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortIncidentTriangleIndicesCW(t *testing.T) {
	expected3 := []int{0, 2, 1}
	incident3 := []int{0, 1, 2}
	tris3 := [][3]int{
		{0, 1, 2},
		{0, 2, 3},
		{0, 3, 1},
	}
	sortIncidentTriangleIndicesCW(0, incident3, tris3)
	if !cyclicEqual(incident3, expected3) {
		t.Errorf("sortIncidentTriangleIndicesCW(...) incident3 = %v, want %v", incident3, expected3)
	}

	// Open fan: vertex 0 on the hull, no triangle closes 4 -> 1.
	expectedOpen := []int{1, 0, 2}
	incidentOpen := []int{0, 1, 2}
	trisOpen := [][3]int{
		{0, 2, 3},
		{0, 3, 4},
		{0, 1, 2},
	}
	sortIncidentTriangleIndicesCW(0, incidentOpen, trisOpen)
	if diff := cmp.Diff(expectedOpen, incidentOpen); diff != "" {
		t.Errorf("sortIncidentTriangleIndicesCW(open fan) mismatch (-want +got):\n%s", diff)
	}
}

// Triangle Prev/Next vertex

func TestPrevVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("PrevVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		PrevVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := PrevVertex(tri, in)
		want := tri[(i+2)%len(tri)]
		if got != want {
			t.Errorf("PrevVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestNextVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("NextVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		NextVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := NextVertex(tri, in)
		want := tri[(i+1)%len(tri)]
		if got != want {
			t.Errorf("NextVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

// Benchmarks

func BenchmarkNewTriangulation(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			bounds, err := geom.NewRectFromSize(800, 600)
			if err != nil {
				b.Fatal(err)
			}
			points := utils.GenerateRandomPoints(pointsCnt, bounds, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := NewTriangulation(points)
				if err != nil {
					b.Fatalf("NewTriangulation(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustRandomPoints(t *testing.T, n int) []geom.Point {
	t.Helper()
	bounds, err := geom.NewRectFromSize(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	return utils.GenerateRandomPoints(n, bounds, 0)
}

func mustNewTriangulation(t *testing.T, n int) *Triangulation {
	t.Helper()
	dt, err := NewTriangulation(mustRandomPoints(t, n))
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	return dt
}

func cyclicEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	n := len(a)
	for i := 0; i < n; i++ {
		if b[0] != a[i] {
			continue
		}

		equal := true
		for j := 0; j < n; j++ {
			if a[(i+j)%n] != b[j] {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}

	return false
}
