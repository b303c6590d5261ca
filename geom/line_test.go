// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine_ZeroLength(t *testing.T) {
	_, err := NewLine(Pt(1, 1), Pt(1, 1))
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("NewLine(p, p) error = %v, want ErrInvalidGeometry", err)
	}
}

func TestLine_Derived(t *testing.T) {
	l := mustNewLine(t, Pt(0, 1), Pt(4, 9))
	assert.Equal(t, Pt(2, 5), l.Midpoint())
	assert.InDelta(t, math.Sqrt(80), l.Length(), tolerance)
	assert.Equal(t, 2.0, l.Slope())
	assert.Equal(t, 1.0, l.YIntercept())
	assert.True(t, l.Bounds().Equal(NewRect(Pt(0, 9), Pt(4, 1))))
}

func TestLine_Vertical(t *testing.T) {
	up := mustNewLine(t, Pt(2, 0), Pt(2, 5))
	assert.True(t, math.IsInf(up.Slope(), 1))
	assert.True(t, math.IsInf(up.Reverse().Slope(), -1))
	assert.True(t, math.IsNaN(up.YIntercept()))
	assert.InDelta(t, math.Pi/2, up.Angle().Radians(), tolerance)
}

func TestLine_OrientationOfPoint(t *testing.T) {
	l := mustNewLine(t, Pt(0, 0), Pt(0, 1))
	tests := []struct {
		name string
		p    Point
		want Orientation
	}{
		{"right turn", Pt(1, 1), Clockwise},
		{"left turn", Pt(-1, 1), CounterClockwise},
		{"ahead", Pt(0, 2), Colinear},
		{"behind", Pt(0, -3), Colinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.OrientationOfPoint(tt.p); got != tt.want {
				t.Errorf("OrientationOfPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestLine_OrientationOfPointEps(t *testing.T) {
	l := mustNewLine(t, Pt(0, 0), Pt(0, 1))
	p := Pt(1e-12, 2)
	assert.Equal(t, Clockwise, l.OrientationOfPoint(p))
	assert.Equal(t, Colinear, l.OrientationOfPointEps(p, 1e-9))
}

func TestLine_SameSegment(t *testing.T) {
	l := mustNewLine(t, Pt(0, 0), Pt(3, 1))
	assert.True(t, l.SameSegment(l.Reverse()))
	assert.False(t, l.Equal(l.Reverse()))
	assert.Equal(t, l.Canonical(), l.Reverse().Canonical())
}

func TestLine_Intersections(t *testing.T) {
	tests := []struct {
		name       string
		a, b       [2]Point
		wantLine   bool
		wantSeg    bool
		wantCrossP Point
	}{
		{"crossing", [2]Point{Pt(0, 0), Pt(2, 2)}, [2]Point{Pt(0, 2), Pt(2, 0)}, true, true, Pt(1, 1)},
		{"beyond segment", [2]Point{Pt(0, 0), Pt(1, 1)}, [2]Point{Pt(3, 0), Pt(2, 1)}, true, false, Pt(1.5, 1.5)},
		{"parallel", [2]Point{Pt(0, 0), Pt(1, 1)}, [2]Point{Pt(0, 1), Pt(1, 2)}, false, false, Point{}},
		{"coincident", [2]Point{Pt(0, 0), Pt(1, 1)}, [2]Point{Pt(2, 2), Pt(3, 3)}, false, false, Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustNewLine(t, tt.a[0], tt.a[1])
			b := mustNewLine(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.wantLine, a.IntersectsLine(b))
			assert.Equal(t, tt.wantSeg, a.IntersectsSegment(b))
			if p, ok := a.LineIntersection(b); ok {
				assert.InDelta(t, tt.wantCrossP.X, p.X, tolerance)
				assert.InDelta(t, tt.wantCrossP.Y, p.Y, tolerance)
			}
			if _, ok := a.SegmentIntersection(b); ok != tt.wantSeg {
				t.Errorf("SegmentIntersection ok = %v, want %v", ok, tt.wantSeg)
			}
		})
	}
}

// Helpers

func mustNewLine(t *testing.T, a, b Point) Line {
	t.Helper()
	l, err := NewLine(a, b)
	require.NoError(t, err)
	return l
}
