// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom implements planar geometric primitives, the helpers shared
// between them and a Bowyer-Watson Delaunay kernel.
//
// All types are immutable values: derived quantities are computed when a value
// is constructed and never change afterwards, so values may be copied and
// shared between goroutines freely. The coordinate system is y-up, so
// "clockwise" means clockwise when X grows to the right and Y grows upwards.
package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Point is a position or vector in the plane.
type Point r2.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point(r2.Point(p).Add(r2.Point(q)))
}

func (p Point) Sub(q Point) Point {
	return Point(r2.Point(p).Sub(r2.Point(q)))
}

func (p Point) Mul(m float64) Point {
	return Point(r2.Point(p).Mul(m))
}

func (p Point) Dot(q Point) float64 {
	return r2.Point(p).Dot(r2.Point(q))
}

// Cross returns the z component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return r2.Point(p).Cross(r2.Point(q))
}

func (p Point) Magnitude() float64 {
	return r2.Point(p).Norm()
}

func (p Point) MagnitudeSquared() float64 {
	return p.Dot(p)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

func (p Point) DistanceSquared(q Point) float64 {
	return p.Sub(q).MagnitudeSquared()
}

// Normalize returns the unit vector in the direction of p, or the zero point
// if p is the zero point.
func (p Point) Normalize() Point {
	return Point(r2.Point(p).Normalize())
}

// AngleTo returns the direction of q as seen from p, in (-π, π].
func (p Point) AngleTo(q Point) s1.Angle {
	d := q.Sub(p)
	return s1.Angle(math.Atan2(d.Y, d.X)) * s1.Radian
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
