// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Circle is a circle with a strictly positive radius. The zero Circle is only
// produced as the circumcircle of a degenerate triangle.
type Circle struct {
	center Point
	radius float64
}

// NewCircle returns ErrInvalidArgument unless radius > 0.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, errors.Wrapf(ErrInvalidArgument, "circle radius %v must be positive", radius)
	}
	return Circle{center: center, radius: radius}, nil
}

func (c Circle) Center() Point {
	return c.center
}

func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) Diameter() float64 {
	return 2 * c.radius
}

func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.radius
}

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) Bounds() Rect {
	r := Pt(c.radius, c.radius)
	return NewRect(c.center.Sub(r), c.center.Add(r))
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return c.center.Distance(p) <= c.radius
}

func (c Circle) Equal(o Circle) bool {
	return c.center.Equal(o.center) && c.radius == o.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%v, r=%v)", c.center, c.radius)
}
