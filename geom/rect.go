// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Rect is an axis-aligned rectangle. It is normalised on construction so that
// Top >= Bottom and Right >= Left whatever corners were supplied.
type Rect struct {
	r r2.Rect
}

// NewRect returns the rectangle spanned by two opposite corners, in any order.
// The result may have zero width or height.
func NewRect(a, b Point) Rect {
	return Rect{r: r2.RectFromPoints(r2.Point(a), r2.Point(b))}
}

// NewRectFromSize returns the rectangle [0, width] x [0, height]. Width and
// height must be positive.
func NewRectFromSize(width, height float64) (Rect, error) {
	if !(width > 0) || !(height > 0) {
		return Rect{}, errors.Wrapf(ErrInvalidArgument, "plane size %vx%v must be positive", width, height)
	}
	return NewRect(Pt(0, height), Pt(width, 0)), nil
}

func (r Rect) Left() float64   { return r.r.X.Lo }
func (r Rect) Right() float64  { return r.r.X.Hi }
func (r Rect) Bottom() float64 { return r.r.Y.Lo }
func (r Rect) Top() float64    { return r.r.Y.Hi }

func (r Rect) TopLeft() Point     { return Pt(r.Left(), r.Top()) }
func (r Rect) TopRight() Point    { return Pt(r.Right(), r.Top()) }
func (r Rect) BottomLeft() Point  { return Pt(r.Left(), r.Bottom()) }
func (r Rect) BottomRight() Point { return Pt(r.Right(), r.Bottom()) }

func (r Rect) Width() float64 {
	return r.r.X.Length()
}

func (r Rect) Height() float64 {
	return r.r.Y.Length()
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

func (r Rect) Perimeter() float64 {
	return 2 * (r.Width() + r.Height())
}

func (r Rect) Center() Point {
	return Point(r.r.Center())
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	return r.r.ContainsPoint(r2.Point(p))
}

// Triangles splits r along its TopLeft-BottomRight diagonal into two
// clockwise triangles that exactly cover it. Degenerate rectangles return
// ErrInvalidGeometry.
func (r Rect) Triangles() ([2]Triangle, error) {
	upper, err := NewTriangle(r.TopLeft(), r.TopRight(), r.BottomRight())
	if err != nil {
		return [2]Triangle{}, err
	}
	lower, err := NewTriangle(r.TopLeft(), r.BottomRight(), r.BottomLeft())
	if err != nil {
		return [2]Triangle{}, err
	}
	return [2]Triangle{upper, lower}, nil
}

func (r Rect) Equal(o Rect) bool {
	return r.TopLeft().Equal(o.TopLeft()) && r.BottomRight().Equal(o.BottomRight())
}

func (r Rect) String() string {
	return fmt.Sprintf("rect(%v, %v)", r.TopLeft(), r.BottomRight())
}
