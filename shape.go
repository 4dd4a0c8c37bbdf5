// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Shape is a region of the device plane which can be filled.
// Device coordinates have the origin at the top-left corner of the
// destination image, with y growing downwards.
//
// A Shape must not change while a fill is in progress, and Scan must be
// safe for concurrent use.
type Shape interface {
	// Bounds returns a rectangle containing the shape. LLx/LLy hold the
	// minimum and URx/URy the maximum coordinates.
	Bounds() rect.Rect

	// MaxIntersections returns an upper bound for the number of values
	// Scan can report for a single horizontal line.
	MaxIntersections() int

	// Scan stores the x-coordinates where the horizontal line at y crosses
	// the shape boundary in buf, in any order, and returns their number.
	// Consecutive pairs of the sorted crossings enclose the interior.
	// Scan must not write past len(buf).
	Scan(y float32, buf []float32) int
}

// Rectangle is an axis-aligned rectangle shape.
type Rectangle struct {
	X0, Y0, X1, Y1 float64
}

// NewRectangle returns the rectangle with top-left corner (x, y) and the
// given size. Negative sizes are normalised.
func NewRectangle(x, y, width, height float64) *Rectangle {
	r := &Rectangle{X0: x, Y0: y, X1: x + width, Y1: y + height}
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Bounds implements the [Shape] interface.
func (r *Rectangle) Bounds() rect.Rect {
	return rect.Rect{LLx: r.X0, LLy: r.Y0, URx: r.X1, URy: r.Y1}
}

// MaxIntersections implements the [Shape] interface.
func (r *Rectangle) MaxIntersections() int {
	return 2
}

// Scan implements the [Shape] interface.
func (r *Rectangle) Scan(y float32, buf []float32) int {
	yy := float64(y)
	if yy < r.Y0 || yy >= r.Y1 || len(buf) < 2 || r.X1 <= r.X0 {
		return 0
	}
	buf[0] = float32(r.X0)
	buf[1] = float32(r.X1)
	return 2
}

// Ellipse is an axis-aligned ellipse shape. Crossings are computed
// analytically, without flattening.
type Ellipse struct {
	CX, CY float64 // centre
	RX, RY float64 // radii, must be positive
}

// NewCircle returns the circle with centre (cx, cy) and radius r.
func NewCircle(cx, cy, r float64) *Ellipse {
	return &Ellipse{CX: cx, CY: cy, RX: r, RY: r}
}

// Bounds implements the [Shape] interface.
func (e *Ellipse) Bounds() rect.Rect {
	return rect.Rect{
		LLx: e.CX - e.RX,
		LLy: e.CY - e.RY,
		URx: e.CX + e.RX,
		URy: e.CY + e.RY,
	}
}

// MaxIntersections implements the [Shape] interface.
func (e *Ellipse) MaxIntersections() int {
	return 2
}

// Scan implements the [Shape] interface.
func (e *Ellipse) Scan(y float32, buf []float32) int {
	if len(buf) < 2 || e.RX <= 0 || e.RY <= 0 {
		return 0
	}
	d := (float64(y) - e.CY) / e.RY
	if d <= -1 || d >= 1 {
		return 0
	}
	hw := e.RX * math.Sqrt(1-d*d)
	buf[0] = float32(e.CX - hw)
	buf[1] = float32(e.CX + hw)
	return 2
}
