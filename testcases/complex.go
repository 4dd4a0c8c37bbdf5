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
package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var complexCases = []TestCase{
	{
		Name:   "letter_o",
		Path:   letterO(32, 32),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "spiral_stroke",
		Path:   spiral(32, 32, 4, 28, 3),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "many_edges",
		Path:   wavyCircle(32, 32, 24, 3, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
}

// letterO returns an upright "O" with an elliptic counter.
func letterO(cx, cy float64) *path.Data {
	p := addEllipse(&path.Data{}, cx, cy, 20, 26, true)
	return addEllipse(p, cx, cy, 11, 18, false)
}

func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(8, 56)).
		LineTo(pt(8, 20)).
		QuadTo(pt(8, 8), pt(20, 8)).
		LineTo(pt(44, 8)).
		CubeTo(pt(60, 8), pt(60, 32), pt(44, 32)).
		LineTo(pt(32, 32)).
		LineTo(pt(56, 56)).
		Close()
}

// spiral returns an open Archimedean spiral, approximated by line
// segments.
func spiral(cx, cy, rMin, rMax, turns float64) *path.Data {
	const steps = 200
	pts := make([]vec.Vec2, 0, steps+1)
	for i := range steps + 1 {
		t := float64(i) / steps
		angle := 2 * math.Pi * turns * t
		r := rMin + (rMax-rMin)*t
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return polyline(pts...)
}

// wavyCircle returns a closed polygon with n vertices, whose radius
// oscillates around r.
func wavyCircle(cx, cy, r, amplitude float64, n int) *path.Data {
	pts := make([]vec.Vec2, 0, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		rr := r + amplitude*math.Sin(7*angle)
		pts = append(pts, pt(cx+rr*math.Cos(angle), cy+rr*math.Sin(angle)))
	}
	return closedPolyline(pts...)
}
