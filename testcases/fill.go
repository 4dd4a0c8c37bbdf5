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

var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   44 * 44,
	},
	{
		Name:   "rectangle_fractional",
		Path:   rectangle(10.5, 10.25, 30.5, 20.75),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   20 * 10.5,
	},
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   0.5 * 44 * 40,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   0.5 * 44 * 40,
	},
	{
		Name:   "star_nonzero",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "star_evenodd",
		Path:   star(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "open_triangle",
		Path:   polyline(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   0.5 * 44 * 40,
	},
	{
		Name:   "diamond",
		Path:   closedPolyline(pt(32, 4), pt(60, 32), pt(32, 60), pt(4, 32)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   2 * 28 * 28,
	},
}
