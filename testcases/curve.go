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

import "math"

var curveCases = []TestCase{
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   math.Pi * 25 * 25,
	},
	{
		Name:   "circle_small",
		Path:   circle(8, 8, 3),
		Width:  16,
		Height: 16,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   math.Pi * 28 * 14,
	},
	{
		Name:   "quadratic",
		Path:   quadratic(8, 56, 32, 0, 56, 56).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   2.0 / 3.0 * 48 * 28,
	},
	{
		Name:   "cubic_scurve",
		Path:   cubic(8, 32, 24, -8, 40, 72, 56, 32).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "cubic_loop",
		Path:   cubic(10, 50, 60, 0, 4, 0, 54, 50).Close(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "quadratic_stroked",
		Path:   quadratic(8, 56, 32, 0, 56, 56),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 3, MiterLimit: 10},
	},
	{
		Name:   "circle_stroked",
		Path:   circle(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, MiterLimit: 10},
		Area:   math.Pi * (22*22 - 18*18),
	},
}
