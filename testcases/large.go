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

var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(16, 16, 496, 496),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   480 * 480,
	},
	{
		Name:   "large_concentric_nonzero",
		Path:   concentricSquares(256, 256, 24, 10),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   480 * 480,
	},
	{
		Name:   "large_concentric_evenodd",
		Path:   concentricSquares(256, 256, 24, 10),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "large_grid",
		Path:   grid(16, 16, 512, 512, 4),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
		Area:   256 * 24 * 24,
	},
	{
		Name:   "large_circle",
		Path:   circle(256, 256, 240),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: NonZero},
	},
}
