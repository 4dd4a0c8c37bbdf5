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

import "seehuhn.de/go/geom/matrix"

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   rectangle(20, 20, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   24 * 24,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(20.25, 20.25, 44.25, 44.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   24 * 24,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(20.5, 20.5, 44.5, 44.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   24 * 24,
	},
	{
		Name:   "thin_sliver",
		Path:   rectangle(4, 31.8, 60, 32.2),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_offset",
		Path:   rectangle(100000, 100000, 100020, 100020),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Identity.Translate(-100000+22, -100000+22),
		Area:   20 * 20,
	},
	{
		Name:   "partly_outside",
		Path:   rectangle(-20, -20, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   20 * 20,
	},
	{
		Name:   "degenerate_line",
		Path:   polyline(pt(10, 10), pt(54, 10)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
}
