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

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:   "ring_nonzero",
		Path:   ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
	},
	{
		Name:   "donut_nonzero",
		Path:   donut(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   2*30*30 - 16*16,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		Area:   2*30*30 - 2*16*16,
	},
	{
		Name:   "separate_triangles",
		Path:   separateTriangles(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		Area:   2 * 0.5 * 24 * 24,
	},
}

// overlappingRectangles returns two 30x30 squares overlapping in a 16x16
// square, both with the same orientation.
func overlappingRectangles() *path.Data {
	p := rectangle(10, 10, 40, 40)
	return p.
		MoveTo(pt(24, 24)).
		LineTo(pt(54, 24)).
		LineTo(pt(54, 54)).
		LineTo(pt(24, 54)).
		Close()
}

func separateTriangles() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(4, 30)).LineTo(pt(28, 30)).LineTo(pt(4, 6)).Close().
		MoveTo(pt(36, 58)).LineTo(pt(60, 58)).LineTo(pt(60, 34)).Close()
}
