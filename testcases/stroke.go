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

import "seehuhn.de/go/pdf/graphics"

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapButt, MiterLimit: 10},
		Area:   44 * 8,
	},
	{
		Name:   "line_square",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapSquare, MiterLimit: 10},
		Area:   52 * 8,
	},
	{
		Name:   "line_round",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 8, Cap: graphics.LineCapRound, MiterLimit: 10},
	},
	{
		Name:   "line_diagonal",
		Path:   polyline(pt(8, 8), pt(56, 56)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, MiterLimit: 10},
	},
	{
		Name:   "corner_miter",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Join: graphics.LineJoinMiter, MiterLimit: 10},
	},
	{
		Name:   "corner_round",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "corner_bevel",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Join: graphics.LineJoinBevel, MiterLimit: 10},
	},
	{
		Name:   "miter_limit_exceeded",
		Path:   polyline(pt(10, 50), pt(32, 10), pt(38, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Join: graphics.LineJoinMiter, MiterLimit: 1.5},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinMiter, MiterLimit: 10},
		Area:   36*36 - 28*28,
	},
	{
		Name:   "zigzag_round",
		Path:   zigzag(6, 58, 32, 12, 6),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 5, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound, MiterLimit: 10},
	},
	{
		Name:   "hairline_dot_round",
		Path:   polyline(pt(32, 32), pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 10, Cap: graphics.LineCapRound, MiterLimit: 10},
	},
}
