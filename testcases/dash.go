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

var dashCases = []TestCase{
	{
		Name:   "dash_equal",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, MiterLimit: 10, Dash: []float64{8, 8}},
		Area:   32 * 4,
	},
	{
		Name:   "dash_single_element",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, MiterLimit: 10, Dash: []float64{7}},
		Area:   28 * 4,
	},
	{
		Name:   "dash_three_element",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, MiterLimit: 10, Dash: []float64{6, 2, 2}},
	},
	{
		Name:   "dash_phase",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, MiterLimit: 10, Dash: []float64{8, 8}, DashPhase: 4},
		Area:   28 * 4,
	},
	{
		Name:   "dash_phase_negative",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, MiterLimit: 10, Dash: []float64{8, 8}, DashPhase: -4},
	},
	{
		Name:   "dash_zero_round",
		Path:   polyline(pt(8, 32), pt(56, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapRound, MiterLimit: 10, Dash: []float64{0, 12}},
	},
	{
		Name:   "dash_zero_square",
		Path:   polyline(pt(8, 32), pt(56, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 6, Cap: graphics.LineCapSquare, MiterLimit: 10, Dash: []float64{0, 12}},
	},
	{
		Name:   "dash_corner",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Join: graphics.LineJoinRound, MiterLimit: 10, Dash: []float64{20, 6}},
	},
	{
		Name:   "dash_closed_square",
		Path:   rectangle(12, 12, 52, 52),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, MiterLimit: 10, Dash: []float64{30, 10}},
	},
}
