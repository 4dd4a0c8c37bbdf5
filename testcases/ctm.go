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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2, 2).Translate(12, 12),
		Area:   40 * 40,
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
		Area:   40 * 40,
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
		Area:   30 * 30,
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Scale(2.5, 1).Translate(32, 32),
		Area:   math.Pi * 25 * 10,
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-12, -12, 12, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: EvenOdd},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
		Area:   24 * 24,
	},
	{
		Name:   "stroke_scaled",
		Path:   polyline(pt(-10, 0), pt(10, 0)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 2, Cap: graphics.LineCapButt, MiterLimit: 10},
		CTM:    matrix.Scale(2, 2).Translate(32, 32),
		Area:   40 * 4,
	},
	{
		Name:   "round_cap_nonuniform",
		Path:   polyline(pt(-10, 0), pt(10, 0)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 4, Cap: graphics.LineCapRound, MiterLimit: 10},
		CTM:    matrix.Scale(2, 1).RotateDeg(30).Translate(32, 32),
	},
}
