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

// Package raster fills shapes into RGBA images with anti-aliasing.
//
// A [Shape] reports where horizontal lines cross its outline. Fill samples
// every pixel row along several such lines, turns the crossings into
// per-pixel coverage values and hands each row to a [Brush], which blends
// its colours into the destination image. Rows are processed in parallel.
//
// Shapes can be built from paths ([NewPolygon]), or from the outline of
// a stroked path ([Pen.Outline]).
package raster

//go:generate go run ./testcases/render -out testdata/render

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/raster/testcases"
)

// Render draws the test case onto dst using the given brush.
func Render(dst *image.RGBA, tc testcases.TestCase, brush Brush, opt *Options) error {
	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		rule := NonZero
		if op.Rule == testcases.EvenOdd {
			rule = EvenOdd
		}
		return Fill(dst, brush, NewPolygon(tc.Path, rule, ctm, defaultFlatness), opt)

	case testcases.Stroke:
		pen := &Pen{
			Brush:      brush,
			Width:      op.Width,
			Cap:        op.Cap,
			Join:       op.Join,
			MiterLimit: op.MiterLimit,
			Dash:       op.Dash,
			DashPhase:  op.DashPhase,
			CTM:        ctm,
		}
		return Draw(dst, pen, tc.Path, opt)

	default:
		return errors.Errorf("raster: unsupported operation %T", tc.Op)
	}
}

// RenderCoverage renders a test case into a grayscale buffer, in
// row-major order. Each byte represents coverage from 0 (not covered) to
// 255 (fully covered). The buffer must be initialised with zeros.
func RenderCoverage(tc testcases.TestCase, buf []byte, width, height, stride int, opt *Options) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := Render(img, tc, Solid(color.White), opt); err != nil {
		return err
	}
	for y := range height {
		row := img.Pix[y*img.Stride:]
		out := buf[y*stride:]
		for x := range width {
			out[x] = row[4*x+3]
		}
	}
	return nil
}
