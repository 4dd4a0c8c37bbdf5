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

// Package testcases holds a catalogue of shapes, fills and strokes used to
// test and benchmark the rasterizer.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// TestCase describes one rendering scenario.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // Fill or Stroke
	CTM    matrix.Matrix // user space to device pixels, zero means identity

	// Area is the expected number of covered pixels, for cases where
	// this is known exactly. Zero means unknown.
	Area float64
}

// Operation is either a Fill or a Stroke.
type Operation interface {
	isOperation()
}

// FillRule selects how the interior of a path is determined.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// Fill paints the interior of the path.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke paints the outline of the path.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64 // nil for solid lines
	DashPhase  float64
}

func (Stroke) isOperation() {}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
