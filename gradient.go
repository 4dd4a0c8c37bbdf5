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

package raster

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"seehuhn.de/go/geom/vec"
)

// GradientStop fixes the colour of a gradient at one position.
// Offset 0 is the start and offset 1 the end of the gradient.
type GradientStop struct {
	Offset float64
	Color  color.Color
}

// LinearGradientBrush paints a colour ramp along the line from Start to
// End, in device coordinates. Beyond the ends the colours of the first
// and last stop are continued.
type LinearGradientBrush struct {
	Start, End vec.Vec2
	Stops      []GradientStop

	// Lab selects interpolation in CIE L*a*b* space instead of sRGB.
	Lab bool
}

// NewApplicator implements the [Brush] interface.
func (b *LinearGradientBrush) NewApplicator(dst *image.RGBA, _ image.Rectangle, _ *Options) (Applicator, error) {
	if len(b.Stops) == 0 {
		return nil, errors.New("raster: gradient without stops")
	}

	stops := slices.Clone(b.Stops)
	for i, s := range stops {
		if math.IsNaN(s.Offset) {
			return nil, errors.Errorf("raster: gradient stop %d has invalid offset", i)
		}
	}
	slices.SortStableFunc(stops, func(a, b GradientStop) int {
		return cmp.Compare(a.Offset, b.Offset)
	})

	src := &gradientSource{start: b.Start}
	dir := b.End.Sub(b.Start)
	if l2 := dir.Dot(dir); l2 > 0 {
		src.dir = dir.Mul(1 / l2)
	}
	for i := range src.lut {
		t := float64(i) / (gradientSteps - 1)
		src.lut[i] = b.colorAt(stops, t)
	}
	return newApplicator(dst, src), nil
}

// colorAt interpolates the colour at position t between the neighbouring
// stops.
func (b *LinearGradientBrush) colorAt(stops []GradientStop, t float64) straight {
	k := len(stops)
	if t <= stops[0].Offset {
		return straightOf(colorOrTransparent(stops[0].Color))
	}
	if t >= stops[k-1].Offset {
		return straightOf(colorOrTransparent(stops[k-1].Color))
	}

	i := 1
	for stops[i].Offset < t {
		i++
	}
	s0, s1 := stops[i-1], stops[i]
	f := 0.0
	if span := s1.Offset - s0.Offset; span > 0 {
		f = (t - s0.Offset) / span
	}

	c0 := straightOf(colorOrTransparent(s0.Color))
	c1 := straightOf(colorOrTransparent(s1.Color))
	k0 := colorful.Color{R: float64(c0.R) / 255, G: float64(c0.G) / 255, B: float64(c0.B) / 255}
	k1 := colorful.Color{R: float64(c1.R) / 255, G: float64(c1.G) / 255, B: float64(c1.B) / 255}

	var mixed colorful.Color
	if b.Lab {
		mixed = k0.BlendLab(k1, f).Clamped()
	} else {
		mixed = k0.BlendRgb(k1, f)
	}
	return straight{
		R: float32(mixed.R * 255),
		G: float32(mixed.G * 255),
		B: float32(mixed.B * 255),
		A: c0.A + float32(f)*(c1.A-c0.A),
	}
}

// gradientSteps is the number of precomputed colours along a gradient.
const gradientSteps = 256

type gradientSource struct {
	start vec.Vec2
	dir   vec.Vec2 // (End-Start) / |End-Start|²
	lut   [gradientSteps]straight
}

func (s *gradientSource) at(x, y int) straight {
	p := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	t := p.Sub(s.start).Dot(s.dir)
	if s.dir == (vec.Vec2{}) {
		t = 1
	}
	switch {
	case !(t > 0):
		t = 0
	case t > 1:
		t = 1
	}
	return s.lut[int(t*(gradientSteps-1)+0.5)]
}
