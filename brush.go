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
	"image"
	"image/color"
)

// Brush determines the colours painted by a fill.
type Brush interface {
	// NewApplicator prepares the brush for painting into dst. The bounds
	// are the pixels the fill may touch. The returned Applicator is used
	// by all rows of one fill and closed when the fill is done.
	NewApplicator(dst *image.RGBA, bounds image.Rectangle, opt *Options) (Applicator, error)
}

// Applicator paints one row of coverage values into the destination image.
//
// Apply is called concurrently for different rows of the same fill, so
// it must not modify shared state.
type Applicator interface {
	// Apply blends the brush colour into pixels (x+i, y) for every i with
	// coverage[i] > 0, using coverage[i] times the colour's alpha as the
	// blend weight.
	Apply(coverage []float32, x, y int)

	// Close releases resources held by the applicator.
	Close() error
}

// SolidBrush paints a single colour.
type SolidBrush struct {
	Color color.Color
}

// Solid returns a brush painting the colour c.
func Solid(c color.Color) *SolidBrush {
	return &SolidBrush{Color: c}
}

// NewApplicator implements the [Brush] interface.
func (b *SolidBrush) NewApplicator(dst *image.RGBA, _ image.Rectangle, _ *Options) (Applicator, error) {
	c := b.Color
	if c == nil {
		c = color.Transparent
	}
	return newApplicator(dst, solidSource{c: straightOf(c)}), nil
}

type solidSource struct {
	c straight
}

func (s solidSource) at(int, int) straight {
	return s.c
}

// straight is a colour with non-premultiplied alpha. The colour channels
// range from 0 to 255, alpha ranges from 0 to 1.
type straight struct {
	R, G, B float32
	A       float32
}

// straightOf converts c to non-premultiplied form.
func straightOf(c color.Color) straight {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return straight{}
	}
	fa := float32(a)
	return straight{
		R: 255 * float32(r) / fa,
		G: 255 * float32(g) / fa,
		B: 255 * float32(b) / fa,
		A: fa / 0xffff,
	}
}

// colorSource yields the brush colour at a pixel.
type colorSource interface {
	at(x, y int) straight
}

// applicator is the Applicator shared by the brushes in this package.
// It is generic over the colour source, so that the per-pixel colour
// lookup can be inlined.
type applicator[S colorSource] struct {
	dst *image.RGBA
	src S

	release func() // called by Close, may be nil
}

func newApplicator[S colorSource](dst *image.RGBA, src S) *applicator[S] {
	return &applicator[S]{dst: dst, src: src}
}

// Apply implements the [Applicator] interface.
func (a *applicator[S]) Apply(coverage []float32, x, y int) {
	dst := a.dst
	off := dst.PixOffset(x, y)
	row := dst.Pix[off : off+4*len(coverage)]
	for i, c := range coverage {
		if c <= 0 {
			continue
		}
		blendPixel(row[4*i:4*i+4], a.src.at(x+i, y), c)
	}
}

// Close implements the [Applicator] interface.
func (a *applicator[S]) Close() error {
	if a.release != nil {
		a.release()
		a.release = nil
	}
	return nil
}

// blendPixel composites the colour s with weight coverage*s.A onto the
// premultiplied RGBA pixel p:
//
//	p = p*(1-w) + (s.R, s.G, s.B, 255)*w
func blendPixel(p []uint8, s straight, coverage float32) {
	w := coverage * s.A
	if w <= 0 {
		return
	}
	if w >= 1 {
		p[0] = uint8(s.R + 0.5)
		p[1] = uint8(s.G + 0.5)
		p[2] = uint8(s.B + 0.5)
		p[3] = 255
		return
	}

	inv := 1 - w
	a := uint8(float32(p[3])*inv + 255*w + 0.5)
	p[0] = min(uint8(float32(p[0])*inv+s.R*w+0.5), a)
	p[1] = min(uint8(float32(p[1])*inv+s.G*w+0.5), a)
	p[2] = min(uint8(float32(p[2])*inv+s.B*w+0.5), a)
	p[3] = a
}
