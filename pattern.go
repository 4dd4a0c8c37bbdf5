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

	"github.com/pkg/errors"
)

// PatternBrush repeats a two-colour tile across the image.
// The tile is anchored at the image origin, so that adjacent fills line up.
type PatternBrush struct {
	Foreground color.Color
	Background color.Color

	// Tile holds one string per row; 'x' marks a foreground pixel and any
	// other byte a background pixel. All rows must have the same length.
	Tile []string
}

// NewApplicator implements the [Brush] interface.
func (b *PatternBrush) NewApplicator(dst *image.RGBA, _ image.Rectangle, _ *Options) (Applicator, error) {
	h := len(b.Tile)
	if h == 0 || len(b.Tile[0]) == 0 {
		return nil, errors.New("raster: empty pattern tile")
	}
	w := len(b.Tile[0])

	fg := straightOf(colorOrTransparent(b.Foreground))
	bg := straightOf(colorOrTransparent(b.Background))
	src := patternSource{
		w:   w,
		h:   h,
		pix: make([]straight, w*h),
	}
	for y, row := range b.Tile {
		if len(row) != w {
			return nil, errors.Errorf("raster: pattern row %d has length %d, want %d", y, len(row), w)
		}
		for x := range w {
			if row[x] == 'x' {
				src.pix[y*w+x] = fg
			} else {
				src.pix[y*w+x] = bg
			}
		}
	}
	return newApplicator(dst, src), nil
}

type patternSource struct {
	w, h int
	pix  []straight
}

func (s patternSource) at(x, y int) straight {
	return s.pix[mod(y, s.h)*s.w+mod(x, s.w)]
}

// mod returns the non-negative remainder of a divided by n > 0.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func colorOrTransparent(c color.Color) color.Color {
	if c == nil {
		return color.Transparent
	}
	return c
}

// Percent10 returns a brush covering 10% of the pixels with fg.
func Percent10(fg, bg color.Color) *PatternBrush {
	return &PatternBrush{Foreground: fg, Background: bg, Tile: []string{
		"x...",
		"....",
		"..x.",
		"....",
	}}
}

// Percent20 returns a brush covering 20% of the pixels with fg.
func Percent20(fg, bg color.Color) *PatternBrush {
	return &PatternBrush{Foreground: fg, Background: bg, Tile: []string{
		"x...",
		"..x.",
		"x...",
		"..x.",
	}}
}

// Horizontal returns a brush drawing horizontal lines in fg, every fourth
// row starting at row 1.
func Horizontal(fg, bg color.Color) *PatternBrush {
	return &PatternBrush{Foreground: fg, Background: bg, Tile: []string{
		".",
		"x",
		".",
		".",
	}}
}

// Min returns a brush drawing horizontal lines in fg, every fourth row
// starting at row 3.
func Min(fg, bg color.Color) *PatternBrush {
	return &PatternBrush{Foreground: fg, Background: bg, Tile: []string{
		".",
		".",
		".",
		"x",
	}}
}

// Vertical returns a brush drawing vertical lines in fg.
func Vertical(fg, bg color.Color) *PatternBrush {
	return &PatternBrush{Foreground: fg, Background: bg, Tile: []string{
		".x..",
	}}
}

// ForwardDiagonal returns a brush drawing diagonal lines in fg, running
// from the top left to the bottom right.
func ForwardDiagonal(fg, bg color.Color) *PatternBrush {
	return &PatternBrush{Foreground: fg, Background: bg, Tile: []string{
		"x...",
		".x..",
		"..x.",
		"...x",
	}}
}

// BackwardDiagonal returns a brush drawing diagonal lines in fg, running
// from the top right to the bottom left.
func BackwardDiagonal(fg, bg color.Color) *PatternBrush {
	return &PatternBrush{Foreground: fg, Background: bg, Tile: []string{
		"...x",
		"..x.",
		".x..",
		"x...",
	}}
}
