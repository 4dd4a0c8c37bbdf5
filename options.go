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

import "runtime"

// Options controls how a shape is converted to coverage. An Options value
// is read-only for the duration of a fill and may be shared between
// concurrent fills.
type Options struct {
	// Antialias enables sub-pixel sampling. If false, every pixel is either
	// fully painted or left untouched, decided at the pixel centre.
	Antialias bool

	// SubpixelDepth is the number of sample rows per pixel row when
	// Antialias is set. Values below 4 are raised to 4.
	SubpixelDepth int

	// Workers limits the number of goroutines used for one fill.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns antialiased options with a sub-pixel depth of 16.
func DefaultOptions() *Options {
	return &Options{
		Antialias:     true,
		SubpixelDepth: defaultSubpixelDepth,
	}
}

// samples returns the number of sample rows per pixel row and the offset
// of the first sample row from the top of the pixel.
func (o *Options) samples() (n int, offset float32) {
	if !o.Antialias {
		return 1, 0.5
	}
	return max(o.SubpixelDepth, minSubpixelDepth), 0
}

// workers returns the effective number of row workers.
func (o *Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

const (
	// defaultSubpixelDepth is the sub-pixel depth used by DefaultOptions.
	defaultSubpixelDepth = 16

	// minSubpixelDepth is the smallest sub-pixel depth used for
	// antialiased output. Configured values below this are clamped.
	minSubpixelDepth = 4

	// defaultFlatness is the default curve flattening tolerance in device
	// pixels. Values of 0.25-1.0 are typical; 0.25 is below the threshold
	// of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit is the default miter limit, matching PDF/PostScript.
	defaultMiterLimit = 10.0
)
