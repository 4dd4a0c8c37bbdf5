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

import "math"

// Coverage accumulation model:
//
// A pixel row y is sampled along n horizontal lines
//   sy = y + offset + i/n,   i = 0, ..., n-1
// where n = 1 and offset = 0.5 without antialiasing (the pixel centre),
// and n = SubpixelDepth and offset = 0 with antialiasing.
//
// Along each sample line the sorted crossings are taken in pairs
// (enter, exit). Each pair adds weight w = 1/n times the covered length
// to the pixels it overlaps:
//   pixel floor(enter):               w * (floor(enter)+1 - enter)
//   pixels strictly in between:       w
//   pixel floor(exit):                w * (exit - floor(exit))
// or w * (exit - enter) if both ends fall into the same pixel. The
// contributions of one pair therefore add up to w * (exit - enter), so
// adjacent spans meet without seams or overlaps.
//
// Coincident crossings form empty pairs. This makes a boundary which
// touches the sample line in a single point leave the inside/outside
// state unchanged.

// scanline accumulates coverage for one destination row.
// A scanline is owned by a single goroutine.
type scanline struct {
	cov []float32 // coverage of pixels minX, ..., maxX-1

	minX, maxX int

	n         int     // sample lines per pixel row
	offset    float32 // offset of the first sample line
	step      float32 // distance between sample lines
	weight    float64 // contribution of one sample line
	antialias bool

	// dirty is set once any pixel has received coverage since the last
	// reset, so that clean buffers are not cleared again.
	dirty bool
}

// newScanline allocates a coverage buffer for the pixel columns
// minX, ..., maxX-1.
func newScanline(minX, maxX int, opt *Options) *scanline {
	n, offset := opt.samples()
	return &scanline{
		cov:       make([]float32, maxX-minX),
		minX:      minX,
		maxX:      maxX,
		n:         n,
		offset:    offset,
		step:      1 / float32(n),
		weight:    1 / float64(n),
		antialias: opt.Antialias,
	}
}

// reset sets all coverage values to zero.
func (s *scanline) reset() {
	if s.dirty {
		clear(s.cov)
		s.dirty = false
	}
}

// accumulate computes the coverage of row y by the given shape.
// buf is scratch space for the crossings of one sample line; a shape
// reporting more crossings than fit into buf is truncated to len(buf).
// After the call, s.dirty reports whether any pixel is covered.
func (s *scanline) accumulate(shape Shape, buf []float32, y int) {
	s.reset()

	for i := range s.n {
		sy := float32(y) + s.offset + float32(i)*s.step
		count := shape.Scan(sy, buf)
		if count <= 0 {
			continue
		}
		count = min(count, len(buf))
		sortCrossings(buf, count)

		// an unpaired last crossing is ignored
		for k := 0; k+1 < count; k += 2 {
			s.addSpan(buf[k], buf[k+1])
		}
	}

	if !s.dirty {
		return
	}
	if s.antialias {
		for i, c := range s.cov {
			if c > 1 {
				s.cov[i] = 1
			}
		}
		return
	}

	// without antialiasing, pixels are either in or out
	covered := false
	for i, c := range s.cov {
		if c >= 0.5 {
			s.cov[i] = 1
			covered = true
		} else {
			s.cov[i] = 0
		}
	}
	s.dirty = covered
}

// addSpan adds the coverage of the interval [enter, exit) on one sample
// line. The interval is clipped to the columns of the scanline.
func (s *scanline) addSpan(enter, exit float32) {
	x0 := max(float64(enter), float64(s.minX))
	x1 := min(float64(exit), float64(s.maxX))
	if !(x1 > x0) {
		return
	}

	w := s.weight
	i0 := int(math.Floor(x0))
	i1 := int(math.Floor(x1))
	cov := s.cov
	off := s.minX

	if i0 == i1 {
		cov[i0-off] += float32(w * (x1 - x0))
		s.dirty = true
		return
	}

	cov[i0-off] += float32(w * (float64(i0+1) - x0))
	full := float32(w)
	for i := i0 + 1; i < i1; i++ {
		cov[i-off] += full
	}
	// if exit lies on the right edge of the scanline, i1 == maxX and the
	// remaining fraction is zero
	if i1 < s.maxX {
		cov[i1-off] += float32(w * (x1 - float64(i1)))
	}
	s.dirty = true
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}
