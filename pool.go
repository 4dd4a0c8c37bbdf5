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
	"math/bits"
	"sync"
)

// floatPool is a free list of float32 buffers, organised in power-of-two
// size classes. It is safe for concurrent use.
type floatPool struct {
	classes [numSizeClasses]sync.Pool
}

// numSizeClasses bounds the pooled buffer sizes to 1<<(numSizeClasses-1)
// elements. Larger requests are allocated directly and not pooled.
const numSizeClasses = 24

// crossingPool holds the scratch buffers for Shape.Scan.
var crossingPool floatPool

// get returns a buffer of length n. The contents are unspecified.
// The buffer should be returned using put once it is no longer used.
func (p *floatPool) get(n int) *[]float32 {
	c := sizeClass(n)
	if c >= numSizeClasses {
		buf := make([]float32, n)
		return &buf
	}
	if v := p.classes[c].Get(); v != nil {
		buf := v.(*[]float32)
		*buf = (*buf)[:n]
		return buf
	}
	buf := make([]float32, n, 1<<c)
	return &buf
}

// put returns a buffer obtained from get to the pool.
func (p *floatPool) put(buf *[]float32) {
	if buf == nil {
		return
	}
	c := cap(*buf)
	if c == 0 || c&(c-1) != 0 {
		return // not allocated by get, let the GC reclaim it
	}
	class := bits.TrailingZeros(uint(c))
	if class >= numSizeClasses {
		return
	}
	p.classes[class].Put(buf)
}

// sizeClass returns the smallest k with 1<<k >= n.
func sizeClass(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
