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

// sortCrossings sorts the first n elements of buf in place into
// non-decreasing order. Equal values end up next to each other, which the
// coverage accumulator relies on to recognise boundaries touching the
// scanline in a single point.
//
// The inputs are short (bounded by Shape.MaxIntersections), so a plain
// quicksort with the first element as pivot is used.
func sortCrossings(buf []float32, n int) {
	n = min(n, len(buf))
	if n < 2 {
		return
	}
	quickSort(buf, 0, n-1)
}

// quickSort sorts data[lo:hi+1]. The left part is handled recursively,
// the right part by iteration.
func quickSort(data []float32, lo, hi int) {
	for lo < hi {
		p := partition(data, lo, hi)
		quickSort(data, lo, p)
		lo = p + 1
	}
}

// partition is Hoare's partition scheme with data[lo] as the pivot.
// It returns j with lo <= j < hi such that every element of data[lo:j+1]
// is <= every element of data[j+1:hi+1].
func partition(data []float32, lo, hi int) int {
	pivot := data[lo]
	i := lo - 1
	j := hi + 1
	for {
		for {
			i++
			if !(data[i] < pivot) || i >= hi {
				break
			}
		}
		for {
			j--
			if !(data[j] > pivot) || j <= lo {
				break
			}
		}
		if i >= j {
			return j
		}
		data[i], data[j] = data[j], data[i]
	}
}
