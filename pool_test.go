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

import "testing"

func TestSizeClass(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{1024, 10},
		{1025, 11},
	}
	for _, c := range cases {
		if got := sizeClass(c.n); got != c.want {
			t.Errorf("sizeClass(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestFloatPool(t *testing.T) {
	var p floatPool

	for _, n := range []int{0, 1, 7, 100, 4096} {
		buf := p.get(n)
		if len(*buf) != n {
			t.Errorf("get(%d): len = %d", n, len(*buf))
		}
		if c := cap(*buf); c < n || c&(c-1) != 0 && n > 0 {
			t.Errorf("get(%d): cap = %d", n, c)
		}
		p.put(buf)
	}

	// a returned buffer may be reused for a smaller request of the same class
	buf := p.get(60)
	p.put(buf)
	buf = p.get(33)
	if len(*buf) != 33 || cap(*buf) != 64 {
		t.Errorf("get(33): len = %d, cap = %d", len(*buf), cap(*buf))
	}
	p.put(buf)

	// foreign and nil buffers are ignored
	odd := make([]float32, 3)
	p.put(&odd)
	p.put(nil)
}

func TestFloatPoolHuge(t *testing.T) {
	var p floatPool
	n := 1<<(numSizeClasses-1) + 1
	buf := p.get(n)
	if len(*buf) != n {
		t.Fatalf("len = %d, want %d", len(*buf), n)
	}
	p.put(buf)
}
