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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// rectangle returns the closed axis-aligned rectangle with corners
// (x1, y1) and (x2, y2).
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// polyline returns the open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, v := range pts {
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p
}

// closedPolyline returns the closed path through the given points.
func closedPolyline(pts ...vec.Vec2) *path.Data {
	return polyline(pts...).Close()
}

// star returns a self-intersecting five-pointed star, drawn by connecting
// every second vertex of a regular pentagon. Its centre has winding
// number two.
func star(cx, cy, r float64) *path.Data {
	var pts []vec.Vec2
	for i := range 5 {
		angle := float64(2*i)*2*math.Pi/5 - math.Pi/2
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return closedPolyline(pts...)
}

// addEllipse appends a closed ellipse made of four cubic Bézier curves.
// The ellipse is traversed clockwise on screen if cw is set.
func addEllipse(p *path.Data, cx, cy, rx, ry float64, cw bool) *path.Data {
	kx, ky := rx*kappa, ry*kappa
	s := 1.0
	if !cw {
		s = -1
	}
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+s*ky), pt(cx+kx, cy+s*ry), pt(cx, cy+s*ry)).
		CubeTo(pt(cx-kx, cy+s*ry), pt(cx-rx, cy+s*ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-s*ky), pt(cx-kx, cy-s*ry), pt(cx, cy-s*ry)).
		CubeTo(pt(cx+kx, cy-s*ry), pt(cx+rx, cy-s*ky), pt(cx+rx, cy)).
		Close()
}

func circle(cx, cy, r float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, r, r, true)
}

func ellipse(cx, cy, rx, ry float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, rx, ry, true)
}

// ring returns two concentric circles with the same orientation. The
// hole is filled with the nonzero rule, but not with the even-odd rule.
func ring(cx, cy, outer, inner float64) *path.Data {
	p := addEllipse(&path.Data{}, cx, cy, outer, outer, true)
	return addEllipse(p, cx, cy, inner, inner, true)
}

// donut returns two concentric circles with opposite orientation, so
// that both fill rules leave the hole empty.
func donut(cx, cy, outer, inner float64) *path.Data {
	p := addEllipse(&path.Data{}, cx, cy, outer, outer, true)
	return addEllipse(p, cx, cy, inner, inner, false)
}

func quadratic(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

func cubic(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// grid returns rows*cols rectangles tiling a width*height area, separated
// by the given gap.
func grid(rows, cols int, width, height, gap float64) *path.Data {
	cw := width / float64(cols)
	ch := height / float64(rows)
	p := &path.Data{}
	for i := range rows {
		for j := range cols {
			x1 := float64(j)*cw + gap
			y1 := float64(i)*ch + gap
			x2 := float64(j+1)*cw - gap
			y2 := float64(i+1)*ch - gap
			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}

// concentricSquares returns n nested squares around (cx, cy), all with
// the same orientation.
func concentricSquares(cx, cy, step float64, n int) *path.Data {
	p := &path.Data{}
	for i := 1; i <= n; i++ {
		d := float64(i) * step
		p = p.
			MoveTo(pt(cx-d, cy-d)).
			LineTo(pt(cx+d, cy-d)).
			LineTo(pt(cx+d, cy+d)).
			LineTo(pt(cx-d, cy+d)).
			Close()
	}
	return p
}

// zigzag returns an open path alternating between two heights.
func zigzag(x1, x2, y, amplitude float64, teeth int) *path.Data {
	pts := make([]vec.Vec2, 0, teeth+1)
	for i := range teeth + 1 {
		x := x1 + (x2-x1)*float64(i)/float64(teeth)
		dy := amplitude
		if i%2 == 1 {
			dy = -amplitude
		}
		pts = append(pts, pt(x, y+dy))
	}
	return polyline(pts...)
}
