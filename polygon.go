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
	"math"
	"slices"
	"strconv"
	"sync"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule decides which points of a self-intersecting or nested outline
// belong to the interior.
type FillRule int

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills points which are enclosed an odd number of times.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(" + strconv.Itoa(int(r)) + ")"
	}
}

// edge is a non-horizontal line segment in device coordinates.
// It covers the half-open y-range [yMin, yMax).
type edge struct {
	yMin, yMax float64
	xTop       float64 // x at yMin
	dxdy       float64
	dir        int8 // +1 if the segment runs towards larger y, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.xTop + (y-e.yMin)*e.dxdy
}

// Polygon is a [Shape] bounded by straight edges, typically obtained by
// flattening a path.
//
// A Polygon is immutable and can be filled from several goroutines at once.
type Polygon struct {
	Rule FillRule

	edges  []edge // sorted by yMin
	bounds rect.Rect
}

// NewPolygon flattens the path d into a polygon. The matrix ctm maps path
// coordinates to device pixels; the zero matrix is treated as the
// identity. Curves are approximated to within flatness device pixels, a
// non-positive value selects the default of 0.25.
//
// Open subpaths are closed implicitly.
func NewPolygon(d *path.Data, rule FillRule, ctm matrix.Matrix, flatness float64) *Polygon {
	b := newEdgeBuilder(ctm, flatness)
	if d != nil {
		b.addPath(d)
	}
	return b.polygon(rule)
}

// PolygonFromPoints returns the closed polygon through the given device
// space points.
func PolygonFromPoints(rule FillRule, pts ...vec.Vec2) *Polygon {
	b := newEdgeBuilder(matrix.Identity, defaultFlatness)
	b.addLoop(pts)
	return b.polygon(rule)
}

// Bounds implements the [Shape] interface.
func (p *Polygon) Bounds() rect.Rect {
	return p.bounds
}

// MaxIntersections implements the [Shape] interface.
func (p *Polygon) MaxIntersections() int {
	return len(p.edges)
}

// Scan implements the [Shape] interface.
//
// A vertex shared by an edge ending and an edge starting at y is counted
// once. A local extremum at y is counted twice or not at all, so that a
// sample line touching the outline does not change inside/outside state.
func (p *Polygon) Scan(y float32, buf []float32) int {
	yy := float64(y)
	if p.Rule == NonZero {
		return p.scanNonZero(yy, buf)
	}

	n := 0
	for i := range p.edges {
		e := &p.edges[i]
		if e.yMin > yy {
			break
		}
		if yy >= e.yMax {
			continue
		}
		if n >= len(buf) {
			break
		}
		buf[n] = float32(e.xAt(yy))
		n++
	}
	return n
}

type windingCrossing struct {
	x   float64
	dir int8
}

var windingPool = sync.Pool{
	New: func() any {
		buf := make([]windingCrossing, 0, 64)
		return &buf
	},
}

// scanNonZero reports only the crossings where the winding number changes
// between zero and non-zero, so that the pairs of sorted crossings
// enclose the non-zero regions.
func (p *Polygon) scanNonZero(y float64, buf []float32) int {
	bufp := windingPool.Get().(*[]windingCrossing)
	cc := (*bufp)[:0]
	for i := range p.edges {
		e := &p.edges[i]
		if e.yMin > y {
			break
		}
		if y >= e.yMax {
			continue
		}
		cc = append(cc, windingCrossing{x: e.xAt(y), dir: e.dir})
	}
	slices.SortFunc(cc, func(a, b windingCrossing) int {
		return cmp.Compare(a.x, b.x)
	})

	n := 0
	winding := 0
	for _, c := range cc {
		before := winding
		winding += int(c.dir)
		if (before == 0) == (winding == 0) {
			continue
		}
		if n >= len(buf) {
			break
		}
		buf[n] = float32(c.x)
		n++
	}

	*bufp = cc[:0]
	windingPool.Put(bufp)
	return n
}

// edgeBuilder collects the device-space edges of a polygon.
type edgeBuilder struct {
	ctm      matrix.Matrix
	flatness float64

	edges []edge
	bbox  rect.Rect
}

func newEdgeBuilder(ctm matrix.Matrix, flatness float64) *edgeBuilder {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	if !(flatness > 0) {
		flatness = defaultFlatness
	}
	return &edgeBuilder{ctm: ctm, flatness: flatness}
}

// polygon returns the polygon made of the collected edges.
func (b *edgeBuilder) polygon(rule FillRule) *Polygon {
	slices.SortStableFunc(b.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin, b.yMin)
	})
	p := &Polygon{Rule: rule, edges: b.edges}
	if len(b.edges) > 0 {
		p.bounds = b.bbox
	}
	return p
}

// addPath adds the edges of all subpaths of d.
func (b *edgeBuilder) addPath(d *path.Data) {
	var current, start vec.Vec2
	open := false

	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				b.addEdge(current, start)
			}
			current = d.Coords[k]
			start = current
			open = true
			k++

		case path.CmdLineTo:
			b.addEdge(current, d.Coords[k])
			current = d.Coords[k]
			open = true
			k++

		case path.CmdQuadTo:
			b.flattenQuadratic(current, d.Coords[k], d.Coords[k+1], b.addEdge)
			current = d.Coords[k+1]
			open = true
			k += 2

		case path.CmdCubeTo:
			b.flattenCubic(current, d.Coords[k], d.Coords[k+1], d.Coords[k+2], b.addEdge)
			current = d.Coords[k+2]
			open = true
			k += 3

		case path.CmdClose:
			if current != start {
				b.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		b.addEdge(current, start)
	}
}

// addLoop adds the closed polygon through the given user-space points.
func (b *edgeBuilder) addLoop(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	for i := 1; i < len(pts); i++ {
		b.addEdge(pts[i-1], pts[i])
	}
	b.addEdge(pts[len(pts)-1], pts[0])
}

// addEdge transforms the user-space segment p0-p1 to device space and
// records it. Horizontal segments never cross a sample line and are
// dropped.
func (b *edgeBuilder) addEdge(p0, p1 vec.Vec2) {
	m := &b.ctm
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if !(math.Abs(dy) >= horizontalEdgeThreshold) {
		return
	}

	e := edge{dxdy: (x1 - x0) / dy, dir: 1}
	if dy > 0 {
		e.yMin, e.yMax, e.xTop = y0, y1, x0
	} else {
		e.yMin, e.yMax, e.xTop = y1, y0, x1
		e.dir = -1
	}

	if len(b.edges) == 0 {
		b.bbox = rect.Rect{LLx: min(x0, x1), LLy: e.yMin, URx: max(x0, x1), URy: e.yMax}
	} else {
		b.bbox.LLx = min(b.bbox.LLx, x0, x1)
		b.bbox.URx = max(b.bbox.URx, x0, x1)
		b.bbox.LLy = min(b.bbox.LLy, e.yMin)
		b.bbox.URy = max(b.bbox.URy, e.yMax)
	}
	b.edges = append(b.edges, e)
}

// transformLinear applies the linear part of the CTM to v.
func (b *edgeBuilder) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: b.ctm[0]*v.X + b.ctm[2]*v.Y,
		Y: b.ctm[1]*v.X + b.ctm[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and calls emit for each of them. The points are in user
// space, the number of segments is chosen from the device-space error.
func (b *edgeBuilder) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// the distance between curve and chord is at most |p0 - 2p1 + p2|/4
	dev := b.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()

	n := 1
	if dev > b.flatness {
		n = int(math.Ceil(math.Sqrt(dev / b.flatness)))
	}
	n = min(n, maxCurveSegments)

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's formula for the number of segments.
func (b *edgeBuilder) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := b.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := b.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * b.flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	n = min(n, maxCurveSegments)

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// horizontalEdgeThreshold is the smallest vertical extent, in device
	// pixels, for an edge to be kept.
	horizontalEdgeThreshold = 1e-10

	// maxCurveSegments bounds the number of line segments per curve, so
	// that degenerate control points cannot exhaust memory.
	maxCurveSegments = 1 << 16
)
