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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Pen describes how the outline of a path is stroked.
type Pen struct {
	// Brush paints the stroke.
	Brush Brush

	// Width is the line width in user-space units.
	Width float64

	// Cap is the style used at the ends of open subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join is the style used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio of miter length to line width before
	// a miter join is replaced by a bevel. Values below 1 select the
	// default of 10.
	MiterLimit float64

	// Dash gives alternating on/off lengths in user-space units.
	// A nil slice, or a pattern without positive entries, draws solid lines.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	// CTM maps user space to device pixels. The zero matrix is treated as
	// the identity.
	CTM matrix.Matrix

	// Flatness is the curve approximation tolerance in device pixels.
	// Zero selects the default of 0.25.
	Flatness float64
}

// NewPen returns a solid pen with butt caps and miter joins.
func NewPen(b Brush, width float64) *Pen {
	return &Pen{
		Brush:      b,
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		CTM:        matrix.Identity,
	}
}

// Outline returns the region covered by stroking d with the pen, as a
// polygon using the nonzero rule. The result is nil if the stroke is
// empty or the pen width is not positive.
func (p *Pen) Outline(d *path.Data) *Polygon {
	if d == nil || !(p.Width > 0) {
		return nil
	}

	s := newStroker(p)
	subpaths, dots := s.flatten(d)

	if s.cap == graphics.LineCapRound {
		for _, pt := range dots {
			s.begin()
			s.addArc(pt, s.d, vec.Vec2{X: 1}, 2*math.Pi, true)
			s.end()
		}
	}

	if pattern, ok := validDash(p.Dash); ok {
		subpaths = dashSubpaths(subpaths, pattern, p.DashPhase)
	}

	for _, sp := range subpaths {
		switch {
		case len(sp.segs) == 1 && sp.segs[0].a == sp.segs[0].b:
			s.dot(&sp.segs[0])
		case sp.closed:
			s.strokeClosed(sp.segs)
		default:
			s.strokeOpen(sp.segs)
		}
	}

	poly := s.edges.polygon(NonZero)
	if poly.MaxIntersections() == 0 {
		return nil
	}
	return poly
}

// validDash reports whether the pattern describes a dashed line.
func validDash(pattern []float64) ([]float64, bool) {
	total := 0.0
	for _, x := range pattern {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, false
		}
		total += x
	}
	return pattern, total > 0
}

// segment is a straight piece of a flattened path, in user space.
// Only dashing produces zero-length segments with a == b; these keep the
// direction of the underlying path.
type segment struct {
	a, b vec.Vec2
	t    vec.Vec2 // unit tangent from a to b
	n    vec.Vec2 // t rotated by 90 degrees counter-clockwise
}

func (s *segment) reversed() segment {
	return segment{a: s.b, b: s.a, t: s.t.Mul(-1), n: s.n.Mul(-1)}
}

// at returns the point at distance dist from a.
func (s *segment) at(dist float64) vec.Vec2 {
	return s.a.Add(s.t.Mul(dist))
}

type subpath struct {
	segs   []segment
	closed bool
}

// stroker builds the outline polygons of a stroke. The outline of each
// subpath or dash is collected in pts and then added to edges.
type stroker struct {
	d          float64 // half the line width
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64
	flatness   float64

	edges *edgeBuilder
	pts   []vec.Vec2
}

func newStroker(p *Pen) *stroker {
	miterLimit := p.MiterLimit
	if !(miterLimit >= 1) {
		miterLimit = defaultMiterLimit
	}
	edges := newEdgeBuilder(p.CTM, p.Flatness)
	return &stroker{
		d:          p.Width / 2,
		cap:        p.Cap,
		join:       p.Join,
		miterLimit: miterLimit,
		flatness:   edges.flatness,
		edges:      edges,
	}
}

func (s *stroker) begin() {
	s.pts = s.pts[:0]
}

func (s *stroker) end() {
	s.edges.addLoop(s.pts)
}

func (s *stroker) add(pts ...vec.Vec2) {
	s.pts = append(s.pts, pts...)
}

// flatten splits d into subpaths of straight segments. Subpaths which
// contain drawing operations but no segment of positive length are
// returned as dots.
func (s *stroker) flatten(d *path.Data) (subpaths []subpath, dots []vec.Vec2) {
	var cur []segment
	var current, start vec.Vec2
	inSubpath := false
	drawn := false

	addSeg := func(a, b vec.Vec2) {
		delta := b.Sub(a)
		l := delta.Length()
		if l < zeroLengthThreshold {
			return
		}
		t := delta.Mul(1 / l)
		cur = append(cur, segment{a: a, b: b, t: t, n: vec.Vec2{X: -t.Y, Y: t.X}})
	}
	finish := func(closed bool) {
		switch {
		case len(cur) > 0:
			subpaths = append(subpaths, subpath{segs: cur, closed: closed})
		case drawn || closed:
			dots = append(dots, start)
		}
		cur = nil
		drawn = false
	}

	k := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				finish(false)
			}
			current = d.Coords[k]
			start = current
			inSubpath = true
			k++

		case path.CmdLineTo:
			if inSubpath {
				drawn = true
				addSeg(current, d.Coords[k])
				current = d.Coords[k]
			}
			k++

		case path.CmdQuadTo:
			if inSubpath {
				drawn = true
				s.edges.flattenQuadratic(current, d.Coords[k], d.Coords[k+1], addSeg)
				current = d.Coords[k+1]
			}
			k += 2

		case path.CmdCubeTo:
			if inSubpath {
				drawn = true
				s.edges.flattenCubic(current, d.Coords[k], d.Coords[k+1], d.Coords[k+2], addSeg)
				current = d.Coords[k+2]
			}
			k += 3

		case path.CmdClose:
			if inSubpath {
				if current != start {
					addSeg(current, start)
				}
				finish(true)
				current = start
				inSubpath = false
			}
		}
	}
	if inSubpath {
		finish(false)
	}
	return subpaths, dots
}

// strokeOpen adds the outline of an open subpath: start cap, the +n side
// forwards, end cap and the -n side backwards.
func (s *stroker) strokeOpen(segs []segment) {
	first := &segs[0]
	last := &segs[len(segs)-1]

	s.begin()
	s.addCap(first.a, first.t.Mul(-1))
	s.side(segs, false)
	s.addCap(last.b, last.t)
	s.side(reverse(segs), false)
	s.end()
}

// strokeClosed adds the outline of a closed subpath as two rings of
// opposite orientation, one on either side of the path.
func (s *stroker) strokeClosed(segs []segment) {
	s.begin()
	s.side(segs, true)
	s.end()

	s.begin()
	s.side(reverse(segs), true)
	s.end()
}

// dot adds the mark left by a zero-length dash.
func (s *stroker) dot(seg *segment) {
	switch s.cap {
	case graphics.LineCapRound:
		s.begin()
		s.addArc(seg.a, s.d, vec.Vec2{X: 1}, 2*math.Pi, true)
		s.end()
	case graphics.LineCapSquare:
		s.begin()
		s.addSquare(seg.a, seg.t)
		s.end()
	}
}

func reverse(segs []segment) []segment {
	res := make([]segment, len(segs))
	for i := range segs {
		res[len(segs)-1-i] = segs[i].reversed()
	}
	return res
}

// side adds the offset line on the +n side of segs. Walking the reversed
// segments gives the -n side of the original path.
func (s *stroker) side(segs []segment, closed bool) {
	d := s.d
	if !closed {
		s.add(segs[0].a.Add(segs[0].n.Mul(d)))
	}
	for i := 0; i+1 < len(segs); i++ {
		s.corner(&segs[i], &segs[i+1])
	}
	last := &segs[len(segs)-1]
	if closed {
		s.corner(last, &segs[0])
	} else {
		s.add(last.b.Add(last.n.Mul(d)))
	}
}

// corner adds the outline points on the +n side where seg ends and next
// begins.
func (s *stroker) corner(seg, next *segment) {
	d := s.d
	P := seg.b
	sinTheta := cross(seg.t, next.t)

	switch {
	case math.Abs(sinTheta) < collinearityThreshold:
		s.add(P.Add(seg.n.Mul(d)), next.a.Add(next.n.Mul(d)))

	case sinTheta > 0:
		// turning towards +n, this is the inner side of the corner
		if q, ok := innerIntersection(P, seg.t, next.t, d); ok {
			s.add(q)
		} else {
			s.add(P.Add(seg.n.Mul(d)), P.Add(next.n.Mul(d)))
		}

	default:
		s.add(P.Add(seg.n.Mul(d)))
		s.addJoin(P, seg.t, next.t)
		s.add(next.a.Add(next.n.Mul(d)))
	}
}

// innerIntersection returns the point where the +n offset lines of two
// segments meeting at P intersect.
func innerIntersection(P, t1, t2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cosTheta := t1.Dot(t2)
	if cosTheta > 1-1e-9 {
		return vec.Vec2{}, false
	}
	cosHalf := math.Sqrt((1 + cosTheta) / 2)
	if cosHalf < 1e-9 {
		return vec.Vec2{}, false
	}

	bisector := vec.Vec2{X: -t1.Y, Y: t1.X}.Add(vec.Vec2{X: -t2.Y, Y: t2.X})
	l := bisector.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(bisector.Mul(d / (l * cosHalf))), true
}

// addJoin adds the join on the outer (+n) side of a corner at P, where the
// direction changes from t1 to t2.
func (s *stroker) addJoin(P, t1, t2 vec.Vec2) {
	d := s.d
	cosTheta := t1.Dot(t2)
	sinTheta := cross(t1, t2)
	if math.Abs(sinTheta) < collinearityThreshold {
		return
	}

	if cosTheta < cuspCosineThreshold {
		// the path doubles back on itself
		s.addCap(P, t1)
		s.addCap(P, t2.Mul(-1))
		return
	}

	n1 := vec.Vec2{X: -t1.Y, Y: t1.X}
	switch s.join {
	case graphics.LineJoinMiter:
		// the miter length relative to the line width is 1/cos(theta/2)
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= s.miterLimit+miterEpsilon {
			bisector := n1.Add(vec.Vec2{X: -t2.Y, Y: t2.X})
			if l := bisector.Length(); l > zeroLengthThreshold {
				s.add(P.Add(bisector.Mul(d / (l * cosHalf))))
			}
		}

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cosTheta)))
		if sinTheta < 0 {
			angle = -angle
		}
		s.addArc(P, d, n1, angle, false)
	}
}

// addCap adds a line cap at P, where t points away from the line.
func (s *stroker) addCap(P, t vec.Vec2) {
	d := s.d
	n := vec.Vec2{X: -t.Y, Y: t.X}

	switch s.cap {
	case graphics.LineCapSquare:
		ext := P.Add(t.Mul(d))
		s.add(ext.Add(n.Mul(d)), ext.Sub(n.Mul(d)))
	case graphics.LineCapRound:
		s.addArc(P, d, n, -math.Pi, true)
	}
}

// addSquare adds the corners of a square of side 2d, centred at c and
// aligned with t.
func (s *stroker) addSquare(c, t vec.Vec2) {
	d := s.d
	n := vec.Vec2{X: -t.Y, Y: t.X}
	s.add(
		c.Add(t.Mul(d)).Add(n.Mul(d)),
		c.Add(t.Mul(d)).Sub(n.Mul(d)),
		c.Sub(t.Mul(d)).Sub(n.Mul(d)),
		c.Sub(t.Mul(d)).Add(n.Mul(d)),
	)
}

// addArc adds points along a circular arc around center, starting in
// direction dir and sweeping the given angle (positive is
// counter-clockwise). The number of points depends on the device-space
// radius.
func (s *stroker) addArc(center vec.Vec2, radius float64, dir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		s.edges.transformLinear(vec.Vec2{X: radius}).Length(),
		s.edges.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius >= s.flatness {
		// a chord spanning angle a deviates from the arc by r*(1-cos(a/2))
		step := 2 * math.Acos(1-s.flatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		s.add(center.Add(vec.Vec2{
			X: dir.X*cos - dir.Y*sin,
			Y: dir.X*sin + dir.Y*cos,
		}.Mul(radius)))
	}
}

// dashSubpaths cuts the subpaths into dashes. All dashes are open. For a
// closed subpath which starts and ends inside a dash, the last and first
// dash are joined.
func dashSubpaths(subpaths []subpath, pattern []float64, phase float64) []subpath {
	total := 0.0
	for _, x := range pattern {
		total += x
	}
	if len(pattern)%2 == 1 {
		total *= 2
	}
	phase = math.Mod(phase, total)
	if phase < 0 {
		phase += total
	}
	length := func(i int) float64 { return pattern[i%len(pattern)] }

	var res []subpath
	for _, sp := range subpaths {
		segs := sp.segs

		idx := 0
		dist := phase
		for dist > 0 && dist >= length(idx) && idx < 2*len(pattern) {
			dist -= length(idx)
			idx++
		}
		remaining := length(idx) - dist
		on := idx%2 == 0

		var dashes [][]segment
		if on && remaining == 0 {
			dashes = append(dashes, []segment{{a: segs[0].a, b: segs[0].a, t: segs[0].t, n: segs[0].n}})
			idx++
			remaining = length(idx)
			on = idx%2 == 0
		}
		startedOn := on
		firstLoopDash := len(dashes)

		var cur []segment
		k, pos := 0, 0.0
		for k < len(segs) {
			seg := &segs[k]
			segLen := seg.b.Sub(seg.a).Length()

			if remaining >= segLen-pos {
				if on && segLen-pos > zeroLengthThreshold {
					cur = append(cur, segment{a: seg.at(pos), b: seg.b, t: seg.t, n: seg.n})
				}
				remaining -= segLen - pos
				k++
				pos = 0
				continue
			}

			end := pos + remaining
			if on {
				a, b := seg.at(pos), seg.at(end)
				if b.Sub(a).Length() > zeroLengthThreshold {
					cur = append(cur, segment{a: a, b: b, t: seg.t, n: seg.n})
				} else if len(cur) == 0 {
					cur = append(cur, segment{a: a, b: a, t: seg.t, n: seg.n})
				}
				dashes = append(dashes, cur)
				cur = nil
			}
			pos = end
			idx++
			remaining = length(idx)
			on = idx%2 == 0
		}

		if len(cur) > 0 {
			if sp.closed && startedOn && len(dashes) > firstLoopDash {
				cur = append(cur, dashes[firstLoopDash]...)
				dashes = append(dashes[:firstLoopDash], dashes[firstLoopDash+1:]...)
			}
			dashes = append(dashes, cur)
		}
		for _, dash := range dashes {
			res = append(res, subpath{segs: dash})
		}
	}
	return res
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

const (
	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the largest angle between two
	// segments which is drawn without a join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself,
	// cos(179.2°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)
