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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var opaqueRed = color.NRGBA{R: 255, A: 255}

// TestFillSquareNoAA fills a 4x4 square at the origin without antialiasing.
func TestFillSquareNoAA(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	brush := Solid(color.NRGBA{R: 10, G: 200, B: 30, A: 255})

	err := Fill(dst, brush, NewRectangle(0, 0, 4, 4), &Options{})
	if err != nil {
		t.Fatal(err)
	}

	inside := color.RGBA{R: 10, G: 200, B: 30, A: 255}
	for y := range 10 {
		for x := range 10 {
			got := dst.RGBAAt(x, y)
			want := color.RGBA{}
			if x < 4 && y < 4 {
				want = inside
			}
			if got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestFillCircle fills a circle of radius 5 around (10, 10).
func TestFillCircle(t *testing.T) {
	const cx, cy, r = 10.0, 10.0, 5.0

	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	opt := &Options{Antialias: true, SubpixelDepth: 8}
	if err := Fill(dst, Solid(opaqueRed), NewCircle(cx, cy, r), opt); err != nil {
		t.Fatal(err)
	}

	boundary := 0
	for y := range 20 {
		for x := range 20 {
			a := dst.RGBAAt(x, y).A

			// distances of the nearest and farthest point of the pixel
			dx0 := math.Max(math.Max(float64(x)-cx, cx-float64(x+1)), 0)
			dy0 := math.Max(math.Max(float64(y)-cy, cy-float64(y+1)), 0)
			near := math.Hypot(dx0, dy0)
			dx1 := math.Max(math.Abs(float64(x)-cx), math.Abs(float64(x+1)-cx))
			dy1 := math.Max(math.Abs(float64(y)-cy), math.Abs(float64(y+1)-cy))
			far := math.Hypot(dx1, dy1)

			switch {
			case far <= r-0.5:
				if a != 255 {
					t.Errorf("inner pixel (%d,%d): alpha %d", x, y, a)
				}
			case near > r+0.5:
				if a != 0 {
					t.Errorf("outer pixel (%d,%d): alpha %d", x, y, a)
				}
			default:
				exact := diskCoverage(x, y, cx, cy, r)
				if exact < 0.3 || exact > 0.7 {
					continue
				}
				boundary++
				if a == 0 || a == 255 {
					t.Errorf("boundary pixel (%d,%d): alpha %d, area %.2f", x, y, a, exact)
				}
			}
		}
	}
	if boundary == 0 {
		t.Error("no boundary pixels tested")
	}
}

// diskCoverage estimates the fraction of pixel (x, y) inside the disk.
func diskCoverage(x, y int, cx, cy, r float64) float64 {
	const n = 32
	count := 0
	for i := range n {
		for j := range n {
			px := float64(x) + (float64(i)+0.5)/n - cx
			py := float64(y) + (float64(j)+0.5)/n - cy
			if px*px+py*py < r*r {
				count++
			}
		}
	}
	return float64(count) / (n * n)
}

// TestFillOverlap paints an opaque square and then a half-transparent
// square on top of it.
func TestFillOverlap(t *testing.T) {
	colA := color.NRGBA{R: 200, G: 40, B: 40, A: 255}
	colB := color.NRGBA{R: 40, G: 40, B: 200, A: 128}

	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	if err := Fill(dst, Solid(colA), NewRectangle(0, 0, 10, 10), nil); err != nil {
		t.Fatal(err)
	}
	if err := Fill(dst, Solid(colB), NewRectangle(5, 5, 10, 10), nil); err != nil {
		t.Fatal(err)
	}

	w := float64(colB.A) / 255
	lerp := func(p [4]float64) [4]float64 {
		return [4]float64{
			p[0]*(1-w) + float64(colB.R)*w,
			p[1]*(1-w) + float64(colB.G)*w,
			p[2]*(1-w) + float64(colB.B)*w,
			p[3]*(1-w) + 255*w,
		}
	}
	a := [4]float64{float64(colA.R), float64(colA.G), float64(colA.B), 255}
	both := lerp(a)
	onlyB := lerp([4]float64{})

	for y := range 20 {
		for x := range 20 {
			inA := x < 10 && y < 10
			inB := x >= 5 && y >= 5 && x < 15 && y < 15

			var want [4]float64
			switch {
			case inA && inB:
				want = both
			case inA:
				want = a
			case inB:
				want = onlyB
			}

			got := dst.RGBAAt(x, y)
			gotv := [4]float64{float64(got.R), float64(got.G), float64(got.B), float64(got.A)}
			for k := range 4 {
				if math.Abs(gotv[k]-want[k]) > 1 {
					t.Errorf("pixel (%d,%d) = %v, want %.1f", x, y, got, want)
					break
				}
			}
		}
	}
}

func noise(r image.Rectangle) *image.RGBA {
	img := image.NewRGBA(r)
	rng := rand.New(rand.NewPCG(5, 6))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.UintN(256))
	}
	return img
}

// TestFillOutside checks that shapes outside the destination or the
// region of interest leave the destination unchanged.
func TestFillOutside(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		roi   image.Rectangle
	}{
		{"right", NewRectangle(30, 5, 5, 5), image.Rect(0, 0, 20, 20)},
		{"above", NewCircle(10, -10, 5), image.Rect(0, 0, 20, 20)},
		{"touching", NewRectangle(20, 0, 5, 20), image.Rect(0, 0, 20, 20)},
		{"roi", NewRectangle(10, 10, 5, 5), image.Rect(0, 0, 5, 5)},
		{"empty_roi", NewRectangle(0, 0, 20, 20), image.Rectangle{}},
		{"no_crossings", &fixedShape{}, image.Rect(0, 0, 20, 20)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dst := noise(image.Rect(0, 0, 20, 20))
			orig := bytes.Clone(dst.Pix)

			// the brush must not even be prepared
			brush := &errBrush{err: errTest}
			if err := FillRegion(dst, brush, c.shape, nil, c.roi); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(dst.Pix, orig) {
				t.Error("destination modified")
			}
		})
	}
}

func TestFillRegion(t *testing.T) {
	dst := noise(image.Rect(0, 0, 20, 20))
	orig := image.NewRGBA(dst.Rect)
	copy(orig.Pix, dst.Pix)

	roi := image.Rect(5, 7, 12, 9)
	err := FillRegion(dst, Solid(opaqueRed), NewRectangle(0, 0, 20, 20), nil, roi)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 20 {
		for x := range 20 {
			got := dst.RGBAAt(x, y)
			want := orig.RGBAAt(x, y)
			if image.Pt(x, y).In(roi) {
				want = color.RGBA{R: 255, A: 255}
			}
			if got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// TestFillAlignedRectangle checks that a pixel-aligned rectangle produces
// no partial coverage.
func TestFillAlignedRectangle(t *testing.T) {
	options := map[string]*Options{
		"aa":    DefaultOptions(),
		"no_aa": {},
		"depth": {Antialias: true, SubpixelDepth: 5},
	}
	shapes := map[string]Shape{
		"rectangle": NewRectangle(3, 2, 4, 3),
		"polygon": PolygonFromPoints(EvenOdd,
			vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 7, Y: 2},
			vec.Vec2{X: 7, Y: 5}, vec.Vec2{X: 3, Y: 5}),
	}
	for oname, opt := range options {
		for sname, shape := range shapes {
			t.Run(oname+"_"+sname, func(t *testing.T) {
				dst := image.NewRGBA(image.Rect(0, 0, 10, 8))
				if err := Fill(dst, Solid(color.White), shape, opt); err != nil {
					t.Fatal(err)
				}
				for y := range 8 {
					for x := range 10 {
						a := dst.RGBAAt(x, y).A
						inside := x >= 3 && x < 7 && y >= 2 && y < 5
						if inside && a != 255 || !inside && a != 0 {
							t.Errorf("pixel (%d,%d): alpha %d", x, y, a)
						}
					}
				}
			})
		}
	}
}

// TestFillParallel checks that the number of workers does not affect the
// result.
func TestFillParallel(t *testing.T) {
	d := (&path.Data{}).
		MoveTo(vec.Vec2{X: 20, Y: 10}).
		LineTo(vec.Vec2{X: 280, Y: 40}).
		LineTo(vec.Vec2{X: 150, Y: 290}).
		Close().
		MoveTo(vec.Vec2{X: 150, Y: 60}).
		CubeTo(vec.Vec2{X: 250, Y: 60}, vec.Vec2{X: 250, Y: 200}, vec.Vec2{X: 150, Y: 200}).
		CubeTo(vec.Vec2{X: 50, Y: 200}, vec.Vec2{X: 50, Y: 60}, vec.Vec2{X: 150, Y: 60}).
		Close()
	shapes := []Shape{
		NewCircle(150, 150, 120),
		NewPolygon(d, NonZero, matrix.Identity, 0),
		NewPolygon(d, EvenOdd, matrix.Identity, 0),
	}
	for i, shape := range shapes {
		var ref []byte
		for _, workers := range []int{1, 2, 8} {
			dst := image.NewRGBA(image.Rect(0, 0, 300, 300))
			opt := &Options{Antialias: true, SubpixelDepth: 16, Workers: workers}
			if err := Fill(dst, Solid(opaqueRed), shape, opt); err != nil {
				t.Fatal(err)
			}
			if ref == nil {
				ref = dst.Pix
			} else if !bytes.Equal(ref, dst.Pix) {
				t.Errorf("shape %d: %d workers give a different image", i, workers)
			}
		}
	}
}

// recordingBrush remembers the rows passed to its applicator.
type recordingBrush struct {
	rows map[int][]float32
	x    map[int]int
}

func (b *recordingBrush) NewApplicator(*image.RGBA, image.Rectangle, *Options) (Applicator, error) {
	b.rows = make(map[int][]float32)
	b.x = make(map[int]int)
	return b, nil
}

func (b *recordingBrush) Apply(coverage []float32, x, y int) {
	b.rows[y] = append([]float32(nil), coverage...)
	b.x[y] = x
}

func (b *recordingBrush) Close() error { return nil }

func TestFillTrimsRows(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	brush := &recordingBrush{}
	opt := &Options{Antialias: true, SubpixelDepth: 4, Workers: 1}
	if err := Fill(dst, brush, NewRectangle(2.5, 3, 3, 2), opt); err != nil {
		t.Fatal(err)
	}

	if len(brush.rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(brush.rows))
	}
	want := []float32{0.5, 1, 1, 0.5}
	for _, y := range []int{3, 4} {
		cov, ok := brush.rows[y]
		if !ok {
			t.Errorf("row %d missing", y)
			continue
		}
		if brush.x[y] != 2 {
			t.Errorf("row %d starts at x=%d, want 2", y, brush.x[y])
		}
		if len(cov) != len(want) {
			t.Errorf("row %d: coverage %v, want %v", y, cov, want)
			continue
		}
		for i := range want {
			if !closeTo(cov[i], want[i], 1e-6) {
				t.Errorf("row %d: coverage %v, want %v", y, cov, want)
				break
			}
		}
	}
}

var errTest = errors.New("test error")

type errBrush struct {
	err error
}

func (b *errBrush) NewApplicator(*image.RGBA, image.Rectangle, *Options) (Applicator, error) {
	return nil, b.err
}

// testApplicator panics on the given row and fails on Close if closeErr
// is set.
type testApplicator struct {
	panicRow int
	closeErr error
	closed   atomic.Int32
}

func (a *testApplicator) NewApplicator(*image.RGBA, image.Rectangle, *Options) (Applicator, error) {
	return a, nil
}

func (a *testApplicator) Apply(_ []float32, _, y int) {
	if y == a.panicRow {
		panic("boom")
	}
}

func (a *testApplicator) Close() error {
	a.closed.Add(1)
	return a.closeErr
}

func TestFillBrushErrors(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	shape := NewRectangle(0, 0, 10, 10)

	err := Fill(dst, &errBrush{err: errTest}, shape, nil)
	if !errors.Is(err, errTest) {
		t.Errorf("NewApplicator error: got %v", err)
	}

	app := &testApplicator{panicRow: -1, closeErr: errTest}
	err = Fill(dst, app, shape, nil)
	if !errors.Is(err, errTest) {
		t.Errorf("Close error: got %v", err)
	}
	if n := app.closed.Load(); n != 1 {
		t.Errorf("Close called %d times", n)
	}
}

func TestFillPanic(t *testing.T) {
	for _, height := range []int{10, 64, 200} {
		dst := image.NewRGBA(image.Rect(0, 0, 10, height))
		app := &testApplicator{panicRow: 5}
		opt := &Options{Antialias: true, SubpixelDepth: 4, Workers: 4}

		err := Fill(dst, app, NewRectangle(0, 0, 10, float64(height)), opt)
		if err == nil || !strings.Contains(err.Error(), "row 5") {
			t.Errorf("height %d: got error %v", height, err)
		}
		if n := app.closed.Load(); n != 1 {
			t.Errorf("height %d: Close called %d times", height, n)
		}
	}

	// the scratch buffers are still usable after a panic
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	if err := Fill(dst, Solid(opaqueRed), NewRectangle(0, 0, 10, 10), nil); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(9, 9); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (9,9) = %v", got)
	}
}

func TestNilArguments(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	brush := Solid(opaqueRed)
	shape := NewRectangle(0, 0, 2, 2)
	p := (&path.Data{}).MoveTo(vec.Vec2{}).LineTo(vec.Vec2{X: 4, Y: 4})

	errs := map[string]error{
		"dst":        Fill(nil, brush, shape, nil),
		"brush":      Fill(dst, nil, shape, nil),
		"shape":      Fill(dst, brush, nil, nil),
		"region_dst": FillRegion(nil, brush, shape, nil, image.Rect(0, 0, 4, 4)),
		"pen":        Draw(dst, nil, p, nil),
		"path":       Draw(dst, NewPen(brush, 1), nil, nil),
		"draw_dst":   Draw(nil, NewPen(brush, 1), p, nil),
	}
	for name, err := range errs {
		if !errors.Is(err, ErrNilArgument) {
			t.Errorf("%s: got %v, want %v", name, err, ErrNilArgument)
		}
	}
}

func TestPartitionRows(t *testing.T) {
	cases := []struct {
		y0, y1, workers int
		want            int
	}{
		{0, 0, 4, 0},
		{3, 1, 4, 0},
		{0, 10, 8, 1},
		{0, 16, 8, 1},
		{0, 17, 8, 2},
		{5, 37, 2, 2},
		{0, 1000, 4, 16},
		{-100, 900, 1, 4},
		{0, 1000, 0, 4},
	}
	for _, c := range cases {
		chunks := partitionRows(c.y0, c.y1, c.workers)
		if len(chunks) != c.want {
			t.Errorf("partitionRows(%d, %d, %d): %d chunks, want %d",
				c.y0, c.y1, c.workers, len(chunks), c.want)
			continue
		}
		y := c.y0
		for _, r := range chunks {
			if r.y0 != y || r.y1 <= r.y0 {
				t.Errorf("partitionRows(%d, %d, %d): bad chunk %v",
					c.y0, c.y1, c.workers, r)
			}
			y = r.y1
		}
		if len(chunks) > 0 && y != c.y1 {
			t.Errorf("partitionRows(%d, %d, %d): rows end at %d",
				c.y0, c.y1, c.workers, y)
		}
	}
}

func TestPixelBounds(t *testing.T) {
	cases := []struct {
		in   rect.Rect
		want image.Rectangle
	}{
		{rect.Rect{LLx: 0, LLy: 0, URx: 4, URy: 3}, image.Rect(0, 0, 4, 3)},
		{rect.Rect{LLx: 0.5, LLy: -0.5, URx: 3.2, URy: 4}, image.Rect(0, -1, 4, 4)},
		{rect.Rect{LLx: math.NaN(), LLy: 0, URx: 1, URy: math.NaN()}, image.Rect(0, 0, 1, 0)},
		{
			rect.Rect{LLx: math.Inf(-1), LLy: -1e300, URx: math.Inf(1), URy: 1e300},
			image.Rect(-coordLimit, -coordLimit, coordLimit, coordLimit),
		},
	}
	for _, c := range cases {
		if got := pixelBounds(c.in); got != c.want {
			t.Errorf("pixelBounds(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func BenchmarkFillCircle(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			s := float64(size)
			shape := NewCircle(s/2, s/2, 0.45*s)
			brush := Solid(opaqueRed)
			b.ReportAllocs()
			for b.Loop() {
				if err := Fill(dst, brush, shape, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
