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
	"context"
	"image"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// ErrNilArgument is returned if a fill is called without a destination,
// brush, shape or pen.
var ErrNilArgument = errors.New("raster: nil argument")

// Fill paints the shape onto dst using the given brush.
// If opt is nil, DefaultOptions() is used.
func Fill(dst *image.RGBA, brush Brush, shape Shape, opt *Options) error {
	if dst == nil {
		return ErrNilArgument
	}
	return FillRegion(dst, brush, shape, opt, dst.Bounds())
}

// Draw strokes the path p with the given pen and paints the result onto
// dst. If opt is nil, DefaultOptions() is used.
func Draw(dst *image.RGBA, pen *Pen, p *path.Data, opt *Options) error {
	if dst == nil || pen == nil || p == nil {
		return ErrNilArgument
	}
	outline := pen.Outline(p)
	if outline == nil {
		return nil
	}
	return Fill(dst, pen.Brush, outline, opt)
}

// FillRegion paints the shape onto dst using the given brush, touching
// only pixels inside roi. If opt is nil, DefaultOptions() is used.
//
// Rows are processed in parallel. If the brush fails for one row, the
// remaining rows are skipped and the error is returned; rows which have
// already been painted are left in place.
func FillRegion(dst *image.RGBA, brush Brush, shape Shape, opt *Options, roi image.Rectangle) (err error) {
	if dst == nil || brush == nil || shape == nil {
		return ErrNilArgument
	}
	if opt == nil {
		opt = DefaultOptions()
	}

	bounds := pixelBounds(shape.Bounds()).Intersect(roi).Intersect(dst.Bounds())
	maxIntersections := shape.MaxIntersections()
	if bounds.Empty() || maxIntersections <= 0 {
		return nil
	}

	app, err := brush.NewApplicator(dst, bounds, opt)
	if err != nil {
		return errors.Wrap(err, "raster: create applicator")
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "raster: close applicator")
		}
	}()

	workers := opt.workers()
	chunks := partitionRows(bounds.Min.Y, bounds.Max.Y, workers)

	Logger().Debug("fill",
		slog.Any("bounds", bounds),
		slog.Int("chunks", len(chunks)),
		slog.Int("workers", workers),
		slog.Bool("antialias", opt.Antialias))

	job := &fillJob{
		shape:            shape,
		app:              app,
		opt:              opt,
		minX:             bounds.Min.X,
		maxX:             bounds.Max.X,
		maxIntersections: maxIntersections,
	}

	if len(chunks) == 1 {
		return job.run(context.Background(), chunks[0])
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for _, rows := range chunks {
		g.Go(func() error {
			return job.run(ctx, rows)
		})
	}
	return g.Wait()
}

// fillJob holds the state shared by all row tasks of one fill.
// It is not modified once the tasks have started.
type fillJob struct {
	shape Shape
	app   Applicator
	opt   *Options

	minX, maxX       int
	maxIntersections int
}

// run fills the rows in the given range. It stops early, without error,
// once ctx is cancelled because another row range has failed.
func (j *fillJob) run(ctx context.Context, rows rowRange) (err error) {
	buf := crossingPool.get(j.maxIntersections)
	defer crossingPool.put(buf)

	y := rows.y0
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("raster: row %d: %v", y, r)
		}
	}()

	s := newScanline(j.minX, j.maxX, j.opt)
	for ; y < rows.y1; y++ {
		if ctx.Err() != nil {
			return nil
		}

		s.accumulate(j.shape, *buf, y)
		if !s.dirty {
			continue
		}
		if cov, offset := trimZeros(s.cov); cov != nil {
			j.app.Apply(cov, j.minX+offset, y)
		}
	}
	return nil
}

// rowRange is the half-open range of pixel rows y0, ..., y1-1.
type rowRange struct {
	y0, y1 int
}

// partitionRows splits the rows y0, ..., y1-1 into contiguous ranges of
// similar size. A few ranges per worker help to balance the load when
// the shape covers some rows more densely than others.
func partitionRows(y0, y1, workers int) []rowRange {
	height := y1 - y0
	if height <= 0 {
		return nil
	}
	n := max(workers, 1) * chunksPerWorker
	n = min(n, (height+minChunkRows-1)/minChunkRows)
	n = max(n, 1)

	res := make([]rowRange, n)
	for i := range n {
		res[i] = rowRange{
			y0: y0 + i*height/n,
			y1: y0 + (i+1)*height/n,
		}
	}
	return res
}

const (
	// chunksPerWorker is the number of row ranges per worker goroutine.
	chunksPerWorker = 4

	// minChunkRows is the smallest number of rows worth a separate task.
	minChunkRows = 16
)

// pixelBounds returns the smallest pixel rectangle containing r.
func pixelBounds(r rect.Rect) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: floorInt(r.LLx), Y: floorInt(r.LLy)},
		Max: image.Point{X: ceilInt(r.URx), Y: ceilInt(r.URy)},
	}
}

// coordLimit bounds pixel coordinates, so that shapes with huge or
// infinite bounds do not overflow int.
const coordLimit = 1 << 30

func floorInt(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return int(math.Floor(max(-coordLimit, min(x, coordLimit))))
}

func ceilInt(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return int(math.Ceil(max(-coordLimit, min(x, coordLimit))))
}
