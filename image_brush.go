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
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ImageBrush paints with the colours of a source image, repeated in both
// directions. The top-left pixel of the source is placed at Offset.
type ImageBrush struct {
	Image  image.Image
	Offset image.Point
}

// NewApplicator implements the [Brush] interface.
//
// The source image is copied when the applicator is created, so that it
// may be modified while a fill is running.
func (b *ImageBrush) NewApplicator(dst *image.RGBA, _ image.Rectangle, _ *Options) (Applicator, error) {
	if b.Image == nil || b.Image.Bounds().Empty() {
		return nil, errors.New("raster: empty brush image")
	}

	img := imaging.Clone(b.Image)
	src := &imageSource{
		img:    img,
		w:      img.Rect.Dx(),
		h:      img.Rect.Dy(),
		offset: b.Offset,
	}
	a := newApplicator(dst, src)
	a.release = func() { src.img = nil }
	return a, nil
}

type imageSource struct {
	img    *image.NRGBA // origin at (0, 0)
	w, h   int
	offset image.Point
}

func (s *imageSource) at(x, y int) straight {
	ix := mod(x-s.offset.X, s.w)
	iy := mod(y-s.offset.Y, s.h)
	p := s.img.Pix[iy*s.img.Stride+4*ix:]
	return straight{
		R: float32(p[0]),
		G: float32(p[1]),
		B: float32(p[2]),
		A: float32(p[3]) / 255,
	}
}
