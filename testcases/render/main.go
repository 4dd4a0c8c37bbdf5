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

// Command render draws every test case of the catalogue into a PNG file,
// for visual inspection.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/testcases"
)

func main() {
	out := flag.String("out", "testdata/render", "output directory")
	category := flag.String("category", "", "render only this category")
	fg := flag.String("fg", "black", "foreground colour (SVG colour name)")
	bg := flag.String("bg", "white", "background colour (SVG colour name)")
	depth := flag.Int("depth", 16, "sub-pixel sampling depth")
	noAA := flag.Bool("no-aa", false, "disable anti-aliasing")
	verbose := flag.Bool("v", false, "log fill details")
	flag.Parse()

	if *verbose {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opt := &raster.Options{
		Antialias:     !*noAA,
		SubpixelDepth: *depth,
	}
	err := run(*out, *category, *fg, *bg, opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func run(out, category, fgName, bgName string, opt *raster.Options) error {
	fg, err := namedColor(fgName)
	if err != nil {
		return err
	}
	bg, err := namedColor(bgName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(out, 0755); err != nil {
		return err
	}

	count := 0
	for _, cat := range slices.Sorted(maps.Keys(testcases.All)) {
		if category != "" && cat != category {
			continue
		}
		for _, tc := range testcases.All[cat] {
			name := cat + "_" + tc.Name

			img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
			draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
			if err := raster.Render(img, tc, raster.Solid(fg), opt); err != nil {
				return errors.Wrap(err, name)
			}

			fname := filepath.Join(out, name+".png")
			if err := imaging.Save(img, fname); err != nil {
				return errors.Wrap(err, name)
			}
			count++
		}
	}
	if count == 0 {
		return errors.Errorf("no test cases in category %q", category)
	}
	return nil
}

func namedColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown colour %q", name)
	}
	return c, nil
}
