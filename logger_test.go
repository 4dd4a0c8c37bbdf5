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
	"context"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}

	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := Fill(dst, Solid(color.White), NewRectangle(1, 1, 4, 4), nil); err != nil {
		t.Fatal(err)
	}

	msg := out.String()
	for _, want := range []string{"msg=fill", "chunks=1", "antialias=true"} {
		if !strings.Contains(msg, want) {
			t.Errorf("log output %q does not contain %q", msg, want)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("SetLogger(nil) did not restore the default")
	}
}
