// seehuhn.de/go/sketch - a 2D drawing library
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

// Package sketch implements layered 2D shapes with hit testing and
// software rendering.
//
// A [Path] records geometry (lines, rectangles, ellipses, arcs, Bézier
// curves, free-form vertex paths) together with a bounding box which
// widens with every operation.  A [Shape] is an ordered stack of paths,
// each either a normal layer which adds to the shape or a contour which
// cuts a hole into the layers below it.  Shapes can be positioned, rotated
// about an anchor point, hit tested, and rendered into a
// [raster.Surface].
//
// Hit testing never allocates a raster.  Rendering and hit testing follow
// the same ordered fold over the layers, so a point is reported inside a
// shape exactly where the rendered shape is opaque.
package sketch

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/sketch/internal/logger"
)

// ErrEmptyGeometry is returned when rendering a path or shape which has no
// finite extent.
var ErrEmptyGeometry = errors.New("empty geometry")

// SetLogger configures the logger for sketch and all its sub-packages.
// By default nothing is logged.  Pass nil to restore the default.
//
// Debug records describe surface allocations and render passes, warnings
// report geometry which cannot be rendered.
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Get()
}
