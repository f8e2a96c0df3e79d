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

// Package testcases holds named shape scenes.  They are used by the
// rendering tests and by the reference image generator in genpdf.
package testcases

import (
	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/paint"
)

// Scene is a shape placed on a page of fixed size.
type Scene struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // page width in pixels
	Height int    // page height in pixels

	// Shape returns a fresh copy of the shape, in page coordinates.
	Shape func() *sketch.Shape
}

// Style is used to render all scenes.
var Style = sketch.Style{Fill: paint.White}

// All contains all scenes, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]Scene{
	"solid":   solidScenes,
	"contour": contourScenes,
	"rotated": rotatedScenes,
	"curve":   curveScenes,
	"subpath": subpathScenes,
}

// single returns a function building a shape at (x, y) with one layer.
func single(x, y float64, build func(p *sketch.Path)) func() *sketch.Shape {
	return func() *sketch.Shape {
		return sketch.NewShape(x, y, 0, 0, 0).Layer(build)
	}
}
