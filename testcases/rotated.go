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

package testcases

import (
	"math"

	"seehuhn.de/go/sketch"
)

var rotatedScenes = []Scene{
	{
		Name:   "square_about_centre",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(16, 16, math.Pi/6, 16, 16).
				Layer(func(p *sketch.Path) { p.Square(0, 0, 32) })
		},
	},
	{
		Name:   "square_about_corner",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(32, 6, math.Pi/4, 0, 0).
				Layer(func(p *sketch.Path) { p.Square(0, 0, 36) })
		},
	},
	{
		Name:   "frame_quarter_turn",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(8, 8, math.Pi/2, 24, 24).
				Layer(func(p *sketch.Path) { p.Rect(0, 8, 48, 32) }).
				Contour(func(p *sketch.Path) { p.Rect(8, 16, 20, 16) })
		},
	},
	{
		Name:   "ring_offset_anchor",
		Width:  80,
		Height: 80,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(30, 20, -0.7, 10, 10).
				Layer(func(p *sketch.Path) { p.Ellipse(10, 20, 40, 24, 0) }).
				Contour(func(p *sketch.Path) { p.Ellipse(10, 20, 20, 10, 0) })
		},
	},
}
