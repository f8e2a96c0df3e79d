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

import "seehuhn.de/go/sketch"

var contourScenes = []Scene{
	{
		Name:   "ring",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(32, 32, 0, 0, 0).
				Layer(func(p *sketch.Path) { p.Circle(0, 0, 26) }).
				Contour(func(p *sketch.Path) { p.Circle(0, 0, 14) })
		},
	},
	{
		Name:   "frame",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(8, 8, 0, 0, 0).
				Layer(func(p *sketch.Path) { p.Square(0, 0, 48) }).
				Contour(func(p *sketch.Path) { p.Square(12, 12, 24) })
		},
	},
	{
		Name:   "island",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(8, 8, 0, 0, 0).
				Layer(func(p *sketch.Path) { p.Square(0, 0, 48) }).
				Contour(func(p *sketch.Path) { p.Square(8, 8, 32) }).
				Layer(func(p *sketch.Path) { p.Square(18, 18, 12) })
		},
	},
	{
		Name:   "bite",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(6, 6, 0, 0, 0).
				Layer(func(p *sketch.Path) { p.Square(0, 0, 40) }).
				Contour(func(p *sketch.Path) { p.Circle(40, 40, 18) })
		},
	},
	{
		Name:   "stray_contour",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(4, 4, 0, 0, 0).
				Contour(func(p *sketch.Path) { p.Square(0, 0, 20) }).
				Layer(func(p *sketch.Path) { p.Square(10, 10, 40) })
		},
	},
}
