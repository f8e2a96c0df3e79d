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
	"seehuhn.de/go/sketch/raster"
)

var solidScenes = []Scene{
	{
		Name:   "rectangle",
		Width:  64,
		Height: 64,
		Shape: single(10, 10, func(p *sketch.Path) {
			p.Rect(0, 0, 44, 44)
		}),
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Shape: single(0, 0, func(p *sketch.Path) {
			p.Triangle(10, 50, 32, 10, 54, 50)
		}),
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Shape: single(32, 32, func(p *sketch.Path) {
			p.Circle(0, 0, 24)
		}),
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 64,
		Shape: single(32, 32, func(p *sketch.Path) {
			star(p, 25)
		}),
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Shape: single(32, 32, func(p *sketch.Path) {
			star(p, 25)
			p.SetFillRule(raster.EvenOdd)
		}),
	},
	{
		Name:   "union",
		Width:  64,
		Height: 64,
		Shape: func() *sketch.Shape {
			return sketch.NewShape(8, 8, 0, 0, 0).
				Layer(func(p *sketch.Path) { p.Rect(0, 0, 30, 30) }).
				Layer(func(p *sketch.Path) { p.Rect(18, 18, 30, 30) })
		},
	},
}

// star draws a self-intersecting five-pointed star centred at the origin.
func star(p *sketch.Path, r float64) {
	p.Begin()
	for i := range 5 {
		a := float64(2*i)*2*math.Pi/5 - math.Pi/2
		p.Vertex(r*math.Cos(a), r*math.Sin(a))
	}
	p.End(true)
}
