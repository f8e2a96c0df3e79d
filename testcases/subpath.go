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
	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/raster"
)

var subpathScenes = []Scene{
	{
		Name:   "nested_nonzero",
		Width:  64,
		Height: 64,
		Shape: single(8, 8, func(p *sketch.Path) {
			p.Rect(0, 0, 48, 48)
			p.Rect(12, 12, 24, 24)
		}),
	},
	{
		Name:   "nested_evenodd",
		Width:  64,
		Height: 64,
		Shape: single(8, 8, func(p *sketch.Path) {
			p.Rect(0, 0, 48, 48)
			p.Rect(12, 12, 24, 24)
			p.SetFillRule(raster.EvenOdd)
		}),
	},
	{
		Name:   "disjoint",
		Width:  64,
		Height: 64,
		Shape: single(0, 0, func(p *sketch.Path) {
			p.Circle(18, 18, 12)
			p.Triangle(34, 56, 46, 30, 58, 56)
		}),
	},
	{
		Name:   "open_polyline",
		Width:  64,
		Height: 64,
		Shape: single(0, 0, func(p *sketch.Path) {
			p.Begin()
			p.Vertex(8, 8)
			p.Vertex(56, 12)
			p.Vertex(40, 56)
			p.End(false)
		}),
	},
}
