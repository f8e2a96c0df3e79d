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

var curveScenes = []Scene{
	{
		Name:   "cubic_blob",
		Width:  64,
		Height: 64,
		Shape: single(0, 0, func(p *sketch.Path) {
			p.Begin()
			p.Vertex(10, 32)
			p.BezierVertex(10, 0, 54, 0, 54, 32)
			p.BezierVertex(54, 64, 10, 64, 10, 32)
			p.End(true)
		}),
	},
	{
		Name:   "quadratic_lens",
		Width:  64,
		Height: 64,
		Shape: single(0, 0, func(p *sketch.Path) {
			p.Begin()
			p.Vertex(8, 32)
			p.QuadraticVertex(32, 0, 56, 32)
			p.QuadraticVertex(32, 64, 8, 32)
			p.End(true)
		}),
	},
	{
		Name:   "pie",
		Width:  64,
		Height: 64,
		Shape: single(32, 32, func(p *sketch.Path) {
			p.Begin()
			p.Vertex(0, 0)
			p.Arc(0, 0, 26, 0, 1.5*math.Pi)
			p.End(true)
		}),
	},
	{
		Name:   "rounded_rect",
		Width:  64,
		Height: 64,
		Shape: single(0, 0, func(p *sketch.Path) {
			p.Begin()
			p.Vertex(20, 8)
			p.CurveVertex(56, 8, 56, 56, 12)
			p.CurveVertex(56, 56, 8, 56, 12)
			p.CurveVertex(8, 56, 8, 8, 12)
			p.CurveVertex(8, 8, 56, 8, 12)
			p.End(true)
		}),
	},
	{
		Name:   "tilted_ellipse",
		Width:  64,
		Height: 64,
		Shape: single(32, 32, func(p *sketch.Path) {
			p.Ellipse(0, 0, 52, 24, math.Pi/5)
		}),
	},
}
