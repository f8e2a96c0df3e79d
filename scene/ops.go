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

package scene

import (
	"fmt"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/canvas"
)

// arity is the allowed range for the number of arguments of an op.
type arity struct {
	min, max int
}

func (a arity) allows(n int) bool {
	return n >= a.min && n <= a.max
}

func (a arity) String() string {
	switch {
	case a.min == a.max && a.min == 1:
		return "1 argument"
	case a.min == a.max:
		return fmt.Sprintf("%d arguments", a.min)
	default:
		return fmt.Sprintf("%d to %d arguments", a.min, a.max)
	}
}

func exactly(n int) arity { return arity{n, n} }

type pathOp struct {
	arity
	apply func(p *sketch.Path, a []float64)
}

type canvasOp struct {
	arity
	apply func(c *canvas.Canvas, a []float64)
}

var pathOps = map[string]pathOp{
	"arc": {exactly(5), func(p *sketch.Path, a []float64) {
		p.Arc(a[0], a[1], a[2], a[3], a[4])
	}},
	"bezier": {exactly(8), func(p *sketch.Path, a []float64) {
		p.Bezier(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
	}},
	"circle": {exactly(3), func(p *sketch.Path, a []float64) {
		p.Circle(a[0], a[1], a[2])
	}},
	"curve": {exactly(7), func(p *sketch.Path, a []float64) {
		p.Curve(a[0], a[1], a[2], a[3], a[4], a[5], a[6])
	}},
	"ellipse": {arity{4, 5}, func(p *sketch.Path, a []float64) {
		angle := 0.0
		if len(a) == 5 {
			angle = a[4]
		}
		p.Ellipse(a[0], a[1], a[2], a[3], angle)
	}},
	"line": {exactly(4), func(p *sketch.Path, a []float64) {
		p.Line(a[0], a[1], a[2], a[3])
	}},
	"quad": {exactly(8), func(p *sketch.Path, a []float64) {
		p.Quad(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
	}},
	"rect": {exactly(4), func(p *sketch.Path, a []float64) {
		p.Rect(a[0], a[1], a[2], a[3])
	}},
	"square": {exactly(3), func(p *sketch.Path, a []float64) {
		p.Square(a[0], a[1], a[2])
	}},
	"triangle": {exactly(6), func(p *sketch.Path, a []float64) {
		p.Triangle(a[0], a[1], a[2], a[3], a[4], a[5])
	}},
	"begin": {exactly(0), func(p *sketch.Path, a []float64) {
		p.Begin()
	}},
	"vertex": {exactly(2), func(p *sketch.Path, a []float64) {
		p.Vertex(a[0], a[1])
	}},
	"bezier_vertex": {exactly(6), func(p *sketch.Path, a []float64) {
		p.BezierVertex(a[0], a[1], a[2], a[3], a[4], a[5])
	}},
	"quadratic_vertex": {exactly(4), func(p *sketch.Path, a []float64) {
		p.QuadraticVertex(a[0], a[1], a[2], a[3])
	}},
	"curve_vertex": {exactly(5), func(p *sketch.Path, a []float64) {
		p.CurveVertex(a[0], a[1], a[2], a[3], a[4])
	}},
	"close": {exactly(0), func(p *sketch.Path, a []float64) {
		p.Close()
	}},
}

var canvasOps = map[string]canvasOp{
	"point": {exactly(2), func(c *canvas.Canvas, a []float64) {
		c.Point(a[0], a[1])
	}},
	"translate": {exactly(2), func(c *canvas.Canvas, a []float64) {
		c.Translate(a[0], a[1])
	}},
	"rotate": {exactly(1), func(c *canvas.Canvas, a []float64) {
		c.Rotate(a[0])
	}},
	"scale": {arity{1, 2}, func(c *canvas.Canvas, a []float64) {
		if len(a) == 1 {
			c.Scale(a[0], a[0])
		} else {
			c.Scale(a[0], a[1])
		}
	}},
	"matrix": {exactly(6), func(c *canvas.Canvas, a []float64) {
		c.ApplyMatrix(a[0], a[1], a[2], a[3], a[4], a[5])
	}},
	"push": {exactly(0), func(c *canvas.Canvas, a []float64) {
		c.Push()
	}},
	"pop": {exactly(0), func(c *canvas.Canvas, a []float64) {
		c.Pop()
	}},
}
