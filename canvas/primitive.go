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

package canvas

import "seehuhn.de/go/sketch"

// Arc draws a circular arc around (x, y), clockwise from start to end.
func (c *Canvas) Arc(x, y, radius, start, end float64) *Canvas {
	return c.Begin().with(func(p *sketch.Path) {
		p.Arc(x, y, radius, start, end)
	}).End(false)
}

// Bezier draws a cubic Bézier curve.
func (c *Canvas) Bezier(x1, y1, cx1, cy1, cx2, cy2, x2, y2 float64) *Canvas {
	return c.Begin().
		Vertex(x1, y1).
		BezierVertex(cx1, cy1, cx2, cy2, x2, y2).
		End(false)
}

// Circle draws a circle.
func (c *Canvas) Circle(x, y, radius float64) *Canvas {
	return c.Ellipse(x, y, 2*radius, 2*radius, 0)
}

// Curve draws a line from (x1, y1) towards (cx1, cy1), rounded off by an
// arc of the given radius that turns towards (cx2, cy2).
func (c *Canvas) Curve(x1, y1, cx1, cy1, cx2, cy2, radius float64) *Canvas {
	return c.Begin().
		Vertex(x1, y1).
		CurveVertex(cx1, cy1, cx2, cy2, radius).
		End(false)
}

// Ellipse draws an ellipse of the given width and height, centred at
// (x, y) and rotated by angle.
func (c *Canvas) Ellipse(x, y, width, height, angle float64) *Canvas {
	return c.Begin().with(func(p *sketch.Path) {
		p.Ellipse(x, y, width, height, angle)
	}).End(false)
}

// Line draws a line segment.
func (c *Canvas) Line(x1, y1, x2, y2 float64) *Canvas {
	return c.Begin().
		Vertex(x1, y1).
		Vertex(x2, y2).
		End(false)
}

// Point draws a dot in the stroke colour, with radius equal to the line
// width.
func (c *Canvas) Point(x, y float64) *Canvas {
	s := c.settings
	return c.Push().
		NoStroke().
		Fill(s.Stroke).
		Circle(x, y, s.LineWidth).
		Pop()
}

// Quad draws a closed quadrilateral.
func (c *Canvas) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64) *Canvas {
	return c.Begin().
		Vertex(x1, y1).
		Vertex(x2, y2).
		Vertex(x3, y3).
		Vertex(x4, y4).
		End(true)
}

// Rect draws a rectangle.
func (c *Canvas) Rect(x, y, width, height float64) *Canvas {
	return c.Begin().with(func(p *sketch.Path) {
		p.Rect(x, y, width, height)
	}).End(false)
}

// Square draws a square.
func (c *Canvas) Square(x, y, size float64) *Canvas {
	return c.Rect(x, y, size, size)
}

// Triangle draws a closed triangle.
func (c *Canvas) Triangle(x1, y1, x2, y2, x3, y3 float64) *Canvas {
	return c.Begin().
		Vertex(x1, y1).
		Vertex(x2, y2).
		Vertex(x3, y3).
		End(true)
}

// Begin starts a new path.  The first call to [Canvas.Vertex] afterwards
// moves to its point.
func (c *Canvas) Begin() *Canvas {
	c.path = sketch.NewPath()
	return c
}

// Vertex adds a point to the current path.
func (c *Canvas) Vertex(x, y float64) *Canvas {
	return c.with(func(p *sketch.Path) { p.Vertex(x, y) })
}

// BezierVertex adds a cubic Bézier segment to the current path.
func (c *Canvas) BezierVertex(cx1, cy1, cx2, cy2, x, y float64) *Canvas {
	return c.with(func(p *sketch.Path) { p.BezierVertex(cx1, cy1, cx2, cy2, x, y) })
}

// QuadraticVertex adds a quadratic Bézier segment to the current path.
func (c *Canvas) QuadraticVertex(cx, cy, x, y float64) *Canvas {
	return c.with(func(p *sketch.Path) { p.QuadraticVertex(cx, cy, x, y) })
}

// CurveVertex adds a line and an arc of the given radius, tangent to the
// lines through (x1, y1) and (x2, y2), to the current path.
func (c *Canvas) CurveVertex(x1, y1, x2, y2, radius float64) *Canvas {
	return c.with(func(p *sketch.Path) { p.CurveVertex(x1, y1, x2, y2, radius) })
}

// End optionally closes the current path, then fills and strokes it with
// the current settings.
func (c *Canvas) End(close bool) *Canvas {
	if c.path == nil {
		return c
	}
	c.path.End(close)
	c.draw(c.path)
	return c
}

// with applies build to the current path, starting one if needed.
func (c *Canvas) with(build func(p *sketch.Path)) *Canvas {
	if c.path == nil {
		c.path = sketch.NewPath()
	}
	build(c.path)
	return c
}

// Draw fills and strokes p with the current settings, under the current
// transformation.  Unlike [Canvas.DrawPath], no off-screen image is used.
func (c *Canvas) Draw(p *sketch.Path) *Canvas {
	c.draw(p)
	return c
}

func (c *Canvas) draw(p *sketch.Path) {
	c.settings.apply(c.surface)
	el := p.Elements()
	c.surface.FillPath(el, c.settings.Fill, p.FillRule())
	c.surface.StrokePath(el, c.settings.Stroke)
}
