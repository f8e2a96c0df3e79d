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

package sketch

import (
	"fmt"
	"io"
	"math"
	"slices"

	"honnef.co/go/curve"

	"seehuhn.de/go/sketch/raster"
)

// arcTolerance is the maximal distance, in user space units, between an
// arc and the Bézier curves which approximate it.
const arcTolerance = 1e-3

// Path records geometry and the bounding box of the construction points.
//
// All geometry methods return the receiver, so that calls can be chained.
// Curves and arcs widen the bounding box by their control points or by
// centre ± radius, rather than by their exact extent.
type Path struct {
	elements  curve.BezPath
	bounds    BoundingBox
	hasVertex bool
	rule      raster.FillRule

	start   curve.Point // first point of the current subpath
	current curve.Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{bounds: EmptyBox()}
}

// BoundingBox returns the accumulated bounding box.  For a path without
// geometry this is [EmptyBox].
func (p *Path) BoundingBox() BoundingBox {
	return p.bounds
}

// IsEmpty reports whether no geometry has been added to p.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Elements returns a copy of the path outline.
func (p *Path) Elements() curve.BezPath {
	return slices.Clone(p.elements)
}

// FillRule returns the rule used for filling and hit testing.
func (p *Path) FillRule() raster.FillRule {
	return p.rule
}

// SetFillRule sets the rule used for filling and hit testing.
// The default is [raster.NonZero].
func (p *Path) SetFillRule(rule raster.FillRule) *Path {
	p.rule = rule
	return p
}

// ContainsPoint reports whether (x, y), in the coordinates of the path,
// lies in the area filled by the path.  Open subpaths count as closed.
func (p *Path) ContainsPoint(x, y float64) bool {
	return raster.PointInPath(p.elements, x, y, p.rule)
}

// WriteSVG writes the outline as SVG path data.
func (p *Path) WriteSVG(w io.Writer) error {
	return p.elements.WriteSVG(w, curve.SVGOptions{})
}

// Render draws the path onto a new transparent surface, just large enough
// for the bounding box, expanded by style.LineWidth on every side.  The
// top-left corner of the surface corresponds to the point
// (BoundingBox().X() - lw, BoundingBox().Y() - lw).
//
// Render returns [ErrEmptyGeometry] if the bounding box is empty or not
// finite.
func (p *Path) Render(style Style) (*raster.Surface, error) {
	b := p.bounds
	if b.IsEmpty() || !b.IsFinite() {
		Logger().Warn("cannot render path", "bounds", b)
		return nil, fmt.Errorf("render path %s: %w", b, ErrEmptyGeometry)
	}

	lw := style.expansion()
	s := raster.NewSurface(rasterSize(b.Width(), lw), rasterSize(b.Height(), lw))
	style.apply(s)
	s.Translate(-(b.X() - lw), -(b.Y() - lw))

	s.FillPath(p.elements, style.Fill, p.rule)
	s.StrokePath(p.elements, style.Stroke)
	return s, nil
}

// rasterSize returns the number of pixels needed for the extent size,
// expanded by lw on both sides.  Sizes within rounding error of an integer
// are not rounded up.
func rasterSize(size, lw float64) int {
	v := size + 2*lw
	if n := math.Round(v); math.Abs(v-n) < 1e-9 {
		return int(n)
	}
	return int(math.Ceil(v))
}

// Begin starts a new vertex sequence: the next call to [Path.Vertex]
// moves to its point instead of drawing a line.
func (p *Path) Begin() *Path {
	p.hasVertex = false
	return p
}

// End finishes a vertex sequence, optionally closing the current subpath.
func (p *Path) End(close bool) *Path {
	if close {
		p.closePath()
	}
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.closePath()
	return p
}

// Arc adds a circular arc around (x, y), from angle start to angle end,
// turning clockwise on screen.  If the path already has a current point,
// a straight line joins it to the start of the arc.
func (p *Path) Arc(x, y, r, start, end float64) *Path {
	sweep := end - start
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else {
		sweep = math.Mod(sweep, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	p.appendArc(curve.Arc{
		Center:     curve.Pt(x, y),
		Radii:      curve.Vec(r, r),
		StartAngle: start,
		SweepAngle: sweep,
	})
	p.bounds.extend([]float64{x - r, x + r}, []float64{y - r, y + r})
	return p
}

// Bezier adds a cubic Bézier curve from (x1, y1) to (x2, y2), as a new
// subpath.
func (p *Path) Bezier(x1, y1, cx1, cy1, cx2, cy2, x2, y2 float64) *Path {
	p.moveTo(curve.Pt(x1, y1))
	p.cubicTo(curve.Pt(cx1, cy1), curve.Pt(cx2, cy2), curve.Pt(x2, y2))
	p.bounds.extend([]float64{x1, cx1, cx2, x2}, []float64{y1, cy1, cy2, y2})
	return p
}

// Circle adds a circle with centre (x, y) and radius r.
func (p *Path) Circle(x, y, r float64) *Path {
	return p.Ellipse(x, y, 2*r, 2*r, 0)
}

// Curve adds a new subpath starting at (x1, y1), with a line towards the
// corner (cx1, cy1) which is rounded off by an arc of radius r, tangent to
// the line from the corner towards (cx2, cy2).
func (p *Path) Curve(x1, y1, cx1, cy1, cx2, cy2, r float64) *Path {
	p.moveTo(curve.Pt(x1, y1))
	p.arcTo(curve.Pt(cx1, cy1), curve.Pt(cx2, cy2), r)
	p.bounds.extend([]float64{x1, cx1, cx2}, []float64{y1, cy1, cy2})
	return p
}

// Ellipse adds a full ellipse with centre (x, y), the given width and
// height, and its axes rotated by angle.  The bounding box ignores the
// rotation.
func (p *Path) Ellipse(x, y, w, h, angle float64) *Path {
	rx, ry := w/2, h/2
	p.appendArc(curve.Arc{
		Center:     curve.Pt(x, y),
		Radii:      curve.Vec(rx, ry),
		SweepAngle: 2 * math.Pi,
		XRotation:  angle,
	})
	p.bounds.extend([]float64{x - rx, x + rx}, []float64{y - ry, y + ry})
	return p
}

// Line adds the line from (x1, y1) to (x2, y2) as a new subpath.
func (p *Path) Line(x1, y1, x2, y2 float64) *Path {
	p.moveTo(curve.Pt(x1, y1))
	p.lineTo(curve.Pt(x2, y2))
	p.bounds.extend([]float64{x1, x2}, []float64{y1, y2})
	return p
}

// Quad adds a closed quadrilateral.
func (p *Path) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64) *Path {
	p.polygon(x1, y1, x2, y2, x3, y3, x4, y4)
	p.bounds.extend([]float64{x1, x2, x3, x4}, []float64{y1, y2, y3, y4})
	return p
}

// Rect adds a closed rectangle with top-left corner (x, y).
func (p *Path) Rect(x, y, w, h float64) *Path {
	p.polygon(x, y, x+w, y, x+w, y+h, x, y+h)
	p.bounds.extend([]float64{x, x + w}, []float64{y, y + h})
	return p
}

// Square adds a closed square with top-left corner (x, y).
func (p *Path) Square(x, y, size float64) *Path {
	return p.Rect(x, y, size, size)
}

// Triangle adds a closed triangle.
func (p *Path) Triangle(x1, y1, x2, y2, x3, y3 float64) *Path {
	p.polygon(x1, y1, x2, y2, x3, y3)
	p.bounds.extend([]float64{x1, x2, x3}, []float64{y1, y2, y3})
	return p
}

// Vertex adds a point to the current vertex sequence.  The first vertex
// after [NewPath] or [Path.Begin] starts a new subpath, later vertices are
// joined by straight lines.
func (p *Path) Vertex(x, y float64) *Path {
	pt := curve.Pt(x, y)
	if !p.hasVertex {
		p.moveTo(pt)
		p.hasVertex = true
	} else {
		p.lineTo(pt)
	}
	p.bounds.extend([]float64{x}, []float64{y})
	return p
}

// BezierVertex adds a cubic Bézier curve from the current point to (x, y).
func (p *Path) BezierVertex(cx1, cy1, cx2, cy2, x, y float64) *Path {
	c1 := curve.Pt(cx1, cy1)
	p.ensureSubpath(c1)
	p.cubicTo(c1, curve.Pt(cx2, cy2), curve.Pt(x, y))
	p.bounds.extend([]float64{cx1, cx2, x}, []float64{cy1, cy2, y})
	return p
}

// QuadraticVertex adds a quadratic Bézier curve from the current point to
// (x, y).
func (p *Path) QuadraticVertex(cx, cy, x, y float64) *Path {
	c := curve.Pt(cx, cy)
	p.ensureSubpath(c)
	p.quadTo(c, curve.Pt(x, y))
	p.bounds.extend([]float64{cx, x}, []float64{cy, y})
	return p
}

// CurveVertex continues the path towards the corner (x1, y1), rounded off
// by an arc of radius r which is tangent to the line from the corner
// towards (x2, y2).
func (p *Path) CurveVertex(x1, y1, x2, y2, r float64) *Path {
	p.arcTo(curve.Pt(x1, y1), curve.Pt(x2, y2), r)
	p.bounds.extend([]float64{x1, x2}, []float64{y1, y2})
	return p
}

func (p *Path) polygon(coords ...float64) {
	p.moveTo(curve.Pt(coords[0], coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		p.lineTo(curve.Pt(coords[i], coords[i+1]))
	}
	p.closePath()
}

func (p *Path) moveTo(pt curve.Point) {
	p.elements.MoveTo(pt)
	p.start = pt
	p.current = pt
}

func (p *Path) lineTo(pt curve.Point) {
	p.resume()
	p.elements.LineTo(pt)
	p.current = pt
}

func (p *Path) quadTo(c, pt curve.Point) {
	p.resume()
	p.elements.QuadTo(c, pt)
	p.current = pt
}

func (p *Path) cubicTo(c1, c2, pt curve.Point) {
	p.resume()
	p.elements.CubicTo(c1, c2, pt)
	p.current = pt
}

func (p *Path) closePath() {
	n := len(p.elements)
	if n == 0 || p.elements[n-1].Kind == curve.ClosePathKind {
		return
	}
	p.elements.ClosePath()
	p.current = p.start
}

// resume starts a new subpath at the current point if the last subpath
// has been closed.
func (p *Path) resume() {
	n := len(p.elements)
	if n > 0 && p.elements[n-1].Kind == curve.ClosePathKind {
		p.moveTo(p.current)
	}
}

// ensureSubpath moves to pt if the path has no current point.
func (p *Path) ensureSubpath(pt curve.Point) {
	if len(p.elements) == 0 {
		p.moveTo(pt)
	}
}

// appendArc adds the elements of a.  The arc is joined to the current
// point by a line, if there is one.
func (p *Path) appendArc(a curve.Arc) {
	for el := range a.PathElements(arcTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if len(p.elements) == 0 {
				p.moveTo(el.P0)
			} else {
				p.lineTo(el.P0)
			}
		case curve.CubicToKind:
			p.cubicTo(el.P0, el.P1, el.P2)
		}
	}
}

// arcTo continues the path to the first tangent point and adds the arc of
// radius r which rounds off the corner p1 between the current point and
// p2.  Degenerate corners give a straight line to p1.
func (p *Path) arcTo(p1, p2 curve.Point, r float64) {
	p.ensureSubpath(p1)
	p0 := p.current

	v1, v2 := p0.Sub(p1), p2.Sub(p1)
	l1, l2 := v1.Hypot(), v2.Hypot()
	if r <= 0 || l1 == 0 || l2 == 0 || math.Abs(v1.Cross(v2)) <= 1e-9*l1*l2 {
		p.lineTo(p1)
		return
	}

	u1, u2 := v1.Div(l1), v2.Div(l2)
	theta := math.Acos(max(-1, min(1, u1.Dot(u2))))
	dist := r / math.Tan(theta/2)
	t1 := p1.Translate(u1.Mul(dist))
	t2 := p1.Translate(u2.Mul(dist))
	center := p1.Translate(u1.Add(u2).Normalize().Mul(r / math.Sin(theta/2)))

	a0 := t1.Sub(center).Angle()
	a1 := t2.Sub(center).Angle()
	p.lineTo(t1)
	p.appendArc(curve.Arc{
		Center:     center,
		Radii:      curve.Vec(r, r),
		StartAngle: a0,
		SweepAngle: math.Remainder(a1-a0, 2*math.Pi),
	})
}
