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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // end points
	T    vec.Vec2 // unit tangent, A→B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// Stroke rasterizes the outline of p, using Width, Cap, Join and
// MiterLimit.  The emit callback receives coverage row by row; its slice
// argument is valid only during the call.
//
// The stroke is built as a union of simple polygons (one per segment, join
// and cap), all with the same orientation, and filled with the nonzero rule.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	r.polys = r.polys[:0]
	r.polyOffsets = r.polyOffsets[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			r.beginPoly()
			r.addCircle(pt, d)
			r.endPoly()
		}
	}

	for i := range r.segsOffsets {
		r.strokeSubpath(r.subpathSegments(i), r.subpathClosed[i], d)
	}

	r.beginEdges()
	for i, start := range r.polyOffsets {
		end := len(r.polys)
		if i+1 < len(r.polyOffsets) {
			end = r.polyOffsets[i+1]
		}
		poly := r.polys[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.fillEdges(NonZero, emit)
}

// subpathSegments returns the segments of subpath i.
func (r *Rasterizer) subpathSegments(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[r.segsOffsets[i]:end]
}

// flattenPath converts p into line segments, grouped by subpath.
// Subpaths which consist of a single point are recorded in
// r.degeneratePoints.
func (r *Rasterizer) flattenPath(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	first := 0 // index in r.segs where the current subpath starts
	inSubpath := false
	drawn := false

	finish := func(closed bool) {
		if !inSubpath || (!drawn && !closed) {
			return
		}
		if len(r.segs) == first {
			r.degeneratePoints = append(r.degeneratePoints, start)
		} else {
			r.segsOffsets = append(r.segsOffsets, first)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			first = len(r.segs)
			inSubpath = true
			drawn = false
			k++

		case path.CmdLineTo:
			r.addStrokeSegment(current, p.Coords[k])
			current = p.Coords[k]
			drawn = true
			k++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
			current = p.Coords[k+1]
			drawn = true
			k += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
			current = p.Coords[k+2]
			drawn = true
			k += 3

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			r.addStrokeSegment(current, start)
			finish(true)
			current = start
			first = len(r.segs)
			inSubpath = false
			drawn = false
		}
	}
	finish(false)
}

// addStrokeSegment appends the segment a→b, unless it has zero length.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := delta.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// strokeSubpath adds the outline polygons of one subpath.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool, d float64) {
	for i := range segs {
		seg := &segs[i]
		r.beginPoly()
		r.polys = append(r.polys,
			seg.A.Add(seg.N.Mul(d)),
			seg.B.Add(seg.N.Mul(d)),
			seg.B.Sub(seg.N.Mul(d)),
			seg.A.Sub(seg.N.Mul(d)),
		)
		r.endPoly()

		switch {
		case i+1 < len(segs):
			r.addJoin(seg.B, seg.T, segs[i+1].T, d)
		case closed:
			r.addJoin(seg.B, seg.T, segs[0].T, d)
		}
	}

	if !closed {
		first, last := &segs[0], &segs[len(segs)-1]
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addCap(last.B, last.T, d)
	}
}

// addJoin adds the join polygon at P, where the direction changes from T1
// to T2.  The join fills the gap on the outer side of the corner.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cross := T1.X*T2.Y - T1.Y*T2.X
	cos := T1.Dot(T2)
	if math.Abs(cross) < collinearityThreshold && cos > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.beginPoly()
		r.addCircle(P, d)
		r.endPoly()
		return
	}

	// outer side: +N when turning towards -N, and vice versa
	s := 1.0
	if cross > 0 {
		s = -1
	}
	N1 := vec.Vec2{X: -s * T1.Y, Y: s * T1.X}
	N2 := vec.Vec2{X: -s * T2.Y, Y: s * T2.X}
	o1 := P.Add(N1.Mul(d))
	o2 := P.Add(N2.Mul(d))

	r.beginPoly()
	r.polys = append(r.polys, P, o1)
	if r.Join == graphics.LineJoinMiter {
		// The miter length relative to the line width is 1/cos(φ/2),
		// where φ is the angle between the tangents.
		const miterEpsilon = 1e-10
		cosHalf := math.Sqrt((1 + cos) / 2)
		bisector := N1.Add(N2)
		if l := bisector.Length(); cosHalf > 0 && l > zeroLengthThreshold &&
			1/cosHalf <= r.MiterLimit+miterEpsilon {
			r.polys = append(r.polys, P.Add(bisector.Mul(d/(cosHalf*l))))
		}
	}
	r.polys = append(r.polys, o2)
	r.endPoly()
}

// addCap adds the cap polygon at the end point P.  T is the unit tangent
// pointing away from the line.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		r.beginPoly()
		r.polys = append(r.polys,
			P.Add(N.Mul(d)),
			ext.Add(N.Mul(d)),
			ext.Sub(N.Mul(d)),
			P.Sub(N.Mul(d)),
		)
		r.endPoly()
	case graphics.LineCapRound:
		r.beginPoly()
		r.addCircle(P, d)
		r.endPoly()
	}
}

// addCircle appends a polygon approximating the circle around center.
// The number of vertices is chosen from the device-space radius and the
// flatness.
func (r *Rasterizer) addCircle(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	// A chord subtending the angle θ deviates from the circle by
	// r(1 - cos(θ/2)).
	step := math.Pi / 2
	if devRadius > r.Flatness {
		step = 2 * math.Acos(1-r.Flatness/devRadius)
	}
	n := max(int(math.Ceil(2*math.Pi/step)), 8)

	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		r.polys = append(r.polys, vec.Vec2{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
}

func (r *Rasterizer) beginPoly() {
	r.polyOffsets = append(r.polyOffsets, len(r.polys))
}

// endPoly finishes the current polygon, discarding it if it has fewer
// than three vertices, and gives it positive orientation.
func (r *Rasterizer) endPoly() {
	start := r.polyOffsets[len(r.polyOffsets)-1]
	poly := r.polys[start:]
	if len(poly) < 3 {
		r.polys = r.polys[:start]
		r.polyOffsets = r.polyOffsets[:len(r.polyOffsets)-1]
		return
	}

	var area float64
	for j := range poly {
		a, b := poly[j], poly[(j+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		slices.Reverse(poly)
	}
}
