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
	"iter"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ToData converts a Bézier path into the representation used by the
// rasterizer.
func ToData(p curve.BezPath) *path.Data {
	res := &path.Data{
		Cmds:   make([]path.Command, 0, len(p)),
		Coords: make([]vec.Vec2, 0, len(p)),
	}
	v := func(pt curve.Point) vec.Vec2 {
		return vec.Vec2{X: pt.X, Y: pt.Y}
	}
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			res.Cmds = append(res.Cmds, path.CmdMoveTo)
			res.Coords = append(res.Coords, v(el.P0))
		case curve.LineToKind:
			res.Cmds = append(res.Cmds, path.CmdLineTo)
			res.Coords = append(res.Coords, v(el.P0))
		case curve.QuadToKind:
			res.Cmds = append(res.Cmds, path.CmdQuadTo)
			res.Coords = append(res.Coords, v(el.P0), v(el.P1))
		case curve.CubicToKind:
			res.Cmds = append(res.Cmds, path.CmdCubeTo)
			res.Coords = append(res.Coords, v(el.P0), v(el.P1), v(el.P2))
		case curve.ClosePathKind:
			res.Cmds = append(res.Cmds, path.CmdClose)
		}
	}
	return res
}

// PointInPath reports whether (x, y) lies inside the area p would fill
// under the given rule.  Like a fill, every open subpath is treated as if
// it were closed.
func PointInPath(p curve.BezPath, x, y float64, rule FillRule) bool {
	w := curve.SegmentsWinding(curve.Segments(closedSubpaths(p)), curve.Pt(x, y))
	if rule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// closedSubpaths yields the elements of p with a ClosePath inserted at the
// end of every open subpath.  Leading ClosePath elements are dropped.
func closedSubpaths(p curve.BezPath) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		started := false
		open := false
		for _, el := range p {
			switch el.Kind {
			case curve.ClosePathKind:
				if !started {
					continue
				}
				open = false
			case curve.MoveToKind:
				if open && !yield(curve.ClosePath()) {
					return
				}
				open = false
			default:
				open = true
			}
			started = true
			if !yield(el) {
				return
			}
		}
		if open {
			yield(curve.ClosePath())
		}
	}
}
