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
	"math"
)

// BoundingBox is an axis-aligned rectangle, given by its edges.
// The zero value is the degenerate box at the origin; use [EmptyBox] for a
// box which contains nothing.
type BoundingBox struct {
	Top, Right, Bottom, Left float64
}

// EmptyBox returns the box which any call to extend replaces.  Its width
// and height are -Inf.
func EmptyBox() BoundingBox {
	return BoundingBox{
		Top:    math.Inf(1),
		Right:  math.Inf(-1),
		Bottom: math.Inf(-1),
		Left:   math.Inf(1),
	}
}

// X returns the left edge.
func (b BoundingBox) X() float64 { return b.Left }

// Y returns the top edge.
func (b BoundingBox) Y() float64 { return b.Top }

// Width returns Right - Left.
func (b BoundingBox) Width() float64 { return b.Right - b.Left }

// Height returns Bottom - Top.
func (b BoundingBox) Height() float64 { return b.Bottom - b.Top }

// IsEmpty reports whether b contains no point.  Boxes with NaN
// coordinates are empty.
func (b BoundingBox) IsEmpty() bool {
	return !(b.Left <= b.Right && b.Top <= b.Bottom)
}

// IsFinite reports whether all edges of b are finite numbers.
func (b BoundingBox) IsFinite() bool {
	for _, v := range []float64{b.Top, b.Right, b.Bottom, b.Left} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Contains reports whether o lies inside b.  Every box contains the empty
// box.
func (b BoundingBox) Contains(o BoundingBox) bool {
	if o.IsEmpty() {
		return true
	}
	return b.Left <= o.Left && b.Top <= o.Top && o.Right <= b.Right && o.Bottom <= b.Bottom
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.Left, b.Top, b.Right, b.Bottom)
}

// extend widens b to include the given coordinates.  The box never
// shrinks.
func (b *BoundingBox) extend(xs, ys []float64) {
	for _, y := range ys {
		b.Top = min(b.Top, y)
		b.Bottom = max(b.Bottom, y)
	}
	for _, x := range xs {
		b.Left = min(b.Left, x)
		b.Right = max(b.Right, x)
	}
}
