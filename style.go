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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/paint"
	"seehuhn.de/go/sketch/raster"
)

// Style controls how paths and shapes are rendered.
type Style struct {
	// Fill is used to fill the path.  If Fill is nil, the path is not
	// filled.
	Fill paint.Paint

	// Stroke is used to stroke the path.  If Stroke is nil, the path is
	// not stroked.
	Stroke paint.Paint

	// LineWidth is the stroke width.  Positive values also enlarge the
	// rendered surface by LineWidth on every side.  Non-positive values
	// stroke with width 1.
	LineWidth float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins.  Zero selects the
	// default of 10.
	MiterLimit float64

	Shadow raster.Shadow
}

// expansion returns the margin added around the bounding box.
func (st Style) expansion() float64 {
	return max(st.LineWidth, 0)
}

// apply copies the stroke and shadow parameters to s.
func (st Style) apply(s *raster.Surface) {
	s.LineWidth = 1
	if st.LineWidth > 0 {
		s.LineWidth = st.LineWidth
	}
	s.Cap = st.Cap
	s.Join = st.Join
	s.MiterLimit = 10
	if st.MiterLimit > 0 {
		s.MiterLimit = st.MiterLimit
	}
	s.Shadow = st.Shadow
}
