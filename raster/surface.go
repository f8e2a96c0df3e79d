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
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/internal/logger"
	"seehuhn.de/go/sketch/paint"
)

// Shadow describes the drop shadow painted below fills and strokes.
// Offsets are in device pixels and are not affected by the transform.
type Shadow struct {
	Color            color.RGBA // premultiplied
	Blur             float64
	OffsetX, OffsetY float64
}

// IsZero reports whether the shadow paints nothing.
func (s Shadow) IsZero() bool {
	return s.Color.A == 0 || (s.Blur <= 0 && s.OffsetX == 0 && s.OffsetY == 0)
}

// Surface is a premultiplied RGBA raster together with a current
// transformation matrix and the graphics state used for stroking.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	LineWidth  float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Shadow     Shadow

	img   *image.RGBA
	ctm   matrix.Matrix
	stack []surfaceState
	r     *Rasterizer
}

type surfaceState struct {
	ctm        matrix.Matrix
	lineWidth  float64
	cap        graphics.LineCapStyle
	join       graphics.LineJoinStyle
	miterLimit float64
	shadow     Shadow
}

// NewSurface allocates a transparent surface.  Non-positive sizes give a
// zero-size surface.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	logger.Get().Debug("allocate surface", "width", width, "height", height)
	return &Surface{
		LineWidth:  1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		ctm:        matrix.Identity,
		r:          NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)}),
	}
}

// Width returns the width of the surface in pixels.
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the height of the surface in pixels.
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Image returns the pixels of the surface.  The image is shared, not copied.
func (s *Surface) Image() *image.RGBA { return s.img }

// Save pushes the transform and the stroke and shadow parameters.
func (s *Surface) Save() {
	s.stack = append(s.stack, surfaceState{
		ctm:        s.ctm,
		lineWidth:  s.LineWidth,
		cap:        s.Cap,
		join:       s.Join,
		miterLimit: s.MiterLimit,
		shadow:     s.Shadow,
	})
}

// Restore pops the state saved by the matching Save.  Restore without a
// matching Save does nothing.
func (s *Surface) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	st := s.stack[n-1]
	s.stack = s.stack[:n-1]
	s.ctm = st.ctm
	s.LineWidth = st.lineWidth
	s.Cap = st.cap
	s.Join = st.join
	s.MiterLimit = st.miterLimit
	s.Shadow = st.shadow
}

// CTM returns the current transformation matrix.
func (s *Surface) CTM() matrix.Matrix { return s.ctm }

// SetTransform replaces the current transformation matrix.
func (s *Surface) SetTransform(m matrix.Matrix) { s.ctm = m }

// ResetTransform sets the current transformation to the identity.
func (s *Surface) ResetTransform() { s.ctm = matrix.Identity }

// Transform applies m before the current transformation.
func (s *Surface) Transform(m matrix.Matrix) { s.ctm = m.Mul(s.ctm) }

// Translate moves the origin of user space to (x, y).
func (s *Surface) Translate(x, y float64) {
	s.Transform(matrix.Translate(x, y))
}

// Scale scales user space.
func (s *Surface) Scale(x, y float64) {
	s.Transform(matrix.Scale(x, y))
}

// Rotate rotates user space by the angle a, in radians.  With the y-axis
// pointing down, positive angles turn clockwise on screen.
func (s *Surface) Rotate(a float64) {
	s.Transform(matrix.Rotate(a))
}

// FillPath fills p with src under the current transformation.
// A nil paint fills nothing.
func (s *Surface) FillPath(p curve.BezPath, src paint.Paint, rule FillRule) {
	if src == nil || len(p) == 0 {
		return
	}
	data := ToData(p)
	s.paintCoverage(src, func(emit func(y, xMin int, coverage []float32)) {
		s.r.Fill(data, rule, emit)
	})
}

// StrokePath strokes p with src, using the line width, cap, join and miter
// limit of the surface.  A nil paint strokes nothing.
func (s *Surface) StrokePath(p curve.BezPath, src paint.Paint) {
	if src == nil || len(p) == 0 {
		return
	}
	data := ToData(p)
	s.paintCoverage(src, func(emit func(y, xMin int, coverage []float32)) {
		s.r.Width = s.LineWidth
		s.r.Cap = s.Cap
		s.r.Join = s.Join
		s.r.MiterLimit = max(s.MiterLimit, 1)
		s.r.Stroke(data, emit)
	})
}

// paintCoverage prepares the rasterizer and composites src, weighted by
// the coverage produced by run, onto the surface.
func (s *Surface) paintCoverage(src paint.Paint, run func(emit func(y, xMin int, coverage []float32))) {
	s.r.Reset(rect.Rect{URx: float64(s.Width()), URy: float64(s.Height())})
	s.r.CTM = s.ctm
	if s.Width() == 0 || s.Height() == 0 {
		return
	}

	if s.Shadow.IsZero() {
		run(s.coverageWriter(s.img, src))
		return
	}

	layer := image.NewRGBA(s.img.Rect)
	run(s.coverageWriter(layer, src))
	s.drawShadow(layer)
	compositeOver(s.img, layer, image.Point{})
}

// coverageWriter returns an emit callback which paints src onto dst using
// source-over compositing.
func (s *Surface) coverageWriter(dst *image.RGBA, src paint.Paint) func(y, xMin int, coverage []float32) {
	solid, isSolid := src.(paint.Solid)
	var inv matrix.Matrix
	if m := s.ctm; m[0]*m[3]-m[1]*m[2] != 0 {
		inv = m.Inv()
	}
	return func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			var c color.RGBA
			if isSolid {
				c = color.RGBA(solid)
			} else {
				u := inv.Apply(vec.Vec2{X: float64(xMin+i) + 0.5, Y: float64(y) + 0.5})
				c = src.ColorAt(u.X, u.Y)
			}
			blendOver(row[4*i:4*i+4], c, min(cov, 1))
		}
	}
}

// drawShadow paints the shadow of layer onto the surface.
func (s *Surface) drawShadow(layer *image.RGBA) {
	sh := s.Shadow
	tint := image.NewRGBA(layer.Rect)
	for i := 3; i < len(layer.Pix); i += 4 {
		a := uint32(layer.Pix[i])
		if a == 0 {
			continue
		}
		tint.Pix[i-3] = uint8(uint32(sh.Color.R) * a / 255)
		tint.Pix[i-2] = uint8(uint32(sh.Color.G) * a / 255)
		tint.Pix[i-1] = uint8(uint32(sh.Color.B) * a / 255)
		tint.Pix[i] = uint8(uint32(sh.Color.A) * a / 255)
	}

	var shadow image.Image = tint
	if sh.Blur > 0 {
		// canvas blur values are twice the standard deviation
		shadow = blur.Gaussian(tint, sh.Blur/2)
	}

	if sh.OffsetX == math.Round(sh.OffsetX) && sh.OffsetY == math.Round(sh.OffsetY) {
		compositeOver(s.img, shadow, image.Pt(int(sh.OffsetX), int(sh.OffsetY)))
		return
	}
	s.compositeAffine(shadow, matrix.Translate(sh.OffsetX, sh.OffsetY), BlendNormal)
}

// blendOver composites the premultiplied colour c, scaled by the coverage
// cov, onto the four bytes of px.
func blendOver(px []uint8, c color.RGBA, cov float32) {
	sa := float32(c.A) * cov
	if sa <= 0 {
		return
	}
	k := 1 - sa/255
	px[0] = uint8(float32(c.R)*cov + float32(px[0])*k + 0.5)
	px[1] = uint8(float32(c.G)*cov + float32(px[1])*k + 0.5)
	px[2] = uint8(float32(c.B)*cov + float32(px[2])*k + 0.5)
	px[3] = uint8(sa + float32(px[3])*k + 0.5)
}
