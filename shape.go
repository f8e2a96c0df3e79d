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
	"slices"

	"seehuhn.de/go/sketch/paint"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/vector"
)

// Layer is one path of a shape.  Contour layers remove area from the
// layers below them.
type Layer struct {
	Path    *Path
	Contour bool
}

// Shape is an ordered stack of layers, placed at (X, Y) and rotated by
// Angle about the anchor point.  The anchor is given relative to (X, Y).
//
// A Shape is not safe for concurrent use.
type Shape struct {
	X, Y             float64
	Angle            float64 // radians, clockwise on screen
	AnchorX, AnchorY float64

	layers []Layer
}

// NewShape returns a shape without layers.
func NewShape(x, y, angle, anchorX, anchorY float64) *Shape {
	return &Shape{X: x, Y: y, Angle: angle, AnchorX: anchorX, AnchorY: anchorY}
}

// Layer adds a normal layer.  The build function is called with a new,
// empty path before Layer returns.
func (s *Shape) Layer(build func(p *Path)) *Shape {
	return s.AddLayer(build, false)
}

// Contour adds a contour layer.  The build function is called with a new,
// empty path before Contour returns.
func (s *Shape) Contour(build func(p *Path)) *Shape {
	return s.AddLayer(build, true)
}

// AddLayer adds a layer built by build.
func (s *Shape) AddLayer(build func(p *Path), contour bool) *Shape {
	p := NewPath()
	if build != nil {
		build(p)
	}
	s.layers = append(s.layers, Layer{Path: p, Contour: contour})
	return s
}

// Layers returns the layers in drawing order.
func (s *Shape) Layers() []Layer {
	return slices.Clone(s.layers)
}

// ContainsPoint reports whether the point (x, y) lies inside the shape.
//
// The layers are visited in order.  Outside the shape, a normal layer
// containing the point moves it inside.  Inside the shape, a contour
// containing the point moves it outside.  All other layers are ignored.
// This agrees with the result of [Shape.Render].
func (s *Shape) ContainsPoint(x, y float64) bool {
	anchor := vector.Of(s.X+s.AnchorX, s.Y+s.AnchorY)
	q := vector.Create(x, y).Sub(anchor).Rotate(-s.Angle).Add(anchor)
	lx, ly := q.X-s.X, q.Y-s.Y

	inside := false
	for _, l := range s.layers {
		if inside != l.Contour || !l.Path.ContainsPoint(lx, ly) {
			continue
		}
		inside = !inside
	}
	return inside
}

// BoundingBox returns the bounding box of the normal layers, after
// rotation and translation.  Contour layers and layers without geometry
// are ignored.  A shape without normal layers has the empty bounding box.
func (s *Shape) BoundingBox() BoundingBox {
	box := EmptyBox()
	for _, l := range s.layers {
		if l.Contour || l.Path.IsEmpty() {
			continue
		}
		b := l.Path.BoundingBox()
		var xs, ys [4]float64
		for i, c := range [4][2]float64{
			{b.Right, b.Top},
			{b.Right, b.Bottom},
			{b.Left, b.Bottom},
			{b.Left, b.Top},
		} {
			r := s.rotate(c[0], c[1])
			xs[i], ys[i] = r.X, r.Y
		}
		box.extend(xs[:], ys[:])
	}
	return BoundingBox{
		Top:    box.Top + s.Y,
		Right:  box.Right + s.X,
		Bottom: box.Bottom + s.Y,
		Left:   box.Left + s.X,
	}
}

// rotate turns the local point (x, y) by Angle about the anchor.
func (s *Shape) rotate(x, y float64) *vector.Vector {
	anchor := vector.Of(s.AnchorX, s.AnchorY)
	return vector.Create(x, y).Sub(anchor).Rotate(s.Angle).Add(anchor)
}

// Render draws the shape onto a new transparent surface covering
// [Shape.BoundingBox], expanded by style.LineWidth on every side.
//
// Each layer is rendered on its own and then composited in order: normal
// layers with style, painted over what is already there, contour layers
// filled in black and used to erase.  Contours are only rasterized
// within the output surface.
//
// A shape without layers renders to a zero-size surface.  If the layers
// have no finite extent, [ErrEmptyGeometry] is returned.
func (s *Shape) Render(style Style) (*raster.Surface, error) {
	if len(s.layers) == 0 {
		return raster.NewSurface(0, 0), nil
	}

	b := s.BoundingBox()
	if b.IsEmpty() || !b.IsFinite() {
		Logger().Warn("cannot render shape", "layers", len(s.layers), "bounds", b)
		return nil, fmt.Errorf("render shape %s: %w", b, ErrEmptyGeometry)
	}

	lw := style.expansion()
	x, y := b.X()-lw, b.Y()-lw
	out := raster.NewSurface(rasterSize(b.Width(), lw), rasterSize(b.Height(), lw))
	out.Translate(s.X-x, s.Y-y)
	out.Translate(s.AnchorX, s.AnchorY)
	out.Rotate(s.Angle)
	out.Translate(-s.AnchorX, -s.AnchorY)

	for i, l := range s.layers {
		if l.Path.IsEmpty() {
			continue
		}

		if l.Contour {
			if cb := l.Path.BoundingBox(); !cb.IsFinite() {
				return nil, fmt.Errorf("layer %d: render path %s: %w", i, cb, ErrEmptyGeometry)
			}
			contourStyle := style
			contourStyle.Fill = paint.Black
			eraseContour(out, l.Path, contourStyle)
			continue
		}

		img, err := l.Path.Render(style)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		lb := l.Path.BoundingBox()
		out.Composite(img.Image(), lb.X()-lw, lb.Y()-lw, raster.BlendNormal)
	}

	Logger().Debug("render shape",
		"layers", len(s.layers),
		"width", out.Width(), "height", out.Height())
	return out, nil
}

// eraseContour removes from out the area covered by p, drawn with style
// under the current transformation of out.
func eraseContour(out *raster.Surface, p *Path, style Style) {
	mask := raster.NewSurface(out.Width(), out.Height())
	style.apply(mask)
	mask.SetTransform(out.CTM())
	mask.FillPath(p.elements, style.Fill, p.rule)
	mask.StrokePath(p.elements, style.Stroke)

	out.Save()
	out.ResetTransform()
	out.Composite(mask.Image(), 0, 0, raster.BlendSubtract)
	out.Restore()
}
