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

import (
	"fmt"
	"image"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/paint"
	"seehuhn.de/go/sketch/raster"
)

// Background fills the whole canvas with p.  The stroke setting is
// ignored; the current transformation applies.
func (c *Canvas) Background(p paint.Paint) *Canvas {
	return c.Push().
		NoStroke().
		Fill(p).
		Rect(0, 0, float64(c.Width()), float64(c.Height())).
		Pop()
}

// Clear makes the canvas transparent.
func (c *Canvas) Clear() *Canvas {
	c.surface.ClearRect(0, 0, float64(c.Width()), float64(c.Height()))
	return c
}

// DrawImage draws img with its top-left corner at (x, y) in user space.
func (c *Canvas) DrawImage(img image.Image, x, y float64) *Canvas {
	c.surface.Composite(img, x, y, raster.BlendNormal)
	return c
}

// DrawPath renders p with the current settings and draws the result,
// shifted by (x, y).
func (c *Canvas) DrawPath(p *sketch.Path, x, y float64) error {
	return c.drawPath(p, x, y, raster.BlendNormal)
}

func (c *Canvas) drawPath(p *sketch.Path, x, y float64, mode raster.BlendMode) error {
	style := c.settings.Style()
	img, err := p.Render(style)
	if err != nil {
		return fmt.Errorf("draw path: %w", err)
	}
	b := p.BoundingBox()
	lw := max(style.LineWidth, 0)
	c.surface.Composite(img.Image(), b.X()-lw+x, b.Y()-lw+y, mode)
	return nil
}

// DrawShape renders s with the current settings and draws the result,
// shifted by (x, y).
func (c *Canvas) DrawShape(s *sketch.Shape, x, y float64) error {
	style := c.settings.Style()
	img, err := s.Render(style)
	if err != nil {
		return fmt.Errorf("draw shape: %w", err)
	}
	b := s.BoundingBox()
	if b.IsEmpty() {
		return nil
	}
	lw := max(style.LineWidth, 0)
	c.surface.Composite(img.Image(), b.X()-lw+x, b.Y()-lw+y, raster.BlendNormal)
	return nil
}

// Erase makes the area of the path built by build transparent.  The path
// is rendered with the default settings and a black fill, in device
// space.  The current settings and transformation are not changed.
func (c *Canvas) Erase(build func(p *sketch.Path)) error {
	p := sketch.NewPath()
	if build != nil {
		build(p)
	}

	c.Push()
	defer c.Pop()
	c.Reset().Fill(paint.Black)
	return c.drawPath(p, 0, 0, raster.BlendSubtract)
}

// GetImage returns a copy of the pixels in the given device rectangle.
func (c *Canvas) GetImage(sx, sy, sw, sh int) *image.RGBA {
	return c.surface.SubImage(sx, sy, sw, sh)
}

// PutImage replaces the pixels at (dx, dy) in device space by img,
// ignoring the transformation and the settings.
func (c *Canvas) PutImage(img image.Image, dx, dy int) *Canvas {
	c.surface.PutImage(img, dx, dy)
	return c
}
