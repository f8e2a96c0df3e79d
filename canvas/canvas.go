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

// Package canvas provides an immediate-mode drawing context on top of a
// [raster.Surface].
//
// A Canvas keeps a current set of [Settings] (fill, stroke, line and
// shadow parameters) and a current transformation.  Primitives like
// [Canvas.Rect] or [Canvas.Circle] are filled and stroked with the current
// settings as soon as they are called.  [Canvas.Push] and [Canvas.Pop]
// save and restore the settings together with the transformation.
//
// Paths and shapes from package sketch can be built off-screen and then
// placed on the canvas using [Canvas.DrawPath] and [Canvas.DrawShape].
package canvas

import (
	"image"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/paint"
	"seehuhn.de/go/sketch/raster"
)

// Canvas is a drawing context.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	surface  *raster.Surface
	settings Settings
	states   []Settings

	// path is the path under construction between Begin and End.
	path *sketch.Path
}

// Option configures a new Canvas.
type Option func(*Canvas)

// WithSettings sets the initial drawing settings.
func WithSettings(s Settings) Option {
	return func(c *Canvas) {
		c.settings = s
	}
}

// WithSurface makes the canvas draw onto an existing surface.  The size
// passed to [New] is ignored in this case.
func WithSurface(s *raster.Surface) Option {
	return func(c *Canvas) {
		c.surface = s
	}
}

// New returns a transparent canvas of the given size, using the default
// settings.
func New(width, height int, opts ...Option) *Canvas {
	c := &Canvas{
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.surface == nil {
		c.surface = raster.NewSurface(width, height)
	}
	sketch.Logger().Debug("new canvas", "width", c.Width(), "height", c.Height())
	return c
}

// Resize replaces the drawing surface by a transparent one of the new
// size.  The transformation is reset and the saved states are discarded.
// The current settings are kept.
func (c *Canvas) Resize(width, height int) *Canvas {
	c.surface = raster.NewSurface(width, height)
	c.states = c.states[:0]
	c.path = nil
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.surface.Width() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.surface.Height() }

// Surface returns the surface the canvas draws on.
func (c *Canvas) Surface() *raster.Surface { return c.surface }

// Image returns the pixels of the canvas.  The image is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.surface.Image() }

// Settings returns the current settings.
func (c *Canvas) Settings() Settings { return c.settings }

// SetSettings replaces the current settings.
func (c *Canvas) SetSettings(s Settings) *Canvas {
	c.settings = s
	return c
}

// Push saves the current settings and transformation.
func (c *Canvas) Push() *Canvas {
	c.states = append(c.states, c.settings)
	c.surface.Save()
	return c
}

// Pop restores the settings and transformation saved by the matching
// [Canvas.Push].  If nothing was saved, Pop does nothing.
func (c *Canvas) Pop() *Canvas {
	n := len(c.states)
	if n == 0 {
		return c
	}
	c.settings = c.states[n-1]
	c.states = c.states[:n-1]
	c.surface.Restore()
	return c
}

// Reset restores the default settings and the identity transformation.
// Saved states are not affected.
func (c *Canvas) Reset() *Canvas {
	c.settings = DefaultSettings()
	return c.ResetMatrix()
}

// ApplyMatrix multiplies the current transformation by the matrix
//
//	[a c e]
//	[b d f]
//	[0 0 1]
//
// so that user coordinates are transformed by this matrix first.
func (c *Canvas) ApplyMatrix(a, b, cc, d, e, f float64) *Canvas {
	c.surface.Transform(matrix.Matrix{a, b, cc, d, e, f})
	return c
}

// ResetMatrix sets the transformation to the identity.
func (c *Canvas) ResetMatrix() *Canvas {
	c.surface.ResetTransform()
	return c
}

// Rotate rotates user space clockwise by angle radians.
func (c *Canvas) Rotate(angle float64) *Canvas {
	c.surface.Rotate(angle)
	return c
}

// Scale scales user space.
func (c *Canvas) Scale(x, y float64) *Canvas {
	c.surface.Scale(x, y)
	return c
}

// Translate moves the origin of user space.
func (c *Canvas) Translate(x, y float64) *Canvas {
	c.surface.Translate(x, y)
	return c
}

// LinearGradient returns a linear gradient along the line from (x0, y0)
// to (x1, y1), in user space.  Color stops are added by the caller.
func (c *Canvas) LinearGradient(x0, y0, x1, y1 float64) *paint.Linear {
	return paint.NewLinear(x0, y0, x1, y1)
}

// RadialGradient returns a gradient between the circles (x0, y0, r0) and
// (x1, y1, r1), in user space.
func (c *Canvas) RadialGradient(x0, y0, r0, x1, y1, r1 float64) *paint.Radial {
	return paint.NewRadial(x0, y0, r0, x1, y1, r1)
}

// CreatePath returns a new, empty path.
func (c *Canvas) CreatePath() *sketch.Path {
	return sketch.NewPath()
}

// CreateShape returns a new shape without layers.
func (c *Canvas) CreateShape(x, y, angle, anchorX, anchorY float64) *sketch.Shape {
	return sketch.NewShape(x, y, angle, anchorX, anchorY)
}
