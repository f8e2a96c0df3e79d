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

package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/canvas"
	"seehuhn.de/go/sketch/paint"
)

// Render draws the scene onto a new canvas.
func Render(sc *Scene, opts ...canvas.Option) (*canvas.Canvas, error) {
	c := canvas.New(sc.Width, sc.Height, opts...)
	if err := Draw(c, sc); err != nil {
		return nil, err
	}
	return c, nil
}

// Draw draws the scene onto an existing canvas, starting from the current
// settings of the canvas.  The scene settings and the transformations
// used by the scene stay in effect afterwards.
func Draw(c *canvas.Canvas, sc *Scene) error {
	if err := sc.validate(); err != nil {
		return err
	}

	if err := applySettings(c, &sc.Settings); err != nil {
		return fmt.Errorf("scene settings: %w", err)
	}
	if sc.Background != "" {
		bg, err := paint.Parse(sc.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		c.Background(bg)
	}

	for i := range sc.Items {
		if err := drawItem(c, &sc.Items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	sketch.Logger().Debug("draw scene", "items", len(sc.Items))
	return nil
}

func drawItem(c *canvas.Canvas, it *Item) error {
	if !it.Settings.IsZero() {
		c.Push()
		defer c.Pop()
		if err := applySettings(c, &it.Settings); err != nil {
			return err
		}
	}

	switch {
	case it.Op != nil:
		if o, ok := canvasOps[it.Op.Name]; ok {
			o.apply(c, it.Op.Args)
			return nil
		}
		p := sketch.NewPath()
		Build(p, []Op{*it.Op})
		c.Draw(p)
	case it.Path != nil:
		return c.DrawPath(it.Path.NewPath(), it.Path.X, it.Path.Y)
	case it.Shape != nil:
		return c.DrawShape(it.Shape.NewShape(), 0, 0)
	case it.Erase != nil:
		return c.Erase(func(p *sketch.Path) {
			Build(p, it.Erase)
		})
	}
	return nil
}

// applySettings overlays the values given in node on the current
// settings of c.
func applySettings(c *canvas.Canvas, node *yaml.Node) error {
	if node.IsZero() {
		return nil
	}
	s := c.Settings()
	if err := node.Decode(&s); err != nil {
		return err
	}
	c.SetSettings(s)
	return nil
}
