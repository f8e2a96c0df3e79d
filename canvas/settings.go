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
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/paint"
	"seehuhn.de/go/sketch/raster"
)

// Settings is the drawing state of a canvas, apart from the
// transformation.  A nil Fill or Stroke disables filling or stroking.
type Settings struct {
	Fill       paint.Paint
	Stroke     paint.Paint
	LineWidth  float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Shadow     raster.Shadow
}

// DefaultSettings returns the settings of a new canvas: no fill, a black
// stroke of width 1, and no shadow.
func DefaultSettings() Settings {
	return Settings{
		Stroke:     paint.Black,
		LineWidth:  1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10,
	}
}

// Style returns the style used to render paths and shapes with these
// settings.
func (s Settings) Style() sketch.Style {
	return sketch.Style{
		Fill:       s.Fill,
		Stroke:     s.Stroke,
		LineWidth:  s.LineWidth,
		Cap:        s.Cap,
		Join:       s.Join,
		MiterLimit: s.MiterLimit,
		Shadow:     s.Shadow,
	}
}

// apply copies the line and shadow parameters to the surface.
// Non-positive widths and miter limits select the defaults.
func (s Settings) apply(dst *raster.Surface) {
	dst.LineWidth = 1
	if s.LineWidth > 0 {
		dst.LineWidth = s.LineWidth
	}
	dst.Cap = s.Cap
	dst.Join = s.Join
	dst.MiterLimit = 10
	if s.MiterLimit > 0 {
		dst.MiterLimit = s.MiterLimit
	}
	dst.Shadow = s.Shadow
}

// Fill sets the fill paint.
func (c *Canvas) Fill(p paint.Paint) *Canvas {
	c.settings.Fill = p
	return c
}

// NoFill disables filling.
func (c *Canvas) NoFill() *Canvas {
	c.settings.Fill = nil
	return c
}

// Stroke sets the stroke paint.
func (c *Canvas) Stroke(p paint.Paint) *Canvas {
	c.settings.Stroke = p
	return c
}

// NoStroke disables stroking.
func (c *Canvas) NoStroke() *Canvas {
	c.settings.Stroke = nil
	return c
}

// StrokeWidth sets the line width.
func (c *Canvas) StrokeWidth(w float64) *Canvas {
	c.settings.LineWidth = w
	return c
}

// LineCap sets the shape of line ends.
func (c *Canvas) LineCap(style graphics.LineCapStyle) *Canvas {
	c.settings.Cap = style
	return c
}

// LineJoin sets the shape of corners.
func (c *Canvas) LineJoin(style graphics.LineJoinStyle) *Canvas {
	c.settings.Join = style
	return c
}

// MiterLimit sets the miter limit for mitered corners.
func (c *Canvas) MiterLimit(limit float64) *Canvas {
	c.settings.MiterLimit = limit
	return c
}

// Shadow sets the shadow colour.
func (c *Canvas) Shadow(col color.Color) *Canvas {
	c.settings.Shadow.Color = color.RGBAModel.Convert(col).(color.RGBA)
	return c
}

// ShadowBlur sets the amount of shadow blur.
func (c *Canvas) ShadowBlur(amount float64) *Canvas {
	c.settings.Shadow.Blur = amount
	return c
}

// ShadowOffset sets the shadow offset, in pixels.
func (c *Canvas) ShadowOffset(x, y float64) *Canvas {
	c.settings.Shadow.OffsetX = x
	c.settings.Shadow.OffsetY = y
	return c
}

// NoShadow makes the shadow transparent.  Blur and offset are kept.
func (c *Canvas) NoShadow() *Canvas {
	c.settings.Shadow.Color = color.RGBA{}
	return c
}

// LoadSettings reads settings in YAML format from r.  Values not given
// in the input keep their defaults.
//
// Example:
//
//	fill: "#ffcc00"
//	stroke: none
//	line_width: 2
//	line_cap: round
//	line_join: bevel
//	shadow:
//	  color: rgba(0, 0, 0, 0.5)
//	  blur: 4
//	  offset_x: 2
//	  offset_y: 2
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	err := yaml.NewDecoder(r).Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return DefaultSettings(), fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}

type settingsYAML struct {
	Fill       *string     `yaml:"fill"`
	Stroke     *string     `yaml:"stroke"`
	LineWidth  *float64    `yaml:"line_width"`
	LineCap    string      `yaml:"line_cap"`
	LineJoin   string      `yaml:"line_join"`
	MiterLimit *float64    `yaml:"miter_limit"`
	Shadow     *shadowYAML `yaml:"shadow"`
}

type shadowYAML struct {
	Color   string  `yaml:"color"`
	Blur    float64 `yaml:"blur"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

var (
	capNames = map[string]graphics.LineCapStyle{
		"butt":   graphics.LineCapButt,
		"round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	}
	joinNames = map[string]graphics.LineJoinStyle{
		"miter": graphics.LineJoinMiter,
		"round": graphics.LineJoinRound,
		"bevel": graphics.LineJoinBevel,
	}
)

// UnmarshalYAML implements [yaml.Unmarshaler].  Only the values present
// in the node are changed.
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	var in settingsYAML
	if err := value.Decode(&in); err != nil {
		return err
	}

	res := *s
	var err error
	if in.Fill != nil {
		if res.Fill, err = ParsePaint(*in.Fill); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	if in.Stroke != nil {
		if res.Stroke, err = ParsePaint(*in.Stroke); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	if in.LineWidth != nil {
		res.LineWidth = *in.LineWidth
	}
	if in.LineCap != "" {
		lc, ok := capNames[strings.ToLower(in.LineCap)]
		if !ok {
			return fmt.Errorf("line_cap: unknown value %q", in.LineCap)
		}
		res.Cap = lc
	}
	if in.LineJoin != "" {
		lj, ok := joinNames[strings.ToLower(in.LineJoin)]
		if !ok {
			return fmt.Errorf("line_join: unknown value %q", in.LineJoin)
		}
		res.Join = lj
	}
	if in.MiterLimit != nil {
		res.MiterLimit = *in.MiterLimit
	}
	if in.Shadow != nil {
		var col paint.Solid
		if in.Shadow.Color != "" {
			if col, err = paint.Parse(in.Shadow.Color); err != nil {
				return fmt.Errorf("shadow: %w", err)
			}
		}
		res.Shadow = raster.Shadow{
			Color:   color.RGBA(col),
			Blur:    in.Shadow.Blur,
			OffsetX: in.Shadow.OffsetX,
			OffsetY: in.Shadow.OffsetY,
		}
	}

	*s = res
	return nil
}

// ParsePaint converts a colour string into a paint.  The string "none"
// gives a nil paint, all other values are parsed by [paint.Parse].
func ParsePaint(s string) (paint.Paint, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return nil, nil
	}
	return paint.Parse(s)
}
