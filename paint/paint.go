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

// Package paint provides the colour sources used to fill and stroke paths:
// solid colours and linear or radial gradients.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Paint gives the colour at a point in user space.
// The returned colour is alpha-premultiplied.
type Paint interface {
	ColorAt(x, y float64) color.RGBA
}

// Solid is a uniform colour, stored alpha-premultiplied.
type Solid color.RGBA

// Commonly used colours.
var (
	Black       = Solid{A: 0xFF}
	White       = Solid{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Transparent = Solid{}
)

// ColorAt implements [Paint].
func (s Solid) ColorAt(x, y float64) color.RGBA {
	return color.RGBA(s)
}

// RGBA implements [color.Color].
func (s Solid) RGBA() (r, g, b, a uint32) {
	return color.RGBA(s).RGBA()
}

// NRGB returns a solid colour from straight (non-premultiplied) components.
func NRGB(r, g, b, a uint8) Solid {
	c := color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA)
	return Solid(c)
}

// ErrSyntax is returned by [Parse] for strings that are not colours.
var ErrSyntax = errors.New("invalid colour")

// Parse converts a CSS colour string into a solid colour.
//
// Accepted forms are "#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)", "rgba(r, g, b, a)", "transparent", and the CSS colour
// names.  In rgba() the alpha value is in the range [0, 1].
func Parse(s string) (Solid, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Solid{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}
	if s[0] == '#' {
		return parseHex(s)
	}

	low := strings.ToLower(s)
	switch {
	case low == "transparent":
		return Transparent, nil
	case strings.HasPrefix(low, "rgba(") || strings.HasPrefix(low, "rgb("):
		return parseFunc(low)
	}

	c, ok := colornames.Map[low]
	if !ok {
		return Solid{}, fmt.Errorf("%w: unknown name %q", ErrSyntax, s)
	}
	return Solid(c), nil
}

// MustParse is like [Parse] but panics if s is not a valid colour.
func MustParse(s string) Solid {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Solid, error) {
	x := s[1:]
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return Solid{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var r, g, b, a uint64
	a = 0xFF
	switch len(x) {
	case 3:
		r, g, b = nibble(v, 2), nibble(v, 1), nibble(v, 0)
	case 4:
		r, g, b, a = nibble(v, 3), nibble(v, 2), nibble(v, 1), nibble(v, 0)
	case 6:
		r, g, b = (v>>16)&0xFF, (v>>8)&0xFF, v&0xFF
	case 8:
		r, g, b, a = (v>>24)&0xFF, (v>>16)&0xFF, (v>>8)&0xFF, v&0xFF
	default:
		return Solid{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return NRGB(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// nibble extracts hex digit i of v (counting from the right) and
// expands it to a byte.
func nibble(v uint64, i int) uint64 {
	return ((v >> (4 * i)) & 0xF) * 0x11
}

// parseFunc handles the rgb() and rgba() notations.
func parseFunc(s string) (Solid, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return Solid{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) != 3 && len(args) != 4 {
		return Solid{}, fmt.Errorf("%w: %q needs 3 or 4 arguments", ErrSyntax, s)
	}

	var rgb [3]uint8
	for i := range 3 {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		if err != nil {
			return Solid{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		rgb[i] = uint8(math.Round(min(max(v, 0), 255)))
	}

	alpha := uint8(0xFF)
	if len(args) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil {
			return Solid{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		alpha = uint8(math.Round(min(max(v, 0), 1) * 255))
	}
	return NRGB(rgb[0], rgb[1], rgb[2], alpha), nil
}
