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

package paint

import (
	"image/color"
	"math"
	"slices"
	"sort"
)

// ExtendMode defines how a gradient continues outside [0, 1].
type ExtendMode int

const (
	// ExtendPad repeats the colour of the first or last stop.
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop is a colour at a position along a gradient.
type ColorStop struct {
	Offset float64    // position in [0, 1]
	Color  color.RGBA // premultiplied
}

// stops is an ordered list of colour stops.  Stops with equal offsets keep
// the order in which they were added, giving a hard colour transition.
type stops []ColorStop

func (s *stops) add(offset float64, c color.Color) {
	offset = min(max(offset, 0), 1)
	stop := ColorStop{
		Offset: offset,
		Color:  color.RGBAModel.Convert(c).(color.RGBA),
	}
	i := sort.Search(len(*s), func(i int) bool {
		return (*s)[i].Offset > offset
	})
	*s = append(*s, ColorStop{})
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = stop
}

// at returns the colour at gradient position t.
func (s stops) at(t float64, mode ExtendMode) color.RGBA {
	if len(s) == 0 {
		return color.RGBA{}
	}
	t = applyExtendMode(t, mode)

	if t <= s[0].Offset {
		return s[0].Color
	}
	last := s[len(s)-1]
	if t >= last.Offset {
		return last.Color
	}

	i := sort.Search(len(s), func(i int) bool {
		return s[i].Offset > t
	})
	a, b := s[i-1], s[i]
	if b.Offset == a.Offset {
		return b.Color
	}
	return lerpRGBA(a.Color, b.Color, (t-a.Offset)/(b.Offset-a.Offset))
}

func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = min(max(t, 0), 1)
	}
	return t
}

// lerpRGBA interpolates premultiplied colours.
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + t*(float64(y)-float64(x))))
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// Linear is a gradient along the line from (X0, Y0) to (X1, Y1).
type Linear struct {
	X0, Y0, X1, Y1 float64
	Extend         ExtendMode

	stops stops
}

// NewLinear creates a linear gradient without colour stops.
func NewLinear(x0, y0, x1, y1 float64) *Linear {
	return &Linear{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a colour at the given offset, which is clamped to [0, 1].
func (g *Linear) AddColorStop(offset float64, c color.Color) *Linear {
	g.stops.add(offset, c)
	return g
}

// Stops returns a copy of the colour stops, in order.
func (g *Linear) Stops() []ColorStop {
	return slices.Clone(g.stops)
}

// ColorAt implements [Paint].  A gradient with coincident end points
// paints nothing.
func (g *Linear) ColorAt(x, y float64) color.RGBA {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return color.RGBA{}
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	return g.stops.at(t, g.Extend)
}

// Radial is a gradient between the start circle (X0, Y0, R0) and the end
// circle (X1, Y1, R1).
type Radial struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Extend     ExtendMode

	stops stops
}

// NewRadial creates a radial gradient without colour stops.
func NewRadial(x0, y0, r0, x1, y1, r1 float64) *Radial {
	return &Radial{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddColorStop adds a colour at the given offset, which is clamped to [0, 1].
func (g *Radial) AddColorStop(offset float64, c color.Color) *Radial {
	g.stops.add(offset, c)
	return g
}

// Stops returns a copy of the colour stops, in order.
func (g *Radial) Stops() []ColorStop {
	return slices.Clone(g.stops)
}

// ColorAt implements [Paint].
//
// The point is painted with the colour for the largest t such that it lies
// on the circle interpolated between the start and end circles at t, with a
// non-negative radius.  Points on no such circle are transparent.
func (g *Radial) ColorAt(x, y float64) color.RGBA {
	t, ok := g.param(x, y)
	if !ok {
		return color.RGBA{}
	}
	return g.stops.at(t, g.Extend)
}

func (g *Radial) param(x, y float64) (float64, bool) {
	cdx, cdy := g.X1-g.X0, g.Y1-g.Y0
	dr := g.R1 - g.R0
	if cdx == 0 && cdy == 0 && dr == 0 {
		return 0, false
	}
	px, py := x-g.X0, y-g.Y0

	// |p - t·cd|² = (r0 + t·dr)²
	a := cdx*cdx + cdy*cdy - dr*dr
	b := px*cdx + py*cdy + g.R0*dr
	c := px*px + py*py - g.R0*g.R0

	valid := func(t float64) bool {
		return g.R0+t*dr >= 0
	}

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, valid(t)
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	switch {
	case valid(t1):
		return t1, true
	case valid(t2):
		return t2, true
	}
	return 0, false
}
