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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#000", color.RGBA{0, 0, 0, 255}},
		{"#f80", color.RGBA{0xFF, 0x88, 0x00, 0xFF}},
		{"#ffff", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 0xFF}},
		{"#FF000000", color.RGBA{}},
		{"#ff0000ff", color.RGBA{0xFF, 0, 0, 0xFF}},
		{"red", color.RGBA{0xFF, 0, 0, 0xFF}},
		{"  Blue ", color.RGBA{0, 0, 0xFF, 0xFF}},
		{"transparent", color.RGBA{}},
		{"rgb(1, 2, 3)", color.RGBA{1, 2, 3, 0xFF}},
		{"RGB(300,-4,3.4)", color.RGBA{0xFF, 0, 3, 0xFF}},
		{"rgba(255, 255, 255, 0)", color.RGBA{}},
		{"rgba(0,0,0,1)", color.RGBA{0, 0, 0, 0xFF}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, color.RGBA(got))
		})
	}
}

func TestParsePremultiplies(t *testing.T) {
	got, err := Parse("rgba(255, 0, 0, 0.5)")
	require.NoError(t, err)
	assert.Equal(t, uint8(128), got.A)
	assert.Equal(t, got.A, got.R)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#ggg", "nocolour", "rgb(1,2)", "rgb(1,2,3", "rgba(a,b,c,d)"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", in)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a colour") })
	assert.NotPanics(t, func() { MustParse("#000") })
}

func TestLinearGradient(t *testing.T) {
	g := NewLinear(0, 0, 100, 0).
		AddColorStop(0, Black).
		AddColorStop(1, White)

	assert.Equal(t, color.RGBA(Black), g.ColorAt(-10, 5), "padded before start")
	assert.Equal(t, color.RGBA(White), g.ColorAt(150, -3), "padded after end")

	mid := g.ColorAt(50, 42)
	assert.InDelta(t, 128, int(mid.R), 1)
	assert.Equal(t, uint8(255), mid.A)

	// the gradient is constant perpendicular to its axis
	assert.Equal(t, g.ColorAt(25, 0), g.ColorAt(25, 1000))
}

func TestLinearGradientDegenerate(t *testing.T) {
	g := NewLinear(5, 5, 5, 5).AddColorStop(0, White)
	assert.Equal(t, color.RGBA{}, g.ColorAt(5, 5))
}

func TestStopsOrder(t *testing.T) {
	g := NewLinear(0, 0, 1, 0).
		AddColorStop(1, White).
		AddColorStop(0.5, MustParse("red")).
		AddColorStop(0, Black).
		AddColorStop(0.5, MustParse("blue")).
		AddColorStop(7, MustParse("lime"))

	var offsets []float64
	for _, s := range g.Stops() {
		offsets = append(offsets, s.Offset)
	}
	assert.Equal(t, []float64{0, 0.5, 0.5, 1, 1}, offsets)

	// equal offsets keep insertion order: red then blue
	assert.Equal(t, uint8(0xFF), g.Stops()[1].Color.R)
	assert.Equal(t, uint8(0xFF), g.Stops()[2].Color.B)
}

func TestStopsCopy(t *testing.T) {
	g := NewLinear(0, 0, 10, 0).AddColorStop(0, Black).AddColorStop(1, White)
	st := g.Stops()
	st[0].Offset = 0.9
	st[1].Color = color.RGBA{}
	assert.Equal(t, 0.0, g.Stops()[0].Offset)
	assert.Equal(t, color.RGBA(White), g.ColorAt(10, 0))

	r := NewRadial(0, 0, 0, 0, 0, 10).AddColorStop(0, Black).AddColorStop(1, White)
	r.Stops()[1].Offset = 0
	assert.Equal(t, 1.0, r.Stops()[1].Offset)
}

func TestExtendModes(t *testing.T) {
	g := NewLinear(0, 0, 10, 0).
		AddColorStop(0, Black).
		AddColorStop(1, White)

	g.Extend = ExtendRepeat
	assert.Equal(t, g.ColorAt(2, 0), g.ColorAt(12, 0))

	g.Extend = ExtendReflect
	assert.Equal(t, g.ColorAt(8, 0), g.ColorAt(12, 0))
}

func TestRadialGradient(t *testing.T) {
	g := NewRadial(50, 50, 0, 50, 50, 10).
		AddColorStop(0, White).
		AddColorStop(1, Black)

	assert.Equal(t, color.RGBA(White), g.ColorAt(50, 50))
	assert.Equal(t, color.RGBA(Black), g.ColorAt(80, 50))

	half := g.ColorAt(55, 50)
	assert.InDelta(t, 128, int(half.R), 1)

	// rotationally symmetric
	assert.Equal(t, g.ColorAt(53, 50), g.ColorAt(50, 47))
}

func TestRadialGradientEqualCircles(t *testing.T) {
	g := NewRadial(0, 0, 5, 0, 0, 5).AddColorStop(0, White)
	assert.Equal(t, color.RGBA{}, g.ColorAt(1, 1))
}

func TestRadialGradientCone(t *testing.T) {
	// Two separated circles: points far behind the start circle lie on no
	// circle with non-negative radius.
	g := NewRadial(0, 0, 1, 10, 0, 2).AddColorStop(0, White).AddColorStop(1, White)
	assert.Equal(t, color.RGBA(White), g.ColorAt(10, 0))
	assert.Equal(t, color.RGBA{}, g.ColorAt(-50, 0))
}
