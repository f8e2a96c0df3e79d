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
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/paint"
	"seehuhn.de/go/sketch/raster"
)

var (
	red  = paint.Solid{R: 255, A: 255}
	blue = paint.Solid{B: 255, A: 255}
)

func at(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func TestNew(t *testing.T) {
	c := New(20, 10)
	assert.Equal(t, 20, c.Width())
	assert.Equal(t, 10, c.Height())
	assert.Equal(t, DefaultSettings(), c.Settings())
	assert.Nil(t, c.Settings().Fill)
	assert.Equal(t, paint.Black, c.Settings().Stroke)

	s := raster.NewSurface(7, 3)
	c = New(100, 100, WithSurface(s), WithSettings(Settings{Fill: red}))
	assert.Same(t, s, c.Surface())
	assert.Equal(t, 7, c.Width())
	assert.Equal(t, red, c.Settings().Fill)
	assert.Nil(t, c.Settings().Stroke)
}

func TestResize(t *testing.T) {
	c := New(10, 10).Fill(red).Translate(3, 3).Push()
	c.Resize(30, 20)
	assert.Equal(t, 30, c.Width())
	assert.Equal(t, 20, c.Height())
	assert.Equal(t, matrix.Identity, c.Surface().CTM())
	assert.Equal(t, red, c.Settings().Fill, "settings are kept")

	// the saved state was discarded
	c.Fill(blue).Pop()
	assert.Equal(t, blue, c.Settings().Fill)
}

func TestPushPop(t *testing.T) {
	c := New(10, 10).Fill(red).Translate(5, 5)
	c.Push().Fill(blue).NoStroke().StrokeWidth(4).Translate(10, 0)
	assert.Equal(t, blue, c.Settings().Fill)

	c.Pop()
	assert.Equal(t, red, c.Settings().Fill)
	assert.Equal(t, paint.Black, c.Settings().Stroke)
	assert.Equal(t, 1.0, c.Settings().LineWidth)
	assert.Equal(t, matrix.Matrix{1, 0, 0, 1, 5, 5}, c.Surface().CTM())

	// unbalanced Pop does nothing
	c.Pop()
	assert.Equal(t, red, c.Settings().Fill)
	assert.Equal(t, matrix.Matrix{1, 0, 0, 1, 5, 5}, c.Surface().CTM())
}

func TestReset(t *testing.T) {
	c := New(10, 10).Fill(red).Rotate(1).Push()
	c.Reset()
	assert.Equal(t, DefaultSettings(), c.Settings())
	assert.Equal(t, matrix.Identity, c.Surface().CTM())

	c.Pop()
	assert.Equal(t, red, c.Settings().Fill, "saved state is unaffected")
}

func TestSetters(t *testing.T) {
	c := New(1, 1).
		StrokeWidth(3).
		LineCap(graphics.LineCapRound).
		LineJoin(graphics.LineJoinBevel).
		MiterLimit(4).
		Shadow(paint.NRGB(0, 0, 0, 128)).
		ShadowBlur(5).
		ShadowOffset(1, 2)
	want := Settings{
		Stroke:     paint.Black,
		LineWidth:  3,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinBevel,
		MiterLimit: 4,
		Shadow: raster.Shadow{
			Color:   color.RGBA{A: 128},
			Blur:    5,
			OffsetX: 1,
			OffsetY: 2,
		},
	}
	assert.Equal(t, want, c.Settings())

	c.NoShadow()
	assert.True(t, c.Settings().Shadow.IsZero())
	assert.Equal(t, 5.0, c.Settings().Shadow.Blur)
}

func TestRect(t *testing.T) {
	c := New(20, 20).NoStroke().Fill(red).Rect(5, 5, 10, 10)
	assert.Equal(t, color.RGBA(red), at(c, 10, 10))
	assert.Equal(t, color.RGBA{}, at(c, 2, 2))
	assert.Equal(t, color.RGBA{}, at(c, 16, 16))
}

func TestRectStroke(t *testing.T) {
	c := New(20, 20).Stroke(blue).StrokeWidth(2).Rect(5, 5, 10, 10)
	assert.Equal(t, color.RGBA(blue), at(c, 5, 10), "left edge")
	assert.Equal(t, color.RGBA{}, at(c, 10, 10), "not filled")
}

func TestTransformApplies(t *testing.T) {
	c := New(20, 20).NoStroke().Fill(red).Translate(10, 0).Square(0, 0, 5)
	assert.Equal(t, color.RGBA(red), at(c, 12, 2))
	assert.Equal(t, color.RGBA{}, at(c, 2, 2))

	c = New(20, 20).NoStroke().Fill(red).Scale(2, 2).Square(1, 1, 4)
	assert.Equal(t, color.RGBA(red), at(c, 8, 8))
	assert.Equal(t, color.RGBA{}, at(c, 10, 10))

	c = New(20, 20).NoStroke().Fill(red).ApplyMatrix(1, 0, 0, 1, 0, 10).Square(0, 0, 5)
	assert.Equal(t, color.RGBA(red), at(c, 2, 12))
	assert.Equal(t, color.RGBA{}, at(c, 2, 2))

	c = New(20, 20).NoStroke().Fill(red).Rotate(math.Pi / 2).Rect(2, -8, 6, 6)
	assert.Equal(t, color.RGBA(red), at(c, 5, 5))
	assert.Equal(t, color.RGBA{}, at(c, 15, 5))

	c.ResetMatrix()
	assert.Equal(t, matrix.Identity, c.Surface().CTM())
}

func TestPrimitives(t *testing.T) {
	type testCase struct {
		name    string
		draw    func(c *Canvas)
		in, out [2]int
	}
	cases := []testCase{
		{"circle", func(c *Canvas) { c.Circle(10, 10, 6) }, [2]int{10, 10}, [2]int{2, 2}},
		{"ellipse", func(c *Canvas) { c.Ellipse(10, 10, 16, 4, 0) }, [2]int{14, 10}, [2]int{10, 15}},
		{"arc", func(c *Canvas) { c.Arc(10, 10, 8, 0, math.Pi) }, [2]int{10, 14}, [2]int{10, 5}},
		{"triangle", func(c *Canvas) { c.Triangle(2, 18, 10, 2, 18, 18) }, [2]int{10, 14}, [2]int{3, 3}},
		{"quad", func(c *Canvas) { c.Quad(2, 2, 18, 2, 18, 10, 2, 10) }, [2]int{10, 6}, [2]int{10, 15}},
		{"bezier", func(c *Canvas) { c.Bezier(2, 10, 2, 0, 18, 0, 18, 10) }, [2]int{10, 7}, [2]int{10, 15}},
		{"curve", func(c *Canvas) { c.Curve(2, 18, 18, 18, 18, 2, 6) }, [2]int{13, 15}, [2]int{4, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(20, 20).NoStroke().Fill(red)
			tc.draw(c)
			assert.Equal(t, color.RGBA(red), at(c, tc.in[0], tc.in[1]))
			assert.Equal(t, color.RGBA{}, at(c, tc.out[0], tc.out[1]))
		})
	}
}

func TestLine(t *testing.T) {
	c := New(20, 20).Fill(blue).Stroke(red).StrokeWidth(2).Line(2, 10, 18, 10)
	assert.Equal(t, color.RGBA(red), at(c, 10, 10))
	assert.Equal(t, color.RGBA(red), at(c, 10, 9))
	assert.Equal(t, color.RGBA{}, at(c, 10, 12))
}

func TestPoint(t *testing.T) {
	c := New(20, 20).Stroke(red).StrokeWidth(3).Point(10, 10)
	assert.Equal(t, color.RGBA(red), at(c, 10, 10))
	assert.Equal(t, color.RGBA(red), at(c, 8, 10))
	assert.Equal(t, color.RGBA{}, at(c, 14, 10))

	// settings are unchanged
	assert.Nil(t, c.Settings().Fill)
	assert.Equal(t, red, c.Settings().Stroke)
}

func TestVertexPath(t *testing.T) {
	c := New(20, 20).NoStroke().Fill(red)
	c.Begin().
		Vertex(2, 2).
		Vertex(18, 2).
		QuadraticVertex(18, 18, 10, 18).
		BezierVertex(5, 18, 2, 12, 2, 10).
		End(true)
	assert.Equal(t, color.RGBA(red), at(c, 10, 10))
	assert.Equal(t, color.RGBA{}, at(c, 18, 18))

	// a new path starts with a move
	c = New(20, 20).NoFill().Stroke(blue)
	c.Begin().Vertex(2, 2).Vertex(18, 2).End(false)
	c.Begin().Vertex(2, 15).Vertex(18, 15).End(false)
	assert.Equal(t, color.RGBA{}, at(c, 2, 8), "no line between the paths")
	assert.NotEqual(t, color.RGBA{}, at(c, 10, 15))

	// End without Begin draws nothing
	New(5, 5).End(true)
}

func TestBackgroundAndClear(t *testing.T) {
	c := New(10, 10).Fill(red).Background(blue)
	for _, p := range [][2]int{{0, 0}, {9, 0}, {5, 5}, {9, 9}} {
		assert.Equal(t, color.RGBA(blue), at(c, p[0], p[1]))
	}
	assert.Equal(t, red, c.Settings().Fill)
	assert.Equal(t, paint.Black, c.Settings().Stroke)

	c.Clear()
	for _, p := range [][2]int{{0, 0}, {5, 5}, {9, 9}} {
		assert.Equal(t, color.RGBA{}, at(c, p[0], p[1]))
	}
}

func TestErase(t *testing.T) {
	c := New(20, 20).Background(red).Fill(blue).Translate(3, 3)
	err := c.Erase(func(p *sketch.Path) {
		p.Rect(5, 5, 10, 10)
	})
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{}, at(c, 10, 10), "inside")
	assert.Equal(t, color.RGBA{}, at(c, 5, 5), "on the stroked edge")
	assert.Equal(t, color.RGBA(red), at(c, 1, 1), "outside")
	assert.Equal(t, color.RGBA(red), at(c, 18, 18), "outside, not shifted")

	assert.Equal(t, blue, c.Settings().Fill)
	assert.Equal(t, matrix.Matrix{1, 0, 0, 1, 3, 3}, c.Surface().CTM())

	err = c.Erase(nil)
	assert.True(t, errors.Is(err, sketch.ErrEmptyGeometry))
	assert.Equal(t, blue, c.Settings().Fill)
}

func TestDrawShape(t *testing.T) {
	s := sketch.NewShape(4, 4, 0, 0, 0).
		Layer(func(p *sketch.Path) { p.Rect(0, 0, 10, 10) }).
		Contour(func(p *sketch.Path) { p.Rect(3, 3, 4, 4) })

	c := New(30, 30).NoStroke().Fill(red)
	require.NoError(t, c.DrawShape(s, 0, 0))
	assert.Equal(t, color.RGBA(red), at(c, 5, 5))
	assert.Equal(t, color.RGBA{}, at(c, 9, 9), "hole")
	assert.Equal(t, color.RGBA{}, at(c, 20, 20))

	require.NoError(t, c.DrawShape(s, 15, 0))
	assert.Equal(t, color.RGBA(red), at(c, 20, 5))
	assert.Equal(t, color.RGBA{}, at(c, 24, 9), "hole")

	// shapes without layers draw nothing
	require.NoError(t, c.DrawShape(sketch.NewShape(0, 0, 0, 0, 0), 0, 0))
}

func TestDrawPath(t *testing.T) {
	p := sketch.NewPath().Rect(2, 2, 6, 6)
	c := New(20, 20).Stroke(blue).StrokeWidth(2).Fill(red)
	require.NoError(t, c.DrawPath(p, 10, 0))
	assert.Equal(t, color.RGBA(red), at(c, 15, 5))
	assert.Equal(t, color.RGBA(blue), at(c, 12, 5), "left edge")
	assert.Equal(t, color.RGBA{}, at(c, 5, 5))

	err := c.DrawPath(sketch.NewPath(), 0, 0)
	assert.True(t, errors.Is(err, sketch.ErrEmptyGeometry))
}

func TestDrawImage(t *testing.T) {
	src := New(4, 4).NoStroke().Fill(red).Rect(0, 0, 4, 4)
	c := New(10, 10).Translate(2, 0).DrawImage(src.Image(), 3, 3)
	assert.Equal(t, color.RGBA(red), at(c, 6, 4))
	assert.Equal(t, color.RGBA{}, at(c, 3, 4))
}

func TestGetPutImage(t *testing.T) {
	c := New(10, 10).NoStroke().Fill(red).Rect(5, 5, 5, 5)
	img := c.GetImage(4, 4, 3, 3)
	require.Equal(t, 3, img.Rect.Dx())
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA(red), img.RGBAAt(1, 1))

	c.Rotate(1).PutImage(img, 0, 0)
	assert.Equal(t, color.RGBA{}, at(c, 0, 0))
	assert.Equal(t, color.RGBA(red), at(c, 1, 1))
	assert.Equal(t, color.RGBA(red), at(c, 2, 2))
}

func TestGradientFill(t *testing.T) {
	c := New(20, 2).NoStroke()
	g := c.LinearGradient(0, 0, 20, 0).
		AddColorStop(0, color.Black).
		AddColorStop(1, color.White)
	c.Fill(g).Rect(0, 0, 20, 2)
	assert.Less(t, at(c, 1, 1).R, at(c, 18, 1).R)
	assert.Equal(t, uint8(255), at(c, 10, 1).A)

	r := c.RadialGradient(10, 1, 0, 10, 1, 10).
		AddColorStop(0, color.White).
		AddColorStop(1, color.Black)
	c.Fill(r).Rect(0, 0, 20, 2)
	assert.Greater(t, at(c, 10, 1).R, at(c, 1, 1).R)
}

func TestCreate(t *testing.T) {
	c := New(1, 1)
	assert.True(t, c.CreatePath().IsEmpty())
	s := c.CreateShape(1, 2, 0.5, 3, 4)
	assert.Equal(t, 2.0, s.Y)
	assert.Equal(t, 0.5, s.Angle)
	assert.Empty(t, s.Layers())
}

func TestLoadSettings(t *testing.T) {
	in := `
fill: "#ff0000"
stroke: none
line_width: 2.5
line_cap: round
line_join: Bevel
miter_limit: 3
shadow:
  color: rgba(0, 0, 0, 0.5)
  blur: 4
  offset_x: 2
  offset_y: 3
`
	s, err := LoadSettings(strings.NewReader(in))
	require.NoError(t, err)
	want := Settings{
		Fill:       red,
		LineWidth:  2.5,
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinBevel,
		MiterLimit: 3,
		Shadow: raster.Shadow{
			Color:   color.RGBA(paint.MustParse("rgba(0, 0, 0, 0.5)")),
			Blur:    4,
			OffsetX: 2,
			OffsetY: 3,
		},
	}
	assert.Equal(t, want, s)
}

func TestLoadSettingsPartial(t *testing.T) {
	s, err := LoadSettings(strings.NewReader("fill: navy\n"))
	require.NoError(t, err)
	want := DefaultSettings()
	want.Fill = paint.MustParse("navy")
	assert.Equal(t, want, s)

	s, err = LoadSettings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsErrors(t *testing.T) {
	for _, in := range []string{
		"fill: notacolour",
		"stroke: '#12'",
		"line_cap: pointy",
		"line_join: sharp",
		"line_width: wide",
		"shadow: {color: '#zzz'}",
	} {
		_, err := LoadSettings(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}

func TestParsePaint(t *testing.T) {
	p, err := ParsePaint(" None ")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = ParsePaint("#00f")
	require.NoError(t, err)
	assert.Equal(t, blue, p)
}

func TestDraw(t *testing.T) {
	p := sketch.NewPath().Rect(0, 0, 4, 4)
	c := New(10, 10).NoStroke().Fill(red).Translate(5, 5).Draw(p)
	assert.Equal(t, color.RGBA(red), at(c, 6, 6))
	assert.Equal(t, color.RGBA{}, at(c, 2, 2))
}
