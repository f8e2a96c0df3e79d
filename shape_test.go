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
	"bytes"
	"encoding/json"
	"image/color"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sketch/paint"
)

func TestShapeSolid(t *testing.T) {
	s := NewShape(0, 0, 0, 0, 0).Layer(func(p *Path) {
		p.Rect(0, 0, 10, 10)
	})
	assert.True(t, s.ContainsPoint(5, 5))
	assert.False(t, s.ContainsPoint(15, 15))
}

func TestShapeContourSubtracts(t *testing.T) {
	s := NewShape(0, 0, 0, 0, 0).
		Layer(func(p *Path) { p.Rect(0, 0, 10, 10) }).
		Contour(func(p *Path) { p.Rect(3, 3, 4, 4) })

	assert.False(t, s.ContainsPoint(5, 5), "inside the contour")
	assert.True(t, s.ContainsPoint(1, 1), "outside the contour")
	assert.False(t, s.ContainsPoint(11, 5), "outside the shape")
}

func TestShapeLayerOrder(t *testing.T) {
	s := NewShape(0, 0, 0, 0, 0).
		Layer(func(p *Path) { p.Rect(0, 0, 10, 10) }).
		Contour(func(p *Path) { p.Rect(3, 3, 4, 4) }).
		Layer(func(p *Path) { p.Rect(4, 4, 10, 10) })

	assert.True(t, s.ContainsPoint(5, 5), "re-added by the last layer")
	assert.False(t, s.ContainsPoint(3.5, 3.5), "in the hole only")
	assert.True(t, s.ContainsPoint(12, 12), "last layer only")

	// a contour before any normal layer has no effect
	s = NewShape(0, 0, 0, 0, 0).
		Contour(func(p *Path) { p.Rect(0, 0, 10, 10) }).
		Layer(func(p *Path) { p.Rect(0, 0, 10, 10) })
	assert.True(t, s.ContainsPoint(5, 5))

	// overlapping normal layers do not cancel
	s = NewShape(0, 0, 0, 0, 0).
		Layer(func(p *Path) { p.Rect(0, 0, 10, 10) }).
		Layer(func(p *Path) { p.Rect(5, 5, 10, 10) })
	assert.True(t, s.ContainsPoint(7, 7))
}

func TestShapeRotation(t *testing.T) {
	build := func(p *Path) { p.Rect(0, 0, 20, 5) }

	s := NewShape(100, 50, 0, 0, 0).Layer(build)
	assert.True(t, s.ContainsPoint(110, 52))
	assert.False(t, s.ContainsPoint(98, 60))

	// rotating by π/2 about (X, Y) turns the x-axis into the y-axis
	s.Angle = math.Pi / 2
	assert.False(t, s.ContainsPoint(110, 52))
	assert.True(t, s.ContainsPoint(98, 60))
	assert.False(t, s.ContainsPoint(102, 60))

	// rotation about the centre of the rectangle
	c := NewShape(0, 0, math.Pi/2, 10, 2.5).Layer(build)
	assert.True(t, c.ContainsPoint(10, 10))
	assert.False(t, c.ContainsPoint(18, 2.5))
}

func TestShapeBoundingBox(t *testing.T) {
	s := NewShape(10, 20, math.Pi/2, 0, 0).Layer(func(p *Path) {
		p.Rect(0, 0, 20, 5)
	})
	want := BoundingBox{Top: 20, Right: 10, Bottom: 40, Left: 5}
	if d := cmp.Diff(want, s.BoundingBox(), approx); d != "" {
		t.Errorf("bounding box (-want +got):\n%s", d)
	}

	// contours are ignored
	s.Contour(func(p *Path) { p.Circle(0, 0, 1000) })
	if d := cmp.Diff(want, s.BoundingBox(), approx); d != "" {
		t.Errorf("bounding box with contour (-want +got):\n%s", d)
	}

	// unrotated boxes are translated
	u := NewShape(-3, 4, 0, 7, 7).
		Layer(func(p *Path) { p.Rect(0, 0, 1, 1) }).
		Layer(func(p *Path) { p.Line(5, -2, 6, 3) })
	if d := cmp.Diff(BoundingBox{Top: 2, Right: 3, Bottom: 7, Left: -3}, u.BoundingBox(), approx); d != "" {
		t.Errorf("bounding box (-want +got):\n%s", d)
	}

	// a shape with contours only has no extent
	e := NewShape(1, 2, 0, 0, 0).Contour(func(p *Path) { p.Rect(0, 0, 1, 1) })
	assert.True(t, e.BoundingBox().IsEmpty())
	_, err := e.Render(Style{Fill: paint.White})
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestShapeEmpty(t *testing.T) {
	s := NewShape(3, 4, 1, 0, 0)
	for _, pt := range [][2]float64{{0, 0}, {3, 4}, {-1e9, 1e9}} {
		assert.False(t, s.ContainsPoint(pt[0], pt[1]))
	}
	assert.True(t, s.BoundingBox().IsEmpty())

	out, err := s.Render(Style{Fill: paint.Black})
	require.NoError(t, err)
	assert.Zero(t, out.Width())
	assert.Zero(t, out.Height())
}

func TestShapeLayers(t *testing.T) {
	calls := 0
	s := NewShape(0, 0, 0, 0, 0).
		Layer(func(p *Path) { calls++; p.Rect(0, 0, 1, 1) }).
		Contour(func(p *Path) { calls++ }).
		AddLayer(nil, false)
	assert.Equal(t, 2, calls, "builders run synchronously")

	layers := s.Layers()
	require.Len(t, layers, 3)
	assert.False(t, layers[0].Contour)
	assert.True(t, layers[1].Contour)
	assert.True(t, layers[2].Path.IsEmpty())

	layers[0] = Layer{}
	assert.NotNil(t, s.Layers()[0].Path, "Layers returns a copy")
}

func TestShapeRender(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	s := NewShape(5, 5, 0, 0, 0).
		Layer(func(p *Path) { p.Rect(0, 0, 10, 10) }).
		Contour(func(p *Path) { p.Rect(3, 3, 4, 4) }).
		Layer(func(p *Path) { p.Rect(4, 4, 2, 2) }).
		Layer(func(p *Path) {})

	out, err := s.Render(Style{Fill: paint.White})
	require.NoError(t, err)
	require.Equal(t, 10, out.Width())
	require.Equal(t, 10, out.Height())

	img := out.Image()
	assert.Equal(t, white, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(3, 3), "hole")
	assert.Equal(t, white, img.RGBAAt(4, 4), "painted over the hole")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(6, 6), "hole")

	// strokes enlarge the surface, contours stay aligned
	out, err = s.Render(Style{Fill: paint.White, Stroke: paint.White, LineWidth: 2})
	require.NoError(t, err)
	require.Equal(t, 14, out.Width())
	img = out.Image()
	assert.Equal(t, white, img.RGBAAt(1, 1), "stroke")
	assert.Equal(t, white, img.RGBAAt(3, 3), "contour aligned with its layer")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(4, 4), "hole widened by the contour stroke")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(9, 9), "hole")
	assert.Equal(t, white, img.RGBAAt(6, 6), "painted over the hole")
}

func TestShapeRenderLargeContour(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewShape(0, 0, 0.3, 5, 5).
		Layer(func(p *Path) { p.Rect(-10, -10, 30, 30) }).
		Contour(func(p *Path) { p.Circle(0, 0, 1000) }).
		Layer(func(p *Path) { p.Rect(2, 2, 6, 6) })
	out, err := s.Render(Style{Fill: paint.White})
	require.NoError(t, err)

	dec := json.NewDecoder(&buf)
	for {
		var rec struct {
			Msg           string
			Width, Height int
		}
		if err := dec.Decode(&rec); err != nil {
			break
		}
		if rec.Msg == "allocate surface" {
			assert.LessOrEqual(t, rec.Width, out.Width())
			assert.LessOrEqual(t, rec.Height, out.Height())
		}
	}

	// the contour erases the first layer, the last layer is painted on top
	b := s.BoundingBox()
	at := func(x, y float64) uint8 {
		return out.Image().RGBAAt(int(x-b.X()), int(y-b.Y())).A
	}
	sin, cos := math.Sincos(0.3)
	assert.Equal(t, uint8(255), at(5, 5), "centre")
	assert.Equal(t, uint8(0), at(5-10*cos, 5-10*sin), "erased")
	assert.Equal(t, uint8(0), at(5+10*sin, 5-10*cos), "erased")
}

func TestShapeRenderRotated(t *testing.T) {
	s := NewShape(0, 0, math.Pi/2, 0, 0).Layer(func(p *Path) {
		p.Rect(0, 0, 20, 5)
	})
	out, err := s.Render(Style{Fill: paint.White})
	require.NoError(t, err)
	require.Equal(t, 5, out.Width())
	require.Equal(t, 20, out.Height())

	// the surface covers x in [-5, 0], y in [0, 20]
	img := out.Image()
	for y := 1; y < 19; y++ {
		for x := 1; x < 4; x++ {
			assert.Equal(t, uint8(255), img.RGBAAt(x, y).A, "pixel (%d, %d)", x, y)
		}
	}
}
