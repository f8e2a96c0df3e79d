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

package sketch_test

import (
	"fmt"
	"image"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/testcases"
)

// TestRenderAgreesWithContainsPoint checks every scene at the pixel
// centres whose neighbourhood lies entirely inside or entirely outside
// the shape.
func TestRenderAgreesWithContainsPoint(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				s := sc.Shape()
				out, err := s.Render(testcases.Style)
				require.NoError(t, err)

				b := s.BoundingBox()
				img := out.Image()
				checked := 0
				for v := range out.Height() {
					for u := range out.Width() {
						x := b.X() + float64(u) + 0.5
						y := b.Y() + float64(v) + 0.5
						inside, ok := classify(s, x, y)
						if !ok {
							continue
						}
						checked++
						a := img.RGBAAt(u, v).A
						if inside && a < 250 || !inside && a > 5 {
							t.Errorf("pixel (%d, %d): alpha %d, inside=%t", u, v, a, inside)
						}
					}
				}
				if checked < out.Width()*out.Height()/4 {
					t.Errorf("only %d of %d pixels checked", checked, out.Width()*out.Height())
				}
			})
		}
	}
}

// classify returns the common value of ContainsPoint at (x, y) and at the
// points 2.5 units away in each direction.  If these disagree, ok is false.
func classify(s *sketch.Shape, x, y float64) (inside, ok bool) {
	const d = 2.5
	inside = s.ContainsPoint(x, y)
	for _, dx := range []float64{-d, 0, d} {
		for _, dy := range []float64{-d, 0, d} {
			if s.ContainsPoint(x+dx, y+dy) != inside {
				return false, false
			}
		}
	}
	return inside, true
}

// TestAgainstVector compares scene renderings to a reference built with
// golang.org/x/image/vector, which rasterizes every layer directly on the
// page.  Scenes using the even-odd rule are skipped, since the reference
// rasterizer only implements the nonzero rule.
func TestAgainstVector(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				ref, ok := vectorPage(sc)
				if !ok {
					t.Skip("even-odd fill rule")
				}
				actual, err := renderPage(sc)
				require.NoError(t, err)
				require.Len(t, actual, len(ref))

				if err := compareImages(ref, actual, sc.Width, sc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderPage renders a scene onto a page, the way a canvas draws shapes,
// and returns the alpha channel.
func renderPage(sc testcases.Scene) ([]byte, error) {
	s := sc.Shape()
	img, err := s.Render(testcases.Style)
	if err != nil {
		return nil, err
	}
	b := s.BoundingBox()
	page := raster.NewSurface(sc.Width, sc.Height)
	page.Composite(img.Image(), b.X(), b.Y(), raster.BlendNormal)

	res := make([]byte, sc.Width*sc.Height)
	pix := page.Image()
	for y := range sc.Height {
		for x := range sc.Width {
			res[y*sc.Width+x] = pix.RGBAAt(x, y).A
		}
	}
	return res, nil
}

// vectorPage rasterizes the layers of a scene on the page and combines
// their coverage: normal layers are painted over, contours erase.
func vectorPage(sc testcases.Scene) ([]byte, bool) {
	s := sc.Shape()
	m := matrix.Translate(-s.AnchorX, -s.AnchorY).
		Mul(matrix.Rotate(s.Angle)).
		Translate(s.X+s.AnchorX, s.Y+s.AnchorY)

	acc := make([]float64, sc.Width*sc.Height)
	for _, l := range s.Layers() {
		if l.Path.IsEmpty() {
			continue
		}
		if l.Path.FillRule() == raster.EvenOdd {
			return nil, false
		}

		z := vector.NewRasterizer(sc.Width, sc.Height)
		addPath(z, l.Path.Elements(), m)
		cov := image.NewAlpha(image.Rect(0, 0, sc.Width, sc.Height))
		z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

		for i, a := range cov.Pix {
			c := float64(a) / 255
			if l.Contour {
				acc[i] *= 1 - c
			} else {
				acc[i] = c + acc[i]*(1-c)
			}
		}
	}

	res := make([]byte, len(acc))
	for i, v := range acc {
		res[i] = uint8(math.Round(255 * v))
	}
	return res, true
}

// addPath appends p, mapped through m, to z.  Open subpaths are closed.
func addPath(z *vector.Rasterizer, p curve.BezPath, m matrix.Matrix) {
	pt := func(q curve.Point) (float32, float32) {
		v := m.Apply(vec.Vec2{X: q.X, Y: q.Y})
		return float32(v.X), float32(v.Y)
	}
	open := false
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(el.P0))
			open = false
		case curve.LineToKind:
			z.LineTo(pt(el.P0))
			open = true
		case curve.QuadToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			z.QuadTo(x1, y1, x2, y2)
			open = true
		case curve.CubicToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			x3, y3 := pt(el.P2)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
			open = true
		case curve.ClosePathKind:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// compareImages allows small differences everywhere, and larger ones at a
// few edge pixels, where layers are resampled onto the page.  The total
// coverage must agree closely.
func compareImages(expected, actual []byte, w, h int) error {
	const tolerance = 64
	const maxDiffPercent = 5

	total := w * h
	diffCount := 0
	var sumExpected, sumActual float64
	for i := range total {
		diff := int(math.Abs(float64(int(expected[i]) - int(actual[i]))))
		if diff > tolerance {
			diffCount++
		}
		sumExpected += float64(expected[i])
		sumActual += float64(actual[i])
	}

	if maxAllowed := total * maxDiffPercent / 100; diffCount > maxAllowed {
		return fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	if math.Abs(sumActual-sumExpected) > 0.02*sumExpected+255 {
		return fmt.Errorf("total coverage %.0f, expected %.0f",
			sumActual/255, sumExpected/255)
	}
	return nil
}
