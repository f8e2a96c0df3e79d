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

package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// BlendMode selects how Composite combines an image with the surface.
type BlendMode int

const (
	// BlendNormal paints the image over the surface (source-over).
	BlendNormal BlendMode = iota

	// BlendSubtract removes the surface content where the image is opaque
	// (destination-out).  The colour of the image is ignored.
	BlendSubtract
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendSubtract:
		return "subtract"
	default:
		return "BlendMode(?)"
	}
}

// Composite draws src with its top-left corner at (x, y) in user space.
// The current transformation applies to the image; the shadow does not.
func (s *Surface) Composite(src image.Image, x, y float64, mode BlendMode) {
	if src == nil || src.Bounds().Empty() || s.Width() == 0 || s.Height() == 0 {
		return
	}
	m := matrix.Translate(x, y).Mul(s.ctm)
	if m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 &&
		m[4] == math.Round(m[4]) && m[5] == math.Round(m[5]) {
		offset := image.Pt(int(m[4]), int(m[5]))
		switch mode {
		case BlendSubtract:
			compositeOut(s.img, src, offset)
		default:
			compositeOver(s.img, src, offset)
		}
		return
	}
	s.compositeAffine(src, m, mode)
}

// compositeAffine resamples src through m into a scratch image, then
// blends the result onto the surface.
func (s *Surface) compositeAffine(src image.Image, m matrix.Matrix, mode BlendMode) {
	b := src.Bounds()
	// src pixel (0, 0) is placed at the origin of user space
	m = matrix.Translate(-float64(b.Min.X), -float64(b.Min.Y)).Mul(m)
	aff := f64.Aff3{m[0], m[2], m[4], m[1], m[3], m[5]}

	scratch := image.NewRGBA(s.img.Rect)
	draw.BiLinear.Transform(scratch, aff, src, b, draw.Src, nil)
	switch mode {
	case BlendSubtract:
		compositeOut(s.img, scratch, image.Point{})
	default:
		compositeOver(s.img, scratch, image.Point{})
	}
}

// compositeOver draws src onto dst with source-over, placing the top-left
// corner of src at offset.
func compositeOver(dst *image.RGBA, src image.Image, offset image.Point) {
	b := src.Bounds()
	r := image.Rectangle{Min: offset, Max: offset.Add(b.Size())}
	draw.Draw(dst, r, src, b.Min, draw.Over)
}

// compositeOut scales dst by the inverse alpha of src, placing the top-left
// corner of src at offset.
func compositeOut(dst *image.RGBA, src image.Image, offset image.Point) {
	b := src.Bounds()
	r := image.Rectangle{Min: offset, Max: offset.Add(b.Size())}.Intersect(dst.Rect)
	delta := b.Min.Sub(offset)

	if rgba, ok := src.(*image.RGBA); ok {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			si := rgba.PixOffset(r.Min.X+delta.X, y+delta.Y)
			di := dst.PixOffset(r.Min.X, y)
			for x := r.Min.X; x < r.Max.X; x++ {
				a := uint32(rgba.Pix[si+3])
				if a != 0 {
					k := 255 - a
					px := dst.Pix[di : di+4 : di+4]
					for j := range px {
						px[j] = uint8((uint32(px[j])*k + 127) / 255)
					}
				}
				si += 4
				di += 4
			}
		}
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, _, _, a := src.At(x+delta.X, y+delta.Y).RGBA()
			if a == 0 {
				continue
			}
			k := 0xffff - a
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			for j := range px {
				px[j] = uint8((uint32(px[j])*k + 0x7fff) / 0xffff)
			}
		}
	}
}

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// ClearRect makes the rectangle (x, y, w, h) transparent.  The rectangle
// is in user space and is subject to the current transformation.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.Width() == 0 || s.Height() == 0 {
		return
	}
	var p curve.BezPath
	p.MoveTo(curve.Pt(x, y))
	p.LineTo(curve.Pt(x+w, y))
	p.LineTo(curve.Pt(x+w, y+h))
	p.LineTo(curve.Pt(x, y+h))
	p.ClosePath()

	s.r.Reset(rect.Rect{URx: float64(s.Width()), URy: float64(s.Height())})
	s.r.CTM = s.ctm
	s.r.Fill(ToData(p), NonZero, func(row, xMin int, coverage []float32) {
		pix := s.img.Pix[s.img.PixOffset(xMin, row):]
		for i, cov := range coverage {
			k := 1 - min(cov, 1)
			for j := 4 * i; j < 4*i+4; j++ {
				pix[j] = uint8(float32(pix[j])*k + 0.5)
			}
		}
	})
}

// Snapshot returns a copy of the surface pixels.
func (s *Surface) Snapshot() *image.RGBA {
	return clone.AsRGBA(s.img)
}

// SubImage copies the pixels of the device rectangle (x, y, w, h) into a
// new image with origin (0, 0).  Pixels outside the surface are
// transparent.
func (s *Surface) SubImage(x, y, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if out.Rect.Empty() {
		return out
	}
	if x == 0 && y == 0 && w == s.Width() && h == s.Height() {
		return s.Snapshot()
	}
	draw.Draw(out, out.Rect, s.img, image.Pt(x, y), draw.Src)
	return out
}

// PutImage replaces the pixels at device position (dx, dy) with those of
// img.  Neither the transformation nor compositing apply.
func (s *Surface) PutImage(img image.Image, dx, dy int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	r := image.Rectangle{Min: image.Pt(dx, dy), Max: image.Pt(dx, dy).Add(b.Size())}
	draw.Draw(s.img, r, img, b.Min, draw.Src)
}

// Fill paints the whole surface with c, ignoring the transformation.
func (s *Surface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Over)
}
