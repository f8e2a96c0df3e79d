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

// Command genpdf generates reference images for the shape scenes.
// It creates PDFs from the scenes and renders them to PNGs using
// Ghostscript.  Normal layers are painted white and contour layers black,
// on a black page, so that the gray value of the result is the coverage
// of the shape.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/testcases"
)

func main() {
	refDir := flag.String("out", "testdata/reference", "output directory")
	noPNG := flag.Bool("pdf-only", false, "do not run Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(*refDir, name+".pdf")
			pngPath := filepath.Join(*refDir, name+".png")

			if err := generatePDF(sc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
			if *noPNG {
				continue
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

func generatePDF(sc testcases.Scene, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(sc.Width),
		URy: float64(sc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(sc.Width), float64(sc.Height))
	page.Fill()

	// PDF origin is bottom-left; scenes use top-left.
	page.Transform(matrix.Scale(1, -1).Translate(0, float64(sc.Height)))

	s := sc.Shape()
	page.Transform(matrix.Translate(-s.AnchorX, -s.AnchorY).
		Mul(matrix.Rotate(s.Angle)).
		Translate(s.X+s.AnchorX, s.Y+s.AnchorY))

	for _, l := range s.Layers() {
		if l.Path.IsEmpty() {
			continue
		}
		gray := color.DeviceGray(1)
		if l.Contour {
			gray = color.DeviceGray(0)
		}
		page.SetFillColor(gray)
		drawPath(page, l.Path)
		if l.Path.FillRule() == raster.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	}

	return page.Close()
}

// pathBuilder is the subset of the PDF content stream writer used by
// drawPath.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath appends the boundary of p to the current PDF path.  Quadratic
// segments are raised to cubic ones, since PDF has no quadratic curves.
func drawPath(page pathBuilder, p *sketch.Path) {
	var cur curve.Point
	for _, el := range p.Elements() {
		switch el.Kind {
		case curve.MoveToKind:
			page.MoveTo(el.P0.X, el.P0.Y)
			cur = el.P0
		case curve.LineToKind:
			page.LineTo(el.P0.X, el.P0.Y)
			cur = el.P0
		case curve.QuadToKind:
			c1 := cur.Lerp(el.P0, 2.0/3)
			c2 := el.P1.Lerp(el.P0, 2.0/3)
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, el.P1.X, el.P1.Y)
			cur = el.P1
		case curve.CubicToKind:
			page.CurveTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
			cur = el.P2
		case curve.ClosePathKind:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale coverage
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
