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
	"bytes"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/canvas"
	"seehuhn.de/go/sketch/paint"
	"seehuhn.de/go/sketch/raster"
)

// WriteSVG writes the scene as an SVG document.
//
// Contour layers and erased areas are expressed using masks.  Shadows
// are not written.  Gradients cannot occur in scene files.
func WriteSVG(w io.Writer, sc *Scene) error {
	if err := sc.validate(); err != nil {
		return err
	}

	sw := &svgWriter{settings: canvas.DefaultSettings()}
	if err := sw.applySettings(&sc.Settings); err != nil {
		return fmt.Errorf("scene settings: %w", err)
	}
	if sc.Background != "" {
		bg, err := paint.Parse(sc.Background)
		if err != nil {
			return fmt.Errorf("background: %w", err)
		}
		p := sketch.NewPath().Rect(0, 0, float64(sc.Width), float64(sc.Height))
		st := sw.settings
		st.Fill, st.Stroke = bg, nil
		sw.path(&sw.body, p, sw.transform(), st)
	}
	for i := range sc.Items {
		if err := sw.item(&sc.Items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "<svg xmlns=%q width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		"http://www.w3.org/2000/svg", sc.Width, sc.Height, sc.Width, sc.Height)
	if sw.defs.Len() > 0 {
		out.WriteString("<defs>\n")
		out.Write(sw.defs.Bytes())
		out.WriteString("</defs>\n")
	}
	out.Write(sw.body.Bytes())
	out.WriteString("</svg>\n")
	_, err := w.Write(out.Bytes())
	return err
}

type svgState struct {
	settings   canvas.Settings
	transforms []string
}

// svgWriter follows the canvas state while the items are written.
// Transformations are kept as a list of SVG transform functions.
type svgWriter struct {
	settings   canvas.Settings
	transforms []string
	stack      []svgState

	defs  bytes.Buffer
	body  bytes.Buffer
	masks int
}

func (sw *svgWriter) applySettings(node *yaml.Node) error {
	if node.IsZero() {
		return nil
	}
	s := sw.settings
	if err := node.Decode(&s); err != nil {
		return err
	}
	sw.settings = s
	return nil
}

func (sw *svgWriter) push() {
	sw.stack = append(sw.stack, svgState{
		settings:   sw.settings,
		transforms: slices.Clone(sw.transforms),
	})
}

func (sw *svgWriter) pop() {
	n := len(sw.stack)
	if n == 0 {
		return
	}
	sw.settings = sw.stack[n-1].settings
	sw.transforms = sw.stack[n-1].transforms
	sw.stack = sw.stack[:n-1]
}

func (sw *svgWriter) transform(extra ...string) string {
	return strings.Join(append(slices.Clone(sw.transforms), extra...), " ")
}

func (sw *svgWriter) item(it *Item) error {
	if !it.Settings.IsZero() {
		sw.push()
		defer sw.pop()
		if err := sw.applySettings(&it.Settings); err != nil {
			return err
		}
	}

	switch {
	case it.Op != nil:
		return sw.op(it.Op)
	case it.Path != nil:
		p := it.Path.NewPath()
		if p.IsEmpty() {
			return fmt.Errorf("draw path: %w", sketch.ErrEmptyGeometry)
		}
		tr := sw.transform(fmt.Sprintf("translate(%s %s)", num(it.Path.X), num(it.Path.Y)))
		sw.path(&sw.body, p, tr, sw.settings)
	case it.Shape != nil:
		return sw.shape(it.Shape.NewShape())
	case it.Erase != nil:
		p := sketch.NewPath()
		Build(p, it.Erase)
		if p.IsEmpty() {
			return fmt.Errorf("draw path: %w", sketch.ErrEmptyGeometry)
		}
		st := canvas.DefaultSettings()
		st.Fill = paint.Black
		sw.mask(&sw.body, p, "", st)
	}
	return nil
}

func (sw *svgWriter) op(op *Op) error {
	a := op.Args
	switch op.Name {
	case "translate":
		sw.transforms = append(sw.transforms, fmt.Sprintf("translate(%s %s)", num(a[0]), num(a[1])))
	case "rotate":
		sw.transforms = append(sw.transforms, fmt.Sprintf("rotate(%s)", num(a[0]*180/math.Pi)))
	case "scale":
		sy := a[0]
		if len(a) > 1 {
			sy = a[1]
		}
		sw.transforms = append(sw.transforms, fmt.Sprintf("scale(%s %s)", num(a[0]), num(sy)))
	case "matrix":
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = num(v)
		}
		sw.transforms = append(sw.transforms, "matrix("+strings.Join(parts, " ")+")")
	case "push":
		sw.push()
	case "pop":
		sw.pop()
	case "point":
		st := sw.settings
		st.Fill, st.Stroke = st.Stroke, nil
		p := sketch.NewPath().Circle(a[0], a[1], st.LineWidth)
		sw.path(&sw.body, p, sw.transform(), st)
	default:
		p := sketch.NewPath()
		Build(p, []Op{*op})
		if !p.IsEmpty() {
			sw.path(&sw.body, p, sw.transform(), sw.settings)
		}
	}
	return nil
}

// shape writes the layers of s into a group.  Each contour masks the
// layers before it.
func (sw *svgWriter) shape(s *sketch.Shape) error {
	if len(s.Layers()) == 0 {
		return nil
	}
	b := s.BoundingBox()
	if b.IsEmpty() || !b.IsFinite() {
		return fmt.Errorf("draw shape: %w", sketch.ErrEmptyGeometry)
	}

	var content bytes.Buffer
	for _, l := range s.Layers() {
		if l.Path.IsEmpty() {
			continue
		}
		if l.Contour {
			st := sw.settings
			st.Fill = paint.Black
			sw.mask(&content, l.Path, "", st)
		} else {
			sw.path(&content, l.Path, "", sw.settings)
		}
	}

	deg := num(s.Angle * 180 / math.Pi)
	tr := sw.transform(
		fmt.Sprintf("translate(%s %s)", num(s.X), num(s.Y)),
		fmt.Sprintf("rotate(%s %s %s)", deg, num(s.AnchorX), num(s.AnchorY)),
	)
	fmt.Fprintf(&sw.body, "<g transform=%q>\n", tr)
	sw.body.Write(content.Bytes())
	sw.body.WriteString("</g>\n")
	return nil
}

// mask wraps the current content of buf in a group which hides the area
// p would paint with the settings st.
func (sw *svgWriter) mask(buf *bytes.Buffer, p *sketch.Path, tr string, st canvas.Settings) {
	sw.masks++
	id := "erase" + strconv.Itoa(sw.masks)

	fmt.Fprintf(&sw.defs, "<mask id=%q maskUnits=\"userSpaceOnUse\" x=\"-1e6\" y=\"-1e6\" width=\"2e6\" height=\"2e6\">\n", id)
	sw.defs.WriteString(`<rect x="-1e6" y="-1e6" width="2e6" height="2e6" fill="white"/>` + "\n")
	if c, ok := st.Stroke.(paint.Solid); ok {
		st.Stroke = paint.Solid{A: c.A}
	}
	sw.path(&sw.defs, p, tr, st)
	sw.defs.WriteString("</mask>\n")

	old := slices.Clone(buf.Bytes())
	buf.Reset()
	fmt.Fprintf(buf, "<g mask=\"url(#%s)\">\n", id)
	buf.Write(old)
	buf.WriteString("</g>\n")
}

// path writes a single path element.
func (sw *svgWriter) path(buf *bytes.Buffer, p *sketch.Path, tr string, st canvas.Settings) {
	buf.WriteString(`<path d="`)
	p.WriteSVG(buf)
	buf.WriteString(`"`)
	if tr != "" {
		fmt.Fprintf(buf, " transform=%q", tr)
	}
	writePaint(buf, "fill", st.Fill)
	if p.FillRule() == raster.EvenOdd {
		buf.WriteString(` fill-rule="evenodd"`)
	}
	if st.Stroke != nil {
		writePaint(buf, "stroke", st.Stroke)
		lw := st.LineWidth
		if lw <= 0 {
			lw = 1
		}
		fmt.Fprintf(buf, ` stroke-width="%s"`, num(lw))
		if name := capNames[st.Cap]; name != "" {
			fmt.Fprintf(buf, ` stroke-linecap=%q`, name)
		}
		if name := joinNames[st.Join]; name != "" {
			fmt.Fprintf(buf, ` stroke-linejoin=%q`, name)
		}
		if st.MiterLimit > 0 && st.Join == graphics.LineJoinMiter {
			fmt.Fprintf(buf, ` stroke-miterlimit="%s"`, num(st.MiterLimit))
		}
	}
	buf.WriteString("/>\n")
}

var (
	capNames = map[graphics.LineCapStyle]string{
		graphics.LineCapRound:  "round",
		graphics.LineCapSquare: "square",
	}
	joinNames = map[graphics.LineJoinStyle]string{
		graphics.LineJoinRound: "round",
		graphics.LineJoinBevel: "bevel",
	}
)

// writePaint writes a fill or stroke attribute.  Only solid colours can
// be written; other paints are omitted.
func writePaint(buf *bytes.Buffer, attr string, p paint.Paint) {
	c, ok := p.(paint.Solid)
	if !ok || c.A == 0 {
		fmt.Fprintf(buf, ` %s="none"`, attr)
		return
	}
	r, g, b := c.R, c.G, c.B
	if c.A != 0 && c.A != 255 {
		r = uint8(uint32(c.R) * 255 / uint32(c.A))
		g = uint8(uint32(c.G) * 255 / uint32(c.A))
		b = uint8(uint32(c.B) * 255 / uint32(c.A))
	}
	fmt.Fprintf(buf, ` %s="#%02x%02x%02x"`, attr, r, g, b)
	if c.A != 255 {
		fmt.Fprintf(buf, ` %s-opacity="%s"`, attr, num(float64(c.A)/255))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
