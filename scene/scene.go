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

// Package scene reads drawings described in YAML and renders them.
//
// A scene file gives the canvas size, an optional background colour,
// initial drawing settings, and a list of items:
//
//	width: 200
//	height: 120
//	background: white
//	settings:
//	  fill: "#3366cc"
//	  stroke: none
//	items:
//	  - op: [circle, 40, 40, 20]
//	  - settings: {fill: orange}
//	    shape:
//	      x: 100
//	      y: 20
//	      angle: 0.3
//	      anchor: [40, 40]
//	      layers:
//	        - ops: [[rect, 0, 0, 80, 80]]
//	        - contour: true
//	          ops: [[circle, 40, 40, 20]]
//	  - erase: [[square, 10, 10, 8]]
//
// An op is a list holding the name of a [sketch.Path] method in snake case,
// followed by its numeric arguments.  Items of type "op" can also use
// the canvas operations point, translate, rotate, scale, matrix, push and
// pop.
package scene

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/canvas"
	"seehuhn.de/go/sketch/raster"
)

// Scene is a drawing read from a scene file.
type Scene struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Background string    `yaml:"background"`
	Settings   yaml.Node `yaml:"settings"`
	Items      []Item    `yaml:"items"`
}

// Item is one entry of a scene.  Exactly one of Op, Path, Shape and Erase
// is set.  Settings, if present, apply to this item only.
type Item struct {
	Settings yaml.Node  `yaml:"settings"`
	Op       *Op        `yaml:"op"`
	Path     *PathItem  `yaml:"path"`
	Shape    *ShapeItem `yaml:"shape"`
	Erase    []Op       `yaml:"erase"`
}

// PathItem is a path drawn using [canvas.Canvas.DrawPath].
type PathItem struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FillRule string  `yaml:"fill_rule"`
	Ops      []Op    `yaml:"ops"`
}

// ShapeItem is a shape drawn using [canvas.Canvas.DrawShape].
type ShapeItem struct {
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Angle  float64     `yaml:"angle"`
	Anchor [2]float64  `yaml:"anchor,flow"`
	Layers []LayerItem `yaml:"layers"`
}

// LayerItem is one layer of a shape.
type LayerItem struct {
	Contour  bool   `yaml:"contour"`
	FillRule string `yaml:"fill_rule"`
	Ops      []Op   `yaml:"ops"`
}

// Op is a single drawing operation.
type Op struct {
	Name string
	Args []float64
}

// ErrInvalid is returned for scene files which cannot be drawn.
var ErrInvalid = errors.New("invalid scene")

// Default canvas size, used if the scene does not give one.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// Load reads a scene file.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	sc := &Scene{}
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	if sc.Width == 0 {
		sc.Width = DefaultWidth
	}
	if sc.Height == 0 {
		sc.Height = DefaultHeight
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	return sc, nil
}

func (sc *Scene) validate() error {
	if sc.Width < 0 || sc.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, sc.Width, sc.Height)
	}
	if err := checkSettings(&sc.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	for i, it := range sc.Items {
		if err := checkSettings(&it.Settings); err != nil {
			return fmt.Errorf("item %d: settings: %w", i, err)
		}
		n := 0
		if it.Op != nil {
			n++
		}
		if it.Path != nil {
			n++
		}
		if it.Shape != nil {
			n++
		}
		if it.Erase != nil {
			n++
		}
		if n != 1 {
			return fmt.Errorf("%w: item %d: need exactly one of op, path, shape, erase", ErrInvalid, i)
		}
		if it.Op != nil {
			if _, ok := canvasOps[it.Op.Name]; ok {
				continue
			}
		}
		for _, ops := range it.pathOps() {
			for _, op := range ops {
				if _, ok := pathOps[op.Name]; !ok {
					return fmt.Errorf("%w: item %d: unknown path operation %q", ErrInvalid, i, op.Name)
				}
			}
		}
		if it.Path != nil {
			if _, err := parseFillRule(it.Path.FillRule); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		if it.Shape != nil {
			for _, l := range it.Shape.Layers {
				if _, err := parseFillRule(l.FillRule); err != nil {
					return fmt.Errorf("item %d: %w", i, err)
				}
			}
		}
	}
	return nil
}

// pathOps returns the lists of path operations used by the item.
func (it *Item) pathOps() [][]Op {
	var res [][]Op
	switch {
	case it.Op != nil:
		res = append(res, []Op{*it.Op})
	case it.Path != nil:
		res = append(res, it.Path.Ops)
	case it.Shape != nil:
		for _, l := range it.Shape.Layers {
			res = append(res, l.Ops)
		}
	case it.Erase != nil:
		res = append(res, it.Erase)
	}
	return res
}

// UnmarshalYAML implements [yaml.Unmarshaler].  An op is written as a
// sequence: the name, followed by the arguments.
func (op *Op) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) == 0 {
		return fmt.Errorf("%w: line %d: operation must be a non-empty list", ErrInvalid, value.Line)
	}
	var name string
	if err := value.Content[0].Decode(&name); err != nil {
		return err
	}
	name = strings.ToLower(name)

	args := make([]float64, len(value.Content)-1)
	for i, n := range value.Content[1:] {
		if err := n.Decode(&args[i]); err != nil {
			return fmt.Errorf("%w: line %d: %s: argument %d: %v", ErrInvalid, n.Line, name, i+1, err)
		}
	}

	var ar arity
	if o, ok := pathOps[name]; ok {
		ar = o.arity
	} else if o, ok := canvasOps[name]; ok {
		ar = o.arity
	} else {
		return fmt.Errorf("%w: line %d: unknown operation %q", ErrInvalid, value.Line, name)
	}
	if !ar.allows(len(args)) {
		return fmt.Errorf("%w: line %d: %s takes %s, got %d",
			ErrInvalid, value.Line, name, ar, len(args))
	}

	op.Name = name
	op.Args = args
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (op Op) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: op.Name})
	for _, a := range op.Args {
		v := &yaml.Node{}
		if err := v.Encode(a); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, v)
	}
	return n, nil
}

// Build appends the operations to p.
func Build(p *sketch.Path, ops []Op) {
	for _, op := range ops {
		if o, ok := pathOps[op.Name]; ok {
			o.apply(p, op.Args)
		}
	}
}

// NewPath returns the path described by the item.
func (it *PathItem) NewPath() *sketch.Path {
	p := sketch.NewPath()
	Build(p, it.Ops)
	rule, _ := parseFillRule(it.FillRule)
	return p.SetFillRule(rule)
}

// NewShape returns the shape described by the item.
func (it *ShapeItem) NewShape() *sketch.Shape {
	s := sketch.NewShape(it.X, it.Y, it.Angle, it.Anchor[0], it.Anchor[1])
	for _, l := range it.Layers {
		rule, _ := parseFillRule(l.FillRule)
		s.AddLayer(func(p *sketch.Path) {
			Build(p, l.Ops)
			p.SetFillRule(rule)
		}, l.Contour)
	}
	return s
}

func checkSettings(node *yaml.Node) error {
	if node.IsZero() {
		return nil
	}
	s := canvas.DefaultSettings()
	return node.Decode(&s)
}

func parseFillRule(s string) (raster.FillRule, error) {
	switch strings.ToLower(s) {
	case "", "nonzero":
		return raster.NonZero, nil
	case "evenodd":
		return raster.EvenOdd, nil
	}
	return raster.NonZero, fmt.Errorf("%w: unknown fill rule %q", ErrInvalid, s)
}
