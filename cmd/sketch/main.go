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

// Command sketch renders a YAML scene file to PNG and SVG.
//
// Usage:
//
//	sketch -in scene.yaml -png out.png [-svg out.svg]
//
// Without -in the scene is read from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/internal/log"
	"seehuhn.de/go/sketch/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stderr io.Writer) error {
	fs := flag.NewFlagSet("sketch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "scene file (default: standard input)")
	pngOut := fs.String("png", "", "write the rendered image to this PNG file")
	svgOut := fs.String("svg", "", "write the scene to this SVG file")
	var lo log.Options
	fs.StringVar(&lo.Level, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&lo.Format, "log-format", "console", "log format: console or json")
	fs.StringVar(&lo.File, "log-file", "", "also write JSON logs to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pngOut == "" && *svgOut == "" {
		return errors.New("nothing to do, use -png or -svg")
	}

	l, closer, err := log.New(stderr, lo)
	if err != nil {
		return err
	}
	defer closer.Close()
	sketch.SetLogger(l)
	defer sketch.SetLogger(nil)

	r := stdin
	name := "<stdin>"
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer f.Close()
		r, name = f, *in
	}
	sc, err := scene.Load(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	l.Info("scene loaded", "file", name, "width", sc.Width, "height", sc.Height, "items", len(sc.Items))

	if *pngOut != "" {
		c, err := scene.Render(sc)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := writeFile(*pngOut, func(w io.Writer) error {
			return png.Encode(w, c.Image())
		}); err != nil {
			return err
		}
		l.Info("wrote image", "file", *pngOut)
	}
	if *svgOut != "" {
		if err := writeFile(*svgOut, func(w io.Writer) error {
			return scene.WriteSVG(w, sc)
		}); err != nil {
			return err
		}
		l.Info("wrote svg", "file", *svgOut)
	}
	return nil
}

func writeFile(fname string, write func(w io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fname, err)
	}
	return f.Close()
}
