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

// Package loop runs an animated sketch: a setup step followed by one
// update call per frame.
package loop

import (
	"context"
	"time"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/canvas"
	"seehuhn.de/go/sketch/input"
)

// Sketch is an animation.
//
// If the value also implements [input.Handler], it receives the input
// events, unless a handler is given using [WithHandler].
type Sketch interface {
	// Setup is called once, before the first frame.
	Setup(app *App)

	// Update draws a frame.  The elapsed time is measured in seconds
	// since the start of the animation.
	Update(app *App, elapsed float64)
}

// App is the environment of a running sketch.
//
// An App is not safe for concurrent use.  While the loop runs, the host
// reaches it through [WithEvents].
type App struct {
	Canvas *canvas.Canvas
	Input  *input.State

	stopped bool
}

// NoLoop stops the animation after the current frame.
func (a *App) NoLoop() {
	a.stopped = true
}

// Looping reports whether more frames will be drawn.
func (a *App) Looping() bool {
	return !a.stopped
}

// FrameRate is the default number of frames per second.
const FrameRate = 60

type config struct {
	width, height int
	frames        <-chan time.Time
	events        <-chan Event
	clock         func() time.Time
	handler       input.Handler
	canvasOpts    []canvas.Option
}

// Event is a change made to a running App, usually the delivery of an
// input event.  Events run on the loop goroutine, between frames.
type Event func(app *App)

// Option configures [Run].
type Option func(*config)

// WithSize sets the canvas size.  The default is 600x400.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithFrames sets the channel which triggers frames.  By default, a
// ticker with [FrameRate] ticks per second is used.  If the channel is
// closed, the loop stops.
func WithFrames(frames <-chan time.Time) Option {
	return func(c *config) {
		c.frames = frames
	}
}

// WithEvents sets the channel through which the host delivers events to
// the running loop.  Each event is applied before the next frame is
// drawn.  If an event calls [App.NoLoop], no further frames are drawn.
// Closing the channel does not stop the loop.
func WithEvents(events <-chan Event) Option {
	return func(c *config) {
		c.events = events
	}
}

// WithClock sets the time source used to compute elapsed times.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.clock = now
	}
}

// WithHandler sets the receiver of input events.
func WithHandler(h input.Handler) Option {
	return func(c *config) {
		c.handler = h
	}
}

// WithCanvasOptions passes options to [canvas.New].
func WithCanvasOptions(opts ...canvas.Option) Option {
	return func(c *config) {
		c.canvasOpts = append(c.canvasOpts, opts...)
	}
}

// NewApp returns the environment [Run] would use for s, without running
// anything.  The host may feed input events to App.Input before the loop
// starts; once [RunApp] runs, events must go through [WithEvents].
func NewApp(s Sketch, opts ...Option) *App {
	cfg := newConfig(s, opts)
	return cfg.app()
}

func newConfig(s Sketch, opts []Option) *config {
	cfg := &config{
		width:  600,
		height: 400,
		clock:  time.Now,
	}
	if h, ok := s.(input.Handler); ok {
		cfg.handler = h
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *config) app() *App {
	return &App{
		Canvas: canvas.New(cfg.width, cfg.height, cfg.canvasOpts...),
		Input:  input.New(cfg.handler),
	}
}

// Run calls s.Setup and then s.Update once per frame, until
// [App.NoLoop] is called, the frame channel is closed, or ctx is done.
// The first frame is drawn immediately after setup.
//
// Frames and events run on the calling goroutine.  If ctx ends the loop,
// its error is returned.
func Run(ctx context.Context, s Sketch, opts ...Option) error {
	cfg := newConfig(s, opts)
	return run(ctx, s, cfg.app(), cfg)
}

// RunApp is like [Run], but uses an App created by [NewApp].
// The App already has its canvas and input state, so only [WithFrames],
// [WithClock] and [WithEvents] have an effect here; other options are
// ignored.
func RunApp(ctx context.Context, s Sketch, app *App, opts ...Option) error {
	return run(ctx, s, app, newConfig(s, opts))
}

func run(ctx context.Context, s Sketch, app *App, cfg *config) error {
	frames := cfg.frames
	if frames == nil {
		tick := time.NewTicker(time.Second / FrameRate)
		defer tick.Stop()
		frames = tick.C
	}

	events := cfg.events

	s.Setup(app)

	start := cfg.clock()
	n := 0
	for {
		s.Update(app, cfg.clock().Sub(start).Seconds())
		n++
		if app.stopped {
			sketch.Logger().Debug("animation stopped", "frames", n)
			return nil
		}

	wait:
		for {
			select {
			case <-ctx.Done():
				sketch.Logger().Debug("animation cancelled", "frames", n)
				return ctx.Err()
			case ev, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				ev(app)
				if app.stopped {
					sketch.Logger().Debug("animation stopped", "frames", n)
					return nil
				}
			case _, ok := <-frames:
				if !ok {
					return nil
				}
				break wait
			}
		}
	}
}
