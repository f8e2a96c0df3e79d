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

// Package vector implements a mutable 2D vector with chaining arithmetic.
//
// All mutating methods modify the receiver in place and return it, so that
// calls can be chained:
//
//	v := vector.Create(1, 2)
//	v.Add(vector.Of(3, 4)).Mult(vector.Splat(2))
//
// Arithmetic is plain IEEE-754: dividing by a zero component yields an
// infinity or NaN, which propagates without error.
package vector

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Vector is a 2D point or direction.
type Vector struct {
	X, Y float64
}

// Create returns a new vector with the given components.
func Create(x, y float64) *Vector {
	return &Vector{X: x, Y: y}
}

// Random returns a new vector with both components drawn uniformly
// from [0, 1).
func Random() *Vector {
	return &Vector{X: rand.Float64(), Y: rand.Float64()}
}

// Of returns the vector (x, y) as an argument value.
func Of(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Splat returns the vector (s, s), broadcasting a scalar to both axes.
func Splat(s float64) Vector {
	return Vector{X: s, Y: s}
}

// Add adds o component-wise.
func (v *Vector) Add(o Vector) *Vector {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o component-wise.
func (v *Vector) Sub(o Vector) *Vector {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Mult multiplies by o component-wise.
func (v *Vector) Mult(o Vector) *Vector {
	v.X *= o.X
	v.Y *= o.Y
	return v
}

// Div divides by o component-wise.
func (v *Vector) Div(o Vector) *Vector {
	v.X /= o.X
	v.Y /= o.Y
	return v
}

// Dot cross-multiplies the components: X is multiplied by o.Y and Y by o.X.
//
// Despite the name, this is not the scalar dot product.
func (v *Vector) Dot(o Vector) *Vector {
	v.X *= o.Y
	v.Y *= o.X
	return v
}

// Heading returns the angle of v in radians, measured from the positive
// x-axis.
func (v *Vector) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Mag returns the length of v.
func (v *Vector) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// SetHeading rotates v to the absolute angle a, keeping its length.
func (v *Vector) SetHeading(a float64) *Vector {
	m := v.Mag()
	v.X = m * math.Cos(a)
	v.Y = m * math.Sin(a)
	return v
}

// SetMag scales v to length m, keeping its heading.
func (v *Vector) SetMag(m float64) *Vector {
	a := v.Heading()
	v.X = m * math.Cos(a)
	v.Y = m * math.Sin(a)
	return v
}

// Rotate adds a to the heading of v, keeping its length.
func (v *Vector) Rotate(a float64) *Vector {
	sin, cos := math.Sincos(a)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

// Limit shortens v to length m if it is longer.
func (v *Vector) Limit(m float64) *Vector {
	if v.Mag() > m {
		v.SetMag(m)
	}
	return v
}

// Normalize scales v to unit length.
func (v *Vector) Normalize() *Vector {
	return v.SetMag(1)
}

// AngleTo returns the heading of o minus the heading of v.
// The result is not reduced to [-π, π].
func (v *Vector) AngleTo(o Vector) float64 {
	return o.Heading() - v.Heading()
}

// DistTo returns the Euclidean distance between v and o.
func (v *Vector) DistTo(o Vector) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	c := *v
	return &c
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
