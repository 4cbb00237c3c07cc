// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the 3D vector, box and matrix primitives shared
// by the Delaunay and Voronoi layers
package geom

import "math"

// Vec3 is an ordered (x,y,z) triple with vector algebra
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns o+p
func (o Vec3) Add(p Vec3) Vec3 {
	return Vec3{o.X + p.X, o.Y + p.Y, o.Z + p.Z}
}

// Sub returns o-p
func (o Vec3) Sub(p Vec3) Vec3 {
	return Vec3{o.X - p.X, o.Y - p.Y, o.Z - p.Z}
}

// Scale returns s*o
func (o Vec3) Scale(s float64) Vec3 {
	return Vec3{s * o.X, s * o.Y, s * o.Z}
}

// Dot returns the scalar (dot) product o·p
func (o Vec3) Dot(p Vec3) float64 {
	return o.X*p.X + o.Y*p.Y + o.Z*p.Z
}

// Cross returns the vector (cross) product o×p
func (o Vec3) Cross(p Vec3) Vec3 {
	return Vec3{
		o.Y*p.Z - o.Z*p.Y,
		o.Z*p.X - o.X*p.Z,
		o.X*p.Y - o.Y*p.X,
	}
}

// Norm returns |o|
func (o Vec3) Norm() float64 {
	return math.Sqrt(o.Dot(o))
}

// NormSq returns |o|²
func (o Vec3) NormSq() float64 {
	return o.Dot(o)
}

// Unit returns o/|o|; returns the zero vector if o is (near) zero
func (o Vec3) Unit() Vec3 {
	n := o.Norm()
	if n < 1e-300 {
		return Vec3{}
	}
	return o.Scale(1.0 / n)
}

// Mid returns the midpoint between o and p
func (o Vec3) Mid(p Vec3) Vec3 {
	return Vec3{0.5 * (o.X + p.X), 0.5 * (o.Y + p.Y), 0.5 * (o.Z + p.Z)}
}
