// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// TetraVolume returns the signed volume of the tetrahedron (v0,v1,v2,v3).
// The sign encodes the orientation of the vertex quartet.
func TetraVolume(v0, v1, v2, v3 Vec3) float64 {
	return Det3(v1.Sub(v0), v2.Sub(v0), v3.Sub(v0)) / 6.0
}

// TetraCentroid returns the arithmetic mean of the 4 vertices
func TetraCentroid(v0, v1, v2, v3 Vec3) Vec3 {
	return Vec3{
		0.25 * (v0.X + v1.X + v2.X + v3.X),
		0.25 * (v0.Y + v1.Y + v2.Y + v3.Y),
		0.25 * (v0.Z + v1.Z + v2.Z + v3.Z),
	}
}

// Circumsphere computes the center and radius of the sphere through the 4
// vertices of the tetrahedron (v0,v1,v2,v3) using the determinantal
// formulation relative to v0.
func Circumsphere(v0, v1, v2, v3 Vec3) (center Vec3, radius float64) {
	v2r := v1.Sub(v0)
	v3r := v2.Sub(v0)
	v4r := v3.Sub(v0)

	a := Det3(v2r, v3r, v4r)

	dx := Det3(
		Vec3{v2r.Dot(v2r), v2r.Y, v2r.Z},
		Vec3{v3r.Dot(v3r), v3r.Y, v3r.Z},
		Vec3{v4r.Dot(v4r), v4r.Y, v4r.Z},
	)
	dy := -Det3(
		Vec3{v2r.Dot(v2r), v2r.X, v2r.Z},
		Vec3{v3r.Dot(v3r), v3r.X, v3r.Z},
		Vec3{v4r.Dot(v4r), v4r.X, v4r.Z},
	)
	dz := Det3(
		Vec3{v2r.Dot(v2r), v2r.X, v2r.Y},
		Vec3{v3r.Dot(v3r), v3r.X, v3r.Y},
		Vec3{v4r.Dot(v4r), v4r.X, v4r.Y},
	)

	center = v0.Add(Vec3{dx, dy, dz}.Scale(1.0 / (2 * a)))
	radius = 0.5 * math.Sqrt(dx*dx+dy*dy+dz*dz) / math.Abs(a)
	return
}
