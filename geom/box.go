// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// Box is an axis-aligned bounding box [Lo,Hi] with Lo < Hi componentwise
type Box struct {
	Lo, Hi Vec3
}

// NewBox creates a new Box, panicking if lo is not strictly below hi in
// every component
func NewBox(lo, hi Vec3) Box {
	if lo.X >= hi.X || lo.Y >= hi.Y || lo.Z >= hi.Z {
		chk.Panic("box lower corner %v must be strictly less than upper corner %v", lo, hi)
	}
	return Box{lo, hi}
}

// Contains returns true if p lies strictly inside the box
func (o Box) Contains(p Vec3) bool {
	return p.X > o.Lo.X && p.X < o.Hi.X &&
		p.Y > o.Lo.Y && p.Y < o.Hi.Y &&
		p.Z > o.Lo.Z && p.Z < o.Hi.Z
}

// Volume returns the box's volume
func (o Box) Volume() float64 {
	d := o.Hi.Sub(o.Lo)
	return d.X * d.Y * d.Z
}

// Face is a planar convex polygon with an outward-pointing winding
// (vertices ordered counter-clockwise when viewed from outside the box)
type Face struct {
	Vertices []Vec3
}

// Normal returns the (non-unit) outward normal of a face defined by at
// least 3 vertices, computed from its first three vertices
func (o Face) Normal() Vec3 {
	return o.Vertices[1].Sub(o.Vertices[0]).Cross(o.Vertices[2].Sub(o.Vertices[0]))
}

// BoxFaces returns the 6 faces of the box, each a quadrilateral with an
// outward normal, in a fixed order: -x,-y,-z,+x,+y,+z is NOT guaranteed;
// only that the order is stable across calls with the same box
func BoxFaces(b Box) []Face {
	dx := b.Hi.X - b.Lo.X
	dy := b.Hi.Y - b.Lo.Y
	dz := b.Hi.Z - b.Lo.Z
	ll := b.Lo
	p := [8]Vec3{
		ll,
		ll.Add(Vec3{dx, 0, 0}),
		ll.Add(Vec3{dx, dy, 0}),
		ll.Add(Vec3{0, dy, 0}),
		ll.Add(Vec3{0, 0, dz}),
		ll.Add(Vec3{dx, 0, dz}),
		ll.Add(Vec3{dx, dy, dz}),
		ll.Add(Vec3{0, dy, dz}),
	}
	return []Face{
		{Vertices: []Vec3{p[3], p[2], p[1], p[0]}},
		{Vertices: []Vec3{p[1], p[5], p[4], p[0]}},
		{Vertices: []Vec3{p[0], p[4], p[7], p[3]}},
		{Vertices: []Vec3{p[3], p[7], p[6], p[2]}},
		{Vertices: []Vec3{p[2], p[6], p[5], p[1]}},
		{Vertices: []Vec3{p[6], p[7], p[4], p[5]}},
	}
}

// BoxNormals returns the outward normal of each face returned by BoxFaces,
// in the same order
func BoxNormals(b Box) []Vec3 {
	faces := BoxFaces(b)
	res := make([]Vec3, len(faces))
	for i, f := range faces {
		res[i] = f.Normal()
	}
	return res
}

// MirrorPoint reflects p across the plane of face f
func MirrorPoint(f Face, p Vec3) Vec3 {
	n := f.Vertices[1].Sub(f.Vertices[0]).Cross(f.Vertices[2].Sub(f.Vertices[0])).Unit()
	return p.Sub(n.Scale(2 * p.Sub(f.Vertices[0]).Dot(n)))
}

// BoxIndexByNormal returns the index into normals whose direction is
// closest (largest dot product) to dir; used to pick the nearest box
// face when a ghost must be mirrored rather than shipped to a peer
func BoxIndexByNormal(normals []Vec3, dir Vec3) int {
	best := 0
	bestDot := normals[0].Dot(dir)
	for i := 1; i < len(normals); i++ {
		d := normals[i].Dot(dir)
		if d > bestDot {
			bestDot = d
			best = i
		}
	}
	return best
}
