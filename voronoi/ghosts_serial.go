// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import "github.com/cpmech/govoro3d/geom"

// ghostHit pairs a box-face (or process-face) index with the real generator
// that must be mirrored (or shipped) across it
type ghostHit struct {
	FaceID int
	Gen    int
}

// findIntersectionsSingle tests, for generator point, every box face against
// every incident tetra's circumsphere, recording the first hit per face
// (spec.md §4.2)
func (o *Tessellation) findIntersectionsSingle(boxFaces []geom.Face, point int) []int {
	var hitFaces []int
	for fi, face := range boxFaces {
		for _, tet := range o.pointTetras[point] {
			sph := geom.Sphere{Center: o.centers[tet], Radius: o.radius[tet]}
			if geom.FaceSphereIntersect(face, sph) {
				hitFaces = append(hitFaces, fi)
				break
			}
		}
	}
	return hitFaces
}

// serialFindIntersections implements the serial ghost-discovery pass of
// spec.md §4.2: a LIFO walk over the Delaunay neighborhood, seeded at the
// generator carried by the witness tetra from §4.1, propagating to every
// real Delaunay neighbor of a generator whose circumsphere reaches a box
// face.
func (o *Tessellation) serialFindIntersections() ([]ghostHit, error) {
	boxFaces := geom.BoxFaces(o.box)
	seed, err := o.firstPointToCheck()
	if err != nil {
		return nil, err
	}

	var stack []int
	stack = append(stack, seed)
	willCheck := make([]bool, o.norg)
	willCheck[seed] = true

	var res []ghostHit
	for len(stack) > 0 {
		loc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		hitFaces := o.findIntersectionsSingle(boxFaces, loc)
		if len(hitFaces) == 0 {
			continue
		}
		for _, f := range hitFaces {
			res = append(res, ghostHit{FaceID: f, Gen: loc})
		}
		for _, nb := range o.pointNeighbors(loc) {
			if !willCheck[nb] {
				willCheck[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	return res, nil
}
