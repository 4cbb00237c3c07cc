// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/govoro3d/procmesh"
)

// seedGeneratorsTouchingSentinel returns every real generator that
// participates in a tetra also touching a sentinel vertex — the full seed
// list for distributed ghost discovery (spec.md §4.3), as opposed to the
// single witness tetra used to seed the serial walk.
func (o *Tessellation) seedGeneratorsTouchingSentinel() []int {
	seen := make(map[int]struct{})
	var res []int
	for i, t := range o.del.Tetras {
		if _, empty := o.del.EmptyTetras[i]; empty {
			continue
		}
		hasSentinel := false
		for _, p := range t.Points {
			if o.isSentinel(p) {
				hasSentinel = true
				break
			}
		}
		if !hasSentinel {
			continue
		}
		for _, p := range t.Points {
			if p >= o.norg {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			res = append(res, p)
		}
	}
	return res
}

// procHit pairs a T_proc face that a generator's circumsphere reached with
// the rank whose face list it was found on — the face's "near" side, needed
// to compute its far side once the search has recursed past myRank.
type procHit struct {
	FaceID int
	Near   int
}

// findProcIntersections tests, for generator point, every T_proc face of
// myRank's subdomain against every incident tetra's circumsphere (spec.md
// §4.3, the T_proc analogue of findIntersectionsSingle). When recurse is
// true, a hit also expands the search onto the T_proc face list of the
// neighbor rank on the far side of the hit face — mirroring the original's
// FindIntersectionsRecursive, which walks into the neighbor subdomain's own
// faces so a circumsphere reaching two subdomains away is still found; a
// rank is never revisited, so the walk terminates even on a fully connected
// T_proc topology.
func (o *Tessellation) findProcIntersections(tproc procmesh.Tessellation3D, myRank, point int, recurse bool) []procHit {
	facePts := tproc.FacePoints()
	wall := tproc.PointNo()
	var hits []procHit

	visitedRank := map[int]bool{myRank: true}
	rankStack := []int{myRank}
	for len(rankStack) > 0 {
		rank := rankStack[len(rankStack)-1]
		rankStack = rankStack[:len(rankStack)-1]

		for _, fi := range tproc.CellFaces(rank) {
			idxs := tproc.PointsInFace(fi)
			verts := make([]geom.Vec3, len(idxs))
			for i, idx := range idxs {
				verts[i] = facePts[idx]
			}
			face := geom.Face{Vertices: verts}
			hit := false
			for _, tet := range o.pointTetras[point] {
				sph := geom.Sphere{Center: o.centers[tet], Radius: o.radius[tet]}
				if geom.FaceSphereIntersect(face, sph) {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
			hits = append(hits, procHit{FaceID: fi, Near: rank})
			if !recurse {
				continue
			}
			a, b := tproc.FaceNeighbors(fi)
			far := a
			if a == rank {
				far = b
			}
			if far != wall && !visitedRank[far] {
				visitedRank[far] = true
				rankStack = append(rankStack, far)
			}
		}
	}
	return hits
}

// distributedFindIntersections implements spec.md §4.3: a LIFO walk seeded
// at every generator touching a sentinel, propagating from every generator
// with at least one hit to its real Delaunay neighbors, in both passes,
// exactly as the serial pass of §4.2 does. A hit whose far side is another real rank queues the
// generator for shipping to that peer; a hit whose far side is a domain
// wall queues it for mirroring across the box face whose outward normal
// best matches the T_proc face's own outward normal. recurse instead gates
// whether findProcIntersections itself is allowed to walk past this rank's
// own T_proc faces into a neighbor subdomain's faces — false for the first
// pass, true for the second (spec.md §4.3, §5 ordering).
func (o *Tessellation) distributedFindIntersections(tproc procmesh.Tessellation3D, myRank int, recurse bool) (toShip map[int]map[int]struct{}, toMirror []ghostHit) {
	boxNormals := geom.BoxNormals(o.box)
	facePts := tproc.FacePoints()
	wall := tproc.PointNo()

	seeds := o.seedGeneratorsTouchingSentinel()
	willCheck := make([]bool, o.norg)
	var stack []int
	for _, s := range seeds {
		if !willCheck[s] {
			willCheck[s] = true
			stack = append(stack, s)
		}
	}

	toShip = make(map[int]map[int]struct{})
	mirrorSeen := make(map[[2]int]struct{})

	for len(stack) > 0 {
		loc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		hits := o.findProcIntersections(tproc, myRank, loc, recurse)
		for _, h := range hits {
			a, b := tproc.FaceNeighbors(h.FaceID)
			far := a
			if a == h.Near {
				far = b
			}
			if far == wall {
				idxs := tproc.PointsInFace(h.FaceID)
				verts := make([]geom.Vec3, len(idxs))
				for i, idx := range idxs {
					verts[i] = facePts[idx]
				}
				dir := geom.Face{Vertices: verts}.Normal()
				bf := geom.BoxIndexByNormal(boxNormals, dir)
				key := [2]int{bf, loc}
				if _, dup := mirrorSeen[key]; !dup {
					mirrorSeen[key] = struct{}{}
					toMirror = append(toMirror, ghostHit{FaceID: bf, Gen: loc})
				}
			} else {
				if toShip[far] == nil {
					toShip[far] = make(map[int]struct{})
				}
				toShip[far][loc] = struct{}{}
			}
		}
		if len(hits) > 0 {
			for _, nb := range o.pointNeighbors(loc) {
				if !willCheck[nb] {
					willCheck[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}
	return toShip, toMirror
}
