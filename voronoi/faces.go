// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"github.com/cpmech/govoro3d/delaunay"
	"github.com/cpmech/govoro3d/geom"
)

// isOuterTetra reports whether any of t's 4 vertices is one of the 4
// bounding sentinels; such a tetra never contributes a Voronoi face
// (spec.md §3 invariant)
func (o *Tessellation) isOuterTetra(t delaunay.Tetra) bool {
	for _, p := range t.Points {
		if o.isSentinel(p) {
			return true
		}
	}
	return false
}

// shouldBuildFace reports whether the face (n0,n1) has not already been
// emitted for cell n0 (spec.md §4.5)
func (o *Tessellation) shouldBuildFace(n0, n1 int) bool {
	if n0 >= o.norg {
		return false
	}
	for _, fi := range o.facesInCell[n0] {
		if o.faceNeighbors[fi][1] == n1 {
			return false
		}
	}
	return true
}

// nextLoopTetra finds, among the 4 vertices of cur, the position opposite
// n0 and n1 whose neighbor is not lastTetra — the next tetra in the ring
// walk around Delaunay edge (n0,n1) (spec.md §4.5)
func nextLoopTetra(cur delaunay.Tetra, lastTetra, n0, n1 int) (int, error) {
	for k := 0; k < 4; k++ {
		p := cur.Points[k]
		if p != n0 && p != n1 {
			if cur.Neighbors[k] != lastTetra {
				return cur.Neighbors[k], nil
			}
		}
	}
	return 0, &ErrFaceWalkFailure{N0: n0, N1: n1}
}

// walkFaceRing returns the ordered tetra indices visited while circling the
// Delaunay edge (n0,n1), starting at startTet (spec.md §4.5)
func (o *Tessellation) walkFaceRing(startTet, n0, n1 int) ([]int, error) {
	visited := []int{startTet}
	nextCheck, err := nextLoopTetra(o.del.Tetras[startTet], startTet, n0, n1)
	if err != nil {
		return nil, err
	}
	curCheck := nextCheck
	lastCheck := startTet
	for nextCheck != startTet {
		visited = append(visited, curCheck)
		nextCheck, err = nextLoopTetra(o.del.Tetras[curCheck], lastCheck, n0, n1)
		if err != nil {
			return nil, err
		}
		lastCheck = curCheck
		curCheck = nextCheck
	}
	return visited, nil
}

// cleanLoopDuplicates drops consecutive (and wraparound) Voronoi vertices
// that coincide within tolerance 1e-14·|P_n0-P_n1|² (spec.md §3,§4.5)
func (o *Tessellation) cleanLoopDuplicates(idxs []int, n0, n1 int) []int {
	if len(idxs) == 0 {
		return idxs
	}
	r := o.del.Points[n0].Sub(o.del.Points[n1]).Norm()
	thresh := r * r * 1e-14
	res := make([]int, 0, len(idxs))
	res = append(res, idxs[0])
	for i := 1; i < len(idxs); i++ {
		diff := o.centers[idxs[i]].Sub(o.centers[idxs[i-1]])
		if diff.NormSq() > thresh {
			res = append(res, idxs[i])
		}
	}
	if len(res) > 1 {
		diff := o.centers[res[len(res)-1]].Sub(o.centers[res[0]])
		if diff.NormSq() <= thresh {
			res = res[:len(res)-1]
		}
	}
	return res
}

// makeRightHanded reverses loop in place if it is not oriented
// right-handed relative to the half-line outward from generator n0
// (spec.md §4.5 / §3 invariant)
func (o *Tessellation) makeRightHanded(loop []int, n0 int) {
	v0 := o.centers[loop[0]]
	v1 := o.centers[loop[1]]
	vLast := o.centers[loop[len(loop)-1]]
	p := o.del.Points[n0]
	if v1.Sub(v0).Cross(vLast.Sub(v0)).Dot(p.Sub(v0)) < 0 {
		for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
			loop[i], loop[j] = loop[j], loop[i]
		}
	}
}

// calcFaceArea triangulates loop as a fan from its first vertex and sums
// the triangle areas (spec.md §4.5)
func (o *Tessellation) calcFaceArea(loop []int) float64 {
	v0 := o.centers[loop[0]]
	var sum geom.Vec3
	for i := 0; i < len(loop)-2; i++ {
		a := o.centers[loop[i+2]].Sub(v0)
		b := o.centers[loop[i+1]].Sub(v0)
		sum = sum.Add(a.Cross(b))
	}
	return 0.5 * sum.Norm()
}

// buildVoronoi implements spec.md §4.5 in full: dualize every surviving
// tetra to a Voronoi vertex, then for every Delaunay edge incident to a
// real generator, walk its tetra ring and emit one oriented, deduplicated
// Voronoi face.
func (o *Tessellation) buildVoronoi() error {
	o.refreshGeometry()

	o.facesInCell = make([][]int, o.norg)
	o.pointsInFace = nil
	o.faceNeighbors = nil
	o.faceAreas = nil

	for i, t := range o.del.Tetras {
		if _, empty := o.del.EmptyTetras[i]; empty {
			continue
		}
		if o.isOuterTetra(t) {
			continue
		}
		for j := 0; j < 3; j++ {
			for k := j + 1; k < 4; k++ {
				n0, n1 := t.Points[j], t.Points[k]
				if n0 > n1 {
					n0, n1 = n1, n0
				}
				if !o.shouldBuildFace(n0, n1) {
					continue
				}
				loop, err := o.walkFaceRing(i, n0, n1)
				if err != nil {
					return err
				}
				loop = o.cleanLoopDuplicates(loop, n0, n1)
				if len(loop) < 3 {
					continue // DegenerateFace: not an error, silently skipped
				}
				o.makeRightHanded(loop, n0)

				faceIdx := len(o.pointsInFace)
				o.pointsInFace = append(o.pointsInFace, loop)
				o.faceNeighbors = append(o.faceNeighbors, [2]int{n0, n1})
				o.faceAreas = append(o.faceAreas, o.calcFaceArea(loop))
				o.facesInCell[n0] = append(o.facesInCell[n0], faceIdx)
				if n1 < o.norg {
					o.facesInCell[n1] = append(o.facesInCell[n1], faceIdx)
				}
			}
		}
	}
	return nil
}
