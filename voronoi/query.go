// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"math"

	"github.com/cpmech/govoro3d/geom"
)

// PointNo returns the number of real generators
func (o *Tessellation) PointNo() int { return o.norg }

// TotalFacesNumber returns the total number of Voronoi faces emitted
func (o *Tessellation) TotalFacesNumber() int { return len(o.pointsInFace) }

// TotalPointNumber returns the total number of points in the Delaunay
// point table: real generators, the 4 sentinels, and every ghost
func (o *Tessellation) TotalPointNumber() int { return len(o.del.Points) }

// CellFaces returns the face indices bounding real generator i
func (o *Tessellation) CellFaces(i int) []int { return o.facesInCell[i] }

// FaceNeighbors returns the (n0,n1) generator pair a face is dual to,
// n0 < n1 and n0 always a real generator
func (o *Tessellation) FaceNeighbors(f int) (int, int) {
	return o.faceNeighbors[f][0], o.faceNeighbors[f][1]
}

// PointsInFace returns the ordered loop of Voronoi-vertex (tetra) indices
// bounding face f
func (o *Tessellation) PointsInFace(f int) []int { return o.pointsInFace[f] }

// GetMeshPoint returns the Voronoi vertex (tetra circumcenter) at index i
func (o *Tessellation) GetMeshPoint(i int) geom.Vec3 { return o.centers[i] }

// GetArea returns the area of face f
func (o *Tessellation) GetArea(f int) float64 { return o.faceAreas[f] }

// GetVolume returns the volume of real cell i
func (o *Tessellation) GetVolume(i int) float64 { return o.volume[i] }

// GetCellCM returns the volume-weighted centroid of real cell i
func (o *Tessellation) GetCellCM(i int) geom.Vec3 { return o.cm[i] }

// AllCM returns the centroid of every real cell, indexed 0..PointNo()-1
func (o *Tessellation) AllCM() []geom.Vec3 { return o.cm }

// GetWidth returns the equivalent-sphere diameter of real cell i:
// (3·volume/4π)^(1/3)·2
func (o *Tessellation) GetWidth(i int) float64 {
	return 2 * math.Cbrt(3*o.volume[i]/(4*math.Pi))
}

// FaceCM returns the centroid of face f, the mean of its vertex loop
func (o *Tessellation) FaceCM(f int) geom.Vec3 {
	loop := o.pointsInFace[f]
	var sum geom.Vec3
	for _, idx := range loop {
		sum = sum.Add(o.centers[idx])
	}
	return sum.Scale(1 / float64(len(loop)))
}

// FaceVelocity returns the geometric velocity of face f given the
// velocities v0,v1 of its two generators, per spec.md §4.7:
// w = ½(v0+v1) + ((v0-v1)·(fc-½(P0+P1))/‖P1-P0‖²)·(P1-P0)
func (o *Tessellation) FaceVelocity(f int, v0, v1 geom.Vec3) geom.Vec3 {
	n0, n1 := o.faceNeighbors[f][0], o.faceNeighbors[f][1]
	p0, p1 := o.del.Points[n0], o.del.Points[n1]
	fc := o.FaceCM(f)
	diff := p1.Sub(p0)
	l2 := diff.NormSq()
	w := v0.Add(v1).Scale(0.5)
	if l2 < 1e-300 {
		return w
	}
	coef := v0.Sub(v1).Dot(fc.Sub(p0.Add(p1).Scale(0.5))) / l2
	return w.Add(diff.Scale(coef))
}

// Neighbors returns the real and ghost generator indices sharing a face
// with real generator i (spec.md §4.7's P4 invariant)
func (o *Tessellation) Neighbors(i int) []int {
	res := make([]int, 0, len(o.facesInCell[i]))
	for _, f := range o.facesInCell[i] {
		n0, n1 := o.faceNeighbors[f][0], o.faceNeighbors[f][1]
		if n0 == i {
			res = append(res, n1)
		} else {
			res = append(res, n0)
		}
	}
	return res
}

// NeighborsOfNeighbors returns the set of generators (real or ghost) two
// face-hops from i through its real neighbors (i itself and its direct
// neighbors excluded)
func (o *Tessellation) NeighborsOfNeighbors(i int) []int {
	seen := map[int]struct{}{i: {}}
	for _, n := range o.Neighbors(i) {
		seen[n] = struct{}{}
	}
	var res []int
	added := map[int]struct{}{}
	for n := range seen {
		if n >= o.norg {
			continue
		}
		for _, n2 := range o.Neighbors(n) {
			if _, dup := seen[n2]; dup {
				continue
			}
			if _, dup := added[n2]; dup {
				continue
			}
			added[n2] = struct{}{}
			res = append(res, n2)
		}
	}
	return res
}

// IsGhost reports whether generator index idx is a ghost (beyond the 4
// sentinels that follow the N real generators)
func (o *Tessellation) IsGhost(idx int) bool { return idx >= o.norg+4 }

// BoundaryFace reports whether face f has an endpoint outside the real
// generator range, i.e. it borders a sentinel or a ghost
func (o *Tessellation) BoundaryFace(f int) bool {
	_, n1 := o.faceNeighbors[f][0], o.faceNeighbors[f][1]
	return n1 >= o.norg
}

// DuplicatedPoints returns, for the given peer rank, the local generator
// indices already queued for shipping to it, kept to avoid re-sending
func (o *Tessellation) DuplicatedPoints(peer int) []int {
	for i, p := range o.duplicatedProcs {
		if p == peer {
			return o.duplicatedPoints[i]
		}
	}
	return nil
}

// SentProcs returns the ranks this process shipped generators to
func (o *Tessellation) SentProcs() []int { return o.sentProcs }

// DuplicatedProcs returns the ranks this process exchanged ghosts with
func (o *Tessellation) DuplicatedProcs() []int { return o.duplicatedProcs }

// SentPoints returns the local generator indices shipped to peer
func (o *Tessellation) SentPoints(peer int) []int {
	for i, p := range o.sentProcs {
		if p == peer {
			return o.sentPoints[i]
		}
	}
	return nil
}

// Nghost returns, in receive order, the point-table indices of the ghosts
// received from peer (spec.md §8's P6 invariant)
func (o *Tessellation) Nghost(peer int) []int {
	for i, p := range o.duplicatedProcs {
		if p == peer {
			return o.nghost[i]
		}
	}
	return nil
}

// SelfIndex returns, for each real cell kept by this process after a
// distributed Build, the index it held in the caller's original points
// slice
func (o *Tessellation) SelfIndex() []int { return o.selfIndex }
