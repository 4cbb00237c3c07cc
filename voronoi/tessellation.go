// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package voronoi implements the 3D Voronoi tessellation core: boundary and
// distributed ghost discovery, Voronoi face extraction from the dual of a
// Delaunay tetrahedralization, and per-cell volume/centroid accumulation.
package voronoi

import (
	"github.com/cpmech/govoro3d/delaunay"
	"github.com/cpmech/govoro3d/geom"
)

// Tessellation is the Voronoi diagram of a set of real generators inside a
// box, possibly extended with mirror and/or peer-process ghosts. All
// relationships between entities (tetra ↔ Voronoi vertex, generator pair ↔
// face) are expressed as indices into parallel slices; there is no pointer
// graph, so tetra and face indices stay stable across augmentation.
type Tessellation struct {
	box geom.Box
	del delaunay.Delaunay

	norg   int // number of real generators
	bigTet int // a witness tetra touching both a sentinel and a real generator

	pointTetras [][]int   // per real generator: incident non-empty tetra indices
	radius      []float64 // per tetra: circumradius, -1 until computed
	centers     []geom.Vec3

	facesInCell   [][]int    // per real generator: incident face indices
	pointsInFace  [][]int    // per face: ordered VoronoiVertex (tetra) indices
	faceNeighbors [][2]int   // per face: (n0,n1), n0 < n1, n0 always real
	faceAreas     []float64  // per face
	cm            []geom.Vec3
	volume        []float64 // per real generator

	// distributed bookkeeping (spec.md §3 invariant on Nghost_/duplicated_points_)
	sentProcs        []int
	duplicatedProcs  []int
	sentPoints       [][]int // per sentProcs entry: local indices shipped to that peer
	duplicatedPoints [][]int // per duplicatedProcs entry: local indices already shipped (dedup ledger)
	nghost           [][]int // per duplicatedProcs entry: global index of each received ghost, receive order
	selfIndex        []int   // indices (into the caller's points slice) kept by this rank

	ghostCM    map[int]geom.Vec3 // point-table index (from nghost) -> centroid, mirrored or received from the owning peer
	mirrorFace map[int]int       // point-table index of a rigid ghost -> box face id it was mirrored through
}

// New creates a Tessellation over the box [lo,hi]
func New(lo, hi geom.Vec3) *Tessellation {
	return &Tessellation{box: geom.NewBox(lo, hi)}
}

// reset clears all derived state ahead of a fresh Build
func (o *Tessellation) reset() {
	o.del.Clean()
	o.pointTetras = nil
	o.radius = nil
	o.centers = nil
	o.facesInCell = nil
	o.pointsInFace = nil
	o.faceNeighbors = nil
	o.faceAreas = nil
	o.cm = nil
	o.volume = nil
	o.sentProcs = nil
	o.duplicatedProcs = nil
	o.sentPoints = nil
	o.duplicatedPoints = nil
	o.nghost = nil
	o.selfIndex = nil
	o.ghostCM = nil
	o.mirrorFace = nil
}

// isSentinel reports whether index idx (into the Delaunay point table) is
// one of the 4 bounding sentinels
func (o *Tessellation) isSentinel(idx int) bool {
	return idx >= o.norg && idx < o.norg+4
}

// refreshGeometry grows radius/centers to match the current tetra count and
// eagerly fills in the circumcenter/circumradius of every non-empty tetra.
// spec.md §9 allows eager or lazy evaluation as long as the observable face
// list is identical; eager keeps the bookkeeping simple.
func (o *Tessellation) refreshGeometry() {
	n := len(o.del.Tetras)
	for len(o.radius) < n {
		o.radius = append(o.radius, -1)
		o.centers = append(o.centers, geom.Vec3{})
	}
	for i := 0; i < n; i++ {
		if o.radius[i] >= 0 {
			continue
		}
		if _, empty := o.del.EmptyTetras[i]; empty {
			continue
		}
		o.fillCircumsphere(i)
	}
}

func (o *Tessellation) fillCircumsphere(tetIdx int) {
	t := o.del.Tetras[tetIdx]
	v0 := o.del.Points[t.Points[0]]
	v1 := o.del.Points[t.Points[1]]
	v2 := o.del.Points[t.Points[2]]
	v3 := o.del.Points[t.Points[3]]
	c, r := geom.Circumsphere(v0, v1, v2, v3)
	o.centers[tetIdx] = c
	o.radius[tetIdx] = r
}
