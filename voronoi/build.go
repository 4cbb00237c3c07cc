// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/govoro3d/procmesh"
	"github.com/cpmech/govoro3d/transport"
)

// Build tessellates points inside the box in serial mode: one Delaunay
// build, a single ghost-discovery pass mirroring generators across the
// box's own faces, and extraction/accumulation (spec.md §2 steps 2-3,
// 4-5, 7-8, serial branch).
func (o *Tessellation) Build(points []geom.Vec3) error {
	o.reset()
	o.norg = len(points)
	o.selfIndex = nil

	if err := o.del.Build(points, o.box.Hi, o.box.Lo); err != nil {
		return err
	}
	if err := o.buildPointTetraIndex(); err != nil {
		return err
	}

	hits, err := o.serialFindIntersections()
	if err != nil {
		return err
	}
	ghosts, faceIDs := o.createBoundaryPoints(hits)
	if len(ghosts) > 0 {
		base := len(o.del.Points)
		if err := o.del.BuildExtra(ghosts); err != nil {
			return err
		}
		for i, fid := range faceIDs {
			o.recordMirrorFace(base+i, fid)
		}
		if err := o.buildPointTetraIndex(); err != nil {
			return err
		}
	}

	if err := o.buildVoronoi(); err != nil {
		return err
	}
	o.accumulateCellGeometry()
	o.reflectGhostCentroids()
	return nil
}

// BuildDistributed tessellates points in distributed mode: points are
// first sorted to the owning subdomain via tproc, then the Delaunay is
// built locally, ghosts are discovered in two passes (pass 1 without
// recursion, Delaunay augmentation, pass 2 with recursion), extraction and
// accumulation follow, and finally ghost-cell centroids are exchanged with
// the peers that hold the real copy (spec.md §2, full distributed branch;
// §5's ordering guarantees govern the sequencing below).
func (o *Tessellation) BuildDistributed(points []geom.Vec3, tproc procmesh.Tessellation3D, ex transport.Exchanger) error {
	o.reset()
	myRank := ex.Rank()

	var mine []geom.Vec3
	o.selfIndex = nil
	for i, p := range points {
		rank := tproc.Rank(p)
		if rank == -1 {
			return &ErrUnassignedPoint{Rank: myRank, Point: p}
		}
		if rank != myRank {
			continue
		}
		mine = append(mine, p)
		o.selfIndex = append(o.selfIndex, i)
	}
	o.norg = len(mine)

	if err := o.del.Build(mine, o.box.Hi, o.box.Lo); err != nil {
		return err
	}
	if err := o.buildPointTetraIndex(); err != nil {
		return err
	}

	if err := o.augmentGhostsDistributed(tproc, ex, false); err != nil {
		return err
	}
	if err := o.buildPointTetraIndex(); err != nil {
		return err
	}
	if err := o.augmentGhostsDistributed(tproc, ex, true); err != nil {
		return err
	}
	if err := o.buildPointTetraIndex(); err != nil {
		return err
	}

	if err := o.buildVoronoi(); err != nil {
		return err
	}
	o.accumulateCellGeometry()
	o.reflectGhostCentroids()

	return o.exchangeGhostCentroids(ex)
}

// exchangeGhostCentroids implements spec.md §2 step 9: every process ships
// the centroids of the real cells it computed to each peer that received a
// ghost copy of them, using the same peer/index bookkeeping that shipped
// the generator positions.
func (o *Tessellation) exchangeGhostCentroids(ex transport.Exchanger) error {
	if len(o.sentProcs) == 0 {
		return nil
	}
	perPeerIdx := make([][]int, len(o.sentProcs))
	for i, idxs := range o.sentPoints {
		perPeerIdx[i] = idxs
	}
	received := ex.ExchangeCentroids(o.sentProcs, perPeerIdx, o.cm)

	// Symmetrize already forced sentProcs and duplicatedProcs to agree on
	// rank membership wherever ghosts flowed in both directions; match by
	// rank value rather than assuming identical slice order. Entries
	// reflectGhostCentroids already placed for rigid (mirrored) ghosts are
	// left untouched here; only shipped peer-ghost indices are overwritten
	// with the real value received from the owning rank.
	if o.ghostCM == nil {
		o.ghostCM = make(map[int]geom.Vec3)
	}
	for di, peer := range o.duplicatedProcs {
		for si, sp := range o.sentProcs {
			if sp != peer {
				continue
			}
			recv := received[si]
			idxs := o.nghost[di]
			for k := 0; k < len(idxs) && k < len(recv); k++ {
				o.ghostCM[idxs[k]] = recv[k]
			}
			break
		}
	}
	return nil
}

// GetGhostCM returns the centroid of the real cell that ghost ptIdx
// (a point-table index, as stored in Nghost) mirrors or was copied from,
// once exchangeGhostCentroids has run.
func (o *Tessellation) GetGhostCM(ptIdx int) (geom.Vec3, bool) {
	cm, ok := o.ghostCM[ptIdx]
	return cm, ok
}
