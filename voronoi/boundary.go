// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"sort"

	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/govoro3d/procmesh"
	"github.com/cpmech/govoro3d/transport"
)

// createBoundaryPoints implements spec.md §4.4's serial case: for each
// (box_face, generator) pair, emit the mirror of that generator across the
// plane of the box face. Candidates are deduplicated so the same
// (face,generator) pair is never mirrored twice within one pass. The
// parallel faceIDs slice records which box face each returned point was
// mirrored through, so the caller can later reflect its cell centroid back
// across that same plane (spec.md §4.6's CalcRigidCM, P5 invariant).
func (o *Tessellation) createBoundaryPoints(hits []ghostHit) (pts []geom.Vec3, faceIDs []int) {
	boxFaces := geom.BoxFaces(o.box)
	seen := make(map[[2]int]struct{}, len(hits))
	for _, h := range hits {
		key := [2]int{h.FaceID, h.Gen}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pts = append(pts, geom.MirrorPoint(boxFaces[h.FaceID], o.del.Points[h.Gen]))
		faceIDs = append(faceIDs, h.FaceID)
	}
	return pts, faceIDs
}

// recordMirrorFace remembers that point-table index ptIdx is a rigid
// (mirrored) ghost produced by reflecting across box face faceID
func (o *Tessellation) recordMirrorFace(ptIdx, faceID int) {
	if o.mirrorFace == nil {
		o.mirrorFace = make(map[int]int)
	}
	o.mirrorFace[ptIdx] = faceID
}

// dedupIndex returns the position of peer in the duplicatedProcs ledger,
// creating a fresh (empty) entry if peer has not been seen before.
func (o *Tessellation) dedupIndex(peer int) int {
	for i, p := range o.duplicatedProcs {
		if p == peer {
			return i
		}
	}
	o.duplicatedProcs = append(o.duplicatedProcs, peer)
	o.duplicatedPoints = append(o.duplicatedPoints, nil)
	o.nghost = append(o.nghost, nil)
	return len(o.duplicatedProcs) - 1
}

// alreadySent reports whether local generator local has already been
// queued for shipping to peer in a previous pass (spec.md §3 invariant:
// duplicated_points_ never ships the same generator to the same peer twice)
func (o *Tessellation) alreadySent(peer, local int) bool {
	idx := o.dedupIndex(peer)
	for _, v := range o.duplicatedPoints[idx] {
		if v == local {
			return true
		}
	}
	return false
}

func (o *Tessellation) markSent(peer, local int) {
	idx := o.dedupIndex(peer)
	o.duplicatedPoints[idx] = append(o.duplicatedPoints[idx], local)
}

// recordSent appends to the sentProcs/sentPoints query-surface ledger
// (spec.md §4.7's SentProcs/SentPoints)
func (o *Tessellation) recordSent(peer int, idxs []int) {
	for i, p := range o.sentProcs {
		if p == peer {
			o.sentPoints[i] = append(o.sentPoints[i], idxs...)
			return
		}
	}
	o.sentProcs = append(o.sentProcs, peer)
	cp := append([]int{}, idxs...)
	o.sentPoints = append(o.sentPoints, cp)
}

// augmentGhostsDistributed implements the distributed case of spec.md §4.4:
// mirror candidates are appended to the local Delaunay immediately (as in
// the serial case); shipping candidates are deduplicated against the
// running ledger, exchanged with peers via ex, and the received points are
// appended to the local Delaunay in receive order, which is the only
// ordering nghost is allowed to rely on (spec.md §5).
func (o *Tessellation) augmentGhostsDistributed(tproc procmesh.Tessellation3D, ex transport.Exchanger, recurse bool) error {
	myRank := ex.Rank()
	toShip, toMirror := o.distributedFindIntersections(tproc, myRank, recurse)

	mirrorPts, mirrorFaceIDs := o.createBoundaryPoints(toMirror)
	if len(mirrorPts) > 0 {
		base := len(o.del.Points)
		if err := o.del.BuildExtra(mirrorPts); err != nil {
			return err
		}
		for i, fid := range mirrorFaceIDs {
			o.recordMirrorFace(base+i, fid)
		}
	}

	var candidates []int
	for p := range toShip {
		candidates = append(candidates, p)
	}
	sort.Ints(candidates)
	peers := ex.Symmetrize(candidates)

	perPeerIdx := make([][]int, len(peers))
	for i, p := range peers {
		var idxs []int
		for g := range toShip[p] {
			if !o.alreadySent(p, g) {
				idxs = append(idxs, g)
			}
		}
		sort.Ints(idxs)
		for _, g := range idxs {
			o.markSent(p, g)
		}
		perPeerIdx[i] = idxs
		o.recordSent(p, idxs)
	}

	srcPts := o.del.Points[:o.norg]
	received := ex.ExchangePoints(peers, perPeerIdx, srcPts)
	for i, p := range peers {
		if len(received[i]) == 0 {
			continue
		}
		base := len(o.del.Points)
		if err := o.del.BuildExtra(received[i]); err != nil {
			return err
		}
		idx := o.dedupIndex(p)
		for k := range received[i] {
			o.nghost[idx] = append(o.nghost[idx], base+k)
		}
	}
	return nil
}
