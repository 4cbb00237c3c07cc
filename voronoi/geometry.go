// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"math"

	"github.com/cpmech/govoro3d/geom"
)

// accumulateCellGeometry implements spec.md §3's volume invariant and §4.6:
// for every real generator, sum the *absolute* tetra-fan volumes formed by
// each incident face and the generator itself — each face contributes to
// both endpoints when both are real, matching the original CalcAllCM
// accumulation.
func (o *Tessellation) accumulateCellGeometry() {
	o.volume = make([]float64, o.norg)
	o.cm = make([]geom.Vec3, o.norg)

	for fi, loop := range o.pointsInFace {
		v0 := o.centers[loop[0]]
		n0, n1 := o.faceNeighbors[fi][0], o.faceNeighbors[fi][1]
		apexes := []int{n0}
		if n1 < o.norg {
			apexes = append(apexes, n1)
		}
		for _, apex := range apexes {
			apexPt := o.del.Points[apex]
			for i := 0; i < len(loop)-2; i++ {
				a := o.centers[loop[i+1]]
				b := o.centers[loop[i+2]]
				vol := math.Abs(geom.TetraVolume(apexPt, v0, a, b))
				cm := apexPt.Add(v0).Add(a).Add(b).Scale(0.25)
				o.volume[apex] += vol
				o.cm[apex] = o.cm[apex].Add(cm.Scale(vol))
			}
		}
	}
	for i := range o.cm {
		if o.volume[i] > 1e-300 {
			o.cm[i] = o.cm[i].Scale(1 / o.volume[i])
		}
	}
}

// mirrorCentroid reflects a real cell's centroid across the box face its
// rigid ghost was mirrored through (spec.md §4.6's CalcRigidCM)
func mirrorCentroid(f geom.Face, cm geom.Vec3) geom.Vec3 {
	return geom.MirrorPoint(f, cm)
}

// reflectGhostCentroids implements spec.md §4.6's CalcRigidCM loop and its
// P5 invariant: for every boundary face whose far side n1 is a rigid
// (mirrored) ghost, store n1's centroid as the reflection of its real
// neighbor's centroid across the box face n1 was mirrored through. Run
// after accumulateCellGeometry and before any peer-centroid exchange, so a
// shipped ghost's rigid estimate (if it has one) is later overwritten by
// the real value received from its owning rank.
func (o *Tessellation) reflectGhostCentroids() {
	if len(o.mirrorFace) == 0 {
		return
	}
	boxFaces := geom.BoxFaces(o.box)
	if o.ghostCM == nil {
		o.ghostCM = make(map[int]geom.Vec3)
	}
	for _, nb := range o.faceNeighbors {
		n0, n1 := nb[0], nb[1]
		if n1 < o.norg {
			continue
		}
		fid, ok := o.mirrorFace[n1]
		if !ok {
			continue
		}
		o.ghostCM[n1] = mirrorCentroid(boxFaces[fid], o.cm[n0])
	}
}
