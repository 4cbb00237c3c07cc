// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package procmesh implements the coarse "process tessellation" collaborator
// (T_proc of spec.md §2/§4.3): a read-only partition of the global domain
// into one subdomain per cooperating process, exposing the same query
// surface as the real Voronoi tessellation so the distributed ghost
// discovery algorithm can treat T_proc and the fine tessellation uniformly.
package procmesh

import "github.com/cpmech/govoro3d/geom"

// Tessellation3D is the read-only query surface spec.md §6 requires of the
// process tessellation collaborator.
type Tessellation3D interface {
	PointNo() int
	MeshPoint(i int) geom.Vec3
	CellFaces(i int) []int
	FaceNeighbors(i int) (int, int)
	PointsInFace(i int) []int
	FacePoints() []geom.Vec3
	TotalFacesNumber() int
	Neighbors(i int) []int

	// Rank returns the subdomain index containing p, or -1 if p falls
	// outside every subdomain (spec.md §2 step 1's ingest sort).
	Rank(p geom.Vec3) int
}

// Slab is a minimal concrete T_proc: it decomposes the box into Nproc
// consecutive slabs along the x-axis. Only x-normal faces are registered:
// the faces between consecutive slabs and the -x/+x walls of the end slabs.
// The y and z sides of the box carry no T_proc face. It is grounded on
// BuildBox from the original Voronoi3D source, generalized to a stack of
// boxes instead of one.
type Slab struct {
	box       geom.Box
	nproc     int
	centers   []geom.Vec3
	facePts   []geom.Vec3
	cellFaces [][]int
	faceNbrs  [][2]int
	facePtIdx [][]int
}

// NewSlab partitions box into nproc consecutive slabs along the x-axis
func NewSlab(box geom.Box, nproc int) *Slab {
	s := &Slab{box: box, nproc: nproc}
	dx := (box.Hi.X - box.Lo.X) / float64(nproc)
	boxes := make([]geom.Box, nproc)
	for i := 0; i < nproc; i++ {
		lo := geom.NewVec3(box.Lo.X+float64(i)*dx, box.Lo.Y, box.Lo.Z)
		hi := geom.NewVec3(box.Lo.X+float64(i+1)*dx, box.Hi.Y, box.Hi.Z)
		boxes[i] = geom.Box{Lo: lo, Hi: hi}
		s.centers = append(s.centers, lo.Add(hi).Scale(0.5))
	}
	s.cellFaces = make([][]int, nproc)
	// internal faces between consecutive slabs
	for i := 0; i < nproc-1; i++ {
		x := boxes[i].Hi.X
		y0, y1 := box.Lo.Y, box.Hi.Y
		z0, z1 := box.Lo.Z, box.Hi.Z
		verts := []geom.Vec3{
			geom.NewVec3(x, y0, z0), geom.NewVec3(x, y1, z0),
			geom.NewVec3(x, y1, z1), geom.NewVec3(x, y0, z1),
		}
		faceID := len(s.faceNbrs)
		base := len(s.facePts)
		s.facePts = append(s.facePts, verts...)
		s.facePtIdx = append(s.facePtIdx, []int{base, base + 1, base + 2, base + 3})
		s.faceNbrs = append(s.faceNbrs, [2]int{i, i + 1})
		s.cellFaces[i] = append(s.cellFaces[i], faceID)
		s.cellFaces[i+1] = append(s.cellFaces[i+1], faceID)
	}
	// outer wall faces: neighbor on the "outside" is nproc (sentinel wall id)
	for i := 0; i < nproc; i++ {
		if i == 0 {
			s.addWallFace(boxes[i], 0, i)
		}
		if i == nproc-1 {
			s.addWallFace(boxes[i], 1, i)
		}
	}
	return s
}

// addWallFace registers an outward-facing wall face of slab cell idx; side
// 0 is the -x wall, side 1 the +x wall.
func (s *Slab) addWallFace(b geom.Box, side int, idx int) {
	x := b.Lo.X
	if side == 1 {
		x = b.Hi.X
	}
	y0, y1 := b.Lo.Y, b.Hi.Y
	z0, z1 := b.Lo.Z, b.Hi.Z
	verts := []geom.Vec3{
		geom.NewVec3(x, y0, z0), geom.NewVec3(x, y1, z0),
		geom.NewVec3(x, y1, z1), geom.NewVec3(x, y0, z1),
	}
	if side == 0 {
		// reverse the winding so the face normal points -x, out of the domain
		verts[1], verts[3] = verts[3], verts[1]
	}
	faceID := len(s.faceNbrs)
	base := len(s.facePts)
	s.facePts = append(s.facePts, verts...)
	s.facePtIdx = append(s.facePtIdx, []int{base, base + 1, base + 2, base + 3})
	s.faceNbrs = append(s.faceNbrs, [2]int{idx, s.nproc}) // s.nproc == "wall" sentinel rank
	s.cellFaces[idx] = append(s.cellFaces[idx], faceID)
}

func (s *Slab) PointNo() int { return s.nproc }

func (s *Slab) MeshPoint(i int) geom.Vec3 { return s.centers[i] }

func (s *Slab) CellFaces(i int) []int { return s.cellFaces[i] }

func (s *Slab) FaceNeighbors(i int) (int, int) { return s.faceNbrs[i][0], s.faceNbrs[i][1] }

func (s *Slab) PointsInFace(i int) []int { return s.facePtIdx[i] }

func (s *Slab) FacePoints() []geom.Vec3 { return s.facePts }

func (s *Slab) TotalFacesNumber() int { return len(s.faceNbrs) }

// Neighbors returns the ranks sharing a face with rank i, including the
// wall sentinel (s.nproc) when i borders the domain boundary
func (s *Slab) Neighbors(i int) []int {
	var res []int
	for _, f := range s.cellFaces[i] {
		a, b := s.faceNbrs[f][0], s.faceNbrs[f][1]
		if a == i {
			res = append(res, b)
		} else {
			res = append(res, a)
		}
	}
	return res
}

// Rank returns the rank of the subdomain containing p, or -1 if p falls
// outside every subdomain (bisected only along x, so a simple scan suffices)
func (s *Slab) Rank(p geom.Vec3) int {
	if p.Y <= s.box.Lo.Y || p.Y >= s.box.Hi.Y || p.Z <= s.box.Lo.Z || p.Z >= s.box.Hi.Z {
		return -1
	}
	dx := (s.box.Hi.X - s.box.Lo.X) / float64(s.nproc)
	idx := int((p.X - s.box.Lo.X) / dx)
	if idx < 0 || idx >= s.nproc {
		return -1
	}
	return idx
}

// BoundingBox returns the bounding box of the rank-th subdomain
func (s *Slab) BoundingBox(rank int) geom.Box {
	dx := (s.box.Hi.X - s.box.Lo.X) / float64(s.nproc)
	lo := geom.NewVec3(s.box.Lo.X+float64(rank)*dx, s.box.Lo.Y, s.box.Lo.Z)
	hi := geom.NewVec3(s.box.Lo.X+float64(rank+1)*dx, s.box.Hi.Y, s.box.Hi.Z)
	return geom.Box{Lo: lo, Hi: hi}
}
