// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import (
	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/gosl/chk"
)

// Delaunay owns the generator point table (real points, then the 4 bounding
// sentinels, then any ghosts appended later) and the tetrahedra dual to it.
// "Empty" tetrahedra are superseded by later insertions; they are kept as
// members of a side set rather than removed, so tetra indices never shift.
type Delaunay struct {
	Points      []geom.Vec3
	Tetras      []Tetra
	EmptyTetras map[int]struct{}
}

// Clean resets the Delaunay to a fresh, empty state
func (d *Delaunay) Clean() {
	d.Points = nil
	d.Tetras = nil
	d.EmptyTetras = make(map[int]struct{})
}

// Build tetrahedralizes points (the real generators) inside the box
// [ll,ur]. It appends 4 sentinel vertices immediately after the N real
// points (indices N..N+3) bounding the whole triangulation, per the
// sentinel contract of spec.md §6.
func (d *Delaunay) Build(points []geom.Vec3, ur, ll geom.Vec3) error {
	d.Clean()
	d.Points = append(d.Points, points...)
	n := len(points)
	s0, s1, s2, s3 := superTetraVerts(ll, ur)
	d.Points = append(d.Points, s0, s1, s2, s3)
	t0 := Tetra{Points: [4]int{n, n + 1, n + 2, n + 3}, Neighbors: [4]int{noNeighbor, noNeighbor, noNeighbor, noNeighbor}}
	if geom.TetraVolume(d.Points[t0.Points[0]], d.Points[t0.Points[1]], d.Points[t0.Points[2]], d.Points[t0.Points[3]]) < 0 {
		t0.Points[0], t0.Points[1] = t0.Points[1], t0.Points[0]
	}
	d.Tetras = append(d.Tetras, t0)
	for i := 0; i < n; i++ {
		if err := d.insertPoint(i); err != nil {
			return err
		}
	}
	return nil
}

// BuildExtra appends more points (ghosts) to the triangulation without
// discarding any existing tetra index: superseded tetrahedra are recorded
// in EmptyTetras, never renumbered.
func (d *Delaunay) BuildExtra(extra []geom.Vec3) error {
	start := len(d.Points)
	d.Points = append(d.Points, extra...)
	for i := 0; i < len(extra); i++ {
		if err := d.insertPoint(start + i); err != nil {
			return err
		}
	}
	return nil
}

// superTetraVerts returns 4 points of a tetrahedron comfortably enclosing
// the box [ll,ur], scaled well beyond the box diagonal so every real or
// ghost point to be inserted later remains strictly interior.
func superTetraVerts(ll, ur geom.Vec3) (a, b, c, d geom.Vec3) {
	center := ll.Add(ur).Scale(0.5)
	diag := ur.Sub(ll).Norm()
	if diag < 1e-12 {
		diag = 1
	}
	r := 20 * diag
	a = center.Add(geom.NewVec3(0, 0, r))
	b = center.Add(geom.NewVec3(r, 0, -0.5*r))
	c = center.Add(geom.NewVec3(-0.5*r, 0.866*r, -0.5*r))
	d = center.Add(geom.NewVec3(-0.5*r, -0.866*r, -0.5*r))
	return
}

// insertPoint runs the Bowyer-Watson cavity insertion of the point at
// index pIdx into the current triangulation.
func (d *Delaunay) insertPoint(pIdx int) error {
	p := d.Points[pIdx]
	seed, err := d.locate(p)
	if err != nil {
		return err
	}

	// grow the cavity: tetrahedra whose circumsphere contains p
	bad := map[int]struct{}{seed: {}}
	stack := []int{seed}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t := d.Tetras[cur]
		for k := 0; k < 4; k++ {
			nb := t.Neighbors[k]
			if nb == noNeighbor {
				continue
			}
			if _, skip := d.EmptyTetras[nb]; skip {
				continue
			}
			if _, already := bad[nb]; already {
				continue
			}
			if d.inCircumsphere(nb, p) {
				bad[nb] = struct{}{}
				stack = append(stack, nb)
			}
		}
	}

	// collect the cavity's boundary faces together with the neighbor
	// lying just outside the cavity (or noNeighbor on the hull)
	type boundaryFace struct {
		verts    [3]int
		outside  int
		outsideK int
	}
	var faces []boundaryFace
	for cur := range bad {
		t := d.Tetras[cur]
		for k := 0; k < 4; k++ {
			nb := t.Neighbors[k]
			if nb != noNeighbor {
				if _, isBad := bad[nb]; isBad {
					continue
				}
			}
			outsideK := noNeighbor
			if nb != noNeighbor {
				outsideK = d.Tetras[nb].faceIndexOf(t.faceOpposite(k))
			}
			faces = append(faces, boundaryFace{verts: t.faceOpposite(k), outside: nb, outsideK: outsideK})
		}
	}

	// retire the bad tetra (indices are preserved, never reused)
	for cur := range bad {
		d.EmptyTetras[cur] = struct{}{}
	}

	// re-triangulate: one new tetra per boundary face, fanned through p
	sides := make(map[[2]int][]struct {
		tetra    int
		localPos int
	})
	for _, bf := range faces {
		fv0, fv1, fv2 := bf.verts[0], bf.verts[1], bf.verts[2]
		if geom.TetraVolume(d.Points[fv0], d.Points[fv1], d.Points[fv2], p) < 0 {
			fv0, fv1 = fv1, fv0
		}
		nt := Tetra{Points: [4]int{fv0, fv1, fv2, pIdx}}
		nt.Neighbors[3] = bf.outside
		newIdx := len(d.Tetras)
		d.Tetras = append(d.Tetras, nt)
		if bf.outside != noNeighbor {
			d.Tetras[bf.outside].Neighbors[bf.outsideK] = newIdx
		}
		// the 3 side faces, each opposite one of fv0,fv1,fv2, keyed by the
		// boundary edge of the other two verts
		register := func(edgeA, edgeB, oppositeVert int) {
			key := sortedKey2(edgeA, edgeB)
			localPos := d.Tetras[newIdx].oppositeIndex(oppositeVert)
			sides[key] = append(sides[key], struct {
				tetra    int
				localPos int
			}{newIdx, localPos})
		}
		register(fv1, fv2, fv0)
		register(fv0, fv2, fv1)
		register(fv0, fv1, fv2)
	}
	for _, pair := range sides {
		if len(pair) != 2 {
			continue
		}
		a, b := pair[0], pair[1]
		d.Tetras[a.tetra].Neighbors[a.localPos] = b.tetra
		d.Tetras[b.tetra].Neighbors[b.localPos] = a.tetra
	}
	return nil
}

// locate finds a non-empty tetra containing point p using the sign of the
// four sub-volumes formed by replacing each vertex with p in turn.
func (d *Delaunay) locate(p geom.Vec3) (int, error) {
	const tol = -1e-9
	for i, t := range d.Tetras {
		if _, empty := d.EmptyTetras[i]; empty {
			continue
		}
		v0, v1, v2, v3 := d.Points[t.Points[0]], d.Points[t.Points[1]], d.Points[t.Points[2]], d.Points[t.Points[3]]
		if geom.TetraVolume(p, v1, v2, v3) < tol {
			continue
		}
		if geom.TetraVolume(v0, p, v2, v3) < tol {
			continue
		}
		if geom.TetraVolume(v0, v1, p, v3) < tol {
			continue
		}
		if geom.TetraVolume(v0, v1, v2, p) < tol {
			continue
		}
		return i, nil
	}
	return 0, chk.Err("delaunay: point %v could not be located in any tetra (degenerate or out-of-bounds input)", p)
}

// inCircumsphere reports whether p lies within the circumsphere of tetra i
func (d *Delaunay) inCircumsphere(i int, p geom.Vec3) bool {
	t := d.Tetras[i]
	center, radius := geom.Circumsphere(d.Points[t.Points[0]], d.Points[t.Points[1]], d.Points[t.Points[2]], d.Points[t.Points[3]])
	return p.Sub(center).Norm() < radius-1e-12
}
