// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

// buildPointTetraIndex implements spec.md §4.1: for each real generator,
// the sorted list of tetrahedra incident to it (skipping empty tetra), and
// a witness tetra (bigTet) touching both a sentinel and a real generator —
// the seed for the serial boundary walk. It also refreshes the lazily
// filled circumsphere table so that every ghost-discovery pass that
// follows has valid circumcenters/circumradii to test against (spec.md
// §9's lazy-geometry design note: filled here, reused across both
// discovery passes, invalidated wholesale on the next Build()).
func (o *Tessellation) buildPointTetraIndex() error {
	o.refreshGeometry()
	o.pointTetras = make([][]int, o.norg)
	haveBigTet := false
	for i, t := range o.del.Tetras {
		if _, empty := o.del.EmptyTetras[i]; empty {
			continue
		}
		hasReal := false
		hasSentinel := false
		for _, p := range t.Points {
			if p < o.norg {
				o.pointTetras[p] = append(o.pointTetras[p], i)
				hasReal = true
			} else if o.isSentinel(p) {
				hasSentinel = true
			}
		}
		if hasReal && hasSentinel {
			o.bigTet = i
			haveBigTet = true
		}
	}
	if !haveBigTet {
		return &ErrNoSeedFound{}
	}
	return nil
}

// firstPointToCheck returns the real generator on bigTet used to seed the
// serial ghost-discovery walk (spec.md §4.2)
func (o *Tessellation) firstPointToCheck() (int, error) {
	for _, p := range o.del.Tetras[o.bigTet].Points {
		if p < o.norg {
			return p, nil
		}
	}
	return 0, &ErrNoSeedFound{}
}

// pointNeighbors returns the deduplicated set of real generators sharing
// any incident tetra with point, point itself included, in the order they
// are first met (spec.md §4.2's "real neighbor" relation, via
// GetPointToCheck in the original source)
func (o *Tessellation) pointNeighbors(point int) []int {
	seen := make(map[int]struct{})
	var res []int
	for _, tet := range o.pointTetras[point] {
		for _, p := range o.del.Tetras[tet].Points {
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
