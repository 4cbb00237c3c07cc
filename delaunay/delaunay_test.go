// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delaunay

import (
	"testing"

	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/gosl/chk"
)

func Test_delaunay01(tst *testing.T) {

	chk.PrintTitle("delaunay01. single point build and sentinel contract")

	var d Delaunay
	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)
	points := []geom.Vec3{geom.NewVec3(0.5, 0.5, 0.5)}

	err := d.Build(points, hi, lo)
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	chk.IntAssert(len(d.Points), 5) // 1 real + 4 sentinels
	for i, t := range d.Tetras {
		if _, empty := d.EmptyTetras[i]; empty {
			continue
		}
		hasReal, hasSentinel := false, false
		for _, p := range t.Points {
			if p == 0 {
				hasReal = true
			}
			if p >= 1 && p <= 4 {
				hasSentinel = true
			}
		}
		if !hasReal && !hasSentinel {
			tst.Errorf("surviving tetra %d touches neither the real point nor a sentinel", i)
		}
	}
}

func Test_delaunay02(tst *testing.T) {

	chk.PrintTitle("delaunay02. BuildExtra appends tetrahedra and points")

	var d Delaunay
	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)
	points := []geom.Vec3{
		geom.NewVec3(0.3, 0.5, 0.5),
		geom.NewVec3(0.7, 0.5, 0.5),
	}
	if err := d.Build(points, hi, lo); err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}
	nBefore := len(d.Tetras)

	extra := []geom.Vec3{geom.NewVec3(0.5, 0.1, 0.5)}
	if err := d.BuildExtra(extra); err != nil {
		tst.Errorf("BuildExtra failed:\n%v", err)
		return
	}
	if len(d.Tetras) <= nBefore {
		tst.Errorf("expected BuildExtra to append new tetrahedra, have %d, had %d", len(d.Tetras), nBefore)
	}
	chk.IntAssert(len(d.Points), 7) // 2 real + 4 sentinels + 1 extra
}
