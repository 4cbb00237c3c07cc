// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"sync"
	"testing"

	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/govoro3d/procmesh"
	"github.com/cpmech/govoro3d/transport"
	"github.com/cpmech/gosl/chk"
)

// Test_voro05_distributed implements spec.md §8 scenario 5: a two-process
// x-axis bisection must reproduce, for every generator, the same cell
// volume and centroid as a single-process run over the union of
// generators.
func Test_voro05_distributed(tst *testing.T) {

	chk.PrintTitle("voro05. distributed vs serial bisection")

	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)

	points := []geom.Vec3{
		geom.NewVec3(0.2, 0.3, 0.3),
		geom.NewVec3(0.2, 0.7, 0.7),
		geom.NewVec3(0.8, 0.3, 0.3),
		geom.NewVec3(0.8, 0.7, 0.7),
	}

	serial := New(lo, hi)
	if err := serial.Build(points); err != nil {
		tst.Errorf("serial Build failed:\n%v", err)
		return
	}

	tproc := procmesh.NewSlab(geom.NewBox(lo, hi), 2)
	hub := transport.NewHub(2)

	results := make([]*Tessellation, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for r := 0; r < 2; r++ {
		r := r
		go func() {
			defer wg.Done()
			ex := transport.NewLoopback(hub, r)
			t := New(lo, hi)
			errs[r] = t.BuildDistributed(points, tproc, ex)
			results[r] = t
		}()
	}
	wg.Wait()

	for r, err := range errs {
		if err != nil {
			tst.Errorf("distributed Build failed on rank %d:\n%v", r, err)
			return
		}
	}

	checked := 0
	for _, t := range results {
		for li := 0; li < t.PointNo(); li++ {
			gi := t.SelfIndex()[li]
			chk.Scalar(tst, "volume", 1e-6, t.GetVolume(li), serial.GetVolume(gi))
			cmD := t.GetCellCM(li)
			cmS := serial.GetCellCM(gi)
			chk.Scalar(tst, "cm.x", 1e-6, cmD.X, cmS.X)
			chk.Scalar(tst, "cm.y", 1e-6, cmD.Y, cmS.Y)
			chk.Scalar(tst, "cm.z", 1e-6, cmD.Z, cmS.Z)
			checked++
		}
	}
	chk.IntAssert(checked, len(points))
}
