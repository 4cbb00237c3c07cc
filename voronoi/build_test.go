// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/gosl/chk"
)

// readBackHeader parses just enough of the spec.md §6 binary layout to
// check round-trip structure: N, M, per-cell face counts and per-face
// vertex-loop lengths.
func readBackHeader(tst *testing.T, path string) (n, m int, cellFaceCounts, faceLens []int) {
	f, err := os.Open(path)
	if err != nil {
		tst.Fatalf("cannot open output file: %v", err)
	}
	defer f.Close()

	var n32 int32
	must(tst, binary.Read(f, binary.LittleEndian, &n32))
	n = int(n32)
	skipVec3s(tst, f, n)

	var m32 int32
	must(tst, binary.Read(f, binary.LittleEndian, &m32))
	m = int(m32)
	skipVec3s(tst, f, m)

	cellFaceCounts = make([]int, n)
	for i := 0; i < n; i++ {
		var fi32 int32
		must(tst, binary.Read(f, binary.LittleEndian, &fi32))
		cellFaceCounts[i] = int(fi32)
		for j := 0; j < int(fi32); j++ {
			var idx32 int32
			must(tst, binary.Read(f, binary.LittleEndian, &idx32))
		}
	}

	var k32 int32
	must(tst, binary.Read(f, binary.LittleEndian, &k32))
	faceLens = make([]int, k32)
	for i := range faceLens {
		var l32 int32
		must(tst, binary.Read(f, binary.LittleEndian, &l32))
		faceLens[i] = int(l32)
		for j := 0; j < int(l32); j++ {
			var idx32 int32
			must(tst, binary.Read(f, binary.LittleEndian, &idx32))
		}
	}
	return
}

func skipVec3s(tst *testing.T, f *os.File, count int) {
	for i := 0; i < count; i++ {
		var x, y, z float64
		must(tst, binary.Read(f, binary.LittleEndian, &x))
		must(tst, binary.Read(f, binary.LittleEndian, &y))
		must(tst, binary.Read(f, binary.LittleEndian, &z))
	}
}

func must(tst *testing.T, err error) {
	if err != nil {
		tst.Fatalf("unexpected read error: %v", err)
	}
}

func Test_voro01(tst *testing.T) {

	chk.PrintTitle("voro01. single cube, single point")

	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)
	tess := New(lo, hi)

	points := []geom.Vec3{geom.NewVec3(0.5, 0.5, 0.5)}
	err := tess.Build(points)
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	chk.IntAssert(tess.PointNo(), 1)
	chk.IntAssert(len(tess.CellFaces(0)), 6)
	chk.Scalar(tst, "volume", 1e-9, tess.GetVolume(0), 1.0)
	cm := tess.GetCellCM(0)
	chk.Scalar(tst, "cm.x", 1e-9, cm.X, 0.5)
	chk.Scalar(tst, "cm.y", 1e-9, cm.Y, 0.5)
	chk.Scalar(tst, "cm.z", 1e-9, cm.Z, 0.5)
}

func Test_voro02(tst *testing.T) {

	chk.PrintTitle("voro02. two-point split along x")

	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)
	tess := New(lo, hi)

	points := []geom.Vec3{
		geom.NewVec3(0.25, 0.5, 0.5),
		geom.NewVec3(0.75, 0.5, 0.5),
	}
	err := tess.Build(points)
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	chk.Scalar(tst, "volume0", 1e-9, tess.GetVolume(0), 0.5)
	chk.Scalar(tst, "volume1", 1e-9, tess.GetVolume(1), 0.5)

	cm0 := tess.GetCellCM(0)
	cm1 := tess.GetCellCM(1)
	chk.Scalar(tst, "cm0.x", 1e-9, cm0.X, 0.25)
	chk.Scalar(tst, "cm1.x", 1e-9, cm1.X, 0.75)

	found := false
	for _, f := range tess.CellFaces(0) {
		n0, n1 := tess.FaceNeighbors(f)
		if n0 == 0 && n1 == 1 {
			found = true
			chk.Scalar(tst, "internal face area", 1e-9, tess.GetArea(f), 1.0)
			fc := tess.FaceCM(f)
			chk.Scalar(tst, "internal face cm.x", 1e-9, fc.X, 0.5)
		}
	}
	if !found {
		tst.Errorf("expected an internal face between cell 0 and cell 1")
	}
}

func Test_voro03(tst *testing.T) {

	chk.PrintTitle("voro03. 4x4x4 regular grid")

	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)
	tess := New(lo, hi)

	var points []geom.Vec3
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				x := (float64(i) + 0.5) / 4
				y := (float64(j) + 0.5) / 4
				z := (float64(k) + 0.5) / 4
				points = append(points, geom.NewVec3(x, y, z))
			}
		}
	}
	err := tess.Build(points)
	if err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	var total float64
	for i := 0; i < tess.PointNo(); i++ {
		total += tess.GetVolume(i)
		chk.Scalar(tst, "cell volume", 1e-6, tess.GetVolume(i), 1.0/64.0)
	}
	chk.Scalar(tst, "total volume", 1e-6, total, 1.0)
}

func Test_voro06_rigid_ghost_cm(tst *testing.T) {

	chk.PrintTitle("voro06. rigid-ghost centroid is the mirror of its real neighbor's centroid")

	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)
	tess := New(lo, hi)

	points := []geom.Vec3{geom.NewVec3(0.5, 0.5, 0.5)}
	if err := tess.Build(points); err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	boxFaces := geom.BoxFaces(tess.box)
	checked := 0
	for fi, nb := range tess.faceNeighbors {
		n0, n1 := nb[0], nb[1]
		if !tess.BoundaryFace(fi) {
			continue
		}
		fid, ok := tess.mirrorFace[n1]
		if !ok {
			tst.Errorf("boundary face %d has no mirror-face record for ghost %d", fi, n1)
			continue
		}
		cmGhost, ok := tess.GetGhostCM(n1)
		if !ok {
			tst.Errorf("ghost %d has no recorded centroid", n1)
			continue
		}
		want := geom.MirrorPoint(boxFaces[fid], tess.GetCellCM(n0))
		chk.Scalar(tst, "ghostCM.x", 1e-9, cmGhost.X, want.X)
		chk.Scalar(tst, "ghostCM.y", 1e-9, cmGhost.Y, want.Y)
		chk.Scalar(tst, "ghostCM.z", 1e-9, cmGhost.Z, want.Z)
		checked++
	}
	if checked == 0 {
		tst.Errorf("expected at least one rigid-ghost boundary face to check")
	}
}

func Test_voro04_output_roundtrip(tst *testing.T) {

	chk.PrintTitle("voro04. output round-trip")

	lo := geom.NewVec3(0, 0, 0)
	hi := geom.NewVec3(1, 1, 1)
	tess := New(lo, hi)

	points := []geom.Vec3{
		geom.NewVec3(0.25, 0.5, 0.5),
		geom.NewVec3(0.75, 0.5, 0.5),
	}
	if err := tess.Build(points); err != nil {
		tst.Errorf("Build failed:\n%v", err)
		return
	}

	path := tst.TempDir() + "/roundtrip.vor"
	if err := tess.WriteOutput(path); err != nil {
		tst.Errorf("WriteOutput failed:\n%v", err)
		return
	}

	n, m, cellFaceCounts, faceLens := readBackHeader(tst, path)
	chk.IntAssert(n, tess.PointNo())
	chk.IntAssert(m, len(tess.centers))
	for i := 0; i < tess.PointNo(); i++ {
		chk.IntAssert(cellFaceCounts[i], len(tess.CellFaces(i)))
	}
	chk.IntAssert(len(faceLens), tess.TotalFacesNumber())
	for i, loop := range tess.pointsInFace {
		chk.IntAssert(faceLens[i], len(loop))
	}
}
