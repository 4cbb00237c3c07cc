// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_tetra01(tst *testing.T) {

	chk.PrintTitle("tetra01. unit-corner tetra volume and circumsphere")

	v0 := NewVec3(0, 0, 0)
	v1 := NewVec3(1, 0, 0)
	v2 := NewVec3(0, 1, 0)
	v3 := NewVec3(0, 0, 1)

	vol := TetraVolume(v0, v1, v2, v3)
	chk.Scalar(tst, "volume", 1e-15, vol, 1.0/6.0)

	cm := TetraCentroid(v0, v1, v2, v3)
	chk.Scalar(tst, "cm.x", 1e-15, cm.X, 0.25)
	chk.Scalar(tst, "cm.y", 1e-15, cm.Y, 0.25)
	chk.Scalar(tst, "cm.z", 1e-15, cm.Z, 0.25)

	c, r := Circumsphere(v0, v1, v2, v3)
	chk.Scalar(tst, "circumcenter.x", 1e-14, c.X, 0.5)
	chk.Scalar(tst, "circumcenter.y", 1e-14, c.Y, 0.5)
	chk.Scalar(tst, "circumcenter.z", 1e-14, c.Z, 0.5)
	for _, v := range []Vec3{v0, v1, v2, v3} {
		chk.Scalar(tst, "radius", 1e-13, v.Sub(c).Norm(), r)
	}
}

func Test_box01(tst *testing.T) {

	chk.PrintTitle("box01. box faces, normals and mirroring")

	b := NewBox(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	chk.Scalar(tst, "volume", 1e-15, b.Volume(), 1.0)

	faces := BoxFaces(b)
	chk.IntAssert(len(faces), 6)

	p := NewVec3(0.1, 0.5, 0.5)
	mirrored := false
	for _, f := range faces {
		n := f.Normal()
		if n.Dot(NewVec3(-1, 0, 0)) > 0 {
			m := MirrorPoint(f, p)
			chk.Scalar(tst, "mirror.x", 1e-14, m.X, -0.1)
			chk.Scalar(tst, "mirror.y", 1e-14, m.Y, 0.5)
			chk.Scalar(tst, "mirror.z", 1e-14, m.Z, 0.5)
			mirrored = true
		}
	}
	if !mirrored {
		tst.Errorf("no -x face found among BoxFaces")
	}
}

func Test_sphere01(tst *testing.T) {

	chk.PrintTitle("sphere01. face/sphere intersection predicate")

	b := NewBox(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	faces := BoxFaces(b)

	near := Sphere{Center: NewVec3(0.05, 0.5, 0.5), Radius: 0.1}
	far := Sphere{Center: NewVec3(0.5, 0.5, 0.5), Radius: 0.1}

	nearHit, farHit := false, false
	for _, f := range faces {
		if FaceSphereIntersect(f, near) {
			nearHit = true
		}
		if FaceSphereIntersect(f, far) {
			farHit = true
		}
	}
	if !nearHit {
		tst.Errorf("sphere near a box face should intersect it")
	}
	if farHit {
		tst.Errorf("sphere at the box centre with small radius should not reach any face")
	}
}
