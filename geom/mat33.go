// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/la"

// Det3 returns the determinant of the 3x3 matrix whose rows are r0,r1,r2.
// It is backed by a gosl/la.Matrix so the core geometry stays on the same
// linear-algebra stack the rest of the ecosystem uses, rather than
// hand-rolling a bespoke matrix type.
func Det3(r0, r1, r2 Vec3) float64 {
	m := la.NewMatrix(3, 3)
	m.Set(0, 0, r0.X)
	m.Set(0, 1, r0.Y)
	m.Set(0, 2, r0.Z)
	m.Set(1, 0, r1.X)
	m.Set(1, 1, r1.Y)
	m.Set(1, 2, r1.Z)
	m.Set(2, 0, r2.X)
	m.Set(2, 1, r2.Y)
	m.Set(2, 2, r2.Z)
	return m.Get(0, 0)*(m.Get(1, 1)*m.Get(2, 2)-m.Get(1, 2)*m.Get(2, 1)) -
		m.Get(0, 1)*(m.Get(1, 0)*m.Get(2, 2)-m.Get(1, 2)*m.Get(2, 0)) +
		m.Get(0, 2)*(m.Get(1, 0)*m.Get(2, 1)-m.Get(1, 1)*m.Get(2, 0))
}
