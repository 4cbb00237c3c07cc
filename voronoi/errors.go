// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/gosl/io"
)

// ErrUnassignedPoint is raised in distributed mode when a point is not
// located inside any process subdomain (spec.md §7)
type ErrUnassignedPoint struct {
	Rank  int
	Point geom.Vec3
}

func (e *ErrUnassignedPoint) Error() string {
	return io.Sf("voronoi: point (%g,%g,%g) is not inside any process subdomain (rank %d)",
		e.Point.X, e.Point.Y, e.Point.Z, e.Rank)
}

// ErrNoSeedFound is raised in serial mode when no tetra touches both a
// sentinel and a real generator, so the boundary-search seed cannot be found
// (degenerate input, spec.md §7)
type ErrNoSeedFound struct{}

func (e *ErrNoSeedFound) Error() string {
	return "voronoi: no seed tetra found to start the boundary search (degenerate input)"
}

// ErrFaceWalkFailure is raised when the ring-walk around a Delaunay edge
// cannot find a next tetra, indicating corrupt Delaunay adjacency
// (spec.md §7)
type ErrFaceWalkFailure struct {
	N0, N1 int
}

func (e *ErrFaceWalkFailure) Error() string {
	return io.Sf("voronoi: face ring-walk failed around edge (%d,%d)", e.N0, e.N1)
}
