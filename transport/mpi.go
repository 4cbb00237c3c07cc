// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/gosl/mpi"
)

// MPI is an Exchanger backed by gosl/mpi. The teacher's codebase only
// exercises mpi.Rank, mpi.Size, mpi.IsOn, mpi.Start/Stop and
// mpi.AllReduceSum/IntAllReduceMax; it never calls a point-to-point
// send/recv primitive. Symmetrize is therefore built on AllReduceSum
// exactly as the original TalkSymmetry's MPI_Reduce_scatter step mirrors:
// every rank fills its own row of an n×n 0/1 indicator matrix (one column
// per declared peer) and the matrices are summed, so each rank can read
// which ranks declared it and prune one-sided candidates. The bulk
// payload exchange is implemented as a padded AllReduceSum gather rather
// than true point-to-point send/recv, since no such primitive is available
// on this stack (documented in DESIGN.md as a deliberate simplification:
// correct for the process counts this collaborator targets, not a
// high-performance transport).
type MPI struct {
	maxPerPeer int
}

// NewMPI returns an Exchanger that caps any single peer-to-peer payload at
// maxPerPeer points (the padded-gather limitation described above)
func NewMPI(maxPerPeer int) *MPI {
	return &MPI{maxPerPeer: maxPerPeer}
}

func (o *MPI) Rank() int { return mpi.Rank() }
func (o *MPI) Size() int { return mpi.Size() }

func (o *MPI) Symmetrize(peers []int) []int {
	n := mpi.Size()
	rank := mpi.Rank()
	indicator := make([]float64, n*n) // row = declaring rank, column = declared peer
	for _, p := range peers {
		indicator[rank*n+p] = 1
	}
	summed := make([]float64, n*n)
	mpi.AllReduceSum(summed, indicator)
	var res []int
	for _, p := range peers {
		if summed[p*n+rank] >= 1 {
			res = append(res, p)
		}
	}
	return res
}

// exchange performs a single AllReduceSum collective covering every rank's
// contribution to every other rank at once, so that all ranks issue exactly
// one collective call regardless of how many peers any one of them has (a
// mismatched per-peer loop of collectives would deadlock once peer-list
// lengths differ across ranks). The first slot of every (sender,recipient)
// block carries the sender's actual payload count: the recipient's own
// send count to that peer is no guide to how many points it receives back,
// since the two directions of a ghost exchange are not generally symmetric.
func (o *MPI) exchange(peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3 {
	n := mpi.Size()
	rank := mpi.Rank()
	slot := 1 + 3*o.maxPerPeer
	out := make([]float64, n*n*slot)
	offset := func(sender, recipient int) int { return (sender*n + recipient) * slot }
	for pi, peer := range peers {
		payload := selectPoints(src, perPeerIdx[pi])
		base := offset(rank, peer)
		count := len(payload)
		if count > o.maxPerPeer {
			count = o.maxPerPeer
		}
		out[base] = float64(count)
		for i := 0; i < count; i++ {
			v := payload[i]
			out[base+1+3*i+0] = v.X
			out[base+1+3*i+1] = v.Y
			out[base+1+3*i+2] = v.Z
		}
	}
	summed := make([]float64, len(out))
	mpi.AllReduceSum(summed, out)
	res := make([][]geom.Vec3, len(peers))
	for pi, peer := range peers {
		base := offset(peer, rank)
		count := int(summed[base])
		if count > o.maxPerPeer {
			count = o.maxPerPeer
		}
		recv := make([]geom.Vec3, count)
		for i := 0; i < count; i++ {
			recv[i] = geom.NewVec3(summed[base+1+3*i+0], summed[base+1+3*i+1], summed[base+1+3*i+2])
		}
		res[pi] = recv
	}
	return res
}

func (o *MPI) ExchangePoints(peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3 {
	return o.exchange(peers, perPeerIdx, src)
}

func (o *MPI) ExchangeCentroids(peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3 {
	return o.exchange(peers, perPeerIdx, src)
}
