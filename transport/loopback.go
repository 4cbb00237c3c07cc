// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"sort"
	"sync"

	"github.com/cpmech/govoro3d/geom"
)

// Hub is the shared rendezvous point for a set of in-process Loopback
// exchangers that together simulate a distributed run inside one test
// binary (scenario 5 of spec.md §8: distributed vs serial regression). A
// Build performs several discovery passes, each with its own Symmetrize
// barrier, so the barrier is a reusable round counter rather than a single
// sync.WaitGroup (which cannot be re-armed once drained).
type Hub struct {
	mu        sync.Mutex
	cond      *sync.Cond
	nproc     int
	round     int
	arrived   int
	peerLists map[int][]int
	channels  map[chanKey]chan []geom.Vec3
}

type chanKey struct {
	from, to int
	kind     string
}

// NewHub creates a rendezvous hub for nproc cooperating ranks
func NewHub(nproc int) *Hub {
	h := &Hub{
		nproc:     nproc,
		peerLists: make(map[int][]int),
		channels:  make(map[chanKey]chan []geom.Vec3),
	}
	h.cond = sync.NewCond(&h.mu)
	return h
}

func (h *Hub) chanFor(key chanKey) chan []geom.Vec3 {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.channels[key]
	if !ok {
		c = make(chan []geom.Vec3, 64)
		h.channels[key] = c
	}
	return c
}

// Loopback is an Exchanger backed by a Hub shared with its peers
type Loopback struct {
	hub  *Hub
	rank int
}

// NewLoopback returns an Exchanger for rank within hub
func NewLoopback(hub *Hub, rank int) *Loopback {
	return &Loopback{hub: hub, rank: rank}
}

func (o *Loopback) Rank() int { return o.rank }
func (o *Loopback) Size() int { return o.hub.nproc }

// Symmetrize announces this rank's candidate peers, waits for every rank to
// announce (the single barrier per discovery pass of spec.md §5), then
// returns the intersection: peers that also list this rank.
func (o *Loopback) Symmetrize(peers []int) []int {
	h := o.hub
	h.mu.Lock()
	h.peerLists[o.rank] = append([]int(nil), peers...)
	myRound := h.round
	h.arrived++
	if h.arrived == h.nproc {
		h.arrived = 0
		h.round++
		h.cond.Broadcast()
	} else {
		for h.round == myRound {
			h.cond.Wait()
		}
	}
	defer h.mu.Unlock()
	var res []int
	for _, p := range peers {
		for _, q := range h.peerLists[p] {
			if q == o.rank {
				res = append(res, p)
				break
			}
		}
	}
	sort.Ints(res)
	return res
}

func (o *Loopback) exchange(kind string, peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3 {
	for i, peer := range peers {
		payload := selectPoints(src, perPeerIdx[i])
		o.hub.chanFor(chanKey{o.rank, peer, kind}) <- payload
	}
	res := make([][]geom.Vec3, len(peers))
	for i, peer := range peers {
		res[i] = <-o.hub.chanFor(chanKey{peer, o.rank, kind})
	}
	return res
}

func (o *Loopback) ExchangePoints(peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3 {
	return o.exchange("points", peers, perPeerIdx, src)
}

func (o *Loopback) ExchangeCentroids(peers []int, perPeerIdx [][]int, src []geom.Vec3) [][]geom.Vec3 {
	return o.exchange("centroids", peers, perPeerIdx, src)
}
