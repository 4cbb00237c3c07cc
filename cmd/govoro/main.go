// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/govoro3d/inp"
	"github.com/cpmech/govoro3d/procmesh"
	"github.com/cpmech/govoro3d/transport"
	"github.com/cpmech/govoro3d/voronoi"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".voro", true)
	verbose := io.ArgToBool(1, true)
	simTime := io.ArgToFloat(2, 0)
	maxPerPeer := io.ArgToInt(3, 256)

	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGoVoro3D -- 3D Voronoi tessellation\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"simulation time", "simTime", simTime,
			"max ghost payload per peer", "maxPerPeer", maxPerPeer,
		))
	}

	defer utl.DoProf(false)()

	cfg, err := inp.ReadVoroInput(fnamepath)
	if err != nil {
		chk.Panic("failed to read input:\n%v", err)
	}

	lo := geom.NewVec3(cfg.Lo[0], cfg.Lo[1], cfg.Lo[2])
	hi := geom.NewVec3(cfg.Hi[0], cfg.Hi[1], cfg.Hi[2])
	points := make([]geom.Vec3, len(cfg.Points))
	for i, p := range cfg.Points {
		points[i] = geom.NewVec3(p[0], p[1], p[2])
	}

	tess := voronoi.New(lo, hi)

	if cfg.Nproc > 1 {
		tproc := procmesh.NewSlab(geom.NewBox(lo, hi), cfg.Nproc)
		ex := transport.NewMPI(maxPerPeer)
		err = tess.BuildDistributed(points, tproc, ex)
	} else {
		err = tess.Build(points)
	}
	if err != nil {
		chk.Panic("tessellation failed:\n%v", err)
	}

	outpath := strings.TrimSuffix(fnamepath, ".voro") + ".vor"
	if err = tess.WriteOutput(outpath); err != nil {
		chk.Panic("failed to write output:\n%v", err)
	}

	if mpi.Rank() == 0 && verbose {
		io.Pf("\nfile <%s> written\n", outpath)
	}
}
