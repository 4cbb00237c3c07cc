// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voronoi

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/cpmech/govoro3d/geom"
	"github.com/cpmech/gosl/chk"
)

// WriteOutput serializes the tessellation to path in the little-endian,
// unpadded binary layout of spec.md §6: real generator count and
// coordinates, Voronoi vertex count and coordinates, per-cell face-index
// lists, then the global face table as vertex-index loops.
func (o *Tessellation) WriteOutput(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("voronoi: cannot create output file %q: %v", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()

	if err = writeInt32(w, int32(o.norg)); err != nil {
		return err
	}
	for i := 0; i < o.norg; i++ {
		if err = writeVec3(w, o.del.Points[i]); err != nil {
			return err
		}
	}

	if err = writeInt32(w, int32(len(o.del.Tetras))); err != nil {
		return err
	}
	for i := range o.del.Tetras {
		if err = writeVec3(w, o.centers[i]); err != nil {
			return err
		}
	}

	for i := 0; i < o.norg; i++ {
		faces := o.facesInCell[i]
		if err = writeInt32(w, int32(len(faces))); err != nil {
			return err
		}
		for _, fi := range faces {
			if err = writeInt32(w, int32(fi)); err != nil {
				return err
			}
		}
	}

	if err = writeInt32(w, int32(len(o.pointsInFace))); err != nil {
		return err
	}
	for _, loop := range o.pointsInFace {
		if err = writeInt32(w, int32(len(loop))); err != nil {
			return err
		}
		for _, v := range loop {
			if err = writeInt32(w, int32(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeInt32(w *bufio.Writer, v int32) error {
	return binary.Write(w, binary.LittleEndian, v)
}

func writeVec3(w *bufio.Writer, v geom.Vec3) error {
	if err := binary.Write(w, binary.LittleEndian, v.X); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, v.Y); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, v.Z)
}
