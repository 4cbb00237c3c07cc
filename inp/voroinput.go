// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// VoroInput is the JSON description of one tessellation run: the bounding
// box, the real generator coordinates, and (for moving-mesh runs) one
// named velocity function triple per generator, resolved against Funcs.
type VoroInput struct {
	Lo      [3]float64   `json:"lo"`
	Hi      [3]float64   `json:"hi"`
	Points  [][3]float64 `json:"points"`
	Motions []MotionData `json:"motions"` // optional, parallel to Points
	Funcs   FuncsData    `json:"functions"`
	Nproc   int          `json:"nproc"` // 0 or 1 ⇒ serial run
}

// MotionData names, per generator, the three functions (by name, as
// registered in Funcs) giving its velocity components; "zero" is the
// convention for "not moving" on one axis, matching FuncsData.GetOrPanic.
type MotionData struct {
	Vx string `json:"vx,omitempty"`
	Vy string `json:"vy,omitempty"`
	Vz string `json:"vz,omitempty"`
}

// ReadVoroInput reads and decodes a VoroInput from fnamepath
func ReadVoroInput(fnamepath string) (o *VoroInput, err error) {
	o = new(VoroInput)
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(b, o); err != nil {
		return nil, err
	}
	if len(o.Points) < 1 {
		return nil, chk.Err("voroinput: at least 1 generator point is required\n")
	}
	return o, nil
}

// funcOrZero resolves a function name through Funcs, defaulting to "zero"
func (o *VoroInput) funcOrZero(name string) fun.Func {
	if name == "" {
		name = "zero"
	}
	return o.Funcs.GetOrPanic(name)
}

// MotionAxes returns the resolved per-axis velocity functions of generator
// i, or three zero functions if no motion was supplied for i
func (o *VoroInput) MotionAxes(i int) (vx, vy, vz fun.Func) {
	if i >= len(o.Motions) {
		zero := o.funcOrZero("zero")
		return zero, zero, zero
	}
	m := o.Motions[i]
	return o.funcOrZero(m.Vx), o.funcOrZero(m.Vy), o.funcOrZero(m.Vz)
}
