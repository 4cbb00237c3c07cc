// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// FuncData names one time function and its parameters, as registered under
// the "functions" key of a VoroInput JSON file.
type FuncData struct {
	Name string   `json:"name"` // ex: zero, ramp, myfunc1
	Type string   `json:"type"` // ex: cte, rmp
	Prms fun.Prms `json:"prms"`
}

// FuncsData is the registry of named functions a VoroInput carries; motions
// resolve their per-axis velocity functions against it by name.
type FuncsData []*FuncData

// GetOrPanic returns the named function, or the always-on zero function for
// the reserved name "zero", panicking if no other name matches.
func (o FuncsData) GetOrPanic(name string) fun.Func {
	if name == "zero" {
		return &fun.Zero
	}
	for _, f := range o {
		if f.Name == name {
			return fun.New(f.Type, f.Prms)
		}
	}
	chk.Panic("cannot find function named %q", name)
	return nil
}
