// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// FuncData holds function definition. Functions are used as load-scale
// ramps; e.g. to apply boundary displacements or forces gradually over a
// quasi-static run.
type FuncData struct {
	Name string   `json:"name"` // name of function. ex: zero, ramp, myfunction1, etc.
	Type string   `json:"type"` // type of function. ex: cte, lin
	Prms fun.Prms `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: "zero" and "none" return the zero function and "one" returns the
//  unit constant function, without any declaration in the .sim file
func (o FuncsData) Get(name string) (fcn fun.Func, err error) {
	switch name {
	case "zero", "none":
		return fun.New("cte", []*fun.Prm{&fun.Prm{N: "c", V: 0}})
	case "one":
		return fun.New("cte", []*fun.Prm{&fun.Prm{N: "c", V: 1}})
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = fun.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("{\"name\":%q, \"type\":%q}", o.Name, o.Type)
}
