// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"time"

	"github.com/alan-turing-institute/Probabilistic-Peridynamics/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// Main holds all data for a peridynamic simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // the domain
	Solver  Solver          // time marching solver; e.g. eulercromer, euler
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMain(simfilepath string, erasePrev, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim = inp.ReadSim(simfilepath, erasePrev)
	if o.Sim == nil {
		chk.Panic("cannot read simulation input data")
	}
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// seed for probabilistic runs
	if o.Sim.Solver.Noise > 0 {
		rnd.Init(o.Sim.Solver.Seed)
	}

	// allocate domain: horizons, bonds, initial lengths
	var err error
	o.Dom, err = NewDomain(o.Sim)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Domain allocated: %d nodes, horizon capacity %d\n", o.Dom.State.Nnodes, o.Dom.State.MaxHrz)
	}

	// allocate solver
	styp := o.Sim.Solver.Type
	if styp == "" {
		styp = "eulercromer"
	}
	o.Solver, err = NewSolver(styp, o.Dom)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	return
}

// Run runs the simulation: all stages, in order
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() {
		if o.ShowMsg {
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		}
	}()

	// loop over stages
	t0 := 0.0
	for stgidx, stg := range o.Sim.Stages {
		err = o.Dom.SetStage(stgidx)
		if err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("> Running stage %d: %s  [t=%g..%g]\n", stgidx, stg.Desc, t0, t0+stg.Tf)
		}
		err = o.Solver.Run(t0, t0+stg.Tf, o.ShowMsg)
		if err != nil {
			return
		}
		t0 += stg.Tf
	}
	return
}
