// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/alan-turing-institute/Probabilistic-Peridynamics/inp"
	"github.com/alan-turing-institute/Probabilistic-Peridynamics/mpd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// bcKeys maps boundary condition keys to (dof, isForce)
var bcKeys = map[string]struct {
	dof   int
	force bool
}{
	"ux": {0, false}, "uy": {1, false}, "uz": {2, false},
	"fx": {0, true}, "fy": {1, true}, "fz": {2, true},
}

// Domain holds the solver state together with the input data and the
// active stage's load functions
type Domain struct {

	// input
	Sim *inp.Simulation // simulation data
	Mdl mpd.Model       // bond model

	// state
	State *State // the discretised body

	// stage data
	Stage    *inp.Stage // active stage
	LoadU    fun.Func   // displacement load-scale function of the active stage
	LoadF    fun.Func   // force load-scale function of the active stage
	TipNodes []int      // nodes averaged for tip reporting

	// output
	OutFcn func(tidx int, time float64) error // called at every output increment; may be nil
}

// NewDomain builds a domain from the simulation input: allocates the state,
// constructs the horizons and captures their initial lengths
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Sim = sim
	o.Mdl = sim.Mat.Bond
	nnodes := len(sim.Msh.Verts)

	// copy geometry into flat arrays
	coords := make([]float64, Dpn*nnodes)
	for i, v := range sim.Msh.Verts {
		for d := 0; d < Dpn; d++ {
			coords[i*Dpn+d] = v.C[d]
		}
	}

	// horizon capacity
	maxhrz := sim.Peri.MaxHrz
	if maxhrz < 1 {
		maxhrz, err = CountNeighbours(coords, nnodes, sim.Peri.Delta)
		if err != nil {
			return nil, err
		}
		if maxhrz < 1 {
			return nil, chk.Err("no node has any neighbour within delta=%g; the mesh is disconnected", sim.Peri.Delta)
		}
	}

	// allocate state
	s := NewState(nnodes, maxhrz)
	copy(s.Coords, coords)
	for i, v := range sim.Msh.Verts {
		s.Vols[i] = v.Vol
	}
	s.Dt = sim.Solver.Dt
	s.Rho = o.Mdl.GetRho()
	s.Eta = o.Mdl.GetEta()
	s.Delta = sim.Peri.Delta
	s.Dx = sim.Peri.Dx
	s.VolCorr = sim.Peri.VolCorr
	s.Nproc = NumWorkers(sim.Solver.Nproc)

	// horizons
	err = s.BuildHorizons(o.Mdl)
	if err != nil {
		return nil, err
	}
	o.State = s
	return
}

// SetStage sets boundary conditions, cracks and tip nodes of stage stgidx.
// Previous boundary conditions are cleared; broken bonds and the state
// variables carry over.
func (o *Domain) SetStage(stgidx int) (err error) {
	if stgidx < 0 || stgidx >= len(o.Sim.Stages) {
		return chk.Err("stage index %d is out of range", stgidx)
	}
	stg := o.Sim.Stages[stgidx]
	o.Stage = stg
	o.LoadU = stg.LoadU
	o.LoadF = stg.LoadF

	// boundary conditions
	o.State.ClearBcs()
	for _, bc := range stg.NodeBcs {
		k, ok := bcKeys[bc.Key]
		if !ok {
			return chk.Err("bc key %q is invalid", bc.Key)
		}
		nodes := o.Sim.Msh.NodesInBox(bc.Box)
		for _, n := range nodes {
			dof := n*Dpn + k.dof
			if k.force {
				o.State.FrcTypes[dof] = BcControlled
				o.State.FrcValues[dof] = bc.Value
			} else {
				o.State.BcTypes[dof] = BcControlled
				o.State.BcValues[dof] = bc.Value
			}
		}
	}

	// initial cracks
	for _, crk := range stg.Cracks {
		o.State.ApplyCrack(crk.Axis, crk.Coord, crk.Box)
	}

	// tip nodes
	o.TipNodes = nil
	for _, tip := range stg.Tips {
		o.TipNodes = append(o.TipNodes, o.Sim.Msh.NodesInBox(tip.Box)...)
	}
	return
}
