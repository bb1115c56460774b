// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	Mshfile string `json:"mshfile"` // mesh (node cloud) file path
	Mat     string `json:"mat"`     // name of the material of the body
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/peridynamics
}

// PeriData holds the peridynamic discretisation data
type PeriData struct {
	Delta   float64 `json:"delta"`   // horizon radius
	Dx      float64 `json:"dx"`      // grid spacing
	MaxHrz  int     `json:"maxhrz"`  // horizon capacity; 0 => computed from mesh
	VolCorr bool    `json:"volcorr"` // apply partial-volume correction in the force summation
}

// SolverData holds time marching data
type SolverData struct {
	Type     string  `json:"type"`     // integrator type: "eulercromer" or "euler"
	Dt       float64 `json:"dt"`       // time step
	DtOut    float64 `json:"dtout"`    // time increment for output; 0 => no output
	NtBonds  int     `json:"ntbonds"`  // check bonds every NtBonds steps; 0 => every step
	NtDamage int     `json:"ntdamage"` // compute damage every NtDamage steps; 0 => only with output
	Damp     float64 `json:"damp"`     // dampening factor for the "euler" integrator
	Noise    float64 `json:"noise"`    // standard deviation of acceleration noise; 0 => deterministic
	Seed     int     `json:"seed"`     // seed for noise generation
	Nproc    int     `json:"nproc"`    // number of parallel workers; 0 => all cpus
}

// NodeBc holds a boundary condition applied to all nodes inside a box
//  For displacement keys (ux,uy,uz) the value is the increment added per
//  step, scaled by the stage's displacement load function. For force keys
//  (fx,fy,fz) the value is the full force, scaled by the force load function.
type NodeBc struct {
	Box   []float64 `json:"box"`   // {xmin,xmax, ymin,ymax, zmin,zmax}
	Key   string    `json:"key"`   // "ux", "uy", "uz", "fx", "fy" or "fz"
	Value float64   `json:"value"` // value
}

// CrackData holds an initial crack: bonds crossing the plane are severed
type CrackData struct {
	Axis  int       `json:"axis"`  // normal axis of the crack plane: 0, 1 or 2
	Coord float64   `json:"coord"` // coordinate of the plane along the axis
	Box   []float64 `json:"box"`   // limit crack to bonds with both ends inside; empty => everywhere
}

// TipData selects nodes whose displacement is averaged and reported
type TipData struct {
	Box []float64 `json:"box"` // {xmin,xmax, ymin,ymax, zmin,zmax}
}

// Stage holds stage data
type Stage struct {

	// main
	Desc    string       `json:"desc"`    // description of simulation stage
	Tf      float64      `json:"tf"`      // final time of this stage
	NodeBcs []*NodeBc    `json:"nodebcs"` // boundary conditions
	Cracks  []*CrackData `json:"cracks"`  // initial cracks (first stage only)
	Tips    []*TipData   `json:"tips"`    // tip nodes for reporting
	LdsU    string       `json:"ldsu"`    // displacement load-scale function name; "" => "one"
	LdsF    string       `json:"ldsf"`    // force load-scale function name; "" => "one"

	// derived
	LoadU fun.Func // displacement load-scale function
	LoadF fun.Func // force load-scale function
}

// Simulation holds all simulation data read from a .sim file
type Simulation struct {

	// input
	Data      Data       `json:"data"`      // global data
	Peri      PeriData   `json:"peri"`      // peridynamic data
	Solver    SolverData `json:"solver"`    // solver data
	Functions FuncsData  `json:"functions"` // all functions
	Stages    []*Stage   `json:"stages"`    // stages

	// derived
	Key    string    // simulation key; e.g. mysim01.sim => mysim01
	DirOut string    // output directory
	MatDb  *MatDb    // materials database
	Mat    *Material // the material of the body
	Msh    *Mesh     // the mesh (node cloud)
}

// ReadSim reads a simulation .sim JSON file, a .mat file and a .msh file
//  Note: returns nil on errors
func ReadSim(simfilepath string, erasePrev bool) (o *Simulation) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		io.PfRed("sim: cannot read simulation file %q\n%v\n", simfilepath, err)
		return nil
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		io.PfRed("sim: cannot unmarshal simulation file %q\n%v\n", simfilepath, err)
		return nil
	}

	// check input
	err = o.checkInput()
	if err != nil {
		io.PfRed("sim: invalid data in %q\n%v\n", simfilepath, err)
		return nil
	}

	// derived data
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/peridynamics/" + o.Key
	}

	// erase previous results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s_*.vtk", o.DirOut, o.Key))
	}

	// read materials and initialise bond models
	o.MatDb, err = ReadMat(dir, o.Data.Matfile, o.Peri.Delta)
	if err != nil {
		io.PfRed("sim: cannot read materials file %q\n%v\n", o.Data.Matfile, err)
		return nil
	}
	o.Mat = o.MatDb.Get(o.Data.Mat)
	if o.Mat == nil {
		io.PfRed("sim: cannot find material %q in %q\n", o.Data.Mat, o.Data.Matfile)
		return nil
	}

	// read mesh
	o.Msh, err = ReadMsh(dir, o.Data.Mshfile)
	if err != nil {
		io.PfRed("sim: cannot read mesh file %q\n%v\n", o.Data.Mshfile, err)
		return nil
	}

	// load-scale functions
	for _, stg := range o.Stages {
		if stg.LdsU == "" {
			stg.LdsU = "one"
		}
		if stg.LdsF == "" {
			stg.LdsF = "one"
		}
		stg.LoadU, err = o.Functions.Get(stg.LdsU)
		if err != nil {
			io.PfRed("sim: cannot get displacement load function: %v\n", err)
			return nil
		}
		stg.LoadF, err = o.Functions.Get(stg.LdsF)
		if err != nil {
			io.PfRed("sim: cannot get force load function: %v\n", err)
			return nil
		}
	}
	return
}

// checkInput checks the consistency of the input data
func (o *Simulation) checkInput() (err error) {
	if o.Peri.Delta <= 0 {
		return chk.Err("horizon radius must be positive (delta=%g)", o.Peri.Delta)
	}
	if o.Peri.Dx <= 0 {
		return chk.Err("grid spacing must be positive (dx=%g)", o.Peri.Dx)
	}
	if o.Solver.Dt <= 0 {
		return chk.Err("time step must be positive (dt=%g)", o.Solver.Dt)
	}
	if len(o.Stages) < 1 {
		return chk.Err("at least one stage must be defined")
	}
	for i, stg := range o.Stages {
		if stg.Tf <= 0 {
			return chk.Err("stage %d: final time must be positive (tf=%g)", i, stg.Tf)
		}
		for _, bc := range stg.NodeBcs {
			switch bc.Key {
			case "ux", "uy", "uz", "fx", "fy", "fz":
			default:
				return chk.Err("stage %d: bc key %q is invalid; options are \"ux\", \"uy\", \"uz\", \"fx\", \"fy\" and \"fz\"", i, bc.Key)
			}
			if len(bc.Box) != 6 {
				return chk.Err("stage %d: bc box must have 6 components (%d given)", i, len(bc.Box))
			}
		}
		for _, crk := range stg.Cracks {
			if crk.Axis < 0 || crk.Axis > 2 {
				return chk.Err("stage %d: crack axis must be 0, 1 or 2 (%d given)", i, crk.Axis)
			}
			if i > 0 {
				return chk.Err("cracks may only be given in the first stage")
			}
		}
	}
	return
}
