// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pd implements the bond-based peridynamics solver
package pd

import (
	"github.com/cpmech/gosl/la"
)

// Dpn is the number of degrees of freedom per node
const Dpn = 3

// Sentinel marks an unused or broken horizon slot
const Sentinel = -1

// boundary condition type codes (per DOF)
//  any code other than BcFree means the DOF is controlled
const (
	BcFree       = 2 // natural: integrate displacement, no injected force
	BcControlled = 1 // prescribed displacement or force, ramped by the load scale
)

// State holds the complete discretised state of a peridynamic body. All
// per-node vector quantities are flat arrays with Dpn consecutive scalars
// per node; per-bond quantities are flat arrays indexed by node*MaxHrz+slot.
type State struct {

	// sizes
	Nnodes int // number of nodes
	MaxHrz int // horizon capacity (uniform over all nodes)
	Nproc  int // number of parallel workers

	// geometry (immutable during the run)
	Coords []float64 // [Dpn*Nnodes] reference positions
	Vols   []float64 // [Nnodes] associated material volumes

	// horizons and bonds
	Horizons    []int     // [Nnodes*MaxHrz] neighbour ids; Sentinel => unused/broken
	HrzLengths  []int     // [Nnodes] initial active-neighbour counts; never decremented
	Stiffness   []float64 // [Nnodes*MaxHrz] bond stiffness coefficients
	CritStretch []float64 // [Nnodes*MaxHrz] bond critical stretches

	// boundary conditions (parallel to the DOF arrays)
	BcTypes   []int     // [Dpn*Nnodes] displacement bc type codes
	BcValues  []float64 // [Dpn*Nnodes] displacement increments per step
	FrcTypes  []int     // [Dpn*Nnodes] force bc type codes
	FrcValues []float64 // [Dpn*Nnodes] force values

	// state variables
	Un   []float64 // [Dpn*Nnodes] displacements
	Udn  []float64 // [Dpn*Nnodes] velocities
	Uddn []float64 // [Dpn*Nnodes] accelerations
	Frc  []float64 // [Dpn*Nnodes] net forces (diagnostic copy)
	Phi  []float64 // [Nnodes] damage

	// run-wide constants
	Dt      float64 // time step
	Rho     float64 // density
	Eta     float64 // damping coefficient for adaptive dynamic relaxation
	Delta   float64 // horizon radius
	Dx      float64 // grid spacing
	VolCorr bool    // apply partial-volume correction in the force summation
}

// NewState allocates a state for nnodes nodes with horizon capacity maxhrz.
// All horizon slots start as Sentinel and all DOFs start free.
func NewState(nnodes, maxhrz int) (o *State) {
	o = new(State)
	o.Nnodes = nnodes
	o.MaxHrz = maxhrz
	o.Nproc = 1
	ndof := Dpn * nnodes
	o.Coords = make([]float64, ndof)
	o.Vols = make([]float64, nnodes)
	o.Horizons = make([]int, nnodes*maxhrz)
	o.HrzLengths = make([]int, nnodes)
	o.Stiffness = make([]float64, nnodes*maxhrz)
	o.CritStretch = make([]float64, nnodes*maxhrz)
	o.BcTypes = make([]int, ndof)
	o.BcValues = make([]float64, ndof)
	o.FrcTypes = make([]int, ndof)
	o.FrcValues = make([]float64, ndof)
	o.Un = make([]float64, ndof)
	o.Udn = make([]float64, ndof)
	o.Uddn = make([]float64, ndof)
	o.Frc = make([]float64, ndof)
	o.Phi = make([]float64, nnodes)
	for i := range o.Horizons {
		o.Horizons[i] = Sentinel
	}
	for i := 0; i < ndof; i++ {
		o.BcTypes[i] = BcFree
		o.FrcTypes[i] = BcFree
	}
	return
}

// ClearBcs resets all boundary conditions to free. Called when switching
// stages.
func (o *State) ClearBcs() {
	for i := 0; i < Dpn*o.Nnodes; i++ {
		o.BcTypes[i] = BcFree
		o.FrcTypes[i] = BcFree
	}
	la.VecFill(o.BcValues, 0)
	la.VecFill(o.FrcValues, 0)
}

// KinEnergy returns the total kinetic energy; used to monitor the
// dynamic relaxation of quasi-static runs
func (o *State) KinEnergy() (ke float64) {
	for i := 0; i < o.Nnodes; i++ {
		for d := 0; d < Dpn; d++ {
			v := o.Udn[i*Dpn+d]
			ke += 0.5 * o.Rho * o.Vols[i] * v * v
		}
	}
	return
}

// MaxDamage returns the largest nodal damage value
func (o *State) MaxDamage() (phimax float64) {
	for _, phi := range o.Phi {
		if phi > phimax {
			phimax = phi
		}
	}
	return
}

// NbrokenBonds returns the number of broken bonds (counting each owner slot)
func (o *State) NbrokenBonds() (n int) {
	for i := 0; i < o.Nnodes; i++ {
		active := 0
		for j := 0; j < o.MaxHrz; j++ {
			if o.Horizons[i*o.MaxHrz+j] != Sentinel {
				active++
			}
		}
		n += o.HrzLengths[i] - active
	}
	return
}
