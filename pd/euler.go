// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Euler implements the first-order dampened (quasi-static) scheme
//  u(t+dt) = u(t) + dt*damp*f(t)
// where the inertia term is neglected and damp dissipates the response
// towards the static solution. Bond failure is evaluated every step so the
// fracture path follows the load ramp.
type Euler struct {
	dom  *Domain // the domain
	step int     // global step counter; persists across stages
	nout int     // output sample counter
}

// add solver to factory
func init() {
	allocators["euler"] = func(dom *Domain) Solver {
		return &Euler{dom: dom}
	}
}

// UpdateDisplacementEuler integrates the displacement of free DOFs directly
// from the net force, Un += Dt*damp*Frc, and applies the ramped prescribed
// increment to controlled DOFs
func (o *State) UpdateDisplacementEuler(damp, ldsU float64) {
	ParallelFor(Dpn*o.Nnodes, o.Nproc, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if o.BcTypes[i] == BcFree {
				o.Un[i] += o.Dt * damp * o.Frc[i]
			} else {
				o.Un[i] += ldsU * o.BcValues[i]
			}
		}
	})
}

// Run advances the state from t0 to tf
func (o *Euler) Run(t0, tf float64, verbose bool) (err error) {

	// auxiliary
	dom := o.dom
	s := dom.State
	dat := dom.Sim.Solver
	nsteps := int(math.Ceil((tf - t0) / s.Dt))
	damp := dat.Damp
	if damp <= 0 {
		damp = 1.0
	}
	ntOut := 0
	if dat.DtOut > 0 {
		ntOut = int(dat.DtOut / s.Dt)
		if ntOut < 1 {
			ntOut = 1
		}
	}
	ntDamage := dat.NtDamage
	if ntDamage < 1 {
		ntDamage = ntOut
	}

	// time marching
	for n := 1; n <= nsteps; n++ {
		o.step++
		t := t0 + float64(n)*s.Dt
		ldsU := clamp01(dom.LoadU.F(t, nil))
		ldsF := clamp01(dom.LoadF.F(t, nil))

		s.CheckBonds()
		s.CalcBondForce(ldsF)
		s.ApplyNoise(dat.Noise)
		s.UpdateDisplacementEuler(damp, ldsU)

		damaged := false
		if ntDamage > 0 && o.step%ntDamage == 0 {
			s.CalculateDamage()
			damaged = true
		}
		if ntOut > 0 && o.step%ntOut == 0 {
			if !damaged {
				s.CalculateDamage()
			}
			if verbose {
				io.Pf("t=%g  broken=%d  phimax=%g\n", t, s.NbrokenBonds(), s.MaxDamage())
			}
			if dom.OutFcn != nil {
				err = dom.OutFcn(o.nout, t)
				if err != nil {
					return
				}
			}
			o.nout++
		}
	}
	return
}
