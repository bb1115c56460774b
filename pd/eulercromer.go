// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// EulerCromer implements the semi-implicit symplectic (Euler-Cromer) time
// marching scheme:
//  u(t+dt) = u(t) + dt*v(t)
//  a(t+dt) = (f(u(t+dt)) - eta*v(t)) / rho
//  v(t+dt) = v(t) + dt*a(t+dt)
// Bond failure and damage are evaluated periodically, as set in the
// solver input data.
type EulerCromer struct {
	dom  *Domain // the domain
	step int     // global step counter; persists across stages
	nout int     // output sample counter
}

// add solver to factory
func init() {
	allocators["eulercromer"] = func(dom *Domain) Solver {
		return &EulerCromer{dom: dom}
	}
}

// Run advances the state from t0 to tf
func (o *EulerCromer) Run(t0, tf float64, verbose bool) (err error) {

	// auxiliary
	dom := o.dom
	s := dom.State
	dat := dom.Sim.Solver
	nsteps := int(math.Ceil((tf - t0) / s.Dt))

	// kernel invocation periods
	ntBonds := dat.NtBonds
	if ntBonds < 1 {
		ntBonds = 1
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

	// time marching. a full barrier separates the kernels: each one runs
	// only after the previous one has written every element it owns
	for n := 1; n <= nsteps; n++ {
		o.step++
		t := t0 + float64(n)*s.Dt
		ldsU := clamp01(dom.LoadU.F(t, nil))
		ldsF := clamp01(dom.LoadF.F(t, nil))

		s.UpdateDisplacement(ldsU)
		s.CalcBondForce(ldsF)
		s.ApplyNoise(dat.Noise)
		s.UpdateVelocity()

		if o.step%ntBonds == 0 {
			s.CheckBonds()
		}
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
				io.Pf("t=%g  broken=%d  phimax=%g  ke=%g\n", t, s.NbrokenBonds(), s.MaxDamage(), s.KinEnergy())
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
