// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/alan-turing-institute/Probabilistic-Peridynamics/mpd"
)

// The five kernels below are data-parallel: each logical unit of work (a
// DOF, a node, or a node slot) is owned by exactly one task and tasks only
// read the shared arrays. The caller must not overlap kernel invocations;
// ParallelFor returning is the barrier between them.

// UpdateDisplacement integrates the displacement of free DOFs explicitly,
// Un += Dt*Udn, and applies the ramped prescribed increment ldsU*BcValues
// to controlled DOFs
func (o *State) UpdateDisplacement(ldsU float64) {
	ParallelFor(Dpn*o.Nnodes, o.Nproc, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if o.BcTypes[i] == BcFree {
				o.Un[i] += o.Dt * o.Udn[i]
			} else {
				o.Un[i] += ldsU * o.BcValues[i]
			}
		}
	})
}

// CalcBondForce sums the pairwise bond forces over each node's horizon,
// adds ramped boundary forces, stores the net force and computes the
// acceleration with linear viscous damping:
//  Uddn = (Frc - Eta*Udn) / Rho
// The bond force follows the linear micro-elastic law: magnitude
// stiffness*vol/|ξ|*(y-|ξ|) along the deformed bond direction, where vol is
// the neighbour's volume, optionally weighted by the partial-volume
// correction β(|ξ|).
func (o *State) CalcBondForce(ldsF float64) {
	ParallelFor(o.Nnodes, o.Nproc, func(lo, hi int) {
		var f, dir [Dpn]float64
		for i := lo; i < hi; i++ {
			for d := 0; d < Dpn; d++ {
				f[d] = 0
			}
			for j := 0; j < o.MaxHrz; j++ {
				n := o.Horizons[i*o.MaxHrz+j]
				if n == Sentinel {
					continue
				}
				ref, cur := 0.0, 0.0
				for d := 0; d < Dpn; d++ {
					x := o.Coords[n*Dpn+d] - o.Coords[i*Dpn+d]
					y := x + o.Un[n*Dpn+d] - o.Un[i*Dpn+d]
					ref += x * x
					cur += y * y
					dir[d] = y
				}
				ref = math.Sqrt(ref)
				cur = math.Sqrt(cur)
				vol := o.Vols[n]
				if o.VolCorr {
					vol *= mpd.Beta(ref, o.Delta, o.Dx)
				}
				// a zero-length deformed bond produces NaN here; avoiding
				// coincident deformed positions is the caller's burden
				coef := o.Stiffness[i*o.MaxHrz+j] * vol * (cur - ref) / (ref * cur)
				for d := 0; d < Dpn; d++ {
					f[d] += coef * dir[d]
				}
			}
			for d := 0; d < Dpn; d++ {
				k := i*Dpn + d
				if o.FrcTypes[k] != BcFree {
					f[d] += ldsF * o.FrcValues[k]
				}
				o.Frc[k] = f[d]
				o.Uddn[k] = (f[d] - o.Eta*o.Udn[k]) / o.Rho
			}
		}
	})
}

// UpdateVelocity integrates the velocities, Udn += Uddn*Dt. Must run after
// CalcBondForce and before the next step's UpdateDisplacement; this
// ordering is what makes the scheme Euler-Cromer rather than plain Euler.
func (o *State) UpdateVelocity() {
	ParallelFor(Dpn*o.Nnodes, o.Nproc, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			o.Udn[i] += o.Uddn[i] * o.Dt
		}
	})
}

// CheckBonds evaluates the stretch of every active bond and irreversibly
// breaks those strictly exceeding their critical stretch by setting the
// owner slot to Sentinel. Re-evaluating a broken slot is a no-op.
func (o *State) CheckBonds() {
	ParallelFor(o.Nnodes, o.Nproc, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			for j := 0; j < o.MaxHrz; j++ {
				n := o.Horizons[i*o.MaxHrz+j]
				if n == Sentinel {
					continue
				}
				ref, cur := 0.0, 0.0
				for d := 0; d < Dpn; d++ {
					x := o.Coords[n*Dpn+d] - o.Coords[i*Dpn+d]
					y := x + o.Un[n*Dpn+d] - o.Un[i*Dpn+d]
					ref += x * x
					cur += y * y
				}
				ref = math.Sqrt(ref)
				cur = math.Sqrt(cur)
				s := (cur - ref) / ref
				if s > o.CritStretch[i*o.MaxHrz+j] {
					o.Horizons[i*o.MaxHrz+j] = Sentinel
				}
			}
		}
	})
}

// CalculateDamage overwrites Phi with the fraction of each node's
// originally active bonds that have broken:
//  Phi[i] = 1 - active/HrzLengths[i]
// HrzLengths holds the counts captured at setup, so Phi reaches 1 when all
// of a node's original bonds are gone even if the horizon was never full.
func (o *State) CalculateDamage() {
	ParallelFor(o.Nnodes, o.Nproc, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			if o.HrzLengths[i] == 0 {
				o.Phi[i] = 0
				continue
			}
			active := 0
			for j := 0; j < o.MaxHrz; j++ {
				if o.Horizons[i*o.MaxHrz+j] != Sentinel {
					active++
				}
			}
			o.Phi[i] = 1.0 - float64(active)/float64(o.HrzLengths[i])
		}
	})
}
