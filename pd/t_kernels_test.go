// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// twoNodeState builds two nodes at distance d along x, joined by one bond
// in each direction, with bond stiffness E and unit volumes
func twoNodeState(d, E, s0 float64) (s *State) {
	s = NewState(2, 1)
	s.Coords[3] = d // node 1 at (d,0,0)
	s.Vols[0], s.Vols[1] = 1, 1
	s.Horizons[0] = 1
	s.Horizons[1] = 0
	s.HrzLengths[0], s.HrzLengths[1] = 1, 1
	s.Stiffness[0], s.Stiffness[1] = E, E
	s.CritStretch[0], s.CritStretch[1] = s0, s0
	s.Dt = 1
	s.Rho = 1
	return
}

func Test_force01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("force01. single-bond two-node scenario")

	d, E, eps := 2.0, 10.0, 0.01
	s := twoNodeState(d, E, 1.0)

	// pull node 1 along x so the separation becomes d*(1+eps)
	s.Un[3] = eps * d
	s.CalcBondForce(0)

	// F = E*A/L*(y - L) = E*eps*d/d... with A=1: E*(d'-d)/d = E*eps
	fmag := E * (d*(1+eps) - d) / d
	io.Pforan("frc = %v\n", s.Frc)
	chk.Vector(tst, "frc node 0", 1e-14, s.Frc[:3], []float64{fmag, 0, 0})
	chk.Vector(tst, "frc node 1", 1e-14, s.Frc[3:], []float64{-fmag, 0, 0})

	// acceleration without damping
	chk.Vector(tst, "uddn node 0", 1e-14, s.Uddn[:3], []float64{fmag, 0, 0})

	// force-free DOFs receive no injected force: all FrcTypes are BcFree
	for i := 0; i < 2*Dpn; i++ {
		chk.IntAssert(s.FrcTypes[i], BcFree)
	}
}

func Test_force02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("force02. boundary force and viscous damping")

	d, E := 1.0, 5.0
	s := twoNodeState(d, E, 1.0)
	s.Rho = 2.0
	s.Eta = 0.5

	// unstretched bond: only the injected force and damping act
	s.FrcTypes[2] = BcControlled // node 0, z
	s.FrcValues[2] = 8.0
	s.Udn[2] = 4.0

	s.CalcBondForce(0.5) // load scale 0.5 => injected force = 4
	chk.Scalar(tst, "frc z", 1e-15, s.Frc[2], 4.0)
	chk.Scalar(tst, "uddn z", 1e-15, s.Uddn[2], (4.0-0.5*4.0)/2.0)

	// unstretched bond contributes nothing elsewhere
	chk.Scalar(tst, "frc x", 1e-15, s.Frc[0], 0)
	chk.Scalar(tst, "frc y", 1e-15, s.Frc[1], 0)
}

func Test_force03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("force03. partial-volume correction weighting")

	// bond length right at the horizon radius => beta = 1/2
	d, E, eps := 1.0, 10.0, 0.01
	s := twoNodeState(d, E, 1.0)
	s.Delta = 1.0
	s.Dx = 0.4
	s.VolCorr = true

	s.Un[3] = eps * d
	s.CalcBondForce(0)
	chk.Scalar(tst, "frc x weighted", 1e-14, s.Frc[0], 0.5*E*eps)

	// without correction
	s.VolCorr = false
	s.CalcBondForce(0)
	chk.Scalar(tst, "frc x unweighted", 1e-14, s.Frc[0], E*eps)
}

func Test_integ01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ01. symplectic Euler order")

	s := twoNodeState(1, 1, 1)

	// zero acceleration and velocity: displacement unchanged
	s.UpdateDisplacement(0)
	chk.Vector(tst, "un unchanged", 1e-15, s.Un, []float64{0, 0, 0, 0, 0, 0})

	// constant acceleration a with dt=1: velocity increases by a and the
	// NEXT displacement update uses the new velocity (Euler-Cromer), not
	// the average of old and new
	a := 3.0
	for i := range s.Uddn {
		s.Uddn[i] = a
	}
	s.UpdateVelocity()
	chk.Scalar(tst, "udn after 1 step", 1e-15, s.Udn[0], a)
	s.UpdateDisplacement(0)
	chk.Scalar(tst, "un after 1 step", 1e-15, s.Un[0], a)
}

func Test_integ02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ02. prescribed displacement with load ramp")

	s := twoNodeState(1, 1, 1)
	s.BcTypes[0] = BcControlled
	s.BcValues[0] = 2.0
	s.Udn[0] = 100 // must be ignored for controlled DOFs

	s.UpdateDisplacement(0.25)
	chk.Scalar(tst, "un controlled", 1e-15, s.Un[0], 0.5)
	s.UpdateDisplacement(1.0)
	chk.Scalar(tst, "un controlled 2", 1e-15, s.Un[0], 2.5)

	// free DOF on the same node integrates by velocity
	s.Udn[1] = 3.0
	s.UpdateDisplacement(1.0)
	chk.Scalar(tst, "un free", 1e-15, s.Un[1], 3.0)
}

func Test_fail01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fail01. strict failure threshold")

	d, s0 := 1.0, 0.005
	s := twoNodeState(d, 1.0, s0)

	// stretch exactly at the threshold: bond remains active
	s.Un[3] = s0 * d
	s.CheckBonds()
	chk.IntAssert(s.Horizons[0], 1)
	chk.IntAssert(s.Horizons[1], 0)

	// any positive excess breaks the bond on the next call
	s.Un[3] = s0*d + 1e-12
	s.CheckBonds()
	chk.IntAssert(s.Horizons[0], Sentinel)
	chk.IntAssert(s.Horizons[1], Sentinel)

	// breakage is irreversible: restoring the displacement does not heal
	s.Un[3] = 0
	s.CheckBonds()
	chk.IntAssert(s.Horizons[0], Sentinel)
	chk.IntAssert(s.Horizons[1], Sentinel)
}

func Test_fail02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fail02. sentinel slots are skipped")

	// capacity 3 with a single active bond; the sentinel slots must not be
	// dereferenced as node ids by any kernel
	s := NewState(2, 3)
	s.Coords[3] = 1
	s.Vols[0], s.Vols[1] = 1, 1
	s.Horizons[0] = 1
	s.Horizons[3] = 0
	s.HrzLengths[0], s.HrzLengths[1] = 1, 1
	for i := range s.Stiffness {
		s.Stiffness[i] = 1
		s.CritStretch[i] = 0.1
	}
	s.Dt, s.Rho = 1, 1

	s.Un[3] = 0.05
	s.CalcBondForce(0)
	s.CheckBonds()
	s.CalculateDamage()
	chk.Scalar(tst, "frc x", 1e-14, s.Frc[0], 0.05)
	chk.Vector(tst, "phi", 1e-15, s.Phi, []float64{0, 0})
}

func Test_damage01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("damage01. bounds, monotonicity and denominator")

	// three-node chain: node 1 owns two bonds
	s := NewState(3, 2)
	s.Coords[3] = 1 // node 1 at (1,0,0)
	s.Coords[6] = 2 // node 2 at (2,0,0)
	for i := 0; i < 3; i++ {
		s.Vols[i] = 1
	}
	s.Horizons[0] = 1 // node 0 -> 1
	s.Horizons[2] = 0 // node 1 -> 0
	s.Horizons[3] = 2 // node 1 -> 2
	s.Horizons[4] = 1 // node 2 -> 1
	s.HrzLengths[0], s.HrzLengths[1], s.HrzLengths[2] = 1, 2, 1
	for i := range s.Stiffness {
		s.Stiffness[i] = 1
		s.CritStretch[i] = 0.01
	}
	s.Dt, s.Rho = 1, 1

	// no broken bonds: phi = 0 everywhere
	s.CalculateDamage()
	chk.Vector(tst, "phi initial", 1e-15, s.Phi, []float64{0, 0, 0})

	// stretch only the bond between nodes 1 and 2
	s.Un[6] = 0.02
	s.CheckBonds()
	s.CalculateDamage()
	chk.Vector(tst, "phi after break", 1e-15, s.Phi, []float64{0, 0.5, 1})

	// phi uses the INITIAL lengths: node 2 reaches 1 even though its
	// horizon capacity (2) was never full
	for _, phi := range s.Phi {
		if phi < 0 || phi > 1 {
			tst.Errorf("phi out of bounds: %g\n", phi)
			return
		}
	}

	// monotonic: further checks cannot decrease phi
	s.Un[6] = 0
	s.CheckBonds()
	phiOld := make([]float64, 3)
	copy(phiOld, s.Phi)
	s.CalculateDamage()
	for i := 0; i < 3; i++ {
		if s.Phi[i] < phiOld[i] {
			tst.Errorf("phi decreased at node %d: %g -> %g\n", i, phiOld[i], s.Phi[i])
			return
		}
	}
}

func Test_parallel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parallel01. chunked parallel-for")

	n := 10000
	res := make([]float64, n)
	ParallelFor(n, 4, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			res[i] = float64(2 * i)
		}
	})
	for i := 0; i < n; i++ {
		if res[i] != float64(2*i) {
			tst.Errorf("wrong value at %d: %g\n", i, res[i])
			return
		}
	}

	// kernels give identical results in serial and parallel
	a := twoNodeState(1, 10, 1)
	b := twoNodeState(1, 10, 1)
	b.Nproc = 8
	a.Un[3], b.Un[3] = 0.01, 0.01
	a.CalcBondForce(0)
	b.CalcBondForce(0)
	chk.Vector(tst, "serial == parallel", 1e-17, a.Frc, b.Frc)
}
