// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_microelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("microelast01. PMB stiffness and critical stretch")

	mdl, err := New("micro-elast")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	delta := 0.1
	err = mdl.Init(delta, []*fun.Prm{
		&fun.Prm{N: "K", V: 0.05},
		&fun.Prm{N: "s0", V: 0.005},
		&fun.Prm{N: "rho", V: 2.0},
		&fun.Prm{N: "eta", V: 0.5},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	c := 18.0 * 0.05 / (math.Pi * math.Pow(delta, 4.0))
	chk.Scalar(tst, "c", 1e-12, mdl.Stiffness(0.05), c)
	chk.Scalar(tst, "c uniform", 1e-12, mdl.Stiffness(0.09), c)
	chk.Scalar(tst, "s0", 1e-15, mdl.CritStretch(0.05), 0.005)
	chk.Scalar(tst, "rho", 1e-15, mdl.GetRho(), 2.0)
	chk.Scalar(tst, "eta", 1e-15, mdl.GetEta(), 0.5)
}

func Test_microelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("microelast02. critical stretch from Gc")

	mdl, err := New("micro-elast")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	delta, K, Gc := 0.2, 1.5, 0.01
	err = mdl.Init(delta, []*fun.Prm{
		&fun.Prm{N: "K", V: K},
		&fun.Prm{N: "Gc", V: Gc},
		&fun.Prm{N: "rho", V: 1.0},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	s0 := math.Sqrt(5.0 * Gc / (9.0 * K * delta))
	chk.Scalar(tst, "s0", 1e-15, mdl.CritStretch(0.1), s0)

	// missing data
	mdl2, _ := New("micro-elast")
	err = mdl2.Init(delta, []*fun.Prm{&fun.Prm{N: "K", V: K}})
	if err == nil {
		tst.Errorf("Init should have failed without s0 and Gc\n")
		return
	}

	// unknown model
	_, err = New("super-elast")
	if err == nil {
		tst.Errorf("New should have failed with unknown model name\n")
	}
}

func Test_beta01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beta01. partial-volume correction factor")

	delta, dx := 0.3, 0.1

	// fully inside
	chk.Scalar(tst, "beta(0)", 1e-15, Beta(0, delta, dx), 1.0)
	chk.Scalar(tst, "beta(delta-dx/2)", 1e-15, Beta(delta-dx/2.0, delta, dx), 1.0)

	// linear ramp across the boundary shell
	chk.Scalar(tst, "beta(delta)", 1e-15, Beta(delta, delta, dx), 0.5)
	chk.Scalar(tst, "beta(delta+dx/4)", 1e-15, Beta(delta+dx/4.0, delta, dx), 0.25)

	// outside
	chk.Scalar(tst, "beta(delta+dx/2)", 1e-15, Beta(delta+dx/2.0, delta, dx), 0.0)
	chk.Scalar(tst, "beta(2*delta)", 1e-15, Beta(2.0*delta, delta, dx), 0.0)
}
