// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// MicroElast implements the prototype micro-elastic (PMB) bond model with
// brittle failure. The pairwise force is linear in the bond stretch up to a
// critical stretch, beyond which the bond breaks irreversibly.
//  Bond stiffness:    c  = 18 K / (π δ⁴)
//  Critical stretch:  s0 = √(5 Gc / (9 K δ))   [computed from Gc if not given]
type MicroElast struct {
	K     float64 // bulk modulus
	Gc    float64 // critical energy release rate
	S0    float64 // critical stretch; overrides Gc if given
	Rho   float64 // density
	Eta   float64 // damping coefficient for adaptive dynamic relaxation
	Delta float64 // horizon radius

	// derived
	c float64 // uniform bond stiffness
}

// add model to factory
func init() {
	allocators["micro-elast"] = func() Model { return new(MicroElast) }
}

// Init initialises model for given horizon radius
func (o *MicroElast) Init(delta float64, prms fun.Prms) (err error) {
	o.Delta = delta
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "Gc":
			o.Gc = p.V
		case "s0":
			o.S0 = p.V
		case "rho":
			o.Rho = p.V
		case "eta":
			o.Eta = p.V
		}
	}
	if o.K <= 0 {
		return chk.Err("micro-elast: bulk modulus K must be positive (K=%g)", o.K)
	}
	if o.Delta <= 0 {
		return chk.Err("micro-elast: horizon radius must be positive (delta=%g)", o.Delta)
	}
	o.c = 18.0 * o.K / (math.Pi * math.Pow(o.Delta, 4.0))
	if o.S0 <= 0 {
		if o.Gc <= 0 {
			return chk.Err("micro-elast: either s0 or Gc must be given")
		}
		o.S0 = math.Sqrt(5.0 * o.Gc / (9.0 * o.K * o.Delta))
	}
	return
}

// GetPrms gets (an example) of parameters
func (o MicroElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "K", V: 0.05},
		&fun.Prm{N: "s0", V: 0.005},
		&fun.Prm{N: "rho", V: 1.0},
		&fun.Prm{N: "eta", V: 0.0},
	}
}

// GetRho returns density
func (o MicroElast) GetRho() float64 { return o.Rho }

// GetEta returns damping coefficient
func (o MicroElast) GetEta() float64 { return o.Eta }

// Stiffness returns the bond stiffness for reference length xi.
// The PMB stiffness is uniform over the horizon.
func (o MicroElast) Stiffness(xi float64) float64 { return o.c }

// CritStretch returns the critical stretch for reference length xi
func (o MicroElast) CritStretch(xi float64) float64 { return o.S0 }
