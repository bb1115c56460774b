// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mpd implements bond (material) models for peridynamics
package mpd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines the interface for peridynamic bond models
type Model interface {
	Init(delta float64, prms fun.Prms) error // initialises model for given horizon radius
	GetPrms() fun.Prms                       // gets (an example) of parameters
	GetRho() float64                         // returns density
	GetEta() float64                         // returns damping coefficient for dynamic relaxation
	Stiffness(xi float64) float64            // returns the bond stiffness for reference length xi
	CritStretch(xi float64) float64          // returns the critical stretch for reference length xi
}

// New returns new bond model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mpd' database", name)
	}
	return allocator(), nil
}

// allocators holds all available bond models; modelname => allocator
var allocators = map[string]func() Model{}
