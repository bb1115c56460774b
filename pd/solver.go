// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import "github.com/cpmech/gosl/chk"

// Solver implements the actual solver (time loop)
type Solver interface {
	Run(t0, tf float64, verbose bool) (err error)
}

// allocators holds all available solvers
var allocators = make(map[string]func(dom *Domain) Solver)

// NewSolver returns a new solver by name; e.g. "eulercromer" or "euler"
func NewSolver(name string, dom *Domain) (solver Solver, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("solver %q is not available in 'pd' database", name)
	}
	return allocator(dom), nil
}

// clamp01 clamps the load scale to [0,1]
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
