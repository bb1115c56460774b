// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/alan-turing-institute/Probabilistic-Peridynamics/pd"
)

// Tip returns the average displacement and acceleration, along the given
// DOF, over a set of tip nodes. ok is false when the set is empty.
func Tip(s *pd.State, nodes []int, dof int) (disp, accel float64, ok bool) {
	if len(nodes) == 0 {
		return
	}
	for _, n := range nodes {
		disp += s.Un[n*pd.Dpn+dof]
		accel += s.Uddn[n*pd.Dpn+dof]
	}
	disp /= float64(len(nodes))
	accel /= float64(len(nodes))
	ok = true
	return
}

// History collects per-sample scalars during a run, for plotting
type History struct {
	T      []float64 // times
	TipU   []float64 // average tip displacement
	PhiMax []float64 // largest nodal damage
	Broken []int     // number of broken bonds
}

// Append records one sample
func (o *History) Append(t float64, s *pd.State, tipNodes []int, tipDof int) {
	disp, _, _ := Tip(s, tipNodes, tipDof)
	o.T = append(o.T, t)
	o.TipU = append(o.TipU, disp)
	o.PhiMax = append(o.PhiMax, s.MaxDamage())
	o.Broken = append(o.Broken, s.NbrokenBonds())
}
