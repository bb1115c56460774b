// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"github.com/cpmech/gosl/rnd"
)

// ApplyNoise perturbs the net force of free DOFs with zero-mean Gaussian
// noise of standard deviation sig, and the acceleration accordingly. Used
// by the probabilistic variants of the integrators to sample over model
// uncertainty. Runs serially: the generator is not safe for concurrent
// draws.
func (o *State) ApplyNoise(sig float64) {
	if sig <= 0 {
		return
	}
	for i := 0; i < Dpn*o.Nnodes; i++ {
		if o.BcTypes[i] == BcFree {
			w := rnd.Normal(0, sig)
			o.Frc[i] += w
			o.Uddn[i] += w / o.Rho
		}
	}
}
