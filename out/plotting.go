// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// Plot plots the collected history: tip displacement and maximum damage
// versus time, and saves the figure to dirout/fnkey.png
func (o *History) Plot(dirout, fnkey string) {
	plt.SetForPng(1.2, 450, 150)

	plt.Subplot(2, 1, 1)
	plt.Plot(o.T, o.TipU, "'b-', marker='.', clip_on=0")
	plt.Gll("$t$", "tip displacement", "")

	plt.Subplot(2, 1, 2)
	plt.Plot(o.T, o.PhiMax, "'r-', marker='.', clip_on=0")
	plt.Gll("$t$", "$\\phi_{max}$", "")

	plt.SaveD(dirout, fnkey+".png")
}
