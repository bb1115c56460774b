// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/alan-turing-institute/Probabilistic-Peridynamics/out"
	"github.com/alan-turing-institute/Probabilistic-Peridynamics/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	doplot := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nProbabilistic Peridynamics -- bond-based solver\n")
		io.Pf("Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"plot history at the end", "doplot", doplot,
		))
	}

	// build simulation
	analysis := pd.NewMain(fnamepath, erasePrev, verbose)
	sim := analysis.Sim

	// wire output: one VTK sample per output increment plus history collection
	var hist out.History
	analysis.Dom.OutFcn = func(tidx int, time float64) error {
		hist.Append(time, analysis.Dom.State, analysis.Dom.TipNodes, 2)
		fname := io.Sf("%s_u_%05d.vtk", sim.Key, tidx)
		return out.WriteVtk(sim.DirOut, fname, io.Sf("solution at t=%g", time), analysis.Dom.State)
	}

	// run simulation
	err := analysis.Run()
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}

	// plot history
	if doplot && len(hist.T) > 0 {
		hist.Plot(sim.DirOut, sim.Key+"_hist")
		if verbose {
			io.Pf("> History plot saved to %s\n", sim.DirOut)
		}
	}
}
