// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"bytes"
	"encoding/json"

	"github.com/alan-turing-institute/Probabilistic-Peridynamics/inp"
	"github.com/cpmech/gosl/io"
)

// GenMsh generates a regular lattice of material points and saves it as a
// .msh JSON file. Usage:
//   go run GenMsh.go fnkey nx ny nz dx
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	_, fnkey := io.ArgToFilename(0, "lattice", ".msh", false)
	nx := io.ArgToInt(1, 10)
	ny := io.ArgToInt(2, 10)
	nz := io.ArgToInt(3, 1)
	dx := io.ArgToFloat(4, 1.0)
	io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"mesh filename key", "fnkey", fnkey,
		"number of nodes along x", "nx", nx,
		"number of nodes along y", "ny", ny,
		"number of nodes along z", "nz", nz,
		"grid spacing", "dx", dx,
	))

	// generate lattice
	msh := inp.NewGridMesh(nx, ny, nz, dx)
	io.Pf("%d nodes, box = [%g,%g] x [%g,%g] x [%g,%g]\n",
		len(msh.Verts), msh.Xmin, msh.Xmax, msh.Ymin, msh.Ymax, msh.Zmin, msh.Zmax)

	// save file
	dat, err := json.MarshalIndent(msh, "", "  ")
	if err != nil {
		io.PfRed("cannot marshal mesh: %v\n", err)
		return
	}
	var b bytes.Buffer
	b.Write(dat)
	io.WriteFileD(".", fnkey+".msh", &b)
	io.Pf("file <%s.msh> written\n", fnkey)
}
