// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling: VTK files for
// visualisation, tip reporting and history plotting
package out

import (
	"bytes"

	"github.com/alan-turing-institute/Probabilistic-Peridynamics/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteVtk writes a legacy-ASCII VTK file with the node cloud, the damage
// field and the displacement field, for visualisation in e.g. ParaView
//  Input:
//   dirout -- output directory (created if inexistent)
//   fname  -- file name; e.g. "mysim_u_00001.vtk"
//   title  -- dataset title; e.g. "solution at t=0.1"
func WriteVtk(dirout, fname, title string, s *pd.State) (err error) {

	// check
	if s.Nnodes != len(s.Phi) || pd.Dpn*s.Nnodes != len(s.Un) {
		return chk.Err("state arrays are inconsistent: nnodes=%d, len(phi)=%d, len(un)=%d", s.Nnodes, len(s.Phi), len(s.Un))
	}

	// header and points
	var b bytes.Buffer
	io.Ff(&b, "# vtk DataFile Version 2.0\n")
	io.Ff(&b, "%s\n", title)
	io.Ff(&b, "ASCII\n")
	io.Ff(&b, "DATASET UNSTRUCTURED_GRID\n")
	io.Ff(&b, "POINTS %d double\n", s.Nnodes)
	for i := 0; i < s.Nnodes; i++ {
		io.Ff(&b, "%g %g %g\n", s.Coords[i*pd.Dpn], s.Coords[i*pd.Dpn+1], s.Coords[i*pd.Dpn+2])
	}

	// point data: damage and displacement
	io.Ff(&b, "POINT_DATA %d\n", s.Nnodes)
	io.Ff(&b, "SCALARS damage double 1\n")
	io.Ff(&b, "LOOKUP_TABLE default\n")
	for i := 0; i < s.Nnodes; i++ {
		io.Ff(&b, "%g\n", s.Phi[i])
	}
	io.Ff(&b, "VECTORS displacement double\n")
	for i := 0; i < s.Nnodes; i++ {
		io.Ff(&b, "%g %g %g\n", s.Un[i*pd.Dpn], s.Un[i*pd.Dpn+1], s.Un[i*pd.Dpn+2])
	}

	// save file
	io.WriteFileD(dirout, fname, &b)
	return
}
