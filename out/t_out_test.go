// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/alan-turing-institute/Probabilistic-Peridynamics/pd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// smallState builds a two-node state with some displacement and damage
func smallState() (s *pd.State) {
	s = pd.NewState(2, 1)
	s.Coords[3] = 1
	s.Vols[0], s.Vols[1] = 1, 1
	s.Un[3] = 0.25
	s.Uddn[5] = 2.0
	s.Phi[1] = 0.5
	return
}

func Test_vtk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vtk01. legacy VTK writer")

	s := smallState()
	err := WriteVtk("/tmp/peridynamics", "test_vtk01.vtk", "solution at t=0", s)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	b, err := io.ReadFile("/tmp/peridynamics/test_vtk01.vtk")
	if err != nil {
		tst.Errorf("cannot read file back:\n%v", err)
		return
	}
	lines := strings.Split(string(b), "\n")
	chk.String(tst, lines[0], "# vtk DataFile Version 2.0")
	chk.String(tst, lines[1], "solution at t=0")
	chk.String(tst, lines[2], "ASCII")
	chk.String(tst, lines[3], "DATASET UNSTRUCTURED_GRID")
	chk.String(tst, lines[4], "POINTS 2 double")
	chk.String(tst, lines[5], "0 0 0")
	chk.String(tst, lines[6], "1 0 0")
	chk.String(tst, lines[7], "POINT_DATA 2")

	// damage and displacement records
	txt := string(b)
	if !strings.Contains(txt, "SCALARS damage double 1") {
		tst.Errorf("missing damage record\n")
		return
	}
	if !strings.Contains(txt, "VECTORS displacement double") {
		tst.Errorf("missing displacement record\n")
		return
	}
	if !strings.Contains(txt, "0.25 0 0") {
		tst.Errorf("missing displacement values\n")
	}
}

func Test_tip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tip01. tip averaging and history")

	s := smallState()
	s.Un[2] = 1.0 // node 0, z
	s.Un[5] = 3.0 // node 1, z

	disp, accel, ok := Tip(s, []int{0, 1}, 2)
	if !ok {
		tst.Errorf("Tip must succeed with a non-empty node set\n")
		return
	}
	chk.Scalar(tst, "disp", 1e-17, disp, 2.0)
	chk.Scalar(tst, "accel", 1e-17, accel, 1.0)

	// empty set
	_, _, ok = Tip(s, nil, 2)
	if ok {
		tst.Errorf("Tip must report !ok with an empty node set\n")
		return
	}

	// history
	var hist History
	hist.Append(0.1, s, []int{0, 1}, 2)
	hist.Append(0.2, s, []int{0, 1}, 2)
	chk.IntAssert(len(hist.T), 2)
	chk.Scalar(tst, "tipu", 1e-17, hist.TipU[0], 2.0)
	chk.Scalar(tst, "phimax", 1e-17, hist.PhiMax[1], 0.5)
}
