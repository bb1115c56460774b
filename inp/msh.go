// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vert holds a material node: its id, reference coordinates and the volume
// of material associated with it
type Vert struct {
	Id  int       `json:"id"`  // id
	C   []float64 `json:"c"`   // coordinates (size=3)
	Vol float64   `json:"vol"` // associated material volume
}

// Mesh holds the node cloud of a peridynamic body
type Mesh struct {

	// input
	Verts []*Vert `json:"verts"` // vertices

	// derived
	Xmin, Xmax float64 // limits
	Ymin, Ymax float64 // limits
	Zmin, Zmax float64 // limits
}

// ReadMsh reads a mesh (node cloud) from a .msh JSON file
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return
	}

	// check and derived quantities
	err = o.CalcDerived()
	return
}

// NewGridMesh returns a regular lattice of nx*ny*nz nodes with spacing dx,
// starting at the origin, each carrying volume dx³
func NewGridMesh(nx, ny, nz int, dx float64) (o *Mesh) {
	o = new(Mesh)
	o.Verts = make([]*Vert, nx*ny*nz)
	vol := dx * dx * dx
	id := 0
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				o.Verts[id] = &Vert{
					Id:  id,
					C:   []float64{float64(i) * dx, float64(j) * dx, float64(k) * dx},
					Vol: vol,
				}
				id++
			}
		}
	}
	o.CalcDerived()
	return
}

// CalcDerived checks vertex data and computes the bounding box
func (o *Mesh) CalcDerived() (err error) {
	if len(o.Verts) < 1 {
		return chk.Err("mesh must have at least one vertex")
	}
	o.Xmin, o.Ymin, o.Zmin = math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	o.Xmax, o.Ymax, o.Zmax = -math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must be sequential. vertex %d has id=%d", i, v.Id)
		}
		if len(v.C) != 3 {
			return chk.Err("vertex %d must have 3 coordinates (%d given)", i, len(v.C))
		}
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
		o.Zmin = math.Min(o.Zmin, v.C[2])
		o.Zmax = math.Max(o.Zmax, v.C[2])
	}
	return
}

// NodesInBox returns the ids of all nodes inside a box
//  box -- {xmin,xmax, ymin,ymax, zmin,zmax}
func (o *Mesh) NodesInBox(box []float64) (ids []int) {
	if len(box) != 6 {
		chk.Panic("box must have 6 components (%d given)", len(box))
	}
	for _, v := range o.Verts {
		if v.C[0] < box[0] || v.C[0] > box[1] {
			continue
		}
		if v.C[1] < box[2] || v.C[1] > box[3] {
			continue
		}
		if v.C[2] < box[4] || v.C[2] > box[5] {
			continue
		}
		ids = append(ids, v.Id)
	}
	return
}
