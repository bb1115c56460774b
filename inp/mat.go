// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/alan-turing-institute/Probabilistic-Peridynamics/mpd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of bond model; e.g. "micro-elast"
	Prms  fun.Prms `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Bond mpd.Model // pointer to actual bond model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	byname map[string]*Material // subset by name
}

// ReadMat reads all materials data from a .mat JSON file and initialises
// the bond models for given horizon radius
func ReadMat(dir, fn string, delta float64) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// alloc/init bond models
	mdb.byname = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, exists := mdb.byname[m.Name]; exists {
			return nil, chk.Err("duplicate material named %q in %q", m.Name, fn)
		}
		m.Bond, err = mpd.New(m.Model)
		if err != nil {
			return
		}
		err = m.Bond.Init(delta, m.Prms)
		if err != nil {
			return
		}
		mdb.byname[m.Name] = m
	}
	return
}

// Get returns a material by name; returns nil if not found
func (o *MatDb) Get(name string) *Material {
	return o.byname[name]
}

// String prints the materials database
func (o MatDb) String() string {
	l := "{\n  \"materials\" : [\n"
	for i, m := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    {\"name\":%q, \"model\":%q}", m.Name, m.Model)
	}
	l += "\n  ]\n}"
	return l
}
