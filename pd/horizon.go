// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"math"

	"github.com/alan-turing-institute/Probabilistic-Peridynamics/mpd"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// binGrid wraps spatial bins for radius searches over the node cloud.
// The bin size is kept >= the search radius so that candidates for any
// probe are confined to the 27 bins around it.
type binGrid struct {
	bins  gm.Bins    // the bins
	xi    []float64  // lower limits (padded)
	xf    []float64  // upper limits (padded)
	sizes [3]float64 // bin sizes
}

// maxNdiv limits the number of bin divisions
const maxNdiv = 40

// newBinGrid builds bins holding all nodes
func newBinGrid(coords []float64, nnodes int, radius float64) (g *binGrid, err error) {

	// padded limits
	g = new(binGrid)
	g.xi = []float64{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	g.xf = []float64{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}
	for i := 0; i < nnodes; i++ {
		for d := 0; d < Dpn; d++ {
			g.xi[d] = math.Min(g.xi[d], coords[i*Dpn+d])
			g.xf[d] = math.Max(g.xf[d], coords[i*Dpn+d])
		}
	}
	lmin := math.MaxFloat64
	for d := 0; d < Dpn; d++ {
		g.xi[d] -= radius
		g.xf[d] += radius
		lmin = math.Min(lmin, g.xf[d]-g.xi[d])
	}

	// number of divisions such that bin sizes are >= radius
	ndiv := int(lmin / radius)
	if ndiv < 1 {
		ndiv = 1
	}
	if ndiv > maxNdiv {
		ndiv = maxNdiv
	}
	for d := 0; d < Dpn; d++ {
		g.sizes[d] = (g.xf[d] - g.xi[d]) / float64(ndiv)
	}

	// initialise bins and add nodes
	err = g.bins.Init(g.xi, g.xf, ndiv)
	if err != nil {
		return nil, chk.Err("cannot initialise bins for nodes: %v", err)
	}
	for i := 0; i < nnodes; i++ {
		err = g.bins.Append(coords[i*Dpn:i*Dpn+Dpn], i)
		if err != nil {
			return nil, chk.Err("cannot append node %d to bins: %v", i, err)
		}
	}
	return
}

// neighbours calls f for every node n != i within radius of node i,
// passing the reference distance
func (g *binGrid) neighbours(coords []float64, i int, radius float64, f func(n int, dist float64)) {
	x := coords[i*Dpn : i*Dpn+Dpn]

	// collect candidate bins around x
	var idxs []int
	var probe [3]float64
	for a := -1; a <= 1; a++ {
		for b := -1; b <= 1; b++ {
			for c := -1; c <= 1; c++ {
				probe[0] = x[0] + float64(a)*g.sizes[0]
				probe[1] = x[1] + float64(b)*g.sizes[1]
				probe[2] = x[2] + float64(c)*g.sizes[2]
				inside := true
				for d := 0; d < Dpn; d++ {
					if probe[d] < g.xi[d] || probe[d] > g.xf[d] {
						inside = false
					}
				}
				if !inside {
					continue
				}
				idx := g.bins.CalcIdx(probe[:])
				if idx < 0 {
					continue
				}
				seen := false
				for _, prev := range idxs {
					if prev == idx {
						seen = true
						break
					}
				}
				if !seen {
					idxs = append(idxs, idx)
				}
			}
		}
	}

	// scan candidates
	for _, idx := range idxs {
		bin := g.bins.All[idx]
		if bin == nil {
			continue
		}
		for _, entry := range bin.Entries {
			n := entry.Id
			if n == i {
				continue
			}
			dist := 0.0
			for d := 0; d < Dpn; d++ {
				v := coords[n*Dpn+d] - x[d]
				dist += v * v
			}
			dist = math.Sqrt(dist)
			if dist < radius {
				f(n, dist)
			}
		}
	}
}

// CountNeighbours returns the largest number of neighbours within radius
// over all nodes; used to size the horizon capacity
func CountNeighbours(coords []float64, nnodes int, radius float64) (maxn int, err error) {
	grid, err := newBinGrid(coords, nnodes, radius)
	if err != nil {
		return
	}
	for i := 0; i < nnodes; i++ {
		n := 0
		grid.neighbours(coords, i, radius, func(int, float64) { n++ })
		if n > maxn {
			maxn = n
		}
	}
	return
}

// BuildHorizons finds all neighbours within Delta of each node and fills
// the horizon lists, the per-bond stiffness and critical stretch from the
// bond model, and the initial horizon lengths. Unused slots keep the
// Sentinel. Coords, Delta and MaxHrz must be set.
func (o *State) BuildHorizons(mdl mpd.Model) (err error) {
	grid, err := newBinGrid(o.Coords, o.Nnodes, o.Delta)
	if err != nil {
		return
	}
	for i := 0; i < o.Nnodes; i++ {
		slot := 0
		full := false
		grid.neighbours(o.Coords, i, o.Delta, func(n int, dist float64) {
			if slot == o.MaxHrz {
				full = true
				return
			}
			k := i*o.MaxHrz + slot
			o.Horizons[k] = n
			o.Stiffness[k] = mdl.Stiffness(dist)
			o.CritStretch[k] = mdl.CritStretch(dist)
			slot++
		})
		if full {
			return chk.Err("node %d has more than %d neighbours within delta=%g; horizon capacity is too small", i, o.MaxHrz, o.Delta)
		}
		o.HrzLengths[i] = slot
	}
	return
}

// ApplyCrack severs every bond crossing the plane coord along the given
// axis, in both owner directions. box (size=6) limits the crack to bonds
// with both endpoints inside; nil means everywhere. Must be called after
// BuildHorizons so the severed bonds register as initial damage.
func (o *State) ApplyCrack(axis int, coord float64, box []float64) {
	for i := 0; i < o.Nnodes; i++ {
		for j := 0; j < o.MaxHrz; j++ {
			n := o.Horizons[i*o.MaxHrz+j]
			if n == Sentinel {
				continue
			}
			a := o.Coords[i*Dpn+axis]
			b := o.Coords[n*Dpn+axis]
			if (a-coord)*(b-coord) >= 0 {
				continue
			}
			if box != nil && !(o.nodeInBox(i, box) && o.nodeInBox(n, box)) {
				continue
			}
			o.Horizons[i*o.MaxHrz+j] = Sentinel
		}
	}
}

func (o *State) nodeInBox(i int, box []float64) bool {
	for d := 0; d < Dpn; d++ {
		if o.Coords[i*Dpn+d] < box[2*d] || o.Coords[i*Dpn+d] > box[2*d+1] {
			return false
		}
	}
	return true
}
