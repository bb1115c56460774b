// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpd

// Beta returns the partial-volume correction factor for a bond with
// reference length xi, given the horizon radius delta and the grid spacing
// dx. Nodes whose cells are cut by the horizon sphere contribute only part
// of their volume; the factor ramps linearly from 1 at delta-dx/2 down to 0
// at delta+dx/2.
func Beta(xi, delta, dx float64) float64 {
	if xi <= delta-dx/2.0 {
		return 1.0
	}
	if xi <= delta+dx/2.0 {
		return (delta + dx/2.0 - xi) / dx
	}
	return 0.0
}
