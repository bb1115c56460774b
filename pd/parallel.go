// Copyright 2020 The Probabilistic Peridynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	"runtime"
	"sync"
)

// serialBelow is the problem size below which ParallelFor runs serially
const serialBelow = 256

// NumWorkers returns the number of parallel workers for given input;
// nproc < 1 selects all cpus
func NumWorkers(nproc int) int {
	if nproc < 1 {
		return runtime.NumCPU()
	}
	return nproc
}

// ParallelFor splits the index range [0,n) into contiguous chunks and runs
// f(lo,hi) on each chunk concurrently. It returns only after every chunk
// has finished; the return is the synchronisation barrier between kernels.
// Within one call, f must write only to indices it owns.
func ParallelFor(n, nproc int, f func(lo, hi int)) {
	if nproc < 2 || n < serialBelow {
		f(0, n)
		return
	}
	csize := (n + nproc - 1) / nproc
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += csize {
		hi := lo + csize
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
