//----------------------------------------------------------------------
// This file is part of eapgain.
// Copyright (C) 2026-present eapgain authors
//
// eapgain is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// eapgain is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package lib

import (
	"runtime"
	"sync"

	"github.com/alitto/pond"
)

// runBatch evaluates fn(0..n-1) and collects the results in order. It
// runs sequentially unless opts requests parallel execution and n
// meets the configured pooling threshold, in which case the work is
// submitted to a bounded worker pool (sized opts.Workers, defaulting
// to the number of CPUs).
func runBatch(n int, opts *BatchOptions, fn func(i int) (float64, error)) ([]float64, error) {
	out := make([]float64, n)
	if opts == nil {
		opts = DefaultBatchOptions()
	}
	if !opts.Parallel || n < Cfg.Batch.MinParalel {
		for i := 0; i < n; i++ {
			v, err := fn(i)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool := pond.New(workers, 0, pond.MinWorkers(workers))
	defer pool.StopAndWait()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		firstErr error
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		pool.Submit(func() {
			defer wg.Done()
			v, err := fn(i)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			out[i] = v
		})
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
