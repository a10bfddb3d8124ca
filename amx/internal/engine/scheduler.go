// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine implements the tiled AMX matrix-multiply kernel:
// dispatch between scalar and AMX paths, row-tile fork-join scheduling
// across performance cores, A-panel packing, and the raw 16x16 AMX
// micro-kernel (spec.md §4.5-§4.7). Callers outside this module only see
// the package-level MatMul entry point; everything else is an
// implementation detail.
package engine

import (
	"sync"

	"github.com/amx-go/goamx/amx/internal/alignedalloc"
	"github.com/amx-go/goamx/amx/internal/detect"
	"github.com/amx-go/goamx/amx/internal/workerpool"
)

// smallDim is the shape threshold below which tiling overhead isn't worth
// it: if either output dimension is smaller than one tile, the scalar
// path runs directly (spec.md §4.7).
const smallDim = 16

// serialRowLimit is the row count at or below which a single worker handles the
// whole AMX path inline rather than forking into the pool (spec.md §4.7):
// at or below 4 row-tiles, fork-join overhead dominates any gain from
// parallel dispatch.
const serialRowLimit = 64

var (
	sharedPoolOnce sync.Once
	sharedPool     *workerpool.Pool
)

func pool() *workerpool.Pool {
	sharedPoolOnce.Do(func() {
		sharedPool = workerpool.New(detect.PerformanceCores())
	})
	return sharedPool
}

// MatMul computes C = A * B where A is m x k, B is k x n, and C is m x n,
// all row-major with their own strides. C must already be the correct
// size; every logical element of C (the m x n region) is overwritten. On
// the tiled path that region is zeroed first, edge tiles included, so
// accumulation is always safe. Columns [n, cStride) of C are neither read
// nor written.
//
// Dispatch (spec.md §4.7): scalar whole-matrix path if either output
// dimension is below one tile or the AMX coprocessor is unavailable;
// otherwise tiled AMX path, forked across performance cores when the
// matrix is large enough to amortize the fork.
func MatMul(a, b, c []float32, m, n, k, aStride, bStride, cStride int) {
	if m < smallDim || n < smallDim || !detect.IsAvailable() {
		ScalarMatMul(a, b, c, m, n, k, aStride, bStride, cStride)
		return
	}

	zeroMatrix(c, m, n, cStride)

	mTiles := (m + panelRows - 1) / panelRows
	threads := min(mTiles, detect.PerformanceCores())

	if m <= serialRowLimit || threads <= 1 {
		runRowTiles(0, mTiles, a, b, c, m, n, k, aStride, bStride, cStride)
		return
	}

	pool().ParallelFor(mTiles, func(startTile, endTile int) {
		runRowTiles(startTile, endTile, a, b, c, m, n, k, aStride, bStride, cStride)
	})
}

func zeroMatrix(c []float32, m, n, cStride int) {
	for i := 0; i < m; i++ {
		row := c[i*cStride : i*cStride+n]
		for j := range row {
			row[j] = 0
		}
	}
}

// runRowTiles processes row-tiles [startTile, endTile) on the calling
// goroutine: it opens one AMX enable scope for the whole range, packs one
// A-panel per row-tile, and loops column-tiles within it, using the
// micro-kernel for full 16x16 tiles and the scalar accumulator for edge
// tiles on either axis (spec.md §4.5-§4.7). Falls back to the scalar
// whole-range path if the scope can't be opened (e.g. a build with the
// noasm tag, where the raw instruction layer is stubbed out), rather than
// silently producing wrong output.
func runRowTiles(startTile, endTile int, a, b, c []float32, m, n, k, aStride, bStride, cStride int) {
	var scope Scope
	if err := scope.Open(); err != nil {
		iStart := startTile * panelRows
		iEnd := min(endTile*panelRows, m)
		rows := iEnd - iStart
		ScalarMatMul(
			a[iStart*aStride:], b, c[iStart*cStride:],
			rows, n, k, aStride, bStride, cStride,
		)
		return
	}
	defer scope.Close()

	// The panel feeds the micro-kernel's LDY load sites directly (spec.md
	// §3 "A-panel buffer ... 64-byte aligned"); a plain make() only
	// guarantees pointer-size alignment.
	panel := alignedalloc.Float32(panelRows * k)

	for t := startTile; t < endTile; t++ {
		iStart := t * panelRows
		iEnd := min(iStart+panelRows, m)
		rows := iEnd - iStart

		PackPanel(panel, a, aStride, iStart, iEnd, k)

		jj := 0
		for ; jj+panelRows <= n; jj += panelRows {
			if rows == panelRows {
				microKernel16x16(panel, b, jj, bStride, c, iStart*cStride+jj, cStride, k)
			} else {
				ScalarAccumulateTile(panel, b, jj, bStride, c, iStart*cStride+jj, cStride, rows, panelRows, k)
			}
		}
		if jj < n {
			ScalarAccumulateTile(panel, b, jj, bStride, c, iStart*cStride+jj, cStride, rows, n-jj, k)
		}
	}
}
