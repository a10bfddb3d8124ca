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

package engine

// ScalarMatMul computes C = A * B with the standard triple loop, honoring
// each matrix's own row stride (A.cols == B.rows == k). It is used both as
// the whole-matrix fallback when AMX is unavailable or the shapes are too
// small to tile (spec.md §4.7), and as the reference the teacher's own
// matmulScalar follows (hwy/contrib/matmul/matmul_base.go), generalized
// from tightly-packed slices to strided Matrix storage.
func ScalarMatMul(a, b, c []float32, m, n, k, aStride, bStride, cStride int) {
	for i := 0; i < m; i++ {
		cRow := c[i*cStride : i*cStride+n]
		for j := range cRow {
			cRow[j] = 0
		}
		for p := 0; p < k; p++ {
			aip := a[i*aStride+p]
			if aip == 0 {
				continue
			}
			bRow := b[p*bStride : p*bStride+n]
			for j := 0; j < n; j++ {
				cRow[j] += aip * bRow[j]
			}
		}
	}
}

// ScalarAccumulateTile handles a partial (non-16x16) output tile: for each
// logical (ii, jj) inside the tile it accumulates
// sum_k panel[k*16+ii] * B[k*bStride+bOffset+jj] into
// C[(i+ii)*cStride + j+jj] (spec.md §4.7). C is assumed already
// zero-initialized by the caller (the whole output buffer is zeroed
// before any worker runs, spec.md §4.7), so this always accumulates with
// += rather than overwriting, unlike the micro-kernel, whose STZ path
// stores a full 16x16 tile without reading C.
func ScalarAccumulateTile(panel, b []float32, bOffset, bStride int, c []float32, cOffset, cStride, rows, cols, k int) {
	for ii := 0; ii < rows; ii++ {
		cRow := c[cOffset+ii*cStride : cOffset+ii*cStride+cols]
		for kk := 0; kk < k; kk++ {
			a := panel[kk*panelRows+ii]
			if a == 0 {
				continue
			}
			bRow := b[bOffset+kk*bStride : bOffset+kk*bStride+cols]
			for jj := 0; jj < cols; jj++ {
				cRow[jj] += a * bRow[jj]
			}
		}
	}
}
