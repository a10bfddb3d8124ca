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

//go:build !noasm && darwin && arm64

package engine

import (
	"unsafe"

	"github.com/amx-go/goamx/amx/internal/engine/asm"
)

// zeroRow is a static 64-byte (16 float32) zero buffer used to LDZ every
// Z accumulator row to zero before the K-loop (spec.md §4.6 step 1, and
// the Open Question in spec.md §9: the source this library follows never
// assumes an in-hardware zeroing instruction, so neither does this).
var zeroRow [16]float32

// zRowStride is how far apart (in Z rows) the 16 f32-matrix-mode
// accumulator rows are spaced. In f32 matrix mode FMA32 implicitly
// strides Z by 4 to cover all 16 output rows from a single instruction
// (spec.md §4.6/§9); the zero-init loop and the store loop must mirror
// that stride exactly, or the kernel silently reads/writes the wrong Z
// rows interleaved with other AMX precisions.
const zRowStride = 4

// kUnroll is the K-loop unroll factor (spec.md §4.6 step 2).
const kUnroll = 8

// microKernel16x16 computes a 16x16 output tile for all K in one call,
// starting from zero: C[0:16, 0:16] = sum_k panel[:, k] outer B[k, :]
// (spec.md §4.6). panel is a packed A panel (K columns of 16 floats,
// column-major stride 16, from PackPanel). b points at the upper-left of
// the K x 16 B tile (row-major stride bStride); c points at the
// upper-left of the 16x16 output tile (row-major stride cStride). The
// enable scope must already be open on the calling thread; this function
// never issues SET or CLR (spec.md §4.6, last paragraph).
func microKernel16x16(panel []float32, b []float32, bOffset, bStride int, c []float32, cOffset, cStride, k int) {
	panelPtr := unsafe.Pointer(&panel[0])
	bPtr := unsafe.Pointer(&b[bOffset])
	cPtr := unsafe.Pointer(&c[cOffset])
	zeroPtr := unsafe.Pointer(&zeroRow[0])

	// Step 1: zero the 16 f32 accumulator rows (0, 4, 8, ..., 60).
	for i := 0; i < 16; i++ {
		asm.LDZ(asm.EncodeLoadStoreZ(zeroPtr, i*zRowStride, false))
	}

	// Step 2: K-loop, unrolled by 8.
	kk := 0
	for ; kk+kUnroll <= k; kk += kUnroll {
		panelBlock := unsafe.Add(panelPtr, kk*panelRows*4)
		bBlock := unsafe.Add(bPtr, kk*bStride*4)

		for s := 0; s < kUnroll; s++ {
			aCol := unsafe.Add(panelBlock, s*panelRows*4)
			asm.LDY(asm.EncodeLoadStore(aCol, s, false))
		}

		// LDX/FMA interleaved: LDX0, LDX1, FMA(0,0,0); LDX2, FMA(1,1,0);
		// ...; LDX7, FMA(6,6,0); FMA(7,7,0) (spec.md §4.6 step 2).
		bRow0 := unsafe.Add(bBlock, 0*bStride*4)
		asm.LDX(asm.EncodeLoadStore(bRow0, 0, false))
		for s := 1; s < kUnroll; s++ {
			bRow := unsafe.Add(bBlock, s*bStride*4)
			asm.LDX(asm.EncodeLoadStore(bRow, s, false))
			asm.FMA32(asm.EncodeFMA((s-1)*64, (s-1)*64, 0, false))
		}
		asm.FMA32(asm.EncodeFMA((kUnroll-1)*64, (kUnroll-1)*64, 0, false))
	}

	// Step 3: K-remainder, single-instruction triples.
	for ; kk < k; kk++ {
		aCol := unsafe.Add(panelPtr, kk*panelRows*4)
		bRow := unsafe.Add(bPtr, kk*bStride*4)
		asm.LDY(asm.EncodeLoadStore(aCol, 0, false))
		asm.LDX(asm.EncodeLoadStore(bRow, 0, false))
		asm.FMA32(asm.EncodeFMA(0, 0, 0, false))
	}

	// Step 4: store the tile.
	for i := 0; i < 16; i++ {
		cRow := unsafe.Add(cPtr, i*cStride*4)
		asm.STZ(asm.EncodeLoadStoreZ(cRow, i*zRowStride, false))
	}
}
