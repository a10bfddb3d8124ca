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

// Package alignedalloc provides 64-byte-aligned float32 buffers, the
// alignment spec.md requires of both Matrix storage (§3, §4.4) and the
// per-worker A-panel scratch buffer (§3 "A-panel buffer"). Go's runtime
// only guarantees pointer-size alignment for make([]float32, ...); there
// is no aligned-allocation primitive in the standard library, and no
// third-party library in the retrieval pack offers one, so this package
// over-allocates and slices to the first aligned element - the standard
// technique for SIMD-ready buffers in Go.
package alignedalloc

import "unsafe"

const (
	// Bytes is the required alignment.
	Bytes = 64
	floats = Bytes / 4
)

// Float32 returns a []float32 of length n whose first element sits at a
// Bytes-aligned address.
func Float32(n int) []float32 {
	buf := make([]float32, n+floats-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	pad := (Bytes - int(addr%Bytes)) % Bytes
	start := pad / 4
	return buf[start : start+n]
}
