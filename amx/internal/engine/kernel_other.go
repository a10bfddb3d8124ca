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

//go:build noasm || !darwin || !arm64

package engine

// microKernel16x16 is unreachable in this build: the scheduler only calls
// it after Scope.Open succeeds, and Open always fails when asm.Available
// is false, as it is here, so this exists purely to keep the package
// building on every platform (same pattern as hwy/dispatch_other.go).
func microKernel16x16(panel []float32, b []float32, bOffset, bStride int, c []float32, cOffset, cStride, k int) {
	panic("engine: AMX micro-kernel unavailable on this platform")
}
