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

package amx

import "github.com/amx-go/goamx/amx/internal/detect"

// Generation identifies which Apple Silicon family (if any) is present
// (spec.md §6, "Detection").
type Generation = detect.Generation

const (
	GenerationNone    = detect.None
	GenerationUnknown = detect.Unknown
	GenerationM1      = detect.M1
	GenerationM2      = detect.M2
	GenerationM3      = detect.M3
	GenerationM4      = detect.M4
)

// Detect returns the detected Apple Silicon generation, cached after the
// first call.
func Detect() Generation {
	return detect.Detect()
}

// IsAvailable reports whether the AMX coprocessor is usable on this host
// (equivalent to Detect() != GenerationNone).
func IsAvailable() bool {
	return detect.IsAvailable()
}

// PerformanceCores returns the number of performance cores MatMul will
// partition work across, clamped to [1, 16].
func PerformanceCores() int {
	return detect.PerformanceCores()
}
