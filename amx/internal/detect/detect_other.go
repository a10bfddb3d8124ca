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

//go:build !darwin || !arm64

package detect

import "runtime"

// Detect always reports None on non-Darwin or non-arm64 builds: AMX is an
// undocumented Apple coprocessor with no non-Darwin, non-arm64 analogue.
func Detect() Generation {
	return None
}

// IsAvailable always reports false on non-Darwin or non-arm64 builds.
func IsAvailable() bool {
	return false
}

// PerformanceCores returns a clamped logical CPU count; it is only
// meaningful here for test parity, since the AMX tile scheduler never
// actually runs the multithreaded AMX path on this platform.
func PerformanceCores() int {
	return clampCores(runtime.NumCPU())
}
