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

// Package detect identifies the host Apple Silicon generation and exposes
// the performance-core count used to size the tile scheduler. Detection
// runs once at package init and is cached, mirroring the hwy package's
// hasSME/hasBF16Darwin one-shot sysctl pattern.
package detect

// Generation identifies which Apple Silicon family (if any) is present.
type Generation int

const (
	// None means no AMX-capable CPU was found (non-Apple-Silicon hardware,
	// or hardware too old to carry the coprocessor).
	None Generation = iota
	// Unknown means the host is Apple Silicon but the brand string didn't
	// match any known generation (a future chip, most likely).
	Unknown
	M1
	M2
	M3
	M4
)

func (g Generation) String() string {
	switch g {
	case None:
		return "none"
	case Unknown:
		return "unknown"
	case M1:
		return "M1"
	case M2:
		return "M2"
	case M3:
		return "M3"
	case M4:
		return "M4"
	default:
		return "invalid"
	}
}

// maxPerformanceCores bounds the worker count the tile scheduler will ever
// request, regardless of what the host reports.
const maxPerformanceCores = 16

func clampCores(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxPerformanceCores {
		return maxPerformanceCores
	}
	return n
}
