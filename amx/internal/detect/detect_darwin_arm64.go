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

//go:build darwin && arm64

package detect

import (
	"os"
	"strings"

	"golang.org/x/sys/cpu"
	"golang.org/x/sys/unix"
)

// cached is computed once at package init, the same one-shot pattern the
// teacher uses for hasSME/hasBF16Darwin (hwy/sme_detect_darwin.go).
var cached = detectGeneration()

var perfCores = detectPerformanceCores()

// detectGeneration reads the CPU brand string via sysctl and substring
// matches it against known Apple Silicon generations. cpu.ARM64.HasASIMD
// is checked first so a malformed or spoofed sysctl value can never report
// an M-series chip on hardware that isn't even running NEON-capable arm64
// code (defence in depth against a corrupted sysctl reply, not a case that
// can occur on genuine Apple Silicon).
func detectGeneration() Generation {
	if !cpu.ARM64.HasASIMD {
		return None
	}
	if os.Getenv("AMXGO_NO_AMX") != "" {
		return None
	}

	brand, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil || brand == "" {
		// Older macOS on Apple Silicon may not populate brand_string;
		// hw.model ("Mac14,x" etc.) doesn't carry the chip name directly,
		// so without brand_string we can't tell generations apart.
		return Unknown
	}

	switch {
	case strings.Contains(brand, "M4"):
		return M4
	case strings.Contains(brand, "M3"):
		return M3
	case strings.Contains(brand, "M2"):
		return M2
	case strings.Contains(brand, "M1"):
		return M1
	default:
		return Unknown
	}
}

// detectPerformanceCores reads the performance-core cluster size
// (hw.perflevel0.physicalcpu on Apple Silicon) and falls back to the total
// physical core count when the perflevel sysctl isn't present. Both are
// CTLTYPE_INT sysctls, so they're read with SysctlUint32 rather than
// Sysctl: the latter is the string-sysctl API and would hand back the raw
// little-endian integer bytes instead of a decimal string (the teacher
// hits the same int-vs-string split in hwy/sme_detect_darwin.go, reading
// its feature-flag sysctl as raw bytes rather than through the string
// path).
func detectPerformanceCores() int {
	if n, err := unix.SysctlUint32("hw.perflevel0.physicalcpu"); err == nil && n > 0 {
		return clampCores(int(n))
	}
	if n, err := unix.SysctlUint32("hw.physicalcpu"); err == nil && n > 0 {
		return clampCores(int(n))
	}
	return clampCores(1)
}

// Detect returns the Apple Silicon generation found on this host.
func Detect() Generation {
	return cached
}

// IsAvailable reports whether the AMX coprocessor is expected to be
// present. It is a capability query, not an error: callers use it to
// choose between the AMX engine and the scalar baseline.
func IsAvailable() bool {
	return cached != None
}

// PerformanceCores returns the number of performance cores to partition
// tile-scheduler work across, clamped to [1, 16].
func PerformanceCores() int {
	return perfCores
}
