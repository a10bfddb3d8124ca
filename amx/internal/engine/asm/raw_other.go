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

// Package asm's raw instruction layer only exists on darwin/arm64 (AMX is
// an Apple Silicon coprocessor); these no-op stand-ins let the rest of the
// module compile on other platforms the same way hwy/sme_detect_other.go
// stubs out hasSME off Darwin. scope.Open (engine/scope.go) refuses to
// open when Available is false, which it is here, so the engine never
// issues any of these at runtime - they exist purely so the package has
// the same symbol set on every platform.
package asm

func LDX(operand uint64)    {}
func LDY(operand uint64)    {}
func STX(operand uint64)    {}
func STY(operand uint64)    {}
func LDZ(operand uint64)    {}
func STZ(operand uint64)    {}
func LDZI(operand uint64)   {}
func STZI(operand uint64)   {}
func EXTRX(operand uint64)  {}
func EXTRY(operand uint64)  {}
func FMA64(operand uint64)  {}
func FMS64(operand uint64)  {}
func FMA32(operand uint64)  {}
func FMS32(operand uint64)  {}
func MAC16(operand uint64)  {}
func FMA16(operand uint64)  {}
func FMS16(operand uint64)  {}
func VECINT(operand uint64) {}
func VECFP(operand uint64)  {}
func MATINT(operand uint64) {}
func MATFP(operand uint64)  {}
func GENLUT(operand uint64) {}
func SET()                  {}
func CLR()                  {}

// Available is false on every build that isn't darwin/arm64 with asm
// enabled.
const Available = false
