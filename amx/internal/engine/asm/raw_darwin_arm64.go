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

package asm

//go:generate go tool goat ../c/amx_raw_arm64.c -O3 --target arm64 --target-os darwin
//
// AMX has no public compiler intrinsics or MSR names for goat's usual
// C-to-assembly path (unlike the SME/NEON kernels elsewhere in this
// module's history): the .s body below is maintained by hand against
// Apple's reverse-engineered encoding, not generated. The go:generate
// comment is kept anyway as a record of the goat convention; the C file it
// names is not part of this repository, so running go generate here
// fails.

// Each function below is one entry point per AMX opcode (spec.md §4.1):
// normal operations take a single pre-encoded 64-bit operand delivered in
// R0 (x0) at the call site; SET and CLR take no operand.

//go:noescape
func opLDX(operand uint64)

//go:noescape
func opLDY(operand uint64)

//go:noescape
func opSTX(operand uint64)

//go:noescape
func opSTY(operand uint64)

//go:noescape
func opLDZ(operand uint64)

//go:noescape
func opSTZ(operand uint64)

//go:noescape
func opLDZI(operand uint64)

//go:noescape
func opSTZI(operand uint64)

//go:noescape
func opEXTRX(operand uint64)

//go:noescape
func opEXTRY(operand uint64)

//go:noescape
func opFMA64(operand uint64)

//go:noescape
func opFMS64(operand uint64)

//go:noescape
func opFMA32(operand uint64)

//go:noescape
func opFMS32(operand uint64)

//go:noescape
func opMAC16(operand uint64)

//go:noescape
func opFMA16(operand uint64)

//go:noescape
func opFMS16(operand uint64)

//go:noescape
func opVECINT(operand uint64)

//go:noescape
func opVECFP(operand uint64)

//go:noescape
func opMATINT(operand uint64)

//go:noescape
func opMATFP(operand uint64)

//go:noescape
func opGENLUT(operand uint64)

//go:noescape
func opSET()

//go:noescape
func opCLR()

// LDX loads 64 (or 128, if operand's pair bit is set) bytes into the X
// register file from the address encoded in operand.
func LDX(operand uint64) { opLDX(operand) }

// LDY loads into the Y register file; see LDX.
func LDY(operand uint64) { opLDY(operand) }

// STX stores from the X register file to memory.
func STX(operand uint64) { opSTX(operand) }

// STY stores from the Y register file to memory.
func STY(operand uint64) { opSTY(operand) }

// LDZ loads one or two 64-byte rows into the Z accumulator.
func LDZ(operand uint64) { opLDZ(operand) }

// STZ stores one or two 64-byte rows from the Z accumulator.
func STZ(operand uint64) { opSTZ(operand) }

// LDZI loads a Z row with the interleaved addressing variant.
func LDZI(operand uint64) { opLDZI(operand) }

// STZI stores a Z row with the interleaved addressing variant.
func STZI(operand uint64) { opSTZI(operand) }

// EXTRX extracts a row from the Z accumulator into the X register file.
func EXTRX(operand uint64) { opEXTRX(operand) }

// EXTRY extracts a row from the Z accumulator into the Y register file.
func EXTRY(operand uint64) { opEXTRY(operand) }

// FMA64 performs a float64 fused multiply-add outer product / pointwise op.
func FMA64(operand uint64) { opFMA64(operand) }

// FMS64 performs a float64 fused multiply-subtract.
func FMS64(operand uint64) { opFMS64(operand) }

// FMA32 performs a float32 fused multiply-add outer product / pointwise
// op. This is the only FMA variant the core micro-kernel issues.
func FMA32(operand uint64) { opFMA32(operand) }

// FMS32 performs a float32 fused multiply-subtract.
func FMS32(operand uint64) { opFMS32(operand) }

// MAC16 performs an int16 multiply-accumulate.
func MAC16(operand uint64) { opMAC16(operand) }

// FMA16 performs a float16 fused multiply-add.
func FMA16(operand uint64) { opFMA16(operand) }

// FMS16 performs a float16 fused multiply-subtract.
func FMS16(operand uint64) { opFMS16(operand) }

// VECINT performs an integer vector ALU operation.
func VECINT(operand uint64) { opVECINT(operand) }

// VECFP performs a floating-point vector ALU operation.
func VECFP(operand uint64) { opVECFP(operand) }

// MATINT performs an integer matrix ALU operation.
func MATINT(operand uint64) { opMATINT(operand) }

// MATFP performs a floating-point matrix ALU operation.
func MATFP(operand uint64) { opMATFP(operand) }

// GENLUT performs a generic lookup-table operation.
func GENLUT(operand uint64) { opGENLUT(operand) }

// SET enables the AMX coprocessor for the calling thread. Three no-op
// instructions precede the AMX word to satisfy the pipeline hazard
// documented in spec.md §4.1/§9; see raw_darwin_arm64.s.
func SET() { opSET() }

// CLR disables the AMX coprocessor for the calling thread.
func CLR() { opCLR() }

// Available reports whether this build was compiled with real AMX issue
// sites (darwin/arm64, asm not disabled via the noasm build tag).
const Available = true
