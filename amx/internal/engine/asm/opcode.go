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

// Package asm issues Apple's undocumented AMX coprocessor instructions by
// emitting the raw 32-bit opcode words directly from Plan9 assembly, one
// entry point per opcode, exactly as the teacher library issues SME FMOPA
// from hand-written ARM64 assembly behind //go:noescape Go declarations
// (see hwy/contrib/matmul/asm/sme_wrappers.go). Every normal opcode here
// takes its operand pre-encoded into a single uint64, delivered in R0 (the
// architectural x0) at the call site; SET and CLR take no operand but
// require three no-op instructions ahead of the AMX word to satisfy the
// pipeline hazard documented in spec.md §4.1/§9.
package asm

// ordinal identifies one AMX opcode within the base|ordinal<<5|low5 scheme.
type ordinal uint32

const (
	ordLDX ordinal = iota
	ordLDY
	ordSTX
	ordSTY
	ordLDZ
	ordSTZ
	ordLDZI
	ordSTZI
	ordEXTRX
	ordEXTRY
	ordFMA64
	ordFMS64
	ordFMA32
	ordFMS32
	ordMAC16
	ordFMA16
	ordFMS16
	ordSETCLR
	ordVECINT
	ordVECFP
	ordMATINT
	ordMATFP
	ordGENLUT
)

// baseOpcode is the AMX instruction-family base word; individual opcodes
// OR in (ordinal << 5) and, for the CLR variant of SETCLR, bit 0.
const baseOpcode uint32 = 0x00201000

// opcode encodes one AMX instruction word. low5 is 0 for every operation
// except the CLR variant of SET/CLR, which sets bit 0.
func opcode(o ordinal, low5 uint32) uint32 {
	return baseOpcode | (uint32(o) << 5) | (low5 & 0x1f)
}

// The following are the computed instruction words for every opcode this
// package exposes, listed here (rather than re-derived in the assembly
// source) so the bit arithmetic is checked in one place and unit-tested in
// opcode_test.go against the formula in opcode().
const (
	wordLDX    = 0x00201000 // ordinal 0
	wordLDY    = 0x00201020 // ordinal 1
	wordSTX    = 0x00201040 // ordinal 2
	wordSTY    = 0x00201060 // ordinal 3
	wordLDZ    = 0x00201080 // ordinal 4
	wordSTZ    = 0x002010A0 // ordinal 5
	wordLDZI   = 0x002010C0 // ordinal 6
	wordSTZI   = 0x002010E0 // ordinal 7
	wordEXTRX  = 0x00201100 // ordinal 8
	wordEXTRY  = 0x00201120 // ordinal 9
	wordFMA64  = 0x00201140 // ordinal 10
	wordFMS64  = 0x00201160 // ordinal 11
	wordFMA32  = 0x00201180 // ordinal 12
	wordFMS32  = 0x002011A0 // ordinal 13
	wordMAC16  = 0x002011C0 // ordinal 14
	wordFMA16  = 0x002011E0 // ordinal 15
	wordFMS16  = 0x00201200 // ordinal 16
	wordSET    = 0x00201220 // ordinal 17, low5=0
	wordCLR    = 0x00201221 // ordinal 17, low5=1
	wordVECINT = 0x00201240 // ordinal 18
	wordVECFP  = 0x00201260 // ordinal 19
	wordMATINT = 0x00201280 // ordinal 20
	wordMATFP  = 0x002012A0 // ordinal 21
	wordGENLUT = 0x002012C0 // ordinal 22
)
