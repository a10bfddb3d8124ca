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

package asm

import "unsafe"

// Operand encoders are pure bit-packing functions: they mask every field to
// its width and OR the pieces together, so callers never have to pre-mask
// their arguments. There are three operand shapes, per spec.md §4.2.

const addrMask = (uint64(1) << 56) - 1

// EncodeLoadStore builds the operand for an X/Y load or store (64 or 128
// bytes): bits 0-55 are the memory address, bits 56-58 the register index
// (0-7), and bit 62 the pair flag (set to access two consecutive registers
// / 128 bytes).
func EncodeLoadStore(addr unsafe.Pointer, reg int, pair bool) uint64 {
	operand := uint64(uintptr(addr)) & addrMask
	operand |= (uint64(reg) & 0x7) << 56
	if pair {
		operand |= 1 << 62
	}
	return operand
}

// EncodeLoadStoreZ builds the operand for a Z load or store (one or two
// 64-byte rows): bits 0-55 are the memory address, bits 56-61 the Z row
// index (0-63), and bit 62 the pair flag.
func EncodeLoadStoreZ(addr unsafe.Pointer, zRow int, pair bool) uint64 {
	operand := uint64(uintptr(addr)) & addrMask
	operand |= (uint64(zRow) & 0x3f) << 56
	if pair {
		operand |= 1 << 62
	}
	return operand
}

// EncodeFMA builds the operand for FMA/FMS/MAC: bits 0-8 are the Y byte
// offset (0-511), bits 10-18 the X byte offset (0-511), bits 20-25 the Z
// row (0-63), and bit 63 the vector-mode flag (0 = outer product, 1 =
// pointwise lane-wise).
func EncodeFMA(yOffset, xOffset, zRow int, vectorMode bool) uint64 {
	operand := uint64(yOffset) & 0x1ff
	operand |= (uint64(xOffset) & 0x1ff) << 10
	operand |= (uint64(zRow) & 0x3f) << 20
	if vectorMode {
		operand |= 1 << 63
	}
	return operand
}
