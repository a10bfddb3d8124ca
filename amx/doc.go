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

// Package amx exposes Apple's undocumented AMX coprocessor as a dense
// single-precision matrix engine. On Apple Silicon it issues AMX
// instructions directly through a hand-tuned 16x16 micro-kernel; on every
// other platform, and whenever the coprocessor can't be reached, matrix
// multiplication falls back to a scalar triple loop so the package is
// usable (just not accelerated) everywhere Go runs.
//
// Matrix is the central type (Generation, from Detect, is the other): a
// 64-byte-aligned, row-major f32
// buffer whose row stride is always padded to a multiple of 16 elements,
// the layout the micro-kernel requires. Construct one with Zeros, Fill,
// Identity, NewFromData, or NewFromOwnedData, then call MatMul.
package amx
