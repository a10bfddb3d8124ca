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

import "github.com/amx-go/goamx/amx/internal/alignedalloc"

// Matrix is a rectangular f32 array backed by a 64-byte-aligned,
// row-major buffer. Row i begins at data[i*stride]; columns [cols,
// stride) are padding, always zero, never touched by any operation
// except construction (spec.md §3). A Matrix exclusively owns its
// buffer - copying one duplicates the buffer (spec.md §3,
// "Ownership").
type Matrix struct {
	rows, cols, stride int
	data               []float32 // aligned, len == rows*stride
}

// roundUp16 rounds n up to the next multiple of 16.
func roundUp16(n int) int {
	return (n + 15) &^ 15
}

// Zeros returns a rows x cols matrix of zeros, including padding. Returns
// ErrInvalidDimensions if rows or cols is non-positive.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := roundUp16(cols)
	return &Matrix{
		rows:   rows,
		cols:   cols,
		stride: stride,
		data:   alignedalloc.Float32(rows * stride),
	}, nil
}

// Fill returns a rows x cols matrix with every logical element set to v;
// padding stays zero.
func Fill(rows, cols int, v float32) (*Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		row := m.data[i*m.stride : i*m.stride+cols]
		for j := range row {
			row[j] = v
		}
	}
	return m, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*m.stride+i] = 1
	}
	return m, nil
}

// NewFromData copies src (row-major, rows*cols elements, tightly packed)
// into a newly allocated matrix. Padding is zero-filled.
func NewFromData(rows, cols int, src []float32) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(src) != rows*cols {
		return nil, ErrShapeMismatch
	}
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		copy(m.data[i*m.stride:i*m.stride+cols], src[i*cols:i*cols+cols])
	}
	return m, nil
}

// NewFromOwnedData builds a matrix directly from an already row-major,
// 64-byte-aligned, correctly-strided buffer without copying - the "move"
// constructor (spec.md §6). The caller must not retain or mutate data
// through any other reference afterward. data must have length
// rows*stride and stride must already be round_up(cols, 16); callers that
// can't guarantee this should use NewFromData instead.
func NewFromOwnedData(rows, cols, stride int, data []float32) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < cols || stride%16 != 0 {
		return nil, ErrShapeMismatch
	}
	if len(data) != rows*stride {
		return nil, ErrShapeMismatch
	}
	return &Matrix{rows: rows, cols: cols, stride: stride, data: data}, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Stride returns the row stride in elements (always a multiple of 16,
// always >= Cols()).
func (m *Matrix) Stride() int { return m.stride }

// At returns the element at (i, j). Panics if i or j is out of range -
// the safe accessor's precondition violation (spec.md §7, item 4).
func (m *Matrix) At(i, j int) float32 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("amx: index out of range")
	}
	return m.data[i*m.stride+j]
}

// Set assigns v to the element at (i, j). Panics if i or j is out of
// range.
func (m *Matrix) Set(i, j int, v float32) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("amx: index out of range")
	}
	m.data[i*m.stride+j] = v
}

// Data returns the matrix's raw backing slice (length Rows()*Stride()),
// including padding. Callers indexing it directly bypass bounds checking
// against the logical shape and are responsible for respecting the
// stride (spec.md §7, item 4).
func (m *Matrix) Data() []float32 { return m.data }

// Clone returns a deep copy, padding included, so the copy's zero-padding
// invariant holds without re-zeroing (spec.md §4.4, "Cloning memcpies").
func (m *Matrix) Clone() *Matrix {
	data := alignedalloc.Float32(len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, stride: m.stride, data: data}
}
