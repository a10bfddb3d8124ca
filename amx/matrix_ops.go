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

import (
	"fmt"
	"strings"
)

// Add returns a new matrix equal to m + other, element-wise. Both
// operands must have identical shape.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.elementwise(other, func(a, b float32) float32 { return a + b })
}

// Sub returns a new matrix equal to m - other, element-wise. Both
// operands must have identical shape.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.elementwise(other, func(a, b float32) float32 { return a - b })
}

func (m *Matrix) elementwise(other *Matrix, op func(a, b float32) float32) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, ErrShapeMismatch
	}
	out, err := Zeros(m.rows, m.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.rows; i++ {
		aRow := m.data[i*m.stride : i*m.stride+m.cols]
		bRow := other.data[i*other.stride : i*other.stride+other.cols]
		outRow := out.data[i*out.stride : i*out.stride+out.cols]
		for j := range outRow {
			outRow[j] = op(aRow[j], bRow[j])
		}
	}
	return out, nil
}

// Scale returns a new matrix equal to m scaled by s.
func (m *Matrix) Scale(s float32) *Matrix {
	out, err := Zeros(m.rows, m.cols)
	if err != nil {
		panic(err) // rows/cols were already valid on m
	}
	for i := 0; i < m.rows; i++ {
		src := m.data[i*m.stride : i*m.stride+m.cols]
		dst := out.data[i*out.stride : i*out.stride+out.cols]
		for j := range dst {
			dst[j] = src[j] * s
		}
	}
	return out
}

// Negate returns a new matrix equal to -m.
func (m *Matrix) Negate() *Matrix {
	return m.Scale(-1)
}

// Transpose returns a new matrix equal to the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out, err := Zeros(m.cols, m.rows)
	if err != nil {
		panic(err)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.stride+i] = m.data[i*m.stride+j]
		}
	}
	return out
}

// String renders up to the first 10x10 block for debugging (spec.md §6,
// "diagnostics").
func (m *Matrix) String() string {
	rows := min(m.rows, 10)
	cols := min(m.cols, 10)

	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d)", m.rows, m.cols)
	if rows < m.rows || cols < m.cols {
		b.WriteString(" [truncated to 10x10]")
	}
	b.WriteByte('\n')
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", m.At(i, j))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
