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

import "github.com/amx-go/goamx/amx/internal/engine"

// MatMul computes m * other. Validates m.Cols() == other.Rows(),
// returning ErrShapeMismatch otherwise (spec.md §4.8). The result is
// allocated fresh and fully determined by the inputs; on a mismatch or
// allocation failure no partial output is published.
//
// Dispatches to the AMX tile scheduler when the coprocessor is available
// and the shape is large enough to tile, otherwise to a scalar triple
// loop (spec.md §4.7); both paths agree within float32 rounding error.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, ErrShapeMismatch
	}

	c, err := Zeros(m.rows, other.cols)
	if err != nil {
		return nil, err
	}

	engine.MatMul(
		m.data, other.data, c.data,
		m.rows, other.cols, m.cols,
		m.stride, other.stride, c.stride,
	)

	return c, nil
}
