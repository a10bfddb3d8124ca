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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func approxEqual(t *testing.T, got, want *Matrix, tol float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	gotRows := make([][]float32, got.Rows())
	wantRows := make([][]float32, want.Rows())
	for i := 0; i < got.Rows(); i++ {
		gotRows[i] = make([]float32, got.Cols())
		wantRows[i] = make([]float32, want.Cols())
		for j := 0; j < got.Cols(); j++ {
			gotRows[i][j] = got.At(i, j)
			wantRows[i][j] = want.At(i, j)
		}
	}
	if diff := cmp.Diff(wantRows, gotRows, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// Scenario 1: 2x2 scalar matmul, exact.
func TestMatMulScenario2x2Exact(t *testing.T) {
	a, err := NewFromData(2, 2, []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFromData(2, 2, []float32{5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	want, err := NewFromData(2, 2, []float32{19, 22, 43, 50})
	if err != nil {
		t.Fatal(err)
	}

	got, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, want, 0)
}

// Scenario 2: 64x64 identity.
func TestMatMulScenario64Identity(t *testing.T) {
	a, err := Identity(64)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Zeros(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 64; i++ {
		for j := 0; j < 64; j++ {
			b.Set(i, j, float32((i*64+j)%64))
		}
	}

	got, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, b, 1e-5)
}

// Scenario 3: 128x128 constant.
func TestMatMulScenario128Constant(t *testing.T) {
	a, err := Fill(128, 128, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Fill(128, 128, 2)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Fill(128, 128, 256)
	if err != nil {
		t.Fatal(err)
	}

	got, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, want, 1e-3)
}

// Scenario 4: 17x17 fill, exercises the edge-tile scalar fallback.
func TestMatMulScenario17Fill(t *testing.T) {
	a, err := Fill(17, 17, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Fill(17, 17, 2)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Fill(17, 17, 34)
	if err != nil {
		t.Fatal(err)
	}

	got, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, want, 1e-3)
}

// Scenario 5: rectangular 48x96 * 96x32, single-thread path (16 < M <= 64).
func TestMatMulScenarioRectangularSingleThread(t *testing.T) {
	a, err := Fill(48, 96, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Fill(96, 32, 1)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Fill(48, 32, 96)
	if err != nil {
		t.Fatal(err)
	}

	got, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}
	approxEqual(t, got, want, 1e-3)
}

// Scenario 6: 512x128 * 128x256, multi-thread path with partial bottom
// row tiles and per-worker panels.
func TestMatMulScenarioRectangularParallel(t *testing.T) {
	a, err := Zeros(512, 128)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 128; i++ {
		a.Set(i, i, 1)
	}

	rng := rand.New(rand.NewSource(1))
	b, err := Zeros(128, 256)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 128; i++ {
		for j := 0; j < 256; j++ {
			b.Set(i, j, rng.Float32()*2-1)
		}
	}

	got, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 128; i++ {
		for j := 0; j < 256; j++ {
			want := b.At(i, j)
			if diff := float64(got.At(i, j)) - float64(want); diff > 1e-3 || diff < -1e-3 {
				t.Fatalf("C[%d,%d] = %v, want %v", i, j, got.At(i, j), want)
			}
		}
	}
	for i := 128; i < 512; i++ {
		for j := 0; j < 256; j++ {
			if v := got.At(i, j); v > 1e-3 || v < -1e-3 {
				t.Fatalf("C[%d,%d] = %v, want 0", i, j, v)
			}
		}
	}
}

func TestMatMulRejectsShapeMismatch(t *testing.T) {
	a, err := Zeros(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Zeros(5, 6)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.MatMul(b); err != ErrShapeMismatch {
		t.Errorf("got err %v, want ErrShapeMismatch", err)
	}
}

// ScalarConsistency: the AMX-eligible path and a direct scalar reference
// agree within tolerance across a range of shapes and small-magnitude
// inputs.
func TestMatMulScalarConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	shapes := []struct{ m, k, n int }{
		{20, 20, 20},
		{33, 17, 50},
		{64, 64, 64},
		{100, 33, 77},
	}

	for _, s := range shapes {
		a, err := Zeros(s.m, s.k)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Zeros(s.k, s.n)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < s.m; i++ {
			for j := 0; j < s.k; j++ {
				a.Set(i, j, rng.Float32()*2-1)
			}
		}
		for i := 0; i < s.k; i++ {
			for j := 0; j < s.n; j++ {
				b.Set(i, j, rng.Float32()*2-1)
			}
		}

		got, err := a.MatMul(b)
		if err != nil {
			t.Fatal(err)
		}

		want, err := Zeros(s.m, s.n)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < s.m; i++ {
			for j := 0; j < s.n; j++ {
				var sum float32
				for p := 0; p < s.k; p++ {
					sum += a.At(i, p) * b.At(p, j)
				}
				want.Set(i, j, sum)
			}
		}

		approxEqual(t, got, want, 1e-3)
	}
}

// Associativity in algebra: a*(b+c) == a*b + a*c within tolerance.
func TestMatMulDistributesOverAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a, err := randomMatrix(rng, 24, 24)
	if err != nil {
		t.Fatal(err)
	}
	b, err := randomMatrix(rng, 24, 24)
	if err != nil {
		t.Fatal(err)
	}
	c, err := randomMatrix(rng, 24, 24)
	if err != nil {
		t.Fatal(err)
	}

	bc, err := b.Add(c)
	if err != nil {
		t.Fatal(err)
	}
	lhs, err := a.MatMul(bc)
	if err != nil {
		t.Fatal(err)
	}

	ab, err := a.MatMul(b)
	if err != nil {
		t.Fatal(err)
	}
	ac, err := a.MatMul(c)
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := ab.Add(ac)
	if err != nil {
		t.Fatal(err)
	}

	approxEqual(t, lhs, rhs, 1e-3)
}

func randomMatrix(rng *rand.Rand, rows, cols int) (*Matrix, error) {
	m, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, rng.Float32()*2-1)
		}
	}
	return m, nil
}
