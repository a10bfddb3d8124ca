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
	"strings"
	"testing"
)

func TestAddSub(t *testing.T) {
	a, err := NewFromData(2, 2, []float32{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewFromData(2, 2, []float32{10, 20, 30, 40})
	if err != nil {
		t.Fatal(err)
	}

	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{11, 22, 33, 44}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := sum.At(i, j); got != want[i*2+j] {
				t.Errorf("sum(%d,%d) = %v, want %v", i, j, got, want[i*2+j])
			}
		}
	}

	diff, err := b.Sub(a)
	if err != nil {
		t.Fatal(err)
	}
	want = []float32{9, 18, 27, 36}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := diff.At(i, j); got != want[i*2+j] {
				t.Errorf("diff(%d,%d) = %v, want %v", i, j, got, want[i*2+j])
			}
		}
	}
}

func TestAddRejectsShapeMismatch(t *testing.T) {
	a, err := Zeros(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Zeros(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Add(b); err != ErrShapeMismatch {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

func TestScaleAndNegate(t *testing.T) {
	m, err := NewFromData(1, 3, []float32{1, -2, 3})
	if err != nil {
		t.Fatal(err)
	}

	scaled := m.Scale(2)
	want := []float32{2, -4, 6}
	for j, w := range want {
		if got := scaled.At(0, j); got != w {
			t.Errorf("scaled(0,%d) = %v, want %v", j, got, w)
		}
	}

	neg := m.Negate()
	want = []float32{-1, 2, -3}
	for j, w := range want {
		if got := neg.At(0, j); got != w {
			t.Errorf("neg(0,%d) = %v, want %v", j, got, w)
		}
	}
}

func TestStringTruncatesTo10x10(t *testing.T) {
	m, err := Zeros(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	s := m.String()
	if !strings.Contains(s, "truncated") {
		t.Errorf("String() for a 20x20 matrix should note truncation, got: %q", s)
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	// header + 10 data rows
	if len(lines) != 11 {
		t.Errorf("got %d lines, want 11 (1 header + 10 rows)", len(lines))
	}
}

func TestStringSmallMatrixNotTruncated(t *testing.T) {
	m, err := Zeros(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(m.String(), "truncated") {
		t.Error("3x3 matrix should not report truncation")
	}
}
