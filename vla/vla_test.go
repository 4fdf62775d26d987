// Copyright 2026 go-vla Authors
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

package vla

import (
	"math"
	"testing"
)

func TestDispatchDetected(t *testing.T) {
	t.Logf("Dispatch level: %s, width: %d bytes", CurrentName(), CurrentWidth())

	if CurrentWidth() <= 0 {
		t.Errorf("CurrentWidth() = %d, want > 0", CurrentWidth())
	}
	if CurrentLevel().String() != CurrentName() {
		t.Errorf("level %q and name %q disagree", CurrentLevel(), CurrentName())
	}
}

func TestMaxLanes(t *testing.T) {
	lanes64 := MaxLanes[float64]()
	lanes32 := MaxLanes[float32]()

	if lanes64 != CurrentWidth()/8 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", lanes64, CurrentWidth()/8)
	}
	if lanes32 != 2*lanes64 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", lanes32, 2*lanes64)
	}
}

func TestSetvl(t *testing.T) {
	vlmax := Vlmax[float64]()
	if vlmax != MaxGroup*MaxLanes[float64]() {
		t.Fatalf("Vlmax[float64]() = %d, want %d", vlmax, MaxGroup*MaxLanes[float64]())
	}

	tests := []struct {
		avl  int
		want int
	}{
		{avl: -1, want: 0},
		{avl: 0, want: 0},
		{avl: 1, want: 1},
		{avl: vlmax - 1, want: vlmax - 1},
		{avl: vlmax, want: vlmax},
		{avl: vlmax + 1, want: vlmax},
		{avl: 1 << 20, want: vlmax},
	}

	for _, tt := range tests {
		if got := Setvl[float64](tt.avl); got != tt.want {
			t.Errorf("Setvl[float64](%d) = %d, want %d", tt.avl, got, tt.want)
		}
	}

	// The grant never exceeds what was asked for.
	for avl := 0; avl <= 2*vlmax; avl++ {
		if got := Setvl[float64](avl); got > avl {
			t.Errorf("Setvl[float64](%d) = %d, granted more than requested", avl, got)
		}
	}

	// Idempotent: negotiating the grant again returns the same grant.
	vl := Setvl[float64](17)
	if again := Setvl[float64](vl); again != vl {
		t.Errorf("Setvl(Setvl(17)) = %d, want %d", again, vl)
	}
}

func TestLoadN(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	v := LoadN(data, 4)
	if v.NumLanes() != 4 {
		t.Fatalf("LoadN: NumLanes() = %d, want 4", v.NumLanes())
	}
	for i := 0; i < 4; i++ {
		if v.data[i] != data[i] {
			t.Errorf("LoadN: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}

	// Short source clamps the vector, it does not over-read.
	short := LoadN(data[6:], 4)
	if short.NumLanes() != 2 {
		t.Errorf("LoadN short: NumLanes() = %d, want 2", short.NumLanes())
	}
}

func TestBroadcastN(t *testing.T) {
	v := BroadcastN(42.0, 5)
	if v.NumLanes() != 5 {
		t.Fatalf("BroadcastN: NumLanes() = %d, want 5", v.NumLanes())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("BroadcastN: lane %d: got %v, want 42.0", i, v.data[i])
		}
	}
}

func TestStore(t *testing.T) {
	v := LoadN([]float64{1, 2, 3, 4}, 4)
	dst := []float64{-1, -1, -1, -1, -1}

	v.Store(dst)
	for i := 0; i < 4; i++ {
		if dst[i] != float64(i+1) {
			t.Errorf("Store: dst[%d] = %v, want %v", i, dst[i], float64(i+1))
		}
	}
	// Store writes exactly NumLanes elements.
	if dst[4] != -1 {
		t.Errorf("Store wrote past the vector: dst[4] = %v", dst[4])
	}
}

func TestMulAddFused(t *testing.T) {
	// Pick operands where fused and unfused results differ, so the test
	// catches a mul-then-add implementation.
	a := 1.0 + 0x1p-30
	b := 1.0 - 0x1p-30
	c := -1.0

	va := BroadcastN(a, 3)
	vb := BroadcastN(b, 3)
	vc := BroadcastN(c, 3)

	got := MulAdd(va, vb, vc)
	want := math.FMA(a, b, c)

	if want == a*b+c {
		t.Fatal("test operands do not distinguish fused from unfused")
	}
	for i := 0; i < got.NumLanes(); i++ {
		if got.data[i] != want {
			t.Errorf("MulAdd: lane %d: got %g, want %g", i, got.data[i], want)
		}
	}
}

func TestAddMulReduce(t *testing.T) {
	a := LoadN([]float64{1, 2, 3, 4}, 4)
	b := LoadN([]float64{10, 20, 30, 40}, 4)

	sum := Add(a, b)
	for i, want := range []float64{11, 22, 33, 44} {
		if sum.data[i] != want {
			t.Errorf("Add: lane %d: got %v, want %v", i, sum.data[i], want)
		}
	}

	prod := Mul(a, b)
	for i, want := range []float64{10, 40, 90, 160} {
		if prod.data[i] != want {
			t.Errorf("Mul: lane %d: got %v, want %v", i, prod.data[i], want)
		}
	}

	if got := ReduceSum(a); got != 10 {
		t.Errorf("ReduceSum = %v, want 10", got)
	}
}
