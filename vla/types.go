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

// Package vla provides vector-length-agnostic SIMD operations with runtime
// width negotiation.
//
// Instead of fixing the vector width at compile time, callers negotiate it
// per operation sequence, the way RISC-V V's vsetvli or ARM SVE's whilelt
// do in hardware:
//
//	vl := vla.Setvl[float64](remaining) // granted length, never more than asked
//	v := vla.LoadN(data, vl)
//	acc = vla.MulAdd(vla.BroadcastN(s, vl), v, acc)
//	acc.Store(out)
//
// The granted length is bounded by the widest register grouping the current
// dispatch level supports, so a loop that re-negotiates with the remaining
// element count needs no masking and no scalar tail.
package vla

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// Only floating-point lanes are supported; the library exists to feed
// FMA-based kernels.
type Lanes interface {
	Floats
}

// Vec is a portable vector handle of negotiated length. Its lane count is
// the vl that was granted when it was created, not the register width.
//
// Vec instances should not be created directly; use LoadN, BroadcastN, or
// ZeroN instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector, i.e. the
// vl it was created with.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}
