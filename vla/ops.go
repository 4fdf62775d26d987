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

import "math"

// This file provides pure Go (scalar) implementations of all go-vla
// operations. Every memory operation takes its lane count from the
// negotiated vl rather than the register width, so a loop that negotiates
// the remaining element count never touches memory past its chunk.

// LoadN creates a vector by loading the first vl elements from src.
// If src holds fewer than vl elements, the vector is shortened to match.
func LoadN[T Lanes](src []T, vl int) Vec[T] {
	n := min(vl, len(src))
	if n < 0 {
		n = 0
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's lanes to dst.
// This is the function form of the Vec.Store method.
func Store[T Lanes](v Vec[T], dst []T) {
	v.Store(dst)
}

// BroadcastN creates a vl-lane vector with every lane set to value.
// This is the scalar-broadcast operand of a vector FMA.
func BroadcastN[T Lanes](value T, vl int) Vec[T] {
	data := make([]T, vl)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// ZeroN creates a vl-lane vector with all lanes set to zero.
func ZeroN[T Lanes](vl int) Vec[T] {
	return Vec[T]{data: make([]T, vl)}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// MulAdd performs a fused multiply-add: a*b + c with a single rounding per
// lane, matching hardware FMA semantics in every dispatch mode.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	result := make([]T, n)
	switch any(result).(type) {
	case []float32:
		av := any(a.data).([]float32)
		bv := any(b.data).([]float32)
		cv := any(c.data).([]float32)
		rv := any(result).([]float32)
		for i := 0; i < n; i++ {
			// Fuse in float64: the float32 product is exact there, so only
			// the final narrowing rounds.
			rv[i] = float32(math.FMA(float64(av[i]), float64(bv[i]), float64(cv[i])))
		}
	case []float64:
		av := any(a.data).([]float64)
		bv := any(b.data).([]float64)
		cv := any(c.data).([]float64)
		rv := any(result).([]float64)
		for i := 0; i < n; i++ {
			rv[i] = math.FMA(av[i], bv[i], cv[i])
		}
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}
