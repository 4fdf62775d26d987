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

package matmul

import "github.com/ajroetker/go-vla/vla"

// RowGroup is the register-blocking height: the number of matrix rows
// processed together per inner-kernel call, one vector accumulator per row.
// The inner kernel (kernel4) is specialized for the current value; retuning
// for a larger register file means providing a matching kernel.
const RowGroup = 4

// MatMul computes C += A * B where:
//   - A is M x N (row-major)
//   - B is N x P (row-major)
//   - C is M x P (row-major), read as the additive base and overwritten
//
// C is not zeroed: each output row group is loaded into accumulators
// before the reduction, so pre-existing values become partial sums.
//
// M must be a positive multiple of RowGroup. The row loop advances by
// RowGroup unconditionally; unlike the column dimension, which re-negotiates
// the vector length for its final partial chunk, there is no tail path
// for rows.
func MatMul[T vla.Floats](c, a, b []T, m, n, p int) {
	if m <= 0 || m%RowGroup != 0 {
		panic("matmul: M must be a positive multiple of RowGroup")
	}
	if n < 1 || p < 1 {
		panic("matmul: N and P must be at least 1")
	}
	if len(a) < m*n {
		panic("matmul: A slice too short")
	}
	if len(b) < n*p {
		panic("matmul: B slice too short")
	}
	if len(c) < m*p {
		panic("matmul: C slice too short")
	}

	// Negotiate the widest column chunk the unit will grant for P columns.
	vl0 := vla.Setvl[T](p)

	// Slice the output into column chunks of the granted width.
	for j := 0; j < p; j += vl0 {
		// Re-negotiate for the final partial chunk so the unit processes
		// exactly the remaining columns. No masking, no scalar tail.
		vl := vla.Setvl[T](min(p-j, vl0))

		bChunk := b[j:]
		cChunk := c[j:]

		// Iterate over the rows in groups of RowGroup.
		for i := 0; i < m; i += RowGroup {
			aGroup := a[i*n:]
			cBlock := cChunk[i*p:]

			acc := loadAccum(cBlock, p, vl)
			kernel4(&acc, cBlock, aGroup, bChunk, n, p, vl)
		}
	}
}

// MatMulFloat32 is the non-generic version for float32.
func MatMulFloat32(c, a, b []float32, m, n, p int) {
	MatMul(c, a, b, m, n, p)
}

// MatMulFloat64 is the non-generic version for float64.
func MatMulFloat64(c, a, b []float64, m, n, p int) {
	MatMul(c, a, b, m, n, p)
}
