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

// accum holds the running partial sums for one row group by one column
// chunk: one vector per row. Its lifetime is a single driver iteration;
// it is primed by loadAccum and retired by kernel4's store-back.
type accum[T vla.Floats] [RowGroup]vla.Vec[T]

// loadAccum primes the accumulators with the existing values of a
// RowGroup x vl block of C, one row per accumulator, advancing by the row
// stride between loads. C is read exactly once per block, here.
func loadAccum[T vla.Floats](c []T, stride, vl int) accum[T] {
	var acc accum[T]
	off := 0
	for i := range acc {
		acc[i] = vla.LoadN(c[off:], vl)
		off += stride
	}
	return acc
}

// kernel4 streams one RowGroup-row block of A against one vl-wide column
// chunk of B across the full reduction dimension n, then stores the
// finished accumulators back to C.
//
//	acc[i] += A[row i][k] * B[k][0:vl]   for k = 0..n-1, in ascending k
//
// a points at the row-group base (row stride n), b at the column-chunk
// base (row stride p), c at the output block base (row stride p).
//
// The loop is software pipelined with two B-row slots: each step fuses
// multiply-adds on the vector and scalars loaded on the previous step
// while loading the next step's B row and A scalars. Two reduction steps
// are processed per iteration, and the loop exits as soon as the final
// step's data has been loaded, so no load beyond row n-1 or column n-1 is
// issued whether n is even or odd. The final multiply-adds consume the
// slot that was not cycled into a new load.
func kernel4[T vla.Floats](acc *accum[T], c, a, b []T, n, p, vl int) {
	// Prefetch the first row of B and the first scalar of each A row.
	bEven := vla.LoadN(b, vl)
	t0 := a[0]
	t1 := a[n]
	t2 := a[2*n]
	t3 := a[3*n]

	bLast := bEven
	var bOdd vla.Vec[T]

	k := 0
	for k < n-1 {
		// Load the next row of B into the odd slot.
		bOdd = vla.LoadN(b[(k+1)*p:], vl)

		// Multiply-accumulate the even slot, reloading each scalar for
		// the next step right after it is consumed.
		col := k + 1
		acc[0] = vla.MulAdd(vla.BroadcastN(t0, vl), bEven, acc[0])
		t0 = a[col]
		acc[1] = vla.MulAdd(vla.BroadcastN(t1, vl), bEven, acc[1])
		t1 = a[n+col]
		acc[2] = vla.MulAdd(vla.BroadcastN(t2, vl), bEven, acc[2])
		t2 = a[2*n+col]
		acc[3] = vla.MulAdd(vla.BroadcastN(t3, vl), bEven, acc[3])
		t3 = a[3*n+col]
		k++

		if k == n-1 {
			bLast = bOdd
			break
		}

		// Load the next row of B into the even slot.
		bEven = vla.LoadN(b[(k+1)*p:], vl)

		// Multiply-accumulate the odd slot.
		col = k + 1
		acc[0] = vla.MulAdd(vla.BroadcastN(t0, vl), bOdd, acc[0])
		t0 = a[col]
		acc[1] = vla.MulAdd(vla.BroadcastN(t1, vl), bOdd, acc[1])
		t1 = a[n+col]
		acc[2] = vla.MulAdd(vla.BroadcastN(t2, vl), bOdd, acc[2])
		t2 = a[2*n+col]
		acc[3] = vla.MulAdd(vla.BroadcastN(t3, vl), bOdd, acc[3])
		t3 = a[3*n+col]
		k++

		bLast = bEven
	}

	// Last step: fold in the held-back pair and store the results.
	acc[0] = vla.MulAdd(vla.BroadcastN(t0, vl), bLast, acc[0])
	acc[0].Store(c)
	acc[1] = vla.MulAdd(vla.BroadcastN(t1, vl), bLast, acc[1])
	acc[1].Store(c[p:])
	acc[2] = vla.MulAdd(vla.BroadcastN(t2, vl), bLast, acc[2])
	acc[2].Store(c[2*p:])
	acc[3] = vla.MulAdd(vla.BroadcastN(t3, vl), bLast, acc[3])
	acc[3].Store(c[3*p:])
}
