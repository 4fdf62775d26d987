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

import (
	"runtime"

	"github.com/ajroetker/go-vla/vla"
	"github.com/ajroetker/go-vla/vla/contrib/workerpool"
)

// MinParallelOps is the M*N*P product below which the sequential kernel is
// used; goroutine overhead dominates under it.
const MinParallelOps = 64 * 64 * 64

// ParallelMatMul computes C += A * B across multiple goroutines by
// splitting M into bands of whole row groups, one disjoint band per
// worker. Each band runs the same driver as MatMul on its own rows, so
// the result is identical to the sequential kernel; the kernel's contract
// (disjoint row-group, column-chunk sub-blocks per call) makes the bands
// safe to run concurrently without synchronization.
//
// Preconditions are those of MatMul.
func ParallelMatMul[T vla.Floats](c, a, b []T, m, n, p int) {
	if m*n*p < MinParallelOps {
		MatMul(c, a, b, m, n, p)
		return
	}

	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	ParallelMatMulWithPool(pool, c, a, b, m, n, p)
}

// ParallelMatMulWithPool is ParallelMatMul on a caller-owned pool, for
// callers that invoke the kernel many times and want to amortize worker
// spawning.
func ParallelMatMulWithPool[T vla.Floats](pool *workerpool.Pool, c, a, b []T, m, n, p int) {
	if m <= 0 || m%RowGroup != 0 {
		panic("matmul: M must be a positive multiple of RowGroup")
	}

	numGroups := m / RowGroup

	pool.ParallelFor(numGroups, func(start, end int) {
		rowStart := start * RowGroup
		rows := (end - start) * RowGroup

		// Each band is a standalone matmul over its own rows of A and C.
		MatMul(c[rowStart*p:], a[rowStart*n:], b, rows, n, p)
	})
}
