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

import "math"

// matmulScalar is the pure Go scalar implementation: C += A * B with a
// fused multiply-add per reduction step, accumulating in ascending k order
// per element. It produces bit-identical results to MatMul and is kept for
// reference and benchmarking.
func matmulScalar(c, a, b []float64, m, n, p int) {
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			sum := c[i*p+j]
			for k := 0; k < n; k++ {
				sum = math.FMA(a[i*n+k], b[k*p+j], sum)
			}
			c[i*p+j] = sum
		}
	}
}
