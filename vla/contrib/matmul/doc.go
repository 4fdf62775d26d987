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

// Package matmul provides a dense matrix-multiplication microkernel built
// on vector-length negotiation.
//
// MatMul accumulates into its output: C += A * B for row-major matrices
// A (MxN), B (NxP), C (MxP). The output-column dimension is tiled by the
// vector length granted by vla.Setvl, with the final partial chunk handled
// by re-negotiating the remaining column count instead of masking. Rows are
// processed in fixed groups of RowGroup, each group's partial sums held in
// vector accumulators across the entire reduction dimension.
//
// The inner reduction is software pipelined: the B row vector and the four
// A scalars for the next step are loaded while the fused multiply-adds for
// the current step execute, with a two-slot buffer cycling the B rows so
// that no load past the last reduction step is ever issued.
//
// Example usage:
//
//	// C += A * B where A is MxN, B is NxP, C is MxP
//	a := make([]float64, M*N) // row-major
//	b := make([]float64, N*P) // row-major
//	c := make([]float64, M*P) // holds the additive base, row-major
//
//	matmul.MatMul(c, a, b, M, N, P)
//
// M must be a positive multiple of RowGroup; the row loop does not clamp.
package matmul
