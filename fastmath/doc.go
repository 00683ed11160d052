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

// Package fastmath provides scalar arithmetic reductions and a real-valued
// power function with fractional exponents.
//
// # Reductions
//
// Add and Multiply fold a slice with the identity as seed, so empty input is
// valid. Subtract and Divide seed the fold with the first element and return
// ErrEmptyInput for an empty slice:
//
//	fastmath.Add([]float64{1, 2, 3})             // 6
//	fastmath.Subtract([]float64{10, 2, 3})       // 5, nil
//	fastmath.Divide([]float64{100, 2, 5})        // 10, nil
//	fastmath.Divide([]float64{10, 0, 5})         // 0, ErrDivideByZero
//
// # Power
//
// Pow splits the exponent into an integer and a fractional part. The integer
// part is computed with binary exponentiation and the fractional part with a
// Newton-Raphson root iteration to a fixed step tolerance of 1e-5:
//
//	fastmath.Pow(2, 10)      // 1024, nil
//	fastmath.Pow(4, 0.5)     // ~2, nil
//	fastmath.Pow(-8, 1.0/3)  // 0, ErrDomain
//
// # Dispatch
//
// The Newton step uses fused multiply-add when the CPU provides it. Set
// FASTMATH_NO_FMA=1 to force the plain multiply and add. CurrentName reports
// the selected path.
//
// All functions are pure and safe for concurrent use.
package fastmath
