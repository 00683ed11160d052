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

package fastmath

import (
	"fmt"
	"math"
)

// Add returns the sum of all elements of v, accumulated in slice order.
//
// Returns 0 if the slice is empty.
//
// Example:
//
//	data := []float64{1, 2, 3, 4}
//	result := Add(data)  // 1 + 2 + 3 + 4 = 10
func Add[T Floats](v []T) T {
	var sum T
	for _, x := range v {
		sum += x
	}
	return sum
}

// Multiply returns the product of all elements of v, accumulated in slice
// order.
//
// Returns 1 if the slice is empty.
//
// Example:
//
//	data := []float64{2, 3, 4}
//	result := Multiply(data)  // 24
func Multiply[T Floats](v []T) T {
	product := T(1)
	for _, x := range v {
		product *= x
	}
	return product
}

// Subtract returns the first element minus every following element,
// applied left to right: ((v[0] - v[1]) - v[2]) - ...
//
// Returns ErrEmptyInput if the slice is empty.
//
// Example:
//
//	data := []float64{10, 2, 3}
//	result, err := Subtract(data)  // 5, nil
func Subtract[T Floats](v []T) (T, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("subtract: %w", ErrEmptyInput)
	}
	acc := v[0]
	for _, x := range v[1:] {
		acc -= x
	}
	return acc, nil
}

// Divide returns the first element divided by every following element,
// applied left to right: ((v[0] / v[1]) / v[2]) / ...
//
// Returns ErrEmptyInput if the slice is empty. If any divisor is exactly
// zero the fold stops and ErrDivideByZero is returned; no infinity or NaN is
// produced. A quotient of finite operands that leaves the finite range
// returns ErrOverflow.
//
// Example:
//
//	Divide([]float64{100, 2, 5})  // 10, nil
//	Divide([]float64{10, 0, 5})   // 0, ErrDivideByZero
func Divide[T Floats](v []T) (T, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("divide: %w", ErrEmptyInput)
	}
	acc := v[0]
	for i := 1; i < len(v); i++ {
		d := v[i]
		if d == 0 {
			return 0, fmt.Errorf("divide: divisor at index %d: %w", i, ErrDivideByZero)
		}
		q := acc / d
		if isFinite(acc) && isFinite(d) && !isFinite(q) {
			return 0, fmt.Errorf("divide: %v / %v at index %d: %w", acc, d, i, ErrOverflow)
		}
		acc = q
	}
	return acc, nil
}

func isFinite[T Floats](x T) bool {
	f := float64(x)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
