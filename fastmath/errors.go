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

import "errors"

var (
	// ErrEmptyInput is returned by reductions that seed from the first
	// element when given an empty slice.
	ErrEmptyInput = errors.New("fastmath: empty input")

	// ErrDivideByZero is the absent-result signal of Divide.
	ErrDivideByZero = errors.New("fastmath: division by zero")

	// ErrOverflow is returned by Divide when a quotient of finite operands
	// is not finite.
	ErrOverflow = errors.New("fastmath: result overflows")

	// ErrDomain is returned by Pow for operands outside its domain.
	ErrDomain = errors.New("fastmath: argument out of domain")

	// ErrNoConvergence is returned by Pow when the root iteration does not
	// settle within its iteration bound.
	ErrNoConvergence = errors.New("fastmath: root iteration did not converge")
)
