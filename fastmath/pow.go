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

const (
	// rootTolerance is the scaled step size at which the root iteration stops.
	rootTolerance = 1e-5

	// maxRootIterations bounds the root iteration.
	maxRootIterations = 1_000_000
)

// Pow returns base raised to exponent.
//
// The exponent is split into e = floor(exponent) and frac = exponent - e.
// base^e is computed with binary exponentiation in O(log e) multiplications.
// When frac > 0, base^frac is found as the root of y^(1/frac) = base with
// Newton-Raphson, starting from y = base, until the step between successive
// iterates, scaled by 1/frac, is at most 1e-5 (relative to the iterate when
// it is below 1). The result is approximate for fractional exponents and
// exact up to rounding for integer ones.
//
// Negative exponents return the reciprocal of the positive power.
//
// Errors:
//
//	Pow(NaN, y), Pow(x, NaN)        ErrDomain
//	Pow(x, ±Inf)                    ErrDomain
//	Pow(x, y) for |y| >= 2^63       ErrDomain
//	Pow(x, y) for x < 0, y not int  ErrDomain
//	Pow(0, y) for y < 0             ErrDomain
//	iteration bound exceeded        ErrNoConvergence
//
// Special cases:
//
//	Pow(x, 0) = 1 for any non-NaN x
//	Pow(0, y) = 0 for y > 0
//	Pow(+Inf, y) = +Inf for y > 0
//	Pow(x, y) = ±Inf when |x^-y| underflows, e.g. Pow(1e-200, -2)
func Pow(base, exponent float64) (float64, error) {
	if math.IsNaN(base) || math.IsNaN(exponent) {
		return 0, fmt.Errorf("pow(%v, %v): NaN operand: %w", base, exponent, ErrDomain)
	}
	if math.IsInf(exponent, 0) {
		return 0, fmt.Errorf("pow(%v, %v): infinite exponent: %w", base, exponent, ErrDomain)
	}

	if exponent < 0 {
		if base == 0 {
			return 0, fmt.Errorf("pow(%v, %v): zero raised to a negative power: %w", base, exponent, ErrDomain)
		}
		p, err := Pow(base, -exponent)
		if err != nil {
			return 0, err
		}
		// An underflowed p yields a signed infinity, as for overflow of
		// positive powers.
		return 1 / p, nil
	}

	e := math.Floor(exponent)
	frac := exponent - e
	if e >= math.MaxInt64 {
		return 0, fmt.Errorf("pow(%v, %v): exponent out of range: %w", base, exponent, ErrDomain)
	}

	result := powInt(base, int64(e))
	if frac == 0 {
		return result, nil
	}

	switch {
	case base < 0:
		return 0, fmt.Errorf("pow(%v, %v): negative base with fractional exponent: %w", base, exponent, ErrDomain)
	case base == 0:
		return 0, nil
	case math.IsInf(base, 1):
		return math.Inf(1), nil
	}

	x, err := fracRoot(base, 1/frac)
	if err != nil {
		return 0, fmt.Errorf("pow(%v, %v): %w", base, exponent, err)
	}
	return result * x, nil
}

// powInt computes base^n for n >= 0 by binary exponentiation.
func powInt(base float64, n int64) float64 {
	result := 1.0
	b := base
	for i := n; i > 0; i /= 2 {
		if i%2 == 1 {
			result *= b
		}
		b *= b
	}
	return result
}

// fracRoot solves y^root = base for y with Newton-Raphson, starting at base.
// base must be positive and finite, root greater than 1.
//
// The step is scaled by root before comparing against rootTolerance: for
// large roots the raw step is tiny even far from the solution. Below 1 the
// tolerance is relative to the iterate.
func fracRoot(base, root float64) (float64, error) {
	x := base
	restarted := false
	for i := range maxRootIterations {
		y := x
		x = newtonStep(base, root, y)
		if math.IsInf(x, 1) && base < 1 && !restarted {
			// y^(root-1) underflowed below the root. 1 lies above the root
			// of any base < 1, and Newton descends monotonically from there.
			x = 1
			restarted = true
			continue
		}
		if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
			return 0, fmt.Errorf("root %v of %v: iterate left the domain: %w", root, base, ErrNoConvergence)
		}
		if math.Abs(y-x)*root <= rootTolerance*math.Min(1, x) {
			return x, nil
		}
		// After the first step the iterates decrease monotonically; a
		// non-decreasing step means rounding has reached a fixed point.
		if i > 0 && x >= y {
			if math.Abs(math.Pow(y, root)/base-1) <= rootTolerance {
				return y, nil
			}
			return 0, fmt.Errorf("root %v of %v: stalled at %v: %w", root, base, y, ErrNoConvergence)
		}
	}
	return 0, fmt.Errorf("root %v of %v: no convergence after %d steps: %w", root, base, maxRootIterations, ErrNoConvergence)
}
