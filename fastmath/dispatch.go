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
	"math"
	"os"
	"strconv"
)

// DispatchLevel represents the arithmetic path used by the Newton step of Pow.
type DispatchLevel int

const (
	// DispatchScalar indicates a separate multiply and add.
	DispatchScalar DispatchLevel = iota

	// DispatchFMA indicates fused multiply-add (single rounding).
	DispatchFMA
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchFMA:
		return "fma"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// newtonStep computes one Newton-Raphson update for y^root = base.
// Set by init() in dispatch_*.go files.
var newtonStep = newtonStepScalar

// CurrentLevel returns the arithmetic path being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current level.
// For example: "fma", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoFMAEnv checks if the FASTMATH_NO_FMA environment variable is set.
// When set, the plain multiply-add step is used regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoFMAEnv() bool {
	val := os.Getenv("FASTMATH_NO_FMA")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setLevel installs the Newton step matching level.
func setLevel(level DispatchLevel) {
	currentLevel = level
	switch level {
	case DispatchFMA:
		newtonStep = newtonStepFMA
	default:
		newtonStep = newtonStepScalar
	}
}

// newtonStepScalar evaluates (1/root) * ((root-1)*y + base/y^(root-1)).
func newtonStepScalar(base, root, y float64) float64 {
	return (1 / root) * ((root-1)*y + base/math.Pow(y, root-1))
}

// newtonStepFMA is newtonStepScalar with the inner product fused.
func newtonStepFMA(base, root, y float64) float64 {
	return (1 / root) * math.FMA(root-1, y, base/math.Pow(y, root-1))
}
