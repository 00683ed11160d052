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

package module

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ajroetker/go-fastmath/fastmath"
)

// ErrNilRegisterer is returned by NewMetrics when no registerer is given.
var ErrNilRegisterer = errors.New("module: nil registerer")

// Outcome labels recorded by Metrics.
const (
	OutcomeOK            = "ok"
	OutcomeEmptyInput    = "empty_input"
	OutcomeDivideByZero  = "divide_by_zero"
	OutcomeOverflow      = "overflow"
	OutcomeDomain        = "domain"
	OutcomeNoConvergence = "no_convergence"
	OutcomeArity         = "arity"
	OutcomeError         = "error"
)

// Metrics counts calls per function and outcome.
type Metrics struct {
	calls *prometheus.CounterVec
}

// NewMetrics registers the fastmath_calls_total counter with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}

	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fastmath",
		Name:      "calls_total",
		Help:      "Number of fastmath calls by function and outcome.",
	}, []string{"function", "outcome"})
	if err := reg.Register(calls); err != nil {
		return nil, err
	}
	return &Metrics{calls: calls}, nil
}

func (m *Metrics) observe(function string, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(function, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, fastmath.ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, fastmath.ErrDivideByZero):
		return OutcomeDivideByZero
	case errors.Is(err, fastmath.ErrOverflow):
		return OutcomeOverflow
	case errors.Is(err, fastmath.ErrDomain):
		return OutcomeDomain
	case errors.Is(err, fastmath.ErrNoConvergence):
		return OutcomeNoConvergence
	case errors.Is(err, ErrArity):
		return OutcomeArity
	default:
		return OutcomeError
	}
}
