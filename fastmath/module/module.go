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

// Package module groups the fastmath entry points under one namespace and
// calls them by name.
//
// Usage:
//
//	m := module.New()
//	v, err := m.Call("divide", 100, 2, 5)  // 10, nil
//
// A Module is immutable after New and safe for concurrent use.
package module

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-fastmath/fastmath"
)

var (
	// ErrUnknownFunction is returned by Call for a name that is not registered.
	ErrUnknownFunction = errors.New("module: unknown function")

	// ErrArity is returned by Call when a fixed-arity entry receives the
	// wrong number of arguments.
	ErrArity = errors.New("module: wrong number of arguments")
)

// Variadic is the Arity of entries that accept any number of arguments.
const Variadic = -1

// Func is the calling convention shared by every entry point.
type Func func(args ...float64) (float64, error)

// Entry describes a registered function.
type Entry struct {
	Name  string
	Doc   string
	Arity int
	Fn    Func
}

// Module is a named set of entry points.
type Module struct {
	entries map[string]Entry
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Module.
type Option func(*Module)

// WithLogger sets the logger used for call tracing. Calls are logged at
// debug level and failures at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Module) {
		m.logger = logger
	}
}

// WithMetrics records every call in metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Module) {
		m.metrics = metrics
	}
}

// New returns a Module with add, multiply, subtract, divide and pow
// registered.
func New(opts ...Option) *Module {
	m := &Module{entries: make(map[string]Entry)}
	for _, opt := range opts {
		opt(m)
	}

	m.register(Entry{
		Name:  "add",
		Doc:   "sum of all numbers",
		Arity: Variadic,
		Fn: func(args ...float64) (float64, error) {
			return fastmath.Add(args), nil
		},
	})
	m.register(Entry{
		Name:  "multiply",
		Doc:   "product of all numbers",
		Arity: Variadic,
		Fn: func(args ...float64) (float64, error) {
			return fastmath.Multiply(args), nil
		},
	})
	m.register(Entry{
		Name:  "subtract",
		Doc:   "first number minus all the others",
		Arity: Variadic,
		Fn: func(args ...float64) (float64, error) {
			return fastmath.Subtract(args)
		},
	})
	m.register(Entry{
		Name:  "divide",
		Doc:   "first number divided by all the others",
		Arity: Variadic,
		Fn: func(args ...float64) (float64, error) {
			return fastmath.Divide(args)
		},
	})
	m.register(Entry{
		Name:  "pow",
		Doc:   "base raised to exponent",
		Arity: 2,
		Fn: func(args ...float64) (float64, error) {
			return fastmath.Pow(args[0], args[1])
		},
	})
	return m
}

// register adds e, guarding fixed-arity entries so Fn is safe to call
// directly after Lookup.
func (m *Module) register(e Entry) {
	if _, ok := m.entries[e.Name]; ok {
		panic(fmt.Sprintf("module: %q registered twice", e.Name))
	}
	if e.Arity != Variadic {
		e.Fn = checkArity(e.Name, e.Arity, e.Fn)
	}
	m.entries[e.Name] = e
}

func checkArity(name string, arity int, fn Func) Func {
	return func(args ...float64) (float64, error) {
		if len(args) != arity {
			return 0, fmt.Errorf("%s: %w: got %d, want %d", name, ErrArity, len(args), arity)
		}
		return fn(args...)
	}
}

func (m *Module) log() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return slog.Default()
}

// Names returns the registered function names in sorted order.
func (m *Module) Names() []string {
	names := lo.Keys(m.entries)
	slices.Sort(names)
	return names
}

// Entries returns the registered entries sorted by name.
func (m *Module) Entries() []Entry {
	return lo.Map(m.Names(), func(name string, _ int) Entry {
		return m.entries[name]
	})
}

// Lookup returns the entry registered under name.
func (m *Module) Lookup(name string) (Entry, bool) {
	e, ok := m.entries[name]
	return e, ok
}

// Call invokes the entry registered under name with args.
func (m *Module) Call(name string, args ...float64) (float64, error) {
	e, ok := m.entries[name]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownFunction, name)
		m.log().Warn("call failed", slog.String("function", name), slog.Any("error", err))
		return 0, err
	}

	result, err := e.Fn(args...)
	m.metrics.observe(name, err)
	if err != nil {
		m.log().Warn("call failed",
			slog.String("function", name),
			slog.Any("args", args),
			slog.Any("error", err),
		)
		return 0, err
	}
	m.log().Debug("call",
		slog.String("function", name),
		slog.Any("args", args),
		slog.Float64("result", result),
	)
	return result, nil
}
