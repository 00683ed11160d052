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
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fastmath/fastmath"
)

func TestNames(t *testing.T) {
	m := New()
	want := []string{"add", "divide", "multiply", "pow", "subtract"}
	if diff := cmp.Diff(want, m.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries(t *testing.T) {
	entries := New().Entries()
	require.Len(t, entries, 5)

	arity := make(map[string]int)
	for _, e := range entries {
		assert.NotEmpty(t, e.Doc, e.Name)
		assert.NotNil(t, e.Fn, e.Name)
		arity[e.Name] = e.Arity
	}
	assert.Equal(t, map[string]int{
		"add":      Variadic,
		"multiply": Variadic,
		"subtract": Variadic,
		"divide":   Variadic,
		"pow":      2,
	}, arity)
}

func TestLookup(t *testing.T) {
	m := New()

	e, ok := m.Lookup("pow")
	require.True(t, ok)
	assert.Equal(t, "pow", e.Name)

	_, ok = m.Lookup("sqrt")
	assert.False(t, ok)
}

func TestCall(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		args []float64
		want float64
	}{
		{"add", "add", []float64{1, 2, 3}, 6},
		{"add empty", "add", nil, 0},
		{"multiply", "multiply", []float64{2, 3, 4}, 24},
		{"multiply empty", "multiply", nil, 1},
		{"subtract", "subtract", []float64{10, 2, 3}, 5},
		{"divide", "divide", []float64{100, 2, 5}, 10},
		{"pow", "pow", []float64{2, 10}, 1024},
	}

	m := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Call(tt.fn, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCall_Errors(t *testing.T) {
	tests := []struct {
		name string
		fn   string
		args []float64
		want error
	}{
		{"unknown", "sqrt", []float64{4}, ErrUnknownFunction},
		{"pow one arg", "pow", []float64{2}, ErrArity},
		{"pow three args", "pow", []float64{2, 3, 4}, ErrArity},
		{"divide by zero", "divide", []float64{10, 0, 5}, fastmath.ErrDivideByZero},
		{"subtract empty", "subtract", nil, fastmath.ErrEmptyInput},
		{"pow domain", "pow", []float64{-8, 0.5}, fastmath.ErrDomain},
	}

	m := New(WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Call(tt.fn, tt.args...)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, got)
		})
	}
}

func TestLookup_FixedArityFn(t *testing.T) {
	e, ok := New().Lookup("pow")
	require.True(t, ok)

	var (
		got float64
		err error
	)
	require.NotPanics(t, func() { got, err = e.Fn(2) })
	assert.ErrorIs(t, err, ErrArity)
	assert.Zero(t, got)

	got, err = e.Fn(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)
}

func TestCall_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := New(WithLogger(logger))

	_, err := m.Call("add", 1, 2)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "function=add")
	assert.Contains(t, buf.String(), "result=3")

	buf.Reset()
	_, err = m.Call("divide", 1, 0)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "function=divide")
}

func TestCall_Concurrent(t *testing.T) {
	m := New()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := m.Call("multiply", 2, float64(i))
			assert.NoError(t, err)
			assert.Equal(t, 2*float64(i), got)
		}()
	}
	wg.Wait()
}
