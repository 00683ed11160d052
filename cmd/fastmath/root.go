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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-fastmath/fastmath"
	"github.com/ajroetker/go-fastmath/fastmath/module"
)

type options struct {
	verbose bool
	metrics bool
}

// newRootCmd builds the command tree. Every registered module entry becomes
// a sub-command.
func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, error) {
	var opts options

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	reg := prometheus.NewRegistry()
	metrics, err := module.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	mod := module.New(module.WithLogger(logger), module.WithMetrics(metrics))

	root := &cobra.Command{
		Use:          "fastmath",
		Short:        "Scalar arithmetic reductions and fractional powers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every call to stderr")
	root.PersistentFlags().BoolVar(&opts.metrics, "metrics", false, "print call counters after the command")

	// Reported from the call commands themselves: cobra skips post-run
	// hooks when RunE fails, and failed calls are counted too.
	report := func(w io.Writer) error {
		if !opts.metrics {
			return nil
		}
		return writeMetrics(w, reg)
	}
	for _, e := range mod.Entries() {
		root.AddCommand(newCallCmd(mod, e, report))
	}
	root.AddCommand(newListCmd(mod), newInfoCmd())
	return root, nil
}

func newCallCmd(mod *module.Module, e module.Entry, report func(io.Writer) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   e.Name + " [numbers...]",
		Short: e.Doc,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if rerr := report(cmd.OutOrStdout()); err == nil {
					err = rerr
				}
			}()

			nums, err := parseNumbers(args)
			if err != nil {
				return err
			}
			v, err := mod.Call(e.Name, nums...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}
	if e.Arity != module.Variadic {
		cmd.Args = cobra.ExactArgs(e.Arity)
	}
	if e.Name == "pow" {
		cmd.Use = "pow base exponent"
	}
	return cmd
}

func newListCmd(mod *module.Module) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tARITY\tDESCRIPTION")
			for _, e := range mod.Entries() {
				arity := "variadic"
				if e.Arity != module.Variadic {
					arity = strconv.Itoa(e.Arity)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, arity, e.Doc)
			}
			return w.Flush()
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the arithmetic dispatch level",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dispatch: %s\n", fastmath.CurrentName())
		},
	}
}

func parseNumbers(args []string) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not a number", i+1, arg)
		}
		nums[i] = v
	}
	return nums, nil
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}
