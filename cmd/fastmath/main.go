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

// Command fastmath evaluates the fastmath functions from the command line.
//
// Usage:
//
//	fastmath add 1 2 3              # 6
//	fastmath divide 100 2 5         # 10
//	fastmath subtract -- 10 -2      # 12 (negative operands after --)
//	fastmath pow 8 0.3333333333     # ~2
//	fastmath list                   # registered functions
//	fastmath info                   # dispatch level
//
// Flags:
//
//	--verbose   log every call to stderr
//	--metrics   print call counters in Prometheus text format after the command
//
// Errors (empty input, division by zero, domain errors) exit with status 1.
package main

import (
	"fmt"
	"os"
)

func main() {
	root, err := newRootCmd(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
