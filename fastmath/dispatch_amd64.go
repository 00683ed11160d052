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

//go:build amd64

package fastmath

import "golang.org/x/sys/cpu"

func init() {
	// Check if FMA is disabled via environment variable
	if NoFMAEnv() {
		setLevel(DispatchScalar)
		return
	}

	// FMA3 ships with AVX2 on Haswell+ and Piledriver+; it is a separate
	// CPUID bit, so check it directly.
	if cpu.X86.HasFMA {
		setLevel(DispatchFMA)
		return
	}
	setLevel(DispatchScalar)
}
