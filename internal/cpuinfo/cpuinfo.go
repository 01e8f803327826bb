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

// Package cpuinfo reports host CPU capability for log output and picks
// the default worker count. It is adapted from the
// teacher's hwy.DispatchLevel detection, trimmed to the fields this
// generator actually consults.
package cpuinfo

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Level names a broad CPU vectorization tier. Unlike the teacher's
// hwy.DispatchLevel, the GIRG probability kernel is scalar throughout
// (its hot loop is hash evaluation, not vector arithmetic), so Level is
// advisory only: it is surfaced in logs, never used to select a code
// path or to size the default worker count.
type Level int

const (
	// LevelBaseline means no vector-width information is available.
	LevelBaseline Level = iota
	// LevelAVX2 means the host advertises AVX2 (256-bit) support.
	LevelAVX2
	// LevelAVX512 means the host advertises AVX-512 (512-bit) support.
	LevelAVX512
	// LevelNEON means the host advertises ARM NEON (128-bit) support.
	LevelNEON
)

func (l Level) String() string {
	switch l {
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "baseline"
	}
}

// detected is populated by the build-tagged init() in
// cpuinfo_amd64.go / cpuinfo_arm64.go / cpuinfo_other.go.
var detected Level

// Detected returns the CPU vectorization tier seen at process start.
func Detected() Level {
	return detected
}

// NoAutoTuneEnv reports whether GIRG_NO_AUTOTUNE is set, which makes
// DefaultWorkers return a single worker instead of runtime.NumCPU().
// Mirrors the teacher's HWY_NO_SIMD escape
// hatch for deterministic benchmarking and CI.
func NoAutoTuneEnv() bool {
	v := os.Getenv("GIRG_NO_AUTOTUNE")
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}

// DefaultWorkers returns a reasonable default worker count for the CPU
// backend: all logical CPUs, unless GIRG_NO_AUTOTUNE forces a
// conservative single-core default for reproducible benchmarking.
func DefaultWorkers() int {
	if NoAutoTuneEnv() {
		return 1
	}
	return runtime.NumCPU()
}

// Summary returns a one-line human-readable capability banner, logged
// by cmd/girggen at startup.
func Summary() string {
	return fmt.Sprintf("cpu=%s cores=%d goos=%s goarch=%s", detected, runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)
}
