// Package config defines the validated run configuration shared by
// the CLI and the driver, mirroring the field set of
// original_source/girg_generator/src/args.rs expanded to the full
// configuration object described in spec.md §6.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/girgraph/girg/backend/gpu"
)

// ErrDeviceUnavailable marks the one configuration error that maps to
// a device-acquisition failure (exit code 2) rather than a plain
// configuration failure (exit code 1): this software-simulated GPU
// backend can't honor on-demand weight/position computation above
// backend/gpu.MaxDims, the same capability ceiling a real multi-GPU
// deployment would hit acquiring a device that doesn't support it.
var ErrDeviceUnavailable = errors.New("config: requested device capability unavailable")

// Generator selects which backend drives a run.
type Generator string

const (
	GeneratorCPU Generator = "cpu"
	GeneratorGPU Generator = "gpu"
)

// RandomMode controls whether a worker pregenerates every vertex's
// weight and position up front or computes them on demand per edge.
type RandomMode string

const (
	RandomModePregenerate RandomMode = "pregenerate"
	RandomModeOnDemand    RandomMode = "on_demand"
)

// Config is the complete, validated configuration for one generation
// run.
type Config struct {
	Generator  Generator
	RandomMode RandomMode
	Workers    int
	TileSize   uint64
	Vertices   uint64
	Alpha      float32
	Beta       float32
	XMin       float32
	Dimensions int
	ShardCount int
	ShardIndex int
	Device     int
	Blocks     uint32
	Seeds      []uint64

	EdgeBufferSize uint64

	OutputEdgesCSV            string
	OutputEdgesParquet        string
	OutputWeights             string
	OutputPositions           string
	OutputDegreesCSV          string
	OutputDegreesTxt          string
	OutputDegreesDistribution string
}

// Defaults returns a Config with every spec.md §6 default applied.
// Generator has no default and must be set by the caller.
func Defaults() Config {
	return Config{
		RandomMode:     RandomModePregenerate,
		Workers:        1,
		TileSize:       1000,
		Vertices:       1_000_000,
		Alpha:          1.5,
		Beta:           1.5,
		XMin:           1.0,
		Dimensions:     2,
		ShardCount:     1,
		ShardIndex:     0,
		Device:         0,
		EdgeBufferSize: 1024,
	}
}

// Validate checks every invariant spec.md §6/§7 assigns to
// configuration errors: the class of mistakes that must be caught at
// startup, before any generation work begins.
func (c Config) Validate() error {
	if c.Generator != GeneratorCPU && c.Generator != GeneratorGPU {
		return fmt.Errorf("config: generator must be %q or %q, got %q", GeneratorCPU, GeneratorGPU, c.Generator)
	}
	if c.RandomMode != RandomModePregenerate && c.RandomMode != RandomModeOnDemand {
		return fmt.Errorf("config: random_mode must be %q or %q, got %q", RandomModePregenerate, RandomModeOnDemand, c.RandomMode)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1, got %d", c.Workers)
	}
	if c.TileSize == 0 {
		return fmt.Errorf("config: tile_size must be > 0")
	}
	if c.Vertices == 0 {
		return fmt.Errorf("config: vertices must be > 0")
	}
	if !(c.Alpha > 0) && !math.IsInf(float64(c.Alpha), 1) {
		return fmt.Errorf("config: alpha must be > 0 or +Inf, got %v", c.Alpha)
	}
	if c.Beta <= 0 {
		return fmt.Errorf("config: beta must be > 0, got %v", c.Beta)
	}
	if c.XMin <= 0 {
		return fmt.Errorf("config: x_min must be > 0, got %v", c.XMin)
	}
	if c.Dimensions < 1 {
		return fmt.Errorf("config: dimensions must be >= 1, got %d", c.Dimensions)
	}
	if c.ShardCount < 1 {
		return fmt.Errorf("config: shard_count must be >= 1, got %d", c.ShardCount)
	}
	if c.ShardIndex < 0 || c.ShardIndex >= c.ShardCount {
		return fmt.Errorf("config: shard_index %d must be in [0, shard_count=%d)", c.ShardIndex, c.ShardCount)
	}
	if c.EdgeBufferSize == 0 {
		return fmt.Errorf("config: edge_buffer_size must be > 0")
	}
	if c.Seeds != nil && len(c.Seeds) != c.Dimensions+2 {
		return fmt.Errorf("config: seeds must have length dimensions+2=%d, got %d", c.Dimensions+2, len(c.Seeds))
	}
	if c.Generator == GeneratorGPU && c.RandomMode == RandomModeOnDemand && c.Dimensions > gpu.MaxDims {
		return fmt.Errorf("config: on-demand GPU computation requires dimensions <= %d, got %d: %w", gpu.MaxDims, c.Dimensions, ErrDeviceUnavailable)
	}
	if c.OutputEdgesParquet != "" {
		return fmt.Errorf("config: --output-edges-parquet is not supported in this build")
	}
	return nil
}
