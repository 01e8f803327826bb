// Command girggen generates a Geometric Inhomogeneous Random Graph
// from the command line: parse flags into a config.Config, build a
// driver.Driver, run it, and write every requested output sink.
//
// Usage:
//
//	girggen --vertices 1000000 --dimensions 2 --alpha 1.5 \
//	    --output-edges-csv edges.csv --output-degrees-csv degrees.csv
//
// Ported from original_source/girg_generator/src/main.rs's argument
// handling, restructured around a cobra.Command the way
// cmd/hwygen/main.go structures its own single-command flag set.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/girgraph/girg/config"
	"github.com/girgraph/girg/degree"
	"github.com/girgraph/girg/driver"
	"github.com/girgraph/girg/internal/cpuinfo"
)

// exitCode mirrors spec.md/SPEC_FULL.md §6: 0 success, 1 configuration
// failure, 2 device-acquisition failure, 3 sink I/O failure.
type exitCode int

const (
	exitSuccess exitCode = 0
	exitConfig  exitCode = 1
	exitDevice  exitCode = 2
	exitSinkIO  exitCode = 3
)

func main() {
	os.Exit(int(run(os.Args[1:])))
}

func run(args []string) exitCode {
	var (
		cfg       = config.Defaults()
		generator string
		randMode  string
		seedsCSV  string
	)

	var outEdgesParquet string

	cmd := &cobra.Command{
		Use:           "girggen",
		Short:         "Generate a Geometric Inhomogeneous Random Graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Generator = config.Generator(generator)
			cfg.RandomMode = config.RandomMode(randMode)
			cfg.OutputEdgesParquet = outEdgesParquet

			if seedsCSV != "" {
				seeds, err := parseSeeds(seedsCSV)
				if err != nil {
					return fmt.Errorf("--seeds: %w", err)
				}
				cfg.Seeds = seeds
			}

			return execute(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&generator, "generator", "cpu", `backend: "cpu" or "gpu"`)
	fs.StringVar(&randMode, "random-mode", string(config.RandomModePregenerate), `"pregenerate" or "on_demand"`)
	fs.IntVar(&cfg.Workers, "workers", cpuinfo.DefaultWorkers(), "worker goroutine count")
	fs.Uint64Var(&cfg.TileSize, "tile-size", cfg.TileSize, "tile edge length in vertices")
	fs.Uint64Var(&cfg.Vertices, "vertices", cfg.Vertices, "number of vertices")
	fs.Float32Var(&cfg.Alpha, "alpha", cfg.Alpha, "edge-probability temperature (+Inf for the threshold model)")
	fs.Float32Var(&cfg.Beta, "beta", cfg.Beta, "Pareto shape parameter")
	fs.Float32Var(&cfg.XMin, "x-min", cfg.XMin, "Pareto minimum weight")
	fs.IntVar(&cfg.Dimensions, "dimensions", cfg.Dimensions, "number of geometric dimensions")
	fs.IntVar(&cfg.ShardCount, "shard-count", cfg.ShardCount, "number of shards this run is one of")
	fs.IntVar(&cfg.ShardIndex, "shard-index", cfg.ShardIndex, "this run's shard index (0-based)")
	fs.IntVar(&cfg.Device, "device", cfg.Device, "simulated GPU device index")
	fs.Uint32Var(&cfg.Blocks, "blocks", cfg.Blocks, "simulated GPU block count")
	fs.StringVar(&seedsCSV, "seeds", "", "comma-separated explicit seed list (overrides random seed generation)")
	fs.Uint64Var(&cfg.EdgeBufferSize, "edge-buffer-size", cfg.EdgeBufferSize, "per-tile edge batch capacity")
	fs.StringVar(&cfg.OutputEdgesCSV, "output-edges-csv", "", "path to write the edge list as CSV")
	fs.StringVar(&outEdgesParquet, "output-edges-parquet", "", "(unsupported) path to write the edge list as Parquet")
	fs.StringVar(&cfg.OutputWeights, "output-weights", "", "path to write vertex weights, one per line")
	fs.StringVar(&cfg.OutputPositions, "output-positions", "", "path to write vertex positions as CSV")
	fs.StringVar(&cfg.OutputDegreesCSV, "output-degrees-csv", "", "path to write per-vertex degrees as CSV")
	fs.StringVar(&cfg.OutputDegreesTxt, "output-degrees-txt", "", "path to write per-vertex degrees as plain text")
	fs.StringVar(&cfg.OutputDegreesDistribution, "output-degrees-distribution", "", "path to write the complementary degree CDF")

	cmd.SetArgs(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	cmd.SetContext(ctx)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "girggen: %v\n", err)
		var ce *configError
		var de *deviceError
		var se *sinkError
		switch {
		case errors.As(err, &ce):
			return exitConfig
		case errors.As(err, &de):
			return exitDevice
		case errors.As(err, &se):
			return exitSinkIO
		default:
			return exitConfig
		}
	}
	return exitSuccess
}

func parseSeeds(csv string) ([]uint64, error) {
	parts := strings.Split(csv, ",")
	seeds := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", p, err)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

type deviceError struct{ err error }

func (e *deviceError) Error() string { return e.err.Error() }
func (e *deviceError) Unwrap() error { return e.err }

type sinkError struct{ err error }

func (e *sinkError) Error() string { return e.err.Error() }
func (e *sinkError) Unwrap() error { return e.err }

func execute(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrDeviceUnavailable) {
			return &deviceError{err}
		}
		return &configError{err}
	}

	fmt.Fprintf(os.Stderr, "girggen: %s\n", cpuinfo.Summary())

	d, err := driver.New(cfg)
	if err != nil {
		return &configError{err}
	}
	fmt.Fprintf(os.Stderr, "girggen: seeds=%v\n", d.Params.SeedsView().Raw())

	sinks, closeSinks, err := buildSinks(cfg)
	if err != nil {
		return &sinkError{err}
	}
	defer closeSinks()

	d.EdgeSink = sinks
	if cfg.OutputDegreesCSV != "" || cfg.OutputDegreesTxt != "" || cfg.OutputDegreesDistribution != "" {
		d.Degrees = degree.New(cfg.Vertices)
	}

	result, err := d.Run(ctx)
	if err != nil {
		return &sinkError{fmt.Errorf("generation failed: %w", err)}
	}

	fmt.Fprintf(os.Stderr, "girggen: generated %d edges over %d vertices\n", result.EdgeCount, cfg.Vertices)

	if err := writeParamOutputs(cfg, d); err != nil {
		return &sinkError{err}
	}
	if result.Degrees != nil {
		if err := writeDegreeOutputs(cfg, result.Degrees); err != nil {
			return &sinkError{err}
		}
	}
	return nil
}

