// Package driver orchestrates one complete generation run: construct
// parameters, build the pipeline, spawn the tile producer and backend
// workers, drain the edge and finished queues, and report the result.
//
// Ported from the orchestration in
// original_source/girg_generator/src/main.rs, using errgroup.Group in
// place of a raw Vec<JoinHandle<()>>.
package driver

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	backendcpu "github.com/girgraph/girg/backend/cpu"
	backendgpu "github.com/girgraph/girg/backend/gpu"
	"github.com/girgraph/girg/config"
	"github.com/girgraph/girg/degree"
	"github.com/girgraph/girg/dist"
	"github.com/girgraph/girg/params"
	"github.com/girgraph/girg/pipeline"
	"github.com/girgraph/girg/tiling"
)

// EdgeSink receives every batch of accepted edges as the driver drains
// the edge queue — the hook a CLI wires to sink.EdgeWriter (and/or a
// future Parquet writer).
type EdgeSink interface {
	WriteBatch(batch []tiling.Edge) error
}

// Result summarizes a completed run: the total edge count and the
// in-core degree accumulator, if one was requested.
type Result struct {
	EdgeCount uint64
	Degrees   *degree.Accumulator
}

// Driver holds everything needed to run and drain one generation.
//
// The edges it drains form a directed stream, not an undirected edge
// set: the backends evaluate every cell of the V×V square, so (i,j) and
// (j,i) are separate candidates and self-loops (i,i) are kept. Nothing
// here deduplicates or filters them.
type Driver struct {
	Config config.Config
	Params *params.Params

	// EdgeSink is optional; when nil, edges are still counted and fed
	// to Degrees (if set) but not persisted.
	EdgeSink EdgeSink
	// Degrees is optional; when nil, no in-core degree accumulation
	// happens.
	Degrees *degree.Accumulator
}

// New builds a Params from cfg (generating a fresh seed vector unless
// cfg.Seeds is set) and a Driver ready to Run.
func New(cfg config.Config) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pareto := dist.Pareto{XMin: cfg.XMin, Beta: cfg.Beta}
	pregenerate := cfg.RandomMode == config.RandomModePregenerate

	var p *params.Params
	var err error
	if cfg.Seeds != nil {
		p, err = params.FromSeeds(cfg.Dimensions, pareto, cfg.Alpha, cfg.Vertices, cfg.Seeds, cfg.TileSize, cfg.EdgeBufferSize, pregenerate, cfg.ShardIndex, cfg.ShardCount)
	} else {
		p, err = params.New(cfg.Dimensions, pareto, cfg.Alpha, cfg.Vertices, cfg.TileSize, cfg.EdgeBufferSize, pregenerate, cfg.ShardIndex, cfg.ShardCount)
	}
	if err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}

	return &Driver{Config: cfg, Params: p}, nil
}

// Run executes the full pipeline: spawn the tile producer, spawn
// Config.Workers backend workers, and drain finished tiles and edges on
// two dedicated goroutines (the edge drain feeds EdgeSink and Degrees
// as configured). It returns once every worker has exited and both
// queues have been drained. A producer or worker error cancels the
// other production goroutines and is returned; an EdgeSink error does
// not cancel anything — the run continues and the first such error is
// returned at the end.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	pl := pipeline.New()
	g, gctx := errgroup.WithContext(ctx)

	// The edge and finished queues are drained independently of the
	// production errgroup: they must keep running for as long as the
	// producer or any worker might still send, and the production
	// side must likewise never block waiting for them, so neither can
	// be a member of the same group whose Wait() gates the other.
	var edgeCount uint64
	edgeDrainDone := make(chan error, 1)
	go func() {
		var err error
		for batch := range pl.Edges {
			edgeCount += uint64(len(batch))
			if d.Degrees != nil {
				d.Degrees.AddBatch(batch)
			}
			if d.EdgeSink != nil {
				if werr := d.EdgeSink.WriteBatch(batch); werr != nil && err == nil {
					err = fmt.Errorf("driver: writing edge batch: %w", werr)
				}
			}
		}
		edgeDrainDone <- err
	}()

	finishedDrainDone := make(chan struct{})
	go func() {
		for range pl.Finished {
		}
		close(finishedDrainDone)
	}()

	g.Go(func() error {
		return pipeline.RunProducer(gctx, d.Params, pl.Tiles)
	})
	for w := 0; w < d.Config.Workers; w++ {
		g.Go(func() error {
			return d.runWorker(gctx, pl)
		})
	}

	runErr := g.Wait()
	close(pl.Edges)
	close(pl.Finished)

	<-finishedDrainDone
	if err := <-edgeDrainDone; err != nil && runErr == nil {
		runErr = err
	}

	return Result{EdgeCount: edgeCount, Degrees: d.Degrees}, runErr
}

func (d *Driver) runWorker(ctx context.Context, pl *pipeline.Pipeline) error {
	switch d.Config.Generator {
	case config.GeneratorCPU:
		b := &backendcpu.Backend{Params: d.Params}
		return b.Run(ctx, pl.Tiles, pl.Edges, pl.Finished)
	case config.GeneratorGPU:
		launchHint := uint32(d.Config.Workers)
		numThreads := backendgpu.NumThreads(d.Params.NumTiles(), d.Config.Blocks, launchHint)
		b := &backendgpu.Backend{Params: d.Params, NumThreads: numThreads}
		return b.Run(ctx, pl.Tiles, pl.Edges, pl.Finished)
	default:
		return fmt.Errorf("driver: unknown generator %q", d.Config.Generator)
	}
}
