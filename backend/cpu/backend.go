package cpu

import (
	"context"

	"github.com/girgraph/girg/params"
	"github.com/girgraph/girg/tiling"
)

// Backend runs one CPU worker goroutine's share of tiles: pull a tile
// from tiles, process it with Worker, report it done on finished,
// repeat until tiles is closed or ctx is canceled.
//
// Ported from worker_thread/CPUGenerator::generate in
// original_source/generator/cpu/src/lib.rs and
// original_source/generator/common/src/threads.rs.
type Backend struct {
	Params *params.Params
}

// Run consumes tiles until it is closed (or ctx is canceled), feeding
// accepted edges to edges and completed tiles to finished.
func (b *Backend) Run(ctx context.Context, tiles <-chan tiling.Tile, edges chan<- []tiling.Edge, finished chan<- tiling.Tile) error {
	for {
		select {
		case tile, ok := <-tiles:
			if !ok {
				return nil
			}
			Worker(tile, b.Params, edges)
			select {
			case finished <- tile:
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
