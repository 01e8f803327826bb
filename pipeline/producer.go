package pipeline

import (
	"context"

	"github.com/girgraph/girg/params"
	"github.com/girgraph/girg/tiling"
)

// RunProducer pushes every tile belonging to p's shard onto tiles, in
// the deterministic row-major order the tile iterator produces, then
// closes tiles — whether it ran to completion or returned early
// because ctx was canceled (the Go analogue of a worker's fatal error
// aborting the whole run).
//
// Ported from generate_tiles in
// original_source/generator/common/src/threads.rs.
func RunProducer(ctx context.Context, p *params.Params, tiles chan<- tiling.Tile) error {
	defer close(tiles)

	it := p.Tiles()
	for {
		tile, ok := it.Next()
		if !ok {
			return nil
		}
		select {
		case tiles <- tile:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
