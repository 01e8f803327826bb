// Package pipeline wires the three bounded queues that connect the
// tile producer, the backend workers, and the edge/finished consumers:
// a back-pressured, fan-out/fan-in pipeline built on buffered Go
// channels instead of crossbeam_channel.
//
// Ported from original_source/generator/common/src/threads.rs and the
// queue construction in original_source/girg_generator/src/main.rs.
// Channel close is the direct analogue of dropping every clone of a
// crossbeam Sender: once every worker's copy of the tile channel is
// drained and closed, ranging over it ends, exactly as the Rust
// for tile in tile_receiver loop terminates when the sender side is
// gone.
package pipeline

import "github.com/girgraph/girg/tiling"

// Queue capacities, matching crossbeam_channel::bounded(n) at each of
// the three stages in the reference implementation.
const (
	TileQueueCapacity     = 5
	EdgeQueueCapacity     = 100
	FinishedQueueCapacity = 10000
)

// Edge is a directed, accepted edge emitted by a backend worker.
type Edge = tiling.Edge

// Pipeline owns the three channels connecting the tile producer,
// backend workers, and consumers of a single generation run.
type Pipeline struct {
	Tiles    chan tiling.Tile
	Edges    chan []Edge
	Finished chan tiling.Tile
}

// New allocates a Pipeline with the reference implementation's fixed
// queue capacities.
func New() *Pipeline {
	return &Pipeline{
		Tiles:    make(chan tiling.Tile, TileQueueCapacity),
		Edges:    make(chan []Edge, EdgeQueueCapacity),
		Finished: make(chan tiling.Tile, FinishedQueueCapacity),
	}
}
