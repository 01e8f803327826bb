// Package cpu implements the CPU backend: a worker that consumes
// tiles from the pipeline's tile queue, evaluates the probability
// kernel for every candidate edge in the tile, and batches accepted
// edges into fixed-size buffers before handing them to the edge queue.
//
// Ported from original_source/generator/cpu/src/lib.rs.
package cpu

import (
	"log"

	"github.com/girgraph/girg/kernel"
	"github.com/girgraph/girg/params"
	"github.com/girgraph/girg/tiling"
)

// WalkTile evaluates every candidate edge in tile in row-major order
// and invokes emit(i, j) for each one the probability kernel accepts.
//
// When p.PregenerateNumbers is set, every vertex's weight and position
// is computed once up front and reused for the whole tile; otherwise
// each is recomputed on demand from the hash RNG. This mirrors
// worker_function exactly, including recomputing the pregenerated
// arrays once per tile rather than once per run — the reference
// implementation trades that redundant O(V) pass for simplicity, and
// callers with large edgebuffer-bound tiles and small V should prefer
// on-demand mode.
func WalkTile(tile tiling.Tile, p *params.Params, emit func(i, j uint64)) {
	var weights []float32
	var positions [][]float32
	if p.PregenerateNumbers {
		weights = p.ComputeWeights()
		positions = p.ComputePositions()
	}

	weightOf := func(v uint64) float32 {
		if weights != nil {
			return weights[v]
		}
		return p.Weight(v)
	}
	posOf := func(v uint64, scratch []float32) []float32 {
		if positions != nil {
			return positions[v]
		}
		p.FillPosition(v, scratch)
		return scratch
	}

	piScratch := make([]float32, p.Dims)
	pjScratch := make([]float32, p.Dims)

	it := tile.Iter()
	for {
		e, ok := it.Next()
		if !ok {
			return
		}

		wi := weightOf(e.I)
		wj := weightOf(e.J)
		pi := posOf(e.I, piScratch)
		pj := posOf(e.J, pjScratch)

		if kernel.GenerateEdge(e.I, e.J, wi, wj, pi, pj, p.SumW, p.Dims, p.Alpha, p.EdgeSeed()) {
			emit(e.I, e.J)
		}
	}
}

// Worker runs one tile through WalkTile, batching accepted edges into
// buffers of p.EdgeBufferSize and sending each full (or final partial)
// batch on edges. It logs a warning, matching the reference's
// behavior, if a single tile requires more than one batch — a signal
// the configured edge buffer is too small for the tile size in use.
func Worker(tile tiling.Tile, p *params.Params, edges chan<- []tiling.Edge) {
	batch := make([]tiling.Edge, 0, p.EdgeBufferSize)
	sends := 0

	flush := func() {
		if len(batch) == 0 {
			return
		}
		out := make([]tiling.Edge, len(batch))
		copy(out, batch)
		edges <- out
		batch = batch[:0]
		sends++
	}

	WalkTile(tile, p, func(i, j uint64) {
		batch = append(batch, tiling.Edge{I: i, J: j})
		if uint64(len(batch)) >= p.EdgeBufferSize {
			flush()
		}
	})
	flush()

	if sends > 1 {
		log.Printf("cpu: edge buffer likely too small for tile %v; had to send %d batches, consider raising edge-buffer-size to %d", tile, sends, p.EdgeBufferSize*uint64(sends))
	}
}
