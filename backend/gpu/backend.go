package gpu

import (
	"context"
	"log"
	"runtime"

	"github.com/girgraph/girg/internal/workerpool"
	"github.com/girgraph/girg/params"
	"github.com/girgraph/girg/tiling"
)

// DefaultBlockSize is the simulated threads-per-block count. The
// reference implementation gets block_size from CUDA's
// suggested_launch_configuration, a property of the real device; this
// software-simulated backend has no device occupancy calculator to
// query, so it fixes a conventional CUDA block size instead.
const DefaultBlockSize = 128

// GridSize computes the number of simulated blocks to launch, mirroring
// original_source/generator/gpu/src/lib.rs's grid_size selection:
// blocksOverride (the --blocks / gpu_blocks CLI override) when set,
// otherwise min(launchHint, ceil(numTiles/blockSize)) — never launch
// more blocks than there are tiles to cover.
func GridSize(numTiles uint64, blockSize uint64, blocksOverride uint32, launchHint uint32) uint32 {
	if blocksOverride > 0 {
		return blocksOverride
	}
	if launchHint == 0 {
		launchHint = 1
	}
	tileBound := (numTiles + blockSize - 1) / blockSize
	if tileBound == 0 {
		tileBound = 1
	}
	if uint64(launchHint) < tileBound {
		return launchHint
	}
	return uint32(tileBound)
}

// NumThreads returns grid × block, the num_threads formula of
// SPEC_FULL.md §4.7, for numTiles tiles with the given blocks override
// and launch-hint fallback.
func NumThreads(numTiles uint64, blocksOverride uint32, launchHint uint32) uint64 {
	grid := GridSize(numTiles, DefaultBlockSize, blocksOverride, launchHint)
	return uint64(grid) * DefaultBlockSize
}

// Backend runs the simulated GPU generator for one shard: NumThreads
// simulated threads, each round assigning a fresh tile to any thread
// that finished its previous one, launching every active thread's
// kernel step in parallel, then draining completed edges and finished-
// tile notifications before the next round.
//
// Ported from the generate loop in
// original_source/generator/gpu/src/lib.rs.
type Backend struct {
	Params     *params.Params
	NumThreads uint64
}

// Run drives rounds until every tile from tiles has been assigned and
// finished, emitting accepted edges on edges (one batch per round,
// holding every thread's buffered edges, sent only when non-empty) and
// completed tiles on finished.
func (b *Backend) Run(ctx context.Context, tiles <-chan tiling.Tile, edges chan<- []tiling.Edge, finished chan<- tiling.Tile) error {
	if !b.Params.PregenerateNumbers && b.Params.Dims > MaxDims {
		return errDimsExceedMaxDims(b.Params.Dims)
	}

	var variables []float32
	if b.Params.PregenerateNumbers {
		variables = b.Params.ComputeInterleaved()
	}

	state := NewState(b.Params.EdgeBufferSize, b.NumThreads)
	pool := workerpool.New(0)
	defer pool.Close()

	var avgOverfillSum float64
	var avgOverfillCount int

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tilesClosed, assignedAny, err := b.assignRound(ctx, tiles, state)
		if err != nil {
			return err
		}

		if tilesClosed && allDone(state) {
			return nil
		}

		if !assignedAny && allDone(state) {
			// Every thread is idle and the assignment phase found no
			// tile waiting; the producer simply hasn't caught up yet.
			// Yield instead of spinning the round loop against it.
			runtime.Gosched()
			continue
		}

		oldDone := append([]bool(nil), state.Done...)

		pool.ParallelFor(int(state.NumThreads), func(start, end int) {
			for tid := start; tid < end; tid++ {
				if !state.Done[tid] {
					runThread(tid, state, b.Params, variables)
				}
			}
		})

		var roundEdges []tiling.Edge
		activeThreads := 0
		for tid := 0; tid < int(state.NumThreads); tid++ {
			if !oldDone[tid] {
				activeThreads++
			}
			roundEdges = append(roundEdges, state.Edges(tid)...)
			state.ResetEdges(tid)
		}
		if len(roundEdges) > 0 {
			select {
			case edges <- roundEdges:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		for tid := 0; tid < int(state.NumThreads); tid++ {
			if !oldDone[tid] && state.Done[tid] {
				tile := b.Params.PosToTile(state.CurrentX[tid], state.CurrentY[tid])
				select {
				case finished <- tile:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}

		if activeThreads > 0 {
			avgFill := float64(len(roundEdges)) / float64(activeThreads)
			if avgFill > float64(b.Params.EdgeBufferSize)*0.9 {
				avgOverfillSum += avgFill
				avgOverfillCount++
				recommended := (avgOverfillSum / float64(avgOverfillCount)) * float64(avgOverfillCount+1)
				log.Printf("gpu: round fill exceeded 90%% of the edge buffer; consider raising edge-buffer-size to %.0f", recommended)
			}
		}

		if tilesClosed && allDone(state) {
			return nil
		}
	}
}

// assignRound non-blockingly gives every idle thread a fresh tile from
// tiles, per §4.7 step 3a: a thread with nothing waiting in the queue
// is simply left idle for this round rather than stalling the whole
// assignment phase behind it. It reports whether tiles has been
// observed closed, and whether any thread was assigned a tile.
func (b *Backend) assignRound(ctx context.Context, tiles <-chan tiling.Tile, state *State) (closed bool, assignedAny bool, err error) {
	for tid := 0; tid < int(state.NumThreads); tid++ {
		if !state.Done[tid] {
			continue
		}
		select {
		case tile, ok := <-tiles:
			if !ok {
				closed = true
				continue
			}
			state.Done[tid] = false
			state.CurrentX[tid] = tile.Start.I
			state.CurrentY[tid] = tile.Start.J
			assignedAny = true
		case <-ctx.Done():
			return closed, assignedAny, ctx.Err()
		default:
		}
	}
	return closed, assignedAny, nil
}

func allDone(state *State) bool {
	for _, d := range state.Done {
		if !d {
			return false
		}
	}
	return true
}

type errDimsExceedMaxDims int

func (e errDimsExceedMaxDims) Error() string {
	return "gpu: on-demand computation requires dimensions <= MaxDims"
}
