package params

import "github.com/girgraph/girg/internal/workerpool"

// ComputeWeights returns every vertex's weight, computed in parallel
// across a fresh worker pool sized to runtime.GOMAXPROCS(0) — the same
// chunked-parallel-for shape the teacher package uses for its own
// embarrassingly-parallel per-element work.
func (p *Params) ComputeWeights() []float32 {
	out := make([]float32, p.V)
	pool := workerpool.New(0)
	defer pool.Close()

	pool.ParallelFor(int(p.V), func(start, end int) {
		for j := start; j < end; j++ {
			out[j] = p.Weight(uint64(j))
		}
	})
	return out
}

// ComputePositions returns every vertex's position, laid out as V
// slices of Dims coordinates each.
func (p *Params) ComputePositions() [][]float32 {
	out := make([][]float32, p.V)
	pool := workerpool.New(0)
	defer pool.Close()

	pool.ParallelFor(int(p.V), func(start, end int) {
		for j := start; j < end; j++ {
			out[j] = p.Position(uint64(j))
		}
	})
	return out
}

// ComputeInterleaved returns every vertex's weight and position
// packed contiguously: [w0, x0_0, ..., x0_{d-1}, w1, x1_0, ...]. This
// is the layout the simulated GPU backend's pregenerate_numbers mode
// reads as a single flat buffer (backend/cpu uses ComputeWeights and
// ComputePositions instead), matching
// compute_interleaved_variables in the reference implementation.
func (p *Params) ComputeInterleaved() []float32 {
	stride := p.Dims + 1
	out := make([]float32, int(p.V)*stride)
	pool := workerpool.New(0)
	defer pool.Close()

	pool.ParallelFor(int(p.V), func(start, end int) {
		for j := start; j < end; j++ {
			base := j * stride
			out[base] = p.Weight(uint64(j))
			p.FillPosition(uint64(j), out[base+1:base+stride])
		}
	})
	return out
}
