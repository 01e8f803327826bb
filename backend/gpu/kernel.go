package gpu

import (
	"github.com/girgraph/girg/kernel"
	"github.com/girgraph/girg/params"
)

// runThread advances simulated GPU thread tid by one kernel launch: it
// runs from its current (x, y) to the end of its current tile (or
// until its edge buffer fills, whichever comes first), writing
// accepted edges into its slot of state and leaving (x, y) positioned
// so the driver loop can tell whether the tile finished.
//
// Ported from generator_kernel in
// original_source/generator/gpu/kernel/src/kernels.rs.
func runThread(tid int, state *State, p *params.Params, variables []float32) {
	if state.Done[tid] {
		return
	}

	tile := p.PosToTile(state.CurrentX[tid], state.CurrentY[tid])
	start, end := tile.Start, tile.End

	weightOf := func(v uint64) float32 {
		if variables != nil {
			return variables[v*uint64(p.Dims+1)]
		}
		return p.Weight(v)
	}
	posOf := func(v uint64, scratch []float32) []float32 {
		if variables != nil {
			base := v * uint64(p.Dims+1)
			return variables[base+1 : base+uint64(p.Dims)+1]
		}
		p.FillPosition(v, scratch)
		return scratch
	}

	piScratch := make([]float32, p.Dims)
	pjScratch := make([]float32, p.Dims)

	i := state.CurrentX[tid]
	j := state.CurrentY[tid]

	for {
		pi := posOf(i, piScratch)
		pj := posOf(j, pjScratch)

		if kernel.GenerateEdge(i, j, weightOf(i), weightOf(j), pi, pj, p.SumW, p.Dims, p.Alpha, p.EdgeSeed()) {
			if !state.CanAddEdge(tid) {
				state.Done[tid] = false
				state.CurrentX[tid] = i
				state.CurrentY[tid] = j
				return
			}
			state.AddEdge(tid, i, j)
		}

		i++
		if i >= min64(p.V, end.I+1) {
			i = start.I
			j++
		}

		state.CurrentX[tid] = i
		state.CurrentY[tid] = j

		if j >= min64(p.V, end.J+1) {
			state.Done[tid] = true
			state.CurrentX[tid] = end.I
			state.CurrentY[tid] = end.J
			return
		}
	}
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
